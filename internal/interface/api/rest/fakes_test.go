package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	domainDoc "userdocs-api/internal/domain/document"
	domainUser "userdocs-api/internal/domain/user"
	jwtSvc "userdocs-api/internal/infrastructure/jwt"
)

const testSecret = "test-secret"

type FakeUserService struct {
	FindUserByIDFunc  func(ctx context.Context, id domainUser.ID) (*domainUser.User, error)
	FindByEmailFunc   func(ctx context.Context, email string) (*domainUser.User, error)
	CreateUserFunc    func(ctx context.Context, email, passwordHash string) (*domainUser.User, error)
	UpdateProfileFunc func(ctx context.Context, id domainUser.ID, name, avatarURL *string) (*domainUser.User, error)
}

func (f *FakeUserService) FindUserByID(ctx context.Context, id domainUser.ID) (*domainUser.User, error) {
	if f.FindUserByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindUserByIDFunc(ctx, id)
}
func (f *FakeUserService) FindByEmail(ctx context.Context, email string) (*domainUser.User, error) {
	if f.FindByEmailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindByEmailFunc(ctx, email)
}
func (f *FakeUserService) CreateUser(ctx context.Context, email, passwordHash string) (*domainUser.User, error) {
	if f.CreateUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateUserFunc(ctx, email, passwordHash)
}
func (f *FakeUserService) UpdateProfile(ctx context.Context, id domainUser.ID, name, avatarURL *string) (*domainUser.User, error) {
	if f.UpdateProfileFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateProfileFunc(ctx, id, name, avatarURL)
}

type fakeAuthService struct {
	HashPasswordFunc  func(password string) (string, error)
	GenerateTokenFunc func(u *domainUser.User, password string) (string, error)
	IssueTokenFunc    func(u *domainUser.User) (string, error)
}

func (f *fakeAuthService) HashPassword(password string) (string, error) {
	if f.HashPasswordFunc == nil {
		return "hashed:" + password, nil
	}
	return f.HashPasswordFunc(password)
}
func (f *fakeAuthService) GenerateToken(u *domainUser.User, password string) (string, error) {
	if f.GenerateTokenFunc == nil {
		return "", errors.New("not used")
	}
	return f.GenerateTokenFunc(u, password)
}
func (f *fakeAuthService) IssueToken(u *domainUser.User) (string, error) {
	if f.IssueTokenFunc == nil {
		return "", errors.New("not used")
	}
	return f.IssueTokenFunc(u)
}

type FakeDocumentService struct {
	FindDocumentsFunc  func(ctx context.Context, userID domainUser.ID) (domainDoc.Documents, error)
	CreateDocumentFunc func(ctx context.Context, userID domainUser.ID, fh *multipart.FileHeader) (*domainDoc.Document, error)
	DeleteDocumentFunc func(ctx context.Context, userID domainUser.ID, id domainDoc.ID) error
}

func (f *FakeDocumentService) FindDocuments(ctx context.Context, userID domainUser.ID) (domainDoc.Documents, error) {
	if f.FindDocumentsFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindDocumentsFunc(ctx, userID)
}
func (f *FakeDocumentService) CreateDocument(ctx context.Context, userID domainUser.ID, fh *multipart.FileHeader) (*domainDoc.Document, error) {
	if f.CreateDocumentFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateDocumentFunc(ctx, userID, fh)
}
func (f *FakeDocumentService) DeleteDocument(ctx context.Context, userID domainUser.ID, id domainDoc.ID) error {
	if f.DeleteDocumentFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteDocumentFunc(ctx, userID, id)
}

type fakeBlobStore struct {
	SaveFunc func(src io.Reader, originalName string) (string, error)
}

func (f *fakeBlobStore) Save(src io.Reader, originalName string) (string, error) {
	if f.SaveFunc == nil {
		return "stored_" + originalName, nil
	}
	return f.SaveFunc(src, originalName)
}
func (f *fakeBlobStore) Delete(name string) error { return nil }
func (f *fakeBlobStore) PublicURL(name string) string {
	return "http://127.0.0.1:8000/uploads/" + name
}

// authedUser is the row the middleware resolves tokens into for happy paths.
func authedUser() *domainUser.User {
	return &domainUser.User{ID: 1, Email: "ada@x.com", PasswordHash: "hash"}
}

func userByIDOK(ctx context.Context, id domainUser.ID) (*domainUser.User, error) {
	return authedUser(), nil
}

func signTestToken(t *testing.T, secret string, userID uint64, expiresIn time.Duration) string {
	t.Helper()

	tok, err := jwtSvc.New(secret).GenerateJWT(userID, "ada@x.com", expiresIn)
	require.NoError(t, err)
	return tok
}

func authHeader(t *testing.T) map[string]string {
	t.Helper()
	return map[string]string{"Authorization": "Bearer " + signTestToken(t, testSecret, 1, time.Hour)}
}

func doJSONReq(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func doFormReq(t *testing.T, r *gin.Engine, path string, form string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(form)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func doMultipartReq(t *testing.T, r *gin.Engine, method, path string, fields map[string]string, fileField, fileName string, fileContent []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}

	if fileField != "" && fileName != "" && fileContent != nil {
		fw, err := w.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, _ = fw.Write(fileContent)
	}

	require.NoError(t, w.Close())

	req, err := http.NewRequest(method, path, &b)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}
