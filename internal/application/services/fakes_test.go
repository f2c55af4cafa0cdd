package services

import (
	"context"
	"errors"
	"io"

	"github.com/rabbitmq/amqp091-go"

	domainDoc "userdocs-api/internal/domain/document"
	domainUser "userdocs-api/internal/domain/user"
	"userdocs-api/internal/infrastructure/mq"
)

type fakeUserRepo struct {
	FetchUserByIDFunc    func(ctx context.Context, id domainUser.ID) (*domainUser.User, error)
	FetchUserByEmailFunc func(ctx context.Context, email string) (*domainUser.User, error)
	CreateUserFunc       func(ctx context.Context, email, passwordHash string) (*domainUser.User, error)
	UpdateProfileFunc    func(ctx context.Context, id domainUser.ID, name, avatarURL *string) (*domainUser.User, error)
}

func (f *fakeUserRepo) FetchUserByID(ctx context.Context, id domainUser.ID) (*domainUser.User, error) {
	if f.FetchUserByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchUserByIDFunc(ctx, id)
}
func (f *fakeUserRepo) FetchUserByEmail(ctx context.Context, email string) (*domainUser.User, error) {
	if f.FetchUserByEmailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchUserByEmailFunc(ctx, email)
}
func (f *fakeUserRepo) CreateUser(ctx context.Context, email, passwordHash string) (*domainUser.User, error) {
	if f.CreateUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateUserFunc(ctx, email, passwordHash)
}
func (f *fakeUserRepo) UpdateProfile(ctx context.Context, id domainUser.ID, name, avatarURL *string) (*domainUser.User, error) {
	if f.UpdateProfileFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateProfileFunc(ctx, id, name, avatarURL)
}

type fakeDocumentRepo struct {
	FetchDocumentsFunc func(ctx context.Context, userID domainUser.ID) (domainDoc.Documents, error)
	FetchDocumentFunc  func(ctx context.Context, userID domainUser.ID, id domainDoc.ID) (*domainDoc.Document, error)
	CreateDocumentFunc func(ctx context.Context, req *domainDoc.Document) (*domainDoc.Document, error)
	DeleteDocumentFunc func(ctx context.Context, userID domainUser.ID, id domainDoc.ID) (bool, error)
}

func (f *fakeDocumentRepo) FetchDocuments(ctx context.Context, userID domainUser.ID) (domainDoc.Documents, error) {
	if f.FetchDocumentsFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchDocumentsFunc(ctx, userID)
}
func (f *fakeDocumentRepo) FetchDocument(ctx context.Context, userID domainUser.ID, id domainDoc.ID) (*domainDoc.Document, error) {
	if f.FetchDocumentFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchDocumentFunc(ctx, userID, id)
}
func (f *fakeDocumentRepo) CreateDocument(ctx context.Context, req *domainDoc.Document) (*domainDoc.Document, error) {
	if f.CreateDocumentFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateDocumentFunc(ctx, req)
}
func (f *fakeDocumentRepo) DeleteDocument(ctx context.Context, userID domainUser.ID, id domainDoc.ID) (bool, error) {
	if f.DeleteDocumentFunc == nil {
		return false, errors.New("not used")
	}
	return f.DeleteDocumentFunc(ctx, userID, id)
}

type fakeBlobStore struct {
	SaveFunc   func(src io.Reader, originalName string) (string, error)
	DeleteFunc func(name string) error

	deleted []string
}

func (f *fakeBlobStore) Save(src io.Reader, originalName string) (string, error) {
	if f.SaveFunc == nil {
		return "stored_" + originalName, nil
	}
	return f.SaveFunc(src, originalName)
}
func (f *fakeBlobStore) Delete(name string) error {
	f.deleted = append(f.deleted, name)
	if f.DeleteFunc == nil {
		return nil
	}
	return f.DeleteFunc(name)
}
func (f *fakeBlobStore) PublicURL(name string) string {
	return "http://127.0.0.1:8000/uploads/" + name
}

// fakeMQ swallows published events into its buffered channel so services
// never block in tests.
type fakeMQ struct {
	in chan mq.Event
}

func newFakeMQ() *fakeMQ {
	return &fakeMQ{in: make(chan mq.Event, 16)}
}

func (f *fakeMQ) Connect(ctx context.Context, dsn string) error { return nil }
func (f *fakeMQ) Init() error                                   { return nil }
func (f *fakeMQ) PublisherWorker(ctx context.Context)           {}
func (f *fakeMQ) GetInputChan() chan mq.Event                   { return f.in }
func (f *fakeMQ) GetConn() *amqp091.Connection                  { return nil }
