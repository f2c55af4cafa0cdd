package ports

import (
	"context"
	"mime/multipart"

	"userdocs-api/internal/domain/document"
	"userdocs-api/internal/domain/user"
)

type DocumentService interface {
	FindDocuments(ctx context.Context, userID user.ID) (document.Documents, error)
	CreateDocument(ctx context.Context, userID user.ID, in *multipart.FileHeader) (*document.Document, error)
	DeleteDocument(ctx context.Context, userID user.ID, id document.ID) error
}
