package document

import (
	"context"

	"userdocs-api/internal/domain/user"
)

type Repository interface {
	FetchDocuments(ctx context.Context, userID user.ID) (Documents, error)
	FetchDocument(ctx context.Context, userID user.ID, id ID) (*Document, error)
	CreateDocument(ctx context.Context, req *Document) (*Document, error)
	DeleteDocument(ctx context.Context, userID user.ID, id ID) (bool, error)
}
