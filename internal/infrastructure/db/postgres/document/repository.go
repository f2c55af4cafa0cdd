package document

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"userdocs-api/internal/domain/document"
	"userdocs-api/internal/domain/user"
	"userdocs-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) document.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchDocuments(ctx context.Context, userID user.ID) (document.Documents, error) {
	rows, err := r.db.Query(ctx, SelectDocuments, uint64(userID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ds Documents
	for rows.Next() {
		d := new(Document)

		if err = rows.Scan(
			&d.ID,
			&d.UserID,
			&d.Name,
			&d.Filename,
			&d.FileType,
			&d.UploadDate,
		); err != nil {
			return nil, err
		}

		ds = append(ds, d)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&ds), nil
}

// FetchDocument filters on owner and id together, so another user's document
// looks exactly like a missing one.
func (r *Repository) FetchDocument(ctx context.Context, userID user.ID, id document.ID) (*document.Document, error) {
	d := new(Document)
	err := r.db.QueryRow(ctx, SelectDocumentByID, uint64(id), uint64(userID)).Scan(
		&d.ID,
		&d.UserID,
		&d.Name,
		&d.Filename,
		&d.FileType,
		&d.UploadDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(d), err
}

func (r *Repository) CreateDocument(ctx context.Context, req *document.Document) (*document.Document, error) {
	d := new(Document)

	err := r.db.QueryRow(
		ctx,
		InsertDocument,
		uint64(req.UserID), req.Name, req.Filename, string(req.FileType), req.UploadDate,
	).Scan(
		&d.ID,
		&d.UserID,
		&d.Name,
		&d.Filename,
		&d.FileType,
		&d.UploadDate,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(d), err
}

// DeleteDocument reports whether a row was actually removed. A concurrent
// double-delete resolves here: only one caller sees rows affected.
func (r *Repository) DeleteDocument(ctx context.Context, userID user.ID, id document.ID) (bool, error) {
	tag, err := r.db.Exec(ctx, DeleteDocumentByID, uint64(id), uint64(userID))
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
