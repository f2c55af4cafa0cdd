package services

import (
	"context"
	"errors"
	"mime/multipart"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"userdocs-api/internal/application/ports"
	domain "userdocs-api/internal/domain/document"
	"userdocs-api/internal/domain/user"
	"userdocs-api/internal/infrastructure/mq"
	"userdocs-api/internal/interface/api/rest/dto/document"
)

var ErrDocumentNotFound = errors.New("document not found")

type DocumentService struct {
	blob               ports.BlobStore
	documentRepository domain.Repository
	logger             *zap.Logger
	mq                 ports.RabbitMQ
	mCounter           *prometheus.CounterVec
}

func NewDocumentService(
	blob ports.BlobStore,
	documentRepository domain.Repository,
	logger *zap.Logger,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.DocumentService {
	return &DocumentService{
		blob:               blob,
		documentRepository: documentRepository,
		logger:             logger,
		mq:                 mq,
		mCounter:           mCounter,
	}
}

func (ds *DocumentService) FindDocuments(ctx context.Context, userID user.ID) (domain.Documents, error) {
	docs, err := ds.documentRepository.FetchDocuments(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, d := range docs {
		d.DownloadURL = ds.blob.PublicURL(d.Filename)
	}

	return docs, nil
}

// CreateDocument writes the asset before touching the table: a failed disk
// write leaves no metadata row behind. If the insert fails instead, the fresh
// asset is removed again.
func (ds *DocumentService) CreateDocument(
	ctx context.Context,
	userID user.ID,
	in *multipart.FileHeader,
) (*domain.Document, error) {
	f, err := in.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	storedName, err := ds.blob.Save(f, in.Filename)
	if err != nil {
		return nil, err
	}

	d := &domain.Document{
		UserID:     userID,
		Name:       in.Filename,
		Filename:   storedName,
		FileType:   domain.FileTypeFor(in.Filename),
		UploadDate: time.Now().Format("2006-01-02"),
	}

	out, err := ds.documentRepository.CreateDocument(ctx, d)
	if err != nil {
		if derr := ds.blob.Delete(storedName); derr != nil {
			ds.logger.Error("orphaned asset cleanup failed", zap.String("filename", storedName), zap.Error(derr))
		}
		return nil, err
	}
	out.DownloadURL = ds.blob.PublicURL(out.Filename)

	ds.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Action:  mq.ActionDocumentCreated,
		UserID:  strconv.FormatUint(uint64(userID), 10),
		Payload: document.ToResponseDocument(*out),
	}

	ds.mCounter.WithLabelValues("document_uploaded_total").Inc()

	return out, nil
}

// DeleteDocument only ever sees the caller's own rows; somebody else's
// document id answers the same way as a missing one. Asset removal is
// best-effort: the row goes away even if the file is already gone.
func (ds *DocumentService) DeleteDocument(ctx context.Context, userID user.ID, id domain.ID) error {
	d, err := ds.documentRepository.FetchDocument(ctx, userID, id)
	if err != nil {
		return err
	}
	if d == nil {
		return ErrDocumentNotFound
	}

	if err = ds.blob.Delete(d.Filename); err != nil {
		ds.logger.Warn("asset delete failed, removing row anyway",
			zap.String("filename", d.Filename), zap.Error(err))
	}

	deleted, err := ds.documentRepository.DeleteDocument(ctx, userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		// lost a race with a concurrent delete of the same row
		return ErrDocumentNotFound
	}

	ds.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Action:  mq.ActionDocumentDeleted,
		UserID:  strconv.FormatUint(uint64(userID), 10),
		Payload: document.ToResponseDocument(*d),
	}

	ds.mCounter.WithLabelValues("document_deleted_total").Inc()

	return nil
}
