package service

import (
	"context"
	"io"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/dzhusipov/fleet-core/internal/dto"
	"github.com/dzhusipov/fleet-core/internal/model"
	"github.com/dzhusipov/fleet-core/internal/repository"
)

// ObjectStore abstracts the document blob storage.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	PresignGet(ctx context.Context, key, fileName string, ttl time.Duration) (string, error)
	Remove(ctx context.Context, key string) error
}

const downloadTTL = 15 * time.Minute

type DocumentService struct {
	documents repository.DocumentRepository
	store     ObjectStore
}

func NewDocumentService(documents repository.DocumentRepository, store ObjectStore) *DocumentService {
	return &DocumentService{documents: documents, store: store}
}

func (s *DocumentService) Upload(
	ctx context.Context,
	req dto.UploadDocumentRequest,
	fileName, contentType string,
	size int64,
	r io.Reader,
	uploadedBy *uuid.UUID,
) (dto.DocumentResponse, error) {
	var empty dto.DocumentResponse

	entity := model.DocumentEntity(req.EntityType)
	if !entity.Valid() {
		return empty, &InvalidEnumError{Field: "entity_type", Value: req.EntityType}
	}
	typ := model.DocumentType(req.Type)
	if !typ.Valid() {
		return empty, &InvalidEnumError{Field: "type", Value: req.Type}
	}

	key := path.Join(string(entity), req.EntityID.String(), uuid.NewString()+"_"+fileName)
	if err := s.store.Put(ctx, key, r, size, contentType); err != nil {
		return empty, err
	}

	d := model.Document{
		EntityType:  entity,
		EntityID:    req.EntityID,
		Type:        typ,
		Title:       req.Title,
		FileName:    fileName,
		StorageKey:  key,
		ContentType: contentType,
		SizeBytes:   size,
		ExpiryDate:  dto.TimePtr(req.ExpiryDate),
		UploadedBy:  uploadedBy,
	}
	if err := s.documents.Create(ctx, &d); err != nil {
		// best effort cleanup of the orphaned object
		_ = s.store.Remove(ctx, key)
		return empty, err
	}
	return dto.ToDocumentResponse(&d), nil
}

func (s *DocumentService) Get(ctx context.Context, id uuid.UUID) (dto.DocumentResponse, error) {
	d, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return dto.DocumentResponse{}, err
	}
	return dto.ToDocumentResponse(d), nil
}

func (s *DocumentService) List(ctx context.Context, f dto.DocumentFilter) (dto.Page[dto.DocumentResponse], error) {
	f.Normalize()
	docs, total, err := s.documents.List(ctx, f)
	if err != nil {
		return dto.Page[dto.DocumentResponse]{}, err
	}
	items := make([]dto.DocumentResponse, len(docs))
	for i := range docs {
		items[i] = dto.ToDocumentResponse(&docs[i])
	}
	return dto.Page[dto.DocumentResponse]{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize}, nil
}

// DownloadLink returns a time-limited presigned URL for the stored object.
func (s *DocumentService) DownloadLink(ctx context.Context, id uuid.UUID) (dto.DocumentDownload, error) {
	d, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return dto.DocumentDownload{}, err
	}
	url, err := s.store.PresignGet(ctx, d.StorageKey, d.FileName, downloadTTL)
	if err != nil {
		return dto.DocumentDownload{}, err
	}
	return dto.DocumentDownload{URL: url, ExpiresIn: int(downloadTTL.Seconds())}, nil
}

func (s *DocumentService) Delete(ctx context.Context, id uuid.UUID) error {
	d, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Remove(ctx, d.StorageKey); err != nil {
		return err
	}
	return s.documents.Delete(ctx, id)
}
