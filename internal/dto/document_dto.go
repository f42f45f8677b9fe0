package dto

import (
	"github.com/google/uuid"

	"github.com/dzhusipov/fleet-core/internal/model"
)

// UploadDocumentRequest carries the multipart form fields accompanying the
// file part.
type UploadDocumentRequest struct {
	EntityType string    `form:"entity_type" binding:"required"`
	EntityID   uuid.UUID `form:"entity_id" binding:"required"`
	Type       string    `form:"type" binding:"required"`
	Title      string    `form:"title" binding:"required,max=300"`
	ExpiryDate *Date     `form:"expiry_date"`
}

type DocumentFilter struct {
	PageQuery
	EntityType string `form:"entity_type"`
	EntityID   string `form:"entity_id"`
	Type       string `form:"type"`
}

type DocumentResponse struct {
	ID          uuid.UUID `json:"id"`
	EntityType  string    `json:"entity_type"`
	EntityID    uuid.UUID `json:"entity_id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	ExpiryDate  *Date     `json:"expiry_date"`
	CreatedAt   string    `json:"created_at"`
}

// DocumentDownload wraps a time-limited download link.
type DocumentDownload struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in"`
}

func ToDocumentResponse(d *model.Document) DocumentResponse {
	return DocumentResponse{
		ID:          d.ID,
		EntityType:  string(d.EntityType),
		EntityID:    d.EntityID,
		Type:        string(d.Type),
		Title:       d.Title,
		FileName:    d.FileName,
		ContentType: d.ContentType,
		SizeBytes:   d.SizeBytes,
		ExpiryDate:  DatePtr(d.ExpiryDate),
		CreatedAt:   d.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}
