package model

import (
	"time"

	"github.com/google/uuid"
)

type DocumentType string

const (
	DocRegistration   DocumentType = "registration"
	DocInsurance      DocumentType = "insurance"
	DocTechInspection DocumentType = "tech_inspection"
	DocContract       DocumentType = "contract"
	DocInvoice        DocumentType = "invoice"
	DocPhoto          DocumentType = "photo"
	DocOtherDocument  DocumentType = "other"
)

func (t DocumentType) Valid() bool {
	switch t {
	case DocRegistration, DocInsurance, DocTechInspection, DocContract,
		DocInvoice, DocPhoto, DocOtherDocument:
		return true
	}
	return false
}

type DocumentEntity string

const (
	DocEntityVehicle     DocumentEntity = "vehicle"
	DocEntityDriver      DocumentEntity = "driver"
	DocEntityContract    DocumentEntity = "contract"
	DocEntityMaintenance DocumentEntity = "maintenance"
	DocEntityExpense     DocumentEntity = "expense"
)

func (e DocumentEntity) Valid() bool {
	switch e {
	case DocEntityVehicle, DocEntityDriver, DocEntityContract,
		DocEntityMaintenance, DocEntityExpense:
		return true
	}
	return false
}

// Document is file metadata; the binary itself lives in object storage under
// StorageKey.
type Document struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EntityType  DocumentEntity `gorm:"type:varchar(20);not null;index:idx_document_entity"`
	EntityID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_document_entity"`
	Type        DocumentType   `gorm:"type:varchar(20);not null"`
	Title       string         `gorm:"type:varchar(300);not null"`
	FileName    string         `gorm:"type:varchar(300);not null"`
	StorageKey  string         `gorm:"type:varchar(500);not null"`
	ContentType string         `gorm:"type:varchar(100);not null"`
	SizeBytes   int64          `gorm:"not null"`
	ExpiryDate  *time.Time     `gorm:"type:date"`
	UploadedBy  *uuid.UUID     `gorm:"type:uuid"`
	CreatedAt   time.Time
}
