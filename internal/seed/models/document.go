package models

import (
	"fmt"
	"time"
)

// DocumentType enumerates the documents a company can issue or receive.
type DocumentType string

const (
	DocumentInvoice          DocumentType = "invoice"
	DocumentEstimate         DocumentType = "estimate"
	DocumentBill             DocumentType = "bill"
	DocumentRecurringInvoice DocumentType = "recurring_invoice"
)

// DocumentTypes lists every DocumentType in a stable order.
var DocumentTypes = []DocumentType{
	DocumentInvoice,
	DocumentEstimate,
	DocumentBill,
	DocumentRecurringInvoice,
}

// Valid reports whether t is one of the known document types.
func (t DocumentType) Valid() bool {
	switch t {
	case DocumentInvoice, DocumentEstimate, DocumentBill, DocumentRecurringInvoice:
		return true
	default:
		return false
	}
}

// DocumentDefault configures header and numbering of one document type for
// one company. There is at most one row per (company, type).
type DocumentDefault struct {
	ID           uint         `gorm:"primaryKey"`
	CompanyID    uint         `gorm:"not null;uniqueIndex:idx_document_defaults_company_type,priority:1"`
	Type         DocumentType `gorm:"size:32;not null;uniqueIndex:idx_document_defaults_company_type,priority:2"`
	Header       string       `gorm:"size:255"`
	NumberPrefix string       `gorm:"size:32"`
	NumberDigits int
	NumberNext   int
	Footer       string `gorm:"size:1000"`
	Terms        string `gorm:"size:1000"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NextNumber formats the next document number and advances the sequence.
func (d *DocumentDefault) NextNumber() string {
	n := fmt.Sprintf("%s%0*d", d.NumberPrefix, d.NumberDigits, d.NumberNext)
	d.NumberNext++
	return n
}

// DocumentLabel is the localizable part of a DocumentDefault.
type DocumentLabel struct {
	Header       string
	NumberPrefix string
}
