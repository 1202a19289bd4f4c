package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a bank transaction.
type TransactionType string

const (
	Deposit    TransactionType = "deposit"
	Withdrawal TransactionType = "withdrawal"
)

// DocumentStatus is the lifecycle state shared by invoices, estimates and bills.
type DocumentStatus string

const (
	StatusDraft    DocumentStatus = "draft"
	StatusSent     DocumentStatus = "sent"
	StatusPaid     DocumentStatus = "paid"
	StatusOverdue  DocumentStatus = "overdue"
	StatusAccepted DocumentStatus = "accepted"
	StatusDeclined DocumentStatus = "declined"
	StatusActive   DocumentStatus = "active"
)

// Frequency of a recurring invoice.
type Frequency string

const (
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
	Yearly  Frequency = "yearly"
)

type Transaction struct {
	ID          uint            `gorm:"primaryKey"`
	CompanyID   uint            `gorm:"not null;index"`
	Reference   uuid.UUID       `gorm:"type:uuid;uniqueIndex"`
	Type        TransactionType `gorm:"size:16;not null"`
	Description string          `gorm:"size:255"`
	Amount      decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	PostedAt    time.Time       `gorm:"not null"`
	CreatedAt   time.Time
}

type Offering struct {
	ID          uint            `gorm:"primaryKey"`
	CompanyID   uint            `gorm:"not null;index"`
	Name        string          `gorm:"size:255;not null"`
	Description string          `gorm:"size:1000"`
	Price       decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	Sellable    bool
	Purchasable bool
	CreatedAt   time.Time
}

// Contact holds the fields clients and vendors have in common.
type Contact struct {
	Name        string `gorm:"size:255;not null"`
	Email       string `gorm:"size:255"`
	Phone       string `gorm:"size:32"`
	City        string `gorm:"size:128"`
	State       string `gorm:"size:8"`
	CountryCode string `gorm:"size:2"`
}

type Client struct {
	ID        uint    `gorm:"primaryKey"`
	CompanyID uint    `gorm:"not null;index"`
	Contact   Contact `gorm:"embedded"`
	Currency  string  `gorm:"size:3"`
	CreatedAt time.Time
}

type Vendor struct {
	ID        uint    `gorm:"primaryKey"`
	CompanyID uint    `gorm:"not null;index"`
	Contact   Contact `gorm:"embedded"`
	CreatedAt time.Time
}

type Invoice struct {
	ID        uint            `gorm:"primaryKey"`
	CompanyID uint            `gorm:"not null;index"`
	ClientID  uint            `gorm:"not null;index"`
	Number    string          `gorm:"size:64;not null"`
	Status    DocumentStatus  `gorm:"size:16;not null"`
	IssuedAt  time.Time       `gorm:"not null"`
	DueAt     time.Time       `gorm:"not null"`
	Total     decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	Currency  string          `gorm:"size:3;not null"`
	CreatedAt time.Time
}

type RecurringInvoice struct {
	ID        uint            `gorm:"primaryKey"`
	CompanyID uint            `gorm:"not null;index"`
	ClientID  uint            `gorm:"not null;index"`
	Frequency Frequency       `gorm:"size:16;not null"`
	Status    DocumentStatus  `gorm:"size:16;not null"`
	StartsAt  time.Time       `gorm:"not null"`
	EndsAt    *time.Time
	Total     decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	Currency  string          `gorm:"size:3;not null"`
	CreatedAt time.Time
}

type Estimate struct {
	ID        uint            `gorm:"primaryKey"`
	CompanyID uint            `gorm:"not null;index"`
	ClientID  uint            `gorm:"not null;index"`
	Number    string          `gorm:"size:64;not null"`
	Status    DocumentStatus  `gorm:"size:16;not null"`
	IssuedAt  time.Time       `gorm:"not null"`
	ExpiresAt time.Time       `gorm:"not null"`
	Total     decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	Currency  string          `gorm:"size:3;not null"`
	CreatedAt time.Time
}

type Bill struct {
	ID        uint            `gorm:"primaryKey"`
	CompanyID uint            `gorm:"not null;index"`
	VendorID  uint            `gorm:"not null;index"`
	Number    string          `gorm:"size:64;not null"`
	Status    DocumentStatus  `gorm:"size:16;not null"`
	IssuedAt  time.Time       `gorm:"not null"`
	DueAt     time.Time       `gorm:"not null"`
	Total     decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	Currency  string          `gorm:"size:3;not null"`
	CreatedAt time.Time
}

// All returns every model the schema bootstrap migrates, parents first.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Company{},
		&DocumentDefault{},
		&Transaction{},
		&Offering{},
		&Client{},
		&Vendor{},
		&Invoice{},
		&RecurringInvoice{},
		&Estimate{},
		&Bill{},
	}
}
