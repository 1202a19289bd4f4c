// Package models contains the domain models of the invoicing application
// touched by the seeder, configured to work using GORM as the ORM.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an application account. A user owns any number of companies and
// points at exactly one of them as its current company.
type User struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:255;not null"`
	// Email is indexed but not unique: reseeding inserts a second admin.
	Email    string `gorm:"size:255;not null;index"`
	Password string `gorm:"size:255;not null"`
	// CurrentCompanyID is a plain pointer without a foreign key, it may be
	// set before the company it names exists.
	CurrentCompanyID *uint
	OwnedCompanies   []Company `gorm:"foreignKey:UserID"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Company is a tenant. Every financial record belongs to exactly one company.
type Company struct {
	ID        uint      `gorm:"primaryKey"`
	Reference uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	// UserID is the owner.
	UserID          uint            `gorm:"not null;index"`
	Name            string          `gorm:"size:255;not null"`
	PersonalCompany bool            `gorm:"not null"`
	Profile         CompanyProfile  `gorm:"embedded;embeddedPrefix:profile_"`
	Defaults        CompanyDefaults `gorm:"embedded;embeddedPrefix:default_"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CompanyProfile holds the address and registration fields that depend on
// the company's country.
type CompanyProfile struct {
	Street        string `gorm:"size:255"`
	Number        string `gorm:"size:16"`
	Neighbourhood string `gorm:"size:128"`
	City          string `gorm:"size:128"`
	State         string `gorm:"size:8"`
	PostalCode    string `gorm:"size:16"`
	CountryCode   string `gorm:"size:2;index"`
	Phone         string `gorm:"size:32"`
	TaxID         string `gorm:"size:32"`
}

// CompanyDefaults carries the currency and locale formatting conventions.
type CompanyDefaults struct {
	Currency          string `gorm:"size:3;not null"`
	Locale            string `gorm:"size:16;not null"`
	CurrencyPrecision int
	DecimalMark       string `gorm:"size:1"`
	ThousandsSep      string `gorm:"size:1"`
	// PercentFirst places the percent sign before the number.
	PercentFirst bool
	WeekStart    time.Weekday
	DateFormat   string `gorm:"size:16"`
}
