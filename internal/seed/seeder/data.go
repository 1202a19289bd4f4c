package seeder

import (
	"github.com/gartstein/obotseed/internal/seed/factory"
	"github.com/gartstein/obotseed/internal/seed/models"
)

// Account describes a seeded user.
type Account struct {
	Name     string
	Email    string
	Password string
	// CurrentCompanyID is stored verbatim; it is not derived from the
	// companies the run creates.
	CurrentCompanyID uint
}

// CompanyDescriptor names an additional company and its locale profile.
type CompanyDescriptor struct {
	Name     string
	Country  string
	Currency string
	Locale   string
}

// LocalizedLabel overrides the header and prefix of one document type.
type LocalizedLabel struct {
	Type  models.DocumentType
	Label models.DocumentLabel
}

var Admin = Account{
	Name:             "Admin",
	Email:            "admin@obotzap.com",
	Password:         "password!",
	CurrentCompanyID: 1,
}

var AdditionalCompanies = []CompanyDescriptor{
	{Name: "São Paulo Tech Ltda", Country: "BR", Currency: "BRL", Locale: "pt"},
	{Name: "Rio Analytics Serviços", Country: "BR", Currency: "BRL", Locale: "pt"},
	{Name: "Curitiba Data Studio", Country: "BR", Currency: "BRL", Locale: "pt"},
}

var PtBRDocumentLabels = []LocalizedLabel{
	{Type: models.DocumentInvoice, Label: models.DocumentLabel{Header: "Fatura", NumberPrefix: "FAT"}},
	{Type: models.DocumentEstimate, Label: models.DocumentLabel{Header: "Proposta", NumberPrefix: "ORC"}},
	{Type: models.DocumentBill, Label: models.DocumentLabel{Header: "Conta a Pagar", NumberPrefix: "CPG"}},
}

// personalCompany is the admin's own company with the full demo volume.
func personalCompany(ownerID uint) factory.CompanyOptions {
	return factory.CompanyOptions{
		OwnerID:           ownerID,
		Name:              "FinObotZap",
		Personal:          true,
		Country:           "BR",
		Currency:          "BRL",
		Locale:            "pt",
		Transactions:      250,
		Offerings:         factory.DefaultVolume,
		Clients:           factory.DefaultVolume,
		Vendors:           factory.DefaultVolume,
		Invoices:          factory.Count(30),
		RecurringInvoices: factory.DefaultVolume,
		Estimates:         factory.Count(30),
		Bills:             factory.Count(30),
	}
}

func additionalCompany(ownerID uint, c CompanyDescriptor) factory.CompanyOptions {
	return factory.CompanyOptions{
		OwnerID:           ownerID,
		Name:              c.Name,
		Personal:          false,
		Country:           c.Country,
		Currency:          c.Currency,
		Locale:            c.Locale,
		Transactions:      50,
		Offerings:         factory.DefaultVolume,
		Clients:           factory.DefaultVolume,
		Vendors:           factory.DefaultVolume,
		Invoices:          factory.DefaultVolume,
		RecurringInvoices: factory.DefaultVolume,
		Estimates:         factory.DefaultVolume,
		Bills:             factory.DefaultVolume,
	}
}
