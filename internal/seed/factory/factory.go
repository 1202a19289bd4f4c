// Package factory builds companies populated with synthetic, locale aware
// financial records for demo environments.
package factory

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/gartstein/obotseed/internal/seed/db"
	"github.com/gartstein/obotseed/internal/seed/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Store opens the transaction a company is written in.
type Store interface {
	WithTransaction(ctx context.Context, fn func(repo *db.Repository) error) error
}

// Writer is what the factory needs from the repository inside a transaction.
type Writer interface {
	CreateCompany(ctx context.Context, company *models.Company) error
	CreateRecords(ctx context.Context, records interface{}) error
	SaveDocumentDefault(ctx context.Context, def *models.DocumentDefault) error
}

// Factory creates companies. It is not safe for concurrent use.
type Factory struct {
	store  Store
	rng    *rand.Rand
	now    func() time.Time
	logger *zap.Logger
}

// New returns a Factory whose generated data is fully determined by seed.
func New(store Store, seed uint64, logger *zap.Logger) *Factory {
	return &Factory{
		store:  store,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now:    time.Now,
		logger: logger.Named("company_factory"),
	}
}

// Create builds one company as described by opts and persists it together
// with its document defaults and financial records in a single transaction.
func (f *Factory) Create(ctx context.Context, opts CompanyOptions) (*models.Company, error) {
	profile := profileFor(opts.Country)
	defaults, err := companyDefaults(opts.Currency, opts.Locale)
	if err != nil {
		return nil, err
	}

	name := opts.Name
	if name == "" {
		name = profile.companyName(f.rng)
	}
	company := &models.Company{
		Reference:       uuid.New(),
		UserID:          opts.OwnerID,
		Name:            name,
		PersonalCompany: opts.Personal,
		Profile:         profile.address(f.rng),
		Defaults:        defaults,
	}

	vols := opts.volumes()
	err = f.store.WithTransaction(ctx, func(tx *db.Repository) error {
		b := &builder{
			w:         tx,
			r:         f.rng,
			now:       f.now().UTC(),
			company:   company,
			profile:   profile,
			catalog:   catalogFor(baseLanguage(defaults.Locale)),
			precision: int32(defaults.CurrencyPrecision),
		}
		return b.build(ctx, vols)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create company %q: %w", name, err)
	}

	f.logger.Info("company created",
		zap.Uint("company_id", company.ID),
		zap.String("company", company.Name),
		zap.Bool("personal", company.PersonalCompany),
		zap.String("country", company.Profile.CountryCode),
		zap.String("currency", company.Defaults.Currency),
		zap.Int("transactions", vols.transactions),
		zap.Int("invoices", vols.invoices),
		zap.Int("estimates", vols.estimates),
		zap.Int("bills", vols.bills),
	)
	return company, nil
}

type builder struct {
	w         Writer
	r         *rand.Rand
	now       time.Time
	company   *models.Company
	profile   *countryProfile
	catalog   catalog
	precision int32

	defaults map[models.DocumentType]*models.DocumentDefault
	clients  []models.Client
	vendors  []models.Vendor
}

func (b *builder) build(ctx context.Context, v volumes) error {
	if err := b.w.CreateCompany(ctx, b.company); err != nil {
		return err
	}

	steps := []struct {
		name string
		run  func(context.Context, int) error
		n    int
	}{
		{"document defaults", b.documentDefaults, len(models.DocumentTypes)},
		{"offerings", b.offerings, v.offerings},
		{"clients", b.createClients, v.clients},
		{"vendors", b.createVendors, v.vendors},
		{"transactions", b.transactions, v.transactions},
		{"invoices", b.invoices, v.invoices},
		{"recurring invoices", b.recurringInvoices, v.recurringInvoices},
		{"estimates", b.estimates, v.estimates},
		{"bills", b.bills, v.bills},
	}
	for _, s := range steps {
		if s.n == 0 {
			continue
		}
		if err := s.run(ctx, s.n); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return b.saveSequences(ctx)
}

func (b *builder) documentDefaults(ctx context.Context, _ int) error {
	defs := newDocumentDefaults(b.company.ID)
	if err := b.w.CreateRecords(ctx, &defs); err != nil {
		return err
	}
	b.defaults = make(map[models.DocumentType]*models.DocumentDefault, len(defs))
	for i := range defs {
		b.defaults[defs[i].Type] = &defs[i]
	}
	return nil
}

// saveSequences persists the numbering advanced while issuing documents.
func (b *builder) saveSequences(ctx context.Context) error {
	for _, t := range models.DocumentTypes {
		def := b.defaults[t]
		if def == nil || def.NumberNext == firstNumber {
			continue
		}
		if err := b.w.SaveDocumentDefault(ctx, def); err != nil {
			return fmt.Errorf("save %s sequence: %w", t, err)
		}
	}
	return nil
}

func (b *builder) number(t models.DocumentType) string {
	return b.defaults[t].NextNumber()
}

// amount returns a random amount in [lo, hi] at the currency's precision.
func (b *builder) amount(lo, hi int64) decimal.Decimal {
	scale := int64(1)
	for i := int32(0); i < b.precision; i++ {
		scale *= 10
	}
	units := lo*scale + b.r.Int64N((hi-lo)*scale+1)
	return decimal.New(units, -b.precision)
}

func (b *builder) daysAgo(maxDays int) time.Time {
	d := b.now.AddDate(0, 0, -b.r.IntN(maxDays))
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func (b *builder) offerings(ctx context.Context, n int) error {
	records := make([]models.Offering, 0, n)
	for i := 0; i < n; i++ {
		name := pick(b.r, b.catalog.offerings)
		records = append(records, models.Offering{
			CompanyID:   b.company.ID,
			Name:        name,
			Description: name,
			Price:       b.amount(50, 5000),
			Sellable:    true,
			Purchasable: b.r.IntN(3) == 0,
		})
	}
	return b.w.CreateRecords(ctx, &records)
}

func (b *builder) createClients(ctx context.Context, n int) error {
	b.clients = make([]models.Client, 0, n)
	for i := 0; i < n; i++ {
		b.clients = append(b.clients, models.Client{
			CompanyID: b.company.ID,
			Contact:   b.profile.contact(b.r, b.r.IntN(4) > 0),
			Currency:  b.company.Defaults.Currency,
		})
	}
	return b.w.CreateRecords(ctx, &b.clients)
}

func (b *builder) createVendors(ctx context.Context, n int) error {
	b.vendors = make([]models.Vendor, 0, n)
	for i := 0; i < n; i++ {
		b.vendors = append(b.vendors, models.Vendor{
			CompanyID: b.company.ID,
			Contact:   b.profile.contact(b.r, true),
		})
	}
	return b.w.CreateRecords(ctx, &b.vendors)
}

func (b *builder) transactions(ctx context.Context, n int) error {
	records := make([]models.Transaction, 0, n)
	for i := 0; i < n; i++ {
		tx := models.Transaction{
			CompanyID: b.company.ID,
			Reference: uuid.New(),
			PostedAt:  b.daysAgo(365),
		}
		if b.r.IntN(2) == 0 {
			tx.Type = models.Deposit
			tx.Description = pick(b.r, b.catalog.deposits)
			tx.Amount = b.amount(100, 20000)
		} else {
			tx.Type = models.Withdrawal
			tx.Description = pick(b.r, b.catalog.withdrawals)
			tx.Amount = b.amount(10, 8000)
		}
		records = append(records, tx)
	}
	return b.w.CreateRecords(ctx, &records)
}

func (b *builder) invoices(ctx context.Context, n int) error {
	records := make([]models.Invoice, 0, n)
	for i := 0; i < n; i++ {
		issued := b.daysAgo(180)
		due := issued.AddDate(0, 0, 30)
		records = append(records, models.Invoice{
			CompanyID: b.company.ID,
			ClientID:  pick(b.r, b.clients).ID,
			Number:    b.number(models.DocumentInvoice),
			Status:    b.receivableStatus(due),
			IssuedAt:  issued,
			DueAt:     due,
			Total:     b.amount(100, 15000),
			Currency:  b.company.Defaults.Currency,
		})
	}
	return b.w.CreateRecords(ctx, &records)
}

func (b *builder) recurringInvoices(ctx context.Context, n int) error {
	frequencies := []models.Frequency{models.Weekly, models.Monthly, models.Monthly, models.Yearly}
	records := make([]models.RecurringInvoice, 0, n)
	for i := 0; i < n; i++ {
		starts := b.daysAgo(365)
		rec := models.RecurringInvoice{
			CompanyID: b.company.ID,
			ClientID:  pick(b.r, b.clients).ID,
			Frequency: pick(b.r, frequencies),
			Status:    models.StatusActive,
			StartsAt:  starts,
			Total:     b.amount(100, 5000),
			Currency:  b.company.Defaults.Currency,
		}
		if b.r.IntN(4) == 0 {
			rec.Status = models.StatusDraft
		}
		if b.r.IntN(2) == 0 {
			ends := starts.AddDate(1, 0, 0)
			rec.EndsAt = &ends
		}
		records = append(records, rec)
	}
	return b.w.CreateRecords(ctx, &records)
}

func (b *builder) estimates(ctx context.Context, n int) error {
	statuses := []models.DocumentStatus{models.StatusDraft, models.StatusSent, models.StatusAccepted, models.StatusDeclined}
	records := make([]models.Estimate, 0, n)
	for i := 0; i < n; i++ {
		issued := b.daysAgo(180)
		records = append(records, models.Estimate{
			CompanyID: b.company.ID,
			ClientID:  pick(b.r, b.clients).ID,
			Number:    b.number(models.DocumentEstimate),
			Status:    pick(b.r, statuses),
			IssuedAt:  issued,
			ExpiresAt: issued.AddDate(0, 0, 30),
			Total:     b.amount(100, 15000),
			Currency:  b.company.Defaults.Currency,
		})
	}
	return b.w.CreateRecords(ctx, &records)
}

func (b *builder) bills(ctx context.Context, n int) error {
	records := make([]models.Bill, 0, n)
	for i := 0; i < n; i++ {
		issued := b.daysAgo(180)
		due := issued.AddDate(0, 0, 15+b.r.IntN(31))
		records = append(records, models.Bill{
			CompanyID: b.company.ID,
			VendorID:  pick(b.r, b.vendors).ID,
			Number:    b.number(models.DocumentBill),
			Status:    b.receivableStatus(due),
			IssuedAt:  issued,
			DueAt:     due,
			Total:     b.amount(50, 10000),
			Currency:  b.company.Defaults.Currency,
		})
	}
	return b.w.CreateRecords(ctx, &records)
}

// receivableStatus picks a plausible state for a document due at due.
func (b *builder) receivableStatus(due time.Time) models.DocumentStatus {
	switch {
	case b.r.IntN(10) == 0:
		return models.StatusDraft
	case due.Before(b.now):
		if b.r.IntN(3) > 0 {
			return models.StatusPaid
		}
		return models.StatusOverdue
	default:
		return models.StatusSent
	}
}
