// Package seeder populates a fresh database with the demo tenant: an admin
// user, its personal company, a few additional companies and pt-BR document
// labels. Running it twice creates everything twice.
package seeder

import (
	"context"
	"fmt"
	"time"

	"github.com/gartstein/obotseed/internal/pkg/utils"
	"github.com/gartstein/obotseed/internal/seed/events"
	"github.com/gartstein/obotseed/internal/seed/factory"
	"github.com/gartstein/obotseed/internal/seed/models"
	"go.uber.org/zap"
)

// Repository defines the storage the seeder writes through directly.
type Repository interface {
	CreateUser(ctx context.Context, user *models.User) error
	FirstOwnedCompany(ctx context.Context, userID uint) (*models.Company, error)
	UpdateDocumentDefault(ctx context.Context, companyID uint, docType models.DocumentType, label models.DocumentLabel) (int64, error)
}

type CompanyFactory interface {
	Create(ctx context.Context, opts factory.CompanyOptions) (*models.Company, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}

type Notifier interface {
	Notify(ctx context.Context, event events.Event) error
}

// Seeder runs the demo seed in a fixed order.
type Seeder struct {
	repo      Repository
	companies CompanyFactory
	hasher    PasswordHasher
	notifier  Notifier
	logger    *zap.Logger
	now       func() time.Time
}

// NewSeeder constructs a Seeder. notifier may be nil.
func NewSeeder(repo Repository, companies CompanyFactory, hasher PasswordHasher, notifier Notifier, logger *zap.Logger) *Seeder {
	if notifier == nil {
		notifier = events.Nop{}
	}
	return &Seeder{
		repo:      repo,
		companies: companies,
		hasher:    hasher,
		notifier:  notifier,
		logger:    logger.Named("seeder"),
		now:       time.Now,
	}
}

// Run creates the admin with its personal company, then the additional
// companies, then localizes the document defaults of the admin's first
// company. The first failure aborts the run; rows written before it stay.
func (s *Seeder) Run(ctx context.Context) error {
	s.logger.Info("seed started", zap.String("email", Admin.Email))

	user, err := s.createAdmin(ctx)
	if err != nil {
		return err
	}

	for _, c := range AdditionalCompanies {
		company, err := s.companies.Create(ctx, additionalCompany(user.ID, c))
		if err != nil {
			return fmt.Errorf("failed to create company %q: %w", c.Name, err)
		}
		s.notify(ctx, events.NewCompanySeeded(company, s.now()))
	}

	if err := s.localizeDocumentDefaults(ctx, user.ID, PtBRDocumentLabels); err != nil {
		return err
	}

	s.notify(ctx, events.NewSeedCompleted(user.ID, s.now()))
	s.logger.Info("seed completed",
		zap.Uint("user_id", user.ID),
		zap.Int("companies", 1+len(AdditionalCompanies)),
	)
	return nil
}

// createAdmin stores the admin account and builds its personal company.
func (s *Seeder) createAdmin(ctx context.Context) (*models.User, error) {
	hashed, err := s.hasher.Hash(Admin.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	user := &models.User{
		Name:             Admin.Name,
		Email:            Admin.Email,
		Password:         hashed,
		CurrentCompanyID: utils.Ptr(Admin.CurrentCompanyID),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}

	company, err := s.companies.Create(ctx, personalCompany(user.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to create personal company: %w", err)
	}
	s.notify(ctx, events.NewCompanySeeded(company, s.now()))

	s.logger.Info("admin created",
		zap.Uint("user_id", user.ID),
		zap.Uint("personal_company_id", company.ID),
	)
	return user, nil
}

// localizeDocumentDefaults applies labels to the first company owned by
// userID. Types without a stored default are skipped.
func (s *Seeder) localizeDocumentDefaults(ctx context.Context, userID uint, labels []LocalizedLabel) error {
	company, err := s.repo.FirstOwnedCompany(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to resolve first owned company: %w", err)
	}

	for _, l := range labels {
		rows, err := s.repo.UpdateDocumentDefault(ctx, company.ID, l.Type, l.Label)
		if err != nil {
			return fmt.Errorf("failed to localize %s default: %w", l.Type, err)
		}
		if rows == 0 {
			s.logger.Warn("no document default to localize",
				zap.Uint("company_id", company.ID),
				zap.String("type", string(l.Type)),
			)
		}
	}
	return nil
}

func (s *Seeder) notify(ctx context.Context, event events.Event) {
	if err := s.notifier.Notify(ctx, event); err != nil {
		s.logger.Error("Failed to publish seed event",
			zap.Error(err),
			zap.String("event_type", string(event.Type)),
		)
	}
}
