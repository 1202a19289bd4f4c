package test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gartstein/obotseed/internal/seed/auth"
	"github.com/gartstein/obotseed/internal/seed/db"
	"github.com/gartstein/obotseed/internal/seed/factory"
	"github.com/gartstein/obotseed/internal/seed/models"
	"github.com/gartstein/obotseed/internal/seed/seeder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type IntegrationTestSuite struct {
	suite.Suite
	dbRepo      *db.Repository
	logger      *zap.Logger
	testTimeout time.Duration
}

// TestIntegrationSuite seeds a real Postgres. Point INTEGRATION_DB_HOST at it.
func TestIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests")
	}
	if os.Getenv("INTEGRATION_DB_HOST") == "" {
		t.Skip("INTEGRATION_DB_HOST not set")
	}
	suite.Run(t, new(IntegrationTestSuite))
}

func (s *IntegrationTestSuite) SetupSuite() {
	s.logger = zap.NewNop()
	s.testTimeout = 60 * time.Second

	var dbErr error
	s.dbRepo, dbErr = initializeDBWithRetry()
	if dbErr != nil {
		s.T().Fatal("Database initialization failed:", dbErr)
	}
}

func initializeDBWithRetry() (*db.Repository, error) {
	cfg := &db.Config{
		Driver:   db.DriverPostgres,
		Host:     os.Getenv("INTEGRATION_DB_HOST"),
		Port:     5432,
		User:     "test",
		Password: "test",
		DBName:   "test",
		SSLMode:  "disable",
	}

	var repo *db.Repository
	var err error

	err = backoff.Retry(func() error {
		repo, err = db.NewRepository(cfg)
		return err
	}, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 10))

	return repo, err
}

func (s *IntegrationTestSuite) TearDownSuite() {
	if s.dbRepo != nil {
		_ = s.dbRepo.Close()
	}
}

func (s *IntegrationTestSuite) SetupTest() {
	if s.dbRepo == nil {
		s.T().Fatal("Database connection not initialized")
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.testTimeout)
	defer cancel()

	if err := s.dbRepo.Exec(ctx, "TRUNCATE TABLE users, companies, document_defaults, transactions, "+
		"offerings, clients, vendors, invoices, recurring_invoices, estimates, bills RESTART IDENTITY CASCADE"); err != nil {
		s.T().Fatal("Failed to clean database:", err)
	}
}

func (s *IntegrationTestSuite) newSeeder() *seeder.Seeder {
	return seeder.NewSeeder(
		s.dbRepo,
		factory.New(s.dbRepo, 1, s.logger),
		auth.NewBcryptHasher(bcrypt.MinCost),
		nil,
		s.logger,
	)
}

func (s *IntegrationTestSuite) TestSeed() {
	ctx, cancel := context.WithTimeout(context.Background(), s.testTimeout)
	defer cancel()

	if err := s.newSeeder().Run(ctx); err != nil {
		s.T().Fatal("Seed failed:", err)
	}

	users, err := s.dbRepo.FindUsersByEmail(ctx, seeder.Admin.Email)
	s.Require().NoError(err)
	s.Require().Len(users, 1)

	companies, err := s.dbRepo.OwnedCompanies(ctx, users[0].ID)
	s.Require().NoError(err)
	s.Require().Len(companies, 4)
	assert.True(s.T(), companies[0].PersonalCompany)
	// RESTART IDENTITY makes the fixed current company pointer line up.
	assert.Equal(s.T(), companies[0].ID, *users[0].CurrentCompanyID)

	n, err := s.dbRepo.CountByCompany(ctx, &models.Transaction{}, companies[0].ID)
	s.Require().NoError(err)
	assert.Equal(s.T(), int64(250), n)

	bill, err := s.dbRepo.FindDocumentDefault(ctx, companies[0].ID, models.DocumentBill)
	s.Require().NoError(err)
	assert.Equal(s.T(), "Conta a Pagar", bill.Header)
	assert.Equal(s.T(), "CPG", bill.NumberPrefix)
}

func (s *IntegrationTestSuite) TestSeedTwice() {
	ctx, cancel := context.WithTimeout(context.Background(), s.testTimeout)
	defer cancel()

	s.Require().NoError(s.newSeeder().Run(ctx))
	s.Require().NoError(s.newSeeder().Run(ctx))

	n, err := s.dbRepo.CountUsersByEmail(ctx, seeder.Admin.Email)
	s.Require().NoError(err)
	assert.Equal(s.T(), int64(2), n)
}
