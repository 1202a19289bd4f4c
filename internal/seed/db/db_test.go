package db

import (
	"context"
	"errors"
	"testing"

	e "github.com/gartstein/obotseed/internal/seed/errors"
	"github.com/gartstein/obotseed/internal/seed/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// SetupTestDB initializes an in-memory SQLite database for testing.
func SetupTestDB(t *testing.T) *Repository {
	repo, err := NewRepository(&Config{Driver: DriverSQLite, Path: ":memory:"})
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func createOwner(t *testing.T, repo *Repository) *models.User {
	user := &models.User{Name: "Owner", Email: "owner@example.com", Password: "x"}
	require.NoError(t, repo.CreateUser(context.Background(), user), "CreateUser should succeed")
	return user
}

func createCompany(t *testing.T, repo *Repository, ownerID uint, name string) *models.Company {
	company := &models.Company{
		Reference: uuid.New(),
		UserID:    ownerID,
		Name:      name,
		Defaults:  models.CompanyDefaults{Currency: "BRL", Locale: "pt"},
	}
	require.NoError(t, repo.CreateCompany(context.Background(), company), "CreateCompany should succeed")
	return company
}

func TestNewRepositoryRejectsUnknownDriver(t *testing.T) {
	_, err := NewRepository(&Config{Driver: "oracle"})
	assert.ErrorIs(t, err, e.ErrInvalidInput)

	_, err = NewRepository(&Config{Driver: DriverSQLite})
	assert.ErrorIs(t, err, e.ErrInvalidInput, "sqlite without a path should be rejected")
}

// TestCreateUserAllowsDuplicateEmail mirrors reseeding: nothing enforces unique emails.
func TestCreateUserAllowsDuplicateEmail(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()

	createOwner(t, repo)
	createOwner(t, repo)

	count, err := repo.CountUsersByEmail(ctx, "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestCreateCompanyDuplicateReference(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()
	owner := createOwner(t, repo)

	first := createCompany(t, repo, owner.ID, "First")
	dup := &models.Company{Reference: first.Reference, UserID: owner.ID, Name: "Dup"}

	err := repo.CreateCompany(ctx, dup)
	assert.ErrorIs(t, err, e.ErrDuplicateKey)
}

func TestOwnedCompaniesInCreationOrder(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()
	owner := createOwner(t, repo)
	other := createOwner(t, repo)

	a := createCompany(t, repo, owner.ID, "A")
	createCompany(t, repo, other.ID, "Other")
	b := createCompany(t, repo, owner.ID, "B")

	companies, err := repo.OwnedCompanies(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, companies, 2)
	assert.Equal(t, a.ID, companies[0].ID)
	assert.Equal(t, b.ID, companies[1].ID)

	first, err := repo.FirstOwnedCompany(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, first.ID)
}

func TestFirstOwnedCompanyNotFound(t *testing.T) {
	repo := SetupTestDB(t)

	_, err := repo.FirstOwnedCompany(context.Background(), 42)
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestCreateRecords(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()
	owner := createOwner(t, repo)
	company := createCompany(t, repo, owner.ID, "Ledger")

	txs := make([]models.Transaction, 0, 250)
	for i := 0; i < 250; i++ {
		txs = append(txs, models.Transaction{
			CompanyID: company.ID,
			Reference: uuid.New(),
			Type:      models.Deposit,
			Amount:    decimal.NewFromInt(int64(i)),
		})
	}
	require.NoError(t, repo.CreateRecords(ctx, txs))

	count, err := repo.CountByCompany(ctx, &models.Transaction{}, company.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(250), count)

	assert.NoError(t, repo.CreateRecords(ctx, []models.Offering{}), "empty slice should be a no-op")
	assert.ErrorIs(t, repo.CreateRecords(ctx, &models.Offering{}), e.ErrInvalidInput)
}

func TestUpdateDocumentDefault(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()
	owner := createOwner(t, repo)
	company := createCompany(t, repo, owner.ID, "Docs")

	require.NoError(t, repo.CreateRecords(ctx, []models.DocumentDefault{
		{CompanyID: company.ID, Type: models.DocumentInvoice, Header: "Invoice", NumberPrefix: "INV-"},
		{CompanyID: company.ID, Type: models.DocumentBill, Header: "Bill", NumberPrefix: "BILL-"},
	}))

	rows, err := repo.UpdateDocumentDefault(ctx, company.ID, models.DocumentInvoice,
		models.DocumentLabel{Header: "Fatura", NumberPrefix: "FAT"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	updated, err := repo.FindDocumentDefault(ctx, company.ID, models.DocumentInvoice)
	require.NoError(t, err)
	assert.Equal(t, "Fatura", updated.Header)
	assert.Equal(t, "FAT", updated.NumberPrefix)

	untouched, err := repo.FindDocumentDefault(ctx, company.ID, models.DocumentBill)
	require.NoError(t, err)
	assert.Equal(t, "Bill", untouched.Header)

	rows, err = repo.UpdateDocumentDefault(ctx, company.ID, models.DocumentEstimate,
		models.DocumentLabel{Header: "Proposta", NumberPrefix: "ORC"})
	assert.NoError(t, err, "a missing row is not an error")
	assert.Equal(t, int64(0), rows)
}

func TestDocumentDefaultUniquePerCompanyAndType(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()
	owner := createOwner(t, repo)
	company := createCompany(t, repo, owner.ID, "Docs")

	require.NoError(t, repo.CreateRecords(ctx, []models.DocumentDefault{
		{CompanyID: company.ID, Type: models.DocumentInvoice},
	}))
	err := repo.CreateRecords(ctx, []models.DocumentDefault{
		{CompanyID: company.ID, Type: models.DocumentInvoice},
	})
	assert.ErrorIs(t, err, e.ErrDuplicateKey)
}

func TestFindDocumentDefaultNotFound(t *testing.T) {
	repo := SetupTestDB(t)

	_, err := repo.FindDocumentDefault(context.Background(), 1, models.DocumentInvoice)
	assert.ErrorIs(t, err, e.ErrNotFound)
}

// TestWithTransaction ensures transactions commit and roll back.
func TestWithTransaction(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()
	owner := createOwner(t, repo)

	err := repo.WithTransaction(ctx, func(txRepo *Repository) error {
		return txRepo.CreateCompany(ctx, &models.Company{Reference: uuid.New(), UserID: owner.ID, Name: "Committed"})
	})
	require.NoError(t, err, "WithTransaction should execute successfully")

	boom := errors.New("boom")
	err = repo.WithTransaction(ctx, func(txRepo *Repository) error {
		if err := txRepo.CreateCompany(ctx, &models.Company{Reference: uuid.New(), UserID: owner.ID, Name: "RolledBack"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	companies, err := repo.OwnedCompanies(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, companies, 1, "rolled back company should not persist")
	assert.Equal(t, "Committed", companies[0].Name)
}
