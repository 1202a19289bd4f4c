package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	e "github.com/gartstein/obotseed/internal/seed/errors"
	"github.com/gartstein/obotseed/internal/seed/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	batchSize = 100
)

type Repository struct {
	db *gorm.DB
}

type Config struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	// Path is the SQLite database file, ":memory:" for a throwaway database.
	Path string
	// ConnectTimeout bounds how long opening the connection is retried.
	ConnectTimeout time.Duration
}

func NewRepository(cfg *Config) (*Repository, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	var db *gorm.DB
	open := func() error {
		var err error
		db, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
		return err
	}

	var policy backoff.BackOff = &backoff.StopBackOff{}
	if cfg.ConnectTimeout > 0 {
		b := backoff.NewExponentialBackOff()
		b.MaxElapsedTime = cfg.ConnectTimeout
		policy = b
	}
	if err := backoff.Retry(open, policy); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if strings.EqualFold(cfg.Driver, DriverSQLite) {
		// One connection keeps ":memory:" databases alive and serializes writers.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access sql pool: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{db: db}, nil
}

func dialectorFor(cfg *Config) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.Driver) {
	case DriverPostgres, "":
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)
		return postgres.Open(dsn), nil
	case DriverSQLite:
		if cfg.Path == "" {
			return nil, fmt.Errorf("%w: sqlite driver requires a path", e.ErrInvalidInput)
		}
		return sqlite.Open(cfg.Path), nil
	default:
		return nil, fmt.Errorf("%w: unsupported driver %q", e.ErrInvalidInput, cfg.Driver)
	}
}

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return e.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", e.ErrDuplicateKey, err)
	default:
		return err
	}
}

func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *Repository) CreateCompany(ctx context.Context, company *models.Company) error {
	if err := r.db.WithContext(ctx).Create(company).Error; err != nil {
		return translate(err)
	}
	return nil
}

// CreateRecords inserts a slice of models in batches. An empty slice is a no-op.
func (r *Repository) CreateRecords(ctx context.Context, records interface{}) error {
	v := reflect.ValueOf(records)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Slice {
		return fmt.Errorf("%w: records must be a slice, got %T", e.ErrInvalidInput, records)
	}
	if v.Len() == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(records, batchSize).Error; err != nil {
		return translate(err)
	}
	return nil
}

// OwnedCompanies returns the companies owned by userID in creation order.
func (r *Repository) OwnedCompanies(ctx context.Context, userID uint) ([]models.Company, error) {
	var companies []models.Company
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&companies)
	if result.Error != nil {
		return nil, result.Error
	}
	return companies, nil
}

// FirstOwnedCompany returns the earliest created company owned by userID.
func (r *Repository) FirstOwnedCompany(ctx context.Context, userID uint) (*models.Company, error) {
	var company models.Company
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		First(&company)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return &company, nil
}

func (r *Repository) FindDocumentDefault(ctx context.Context, companyID uint, docType models.DocumentType) (*models.DocumentDefault, error) {
	var def models.DocumentDefault
	result := r.db.WithContext(ctx).
		Where("company_id = ? AND type = ?", companyID, docType).
		First(&def)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return &def, nil
}

func (r *Repository) DocumentDefaults(ctx context.Context, companyID uint) ([]models.DocumentDefault, error) {
	var defs []models.DocumentDefault
	result := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("id ASC").
		Find(&defs)
	if result.Error != nil {
		return nil, result.Error
	}
	return defs, nil
}

func (r *Repository) SaveDocumentDefault(ctx context.Context, def *models.DocumentDefault) error {
	if err := r.db.WithContext(ctx).Save(def).Error; err != nil {
		return translate(err)
	}
	return nil
}

// UpdateDocumentDefault overwrites header and number prefix of the
// (companyID, docType) default. It reports the rows affected; a missing row
// yields zero and no error.
func (r *Repository) UpdateDocumentDefault(ctx context.Context, companyID uint, docType models.DocumentType, label models.DocumentLabel) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.DocumentDefault{}).
		Where("company_id = ? AND type = ?", companyID, docType).
		Updates(map[string]interface{}{
			"header":        label.Header,
			"number_prefix": label.NumberPrefix,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *Repository) CountUsersByEmail(ctx context.Context, email string) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", email).
		Count(&count)
	return count, result.Error
}

// FindUsersByEmail returns every user registered with email, oldest first.
func (r *Repository) FindUsersByEmail(ctx context.Context, email string) ([]models.User, error) {
	var users []models.User
	result := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("id ASC").
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

// CountByCompany counts rows of model belonging to companyID.
func (r *Repository) CountByCompany(ctx context.Context, model interface{}, companyID uint) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(model).
		Where("company_id = ?", companyID).
		Count(&count)
	return count, result.Error
}

// FindByCompany loads every row of dest's model belonging to companyID, in
// insertion order. dest must be a pointer to a slice.
func (r *Repository) FindByCompany(ctx context.Context, dest interface{}, companyID uint) error {
	return r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("id ASC").
		Find(dest).Error
}

func (r *Repository) WithTransaction(ctx context.Context, fn func(repo *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}

func (r *Repository) Exec(ctx context.Context, query string, params ...interface{}) error {
	result := r.db.WithContext(ctx).Exec(query, params...)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *Repository) Close() error {
	db, err := r.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
