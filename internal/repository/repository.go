// filepath: internal/repository/repository.go
package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"payinfo/internal/config"
	"payinfo/internal/logging"

	"github.com/Masterminds/squirrel"
	"github.com/patrickmn/go-cache"
	_ "modernc.org/sqlite" // SQLite driver
)

// ErrPaymentInfoNotFound is returned when no live record exists for a reference id.
var ErrPaymentInfoNotFound = errors.New("payment info not found")

// ErrPaymentInfoExists is returned by InsertPaymentInfo when a live record already uses the reference id.
var ErrPaymentInfoExists = errors.New("payment info already exists")

const defaultCacheTTL = 5 * time.Minute

// Repository provides access to the SQLite store.
type Repository struct {
	DB      *sql.DB
	Cache   *cache.Cache
	Builder squirrel.StatementBuilderType // SQL Query Builder

	// Now is the clock used for expiry decisions.
	Now func() time.Time
}

// NewRepository opens the SQLite database configured in cfg.
// The schema is not touched; see EnsureSchemaBootstrapped.
func NewRepository(cfg *config.Config) (*Repository, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.Database.Path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	logging.Log.Debugf("Opened database '%s' (cache ttl %v)", cfg.Database.Path, ttl)

	return &Repository{
		DB:      db,
		Cache:   cache.New(ttl, 2*ttl),
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		Now:     time.Now,
	}, nil
}

// Close closes the underlying database.
func (r *Repository) Close() error {
	return r.DB.Close()
}
