package pg

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

const (
	migrationsTable = "schema_migrations"
	schemaName      = "public"
	migrationsPath  = "./migrations"

	maxAttempts = 3
)

type Repository struct {
	db         *sql.DB
	classifier *PostgresErrorClassifier
	lg         *zap.SugaredLogger

	syncMu     sync.Mutex
	stopSync   chan struct{}
	syncDone   chan struct{}
	workerPool *WorkerPool
}

func New(databaseURI string, lg *zap.SugaredLogger) (*Repository, error) {
	pool, err := pgxpool.New(context.Background(), databaseURI)
	if err != nil {
		return nil, err
	}

	db := stdlib.OpenDBFromPool(pool)

	driver, err := postgres.WithInstance(db, &postgres.Config{
		MigrationsTable: migrationsTable,
		SchemaName:      schemaName,
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	absPath, err := filepath.Abs(migrationsPath)
	if err != nil {
		db.Close()
		return nil, err
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		db.Close()
		return nil, err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		db.Close()
		return nil, err
	}

	return newRepository(db, lg), nil
}

func newRepository(db *sql.DB, lg *zap.SugaredLogger) *Repository {
	if lg == nil {
		lg = zap.NewNop().Sugar()
	}

	return &Repository{
		db:         db,
		classifier: NewPostgresErrorClassifier(),
		lg:         lg,
	}
}

func (r *Repository) Ping() error {
	return r.db.Ping()
}

func (r *Repository) Shutdown() error {
	r.StopInventorySync()
	return r.db.Close()
}

// executeWithRetryConnection - повторяет fn при повторяемой ошибке Postgres,
// пауза между попытками 1s, 3s, 5s
func (r *Repository) executeWithRetryConnection(ctx context.Context, fn func(db *sql.DB) error) error {
	var err error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		err = fn(r.db)
		if err == nil || r.classifier.Classify(err) != Retriable {
			return err
		}

		if attempt == maxAttempts-1 {
			break
		}

		r.lg.Warnf("retriable postgres error, attempt %d: %v", attempt+1, err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(getAttemptDelay(attempt)):
		}
	}

	return err
}

func getAttemptDelay(attempt int) time.Duration {
	switch attempt {
	case 0:
		return 1 * time.Second
	case 1:
		return 3 * time.Second
	default:
		return 5 * time.Second
	}
}
