package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DRSN-tech/bakery-backend/internal/cfg"
	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/DRSN-tech/bakery-backend/pkg/logger"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	// Состояние - три строки state_entries, большой пул не нужен
	maxConns        = 4
	maxConnIdleTime = 5 * time.Minute
	pingTimeout     = 5 * time.Second
)

// StateDB - пул соединений к базе, где лежит таблица state_entries.
type StateDB struct {
	Pool *pgxpool.Pool
	dsn  string
}

// Connect открывает пул и проверяет соединение.
func Connect(ctx context.Context, cfg *cfg.PGDBCfg) (*StateDB, error) {
	const op = "StateDB.Connect"

	dsn := BuildDSN(cfg)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	poolCfg.MaxConns = maxConns
	poolCfg.MaxConnIdleTime = maxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, e.Wrap(op, err)
	}

	return &StateDB{Pool: pool, dsn: dsn}, nil
}

// BuildDSN собирает строку подключения key=value. Значения берутся в кавычки.
func BuildDSN(cfg *cfg.PGDBCfg) string {
	pairs := []struct{ k, v string }{
		{"host", cfg.Host},
		{"port", cfg.Port},
		{"user", cfg.User},
		{"password", cfg.Password},
		{"dbname", cfg.DBName},
		{"sslmode", cfg.SSLMode},
	}

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if p.v == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%s", p.k, quote(p.v)))
	}
	return strings.Join(parts, " ")
}

func quote(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

func (db *StateDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

// Migrate доводит схему до последней версии из migrationsURL.
func (db *StateDB) Migrate(migrationsURL string, logger logger.Logger) error {
	const op = "StateDB.Migrate"

	sqlDB, err := sql.Open("pgx", db.dsn)
	if err != nil {
		return e.Wrap(op, err)
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		_ = sqlDB.Close()
		return e.Wrap(op, err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsURL, "postgres", driver)
	if err != nil {
		_ = driver.Close()
		return e.Wrap(op, err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return e.Wrap(op, err)
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		logger.Warnf("no migrations found in %s", migrationsURL)
		return nil
	}
	if err != nil {
		return e.Wrap(op, err)
	}
	if dirty {
		return e.Wrap(op, fmt.Errorf("schema version %d is dirty", version))
	}

	logger.Infof("state schema at version %d", version)
	return nil
}
