// Package migrations поднимает схему исходных таблиц трекера.
package migrations

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	pgxv5 "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// ErrDirtySchema прошлая миграция оборвалась, схема требует ручной починки.
var ErrDirtySchema = errors.New("source schema is dirty")

// Up доводит схему до последней версии из каталога dir и возвращает
// итоговую версию. Актуальная схема не считается ошибкой.
func Up(db *sql.DB, dir string) (uint, error) {
	const op = "migrations.Up"

	target, err := pgxv5.WithInstance(db, &pgxv5.Config{})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	m, err := migrate.NewWithDatabaseInstance("file://"+dir, "pgx_v5", target)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if dirty {
		return version, fmt.Errorf("%s: %w at version %d", op, ErrDirtySchema, version)
	}
	return version, nil
}
