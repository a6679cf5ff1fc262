package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/phoenix-pos/stock-display/internal/core/port"
)

var _ port.SettingsStore = (*SettingsRepository)(nil)

// A SettingsRepository persists named string settings. A missing row reads
// as the empty-string default, mirroring an unconfigured option.
type SettingsRepository struct {
	sqldb sqldb
}

func NewSettingsRepository(sqldb sqldb) SettingsRepository {
	return SettingsRepository{sqldb}
}

func (r SettingsRepository) Setting(
	ctx context.Context, name string,
) (string, error) {
	const op = "SettingsRepository.Setting"

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	query := `SELECT value FROM settings WHERE name = $1;`

	var value string
	err := r.sqldb.QueryRowContext(ctx, query, name).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return value, nil
}

func (r SettingsRepository) SetSetting(
	ctx context.Context, name, value string,
) error {
	const op = "SettingsRepository.SetSetting"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO settings (name, value)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value;
	`

	_, err := r.sqldb.ExecContext(ctx, query, name, value)
	if err != nil {
		return fmt.Errorf("%s: failed to exec: %w", op, err)
	}
	return nil
}
