package database

import (
	"context"
	"database/sql"
	"errors"
	"sort"
)

// GetSetting returns the stored value for key and whether it exists.
func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	value, err := d.LookupSetting(ctx, key)
	if err != nil {
		return "", false
	}
	return value, true
}

// LookupSetting is GetSetting with the error exposed. A missing key yields ErrNotFound.
func (d *Database) LookupSetting(ctx context.Context, key string) (string, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (string, error) {
		var value *string
		err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
		if errors.Is(err, sql.ErrNoRows) {
			return "", wrapErr("get", key, ErrNotFound)
		}
		if err != nil {
			return "", wrapErr("get", key, err)
		}
		if value == nil {
			return "", wrapErr("get", key, ErrNotFound)
		}
		return *value, nil
	})
}

func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx, upsertSetting, key, value)
		return wrapErr("set", key, err)
	})
}

// SetSettings writes all values in one transaction.
func (d *Database) SetSettings(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	return d.writeSettings(ctx, values, false)
}

// ReplaceSettings swaps the whole key space for values in one transaction.
func (d *Database) ReplaceSettings(ctx context.Context, values map[string]string) error {
	return d.writeSettings(ctx, values, true)
}

func (d *Database) writeSettings(ctx context.Context, values map[string]string, clear bool) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		tx, err := d.DB.BeginTx(ctx, nil)
		if err != nil {
			return wrapErr("begin", "", err)
		}
		if clear {
			if _, err := tx.ExecContext(ctx, "DELETE FROM settings"); err != nil {
				_ = tx.Rollback()
				return wrapErr("clear", "", err)
			}
		}
		stmt, err := tx.PrepareContext(ctx, upsertSetting)
		if err != nil {
			_ = tx.Rollback()
			return wrapErr("prepare", "", err)
		}
		defer stmt.Close()

		keys := make([]string, 0, len(values))
		for key := range values {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if _, err := stmt.ExecContext(ctx, key, values[key]); err != nil {
				_ = tx.Rollback()
				return wrapErr("set", key, err)
			}
		}
		return wrapErr("commit", "", tx.Commit())
	})
}

func (d *Database) DeleteSetting(ctx context.Context, key string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key)
		return wrapErr("delete", key, err)
	})
}

// AllSettings returns every stored key.
func (d *Database) AllSettings(ctx context.Context) (map[string]string, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (map[string]string, error) {
		rows, err := d.DB.QueryContext(ctx, "SELECT key, value FROM settings WHERE value IS NOT NULL ORDER BY key ASC")
		if err != nil {
			return nil, wrapErr("list", "", err)
		}
		defer rows.Close()

		out := make(map[string]string)
		for rows.Next() {
			var key, value string
			if err := rows.Scan(&key, &value); err != nil {
				return nil, wrapErr("list", "", err)
			}
			out[key] = value
		}
		if err := rows.Err(); err != nil {
			return nil, wrapErr("list", "", err)
		}
		return out, nil
	})
}

// ClearSettings removes every stored key.
func (d *Database) ClearSettings(ctx context.Context) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx, "DELETE FROM settings")
		return wrapErr("clear", "", err)
	})
}

const upsertSetting = "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value"
