package pg

import (
	"context"
	"fmt"
	"log/slog"
)

const createCalculationsTable = `
CREATE TABLE IF NOT EXISTS calculations (
	id         SERIAL PRIMARY KEY,
	a          NUMERIC NOT NULL,
	b          NUMERIC NOT NULL,
	op         TEXT,
	result     NUMERIC NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// ensureColumns — защита для таблиц, созданных старыми версиями без части колонок.
// Все выражения идемпотентны, повторный прогон ничего не меняет.
var ensureColumns = []string{
	`ALTER TABLE calculations ADD COLUMN IF NOT EXISTS a NUMERIC`,
	`ALTER TABLE calculations ADD COLUMN IF NOT EXISTS b NUMERIC`,
	`ALTER TABLE calculations ADD COLUMN IF NOT EXISTS op TEXT`,
	`ALTER TABLE calculations ADD COLUMN IF NOT EXISTS result NUMERIC`,
	`ALTER TABLE calculations ADD COLUMN IF NOT EXISTS created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()`,
}

// Migrate создаёт таблицу calculations и доводит схему до актуальной.
// Вызывается один раз при старте; повторный прогон без ошибок даёт ту же схему.
func Migrate(ctx context.Context, db *DB, log *slog.Logger) error {
	if _, err := db.ExecContext(ctx, createCalculationsTable); err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	for _, q := range ensureColumns {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("ensure column: %w", err)
		}
	}
	if err := migrateLegacyOperationColumn(ctx, db, log); err != nil {
		return fmt.Errorf("legacy column: %w", err)
	}
	return nil
}

// migrateLegacyOperationColumn — разовый шим совместимости со старыми деплоями,
// где операция хранилась в колонке operation. Значения переносятся в op,
// затем с legacy-колонки снимается NOT NULL, чтобы новые вставки её не трогали.
// Удалить, когда legacy-деплоев не останется.
func migrateLegacyOperationColumn(ctx context.Context, db *DB, log *slog.Logger) error {
	var exists bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM information_schema.columns
			WHERE table_name = 'calculations' AND column_name = 'operation'
		)`).Scan(&exists)
	if err != nil {
		return fmt.Errorf("detect legacy column: %w", err)
	}
	if !exists {
		return nil
	}

	log.Info("legacy operation column detected, migrating values")

	if _, err := db.ExecContext(ctx,
		`UPDATE calculations SET op = operation WHERE op IS NULL AND operation IS NOT NULL`); err != nil {
		return fmt.Errorf("copy legacy values: %w", err)
	}

	// Снятие NOT NULL может не пройти (например, не хватает прав) — это не повод
	// рушить старт, старую колонку новый код всё равно не пишет.
	if _, err := db.ExecContext(ctx,
		`ALTER TABLE calculations ALTER COLUMN operation DROP NOT NULL`); err != nil {
		log.Warn("legacy column constraint relaxation failed", "error", err)
	}
	return nil
}
