package click

import (
	"context"
	"fmt"

	"miniCalc/internal/domain"
	"miniCalc/internal/ports"
)

const calculationsAnalyticsTable = "calculations_analytics"

var _ ports.IOperationAnalytics = (*OperationWriter)(nil)

// OperationWriter пишет операции в ClickHouse в формате, удобном для аналитики
// (GROUP BY op, агрегации по времени и т.д.).
type OperationWriter struct {
	db *Client
}

// NewOperationWriter создаёт писатель операций для аналитики.
func NewOperationWriter(db *Client) *OperationWriter {
	return &OperationWriter{db: db}
}

// EnsureTable создаёт таблицу аналитики, если её ещё нет. Вызови один раз при старте приложения.
func (w *OperationWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id         Int64,
			a          Float64,
			b          Float64,
			op         String,
			result     Float64,
			created_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (created_at, op)
		PARTITION BY toYYYYMM(created_at)`,
		calculationsAnalyticsTable,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteOperation реализует ports.IOperationAnalytics: пишет одну операцию в ClickHouse.
func (w *OperationWriter) WriteOperation(ctx context.Context, op domain.Operation) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (id, a, b, op, result, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		calculationsAnalyticsTable,
	)
	_, err := w.db.DB().ExecContext(ctx, query,
		op.ID, op.A, op.B, op.Op, op.Result, op.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert operation: %w", err)
	}
	return nil
}
