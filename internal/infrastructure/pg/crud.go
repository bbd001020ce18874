package pg

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"miniCalc/internal/domain"
	"miniCalc/internal/ports"
)

var _ ports.IOperationRepository = (*OperationRepo)(nil)

// OperationRepo реализует ports.IOperationRepository для PostgreSQL.
type OperationRepo struct {
	db  *DB
	log *slog.Logger
}

// NewOperationRepo возвращает репозиторий операций.
func NewOperationRepo(db *DB, log *slog.Logger) *OperationRepo {
	return &OperationRepo{db: db, log: log}
}

// rowScanner — общий знаменатель *sql.Row и *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanOperation читает строку calculations и коэрцирует NUMERIC-колонки в float64.
func scanOperation(s rowScanner) (domain.Operation, error) {
	var (
		op        domain.Operation
		a, b, res []byte
		opName    sql.NullString
		created   time.Time
	)
	if err := s.Scan(&op.ID, &a, &b, &opName, &res, &created); err != nil {
		return domain.Operation{}, err
	}
	var err error
	if op.A, err = parseNumeric(a); err != nil {
		return domain.Operation{}, err
	}
	if op.B, err = parseNumeric(b); err != nil {
		return domain.Operation{}, err
	}
	if op.Result, err = parseNumeric(res); err != nil {
		return domain.Operation{}, err
	}
	op.Op = opName.String
	op.CreatedAt = created
	return op, nil
}

// SaveOperation вставляет запись и возвращает сохранённую строку
// (id и created_at назначает БД).
func (r *OperationRepo) SaveOperation(ctx context.Context, op domain.Operation) (*domain.Operation, error) {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO calculations (a, b, op, result)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, a, b, op, result, created_at`,
		op.A, op.B, op.Op, op.Result)
	saved, err := scanOperation(row)
	if err != nil {
		r.log.Debug("SaveOperation failed", "error", err)
		return nil, err
	}
	return &saved, nil
}

// GetHistory возвращает последние операции (новые сначала, не больше limit).
// id в сортировке разруливает записи с одинаковым created_at.
func (r *OperationRepo) GetHistory(ctx context.Context, limit int) ([]domain.Operation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, a, b, op, result, created_at
		 FROM calculations
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1`, limit)
	if err != nil {
		r.log.Debug("GetHistory failed", "error", err)
		return nil, err
	}
	defer rows.Close()

	list := make([]domain.Operation, 0, limit)
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, op)
	}
	return list, rows.Err()
}

// Ping проверяет доступность БД (readiness).
func (r *OperationRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
