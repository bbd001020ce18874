// Package noop — репозиторий-заглушка для режима без персистентности:
// вычисления работают, история всегда пустая, ничего не сохраняется.
package noop

import (
	"context"

	"miniCalc/internal/domain"
	"miniCalc/internal/ports"
)

var _ ports.IOperationRepository = (*OperationRepo)(nil)

// OperationRepo реализует ports.IOperationRepository без хранилища.
type OperationRepo struct{}

// NewOperationRepo возвращает репозиторий-заглушку.
func NewOperationRepo() *OperationRepo {
	return &OperationRepo{}
}

// SaveOperation ничего не сохраняет. (nil, nil) — сигнал «персистентность выключена».
func (r *OperationRepo) SaveOperation(ctx context.Context, op domain.Operation) (*domain.Operation, error) {
	return nil, nil
}

// GetHistory возвращает пустой список (не ошибку).
func (r *OperationRepo) GetHistory(ctx context.Context, limit int) ([]domain.Operation, error) {
	return []domain.Operation{}, nil
}

// Ping всегда успешен: отсутствие хранилища — штатный режим.
func (r *OperationRepo) Ping(ctx context.Context) error {
	return nil
}
