package ports

//go:generate mockgen -source=repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"miniCalc/internal/domain"
)

// IOperationRepository — контракт сохранения и чтения операций.
// SaveOperation возвращает сохранённую строку (id и created_at назначает хранилище).
// Реализация-заглушка (режим без персистентности) возвращает (nil, nil):
// «не сохранено и не ошибка», чтобы хэндлеры не ветвились на глобальном состоянии.
type IOperationRepository interface {
	SaveOperation(ctx context.Context, op domain.Operation) (*domain.Operation, error)
	GetHistory(ctx context.Context, limit int) ([]domain.Operation, error)
	Ping(ctx context.Context) error
}
