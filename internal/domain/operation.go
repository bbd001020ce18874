package domain

import (
	"errors"
	"time"
)

// ErrUnknownOperation возвращается, когда операция не поддерживается.
var ErrUnknownOperation = errors.New("unknown operation")

// Константы арифметических операций.
const (
	OpAdd = "add"
	OpSub = "sub"
)

// ValidOp сообщает, поддерживается ли операция.
func ValidOp(op string) bool {
	return op == OpAdd || op == OpSub
}

// Operation — запись об одной операции калькулятора.
// ID и CreatedAt назначаются хранилищем при вставке; записи не изменяются и не удаляются.
type Operation struct {
	ID        int64     `json:"id"`
	A         float64   `json:"a"`
	B         float64   `json:"b"`
	Op        string    `json:"op"`
	Result    float64   `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}

// CalcResult — итог одного вычисления.
// Saved == nil и SaveFailed == false — персистентность выключена, запись не сохранялась.
// SaveFailed == true — вставка не удалась, но результат валиден (клиент получает warning).
type CalcResult struct {
	Result     float64
	Saved      *Operation
	SaveFailed bool
}
