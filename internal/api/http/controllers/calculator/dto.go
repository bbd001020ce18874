package calculator

import (
	"errors"
	"time"

	"miniCalc/internal/domain"
)

// Тексты ошибок валидации — фиксированный контракт API.
var (
	errNotNumbers = errors.New("a and b must be numbers")
	errBadOp      = errors.New("op must be add or sub")
)

// CalcRequest — запрос на вычисление (POST /calc).
// Операнды — указатели, чтобы отличать отсутствующее поле от нуля.
type CalcRequest struct {
	A  *float64 `json:"a"`
	B  *float64 `json:"b"`
	Op string   `json:"op"`
}

// Validate проверяет операнды и операцию. Порядок проверок фиксирован:
// сначала числа, потом операция.
func (r *CalcRequest) Validate() error {
	if r.A == nil || r.B == nil {
		return errNotNumbers
	}
	if !domain.ValidOp(r.Op) {
		return errBadOp
	}
	return nil
}

// OperationItem — сохранённая запись в ответах /calc и /history.
type OperationItem struct {
	ID        int64     `json:"id"`
	A         float64   `json:"a"`
	B         float64   `json:"b"`
	Op        string    `json:"op"`
	Result    float64   `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}

// CalcResponse — ответ /calc. Operation есть только при успешной вставке,
// Warning — только когда вставка не удалась.
type CalcResponse struct {
	Result    float64        `json:"result"`
	Operation *OperationItem `json:"operation,omitempty"`
	Warning   string         `json:"warning,omitempty"`
}

// ErrorResponse — единый формат ошибок API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// newOperationItem переводит доменную запись в ответ API.
func newOperationItem(op *domain.Operation) *OperationItem {
	if op == nil {
		return nil
	}
	return &OperationItem{
		ID:        op.ID,
		A:         op.A,
		B:         op.B,
		Op:        op.Op,
		Result:    op.Result,
		CreatedAt: op.CreatedAt,
	}
}
