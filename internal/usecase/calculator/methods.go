package calculator

import (
	"context"
	"encoding/json"
	"fmt"

	"miniCalc/internal/domain"
)

// Calculate считает результат и пытается сохранить запись через репозиторий.
// Ошибка вставки не роняет запрос: результат уже посчитан, выставляется SaveFailed.
// После успешной вставки инвалидируется кэш истории и публикуется событие в брокер (best-effort).
func (u *UseCase) Calculate(ctx context.Context, a, b float64, op string) (domain.CalcResult, error) {
	var result float64
	switch op {
	case domain.OpAdd:
		result = a + b
	case domain.OpSub:
		result = a - b
	default:
		return domain.CalcResult{}, fmt.Errorf("%w: %s", domain.ErrUnknownOperation, op)
	}

	saved, err := u.repo.SaveOperation(ctx, domain.Operation{A: a, B: b, Op: op, Result: result})
	if err != nil {
		u.log.Error("save operation failed", "a", a, "b", b, "op", op, "error", err)
		return domain.CalcResult{Result: result, SaveFailed: true}, nil
	}
	if saved == nil {
		// персистентность выключена
		return domain.CalcResult{Result: result}, nil
	}

	if u.cache != nil {
		if err := u.cache.Delete(ctx, historyCacheKey); err != nil {
			u.log.Warn("history cache invalidation failed", "error", err)
		}
	}

	if u.broker != nil {
		value, err := json.Marshal(saved)
		if err != nil {
			u.log.Warn("operation event marshal failed", "error", err)
		} else if err := u.broker.Send(ctx, []byte(eventKey(saved.ID)), value); err != nil {
			u.log.Warn("operation event publish failed", "id", saved.ID, "error", err)
		} else {
			u.log.Info("operation published", "id", saved.ID, "result", result)
		}
	}

	return domain.CalcResult{Result: result, Saved: saved}, nil
}

// History — последние операции (новые сначала, не больше historyLimit).
// При включённом кэше ответ берётся из него; промах идёт в репозиторий и кэшируется.
func (u *UseCase) History(ctx context.Context) ([]domain.Operation, error) {
	if u.cache != nil {
		if raw, found, err := u.cache.Get(ctx, historyCacheKey); err == nil && found {
			var list []domain.Operation
			if err := json.Unmarshal([]byte(raw), &list); err == nil {
				return list, nil
			}
			u.log.Warn("history cache decode failed, falling back to store")
		}
	}

	list, err := u.repo.GetHistory(ctx, historyLimit)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if raw, err := json.Marshal(list); err == nil {
			if err := u.cache.Set(ctx, historyCacheKey, string(raw), historyCacheTTL); err != nil {
				u.log.Warn("history cache set failed", "error", err)
			}
		}
	}
	return list, nil
}

// HandleOperationEvent вызывается консьюмером при получении сообщения из топика операций.
func (u *UseCase) HandleOperationEvent(ctx context.Context, op domain.Operation) error {
	if u.analytics == nil {
		return nil
	}
	if err := u.analytics.WriteOperation(ctx, op); err != nil {
		u.log.Warn("analytics write failed", "error", err)
		return err
	}
	u.log.Info("operation stored to analytics", "id", op.ID, "op", op.Op, "result", op.Result)
	return nil
}
