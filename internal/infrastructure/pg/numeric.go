package pg

import (
	"fmt"
	"strconv"
)

// parseNumeric переводит значение колонки NUMERIC в float64.
// lib/pq отдаёт NUMERIC как текст; вся коэрция чисел из БД проходит через эту
// функцию, чтобы оба эндпоинта обращались с точностью одинаково.
// Значения за пределами точности float64 не поддерживаются.
func parseNumeric(raw []byte) (float64, error) {
	v, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("parse numeric %q: %w", raw, err)
	}
	return v, nil
}
