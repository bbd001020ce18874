package calculator

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"miniCalc/internal/domain"
	"miniCalc/internal/ports"
)

// Тексты серверных ошибок — фиксированный контракт API, деталей наружу не отдаём.
const (
	msgInternalError = "Internal error"
	msgHistoryFailed = "Failed to fetch history"
	msgSaveFailed    = "saved failed"
)

// Controller — маршруты калькулятора: calc, history.
type Controller struct {
	uc  ports.ICalculatorUseCase
	log *slog.Logger
}

// New создаёт контроллер калькулятора.
func New(uc ports.ICalculatorUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.POST("/calc", c.calc)
	r.GET("/history", c.history)
}

// bindError переводит ошибку декодирования JSON в текст валидации:
// нечисловой op — про операцию, всё остальное — про операнды.
func bindError(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field == "op" {
		return errBadOp.Error()
	}
	return errNotNumbers.Error()
}

// @Summary Выполнить вычисление
// @Description Принимает два числа и операцию (add или sub), возвращает результат. При настроенном хранилище запись сохраняется; ошибка сохранения не отменяет результат.
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body CalcRequest true "Параметры вычисления"
// @Success 200 {object} CalcResponse "Результат вычисления"
// @Failure 400 {object} ErrorResponse "Невалидные операнды или операция"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /calc [post]
func (c *Controller) calc(ctx *gin.Context) {
	var req CalcRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("calc bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: bindError(err)})
		return
	}

	if err := req.Validate(); err != nil {
		c.log.Warn("calc validation failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	res, err := c.uc.Calculate(ctx.Request.Context(), *req.A, *req.B, req.Op)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownOperation) {
			// Validate это уже отсёк; ветка на случай рассинхрона контрактов.
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: errBadOp.Error()})
			return
		}
		c.log.Error("calc failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
		return
	}

	resp := CalcResponse{Result: res.Result}
	switch {
	case res.SaveFailed:
		resp.Warning = msgSaveFailed
	case res.Saved != nil:
		resp.Operation = newOperationItem(res.Saved)
	}
	ctx.JSON(http.StatusOK, resp)
}

// @Summary Получить историю операций
// @Description Возвращает до 100 последних операций (новые сначала). Без настроенного хранилища — пустой список.
// @Tags calculator
// @Produce json
// @Success 200 {array} OperationItem "Список операций"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /history [get]
func (c *Controller) history(ctx *gin.Context) {
	list, err := c.uc.History(ctx.Request.Context())
	if err != nil {
		c.log.Error("history failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgHistoryFailed})
		return
	}
	items := make([]OperationItem, 0, len(list))
	for i := range list {
		items = append(items, *newOperationItem(&list[i]))
	}
	ctx.JSON(http.StatusOK, items)
}
