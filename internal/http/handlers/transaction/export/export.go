// Package export реализует HTTP-обработчик выгрузки полной истории операций
// пользователя в формате CSV.
//
// Порядок колонок фиксирован: ID, UserID, Type, Amount, Category,
// Description, Date, CreatedAt. Файл содержит заголовок и по одной строке
// на операцию.
package export

import (
	"context"
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/finance-ledger/internal/http/middlewarectx"
	"github.com/magabrotheeeer/finance-ledger/internal/http/response"
	"github.com/magabrotheeeer/finance-ledger/internal/lib/sl"
	"github.com/magabrotheeeer/finance-ledger/internal/models"
)

// Заголовок CSV-файла выгрузки.
var csvHeader = []string{"ID", "UserID", "Type", "Amount", "Category", "Description", "Date", "CreatedAt"}

// Service описывает интерфейс бизнес-логики выгрузки истории.
type Service interface {
	ExportAll(ctx context.Context, userID int64) ([]*models.Transaction, error)
}

// Handler управляет HTTP-запросами на выгрузку истории операций.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Выгрузка истории операций
// @Description Возвращает полную историю операций пользователя в формате CSV.
// @Tags Transactions
// @Produce  text/csv
// @Success 200 {string} string "CSV с историей операций"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /transactions/export [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.transaction.export"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, ok := r.Context().Value(middlewarectx.UserID).(int64)
	if !ok || userID == 0 {
		log.Error("user id not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	transactions, err := h.service.ExportAll(r.Context(), userID)
	if err != nil {
		log.Error("failed to export transactions", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not export transactions"))
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=transactions.csv")

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		log.Error("failed to write csv header", sl.Err(err))
		return
	}
	for _, tx := range transactions {
		record := []string{
			strconv.FormatInt(tx.ID, 10),
			strconv.FormatInt(tx.UserID, 10),
			tx.Type,
			tx.Amount.StringFixed(2),
			tx.Category,
			tx.Description,
			tx.Date.Format("2006-01-02"),
			tx.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			log.Error("failed to write csv record", sl.Err(err))
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Error("failed to flush csv", sl.Err(err))
		return
	}

	log.Info("transactions exported", slog.Int("count", len(transactions)))
}
