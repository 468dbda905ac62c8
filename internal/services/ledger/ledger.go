// Package services содержит бизнес-логику журнала доходов и расходов,
// включая месячную агрегацию и её кеширование.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/finance-ledger/internal/lib/money"
	"github.com/magabrotheeeer/finance-ledger/internal/lib/month"
	"github.com/magabrotheeeer/finance-ledger/internal/models"
)

// Количество операций в списке последних по умолчанию.
const defaultRecentLimit = 10

// Срок жизни кешированного месячного агрегата.
const summaryCacheTTL = time.Hour

// TransactionRepository определяет методы для работы с журналом в хранилище.
type TransactionRepository interface {
	// CreateTransaction добавляет новую запись и возвращает её ID.
	CreateTransaction(ctx context.Context, tx models.Transaction) (int64, error)
	// ListRecentTransactions возвращает последние операции пользователя.
	ListRecentTransactions(ctx context.Context, userID int64, limit int) ([]*models.Transaction, error)
	// SumByTypeForPeriod суммирует операции по типу за период учётных дат.
	SumByTypeForPeriod(ctx context.Context, userID int64, from, to time.Time) (*models.MonthSummary, error)
	// ListAllTransactions возвращает полную историю операций пользователя.
	ListAllTransactions(ctx context.Context, userID int64) ([]*models.Transaction, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// LedgerService реализует операции журнала: запись, чтение и агрегацию.
type LedgerService struct {
	repo  TransactionRepository
	cache Cache
	log   *slog.Logger
}

// NewLedgerService создает новый экземпляр LedgerService.
func NewLedgerService(repo TransactionRepository, cache Cache, log *slog.Logger) *LedgerService {
	return &LedgerService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Record валидирует и записывает новую операцию пользователя, возвращает её ID.
// Тип ограничен значениями income и expense, сумма строго положительна:
// направление движения средств задаёт тип, а не знак суммы.
func (s *LedgerService) Record(ctx context.Context, userID int64, req models.DummyTransaction) (int64, error) {
	if req.Type != models.TypeIncome && req.Type != models.TypeExpense {
		return 0, fmt.Errorf("%w: unknown transaction type %q", models.ErrValidation, req.Type)
	}
	amount, err := money.Parse(req.Amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid date: %v", models.ErrValidation, err)
	}

	tx := models.Transaction{
		UserID:      userID,
		Type:        req.Type,
		Amount:      amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
	}
	id, err := s.repo.CreateTransaction(ctx, tx)
	if err != nil {
		return 0, err
	}
	s.log.Info("recorded new transaction", slog.Int64("id", id))

	cacheKey := summaryKey(userID, date.Year(), date.Month())
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate summary cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return id, nil
}

// Recent возвращает последние операции пользователя: сначала самые свежие
// по учётной дате, при равенстве — по времени создания записи.
func (s *LedgerService) Recent(ctx context.Context, userID int64, limit int) ([]*models.Transaction, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.repo.ListRecentTransactions(ctx, userID, limit)
}

// MonthlySummary возвращает суммы доходов и расходов пользователя
// за календарный месяц, используя кеш или хранилище. Агрегация идёт
// по учётной дате операций; месяц без операций даёт нулевые суммы.
func (s *LedgerService) MonthlySummary(ctx context.Context, userID int64, year int, m time.Month) (*models.MonthSummary, error) {
	cacheKey := summaryKey(userID, year, m)
	var cached models.MonthSummary
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read summary cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return &cached, nil
	}

	from, to := month.Bounds(year, m)
	summary, err := s.repo.SumByTypeForPeriod(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, summary, summaryCacheTTL); err != nil {
		s.log.Warn("failed to cache summary", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return summary, nil
}

// ExportAll возвращает полную историю операций пользователя для выгрузки.
func (s *LedgerService) ExportAll(ctx context.Context, userID int64) ([]*models.Transaction, error) {
	return s.repo.ListAllTransactions(ctx, userID)
}

func summaryKey(userID int64, year int, m time.Month) string {
	return fmt.Sprintf("summary:%d:%04d-%02d", userID, year, int(m))
}
