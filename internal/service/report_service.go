package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/freshkeeper-backend/internal/domain/valueobject"
	"github.com/ignatzorin/freshkeeper-backend/internal/models"
)

// ReportService строит сводку по инвентарю пользователя.
type ReportService struct {
	repo ItemRepository

	// now подменяется в тестах для детерминированного статуса
	now func() time.Time
}

// NewReportService создаёт новый сервис отчётов.
func NewReportService(repo ItemRepository) *ReportService {
	return &ReportService{
		repo: repo,
		now:  time.Now,
	}
}

// Summarize сводит набор продуктов в отчёт за один проход.
// Счётчики четырёх статусов в сумме всегда дают общее число продуктов.
func Summarize(items []models.InventoryItem, today time.Time) *models.Report {
	report := &models.Report{
		Total:      len(items),
		ByCategory: make(map[valueobject.Category]int, len(valueobject.Categories())),
	}

	for _, category := range valueobject.Categories() {
		report.ByCategory[category] = 0
	}

	for i := range items {
		report.ByCategory[items[i].Category]++

		switch valueobject.ComputeStatus(items[i].ExpiryDate, items[i].State, today) {
		case valueobject.ItemStatusDonated:
			report.Donated++
		case valueobject.ItemStatusExpired:
			report.Expired++
		case valueobject.ItemStatusNearExpiry:
			report.NearExpiry++
		default:
			report.Available++
		}
	}

	return report
}

// BuildReport загружает видимые продукты пользователя и строит сводку.
func (s *ReportService) BuildReport(ctx context.Context, userID uuid.UUID) (*models.Report, error) {
	items, err := s.repo.ListVisible(ctx, userID)
	if err != nil {
		return nil, err
	}

	return Summarize(items, s.now()), nil
}
