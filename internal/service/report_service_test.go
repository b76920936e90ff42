package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/freshkeeper-backend/internal/domain/valueobject"
	"github.com/ignatzorin/freshkeeper-backend/internal/models"
)

func reportFixtureItems() []models.InventoryItem {
	return []models.InventoryItem{
		{Name: "Молоко", Category: valueobject.CategoryRefrigerated, State: valueobject.ItemStateNormal,
			ExpiryDate: time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)}, // просрочен
		{Name: "Сыр", Category: valueobject.CategoryRefrigerated, State: valueobject.ItemStateNormal,
			ExpiryDate: time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)}, // истекает
		{Name: "Макароны", Category: valueobject.CategoryPantry, State: valueobject.ItemStateNormal,
			ExpiryDate: time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)}, // доступен
		{Name: "Консервы", Category: valueobject.CategoryPantry, State: valueobject.ItemStateDonated,
			ExpiryDate: time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)}, // передан
		{Name: "Пельмени", Category: valueobject.CategoryFrozen, State: valueobject.ItemStateDonated,
			ExpiryDate: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)}, // передан, дата не важна
	}
}

func TestSummarize(t *testing.T) {
	report := Summarize(reportFixtureItems(), fixedNow)

	assert.Equal(t, 5, report.Total)
	assert.Equal(t, 2, report.ByCategory[valueobject.CategoryRefrigerated])
	assert.Equal(t, 2, report.ByCategory[valueobject.CategoryPantry])
	assert.Equal(t, 1, report.ByCategory[valueobject.CategoryFrozen])

	assert.Equal(t, 1, report.Expired)
	assert.Equal(t, 1, report.NearExpiry)
	assert.Equal(t, 1, report.Available)
	assert.Equal(t, 2, report.Donated)
}

func TestSummarize_StatusCountersSumToTotal(t *testing.T) {
	report := Summarize(reportFixtureItems(), fixedNow)

	sum := report.Donated + report.Expired + report.NearExpiry + report.Available
	assert.Equal(t, report.Total, sum)
}

func TestSummarize_Empty(t *testing.T) {
	report := Summarize(nil, fixedNow)

	assert.Equal(t, 0, report.Total)
	assert.Equal(t, 0, report.Donated+report.Expired+report.NearExpiry+report.Available)

	// Все категории присутствуют в отчёте даже с нулевыми счётчиками
	for _, category := range valueobject.Categories() {
		count, ok := report.ByCategory[category]
		assert.True(t, ok)
		assert.Equal(t, 0, count)
	}
}

func TestReportService_BuildReport(t *testing.T) {
	repo := new(mockItemRepo)
	svc := NewReportService(repo)
	svc.now = func() time.Time { return fixedNow }
	ctx := context.Background()
	userID := uuid.New()

	repo.On("ListVisible", ctx, userID).Return(reportFixtureItems(), nil)

	report, err := svc.BuildReport(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, 5, report.Total)
	assert.Equal(t, 2, report.Donated)
	repo.AssertExpectations(t)
}
