package valueobject

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/freshkeeper-backend/internal/pkg/apperror"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeStatus_DateThresholds(t *testing.T) {
	today := date(2025, time.March, 10)

	tests := []struct {
		name   string
		expiry time.Time
		want   ItemStatus
	}{
		{"вчера просрочен", date(2025, time.March, 9), ItemStatusExpired},
		{"сегодня истекает", date(2025, time.March, 10), ItemStatusNearExpiry},
		{"через два дня истекает", date(2025, time.March, 12), ItemStatusNearExpiry},
		{"через три дня истекает", date(2025, time.March, 13), ItemStatusNearExpiry},
		{"через четыре дня доступен", date(2025, time.March, 14), ItemStatusAvailable},
		{"через месяц доступен", date(2025, time.April, 10), ItemStatusAvailable},
		{"год назад просрочен", date(2024, time.March, 10), ItemStatusExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStatus(tt.expiry, ItemStateNormal, today)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeStatus_DonatedOverridesDate(t *testing.T) {
	today := date(2025, time.March, 10)

	expiries := []time.Time{
		date(2024, time.January, 1),
		date(2025, time.March, 10),
		date(2030, time.December, 31),
	}

	for _, expiry := range expiries {
		got := ComputeStatus(expiry, ItemStateDonated, today)
		assert.Equal(t, ItemStatusDonated, got)
	}
}

func TestComputeStatus_IgnoresTimeOfDay(t *testing.T) {
	// Запрос поздно вечером не должен менять календарную разницу дат.
	today := time.Date(2025, time.March, 10, 23, 59, 0, 0, time.UTC)
	expiry := time.Date(2025, time.March, 11, 0, 1, 0, 0, time.UTC)

	got := ComputeStatus(expiry, ItemStateNormal, today)
	assert.Equal(t, ItemStatusNearExpiry, got)
}

func TestComputeStatus_NormalizesTimezones(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)
	today := time.Date(2025, time.March, 10, 1, 0, 0, 0, msk)
	expiry := date(2025, time.March, 9)

	// 10 марта 01:00 MSK по UTC ещё 9 марта, продукт не просрочен.
	got := ComputeStatus(expiry, ItemStateNormal, today)
	assert.Equal(t, ItemStatusNearExpiry, got)
}

func TestItemState_Transitions(t *testing.T) {
	assert.True(t, ItemStateNormal.CanTransitionTo(ItemStateDonated))
	assert.False(t, ItemStateDonated.CanTransitionTo(ItemStateNormal))
	assert.False(t, ItemStateDonated.CanTransitionTo(ItemStateDonated))
	assert.True(t, ItemStateDonated.IsTerminal())
	assert.False(t, ItemStateNormal.IsTerminal())
}

func TestNewItemState(t *testing.T) {
	s, err := NewItemState("donated")
	assert.NoError(t, err)
	assert.Equal(t, ItemStateDonated, s)

	_, err = NewItemState("eaten")
	assert.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestNewCategory(t *testing.T) {
	c, err := NewCategory("Refrigerated")
	assert.NoError(t, err)
	assert.Equal(t, CategoryRefrigerated, c)

	_, err = NewCategory("refrigerated")
	assert.Error(t, err)

	_, err = NewCategory("Cellar")
	assert.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestCategories_Complete(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, 3)
	for _, c := range cats {
		assert.True(t, c.IsValid())
	}
}
