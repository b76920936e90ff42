package valueobject

import (
	"time"

	"github.com/ignatzorin/freshkeeper-backend/internal/pkg/apperror"
)

// ItemState описывает хранимое состояние продукта. В базе существует только
// оно; отображаемый статус из него выводится при чтении.
type ItemState string

const (
	ItemStateNormal  ItemState = "normal"
	ItemStateDonated ItemState = "donated"
)

func (s ItemState) IsValid() bool {
	switch s {
	case ItemStateNormal, ItemStateDonated:
		return true
	}
	return false
}

// IsTerminal сообщает, является ли состояние конечным.
// Из donated переходов нет, запись можно только удалить.
func (s ItemState) IsTerminal() bool {
	return s == ItemStateDonated
}

func (s ItemState) CanTransitionTo(newState ItemState) bool {
	transitions := map[ItemState][]ItemState{
		ItemStateNormal:  {ItemStateDonated},
		ItemStateDonated: {},
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, state := range allowed {
		if state == newState {
			return true
		}
	}
	return false
}

func NewItemState(state string) (ItemState, error) {
	s := ItemState(state)
	if !s.IsValid() {
		return "", apperror.New(apperror.ErrCodeValidation, "некорректное состояние продукта")
	}
	return s, nil
}

// ItemStatus описывает отображаемый статус продукта. Вычисляется при каждом
// чтении из срока годности и хранимого состояния, сам никогда не сохраняется.
type ItemStatus string

const (
	ItemStatusAvailable  ItemStatus = "available"
	ItemStatusNearExpiry ItemStatus = "near_expiry"
	ItemStatusExpired    ItemStatus = "expired"
	ItemStatusDonated    ItemStatus = "donated"
)

func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusAvailable, ItemStatusNearExpiry, ItemStatusExpired, ItemStatusDonated:
		return true
	}
	return false
}

// nearExpiryWindowDays задаёт число дней до конца срока годности,
// начиная с которого продукт считается скоропортящимся.
const nearExpiryWindowDays = 3

// ComputeStatus вычисляет отображаемый статус продукта на дату today.
// Состояние donated терминально и перекрывает любую дату. Даты сравниваются
// как календарные: обе усекаются до полуночи UTC, время суток и часовой
// пояс значения не имеют.
func ComputeStatus(expiryDate time.Time, state ItemState, today time.Time) ItemStatus {
	if state == ItemStateDonated {
		return ItemStatusDonated
	}

	diffDays := daysBetween(today, expiryDate)
	switch {
	case diffDays < 0:
		return ItemStatusExpired
	case diffDays <= nearExpiryWindowDays:
		return ItemStatusNearExpiry
	default:
		return ItemStatusAvailable
	}
}

// daysBetween возвращает число календарных суток от from до to.
// Отрицательное значение означает, что to уже в прошлом.
func daysBetween(from, to time.Time) int {
	return int(truncateToDay(to).Sub(truncateToDay(from)).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
