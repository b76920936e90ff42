package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ignatzorin/freshkeeper-backend/internal/domain/valueobject"
	"github.com/ignatzorin/freshkeeper-backend/internal/models"
	"github.com/ignatzorin/freshkeeper-backend/internal/repository"
)

type mockItemRepo struct {
	mock.Mock
}

func (m *mockItemRepo) Create(ctx context.Context, item *models.InventoryItem) error {
	args := m.Called(ctx, item)
	if args.Error(0) == nil {
		item.ID = uuid.New()
		item.CreatedAt = time.Now()
		item.UpdatedAt = item.CreatedAt
	}
	return args.Error(0)
}

func (m *mockItemRepo) GetVisible(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.InventoryItem, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *mockItemRepo) ListVisible(ctx context.Context, userID uuid.UUID) ([]models.InventoryItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.InventoryItem), args.Error(1)
}

func (m *mockItemRepo) Update(ctx context.Context, item *models.InventoryItem, userID uuid.UUID) error {
	args := m.Called(ctx, item, userID)
	if args.Error(0) == nil {
		item.State = valueobject.ItemStateNormal
		item.UpdatedAt = time.Now()
	}
	return args.Error(0)
}

func (m *mockItemRepo) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockItemRepo) MarkDonated(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.InventoryItem, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

type mockItemNotifier struct {
	mock.Mock
}

func (m *mockItemNotifier) Notify(ctx context.Context, userID uuid.UUID, title, message string) (*models.Notification, error) {
	args := m.Called(ctx, userID, title, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}

// фиксированный момент времени для детерминированных статусов
var fixedNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func newTestInventoryService(repo *mockItemRepo, notifier *mockItemNotifier) *InventoryService {
	svc := NewInventoryService(repo, notifier)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestInventoryService_CreateItem(t *testing.T) {
	repo := new(mockItemRepo)
	notifier := new(mockItemNotifier)
	svc := newTestInventoryService(repo, notifier)
	ctx := context.Background()
	ownerID := uuid.New()

	repo.On("Create", ctx, mock.AnythingOfType("*models.InventoryItem")).Return(nil)
	notifier.On("Notify", ctx, ownerID, models.NotificationTitleItemAdded, mock.AnythingOfType("string")).
		Return(&models.Notification{ID: uuid.New()}, nil)

	item, err := svc.CreateItem(ctx, CreateItemInput{
		OwnerID:    ownerID,
		Name:       "Молоко",
		Quantity:   2,
		Category:   "Refrigerated",
		ExpiryDate: time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, item.ID)
	assert.Equal(t, valueobject.ItemStateNormal, item.State)
	assert.Equal(t, valueobject.ItemStatusNearExpiry, item.Status)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestInventoryService_CreateItem_Validation(t *testing.T) {
	repo := new(mockItemRepo)
	notifier := new(mockItemNotifier)
	svc := newTestInventoryService(repo, notifier)
	ctx := context.Background()
	ownerID := uuid.New()
	expiry := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.CreateItem(ctx, CreateItemInput{OwnerID: ownerID, Name: "   ", Quantity: 1, Category: "Pantry", ExpiryDate: expiry})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "название")

	_, err = svc.CreateItem(ctx, CreateItemInput{OwnerID: ownerID, Name: "Хлеб", Quantity: 0, Category: "Pantry", ExpiryDate: expiry})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "положительным")

	_, err = svc.CreateItem(ctx, CreateItemInput{OwnerID: ownerID, Name: "Хлеб", Quantity: 1, Category: "Cellar", ExpiryDate: expiry})
	assert.Error(t, err)

	_, err = svc.CreateItem(ctx, CreateItemInput{OwnerID: ownerID, Name: "Хлеб", Quantity: 1, Category: "Pantry"})
	assert.Error(t, err)
}

func TestInventoryService_CreateItem_RejectsPastDate(t *testing.T) {
	repo := new(mockItemRepo)
	notifier := new(mockItemNotifier)
	svc := newTestInventoryService(repo, notifier)
	ctx := context.Background()

	_, err := svc.CreateItem(ctx, CreateItemInput{
		OwnerID:    uuid.New(),
		Name:       "Йогурт",
		Quantity:   1,
		Category:   "Refrigerated",
		ExpiryDate: time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC),
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "в прошлом")
}

func TestInventoryService_CreateItem_NotificationFailureDoesNotFail(t *testing.T) {
	repo := new(mockItemRepo)
	notifier := new(mockItemNotifier)
	svc := newTestInventoryService(repo, notifier)
	ctx := context.Background()
	ownerID := uuid.New()

	repo.On("Create", ctx, mock.AnythingOfType("*models.InventoryItem")).Return(nil)
	notifier.On("Notify", ctx, ownerID, models.NotificationTitleItemAdded, mock.AnythingOfType("string")).
		Return(nil, errors.New("notifications are down"))

	item, err := svc.CreateItem(ctx, CreateItemInput{
		OwnerID:    ownerID,
		Name:       "Сыр",
		Quantity:   1,
		Category:   "Refrigerated",
		ExpiryDate: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
	assert.NotNil(t, item)
}

func TestInventoryService_ListItems_ComputesStatuses(t *testing.T) {
	repo := new(mockItemRepo)
	notifier := new(mockItemNotifier)
	svc := newTestInventoryService(repo, notifier)
	ctx := context.Background()
	userID := uuid.New()

	stored := []models.InventoryItem{
		{ID: uuid.New(), Name: "Кефир", State: valueobject.ItemStateNormal,
			ExpiryDate: time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), Name: "Консервы", State: valueobject.ItemStateDonated,
			ExpiryDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), Name: "Пельмени", State: valueobject.ItemStateNormal,
			ExpiryDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)},
	}
	repo.On("ListVisible", ctx, userID).Return(stored, nil)

	items, err := svc.ListItems(ctx, userID)
	assert.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, valueobject.ItemStatusExpired, items[0].Status)
	assert.Equal(t, valueobject.ItemStatusDonated, items[1].Status)
	assert.Equal(t, valueobject.ItemStatusAvailable, items[2].Status)
}

func TestInventoryService_UpdateItem(t *testing.T) {
	repo := new(mockItemRepo)
	notifier := new(mockItemNotifier)
	svc := newTestInventoryService(repo, notifier)
	ctx := context.Background()
	itemID := uuid.New()
	ownerID := uuid.New()

	repo.On("Update", ctx, mock.AnythingOfType("*models.InventoryItem"), ownerID).Return(nil)

	// При обновлении допускается дата в прошлом
	item, err := svc.UpdateItem(ctx, UpdateItemInput{
		ItemID:     itemID,
		OwnerID:    ownerID,
		Name:       "Кефир",
		Quantity:   3,
		Category:   "Refrigerated",
		ExpiryDate: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
	assert.NotNil(t, item)
	assert.Equal(t, valueobject.ItemStatusExpired, item.Status)
	repo.AssertExpectations(t)
}

func TestInventoryService_UpdateItem_MissingIsNoOp(t *testing.T) {
	repo := new(mockItemRepo)
	notifier := new(mockItemNotifier)
	svc := newTestInventoryService(repo, notifier)
	ctx := context.Background()

	repo.On("Update", ctx, mock.AnythingOfType("*models.InventoryItem"), mock.AnythingOfType("uuid.UUID")).
		Return(repository.ErrItemNotFound)

	item, err := svc.UpdateItem(ctx, UpdateItemInput{
		ItemID:     uuid.New(),
		OwnerID:    uuid.New(),
		Name:       "Кефир",
		Quantity:   1,
		Category:   "Refrigerated",
		ExpiryDate: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
	assert.Nil(t, item)
}

func TestInventoryService_DeleteItem(t *testing.T) {
	repo := new(mockItemRepo)
	notifier := new(mockItemNotifier)
	svc := newTestInventoryService(repo, notifier)
	ctx := context.Background()
	itemID := uuid.New()
	userID := uuid.New()

	repo.On("Delete", ctx, itemID, userID).Return(true, nil)
	notifier.On("Notify", ctx, userID, models.NotificationTitleItemDeleted, mock.AnythingOfType("string")).
		Return(&models.Notification{ID: uuid.New()}, nil)

	err := svc.DeleteItem(ctx, itemID, userID)
	assert.NoError(t, err)
	notifier.AssertExpectations(t)
}

func TestInventoryService_DeleteItem_AbsentIsSuccess(t *testing.T) {
	repo := new(mockItemRepo)
	notifier := new(mockItemNotifier)
	svc := newTestInventoryService(repo, notifier)
	ctx := context.Background()
	itemID := uuid.New()
	userID := uuid.New()

	repo.On("Delete", ctx, itemID, userID).Return(false, nil)

	err := svc.DeleteItem(ctx, itemID, userID)
	assert.NoError(t, err)
	assert.Empty(t, notifier.Calls)
}

func TestInventoryService_DonateItem(t *testing.T) {
	repo := new(mockItemRepo)
	notifier := new(mockItemNotifier)
	svc := newTestInventoryService(repo, notifier)
	ctx := context.Background()
	itemID := uuid.New()
	userID := uuid.New()

	donated := &models.InventoryItem{
		ID:         itemID,
		Name:       "Консервы",
		State:      valueobject.ItemStateDonated,
		ExpiryDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
	repo.On("MarkDonated", ctx, itemID, userID).Return(donated, nil)
	notifier.On("Notify", ctx, userID, models.NotificationTitleItemDonated, mock.AnythingOfType("string")).
		Return(&models.Notification{ID: uuid.New()}, nil)

	item, err := svc.DonateItem(ctx, itemID, userID)
	assert.NoError(t, err)
	assert.Equal(t, valueobject.ItemStatusDonated, item.Status)
	notifier.AssertExpectations(t)
}

func TestInventoryService_DonateItem_NotFound(t *testing.T) {
	repo := new(mockItemRepo)
	notifier := new(mockItemNotifier)
	svc := newTestInventoryService(repo, notifier)
	ctx := context.Background()
	itemID := uuid.New()
	userID := uuid.New()

	repo.On("MarkDonated", ctx, itemID, userID).Return(nil, repository.ErrItemNotFound)
	repo.On("GetVisible", ctx, itemID, userID).Return(nil, repository.ErrItemNotFound)

	_, err := svc.DonateItem(ctx, itemID, userID)
	assert.ErrorIs(t, err, repository.ErrItemNotFound)
}

func TestInventoryService_DonateItem_AlreadyDonated(t *testing.T) {
	repo := new(mockItemRepo)
	notifier := new(mockItemNotifier)
	svc := newTestInventoryService(repo, notifier)
	ctx := context.Background()
	itemID := uuid.New()
	userID := uuid.New()

	alreadyDonated := &models.InventoryItem{
		ID:    itemID,
		Name:  "Консервы",
		State: valueobject.ItemStateDonated,
	}
	repo.On("MarkDonated", ctx, itemID, userID).Return(nil, repository.ErrItemNotFound)
	repo.On("GetVisible", ctx, itemID, userID).Return(alreadyDonated, nil)

	_, err := svc.DonateItem(ctx, itemID, userID)
	assert.ErrorIs(t, err, ErrAlreadyDonated)

	// Уведомление выдаётся только при фактическом переходе
	assert.Empty(t, notifier.Calls)
}
