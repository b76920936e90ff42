package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/freshkeeper-backend/internal/domain/valueobject"
	"github.com/ignatzorin/freshkeeper-backend/internal/logger"
	"github.com/ignatzorin/freshkeeper-backend/internal/models"
	"github.com/ignatzorin/freshkeeper-backend/internal/pkg/apperror"
	"github.com/ignatzorin/freshkeeper-backend/internal/repository"
	"github.com/ignatzorin/freshkeeper-backend/internal/validation"
)

var ErrAlreadyDonated = errors.New("item already donated")

// ItemRepository описывает взаимодействие сервиса с хранилищем продуктов.
type ItemRepository interface {
	Create(ctx context.Context, item *models.InventoryItem) error
	GetVisible(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.InventoryItem, error)
	ListVisible(ctx context.Context, userID uuid.UUID) ([]models.InventoryItem, error)
	Update(ctx context.Context, item *models.InventoryItem, userID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) (bool, error)
	MarkDonated(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.InventoryItem, error)
}

// ItemNotifier записывает уведомление о событии инвентаря.
type ItemNotifier interface {
	Notify(ctx context.Context, userID uuid.UUID, title, message string) (*models.Notification, error)
}

// InventoryService содержит бизнес-логику жизненного цикла продуктов.
type InventoryService struct {
	repo     ItemRepository
	notifier ItemNotifier

	// now подменяется в тестах для детерминированного статуса
	now func() time.Time
}

// NewInventoryService создаёт новый сервис инвентаря.
func NewInventoryService(repo ItemRepository, notifier ItemNotifier) *InventoryService {
	return &InventoryService{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

// CreateItemInput описывает входные данные для создания продукта.
type CreateItemInput struct {
	OwnerID    uuid.UUID
	Name       string
	Quantity   int
	Category   string
	ExpiryDate time.Time
}

// UpdateItemInput описывает входные данные для обновления продукта.
type UpdateItemInput struct {
	ItemID     uuid.UUID
	OwnerID    uuid.UUID
	Name       string
	Quantity   int
	Category   string
	ExpiryDate time.Time
}

// validateItemInput проверяет общие поля create и update.
func validateItemInput(name string, quantity int, category string, expiryDate time.Time) (valueobject.Category, error) {
	if err := validation.ValidateItemName(name); err != nil {
		return "", apperror.New(apperror.ErrCodeValidation, err.Error())
	}
	if err := validation.ValidateQuantity(quantity); err != nil {
		return "", apperror.New(apperror.ErrCodeValidation, err.Error())
	}
	if expiryDate.IsZero() {
		return "", apperror.New(apperror.ErrCodeValidation, "дата срока годности обязательна")
	}

	return valueobject.NewCategory(category)
}

// CreateItem создаёт продукт и возвращает его с вычисленным статусом.
func (s *InventoryService) CreateItem(ctx context.Context, in CreateItemInput) (*models.InventoryItem, error) {
	category, err := validateItemInput(in.Name, in.Quantity, in.Category, in.ExpiryDate)
	if err != nil {
		return nil, err
	}

	// При создании дата не может быть в прошлом; при обновлении
	// допускается любая корректная дата.
	today := s.now().UTC().Truncate(24 * time.Hour)
	if in.ExpiryDate.Before(today) {
		return nil, apperror.New(apperror.ErrCodeValidation, "дата срока годности не может быть в прошлом")
	}

	ownerID := in.OwnerID
	item := &models.InventoryItem{
		UserID:     &ownerID,
		Name:       in.Name,
		Quantity:   in.Quantity,
		Category:   category,
		ExpiryDate: in.ExpiryDate,
		State:      valueobject.ItemStateNormal,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.notify(ctx, in.OwnerID, item, models.NotificationTitleItemAdded,
		fmt.Sprintf("Продукт %q добавлен в инвентарь", item.Name))

	item.Status = valueobject.ComputeStatus(item.ExpiryDate, item.State, s.now())

	return item, nil
}

// ListItems возвращает видимые пользователю продукты с вычисленными статусами.
func (s *InventoryService) ListItems(ctx context.Context, userID uuid.UUID) ([]models.InventoryItem, error) {
	items, err := s.repo.ListVisible(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	for i := range items {
		items[i].Status = valueobject.ComputeStatus(items[i].ExpiryDate, items[i].State, now)
	}

	return items, nil
}

// UpdateItem обновляет продукт. Если продукт не найден или не принадлежит
// пользователю, возвращает (nil, nil): вызывающая сторона не должна
// считать, что обновление всегда что-то меняет.
func (s *InventoryService) UpdateItem(ctx context.Context, in UpdateItemInput) (*models.InventoryItem, error) {
	category, err := validateItemInput(in.Name, in.Quantity, in.Category, in.ExpiryDate)
	if err != nil {
		return nil, err
	}

	item := &models.InventoryItem{
		ID:         in.ItemID,
		Name:       in.Name,
		Quantity:   in.Quantity,
		Category:   category,
		ExpiryDate: in.ExpiryDate,
	}

	if err := s.repo.Update(ctx, item, in.OwnerID); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, nil
		}
		return nil, err
	}

	item.Status = valueobject.ComputeStatus(item.ExpiryDate, item.State, s.now())

	return item, nil
}

// DeleteItem удаляет продукт. Отсутствие строки не считается ошибкой.
func (s *InventoryService) DeleteItem(ctx context.Context, itemID uuid.UUID, userID uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, itemID, userID)
	if err != nil {
		return err
	}

	if deleted {
		s.notify(ctx, userID, &models.InventoryItem{ID: itemID}, models.NotificationTitleItemDeleted,
			"Продукт удалён из инвентаря")
	}

	return nil
}

// DonateItem переводит продукт в терминальное состояние donated.
// Из двух конкурентных запросов ровно один получает обновлённый продукт,
// второй завершается ErrAlreadyDonated.
func (s *InventoryService) DonateItem(ctx context.Context, itemID uuid.UUID, userID uuid.UUID) (*models.InventoryItem, error) {
	item, err := s.repo.MarkDonated(ctx, itemID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			// Условный UPDATE не нашёл строку: либо продукта нет,
			// либо он уже donated. Разделяем повторным чтением.
			existing, getErr := s.repo.GetVisible(ctx, itemID, userID)
			if getErr != nil {
				return nil, getErr
			}
			if existing.State.IsTerminal() {
				return nil, ErrAlreadyDonated
			}
			return nil, repository.ErrItemNotFound
		}
		return nil, err
	}

	s.notify(ctx, userID, item, models.NotificationTitleItemDonated,
		fmt.Sprintf("Продукт %q передан на пожертвование", item.Name))

	item.Status = valueobject.ComputeStatus(item.ExpiryDate, item.State, s.now())

	return item, nil
}

// notify сохраняет уведомление, не прерывая основную операцию при сбое.
func (s *InventoryService) notify(ctx context.Context, userID uuid.UUID, item *models.InventoryItem, title, message string) {
	if s.notifier == nil {
		return
	}

	if _, err := s.notifier.Notify(ctx, userID, title, message); err != nil {
		if logger.Log != nil {
			logger.Log.WithFields(map[string]interface{}{
				"item_id": item.ID,
				"error":   err.Error(),
			}).Warn("inventory service: не удалось сохранить уведомление")
		}
	}
}
