package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/freshkeeper-backend/internal/models"
)

// ErrItemNotFound возвращается, когда продукт не существует либо не виден
// пользователю.
var ErrItemNotFound = errors.New("inventory item not found")

// ItemRepository отвечает за работу с таблицей inventory_items.
// Все запросы на изменение ограничены владельцем; записи с user_id IS NULL
// общие, их изменяет любой пользователь.
type ItemRepository struct {
	db *sqlx.DB
}

// NewItemRepository создаёт экземпляр репозитория.
func NewItemRepository(db *sqlx.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// Create сохраняет новый продукт.
func (r *ItemRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (user_id, name, quantity, category, expiry_date, state)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	if err := r.db.QueryRowxContext(
		ctx, query,
		item.UserID, item.Name, item.Quantity, item.Category, item.ExpiryDate, item.State,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return fmt.Errorf("item repository: create %w", err)
	}

	return nil
}

// GetVisible возвращает продукт, если он существует и виден пользователю.
func (r *ItemRepository) GetVisible(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.InventoryItem, error) {
	var item models.InventoryItem
	query := `
		SELECT id, user_id, name, quantity, category, expiry_date, state, created_at, updated_at
		FROM inventory_items
		WHERE id = $1 AND (user_id = $2 OR user_id IS NULL)
	`
	if err := r.db.GetContext(ctx, &item, query, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("item repository: get visible %w", err)
	}

	return &item, nil
}

// ListVisible возвращает продукты пользователя вместе с общими записями.
// Сортировка по сроку годности: самое срочное первым.
func (r *ItemRepository) ListVisible(ctx context.Context, userID uuid.UUID) ([]models.InventoryItem, error) {
	query := `
		SELECT id, user_id, name, quantity, category, expiry_date, state, created_at, updated_at
		FROM inventory_items
		WHERE user_id = $1 OR user_id IS NULL
		ORDER BY expiry_date ASC, created_at DESC
	`

	var items []models.InventoryItem
	if err := r.db.SelectContext(ctx, &items, query, userID); err != nil {
		return nil, fmt.Errorf("item repository: list visible %w", err)
	}

	return items, nil
}

// Update изменяет продукт, если он принадлежит пользователю или общий.
// ErrItemNotFound означает, что запись отсутствует либо чужая.
func (r *ItemRepository) Update(ctx context.Context, item *models.InventoryItem, userID uuid.UUID) error {
	query := `
		UPDATE inventory_items
		SET name = $1,
		    quantity = $2,
		    category = $3,
		    expiry_date = $4,
		    updated_at = NOW()
		WHERE id = $5 AND (user_id = $6 OR user_id IS NULL)
		RETURNING id, user_id, name, quantity, category, expiry_date, state, created_at, updated_at
	`

	if err := r.db.QueryRowxContext(
		ctx, query,
		item.Name, item.Quantity, item.Category, item.ExpiryDate, item.ID, userID,
	).StructScan(item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrItemNotFound
		}
		return fmt.Errorf("item repository: update %w", err)
	}

	return nil
}

// Delete удаляет продукт пользователя или общую запись.
// Возвращает признак, была ли строка действительно удалена:
// отсутствие записи ошибкой не считается.
func (r *ItemRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(
		ctx,
		`DELETE FROM inventory_items WHERE id = $1 AND (user_id = $2 OR user_id IS NULL)`,
		id, userID,
	)
	if err != nil {
		return false, fmt.Errorf("item repository: delete %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("item repository: delete rows affected %w", err)
	}

	return rowsAffected > 0, nil
}

// MarkDonated переводит продукт в состояние donated одним условным запросом:
// переход выполнится не более одного раза, сколько бы запросов ни пришло
// одновременно. ErrItemNotFound означает, что перехода не было, причину
// выясняет сервис.
func (r *ItemRepository) MarkDonated(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.InventoryItem, error) {
	var item models.InventoryItem
	query := `
		UPDATE inventory_items
		SET state = 'donated', updated_at = NOW()
		WHERE id = $1 AND (user_id = $2 OR user_id IS NULL) AND state <> 'donated'
		RETURNING id, user_id, name, quantity, category, expiry_date, state, created_at, updated_at
	`

	if err := r.db.QueryRowxContext(ctx, query, id, userID).StructScan(&item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("item repository: mark donated %w", err)
	}

	return &item, nil
}
