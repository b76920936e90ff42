package valueobject

import (
	"github.com/ignatzorin/freshkeeper-backend/internal/pkg/apperror"
)

// Category описывает способ хранения продукта. Набор фиксированный.
type Category string

const (
	CategoryRefrigerated Category = "Refrigerated"
	CategoryPantry       Category = "Pantry"
	CategoryFrozen       Category = "Frozen"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryRefrigerated, CategoryPantry, CategoryFrozen:
		return true
	}
	return false
}

func NewCategory(category string) (Category, error) {
	c := Category(category)
	if !c.IsValid() {
		return "", apperror.New(apperror.ErrCodeValidation, "некорректная категория продукта")
	}
	return c, nil
}

// Categories возвращает все допустимые категории в порядке отображения.
func Categories() []Category {
	return []Category{CategoryRefrigerated, CategoryPantry, CategoryFrozen}
}
