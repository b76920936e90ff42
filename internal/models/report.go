package models

import (
	"github.com/ignatzorin/freshkeeper-backend/internal/domain/valueobject"
)

// Report содержит сводку по видимым продуктам пользователя.
// Счётчики статусов в сумме всегда равны Total.
type Report struct {
	Total      int                          `json:"total"`
	ByCategory map[valueobject.Category]int `json:"by_category"`
	Donated    int                          `json:"donated"`
	Expired    int                          `json:"expired"`
	NearExpiry int                          `json:"near_expiry"`
	Available  int                          `json:"available"`
}
