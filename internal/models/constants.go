package models

// Заголовки уведомлений о событиях инвентаря
const (
	NotificationTitleItemAdded   = "Продукт добавлен"
	NotificationTitleItemDeleted = "Продукт удалён"
	NotificationTitleItemDonated = "Продукт передан на пожертвование"
)
