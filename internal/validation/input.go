package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Константы валидации
const (
	MaxItemNameLength = 200
	MinQuantity       = 1
	MaxQuantity       = 100000
	CodeLength        = 6
)

// ValidateLength проверяет длину строки.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s должен быть не менее %d символов", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s должен быть не более %d символов", fieldName, max)
	}
	return nil
}

// ValidateEmail проверяет формат email.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email обязателен")
	}

	email = strings.TrimSpace(email)
	email = strings.ToLower(email)

	// Базовая проверка формата
	if !strings.Contains(email, "@") {
		return fmt.Errorf("email должен содержать символ @")
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return fmt.Errorf("некорректный формат email")
	}

	localPart := parts[0]
	domainPart := parts[1]

	if len(localPart) == 0 || len(localPart) > 64 {
		return fmt.Errorf("локальная часть email должна быть от 1 до 64 символов")
	}

	if len(domainPart) == 0 || len(domainPart) > 255 {
		return fmt.Errorf("доменная часть email должна быть от 1 до 255 символов")
	}

	if !strings.Contains(domainPart, ".") {
		return fmt.Errorf("доменная часть email должна содержать точку")
	}

	// Проверка на валидные символы в локальной части
	emailRegex := regexp.MustCompile(`^[a-z0-9._+-]+$`)
	if !emailRegex.MatchString(localPart) {
		return fmt.Errorf("локальная часть email содержит недопустимые символы")
	}

	// Проверка на валидные символы в доменной части
	domainRegex := regexp.MustCompile(`^[a-z0-9.-]+\.[a-z]{2,}$`)
	if !domainRegex.MatchString(domainPart) {
		return fmt.Errorf("доменная часть email имеет некорректный формат")
	}

	return nil
}

// ValidateNonEmpty проверяет, что строка не пустая.
func ValidateNonEmpty(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s не может быть пустым", fieldName)
	}
	return nil
}

// ValidateItemName проверяет название продукта.
func ValidateItemName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("название продукта не может быть пустым")
	}

	name = strings.TrimSpace(name)

	if err := ValidateLength("название продукта", name, 1, MaxItemNameLength); err != nil {
		return err
	}

	return nil
}

// ValidateQuantity проверяет количество продукта.
func ValidateQuantity(quantity int) error {
	if quantity < MinQuantity {
		return fmt.Errorf("количество должно быть положительным целым числом")
	}
	if quantity > MaxQuantity {
		return fmt.Errorf("количество не может превышать %d", MaxQuantity)
	}
	return nil
}

// ParseExpiryDate разбирает срок годности в формате ГГГГ-ММ-ДД.
// Время суток и часовой пояс в дате не допускаются.
func ParseExpiryDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("срок годности обязателен")
	}

	parsed, err := time.ParseInLocation(time.DateOnly, raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("срок годности должен быть датой в формате ГГГГ-ММ-ДД")
	}

	return parsed, nil
}

// ValidateVerificationCode проверяет формат одноразового кода.
func ValidateVerificationCode(code string) error {
	if code == "" {
		return fmt.Errorf("код подтверждения обязателен")
	}

	if len(code) != CodeLength {
		return fmt.Errorf("код подтверждения должен состоять из %d цифр", CodeLength)
	}

	codeRegex := regexp.MustCompile(`^[0-9]+$`)
	if !codeRegex.MatchString(code) {
		return fmt.Errorf("код подтверждения должен содержать только цифры")
	}

	return nil
}
