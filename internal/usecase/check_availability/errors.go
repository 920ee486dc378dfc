package check_availability

import "errors"

var (
	// ErrTurfNotFound возвращается, когда площадка не найдена
	ErrTurfNotFound = errors.New("check_availability: turf not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrQueryFailed возвращается, когда запрос бронирований не удался
	// Вызывающий обязан трактовать это как "доступность неизвестна",
	// а не как "все слоты свободны"
	ErrQueryFailed = errors.New("check_availability: availability query failed")
)
