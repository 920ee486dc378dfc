package create_booking

import "errors"

var (
	// ErrUserNotFound возвращается, когда профиль пользователя не найден
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrTurfNotFound возвращается, когда площадка не найдена
	ErrTurfNotFound = errors.New("create_booking: turf not found")

	// ErrEmptySlotSelection возвращается при попытке бронирования без слотов
	ErrEmptySlotSelection = errors.New("create_booking: slot selection is empty")

	// ErrUnknownSlot возвращается, когда слот отсутствует в каталоге
	ErrUnknownSlot = errors.New("create_booking: unknown slot id")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrSlotInPast возвращается при попытке забронировать уже начавшийся
	// сегодня слот
	ErrSlotInPast = errors.New("create_booking: slot has already started")

	// ErrSlotAlreadyTaken возвращается, когда хотя бы один из запрошенных
	// слотов занят другим активным бронированием
	ErrSlotAlreadyTaken = errors.New("create_booking: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	// Бронирование при этом не создано, повтор безопасен
	ErrInternal = errors.New("create_booking: internal error")
)
