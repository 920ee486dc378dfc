package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	UserID     string    // ID пользователя
	TurfID     string    // ID площадки
	Date       time.Time // Дата бронирования (время суток отбрасывается)
	Slots      []string  // Набор слотов каталога, непустой
	BookerName string    // Имя для бронирования (опционально, по умолчанию - имя профиля)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          string    // ID созданного бронирования
	UserID      string    // ID пользователя
	TurfID      string    // ID площадки
	TurfName    string    // Название площадки (денормализовано)
	BookingDate time.Time // Дата бронирования (UTC day bucket)
	Slots       []string  // Забронированные слоты
	Status      string    // Статус бронирования
	BookerName  string    // Имя на момент бронирования

	// IndexUpdated сообщает, попало ли бронирование в индекс пользователя.
	// false означает частичный успех: бронирование создано и занимает слоты,
	// но не будет видно в списке "мои бронирования" до ручной сверки
	IndexUpdated bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
