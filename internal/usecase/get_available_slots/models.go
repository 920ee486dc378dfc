package get_available_slots

import "time"

// Request модель запроса на получение слотов дня
type Request struct {
	TurfID string    // ID площадки
	Date   time.Time // Дата (время суток отбрасывается)
}

// Response модель ответа со слотами дня
type Response struct {
	TurfID string    // ID площадки
	Date   time.Time // Дата (UTC day bucket)
	Slots  []Slot    // Все слоты каталога с признаками доступности
}

// Slot слот каталога с вычисленной доступностью на день
type Slot struct {
	ID        string // ID слота каталога
	Label     string // Отображаемое название
	StartHour int
	EndHour   int
	Available bool // свободен и еще не начался
	Booked    bool // занят активным бронированием
	Started   bool // уже начался (для сегодняшней даты)
}
