package check_availability

import (
	"time"

	"github.com/TheMidnightCodeGuild/turfujn/internal/domain"
)

// Request модель запроса на проверку доступности слотов
type Request struct {
	TurfID           string    // ID площадки
	Date             time.Time // Дата (время суток отбрасывается, UTC day bucket)
	CandidateSlotIDs []string  // Проверяемое подмножество слотов (обычно весь каталог)
}

// Response результат проверки доступности
type Response struct {
	Available        bool              // true, если ни один из проверяемых слотов не занят
	UnavailableSlots []string          // занятые слоты из проверяемого подмножества
	ExistingBookings []*domain.Booking // активные бронирования площадки на эту дату
}
