package domain

// Сетка занятости
const (
	GridSlotMinutes = 30
	GridSlotsPerDay = 24 * 60 / GridSlotMinutes // 48
)

// Business validation constants
const (
	MaxPurposeLength       = 500
	MaxRemarksLength       = 500
	MaxSchedulesPerBooking = 31
	MaxParticipants        = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы, которые не занимают комнаты
var InactiveStatuses = []BookingStatus{
	StatusRejected,
	StatusCancelled,
}

// AllStatuses все допустимые статусы бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
	StatusRejected,
	StatusCompleted,
	StatusCancelled,
}
