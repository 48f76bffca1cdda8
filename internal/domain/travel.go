package domain

import "time"

// Meal приём пищи, за который начисляется суточное пособие
type Meal string

const (
	MealBreakfast Meal = "breakfast"
	MealLunch     Meal = "lunch"
	MealDinner    Meal = "dinner"
)

// AllMeals приёмы пищи в порядке дня
var AllMeals = []Meal{MealBreakfast, MealLunch, MealDinner}

// MealFlags флаги по каждому приёму пищи
type MealFlags struct {
	Breakfast bool `json:"breakfast"`
	Lunch     bool `json:"lunch"`
	Dinner    bool `json:"dinner"`
}

// Get возвращает флаг приёма пищи
func (f MealFlags) Get(meal Meal) bool {
	switch meal {
	case MealBreakfast:
		return f.Breakfast
	case MealLunch:
		return f.Lunch
	case MealDinner:
		return f.Dinner
	default:
		return false
	}
}

// With возвращает копию с установленным флагом
func (f MealFlags) With(meal Meal, value bool) MealFlags {
	switch meal {
	case MealBreakfast:
		f.Breakfast = value
	case MealLunch:
		f.Lunch = value
	case MealDinner:
		f.Dinner = value
	}
	return f
}

// IsValidMeal проверяет название приёма пищи
func IsValidMeal(meal Meal) bool {
	return meal == MealBreakfast || meal == MealLunch || meal == MealDinner
}

// MealDay производная запись по одному календарному дню поездки
type MealDay struct {
	Date     string    `json:"date"` // YYYY-MM-DD, ключ сопоставления при пересчёте
	Eligible MealFlags `json:"eligible"`
	Provided MealFlags `json:"provided"` // отмечено пользователем: питание предоставлено
}

// TransportMode способ передвижения в командировке
type TransportMode string

const (
	TransportOfficeVehicle TransportMode = "OFFICE_VEHICLE"
	TransportOwnVehicle    TransportMode = "OWN_VEHICLE"
	TransportFlight        TransportMode = "FLIGHT"
	TransportPublic        TransportMode = "PUBLIC"
)

// IsValid проверяет способ передвижения
func (m TransportMode) IsValid() bool {
	switch m {
	case TransportOfficeVehicle, TransportOwnVehicle, TransportFlight, TransportPublic:
		return true
	default:
		return false
	}
}

// TravelRequest заявка на командировку (и служебный транспорт)
type TravelRequest struct {
	ID             int64
	UserID         int64
	Destination    string
	Purpose        string
	TransportMode  TransportMode
	VehiclePlate   *string // для OFFICE_VEHICLE / OWN_VEHICLE
	StartAt        time.Time
	EndAt          time.Time
	MealDays       []MealDay
	AllowanceTotal int
	Status         BookingStatus // тот же жизненный цикл согласования, что и у бронирований
	Remarks        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
