package domain

import "time"

// Default values
const (
	// DefaultServiceDurationMinutes длительность услуги, если каталог
	// недоступен или услуга не указана
	DefaultServiceDurationMinutes = 60
)

// Business validation constants
const (
	MinServiceDurationMinutes = 1
	MaxServiceDurationMinutes = 480 // 8 часов

	MinDistrict = 1
	MaxDistrict = 23
)

// Scheduling constants
const (
	// PastToleranceMinutes допуск для слотов, начавшихся недавно:
	// компенсирует расхождение часов клиента и сервера
	PastToleranceMinutes = 5

	// OptimalDistanceThresholdKm порог расстояния до ближайшей записи дня,
	// при котором слот помечается как оптимальный
	OptimalDistanceThresholdKm = 5.0
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// SchedulingLocation единая временная шкала планировщика.
// Времена правил и моменты записей интерпретируются в ней, чтобы
// расчёт слотов не зависел от локальной зоны сервера.
var SchedulingLocation = time.UTC
