package catalog

// Service услуга из каталога
type Service struct {
	ID              int64  `json:"id"`
	CategoryID      int64  `json:"categoryId"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
