package schedule

import "github.com/feldwerk/scheduling-service/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics для работы с БД:
// репозиторий одинаково работает с *sql.DB и с обёрткой метрик
type DBExecutor = dbmetrics.DBExecutor
