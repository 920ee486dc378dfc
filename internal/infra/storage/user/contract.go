package user

import "github.com/TheMidnightCodeGuild/turfujn/pkg/dbmetrics"

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
