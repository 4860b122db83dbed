package requests

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс исполнителя запросов к базе данных
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}
