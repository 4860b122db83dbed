package requests

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("storage/requests: build query error")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("storage/requests: execute query error")

	// ErrScanRow возвращается при ошибке чтения результата запроса
	ErrScanRow = errors.New("storage/requests: scan row error")
)
