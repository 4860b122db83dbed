package requests

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SAC-BookingService/internal/domain"
	"github.com/m04kA/SAC-BookingService/pkg/psqlbuilder"
)

// StorageKey фиксированный ключ документа с коллекцией заявок.
// Значение унаследовано от исходного хранилища портала.
const StorageKey = "sac_requests_v1"

const tableName = "sac_request_store"

// Repository шлюз персистентности коллекции заявок.
// Вся коллекция хранится одним JSON документом под фиксированным ключом,
// поэтому подмена хранилища не затрагивает контракт движка конфликтов.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр шлюза персистентности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Load загружает коллекцию заявок.
// Отсутствующий документ — корректное состояние холодного старта: возвращается
// пустая коллекция. Нечитаемый (повреждённый) документ по контракту шлюза
// также равнозначен пустому хранилищу и не является ошибкой.
func (r *Repository) Load(ctx context.Context) ([]*domain.PermissionRequest, error) {
	query, args, err := psqlbuilder.Select("payload").
		From(tableName).
		Where(squirrel.Eq{"key": StorageKey}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	var payload []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return []*domain.PermissionRequest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - scan payload: %v", ErrScanRow, err)
	}

	var records []requestRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return []*domain.PermissionRequest{}, nil
	}

	result := make([]*domain.PermissionRequest, 0, len(records))
	for _, rec := range records {
		result = append(result, rec.toDomain())
	}
	return result, nil
}

// Save сохраняет коллекцию заявок целиком (upsert по фиксированному ключу)
func (r *Repository) Save(ctx context.Context, reqs []*domain.PermissionRequest) error {
	records := make([]requestRecord, 0, len(reqs))
	for _, req := range reqs {
		records = append(records, toRecord(req))
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal payload: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("key", "payload").
		Values(StorageKey, payload).
		Suffix("ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
