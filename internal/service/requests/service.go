package requests

import (
	"context"
	"sync"

	"github.com/m04kA/SAC-BookingService/internal/domain"
	"github.com/m04kA/SAC-BookingService/internal/service/requests/models"
)

// Service владеет авторитетной коллекцией заявок и управляет их жизненным
// циклом: создание, отмена, решение ревьюера, редактирование и проекции.
//
// Все операции сериализуются одним мьютексом, поэтому проверка конфликта и
// запись слота атомарны: никто не наблюдает частично применённую мутацию.
// Коллекция упорядочена: новые заявки добавляются в начало.
type Service struct {
	mu       sync.Mutex
	requests []*domain.PermissionRequest

	gateway      Gateway
	policy       domain.OccupancyPolicy
	ids          IDGenerator
	timeProvider TimeProvider
	metrics      ConflictMetrics
	logger       Logger
}

// NewService создает сервис и загружает коллекцию из шлюза персистентности.
// Ошибка загрузки не фатальна: сервис стартует с пустой коллекцией.
func NewService(
	ctx context.Context,
	gateway Gateway,
	policy domain.OccupancyPolicy,
	metrics ConflictMetrics,
	logger Logger,
) *Service {
	s := &Service{
		gateway:      gateway,
		policy:       policy,
		ids:          UUIDGenerator{},
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}

	loaded, err := gateway.Load(ctx)
	if err != nil {
		logger.Warn("NewService: load failed, starting with empty collection: %v", err)
		loaded = []*domain.PermissionRequest{}
	}
	s.requests = loaded

	logger.Info("NewService: loaded %d requests, occupying statuses=%v", len(loaded), policy.Statuses())
	return s
}

// Create создает новую заявку.
// Правила проверяются по порядку (цель, окно, конфликт слота); первое
// нарушение возвращается как ошибка, коллекция при этом не изменяется.
// Успешная заявка получает id, статус Pending и попадает в начало коллекции.
func (s *Service) Create(ctx context.Context, req *models.CreateRequest) (*models.RequestResponse, error) {
	s.logger.Info("Create: requester=%s, location=%s, start=%s, end=%s",
		req.RequesterEmail, req.Location, req.Start, req.End)

	s.mu.Lock()
	defer s.mu.Unlock()

	// 1. Валидация полей
	if err := validateFields(req.Purpose, req.Start, req.End); err != nil {
		s.logger.Warn("Create: validation failed for requester=%s: %v", req.RequesterEmail, err)
		return nil, err
	}

	// 2. Проверка конфликта слота (без самоисключения)
	if !domain.IsFree(req.Start, req.End, req.Location, s.requests, "", s.policy) {
		s.metrics.IncSlotConflict("create")
		s.logger.Warn("Create: slot conflict for location=%s, start=%s, end=%s",
			req.Location, req.Start, req.End)
		return nil, ErrSlotConflict
	}

	// 3. Создаем заявку
	created := &domain.PermissionRequest{
		ID:             s.ids.NewID(),
		RequesterEmail: req.RequesterEmail,
		RequesterName:  req.RequesterName,
		Location:       req.Location,
		Capacity:       normalizeCapacity(req.Location, req.Capacity),
		Purpose:        req.Purpose,
		Start:          req.Start,
		End:            req.End,
		Status:         domain.StatusPending,
		CreatedAt:      s.timeProvider.Now(),
		IsSpecial:      req.IsSpecial,
		SpecialDetails: req.SpecialDetails,
	}

	// 4. Новые заявки добавляются в начало коллекции
	s.requests = append([]*domain.PermissionRequest{created}, s.requests...)

	// 5. Пропагация в шлюз персистентности
	s.persistLocked(ctx, "Create")

	s.logger.Info("Create: created request id=%s for requester=%s", created.ID, created.RequesterEmail)
	return models.FromDomainRequest(created), nil
}

// Cancel удаляет заявку из коллекции.
// Отсутствующий id — идемпотентный no-op: коллекция не меняется, ошибки нет.
func (s *Service) Cancel(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.requests {
		if r.ID != id {
			continue
		}
		s.requests = append(s.requests[:i], s.requests[i+1:]...)
		s.persistLocked(ctx, "Cancel")
		s.logger.Info("Cancel: removed request id=%s", id)
		return
	}

	s.logger.Info("Cancel: request id=%s not found, nothing to do", id)
}

// Approve переводит заявку в статус Approved.
// Повторное одобрение идемпотентно; отсутствующий id — no-op.
// Конфликты при одобрении не ревалидируются: создание — единственная точка
// проверки слота.
func (s *Service) Approve(ctx context.Context, id string) {
	s.decide(ctx, id, domain.StatusApproved)
}

// Reject переводит заявку в статус Rejected.
// Отсутствующий id — no-op.
func (s *Service) Reject(ctx context.Context, id string) {
	s.decide(ctx, id, domain.StatusRejected)
}

// decide устанавливает статус заявки с данным id
func (s *Service) decide(ctx context.Context, id string, status domain.RequestStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.requests {
		if r.ID != id {
			continue
		}
		r.Status = status
		s.persistLocked(ctx, "decide")
		s.logger.Info("decide: request id=%s set to status=%s", id, status)
		return
	}

	s.logger.Info("decide: request id=%s not found, nothing to do", id)
}

// Edit выполняет полную замену редактируемых полей заявки (цель, окно,
// вместимость). Ревалидация конфликта исключает саму заявку, чтобы
// неизменённое окно не конфликтовало само с собой. Статус заявки при
// редактировании не сбрасывается, каким бы он ни был.
func (s *Service) Edit(ctx context.Context, id string, req *models.EditRequest) (*models.RequestResponse, error) {
	s.logger.Info("Edit: request id=%s, start=%s, end=%s", id, req.Start, req.End)

	s.mu.Lock()
	defer s.mu.Unlock()

	// 1. Находим заявку
	idx := -1
	for i, r := range s.requests {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.logger.Warn("Edit: request id=%s not found", id)
		return nil, ErrRequestNotFound
	}
	current := s.requests[idx]

	// 2. Валидация полей
	if err := validateFields(req.Purpose, req.Start, req.End); err != nil {
		s.logger.Warn("Edit: validation failed for request id=%s: %v", id, err)
		return nil, err
	}

	// 3. Проверка конфликта слота с самоисключением
	if !domain.IsFree(req.Start, req.End, current.Location, s.requests, id, s.policy) {
		s.metrics.IncSlotConflict("edit")
		s.logger.Warn("Edit: slot conflict for request id=%s, location=%s", id, current.Location)
		return nil, ErrSlotConflict
	}

	// 4. Замена полей; id, автор, площадка, статус и createdAt сохраняются
	updated := current.Clone()
	updated.Purpose = req.Purpose
	updated.Start = req.Start
	updated.End = req.End
	updated.Capacity = normalizeCapacity(current.Location, req.Capacity)
	s.requests[idx] = updated

	// 5. Пропагация в шлюз персистентности
	s.persistLocked(ctx, "Edit")

	s.logger.Info("Edit: updated request id=%s", id)
	return models.FromDomainRequest(updated), nil
}

// ListByRequester проекция заявителя: только его заявки, порядок коллекции
// сохраняется (новые первыми). Чистая производная, пересчитывается на каждый
// вызов.
func (s *Service) ListByRequester(email string) *models.RequestListResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]*domain.PermissionRequest, 0)
	for _, r := range s.requests {
		if r.RequesterEmail == email {
			filtered = append(filtered, r)
		}
	}
	return models.FromDomainRequestList(filtered)
}

// ListAll проекция ревьюера: вся коллекция в её порядке
func (s *Service) ListAll() *models.RequestListResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.FromDomainRequestList(s.requests)
}

// CheckSlot проверяет доступность слота и для занятого слота вычисляет
// рекомендательную подсказку следующего свободного начала
func (s *Service) CheckSlot(req *models.CheckSlotRequest) *models.SlotAvailability {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := &models.SlotAvailability{
		Free: domain.IsFree(req.Start, req.End, req.Location, s.requests, "", s.policy),
	}
	if !result.Free {
		result.SuggestedStart = domain.SuggestNextStart(req.Start, req.Location, s.requests, s.policy)
	}
	return result
}

// persistLocked пропагирует снимок коллекции в шлюз персистентности.
// Вызывается только под мьютексом. Ошибки сохранения логируются и не
// прерывают операцию: авторитетным остаётся состояние в памяти.
func (s *Service) persistLocked(ctx context.Context, op string) {
	snapshot := make([]*domain.PermissionRequest, len(s.requests))
	copy(snapshot, s.requests)

	if err := s.gateway.Save(ctx, snapshot); err != nil {
		s.logger.Error("%s: failed to persist %d requests: %v", op, len(snapshot), err)
	}
}
