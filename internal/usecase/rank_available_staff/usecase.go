package rank_available_staff

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-StaffAvailabilityService/internal/domain"
)

// UseCase use case для ранжирования мастеров по свободному времени
//
// Stateless и read-only: каждый вызов пересчитывает результат по свежим
// данным, разделяемого состояния нет. Расчеты по отдельным мастерам
// независимы, но выполняются последовательно - на кардинальностях одной
// локации и одного дня параллелизм не окупается.
type UseCase struct {
	scheduleRepo    ScheduleRepository
	mappingRepo     MappingRepository
	appointmentRepo AppointmentRepository
	staffClient     StaffServiceClient
	timeProvider    TimeProvider
	dayWindow       domain.DayWindow
	minGapMinutes   int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	mappingRepo MappingRepository,
	appointmentRepo AppointmentRepository,
	staffClient StaffServiceClient,
	dayWindow domain.DayWindow,
	minGapMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo:    scheduleRepo,
		mappingRepo:     mappingRepo,
		appointmentRepo: appointmentRepo,
		staffClient:     staffClient,
		timeProvider:    &RealTimeProvider{},
		dayWindow:       dayWindow,
		minGapMinutes:   minGapMinutes,
		logger:          logger,
	}
}

// Execute выполняет use case ранжирования доступных мастеров
//
// Выдача отфильтрована до мастеров, у которых есть хотя бы один свободный
// интервал длиной >= ServiceDurationMinutes, и отсортирована по суммарному
// свободному времени (убывание), при равенстве - по имени (возрастание).
//
// Неизвестная локация и пустой roster - валидный пустой результат, не
// ошибка. Ошибки источников данных прерывают запрос целиком
// (ErrDataUnavailable): частичное ранжирование не возвращается никогда.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RankAvailableStaff: user=%d, location=%v, date=%s, duration=%d, limit=%d",
		req.UserID, req.LocationID, req.Date.Format(domain.DateFormat), req.ServiceDurationMinutes, req.Limit)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RankAvailableStaff: validation failed: %v", err)
		return nil, err
	}

	// 2. Псевдозапрос "по всем локациям" - документированный fallback:
	// атрибуция записей пропускается, каждый активный мастер получает
	// номинальное полное окно дня
	if req.LocationID == nil {
		return uc.executeAllLocations(ctx, req)
	}

	locationID := *req.LocationID

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	// 4. Получаем roster локации на день недели запрошенной даты
	staffIDs, err := uc.scheduleRepo.GetStaffIDsByLocationAndWeekday(ctx, locationID, req.Date.Weekday())
	if err != nil {
		uc.logger.Error("RankAvailableStaff: failed to get schedule for location=%d: %v", locationID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrDataUnavailable, err)
	}

	// Пустой roster (неизвестная локация или выходной) - валидный пустой
	// результат, не ошибка
	if len(staffIDs) == 0 {
		uc.logger.Info("RankAvailableStaff: empty roster for location=%d on %s",
			locationID, req.Date.Format(domain.DateFormat))
		return emptyResponse(req), nil
	}

	// 5. Получаем данные мастеров из справочника
	members, err := uc.staffClient.GetStaffMembers(ctx, staffIDs)
	if err != nil {
		uc.logger.Error("RankAvailableStaff: failed to get staff members: %v", err)
		return nil, fmt.Errorf("%w: failed to get staff directory: %v", ErrDataUnavailable, err)
	}

	active := make([]*domain.StaffMember, 0, len(members))
	for _, member := range members {
		if member.Active {
			active = append(active, member)
		}
	}
	if len(active) == 0 {
		return emptyResponse(req), nil
	}

	// 6. Резолвим идентификаторы: внутренний ID + внешний POS ID локации
	mappings, err := uc.mappingRepo.GetByLocation(ctx, locationID)
	if err != nil {
		uc.logger.Error("RankAvailableStaff: failed to get staff mappings for location=%d: %v", locationID, err)
		return nil, fmt.Errorf("%w: failed to get staff mappings: %v", ErrDataUnavailable, err)
	}

	activeIDs := make([]int64, len(active))
	for i, member := range active {
		activeIDs[i] = member.InternalID
	}
	identities := resolveIdentities(activeIDs, mappings)

	// 7. Вычисляем остаток рабочего окна с учетом "now"
	window, ok := uc.dayWindow.Remaining(req.Date, now)
	if !ok {
		uc.logger.Info("RankAvailableStaff: no remaining day window for %s (now=%s)",
			req.Date.Format(domain.DateFormat), now.Format(domain.TimeFormat))
		return emptyResponse(req), nil
	}

	// 8. Получаем записи дня и строим busy-set каждого мастера
	appointments, err := uc.appointmentRepo.GetByLocationAndDate(ctx, locationID, req.Date)
	if err != nil {
		uc.logger.Error("RankAvailableStaff: failed to get appointments for location=%d: %v", locationID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrDataUnavailable, err)
	}

	busySets := buildBusySets(appointments, identities, uc.logger)

	// 9. Дополнение busy-set до окна + фильтр по длительности услуги
	ranked := make([]*domain.StaffAvailability, 0, len(active))
	for _, member := range active {
		free := computeFreeIntervals(window, busySets[member.InternalID], uc.minGapMinutes)

		availability := &domain.StaffAvailability{
			Identity:         identities[member.InternalID],
			DisplayName:      member.DisplayName,
			FreeIntervals:    free,
			TotalFreeMinutes: totalMinutes(free),
		}

		if availability.HasSlotFor(req.ServiceDurationMinutes) {
			ranked = append(ranked, availability)
		}
	}

	// 10. Сортировка: свободное время убывает, при равенстве имя возрастает
	sortAvailability(ranked)

	if req.Limit > 0 && len(ranked) > req.Limit {
		ranked = ranked[:req.Limit]
	}

	uc.logger.Info("RankAvailableStaff: %d of %d staff available for location=%d, date=%s, duration=%d",
		len(ranked), len(active), locationID, req.Date.Format(domain.DateFormat), req.ServiceDurationMinutes)

	return buildResponse(req, ranked), nil
}

// executeAllLocations обрабатывает псевдозапрос без локации
// Расписания и записи не читаются: каждый активный мастер получает
// номинальное полное окно дня одним свободным интервалом
func (uc *UseCase) executeAllLocations(ctx context.Context, req *Request) (*Response, error) {
	members, err := uc.staffClient.GetAllActiveStaff(ctx)
	if err != nil {
		uc.logger.Error("RankAvailableStaff: failed to get all active staff: %v", err)
		return nil, fmt.Errorf("%w: failed to get staff directory: %v", ErrDataUnavailable, err)
	}

	window := domain.Interval{Start: uc.dayWindow.Start, End: uc.dayWindow.End}

	ranked := make([]*domain.StaffAvailability, 0, len(members))
	for _, member := range members {
		if !member.Active {
			continue
		}

		availability := &domain.StaffAvailability{
			Identity:         domain.StaffIdentity{InternalID: member.InternalID},
			DisplayName:      member.DisplayName,
			FreeIntervals:    []domain.Interval{window},
			TotalFreeMinutes: window.DurationMinutes(),
		}

		if availability.HasSlotFor(req.ServiceDurationMinutes) {
			ranked = append(ranked, availability)
		}
	}

	sortAvailability(ranked)

	if req.Limit > 0 && len(ranked) > req.Limit {
		ranked = ranked[:req.Limit]
	}

	uc.logger.Info("RankAvailableStaff: all-locations fallback, %d active staff", len(ranked))

	return buildResponse(req, ranked), nil
}

// sortAvailability сортирует выдачу: TotalFreeMinutes убывает,
// при равенстве DisplayName возрастает - порядок детерминирован
func sortAvailability(ranked []*domain.StaffAvailability) {
	sort.SliceStable(ranked, func(a, b int) bool {
		if ranked[a].TotalFreeMinutes != ranked[b].TotalFreeMinutes {
			return ranked[a].TotalFreeMinutes > ranked[b].TotalFreeMinutes
		}
		return ranked[a].DisplayName < ranked[b].DisplayName
	})
}

func buildResponse(req *Request, ranked []*domain.StaffAvailability) *Response {
	staff := make([]StaffEntry, len(ranked))
	for i, availability := range ranked {
		staff[i] = fromDomainAvailability(availability)
	}

	return &Response{
		Date:       req.Date,
		LocationID: req.LocationID,
		Staff:      staff,
	}
}

func emptyResponse(req *Request) *Response {
	return &Response{
		Date:       req.Date,
		LocationID: req.LocationID,
		Staff:      []StaffEntry{},
	}
}
