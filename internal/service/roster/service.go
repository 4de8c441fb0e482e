package roster

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-StaffAvailabilityService/internal/domain"
	"github.com/m04kA/SMC-StaffAvailabilityService/internal/service/roster/models"
)

// Service сервис для просмотра смен: кто из мастеров работает на локации
// в указанную дату. Используется UI расписания; расчетов свободного
// времени здесь нет
type Service struct {
	scheduleRepo ScheduleRepository
	mappingRepo  MappingRepository
	staffClient  StaffServiceClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса смен
func NewService(
	scheduleRepo ScheduleRepository,
	mappingRepo MappingRepository,
	staffClient StaffServiceClient,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		mappingRepo:  mappingRepo,
		staffClient:  staffClient,
		logger:       logger,
	}
}

// GetOnDutyStaff получает список мастеров на смене локации в указанную дату
// Пустой список - валидный результат (выходной или неизвестная локация)
func (s *Service) GetOnDutyStaff(ctx context.Context, req *models.GetOnDutyStaffRequest) (*models.OnDutyStaffResponse, error) {
	s.logger.Info("GetOnDutyStaff: location=%d, date=%s, user=%d",
		req.LocationID, req.Date.Format(domain.DateFormat), req.UserID)

	if req.LocationID <= 0 {
		return nil, fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	staffIDs, err := s.scheduleRepo.GetStaffIDsByLocationAndWeekday(ctx, req.LocationID, req.Date.Weekday())
	if err != nil {
		s.logger.Error("GetOnDutyStaff: failed to get schedule for location=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: GetOnDutyStaff - schedule repository: %v", ErrInternal, err)
	}

	response := &models.OnDutyStaffResponse{
		LocationID: req.LocationID,
		Date:       req.Date.Format(domain.DateFormat),
		Staff:      []models.OnDutyStaffEntry{},
	}

	if len(staffIDs) == 0 {
		s.logger.Info("GetOnDutyStaff: empty roster for location=%d on %s",
			req.LocationID, req.Date.Format(domain.DateFormat))
		return response, nil
	}

	members, err := s.staffClient.GetStaffMembers(ctx, staffIDs)
	if err != nil {
		s.logger.Error("GetOnDutyStaff: failed to get staff members: %v", err)
		return nil, fmt.Errorf("%w: GetOnDutyStaff - staff directory: %v", ErrInternal, err)
	}

	mappings, err := s.mappingRepo.GetByLocation(ctx, req.LocationID)
	if err != nil {
		s.logger.Error("GetOnDutyStaff: failed to get staff mappings for location=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: GetOnDutyStaff - mapping repository: %v", ErrInternal, err)
	}

	mappingByStaffID := make(map[int64]*domain.StaffMapping, len(mappings))
	for _, mapping := range mappings {
		mappingByStaffID[mapping.InternalStaffID] = mapping
	}

	for _, member := range members {
		response.Staff = append(response.Staff, models.FromDomainStaff(member, mappingByStaffID[member.InternalID]))
	}

	// Детерминированный порядок выдачи
	sort.Slice(response.Staff, func(a, b int) bool {
		return response.Staff[a].DisplayName < response.Staff[b].DisplayName
	})

	s.logger.Info("GetOnDutyStaff: %d staff on duty for location=%d on %s",
		len(response.Staff), req.LocationID, req.Date.Format(domain.DateFormat))

	return response, nil
}
