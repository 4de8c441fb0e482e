package rank_available_staff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffAvailabilityService/internal/domain"
	"github.com/m04kA/SMC-StaffAvailabilityService/pkg/ptr"
)

// --- Фейки зависимостей ---

type fakeScheduleRepo struct {
	staffIDs []int64
	err      error
}

func (r *fakeScheduleRepo) GetStaffIDsByLocationAndWeekday(ctx context.Context, locationID int64, weekday time.Weekday) ([]int64, error) {
	return r.staffIDs, r.err
}

type fakeMappingRepo struct {
	mappings []*domain.StaffMapping
	err      error
}

func (r *fakeMappingRepo) GetByLocation(ctx context.Context, locationID int64) ([]*domain.StaffMapping, error) {
	return r.mappings, r.err
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (r *fakeAppointmentRepo) GetByLocationAndDate(ctx context.Context, locationID int64, date time.Time) ([]*domain.Appointment, error) {
	return r.appointments, r.err
}

type fakeStaffClient struct {
	members []*domain.StaffMember
	err     error
}

func (c *fakeStaffClient) GetStaffMembers(ctx context.Context, internalIDs []int64) ([]*domain.StaffMember, error) {
	return c.members, c.err
}

func (c *fakeStaffClient) GetAllActiveStaff(ctx context.Context) ([]*domain.StaffMember, error) {
	return c.members, c.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

// --- Хелперы ---

type deps struct {
	schedule     *fakeScheduleRepo
	mapping      *fakeMappingRepo
	appointments *fakeAppointmentRepo
	staff        *fakeStaffClient
}

func newTestUseCase(d deps, now time.Time) *UseCase {
	uc := NewUseCase(
		d.schedule,
		d.mapping,
		d.appointments,
		d.staff,
		domain.DefaultDayWindow(),
		domain.MinUsableGapMinutes,
		&noopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func futureDate() time.Time {
	return time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
}

// now накануне запрошенной даты: окно дня не клампится
func dayBefore() time.Time {
	return time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)
}

func staffMember(id int64, name string) *domain.StaffMember {
	return &domain.StaffMember{InternalID: id, DisplayName: name, Active: true}
}

func baseRequest() *Request {
	return &Request{
		UserID:                 100,
		LocationID:             ptr.Ptr(int64(5)),
		Date:                   futureDate(),
		ServiceDurationMinutes: 30,
	}
}

// --- Тесты ---

func TestUseCase_Execute_RankingOrder(t *testing.T) {
	// У Анны запись 10:00-11:30 (свободно 630 мин), у Бориса день пуст
	// (720 мин) - Борис выше
	uc := newTestUseCase(deps{
		schedule: &fakeScheduleRepo{staffIDs: []int64{1, 2}},
		mapping:  &fakeMappingRepo{},
		appointments: &fakeAppointmentRepo{appointments: []*domain.Appointment{
			makeAppointment(t, ptr.Ptr(int64(1)), nil, "10:00", "11:30"),
		}},
		staff: &fakeStaffClient{members: []*domain.StaffMember{
			staffMember(1, "Анна"),
			staffMember(2, "Борис"),
		}},
	}, dayBefore())

	resp, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)
	require.Len(t, resp.Staff, 2)

	assert.Equal(t, int64(2), resp.Staff[0].InternalStaffID)
	assert.Equal(t, 720, resp.Staff[0].TotalFreeMinutes)

	assert.Equal(t, int64(1), resp.Staff[1].InternalStaffID)
	assert.Equal(t, 630, resp.Staff[1].TotalFreeMinutes)
	require.Len(t, resp.Staff[1].FreeIntervals, 2)
	assert.Equal(t, "08:00", resp.Staff[1].FreeIntervals[0].StartTime.String())
	assert.Equal(t, "10:00", resp.Staff[1].FreeIntervals[0].EndTime.String())
	assert.Equal(t, 120, resp.Staff[1].FreeIntervals[0].DurationMinutes)
	assert.Equal(t, "11:30", resp.Staff[1].FreeIntervals[1].StartTime.String())
	assert.Equal(t, "20:00", resp.Staff[1].FreeIntervals[1].EndTime.String())
	assert.Equal(t, 510, resp.Staff[1].FreeIntervals[1].DurationMinutes)
}

func TestUseCase_Execute_TieBrokenByName(t *testing.T) {
	uc := newTestUseCase(deps{
		schedule:     &fakeScheduleRepo{staffIDs: []int64{3, 1, 2}},
		mapping:      &fakeMappingRepo{},
		appointments: &fakeAppointmentRepo{},
		staff: &fakeStaffClient{members: []*domain.StaffMember{
			staffMember(3, "Вера"),
			staffMember(1, "Анна"),
			staffMember(2, "Борис"),
		}},
	}, dayBefore())

	resp, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)
	require.Len(t, resp.Staff, 3)

	// Все с одинаковым свободным временем - порядок по имени
	assert.Equal(t, "Анна", resp.Staff[0].DisplayName)
	assert.Equal(t, "Борис", resp.Staff[1].DisplayName)
	assert.Equal(t, "Вера", resp.Staff[2].DisplayName)
}

func TestUseCase_Execute_DurationFilter(t *testing.T) {
	// Свободные интервалы Анны: 08:00-10:00 (120) и 19:30-20:00 (30).
	// Услуга на 180 минут не помещается ни в один
	uc := newTestUseCase(deps{
		schedule: &fakeScheduleRepo{staffIDs: []int64{1, 2}},
		mapping:  &fakeMappingRepo{},
		appointments: &fakeAppointmentRepo{appointments: []*domain.Appointment{
			makeAppointment(t, ptr.Ptr(int64(1)), nil, "10:00", "19:30"),
		}},
		staff: &fakeStaffClient{members: []*domain.StaffMember{
			staffMember(1, "Анна"),
			staffMember(2, "Борис"),
		}},
	}, dayBefore())

	req := baseRequest()
	req.ServiceDurationMinutes = 180

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Staff, 1)
	assert.Equal(t, int64(2), resp.Staff[0].InternalStaffID)
}

func TestUseCase_Execute_ExternalIDAttribution(t *testing.T) {
	// Запись из POS без внутреннего ID атрибуцируется через маппинг
	uc := newTestUseCase(deps{
		schedule: &fakeScheduleRepo{staffIDs: []int64{1}},
		mapping: &fakeMappingRepo{mappings: []*domain.StaffMapping{
			{InternalStaffID: 1, ExternalStaffID: "pos-1", Visible: true},
		}},
		appointments: &fakeAppointmentRepo{appointments: []*domain.Appointment{
			makeAppointment(t, nil, ptr.Ptr("pos-1"), "08:00", "19:00"),
		}},
		staff: &fakeStaffClient{members: []*domain.StaffMember{
			staffMember(1, "Анна"),
		}},
	}, dayBefore())

	resp, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)
	require.Len(t, resp.Staff, 1)
	assert.Equal(t, 60, resp.Staff[0].TotalFreeMinutes)
	require.NotNil(t, resp.Staff[0].ExternalStaffID)
	assert.Equal(t, "pos-1", *resp.Staff[0].ExternalStaffID)
}

func TestUseCase_Execute_TodayClampsWindow(t *testing.T) {
	// Сейчас 09:50 запрошенного дня, запись 09:00-10:00 уже идет:
	// остается единственный интервал 10:00-20:00
	now := time.Date(2026, 9, 15, 9, 50, 0, 0, time.UTC)
	uc := newTestUseCase(deps{
		schedule: &fakeScheduleRepo{staffIDs: []int64{1}},
		mapping:  &fakeMappingRepo{},
		appointments: &fakeAppointmentRepo{appointments: []*domain.Appointment{
			makeAppointment(t, ptr.Ptr(int64(1)), nil, "09:00", "10:00"),
		}},
		staff: &fakeStaffClient{members: []*domain.StaffMember{
			staffMember(1, "Анна"),
		}},
	}, now)

	resp, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)
	require.Len(t, resp.Staff, 1)
	require.Len(t, resp.Staff[0].FreeIntervals, 1)
	assert.Equal(t, "10:00", resp.Staff[0].FreeIntervals[0].StartTime.String())
	assert.Equal(t, "20:00", resp.Staff[0].FreeIntervals[0].EndTime.String())
	assert.Equal(t, 600, resp.Staff[0].TotalFreeMinutes)
}

func TestUseCase_Execute_PastDateEmptyResult(t *testing.T) {
	now := time.Date(2026, 9, 16, 8, 0, 0, 0, time.UTC)
	uc := newTestUseCase(deps{
		schedule:     &fakeScheduleRepo{staffIDs: []int64{1}},
		mapping:      &fakeMappingRepo{},
		appointments: &fakeAppointmentRepo{},
		staff: &fakeStaffClient{members: []*domain.StaffMember{
			staffMember(1, "Анна"),
		}},
	}, now)

	resp, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Staff)
}

func TestUseCase_Execute_UnknownLocationEmptyResult(t *testing.T) {
	// Неизвестная локация выглядит как пустой roster - пустой результат,
	// не ошибка
	uc := newTestUseCase(deps{
		schedule:     &fakeScheduleRepo{staffIDs: nil},
		mapping:      &fakeMappingRepo{},
		appointments: &fakeAppointmentRepo{},
		staff:        &fakeStaffClient{},
	}, dayBefore())

	resp, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Staff)
}

func TestUseCase_Execute_InactiveStaffExcluded(t *testing.T) {
	uc := newTestUseCase(deps{
		schedule:     &fakeScheduleRepo{staffIDs: []int64{1, 2}},
		mapping:      &fakeMappingRepo{},
		appointments: &fakeAppointmentRepo{},
		staff: &fakeStaffClient{members: []*domain.StaffMember{
			staffMember(1, "Анна"),
			{InternalID: 2, DisplayName: "Борис", Active: false},
		}},
	}, dayBefore())

	resp, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)
	require.Len(t, resp.Staff, 1)
	assert.Equal(t, int64(1), resp.Staff[0].InternalStaffID)
}

func TestUseCase_Execute_LimitTruncates(t *testing.T) {
	uc := newTestUseCase(deps{
		schedule:     &fakeScheduleRepo{staffIDs: []int64{1, 2, 3}},
		mapping:      &fakeMappingRepo{},
		appointments: &fakeAppointmentRepo{},
		staff: &fakeStaffClient{members: []*domain.StaffMember{
			staffMember(1, "Анна"),
			staffMember(2, "Борис"),
			staffMember(3, "Вера"),
		}},
	}, dayBefore())

	req := baseRequest()
	req.Limit = 2

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, resp.Staff, 2)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := newTestUseCase(deps{
		schedule:     &fakeScheduleRepo{},
		mapping:      &fakeMappingRepo{},
		appointments: &fakeAppointmentRepo{},
		staff:        &fakeStaffClient{},
	}, dayBefore())

	t.Run("zero duration", func(t *testing.T) {
		req := baseRequest()
		req.ServiceDurationMinutes = 0
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidServiceDuration)
	})

	t.Run("negative duration", func(t *testing.T) {
		req := baseRequest()
		req.ServiceDurationMinutes = -15
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidServiceDuration)
	})

	t.Run("duration over maximum", func(t *testing.T) {
		req := baseRequest()
		req.ServiceDurationMinutes = domain.MaxServiceDurationMinutes + 1
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidServiceDuration)
	})

	t.Run("non-positive location id", func(t *testing.T) {
		req := baseRequest()
		req.LocationID = ptr.Ptr(int64(0))
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("zero date", func(t *testing.T) {
		req := baseRequest()
		req.Date = time.Time{}
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("negative limit", func(t *testing.T) {
		req := baseRequest()
		req.Limit = -1
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestUseCase_Execute_DataUnavailable(t *testing.T) {
	sourceErr := errors.New("connection refused")

	cases := []struct {
		name string
		deps deps
	}{
		{
			name: "schedule repo fails",
			deps: deps{
				schedule:     &fakeScheduleRepo{err: sourceErr},
				mapping:      &fakeMappingRepo{},
				appointments: &fakeAppointmentRepo{},
				staff:        &fakeStaffClient{},
			},
		},
		{
			name: "staff directory fails",
			deps: deps{
				schedule:     &fakeScheduleRepo{staffIDs: []int64{1}},
				mapping:      &fakeMappingRepo{},
				appointments: &fakeAppointmentRepo{},
				staff:        &fakeStaffClient{err: sourceErr},
			},
		},
		{
			name: "mapping repo fails",
			deps: deps{
				schedule:     &fakeScheduleRepo{staffIDs: []int64{1}},
				mapping:      &fakeMappingRepo{err: sourceErr},
				appointments: &fakeAppointmentRepo{},
				staff:        &fakeStaffClient{members: []*domain.StaffMember{staffMember(1, "Анна")}},
			},
		},
		{
			name: "appointment repo fails",
			deps: deps{
				schedule:     &fakeScheduleRepo{staffIDs: []int64{1}},
				mapping:      &fakeMappingRepo{},
				appointments: &fakeAppointmentRepo{err: sourceErr},
				staff:        &fakeStaffClient{members: []*domain.StaffMember{staffMember(1, "Анна")}},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			uc := newTestUseCase(c.deps, dayBefore())
			resp, err := uc.Execute(context.Background(), baseRequest())
			assert.ErrorIs(t, err, ErrDataUnavailable)
			// Частичный результат не возвращается никогда
			assert.Nil(t, resp)
		})
	}
}

func TestUseCase_Execute_AllLocationsFallback(t *testing.T) {
	// Без локации расписания и записи не читаются: каждый активный мастер
	// получает номинальное полное окно дня
	schedule := &fakeScheduleRepo{err: errors.New("must not be called")}
	appointments := &fakeAppointmentRepo{err: errors.New("must not be called")}

	uc := newTestUseCase(deps{
		schedule:     schedule,
		mapping:      &fakeMappingRepo{},
		appointments: appointments,
		staff: &fakeStaffClient{members: []*domain.StaffMember{
			staffMember(2, "Борис"),
			staffMember(1, "Анна"),
			{InternalID: 3, DisplayName: "Вера", Active: false},
		}},
	}, dayBefore())

	req := baseRequest()
	req.LocationID = nil

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Staff, 2)

	assert.Equal(t, "Анна", resp.Staff[0].DisplayName)
	assert.Equal(t, "Борис", resp.Staff[1].DisplayName)

	for _, entry := range resp.Staff {
		assert.Equal(t, 720, entry.TotalFreeMinutes)
		require.Len(t, entry.FreeIntervals, 1)
		assert.Equal(t, "08:00", entry.FreeIntervals[0].StartTime.String())
		assert.Equal(t, "20:00", entry.FreeIntervals[0].EndTime.String())
	}

	assert.Nil(t, resp.LocationID)
}
