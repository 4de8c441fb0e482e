package roster

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffAvailabilityService/internal/domain"
	"github.com/m04kA/SMC-StaffAvailabilityService/internal/service/roster/models"
)

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

type fakeStaffClient struct {
	members []*domain.StaffMember
	err     error
}

func (c *fakeStaffClient) GetStaffMembers(ctx context.Context, internalIDs []int64) ([]*domain.StaffMember, error) {
	return c.members, c.err
}

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

func testRequest() *models.GetOnDutyStaffRequest {
	return &models.GetOnDutyStaffRequest{
		UserID:     100,
		LocationID: 5,
		Date:       time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestService_GetOnDutyStaff(t *testing.T) {
	svc := NewService(
		&fakeScheduleRepo{staffIDs: []int64{1, 2}},
		&fakeMappingRepo{mappings: []*domain.StaffMapping{
			{InternalStaffID: 2, ExternalStaffID: "pos-2", Visible: true},
			{InternalStaffID: 1, ExternalStaffID: "pos-1", Visible: false},
		}},
		&fakeStaffClient{members: []*domain.StaffMember{
			{InternalID: 2, DisplayName: "Борис", Active: true},
			{InternalID: 1, DisplayName: "Анна", Active: true},
		}},
		&noopLogger{},
	)

	resp, err := svc.GetOnDutyStaff(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.LocationID)
	assert.Equal(t, "2026-09-15", resp.Date)
	require.Len(t, resp.Staff, 2)

	// Выдача отсортирована по имени
	assert.Equal(t, "Анна", resp.Staff[0].DisplayName)
	assert.Equal(t, "Борис", resp.Staff[1].DisplayName)

	// Невидимый маппинг не дает внешнего ID
	assert.Nil(t, resp.Staff[0].ExternalStaffID)
	require.NotNil(t, resp.Staff[1].ExternalStaffID)
	assert.Equal(t, "pos-2", *resp.Staff[1].ExternalStaffID)
}

func TestService_GetOnDutyStaff_EmptyRoster(t *testing.T) {
	svc := NewService(
		&fakeScheduleRepo{staffIDs: nil},
		&fakeMappingRepo{},
		&fakeStaffClient{},
		&noopLogger{},
	)

	resp, err := svc.GetOnDutyStaff(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Staff)
}

func TestService_GetOnDutyStaff_Validation(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, &fakeMappingRepo{}, &fakeStaffClient{}, &noopLogger{})

	t.Run("non-positive location id", func(t *testing.T) {
		req := testRequest()
		req.LocationID = 0
		_, err := svc.GetOnDutyStaff(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("zero date", func(t *testing.T) {
		req := testRequest()
		req.Date = time.Time{}
		_, err := svc.GetOnDutyStaff(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_GetOnDutyStaff_SourceErrors(t *testing.T) {
	sourceErr := errors.New("connection refused")

	cases := []struct {
		name string
		svc  *Service
	}{
		{
			name: "schedule repo fails",
			svc: NewService(
				&fakeScheduleRepo{err: sourceErr},
				&fakeMappingRepo{},
				&fakeStaffClient{},
				&noopLogger{},
			),
		},
		{
			name: "staff directory fails",
			svc: NewService(
				&fakeScheduleRepo{staffIDs: []int64{1}},
				&fakeMappingRepo{},
				&fakeStaffClient{err: sourceErr},
				&noopLogger{},
			),
		},
		{
			name: "mapping repo fails",
			svc: NewService(
				&fakeScheduleRepo{staffIDs: []int64{1}},
				&fakeMappingRepo{err: sourceErr},
				&fakeStaffClient{members: []*domain.StaffMember{{InternalID: 1, DisplayName: "Анна", Active: true}}},
				&noopLogger{},
			),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			resp, err := c.svc.GetOnDutyStaff(context.Background(), testRequest())
			assert.ErrorIs(t, err, ErrInternal)
			assert.Nil(t, resp)
		})
	}
}
