package domain

import (
	"time"

	"github.com/m04kA/SMC-StaffAvailabilityService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled         AppointmentStatus = "scheduled"
	StatusConfirmed         AppointmentStatus = "confirmed"
	StatusInProgress        AppointmentStatus = "in_progress"
	StatusCompleted         AppointmentStatus = "completed"
	StatusCancelledByClient AppointmentStatus = "cancelled_by_client"
	StatusCancelledBySalon  AppointmentStatus = "cancelled_by_salon"
	StatusNoShow            AppointmentStatus = "no_show"
)

// Appointment одна запись клиента к мастеру на конкретную дату.
// Мастер может быть указан либо внутренним ID, либо внешним ID из POS
// системы салона - либо обоими. Attribution к мастеру делает busy-set
// builder, сверяя оба пространства идентификаторов.
type Appointment struct {
	ID              int64
	LocationID      int64
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	InternalStaffID *int64
	ExternalStaffID *string
	Status          AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies the staff member's time
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelledByClient &&
		a.Status != StatusCancelledBySalon &&
		a.Status != StatusNoShow
}

// Interval returns the appointment's busy interval.
// Returns ErrInvalidInterval for corrupt rows (end not after start).
func (a *Appointment) Interval() (Interval, error) {
	return NewInterval(a.StartTime, a.EndTime)
}
