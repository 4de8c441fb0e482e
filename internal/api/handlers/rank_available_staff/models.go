package rank_available_staff

import (
	"time"

	"github.com/m04kA/SMC-StaffAvailabilityService/internal/domain"
	rankAvailableStaff "github.com/m04kA/SMC-StaffAvailabilityService/internal/usecase/rank_available_staff"
)

// AvailableStaffResponse HTTP response model
type AvailableStaffResponse struct {
	Date       string       `json:"date"`
	LocationID *int64       `json:"locationId,omitempty"`
	Staff      []StaffEntry `json:"staff"`
}

// StaffEntry один мастер в выдаче
type StaffEntry struct {
	InternalStaffID  int64          `json:"internalStaffId"`
	ExternalStaffID  *string        `json:"externalStaffId,omitempty"`
	DisplayName      string         `json:"displayName"`
	TotalFreeMinutes int            `json:"totalFreeMinutes"`
	FreeIntervals    []FreeInterval `json:"freeIntervals"`
}

// FreeInterval свободный интервал мастера
type FreeInterval struct {
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rankAvailableStaff.Response) *AvailableStaffResponse {
	staff := make([]StaffEntry, len(resp.Staff))
	for i, entry := range resp.Staff {
		intervals := make([]FreeInterval, len(entry.FreeIntervals))
		for j, interval := range entry.FreeIntervals {
			intervals[j] = FreeInterval{
				StartTime:       interval.StartTime.String(),
				EndTime:         interval.EndTime.String(),
				DurationMinutes: interval.DurationMinutes,
			}
		}

		staff[i] = StaffEntry{
			InternalStaffID:  entry.InternalStaffID,
			ExternalStaffID:  entry.ExternalStaffID,
			DisplayName:      entry.DisplayName,
			TotalFreeMinutes: entry.TotalFreeMinutes,
			FreeIntervals:    intervals,
		}
	}

	return &AvailableStaffResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		LocationID: resp.LocationID,
		Staff:      staff,
	}
}

// ToUseCaseRequest создает запрос use case из параметров HTTP запроса
// locationID nil означает запрос "по всем локациям"
func ToUseCaseRequest(locationID *int64, dateStr string, durationMinutes, limit int) (*rankAvailableStaff.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &rankAvailableStaff.Request{
		LocationID:             locationID,
		Date:                   date,
		ServiceDurationMinutes: durationMinutes,
		Limit:                  limit,
	}, nil
}
