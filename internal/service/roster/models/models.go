package models

import (
	"time"

	"github.com/m04kA/SMC-StaffAvailabilityService/internal/domain"
)

// GetOnDutyStaffRequest запрос на получение мастеров, работающих на локации
type GetOnDutyStaffRequest struct {
	UserID     int64     `json:"userId"`
	LocationID int64     `json:"locationId"`
	Date       time.Time `json:"date"`
}

// OnDutyStaffResponse ответ со списком мастеров на смене
type OnDutyStaffResponse struct {
	LocationID int64              `json:"locationId"`
	Date       string             `json:"date"` // "2026-08-29"
	Staff      []OnDutyStaffEntry `json:"staff"`
}

// OnDutyStaffEntry один мастер на смене
type OnDutyStaffEntry struct {
	InternalStaffID int64   `json:"internalStaffId"`
	ExternalStaffID *string `json:"externalStaffId,omitempty"`
	DisplayName     string  `json:"displayName"`
	Active          bool    `json:"active"`
}

// FromDomainStaff конвертирует domain модели в entry списка смены
func FromDomainStaff(member *domain.StaffMember, mapping *domain.StaffMapping) OnDutyStaffEntry {
	entry := OnDutyStaffEntry{
		InternalStaffID: member.InternalID,
		DisplayName:     member.DisplayName,
		Active:          member.Active,
	}

	if mapping != nil && mapping.Visible {
		externalID := mapping.ExternalStaffID
		entry.ExternalStaffID = &externalID
	}

	return entry
}
