package domain

import "time"

// StaffMember базовые данные мастера из StaffService
type StaffMember struct {
	InternalID  int64
	DisplayName string
	Active      bool
}

// StaffMapping строка таблицы соответствия внутреннего ID мастера
// внешнему ID из POS системы, привязанная к конкретной локации
type StaffMapping struct {
	ID              int64
	LocationID      int64
	InternalStaffID int64
	ExternalStaffID string
	Visible         bool // показывать ли мастера в календаре локации

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StaffIdentity резолвленная пара идентификаторов мастера на одной локации.
// ExternalID присутствует только если для локации есть видимая строка маппинга.
// Резолвится заново на каждый запрос - маппинги могут меняться в любой момент.
type StaffIdentity struct {
	InternalID int64
	ExternalID *string
}

// HasExternalID returns true if the identity carries a POS identifier
func (s StaffIdentity) HasExternalID() bool {
	return s.ExternalID != nil
}

// Matches returns true if the appointment belongs to this staff member:
// either its internal id equals InternalID, or its external id equals
// ExternalID (when both sides have one).
func (s StaffIdentity) Matches(a *Appointment) bool {
	if a.InternalStaffID != nil && *a.InternalStaffID == s.InternalID {
		return true
	}
	if a.ExternalStaffID != nil && s.ExternalID != nil && *a.ExternalStaffID == *s.ExternalID {
		return true
	}
	return false
}
