package rank_available_staff

import (
	"github.com/m04kA/SMC-StaffAvailabilityService/internal/domain"
)

// resolveIdentities строит StaffIdentity для каждого мастера из roster
// по строкам маппинга локации
//
// Внешний ID присваивается только при наличии видимой строки маппинга
// для этой локации. Отсутствие маппинга - не ошибка: записи такого
// мастера атрибуцируются только по внутреннему ID.
//
// Известное ограничение: если две строки маппинга указывают на один
// внешний ID (ошибка конфигурации выше по течению), оба мастера получают
// этот ID, и запись из POS может атрибуцироваться обоим. Это осознанное
// поведение, а не повод падать.
func resolveIdentities(staffIDs []int64, mappings []*domain.StaffMapping) map[int64]domain.StaffIdentity {
	byInternalID := make(map[int64]*domain.StaffMapping, len(mappings))
	for _, mapping := range mappings {
		if !mapping.Visible {
			continue
		}
		byInternalID[mapping.InternalStaffID] = mapping
	}

	identities := make(map[int64]domain.StaffIdentity, len(staffIDs))
	for _, staffID := range staffIDs {
		identity := domain.StaffIdentity{InternalID: staffID}
		if mapping, ok := byInternalID[staffID]; ok {
			externalID := mapping.ExternalStaffID
			identity.ExternalID = &externalID
		}
		identities[staffID] = identity
	}

	return identities
}
