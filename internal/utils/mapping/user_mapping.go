package mapping

import (
	"github.com/bankapp-se/bankapp_backend/internal/core/domain"
	"github.com/bankapp-se/bankapp_backend/internal/models"
)

// UserModelToDomain converts a database user row to the domain entity.
func UserModelToDomain(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		AuditFields:  auditModelToDomain(m.AuditFields),
	}
}

// UserDomainToModel converts a domain user to its database row form.
func UserDomainToModel(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		Name:         d.Name,
		PasswordHash: d.PasswordHash,
		AuditFields:  auditDomainToModel(d.AuditFields),
	}
}

func auditModelToDomain(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}

func auditDomainToModel(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}
