package mapping

import (
	"github.com/bankapp-se/bankapp_backend/internal/core/domain"
	"github.com/bankapp-se/bankapp_backend/internal/models"
)

// AccountModelToDomain converts a database account row to the domain entity.
func AccountModelToDomain(m models.Account) domain.Account {
	return domain.Account{
		AccountID:     m.AccountID,
		AccountNumber: m.AccountNumber,
		Name:          m.Name,
		OwnerID:       m.OwnerID,
		Balance:       m.Balance,
		AuditFields:   auditModelToDomain(m.AuditFields),
	}
}

// AccountDomainToModel converts a domain account to its database row form.
func AccountDomainToModel(d domain.Account) models.Account {
	return models.Account{
		AccountID:     d.AccountID,
		AccountNumber: d.AccountNumber,
		Name:          d.Name,
		OwnerID:       d.OwnerID,
		Balance:       d.Balance,
		AuditFields:   auditDomainToModel(d.AuditFields),
	}
}

// AccountModelsToDomains converts a slice of rows, preserving order.
func AccountModelsToDomains(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, 0, len(ms))
	for _, m := range ms {
		ds = append(ds, AccountModelToDomain(m))
	}
	return ds
}
