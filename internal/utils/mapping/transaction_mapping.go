package mapping

import (
	"github.com/bankapp-se/bankapp_backend/internal/core/domain"
	"github.com/bankapp-se/bankapp_backend/internal/models"
)

// TransactionModelToDomain converts a database ledger row to the domain entity.
func TransactionModelToDomain(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		AccountID:       m.AccountID,
		Amount:          m.Amount,
		TransactionType: domain.TransactionType(m.TransactionType),
		Description:     m.Description,
		AuditFields:     auditModelToDomain(m.AuditFields),
	}
}

// TransactionDomainToModel converts a domain ledger entry to its row form.
func TransactionDomainToModel(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		AccountID:       d.AccountID,
		Amount:          d.Amount,
		TransactionType: models.TransactionType(d.TransactionType),
		Description:     d.Description,
		AuditFields:     auditDomainToModel(d.AuditFields),
	}
}

// TransactionModelsToDomains converts a slice of rows, preserving order.
func TransactionModelsToDomains(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, 0, len(ms))
	for _, m := range ms {
		ds = append(ds, TransactionModelToDomain(m))
	}
	return ds
}
