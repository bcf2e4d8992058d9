package mapping

import (
	"github.com/ledgerline/ledgerline/internal/core/domain"
	"github.com/ledgerline/ledgerline/internal/models"
)

// ToModelRecord converts a domain Record to a model Record
func ToModelRecord(d domain.Record) models.Record {
	return models.Record{
		RecordID:        d.RecordID,
		AccountID:       d.AccountID,
		AssetID:         d.AssetID,
		LiabilityID:     d.LiabilityID,
		Amount:          d.Amount,
		Business:        d.Business,
		Category:        d.Category,
		Quantity:        d.Quantity,
		ChangeType:      string(d.ChangeType),
		Note:            d.Note,
		TransactionDate: d.TransactionDate,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainRecord converts a model Record to a domain Record
func ToDomainRecord(m models.Record) domain.Record {
	return domain.Record{
		RecordID:        m.RecordID,
		AccountID:       m.AccountID,
		AssetID:         m.AssetID,
		LiabilityID:     m.LiabilityID,
		Amount:          m.Amount,
		Business:        m.Business,
		Category:        m.Category,
		Quantity:        m.Quantity,
		ChangeType:      domain.RecordChangeType(m.ChangeType),
		Note:            m.Note,
		TransactionDate: m.TransactionDate,
		AuditFields:     domain.AuditFields{CreatedAt: m.CreatedAt, LastUpdatedAt: m.CreatedAt},
	}
}

// ToDomainRecordSlice converts a slice of model Records to domain Records
func ToDomainRecordSlice(ms []models.Record) []domain.Record {
	ds := make([]domain.Record, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRecord(m)
	}
	return ds
}
