package mapping

import (
	"github.com/ledgerline/ledgerline/internal/core/domain"
	"github.com/ledgerline/ledgerline/internal/models"
)

// ToModelAsset converts a domain Asset to a model Asset
func ToModelAsset(d domain.Asset) models.Asset {
	return models.Asset{
		AssetID:     d.AssetID,
		AccountID:   d.AccountID,
		Name:        d.Name,
		Quantity:    d.Quantity,
		MarketValue: d.MarketValue,
		Note:        d.Note,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAsset converts a model Asset to a domain Asset
func ToDomainAsset(m models.Asset) domain.Asset {
	return domain.Asset{
		AssetID:     m.AssetID,
		AccountID:   m.AccountID,
		Name:        m.Name,
		Quantity:    m.Quantity,
		MarketValue: m.MarketValue,
		Note:        m.Note,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
