package mapping

import (
	"github.com/Bugian/unit-conversion-api/internal/core/domain"
	"github.com/Bugian/unit-conversion-api/internal/models"
)

// ToModelConversion converts a domain Conversion to a model Conversion
func ToModelConversion(d domain.Conversion) models.Conversion {
	return models.Conversion{
		ConversionID:   d.ConversionID,
		UnitType:       d.UnitType,
		OriginalUnit:   d.Original.Unit,
		OriginalValue:  d.Original.Value,
		ConvertedUnit:  d.Converted.Unit,
		ConvertedValue: d.Converted.Value,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainConversion converts a model Conversion to a domain Conversion
func ToDomainConversion(m models.Conversion) domain.Conversion {
	return domain.Conversion{
		ConversionID: m.ConversionID,
		UnitType:     m.UnitType,
		Original:     domain.Quantity{Value: m.OriginalValue, Unit: m.OriginalUnit},
		Converted:    domain.Quantity{Value: m.ConvertedValue, Unit: m.ConvertedUnit},
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainConversions converts a slice of model Conversions, preserving order.
func ToDomainConversions(ms []models.Conversion) []domain.Conversion {
	out := make([]domain.Conversion, len(ms))
	for i, m := range ms {
		out[i] = ToDomainConversion(m)
	}
	return out
}
