package dto

import (
	"github.com/Bugian/unit-conversion-api/internal/core/domain"
)

// CreateConversionRequest defines the body of POST /convert. All fields are required.
type CreateConversionRequest struct {
	Type  string   `json:"type" binding:"required,unittype"`
	From  string   `json:"from" binding:"required"`
	To    string   `json:"to" binding:"required"`
	Value *float64 `json:"value" binding:"required"` // pointer so that 0 is accepted
}

// ReplaceConversionRequest defines the body of PUT /convert/{id}.
// Using pointers to differentiate between omitted fields and zero-value fields.
type ReplaceConversionRequest struct {
	Type  *string  `json:"type" binding:"omitempty,unittype"`
	From  *string  `json:"from" binding:"omitempty,min=1"`
	To    *string  `json:"to" binding:"omitempty,min=1"`
	Value *float64 `json:"value"`
}

// PatchConversionRequest defines the body of PATCH /convert/{id}. The unit type is never
// taken from the body; it is inferred from the record's current source unit.
type PatchConversionRequest struct {
	From  *string  `json:"from" binding:"omitempty,min=1"`
	To    *string  `json:"to" binding:"omitempty,min=1"`
	Value *float64 `json:"value"`
}

// QuantityResponse is a value/unit pair as rendered by the API.
type QuantityResponse struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// ConversionResponse defines the JSON shape of a conversion record.
type ConversionResponse struct {
	ID        int64            `json:"id"`
	Original  QuantityResponse `json:"original"`
	Converted QuantityResponse `json:"converted"`
}

// MessageResponse carries a human readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ToConversionResponse converts a domain.Conversion to ConversionResponse DTO
func ToConversionResponse(c *domain.Conversion) ConversionResponse {
	return ConversionResponse{
		ID:        c.ConversionID,
		Original:  QuantityResponse{Value: c.Original.Value, Unit: c.Original.Unit},
		Converted: QuantityResponse{Value: c.Converted.Value, Unit: c.Converted.Unit},
	}
}

// ToListConversionResponse converts a slice of domain.Conversion to a slice of ConversionResponse DTOs.
func ToListConversionResponse(conversions []domain.Conversion) []ConversionResponse {
	res := make([]ConversionResponse, len(conversions))
	for i := range conversions {
		res[i] = ToConversionResponse(&conversions[i])
	}
	return res
}

// ToUnitsResponse lists the symbols of every unit type, keyed by type name.
func ToUnitsResponse(types []domain.UnitType) map[string][]string {
	res := make(map[string][]string, len(types))
	for _, ut := range types {
		symbols := make([]string, len(ut.Units))
		for i, u := range ut.Units {
			symbols[i] = u.Symbol
		}
		res[ut.Name] = symbols
	}
	return res
}
