package models

// Conversion is the flat row stored in the conversions table.
type Conversion struct {
	ConversionID   int64   `db:"conversion_id"`   // Primary Key (BIGSERIAL)
	UnitType       string  `db:"unit_type"`       // e.g. "mass"
	OriginalUnit   string  `db:"original_unit"`   // e.g. "kg"
	OriginalValue  float64 `db:"original_value"`  // value as submitted
	ConvertedUnit  string  `db:"converted_unit"`  // e.g. "g"
	ConvertedValue float64 `db:"converted_value"` // derived, rounded to 6 digits
	AuditFields
}
