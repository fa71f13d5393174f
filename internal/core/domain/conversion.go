package domain

// Quantity is a numeric value expressed in a unit symbol.
type Quantity struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Conversion is one logged conversion: the original quantity and its converted counterpart.
// Converted.Value is always derived from Original via the unit table for UnitType.
type Conversion struct {
	ConversionID int64    `json:"id"`
	UnitType     string   `json:"type"`
	Original     Quantity `json:"original"`
	Converted    Quantity `json:"converted"`
	AuditFields
}

// Recompute refreshes Converted.Value from the current unit type, units and original value.
func (c *Conversion) Recompute() error {
	value, err := Convert(c.UnitType, c.Original.Unit, c.Converted.Unit, c.Original.Value)
	if err != nil {
		return err
	}
	c.Converted.Value = value
	return nil
}
