package domain

import (
	"fmt"
	"math"

	"github.com/Bugian/unit-conversion-api/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ResultPrecision is the number of fractional digits kept on converted values.
const ResultPrecision = 6

// Unit describes a unit symbol relative to its type's base unit:
// value_in_unit = value_in_base*Ratio + Offset.
// Linear units have a zero Offset, so conversions reduce to a plain ratio product.
type Unit struct {
	Symbol string  `json:"symbol"`
	Ratio  float64 `json:"ratio"`
	Offset float64 `json:"offset,omitempty"`
}

// UnitType is a category of measurement within which units are mutually convertible.
type UnitType struct {
	Name string `json:"name"`
	Base string `json:"base"`
	// Irregular marks types that need an offset as well as a scale (temperature).
	Irregular bool   `json:"irregular,omitempty"`
	Units     []Unit `json:"units"`
}

// unitTable is enumerated in declaration order; InferUnitType depends on it.
var unitTable = []UnitType{
	{
		Name: "mass",
		Base: "kg",
		Units: []Unit{
			{Symbol: "kg", Ratio: 1},
			{Symbol: "g", Ratio: 1000},
			{Symbol: "mg", Ratio: 1000000},
			{Symbol: "t", Ratio: 0.001},
			{Symbol: "pound", Ratio: 2.20462},
			{Symbol: "oz", Ratio: 35.274},
		},
	},
	{
		Name: "length",
		Base: "km",
		Units: []Unit{
			{Symbol: "km", Ratio: 1},
			{Symbol: "m", Ratio: 1000},
			{Symbol: "cm", Ratio: 100000},
			{Symbol: "mm", Ratio: 1000000},
			{Symbol: "mile", Ratio: 0.621371},
			{Symbol: "ft", Ratio: 3280.84},
			{Symbol: "in", Ratio: 39370.1},
		},
	},
	{
		Name: "energy",
		Base: "kW",
		Units: []Unit{
			{Symbol: "kW", Ratio: 1},
			{Symbol: "W", Ratio: 1000},
			{Symbol: "MW", Ratio: 0.001},
		},
	},
	{
		Name:      "temperature",
		Base:      "C",
		Irregular: true,
		Units: []Unit{
			{Symbol: "C", Ratio: 1},
			{Symbol: "F", Ratio: 1.8, Offset: 32},
			{Symbol: "K", Ratio: 1, Offset: 273.15},
		},
	},
	{
		Name: "area",
		Base: "m2",
		Units: []Unit{
			{Symbol: "m2", Ratio: 1},
			{Symbol: "km2", Ratio: 0.000001},
			{Symbol: "cm2", Ratio: 10000},
			{Symbol: "ha", Ratio: 0.0001},
			{Symbol: "acre", Ratio: 0.000247105},
			{Symbol: "ft2", Ratio: 10.7639},
		},
	},
	{
		Name: "volume",
		Base: "L",
		Units: []Unit{
			{Symbol: "L", Ratio: 1},
			{Symbol: "mL", Ratio: 1000},
			{Symbol: "m3", Ratio: 0.001},
			{Symbol: "gal", Ratio: 0.264172},
			{Symbol: "cup", Ratio: 4.22675},
		},
	},
	{
		Name: "speed",
		Base: "m/s",
		Units: []Unit{
			{Symbol: "m/s", Ratio: 1},
			{Symbol: "km/h", Ratio: 3.6},
			{Symbol: "mph", Ratio: 2.23694},
			{Symbol: "knot", Ratio: 1.94384},
		},
	},
	{
		Name: "time",
		Base: "s",
		Units: []Unit{
			{Symbol: "s", Ratio: 1},
			{Symbol: "ms", Ratio: 1000},
			{Symbol: "min", Ratio: 1.0 / 60},
			{Symbol: "h", Ratio: 1.0 / 3600},
			{Symbol: "day", Ratio: 1.0 / 86400},
		},
	},
}

var unitIndex = buildUnitIndex(unitTable)

func buildUnitIndex(table []UnitType) map[string]map[string]Unit {
	index := make(map[string]map[string]Unit, len(table))
	for _, ut := range table {
		units := make(map[string]Unit, len(ut.Units))
		for _, u := range ut.Units {
			units[u.Symbol] = u
		}
		index[ut.Name] = units
	}
	return index
}

// UnitTypes returns the known unit type definitions in declaration order.
func UnitTypes() []UnitType {
	out := make([]UnitType, len(unitTable))
	for i, ut := range unitTable {
		out[i] = ut
		out[i].Units = append([]Unit(nil), ut.Units...)
	}
	return out
}

// IsUnitType reports whether name is a known unit type.
func IsUnitType(name string) bool {
	_, ok := unitIndex[name]
	return ok
}

// Symbols returns the unit symbols of a unit type in declaration order, or nil if the type is unknown.
func Symbols(unitType string) []string {
	for _, ut := range unitTable {
		if ut.Name != unitType {
			continue
		}
		symbols := make([]string, len(ut.Units))
		for i, u := range ut.Units {
			symbols[i] = u.Symbol
		}
		return symbols
	}
	return nil
}

// LookupUnit resolves a symbol within a unit type.
func LookupUnit(unitType, symbol string) (Unit, error) {
	units, ok := unitIndex[unitType]
	if !ok {
		return Unit{}, fmt.Errorf("%w: unknown unit type '%s'", apperrors.ErrValidation, unitType)
	}
	u, ok := units[symbol]
	if !ok {
		return Unit{}, fmt.Errorf("%w: unit '%s' is not a %s unit", apperrors.ErrValidation, symbol, unitType)
	}
	return u, nil
}

// InferUnitType finds the unit type that contains symbol.
// Types are scanned in declaration order and the first match wins.
func InferUnitType(symbol string) (string, bool) {
	for _, ut := range unitTable {
		if _, ok := unitIndex[ut.Name][symbol]; ok {
			return ut.Name, true
		}
	}
	return "", false
}

// Convert converts value from one unit to another within unitType and rounds the
// result to ResultPrecision fractional digits.
func Convert(unitType, from, to string, value float64) (float64, error) {
	fromUnit, err := LookupUnit(unitType, from)
	if err != nil {
		return 0, err
	}
	toUnit, err := LookupUnit(unitType, to)
	if err != nil {
		return 0, err
	}

	result := (value-fromUnit.Offset)*(toUnit.Ratio/fromUnit.Ratio) + toUnit.Offset
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, fmt.Errorf("%w: converted value is out of range", apperrors.ErrValidation)
	}
	return Round(result), nil
}

// Round rounds v half away from zero to ResultPrecision fractional digits.
func Round(v float64) float64 {
	return decimal.NewFromFloat(v).Round(ResultPrecision).InexactFloat64()
}
