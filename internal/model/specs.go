package model

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
)

// Dimension types accepted in Dimensions.Type
const (
	ShapePlate = "plate"
	ShapeSheet = "sheet"
	ShapeCoil  = "coil"
	ShapePipe  = "pipe"
	ShapeBar   = "bar"
)

// Dimensions is the measurement record of a product, discriminated by Type.
// All measurements are millimetres. Required fields per type:
//
//	plate, sheet, coil: thickness_mm, width_mm
//	pipe:               outer_diameter_mm, wall_thickness_mm
//	bar:                diameter_mm, or thickness_mm and width_mm
//
// length_mm is optional for every type. A zero Dimensions (empty Type) means none recorded.
type Dimensions struct {
	Type            string   `json:"type,omitempty"`
	ThicknessMM     *float64 `json:"thickness_mm,omitempty"`
	WidthMM         *float64 `json:"width_mm,omitempty"`
	LengthMM        *float64 `json:"length_mm,omitempty"`
	OuterDiameterMM *float64 `json:"outer_diameter_mm,omitempty"`
	WallThicknessMM *float64 `json:"wall_thickness_mm,omitempty"`
	DiameterMM      *float64 `json:"diameter_mm,omitempty"`
}

// IsZero reports whether no dimensions were recorded
func (d Dimensions) IsZero() bool {
	return d == Dimensions{}
}

// Validate checks the per-type schema
func (d Dimensions) Validate() error {
	if d.IsZero() {
		return nil
	}

	measures := map[string]*float64{
		"thickness_mm":      d.ThicknessMM,
		"width_mm":          d.WidthMM,
		"length_mm":         d.LengthMM,
		"outer_diameter_mm": d.OuterDiameterMM,
		"wall_thickness_mm": d.WallThicknessMM,
		"diameter_mm":       d.DiameterMM,
	}
	for _, name := range sortedKeys(measures) {
		if v := measures[name]; v != nil && *v <= 0 {
			return fmt.Errorf("dimensions.%s must be greater than zero", name)
		}
	}

	switch d.Type {
	case ShapePlate, ShapeSheet, ShapeCoil:
		if d.ThicknessMM == nil || d.WidthMM == nil {
			return fmt.Errorf("dimensions of type %s require thickness_mm and width_mm", d.Type)
		}
	case ShapePipe:
		if d.OuterDiameterMM == nil || d.WallThicknessMM == nil {
			return errors.New("dimensions of type pipe require outer_diameter_mm and wall_thickness_mm")
		}
		if *d.WallThicknessMM*2 >= *d.OuterDiameterMM {
			return errors.New("dimensions.wall_thickness_mm must be less than half of outer_diameter_mm")
		}
	case ShapeBar:
		if d.DiameterMM == nil && (d.ThicknessMM == nil || d.WidthMM == nil) {
			return errors.New("dimensions of type bar require diameter_mm, or thickness_mm and width_mm")
		}
	case "":
		return errors.New("dimensions.type is required when measurements are given")
	default:
		return fmt.Errorf("dimensions.type must be one of: plate, sheet, coil, pipe, bar (got %q)", d.Type)
	}
	return nil
}

var elementSymbol = regexp.MustCompile(`^[A-Z][a-z]?$`)

// ChemicalComposition maps an element symbol to its mass percentage
type ChemicalComposition map[string]float64

// Validate checks symbols and that percentages are within 0..100 in total
func (c ChemicalComposition) Validate() error {
	var total float64
	for _, symbol := range sortedKeys(c) {
		pct := c[symbol]
		if !elementSymbol.MatchString(symbol) {
			return fmt.Errorf("chemical_composition: %q is not an element symbol", symbol)
		}
		if pct < 0 || pct > 100 {
			return fmt.Errorf("chemical_composition.%s must be between 0 and 100", symbol)
		}
		total += pct
	}
	if total > 100 {
		return fmt.Errorf("chemical_composition percentages add up to %.3f, more than 100", total)
	}
	return nil
}

// MechanicalProperties records the tested mechanical values of a heat
type MechanicalProperties struct {
	TensileStrengthMPa *float64 `json:"tensile_strength_mpa,omitempty"`
	YieldStrengthMPa   *float64 `json:"yield_strength_mpa,omitempty"`
	ElongationPercent  *float64 `json:"elongation_percent,omitempty"`
	HardnessHB         *float64 `json:"hardness_hb,omitempty"`
	ImpactEnergyJ      *float64 `json:"impact_energy_j,omitempty"`
}

// Validate rejects negative values and a yield strength above the tensile strength
func (m MechanicalProperties) Validate() error {
	values := map[string]*float64{
		"tensile_strength_mpa": m.TensileStrengthMPa,
		"yield_strength_mpa":   m.YieldStrengthMPa,
		"elongation_percent":   m.ElongationPercent,
		"hardness_hb":          m.HardnessHB,
		"impact_energy_j":      m.ImpactEnergyJ,
	}
	for _, name := range sortedKeys(values) {
		if v := values[name]; v != nil && *v < 0 {
			return fmt.Errorf("mechanical_properties.%s must not be negative", name)
		}
	}
	if m.ElongationPercent != nil && *m.ElongationPercent > 100 {
		return errors.New("mechanical_properties.elongation_percent must not exceed 100")
	}
	if m.TensileStrengthMPa != nil && m.YieldStrengthMPa != nil && *m.YieldStrengthMPa > *m.TensileStrengthMPa {
		return errors.New("mechanical_properties.yield_strength_mpa must not exceed tensile_strength_mpa")
	}
	return nil
}

// SteelCharacteristics describes what a category offers
type SteelCharacteristics struct {
	Grades       []string `json:"grades,omitempty"`
	Standards    []string `json:"standards,omitempty"`
	Applications []string `json:"applications,omitempty"`
	Finish       string   `json:"finish,omitempty"`
	Notes        string   `json:"notes,omitempty"`
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
