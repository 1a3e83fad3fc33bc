// Package catalog assembles energy definitions from extracted sheet data and
// submits them in an order that resolves base and emission references.
package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
)

// EnergySpec is the static configuration of one energy.
type EnergySpec struct {
	// Key is the canonical energy key, as found in the summary table.
	Key               string
	Family            models.Family
	Mode              models.Mode
	EmissionFactor    decimal.Decimal
	RenewableShare    *decimal.Decimal
	EmissionReduction *decimal.Decimal
	// Base is the key of the Simple energy a Duo energy derives from.
	Base string
	// EmissionReference is the key of the energy providing emission factors.
	EmissionReference string
	InheritEmission   bool
}

// Plan is the ordered list of energies to submit. An energy may only
// reference energies that appear before it.
type Plan []EnergySpec

func fraction(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// DefaultPlan returns the energy catalog of the cost comparison workbook:
// Simple energies first, each Duo energy after its base.
func DefaultPlan() Plan {
	return Plan{
		{Key: "DIESEL", Family: models.FamilyDiesel, Mode: models.ModeSimple, EmissionFactor: decimal.RequireFromString("2.493")},
		{Key: "GAS NATURAL", Family: models.FamilyGasNatural, Mode: models.ModeSimple, EmissionFactor: decimal.RequireFromString("2.721")},
		{Key: "H2", Family: models.FamilyHidrogeno, Mode: models.ModeSimple, EmissionFactor: decimal.Zero},
		{
			Key: "HVO", Family: models.FamilyHvo, Mode: models.ModeSimple, EmissionFactor: decimal.RequireFromString("2.493"),
			RenewableShare: fraction("1.0"), EmissionReduction: fraction("0.9"), EmissionReference: "DIESEL",
		},
		{
			Key: "BIOMETANO", Family: models.FamilyBiometano, Mode: models.ModeSimple, EmissionFactor: decimal.RequireFromString("2.721"),
			RenewableShare: fraction("1.0"), EmissionReduction: fraction("0.9"), EmissionReference: "GAS NATURAL",
		},
		{Key: "ELECTRICO", Family: models.FamilyElectrico, Mode: models.ModeSimple, EmissionFactor: decimal.Zero},
		{
			Key: "DUO GASOIL", Family: models.FamilyDiesel, Mode: models.ModeDuo, EmissionFactor: decimal.RequireFromString("2.493"),
			Base: "DIESEL", InheritEmission: true,
		},
		{
			Key: "DUO HVO", Family: models.FamilyHvo, Mode: models.ModeDuo, EmissionFactor: decimal.RequireFromString("2.493"),
			RenewableShare: fraction("1.0"), EmissionReduction: fraction("0.9"), Base: "HVO", InheritEmission: true,
		},
		{
			Key: "DUO BIOMETANO", Family: models.FamilyBiometano, Mode: models.ModeDuo, EmissionFactor: decimal.RequireFromString("2.721"),
			RenewableShare: fraction("1.0"), EmissionReduction: fraction("0.9"), Base: "BIOMETANO", InheritEmission: true,
		},
		{Key: "DUO H2", Family: models.FamilyHidrogeno, Mode: models.ModeDuo, EmissionFactor: decimal.Zero, Base: "H2"},
		{Key: "DUO ELECTRICO", Family: models.FamilyElectrico, Mode: models.ModeDuo, EmissionFactor: decimal.Zero, Base: "ELECTRICO"},
	}
}

// DefaultSheets maps worksheet titles (textnorm.Key form) to the energy whose
// cost components they hold.
func DefaultSheets() map[string]string {
	return map[string]string{
		"GASOIL":               "DIESEL",
		"GAS NATURAL":          "GAS NATURAL",
		"H2":                   "H2",
		"HVO":                  "HVO",
		"BIOMETANO":            "BIOMETANO",
		"ELECTRICO":            "ELECTRICO",
		"DUOTRAILER GASOIL":    "DUO GASOIL",
		"DUOTRAILER HVO":       "DUO HVO",
		"DUOTRAILER H2":        "DUO H2",
		"DUOTRAILER ELECTRICO": "DUO ELECTRICO",
		"DUOTRAILER BIOMETANO": "DUO BIOMETANO",
	}
}

// Keys returns the energy keys in submission order.
func (p Plan) Keys() []string {
	keys := make([]string, len(p))
	for i, spec := range p {
		keys[i] = spec.Key
	}
	return keys
}

// Validate checks that keys are unique, that Duo energies declare a base and
// Simple ones do not, and that every reference names an earlier energy.
func (p Plan) Validate() error {
	seen := make(map[string]models.Mode, len(p))
	for i, spec := range p {
		if spec.Key == "" {
			return fmt.Errorf("plan entry %d: empty key", i)
		}
		if _, dup := seen[spec.Key]; dup {
			return fmt.Errorf("plan entry %d: duplicate key %q", i, spec.Key)
		}

		switch spec.Mode {
		case models.ModeDuo:
			if spec.Base == "" {
				return fmt.Errorf("energy %q: duo energy without base", spec.Key)
			}
		case models.ModeSimple:
			if spec.Base != "" {
				return fmt.Errorf("energy %q: simple energy with base %q", spec.Key, spec.Base)
			}
		default:
			return fmt.Errorf("energy %q: unknown mode %q", spec.Key, spec.Mode)
		}

		for _, ref := range []string{spec.Base, spec.EmissionReference} {
			if ref == "" {
				continue
			}
			if _, ok := seen[ref]; !ok {
				return fmt.Errorf("energy %q references %q: %w", spec.Key, ref, ErrMissingDependency)
			}
		}
		if spec.Base != "" && seen[spec.Base] != models.ModeSimple {
			return fmt.Errorf("energy %q: base %q is not a simple energy", spec.Key, spec.Base)
		}

		seen[spec.Key] = spec.Mode
	}
	return nil
}
