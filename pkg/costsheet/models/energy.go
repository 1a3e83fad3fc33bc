package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Mode distinguishes single-trailer energies from their tandem (Duo) variants.
type Mode string

const (
	ModeSimple Mode = "Simple"
	ModeDuo    Mode = "Duo"
)

// Family is the fuel or power source family of an energy.
type Family string

const (
	FamilyDiesel     Family = "Diesel"
	FamilyGasNatural Family = "GasNatural"
	FamilyHidrogeno  Family = "Hidrogeno"
	FamilyBiometano  Family = "Biometano"
	FamilyElectrico  Family = "Electrico"
	FamilyHvo        Family = "Hvo"
)

// EnergySummary holds the per-energy figures of the summary table.
type EnergySummary struct {
	PricePerUnit        decimal.Decimal `json:"pricePerUnit"`
	ConsumptionPer100Km decimal.Decimal `json:"consumptionPer100Km"`
	Rent                decimal.Decimal `json:"rent"`
}

// EnergyDefinition is a catalog entry ready to be submitted to the store.
type EnergyDefinition struct {
	Code                      string           `json:"code"`
	Name                      string           `json:"name"`
	Mode                      Mode             `json:"mode"`
	Family                    Family           `json:"family"`
	PricePerUnit              decimal.Decimal  `json:"pricePerUnit"`
	ConsumptionPer100Km       decimal.Decimal  `json:"consumptionPer100Km"`
	RentingCostPerMonth       decimal.Decimal  `json:"rentingCostPerMonth"`
	EmissionFactorPerUnit     decimal.Decimal  `json:"emissionFactorPerUnit"`
	RenewableShare            *decimal.Decimal `json:"renewableShare"`
	EmissionReduction         *decimal.Decimal `json:"emissionReduction"`
	BaseEnergyID              *uuid.UUID       `json:"baseEnergyId"`
	EmissionReferenceEnergyID *uuid.UUID       `json:"emissionReferenceEnergyId"`
	InheritEmissionFromBase   bool             `json:"inheritEmissionFromBase"`
	IsActive                  bool             `json:"isActive"`
	CostComponents            []CostComponent  `json:"costComponents"`
}

// EnergyRef identifies an energy created in the store.
type EnergyRef struct {
	// Key is the canonical energy key (e.g. "DUO GASOIL").
	Key  string    `json:"key"`
	ID   uuid.UUID `json:"id"`
	Code string    `json:"code"`
}
