package admin

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
)

// EnergyPayload is the request body of POST /api/admin/energies.
// Decimals are sent as JSON numbers.
type EnergyPayload struct {
	Code                      string             `json:"code"`
	Name                      string             `json:"name"`
	Mode                      models.Mode        `json:"mode"`
	Family                    models.Family      `json:"family"`
	PricePerUnit              json.Number        `json:"pricePerUnit"`
	ConsumptionPer100Km       json.Number        `json:"consumptionPer100Km"`
	RentingCostPerMonth       json.Number        `json:"rentingCostPerMonth"`
	EmissionFactorPerUnit     json.Number        `json:"emissionFactorPerUnit"`
	RenewableShare            *json.Number       `json:"renewableShare"`
	EmissionReduction         *json.Number       `json:"emissionReduction"`
	BaseEnergyID              *uuid.UUID         `json:"baseEnergyId"`
	EmissionReferenceEnergyID *uuid.UUID         `json:"emissionReferenceEnergyId"`
	InheritEmissionFromBase   bool               `json:"inheritEmissionFromBase"`
	IsActive                  bool               `json:"isActive"`
	CostComponents            []ComponentPayload `json:"costComponents"`
}

// ComponentPayload is one entry of EnergyPayload.CostComponents.
type ComponentPayload struct {
	Name       string           `json:"name"`
	Category   models.Category  `json:"category"`
	ValueType  models.ValueType `json:"valueType"`
	Value      json.Number      `json:"value"`
	Order      int              `json:"order"`
	IsEditable bool             `json:"isEditable"`
}

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func optionalNumber(d *decimal.Decimal) *json.Number {
	if d == nil {
		return nil
	}
	n := number(*d)
	return &n
}

// NewEnergyPayload converts def to its wire form.
func NewEnergyPayload(def models.EnergyDefinition) EnergyPayload {
	components := make([]ComponentPayload, len(def.CostComponents))
	for i, c := range def.CostComponents {
		components[i] = ComponentPayload{
			Name:       c.Name,
			Category:   c.Category,
			ValueType:  c.ValueType,
			Value:      number(c.Value),
			Order:      c.Order,
			IsEditable: c.IsEditable,
		}
	}

	return EnergyPayload{
		Code:                      def.Code,
		Name:                      def.Name,
		Mode:                      def.Mode,
		Family:                    def.Family,
		PricePerUnit:              number(def.PricePerUnit),
		ConsumptionPer100Km:       number(def.ConsumptionPer100Km),
		RentingCostPerMonth:       number(def.RentingCostPerMonth),
		EmissionFactorPerUnit:     number(def.EmissionFactorPerUnit),
		RenewableShare:            optionalNumber(def.RenewableShare),
		EmissionReduction:         optionalNumber(def.EmissionReduction),
		BaseEnergyID:              def.BaseEnergyID,
		EmissionReferenceEnergyID: def.EmissionReferenceEnergyID,
		InheritEmissionFromBase:   def.InheritEmissionFromBase,
		IsActive:                  def.IsActive,
		CostComponents:            components,
	}
}

// RemoteParameter is a parameter object as returned by the store. Every field
// is kept so that an update sends back the full object.
type RemoteParameter struct {
	fields map[string]json.RawMessage
}

func (p *RemoteParameter) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	p.fields = fields
	return nil
}

func (p RemoteParameter) MarshalJSON() ([]byte, error) {
	if p.fields == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(p.fields)
}

// Key returns the parameter key, or "" when the object carries none.
func (p RemoteParameter) Key() string {
	var key string
	if raw, ok := p.fields["key"]; ok {
		_ = json.Unmarshal(raw, &key)
	}
	return key
}

// Value returns the current value. Numbers and numeric strings are accepted.
func (p RemoteParameter) Value() (decimal.Decimal, error) {
	var v decimal.Decimal
	raw, ok := p.fields["value"]
	if !ok {
		return v, nil
	}
	err := v.UnmarshalJSON(raw)
	return v, err
}

// Field returns the raw JSON of field name.
func (p RemoteParameter) Field(name string) (json.RawMessage, bool) {
	raw, ok := p.fields[name]
	return raw, ok
}

// WithValue returns a copy of p with value replaced.
func (p RemoteParameter) WithValue(v decimal.Decimal) RemoteParameter {
	fields := make(map[string]json.RawMessage, len(p.fields)+1)
	for k, raw := range p.fields {
		fields[k] = raw
	}
	fields["value"] = json.RawMessage(v.String())
	return RemoteParameter{fields: fields}
}
