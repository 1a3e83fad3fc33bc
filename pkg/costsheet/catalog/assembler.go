package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/textnorm"
)

var (
	// ErrMissingSummary indicates an energy has no row in the summary table.
	ErrMissingSummary = errors.New("missing summary data")
	// ErrMissingDependency indicates a referenced energy has not been created yet.
	ErrMissingDependency = errors.New("missing dependency")
)

// placeholderNamespace seeds the name-based IDs used for dry runs.
var placeholderNamespace = uuid.MustParse("5f0c7c52-43c4-4f43-9a55-0e7bcb1fbe25")

// EnergyCreator persists an energy definition and returns its store identity.
type EnergyCreator interface {
	CreateEnergy(ctx context.Context, def models.EnergyDefinition) (models.EnergyRef, error)
}

// Assembler turns summaries and components into energy definitions following a Plan.
type Assembler struct {
	plan Plan
}

// NewAssembler validates plan and returns an assembler for it.
func NewAssembler(plan Plan) (*Assembler, error) {
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid energy plan: %w", err)
	}
	return &Assembler{plan: append(Plan(nil), plan...)}, nil
}

// Plan returns a copy of the assembler's plan.
func (a *Assembler) Plan() Plan {
	return append(Plan(nil), a.plan...)
}

// Build creates the definition of spec. created maps energy keys to the IDs
// the store assigned to them; every base and emission reference of spec must
// be present in it.
func (a *Assembler) Build(
	spec EnergySpec,
	summaries map[string]models.EnergySummary,
	components map[string][]models.CostComponent,
	created map[string]uuid.UUID,
) (models.EnergyDefinition, error) {
	summary, ok := summaries[spec.Key]
	if !ok {
		return models.EnergyDefinition{}, fmt.Errorf("energy %q: %w", spec.Key, ErrMissingSummary)
	}

	comps := components[spec.Key]
	if comps == nil {
		comps = []models.CostComponent{}
	}

	def := models.EnergyDefinition{
		Code:                    textnorm.Code(spec.Key),
		Name:                    textnorm.Title(spec.Key),
		Mode:                    spec.Mode,
		Family:                  spec.Family,
		PricePerUnit:            summary.PricePerUnit.Round(models.ValuePlaces),
		ConsumptionPer100Km:     summary.ConsumptionPer100Km.Round(models.ValuePlaces),
		RentingCostPerMonth:     summary.Rent.Round(models.ValuePlaces),
		EmissionFactorPerUnit:   spec.EmissionFactor,
		RenewableShare:          spec.RenewableShare,
		EmissionReduction:       spec.EmissionReduction,
		InheritEmissionFromBase: spec.InheritEmission,
		IsActive:                true,
		CostComponents:          comps,
	}

	if spec.Base != "" {
		id, ok := created[spec.Base]
		if !ok {
			return models.EnergyDefinition{}, fmt.Errorf("energy %q: base %q: %w", spec.Key, spec.Base, ErrMissingDependency)
		}
		def.BaseEnergyID = &id
	}
	if spec.EmissionReference != "" {
		id, ok := created[spec.EmissionReference]
		if !ok {
			return models.EnergyDefinition{}, fmt.Errorf("energy %q: emission reference %q: %w", spec.Key, spec.EmissionReference, ErrMissingDependency)
		}
		def.EmissionReferenceEnergyID = &id
	}

	return def, nil
}

// CheckSummaries reports the first planned energy without summary data. When
// another energy names it as base or emission reference, the error also wraps
// ErrMissingDependency.
func (a *Assembler) CheckSummaries(summaries map[string]models.EnergySummary) error {
	for _, spec := range a.plan {
		if _, ok := summaries[spec.Key]; ok {
			continue
		}
		if dependent := a.dependentOf(spec.Key); dependent != "" {
			return fmt.Errorf("energy %q required by %q: %w: %w", spec.Key, dependent, ErrMissingSummary, ErrMissingDependency)
		}
		return fmt.Errorf("energy %q: %w", spec.Key, ErrMissingSummary)
	}
	return nil
}

// dependentOf returns the first planned energy referencing key.
func (a *Assembler) dependentOf(key string) string {
	for _, spec := range a.plan {
		if spec.Base == key || spec.EmissionReference == key {
			return spec.Key
		}
	}
	return ""
}

// Run submits every energy of the plan through creator, one at a time and in
// plan order, feeding the IDs it returns into later references. It stops at
// the first error; energies created before it stay in the store.
func (a *Assembler) Run(
	ctx context.Context,
	summaries map[string]models.EnergySummary,
	components map[string][]models.CostComponent,
	creator EnergyCreator,
) ([]models.EnergyRef, error) {
	if err := a.CheckSummaries(summaries); err != nil {
		return nil, err
	}

	created := make(map[string]uuid.UUID, len(a.plan))
	refs := make([]models.EnergyRef, 0, len(a.plan))
	for _, spec := range a.plan {
		if err := ctx.Err(); err != nil {
			return refs, err
		}

		def, err := a.Build(spec, summaries, components, created)
		if err != nil {
			return refs, err
		}

		ref, err := creator.CreateEnergy(ctx, def)
		if err != nil {
			return refs, fmt.Errorf("create energy %q: %w", spec.Key, err)
		}
		ref.Key = spec.Key
		created[spec.Key] = ref.ID
		refs = append(refs, ref)
	}
	return refs, nil
}

// Definitions builds every definition of the plan without contacting the
// store. References point at deterministic placeholder IDs derived from the
// referenced key.
func (a *Assembler) Definitions(
	summaries map[string]models.EnergySummary,
	components map[string][]models.CostComponent,
) ([]models.EnergyDefinition, error) {
	created := make(map[string]uuid.UUID, len(a.plan))
	defs := make([]models.EnergyDefinition, 0, len(a.plan))
	for _, spec := range a.plan {
		def, err := a.Build(spec, summaries, components, created)
		if err != nil {
			return nil, err
		}
		created[spec.Key] = PlaceholderID(spec.Key)
		defs = append(defs, def)
	}
	return defs, nil
}

// PlaceholderID returns the dry-run ID of an energy key.
func PlaceholderID(key string) uuid.UUID {
	return uuid.NewSHA1(placeholderNamespace, []byte(key))
}
