package costsheet

import (
	"context"
	"errors"
	"fmt"

	"github.com/ukaji3/costsheet-go/internal/logger"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/admin"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/catalog"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
)

// Remote is the part of the administrative store the importer needs.
type Remote interface {
	catalog.EnergyCreator
	Ping(ctx context.Context) error
	SyncParameters(ctx context.Context, params []models.Parameter, log logger.Logger) (admin.SyncResult, error)
}

// ImportResult reports what an import published.
type ImportResult struct {
	Energies   []models.EnergyRef `json:"energies,omitempty"`
	Parameters *admin.SyncResult  `json:"parameters,omitempty"`
}

// Importer publishes an Extraction to the store, one request at a time.
type Importer struct {
	remote    Remote
	assembler *catalog.Assembler
	log       logger.Logger
}

// NewImporter validates plan and returns an importer that submits through remote.
func NewImporter(remote Remote, plan catalog.Plan, log logger.Logger) (*Importer, error) {
	assembler, err := catalog.NewAssembler(plan)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Importer{remote: remote, assembler: assembler, log: log}, nil
}

// ImportEnergies creates every energy of the plan. Summaries are checked
// before the store is pinged; the first failure aborts the import and energies
// created before it are kept.
func (im *Importer) ImportEnergies(ctx context.Context, ext *models.Extraction) ([]models.EnergyRef, error) {
	if err := im.assembler.CheckSummaries(ext.Summaries); err != nil {
		return nil, err
	}

	if err := im.remote.Ping(ctx); err != nil {
		im.log.Error("store unavailable", failureKeyvals(err)...)
		return nil, err
	}

	creator := &loggingCreator{next: im.remote, log: im.log}
	refs, err := im.assembler.Run(ctx, ext.Summaries, ext.Components, creator)
	if err != nil {
		return refs, err
	}

	im.log.Info("completed energy import", "created", len(refs))
	return refs, nil
}

// ImportParameters updates every parameter the store declares.
func (im *Importer) ImportParameters(ctx context.Context, params []models.Parameter) (admin.SyncResult, error) {
	result, err := im.remote.SyncParameters(ctx, params, im.log)
	if err != nil {
		im.log.Error("parameter import failed", failureKeyvals(err)...)
		return result, err
	}

	im.log.Info("completed parameter import", "updated", len(result.Updated), "skipped", len(result.Skipped))
	return result, nil
}

// Import publishes the parts of ext selected by opts: energies first, then
// parameters.
func (im *Importer) Import(ctx context.Context, ext *models.Extraction, opts Options) (*ImportResult, error) {
	result := &ImportResult{}

	if opts.ShouldExtractEnergies() {
		refs, err := im.ImportEnergies(ctx, ext)
		result.Energies = refs
		if err != nil {
			return result, fmt.Errorf("import energies: %w", err)
		}
	}

	if opts.ShouldExtractParameters() {
		sync, err := im.ImportParameters(ctx, ext.Parameters)
		result.Parameters = &sync
		if err != nil {
			return result, fmt.Errorf("import parameters: %w", err)
		}
	}

	return result, nil
}

// Payloads returns the request bodies ImportEnergies would send, with
// references pointing at placeholder IDs.
func (im *Importer) Payloads(ext *models.Extraction) ([]admin.EnergyPayload, error) {
	defs, err := im.assembler.Definitions(ext.Summaries, ext.Components)
	if err != nil {
		return nil, err
	}

	payloads := make([]admin.EnergyPayload, len(defs))
	for i, def := range defs {
		payloads[i] = admin.NewEnergyPayload(def)
	}
	return payloads, nil
}

// loggingCreator reports every creation outcome.
type loggingCreator struct {
	next catalog.EnergyCreator
	log  logger.Logger
}

func (c *loggingCreator) CreateEnergy(ctx context.Context, def models.EnergyDefinition) (models.EnergyRef, error) {
	ref, err := c.next.CreateEnergy(ctx, def)
	if err != nil {
		c.log.Error("failed to create energy", append([]any{"name", def.Name}, failureKeyvals(err)...)...)
		return ref, err
	}
	c.log.Info("created energy", "name", def.Name, "code", ref.Code, "id", ref.ID)
	return ref, nil
}

// failureKeyvals describes err for logging, with status and body when the
// store answered.
func failureKeyvals(err error) []any {
	var statusErr *admin.StatusError
	if errors.As(err, &statusErr) {
		return []any{"status", statusErr.Status, "body", statusErr.Body}
	}
	return []any{"error", err}
}
