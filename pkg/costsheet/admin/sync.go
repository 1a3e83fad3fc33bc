package admin

import (
	"context"
	"fmt"

	"github.com/ukaji3/costsheet-go/internal/logger"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
)

// SyncResult summarizes a parameter synchronization.
type SyncResult struct {
	Updated []string `json:"updated"`
	// Skipped lists keys read from the sheet that the store does not declare.
	Skipped []string `json:"skipped"`
}

// SyncParameters fetches the store's registry once and updates every
// parameter it declares, one request at a time. Keys unknown to the store are
// logged and skipped. The first failed update aborts the sync.
func (c *Client) SyncParameters(ctx context.Context, params []models.Parameter, log logger.Logger) (SyncResult, error) {
	result := SyncResult{Updated: []string{}, Skipped: []string{}}

	remote, err := c.ListParameters(ctx)
	if err != nil {
		return result, err
	}
	byKey := make(map[string]RemoteParameter, len(remote))
	for _, p := range remote {
		byKey[p.Key()] = p
	}

	for _, p := range params {
		current, ok := byKey[p.Key]
		if !ok {
			log.Warn("parameter not declared by the store, skipping", "key", p.Key)
			result.Skipped = append(result.Skipped, p.Key)
			continue
		}

		value := p.Value.Round(models.ValuePlaces)
		if err := c.UpdateParameter(ctx, current.WithValue(value)); err != nil {
			return result, fmt.Errorf("sync parameter %q: %w", p.Key, err)
		}
		log.Info("updated parameter", "key", p.Key, "value", value.String())
		result.Updated = append(result.Updated, p.Key)
	}
	return result, nil
}
