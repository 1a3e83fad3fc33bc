// Package admin talks to the calculator's administrative REST API, where
// energies and tariff parameters are stored.
package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
)

const (
	energiesPath   = "/api/admin/energies"
	parametersPath = "/api/admin/parameters"
	parameterPath  = "/api/admin/parameters/{key}"

	// DefaultPingTimeout bounds the availability check.
	DefaultPingTimeout = 5 * time.Second
)

// Config holds connection settings for the store.
type Config struct {
	BaseURL     string
	PingTimeout time.Duration
	Debug       bool
}

// Client is a thin client over the store. Requests are never retried.
type Client struct {
	http        *resty.Client
	pingTimeout time.Duration
}

// New creates a client for cfg.BaseURL.
func New(cfg Config) *Client {
	timeout := cfg.PingTimeout
	if timeout <= 0 {
		timeout = DefaultPingTimeout
	}

	http := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetRetryCount(0)
	if cfg.Debug {
		http.SetDebug(true)
	}

	return &Client{http: http, pingTimeout: timeout}
}

func succeeded(resp *resty.Response) bool {
	return resp.StatusCode() >= 200 && resp.StatusCode() < 300
}

func statusError(op string, resp *resty.Response, sentinel error) error {
	return &StatusError{
		Op:     op,
		Status: resp.StatusCode(),
		Body:   resp.String(),
		Err:    sentinel,
	}
}

// Ping checks that the store answers GET /api/admin/energies with a
// success status within the ping timeout.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.pingTimeout)
	defer cancel()

	resp, err := c.http.R().SetContext(ctx).Get(energiesPath)
	if err != nil {
		return fmt.Errorf("ping %s: %w: %w", c.http.BaseURL, ErrRemoteUnavailable, err)
	}
	if !succeeded(resp) {
		return statusError("ping", resp, ErrRemoteUnavailable)
	}
	return nil
}

// CreateEnergy submits def and returns the identity the store assigned to it.
func (c *Client) CreateEnergy(ctx context.Context, def models.EnergyDefinition) (models.EnergyRef, error) {
	op := "create energy " + def.Code

	var created struct {
		ID   uuid.UUID `json:"id"`
		Code string    `json:"code"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(NewEnergyPayload(def)).
		SetResult(&created).
		ForceContentType("application/json").
		Post(energiesPath)
	if err != nil {
		return models.EnergyRef{}, fmt.Errorf("%s: %w", op, err)
	}
	if !succeeded(resp) {
		return models.EnergyRef{}, statusError(op, resp, ErrRemoteRejected)
	}
	if created.ID == uuid.Nil {
		return models.EnergyRef{}, fmt.Errorf("%s: response has no id: %s", op, resp.String())
	}
	if created.Code == "" {
		created.Code = def.Code
	}
	return models.EnergyRef{ID: created.ID, Code: created.Code}, nil
}

// ListParameters returns the parameter registry of the store.
func (c *Client) ListParameters(ctx context.Context) ([]RemoteParameter, error) {
	var params []RemoteParameter
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&params).
		ForceContentType("application/json").
		Get(parametersPath)
	if err != nil {
		return nil, fmt.Errorf("list parameters: %w", err)
	}
	if !succeeded(resp) {
		return nil, statusError("list parameters", resp, ErrRemoteRejected)
	}
	return params, nil
}

// UpdateParameter sends p back to the store under its key.
func (c *Client) UpdateParameter(ctx context.Context, p RemoteParameter) error {
	key := p.Key()
	if key == "" {
		return fmt.Errorf("update parameter: object has no key")
	}
	op := "update parameter " + key

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("key", key).
		SetBody(p).
		Put(parameterPath)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !succeeded(resp) {
		return statusError(op, resp, ErrRemoteRejected)
	}
	return nil
}
