// internal/endpoint/client.go
// Package endpoint probes an OpenAI-compatible serving endpoint until it
// is ready to serve a model.
package endpoint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mwiater/balbis/internal/appconfig"
	"github.com/mwiater/balbis/internal/logging"
)

var (
	// ErrNonJSONResponse marks a reachable endpoint whose /models body
	// did not decode. Retryable: servers answer with placeholder pages
	// while still starting up.
	ErrNonJSONResponse = errors.New("non-JSON /v1/models response")
	// ErrNoModelEntry marks a decodable /models body without a usable
	// model entry. Retryable: servers publish an empty list before the
	// model finishes loading.
	ErrNoModelEntry = errors.New("no model entry found in /v1/models response")
)

// WaitError reports a readiness wait that exhausted its deadline.
type WaitError struct {
	URL     string
	LastErr error
}

func (e *WaitError) Error() string {
	return fmt.Sprintf("timed out waiting for endpoint/model: %s (last error: %v)", e.URL, e.LastErr)
}

func (e *WaitError) Unwrap() error { return e.LastErr }

// Client polls one serving endpoint. The zero value is not usable;
// construct with New.
type Client struct {
	baseURL        string
	client         *http.Client
	requestTimeout time.Duration
	waitTimeout    time.Duration
	pollInterval   time.Duration

	// Notify, when set, observes every failed probe attempt. The wait
	// loop calls it after recording the attempt's error.
	Notify func(attempt int, err error)
}

// New builds a probing client for baseURL using the launcher's timing
// configuration.
func New(cfg *appconfig.Config, baseURL string) *Client {
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		requestTimeout: cfg.RequestTimeout(),
		waitTimeout:    cfg.WaitTimeout(),
		pollInterval:   cfg.PollInterval(),
	}
}

// ModelsURL returns the polled URL, for operator-facing messages.
func (c *Client) ModelsURL() string {
	return c.baseURL + "/models"
}

// WaitTimeout returns the overall readiness deadline the client applies.
func (c *Client) WaitTimeout() time.Duration {
	return c.waitTimeout
}

// httpClient returns the explicitly configured HTTP client or the shared default client.
func (c *Client) httpClient() *http.Client {
	if c.client != nil {
		return c.client
	}
	return http.DefaultClient
}

// WaitForModel polls GET /models until the endpoint lists a model or the
// deadline passes. The first attempt runs immediately; on success the
// resolved identifier is returned without sleeping. On deadline the
// returned error is a *WaitError wrapping the last probe failure.
func (c *Client) WaitForModel(ctx context.Context) (string, error) {
	modelsURL := c.ModelsURL()
	deadline := time.Now().Add(c.waitTimeout)
	lastErr := errors.New("unknown error")

	logging.LogEvent("Waiting for endpoint readiness: %s (timeout: %s)", modelsURL, c.waitTimeout)

	attempt := 0
	for time.Now().Before(deadline) {
		attempt++
		model, err := c.probe(ctx)
		if err == nil {
			logging.LogEvent("Resolved first model from /v1/models: %s", model)
			return model, nil
		}
		lastErr = err
		if errors.Is(err, ErrNoModelEntry) {
			logging.LogEvent("Endpoint reachable but model list is empty/invalid, retrying...")
		}
		if c.Notify != nil {
			c.Notify(attempt, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.pollInterval):
		}
	}

	logging.LogEvent("Timed out waiting for endpoint/model: %s", modelsURL)
	logging.LogEvent("Last probe error: %v", lastErr)
	return "", &WaitError{URL: modelsURL, LastErr: lastErr}
}

// probe performs a single /models request and extracts the first usable
// model identifier.
func (c *Client) probe(ctx context.Context) (string, error) {
	modelsURL := c.ModelsURL()

	reqCtx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	logging.LogRequest("BALBIS->LLM", modelsURL, "", map[string]string{
		"method": http.MethodGet,
		"url":    modelsURL,
	})
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, modelsURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	logging.LogRequest("LLM->BALBIS", modelsURL, "", body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("/models returned %s", resp.Status)
	}

	var payload modelsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", ErrNonJSONResponse
	}

	// Only the first entry is consulted. A non-object entry decodes to
	// nothing usable and falls through to the retryable no-entry error.
	if len(payload.Data) > 0 {
		var first servedModel
		if err := json.Unmarshal(payload.Data[0], &first); err == nil {
			if name := modelDisplayName(first); name != "" {
				return name, nil
			}
		}
	}

	return "", ErrNoModelEntry
}

type servedModel struct {
	ID    nameField `json:"id"`
	Model nameField `json:"model"`
	Name  nameField `json:"name"`
}

type modelsResponse struct {
	Data []json.RawMessage `json:"data"`
}

// modelDisplayName resolves the identifier of a served model, checking
// id, model, and name in that priority order.
func modelDisplayName(model servedModel) string {
	if v := strings.TrimSpace(model.ID.Value); v != "" {
		return v
	}
	if v := strings.TrimSpace(model.Model.Value); v != "" {
		return v
	}
	return strings.TrimSpace(model.Name.Value)
}

// nameField decodes a JSON value that should be a string but may be
// anything; non-string values read as empty rather than failing the
// whole document.
type nameField struct {
	Value string
}

func (f *nameField) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed[0] != '"' {
		f.Value = ""
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.Value = v
	return nil
}
