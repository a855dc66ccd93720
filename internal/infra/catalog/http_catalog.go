// Package catalog implements the read-only client for the menu catalog
// collaborator. Checkout uses it as the price authority.
package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"makan/config"
	"makan/internal/domain/entity"
	"makan/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const defaultRequestTimeout = 5 * time.Second

// httpCatalogService implements service.CatalogService over the catalog
// subsystem's HTTP API.
type httpCatalogService struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// itemPayload is the wire shape of a catalog item. Price travels as a string
// so it decodes into decimal without float intermediaries.
type itemPayload struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price string    `json:"price"`
}

// NewHTTPCatalogService creates the catalog client from config.
func NewHTTPCatalogService(cfg *config.Config, logger *slog.Logger) (service.CatalogService, error) {
	if cfg.Catalog == nil || cfg.Catalog.BaseURL == "" {
		return nil, errors.New("catalog base URL is required")
	}

	timeout := cfg.Catalog.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &httpCatalogService{
		baseURL: cfg.Catalog.BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// FindItem retrieves a catalog item by id.
func (s *httpCatalogService) FindItem(ctx context.Context, id uuid.UUID) (*entity.CatalogItem, error) {
	url := s.baseURL + "/items/" + id.String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "catalog request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, service.ErrItemNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("catalog returned non-success status: %d", resp.StatusCode)
	}

	var payload itemPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode catalog item")
	}

	price, err := decimal.NewFromString(payload.Price)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog item %s has malformed price", payload.ID)
	}

	return &entity.CatalogItem{
		ID:    payload.ID,
		Name:  payload.Name,
		Price: price,
	}, nil
}
