package port

import (
	"context"
	"encoding/json"

	"github.com/phoenix-pos/stock-display/internal/core/domain"
)

type SettingsReader interface {
	Setting(ctx context.Context, name string) (string, error)
}

type SettingsWriter interface {
	SetSetting(ctx context.Context, name, value string) error
}

type SettingsStore interface {
	SettingsReader
	SettingsWriter
}

// A StockFetcher performs the outbound stock API call and returns the raw
// response body. Transport failures come back as [*domain.APIError].
type StockFetcher interface {
	FetchStocks(
		ctx context.Context, baseURL, apiKey, productCode string,
	) ([]byte, error)
}

// A StockLookuper resolves a product code to the upstream stock payload,
// passed through verbatim.
type StockLookuper interface {
	LookupStock(ctx context.Context, productCode string) (json.RawMessage, error)
}

// An APISettingsManager serves the administrative settings form.
type APISettingsManager interface {
	APISettings(ctx context.Context) (domain.APISettings, error)
	UpdateAPISettings(ctx context.Context, baseURL, apiKey string) error
}

type LookupEventsProducer interface {
	ProduceLookupEvent(ctx context.Context, e domain.LookupEvent) error
	Close()
}
