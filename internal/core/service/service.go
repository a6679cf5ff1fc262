package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/phoenix-pos/stock-display/internal/core/domain"
	"github.com/phoenix-pos/stock-display/internal/core/port"
	"github.com/phoenix-pos/stock-display/pkg/sanitize"
)

var _ port.StockLookuper = (*Service)(nil)
var _ port.APISettingsManager = (*Service)(nil)

type Service struct {
	settings port.SettingsStore
	fetcher  port.StockFetcher
	events   port.LookupEventsProducer
}

// New constructs the core service. The events producer is optional:
// pass nil to disable lookup auditing.
func New(
	settings port.SettingsStore,
	fetcher port.StockFetcher,
	events port.LookupEventsProducer,
) Service {
	return Service{settings, fetcher, events}
}

// LookupStock proxies one stock lookup to the upstream API.
//
// Settings are read fresh on every call. The upstream body is returned
// verbatim after a JSON well-formedness check; the record shape is not
// validated. No retries, no caching.
func (s Service) LookupStock(
	ctx context.Context, productCode string,
) (json.RawMessage, error) {
	const op = "Service.LookupStock"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if productCode == "" {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrMissingCode)
	}

	cfg, err := s.APISettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !cfg.Complete() {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrMissingConfig)
	}

	body, err := s.fetcher.FetchStocks(ctx, cfg.BaseURL, cfg.Key, productCode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrInvalidJSON)
	}

	s.produceLookupEvent(ctx, productCode, body)

	return json.RawMessage(body), nil
}

// produceLookupEvent emits a best-effort audit event. A produce failure is
// logged and never fails the lookup.
func (s Service) produceLookupEvent(
	ctx context.Context, productCode string, body []byte,
) {
	const op = "Service.produceLookupEvent"

	if s.events == nil {
		return
	}

	records, _ := domain.ParseStockRecords(body)
	e := domain.LookupEvent{
		ProductCode: productCode,
		Records:     records,
		LookedUpAt:  time.Now(),
	}

	err := s.events.ProduceLookupEvent(context.WithoutCancel(ctx), e)
	if err != nil {
		slog.Warn("failed to produce lookup event", "op", op, "err", err)
	}
}

func (s Service) APISettings(ctx context.Context) (domain.APISettings, error) {
	const op = "Service.APISettings"

	baseURL, err := s.settings.Setting(ctx, domain.SettingAPIBaseURL)
	if err != nil {
		return domain.APISettings{}, fmt.Errorf("%s: %w", op, err)
	}

	key, err := s.settings.Setting(ctx, domain.SettingAPIKey)
	if err != nil {
		return domain.APISettings{}, fmt.Errorf("%s: %w", op, err)
	}

	return domain.APISettings{BaseURL: baseURL, Key: key}, nil
}

// UpdateAPISettings sanitizes and persists both settings fields. Malformed
// input is normalized, never rejected.
func (s Service) UpdateAPISettings(
	ctx context.Context, baseURL, apiKey string,
) error {
	const op = "Service.UpdateAPISettings"

	err := s.settings.SetSetting(
		ctx, domain.SettingAPIBaseURL, sanitize.URL(baseURL),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = s.settings.SetSetting(
		ctx, domain.SettingAPIKey, sanitize.Text(apiKey),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
