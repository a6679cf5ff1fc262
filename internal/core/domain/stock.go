package domain

import (
	"encoding/json"
	"time"
)

// Setting names persisted in the settings store.
const (
	SettingAPIBaseURL = "api_base_url"
	SettingAPIKey     = "api_key"
)

type (
	// A StockRecord is one row of the upstream stock API response:
	// quantity available at a single stock location.
	StockRecord struct {
		LocationCode string `json:"locationCode"`
		Qty          int    `json:"qty"`
	}

	// APISettings holds the two values required to reach the upstream API.
	// Empty string means "unconfigured".
	APISettings struct {
		BaseURL string
		Key     string
	}

	LookupEvent struct {
		ProductCode string
		Records     []StockRecord
		LookedUpAt  time.Time
	}
)

func (s APISettings) Complete() bool {
	return s.BaseURL != "" && s.Key != ""
}

// ParseStockRecords decodes an upstream response body into stock records.
// The upstream shape is not validated on the lookup path, so the result is
// best-effort: a non-array or otherwise mismatched body yields ok=false.
func ParseStockRecords(body []byte) (rs []StockRecord, ok bool) {
	if err := json.Unmarshal(body, &rs); err != nil {
		return nil, false
	}
	return rs, true
}
