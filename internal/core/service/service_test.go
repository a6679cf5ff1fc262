package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phoenix-pos/stock-display/internal/core/domain"
	"github.com/phoenix-pos/stock-display/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubSettings map[string]string

func (s stubSettings) Setting(_ context.Context, name string) (string, error) {
	return s[name], nil
}

func (s stubSettings) SetSetting(_ context.Context, name, value string) error {
	s[name] = value
	return nil
}

type MockStockFetcher struct {
	mock.Mock
}

func (m *MockStockFetcher) FetchStocks(
	ctx context.Context, baseURL, apiKey, productCode string,
) ([]byte, error) {
	args := m.Called(ctx, baseURL, apiKey, productCode)
	var body []byte
	if v := args.Get(0); v != nil {
		body = v.([]byte)
	}
	return body, args.Error(1)
}

type MockLookupEventsProducer struct {
	mock.Mock
}

func (m *MockLookupEventsProducer) ProduceLookupEvent(
	ctx context.Context, e domain.LookupEvent,
) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockLookupEventsProducer) Close() {
	m.Called()
}

func configuredSettings() stubSettings {
	return stubSettings{
		domain.SettingAPIBaseURL: "http://pos.example.com",
		domain.SettingAPIKey:     "secretKey",
	}
}

const stocksBody = `[{"locationCode":"BM","qty":8},{"locationCode":"PN","qty":0}]`

func TestLookupStock(t *testing.T) {

	t.Run("EmptyCode", func(t *testing.T) {
		fetcher := new(MockStockFetcher)
		s := service.New(configuredSettings(), fetcher, nil)

		_, err := s.LookupStock(t.Context(), "")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMissingCode)
		fetcher.AssertNotCalled(t, "FetchStocks",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("MissingBaseURL", func(t *testing.T) {
		fetcher := new(MockStockFetcher)
		settings := configuredSettings()
		settings[domain.SettingAPIBaseURL] = ""
		s := service.New(settings, fetcher, nil)

		_, err := s.LookupStock(t.Context(), "SKU1")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMissingConfig)
		fetcher.AssertNotCalled(t, "FetchStocks",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("MissingKey", func(t *testing.T) {
		fetcher := new(MockStockFetcher)
		settings := configuredSettings()
		settings[domain.SettingAPIKey] = ""
		s := service.New(settings, fetcher, nil)

		_, err := s.LookupStock(t.Context(), "SKU1")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMissingConfig)
		fetcher.AssertNotCalled(t, "FetchStocks",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success", func(t *testing.T) {
		fetcher := new(MockStockFetcher)
		fetcher.On("FetchStocks",
			mock.Anything, "http://pos.example.com", "secretKey", "SKU1",
		).Return([]byte(stocksBody), nil).Once()

		s := service.New(configuredSettings(), fetcher, nil)

		data, err := s.LookupStock(t.Context(), "SKU1")
		require.NoError(t, err)
		assert.Equal(t, stocksBody, string(data))
		fetcher.AssertExpectations(t)
	})

	t.Run("TransportFailure", func(t *testing.T) {
		transportErr := errors.New("connection refused")
		fetcher := new(MockStockFetcher)
		fetcher.On("FetchStocks",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		).Return(nil, &domain.APIError{Err: transportErr})

		s := service.New(configuredSettings(), fetcher, nil)

		_, err := s.LookupStock(t.Context(), "SKU1")
		require.Error(t, err)

		var apiErr *domain.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "connection refused", apiErr.Error())
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		fetcher := new(MockStockFetcher)
		fetcher.On("FetchStocks",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		).Return([]byte("not json"), nil)

		s := service.New(configuredSettings(), fetcher, nil)

		_, err := s.LookupStock(t.Context(), "SKU1")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidJSON)
	})

	t.Run("AuditEvent", func(t *testing.T) {
		fetcher := new(MockStockFetcher)
		fetcher.On("FetchStocks",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		).Return([]byte(stocksBody), nil)

		events := new(MockLookupEventsProducer)
		events.On("ProduceLookupEvent",
			mock.Anything,
			mock.MatchedBy(func(e domain.LookupEvent) bool {
				return e.ProductCode == "SKU1" &&
					len(e.Records) == 2 &&
					e.Records[0].LocationCode == "BM" &&
					e.Records[1].Qty == 0
			}),
		).Return(nil).Once()

		s := service.New(configuredSettings(), fetcher, events)

		_, err := s.LookupStock(t.Context(), "SKU1")
		require.NoError(t, err)
		events.AssertExpectations(t)
	})

	t.Run("AuditFailureDoesNotFailLookup", func(t *testing.T) {
		fetcher := new(MockStockFetcher)
		fetcher.On("FetchStocks",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		).Return([]byte(stocksBody), nil)

		events := new(MockLookupEventsProducer)
		events.On("ProduceLookupEvent", mock.Anything, mock.Anything).
			Return(errors.New("broker down"))

		s := service.New(configuredSettings(), fetcher, events)

		data, err := s.LookupStock(t.Context(), "SKU1")
		require.NoError(t, err)
		assert.Equal(t, stocksBody, string(data))
	})
}

func TestUpdateAPISettings(t *testing.T) {

	t.Run("SanitizesURL", func(t *testing.T) {
		settings := stubSettings{}
		s := service.New(settings, new(MockStockFetcher), nil)

		err := s.UpdateAPISettings(
			t.Context(), "  pos.example.com ", "  my key\n",
		)
		require.NoError(t, err)

		assert.Equal(t,
			"http://pos.example.com", settings[domain.SettingAPIBaseURL])
		assert.Equal(t, "my key", settings[domain.SettingAPIKey])
	})

	t.Run("RejectsUnsafeScheme", func(t *testing.T) {
		settings := stubSettings{}
		s := service.New(settings, new(MockStockFetcher), nil)

		err := s.UpdateAPISettings(
			t.Context(), "javascript:alert(1)", "<b>key</b>",
		)
		require.NoError(t, err)

		assert.Equal(t, "", settings[domain.SettingAPIBaseURL])
		assert.Equal(t, "key", settings[domain.SettingAPIKey])
	})
}
