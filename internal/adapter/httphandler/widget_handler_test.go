package httphandler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phoenix-pos/stock-display/internal/adapter/httphandler"
	"github.com/phoenix-pos/stock-display/internal/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWidgetServer(t *testing.T) *http.ServeMux {
	t.Helper()
	renderer, err := widget.NewRenderer("/products/v1/get-stocks-on-product-code")
	require.NoError(t, err)

	mux := http.NewServeMux()
	httphandler.RegisterWidget(mux, renderer)
	return mux
}

func getWidget(t *testing.T, mux *http.ServeMux, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(
		http.MethodGet, "/v1/widgets/product-stock"+query, nil,
	)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestGetProductStock(t *testing.T) {

	t.Run("RendersWidget", func(t *testing.T) {
		mux := newWidgetServer(t)

		rec := getWidget(t, mux, "?code=SKU1")

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `data-product-code="SKU1"`)
		assert.Contains(t, body,
			`data-endpoint="/products/v1/get-stocks-on-product-code"`)
		assert.Contains(t, body, "Stock Availability")
		assert.Contains(t, body, "Loading stock information...")
	})

	t.Run("ConfigFromQuery", func(t *testing.T) {
		mux := newWidgetServer(t)

		rec := getWidget(t, mux, "?code=SKU1&title=Warehouses&location=no")

		body := rec.Body.String()
		assert.Contains(t, body, "Warehouses")
		assert.Contains(t, body, `data-show-location="0"`)
		assert.Contains(t, body, `data-show-quantity="1"`)
	})

	t.Run("NoCodeLiveRendersNothing", func(t *testing.T) {
		mux := newWidgetServer(t)

		rec := getWidget(t, mux, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("NoCodeEditModeRendersPlaceholder", func(t *testing.T) {
		mux := newWidgetServer(t)

		rec := getWidget(t, mux, "?edit=1")

		assert.Contains(t, rec.Body.String(), "product code is required")
	})

	t.Run("Preview", func(t *testing.T) {
		mux := newWidgetServer(t)

		rec := getWidget(t, mux, "?preview=1")

		body := rec.Body.String()
		assert.Contains(t, body, "BM")
		assert.Contains(t, body, "8 in stock")
		assert.Contains(t, body, "32 in stock")
	})
}
