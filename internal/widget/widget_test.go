package widget_test

import (
	"strings"
	"testing"

	"github.com/phoenix-pos/stock-display/internal/core/domain"
	"github.com/phoenix-pos/stock-display/internal/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTier(t *testing.T) {
	tests := []struct {
		name string
		qty  int
		want string
	}{
		{"Zero", 0, widget.TierOutOfStock},
		{"One", 1, widget.TierLowStock},
		{"Three", 3, widget.TierLowStock},
		{"Four", 4, widget.TierLowStock},
		{"Five", 5, widget.TierNormal},
		{"Many", 100, widget.TierNormal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, widget.Tier(tc.qty))
		})
	}
}

func TestRows(t *testing.T) {
	records := []domain.StockRecord{
		{LocationCode: "BM", Qty: 8},
		{LocationCode: "PN", Qty: 0},
	}

	t.Run("BothToggles", func(t *testing.T) {
		rows := widget.Rows(records, widget.DefaultConfig())
		require.Len(t, rows, 2)

		assert.Equal(t, "BM", rows[0].Location)
		assert.Equal(t, "8 in stock", rows[0].QtyText)
		assert.Equal(t, widget.TierNormal, rows[0].QtyClass)

		assert.Equal(t, "PN", rows[1].Location)
		assert.Equal(t, "0 in stock", rows[1].QtyText)
		assert.Equal(t, widget.TierOutOfStock, rows[1].QtyClass)
	})

	t.Run("LocationOff", func(t *testing.T) {
		cfg := widget.DefaultConfig()
		cfg.ShowLocation = false

		rows := widget.Rows(records, cfg)
		require.Len(t, rows, 2)
		assert.Empty(t, rows[0].Location)
		assert.Equal(t, "8 in stock", rows[0].QtyText)
	})

	t.Run("QuantityOff", func(t *testing.T) {
		cfg := widget.DefaultConfig()
		cfg.ShowQuantity = false

		rows := widget.Rows(records, cfg)
		require.Len(t, rows, 2)
		assert.Equal(t, "BM", rows[0].Location)
		assert.Empty(t, rows[0].QtyText)
		assert.Empty(t, rows[0].QtyClass)
	})

	t.Run("OrderPreserved", func(t *testing.T) {
		rows := widget.Rows(records, widget.DefaultConfig())
		require.Len(t, rows, 2)
		assert.Equal(t, "BM", rows[0].Location)
		assert.Equal(t, "PN", rows[1].Location)
	})
}

func TestRender(t *testing.T) {
	newRenderer := func(t *testing.T) widget.Renderer {
		t.Helper()
		r, err := widget.NewRenderer("/products/v1/get-stocks-on-product-code")
		require.NoError(t, err)
		return r
	}

	t.Run("Markup", func(t *testing.T) {
		r := newRenderer(t)

		var b strings.Builder
		err := r.Render(&b, widget.DefaultConfig(), "SKU1", false)
		require.NoError(t, err)

		out := b.String()
		assert.Contains(t, out, `data-product-code="SKU1"`)
		assert.Contains(t, out,
			`data-endpoint="/products/v1/get-stocks-on-product-code"`)
		assert.Contains(t, out, `<h3 class="stock-title">Stock Availability</h3>`)
		assert.Contains(t, out, "Loading stock information...")
		assert.Contains(t, out, `class="stock-list" style="display: none;"`)
		assert.Contains(t, out, `class="stock-error" style="display: none;"`)
		assert.Contains(t, out, "<script>")
	})

	t.Run("ProductCodeEscaped", func(t *testing.T) {
		r := newRenderer(t)

		var b strings.Builder
		err := r.Render(&b, widget.DefaultConfig(), `SKU"1`, false)
		require.NoError(t, err)

		assert.NotContains(t, b.String(), `data-product-code="SKU"1"`)
	})

	t.Run("NoTitle", func(t *testing.T) {
		r := newRenderer(t)
		cfg := widget.DefaultConfig()
		cfg.Title = ""

		var b strings.Builder
		require.NoError(t, r.Render(&b, cfg, "SKU1", false))
		assert.NotContains(t, b.String(), "stock-title")
	})

	t.Run("NoCodeLive", func(t *testing.T) {
		r := newRenderer(t)

		var b strings.Builder
		require.NoError(t, r.Render(&b, widget.DefaultConfig(), "", false))
		assert.Empty(t, b.String())
	})

	t.Run("NoCodeEditMode", func(t *testing.T) {
		r := newRenderer(t)

		var b strings.Builder
		require.NoError(t, r.Render(&b, widget.DefaultConfig(), "", true))
		assert.Contains(t, b.String(), "stock-widget-alert")
	})
}

func TestRenderPreview(t *testing.T) {

	t.Run("SampleRows", func(t *testing.T) {
		r, err := widget.NewRenderer("/lookup")
		require.NoError(t, err)

		var b strings.Builder
		require.NoError(t, r.RenderPreview(&b, widget.DefaultConfig()))

		out := b.String()
		assert.Contains(t, out, `<span class="stock-location">BM</span>`)
		assert.Contains(t, out, `<span class="stock-qty">8 in stock</span>`)
		assert.Contains(t, out, `<span class="stock-qty">32 in stock</span>`)
	})

	t.Run("QuantityOff", func(t *testing.T) {
		r, err := widget.NewRenderer("/lookup")
		require.NoError(t, err)

		cfg := widget.DefaultConfig()
		cfg.ShowQuantity = false

		var b strings.Builder
		require.NoError(t, r.RenderPreview(&b, cfg))

		out := b.String()
		assert.Contains(t, out, "BM")
		assert.NotContains(t, out, "in stock")
	})
}
