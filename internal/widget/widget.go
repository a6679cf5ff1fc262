// Package widget renders the product stock display block. The renderer is a
// pure function over a typed configuration and a resolved product code, so
// any host (page template, editor, CMS adapter) can embed it without pulling
// in HTTP or storage concerns. Live stock data is fetched client-side by the
// embedded script against the lookup endpoint.
package widget

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"github.com/phoenix-pos/stock-display/internal/core/domain"
)

//go:embed assets/stock-widget.js
var clientScript string

const DefaultTitle = "Stock Availability"

// Quantity tiers drive per-row styling. The boundaries match the client
// script: zero is out of stock, below five is low.
const (
	TierOutOfStock = "out-of-stock"
	TierLowStock   = "low-stock"
	TierNormal     = ""
)

func Tier(qty int) string {
	if qty == 0 {
		return TierOutOfStock
	}
	if qty < 5 {
		return TierLowStock
	}
	return TierNormal
}

// Config carries the author-time widget options.
type Config struct {
	Title        string
	ShowLocation bool
	ShowQuantity bool
}

func DefaultConfig() Config {
	return Config{
		Title:        DefaultTitle,
		ShowLocation: true,
		ShowQuantity: true,
	}
}

// A Row is one rendered stock line. Empty Location or QtyText means the
// corresponding toggle is off.
type Row struct {
	Location string
	QtyText  string
	QtyClass string
}

// Rows converts stock records to display rows in response order, applying
// the config toggles independently.
func Rows(records []domain.StockRecord, cfg Config) []Row {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		var row Row
		if cfg.ShowLocation {
			row.Location = rec.LocationCode
		}
		if cfg.ShowQuantity {
			row.QtyText = fmt.Sprintf("%d in stock", rec.Qty)
			row.QtyClass = Tier(rec.Qty)
		}
		rows = append(rows, row)
	}
	return rows
}

type Renderer struct {
	endpointURL string
	tmpl        *template.Template
	previewTmpl *template.Template
}

// NewRenderer builds a renderer bound to the lookup endpoint URL the client
// script will call.
func NewRenderer(endpointURL string) (Renderer, error) {
	const op = "widget.NewRenderer"

	tmpl, err := template.New("widget").Parse(widgetTemplate)
	if err != nil {
		return Renderer{}, fmt.Errorf("%s: %w", op, err)
	}

	previewTmpl, err := template.New("preview").Parse(previewTemplate)
	if err != nil {
		return Renderer{}, fmt.Errorf("%s: %w", op, err)
	}

	return Renderer{endpointURL, tmpl, previewTmpl}, nil
}

type templateData struct {
	Config
	ProductCode string
	EndpointURL string
	Script      template.JS
}

// Render writes the widget markup for productCode.
//
// Without a product code nothing is rendered on a live page; in edit mode a
// contextual placeholder explains why the widget is empty.
func (r Renderer) Render(
	w io.Writer, cfg Config, productCode string, editMode bool,
) error {
	const op = "widget.Renderer.Render"

	if productCode == "" {
		if !editMode {
			return nil
		}
		_, err := io.WriteString(w, placeholderAlert)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}

	data := templateData{
		Config:      cfg,
		ProductCode: productCode,
		EndpointURL: r.endpointURL,
		Script:      template.JS(clientScript),
	}

	if err := r.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

type previewData struct {
	Config
	Rows []Row
}

// RenderPreview writes the static editor preview with sample rows.
func (r Renderer) RenderPreview(w io.Writer, cfg Config) error {
	const op = "widget.Renderer.RenderPreview"

	sample := []domain.StockRecord{
		{LocationCode: "BM", Qty: 8},
		{LocationCode: "PN", Qty: 32},
	}

	data := previewData{Config: cfg, Rows: Rows(sample, cfg)}
	if err := r.previewTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
