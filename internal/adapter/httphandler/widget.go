package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/phoenix-pos/stock-display/internal/widget"
)

// GET /v1/widgets/product-stock?code=SKU&title=...&location=yes&quantity=no
// (&edit=1 editor placeholder when no product context, &preview=1 static
// editor preview)
//
// The query string is the host-adapter seam: "code" stands in for the host's
// current-product resolver, "edit" for its editor-preview flag.

type WidgetHandler struct {
	renderer widget.Renderer
}

func RegisterWidget(mux *http.ServeMux, renderer widget.Renderer) {
	h := WidgetHandler{renderer}
	mux.HandleFunc("GET /v1/widgets/product-stock", h.GetProductStock)
}

func (h WidgetHandler) GetProductStock(w http.ResponseWriter, r *http.Request) {
	const op = "WidgetHandler.GetProductStock"
	log := slog.With("op", op)

	q := r.URL.Query()
	cfg := widgetConfig(q.Get("title"), q.Get("location"), q.Get("quantity"))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if q.Get("preview") == "1" {
		if err := h.renderer.RenderPreview(w, cfg); err != nil {
			log.Error("failed to render preview", "err", err)
		}
		return
	}

	productCode := q.Get("code")
	editMode := q.Get("edit") == "1"

	if err := h.renderer.Render(w, cfg, productCode, editMode); err != nil {
		log.Error("failed to render widget", "err", err)
	}
}

func widgetConfig(title, location, quantity string) widget.Config {
	cfg := widget.DefaultConfig()
	if title != "" {
		cfg.Title = title
	}
	if location != "" {
		cfg.ShowLocation = location == "yes"
	}
	if quantity != "" {
		cfg.ShowQuantity = quantity == "yes"
	}
	return cfg
}
