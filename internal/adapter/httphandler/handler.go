package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/phoenix-pos/stock-display/internal/core/domain"
	"github.com/phoenix-pos/stock-display/internal/core/port"
)

// POST products/v1/get-stocks-on-product-code JSON or form {"code" string}
// (response 200 pass-through array, 400 missing_code, 500 typed error)
//
// The route is public: any caller may trigger an upstream lookup. This
// mirrors the original deployment and is a recorded decision, not an
// oversight.

type StocksHandler struct {
	lookuper port.StockLookuper
}

func RegisterStocks(mux *http.ServeMux, lookuper port.StockLookuper) {
	h := StocksHandler{lookuper}
	mux.HandleFunc("POST /products/v1/get-stocks-on-product-code", h.PostGetStocks)
}

func (h StocksHandler) PostGetStocks(w http.ResponseWriter, r *http.Request) {
	const op = "StocksHandler.PostGetStocks"
	log := slog.With("op", op)

	code := extractCode(r)

	data, err := h.lookuper.LookupStock(r.Context(), code)
	if err != nil {
		h.writeLookupError(w, log, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Error("failed to write response body", "err", err)
		return
	}

	log.Info("stocks served", "productCode", code)
}

// extractCode pulls the product code from a JSON body or from
// form/query parameters, whichever the caller used.
func extractCode(r *http.Request) string {
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mt == "application/json" {
		var req StockLookupRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		return req.Code
	}
	return r.FormValue("code")
}

func (h StocksHandler) writeLookupError(
	w http.ResponseWriter, log *slog.Logger, err error,
) {
	var apiErr *domain.APIError

	switch {
	case errors.Is(err, domain.ErrMissingCode):
		writeError(w, http.StatusBadRequest, ErrorResponse{
			Code:    codeMissingCode,
			Message: "Product code is required",
		})
	case errors.Is(err, domain.ErrMissingConfig):
		writeError(w, http.StatusInternalServerError, ErrorResponse{
			Code:    codeMissingConfig,
			Message: "API configuration is missing",
		})
	case errors.Is(err, domain.ErrInvalidJSON):
		writeError(w, http.StatusInternalServerError, ErrorResponse{
			Code:    codeJSONError,
			Message: "Invalid JSON response",
		})
	case errors.As(err, &apiErr):
		writeError(w, http.StatusInternalServerError, ErrorResponse{
			Code:    codeAPIError,
			Message: apiErr.Error(),
		})
	default:
		log.Error("lookup failed", "err", err)
		writeError(w, http.StatusInternalServerError, ErrorResponse{
			Code:    codeInternalError,
			Message: "Internal error",
		})
	}
}

func writeError(w http.ResponseWriter, status int, body ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
