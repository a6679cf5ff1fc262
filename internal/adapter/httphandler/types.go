package httphandler

type StockLookupRequest struct {
	Code string `json:"code"`
}

// An ErrorResponse is the machine-readable error body:
// {"code": "missing_code", "message": "Product code is required"}.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes of the lookup route.
const (
	codeMissingCode   = "missing_code"
	codeMissingConfig = "missing_config"
	codeAPIError      = "api_error"
	codeJSONError     = "json_error"
	codeInternalError = "internal_error"
)
