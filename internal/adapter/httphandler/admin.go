package httphandler

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/phoenix-pos/stock-display/internal/core/port"
)

// GET  /admin/settings form with current API URL and key (basic auth)
// POST /admin/settings sanitize, persist, 303 back with ?settings-updated=1

type AdminHandler struct {
	manager port.APISettingsManager
	tmpl    *template.Template
}

func RegisterAdmin(
	mux *http.ServeMux,
	manager port.APISettingsManager,
	login, password string,
) {
	h := AdminHandler{
		manager: manager,
		tmpl:    template.Must(template.New("settings").Parse(settingsPageTemplate)),
	}
	mux.Handle("GET /admin/settings",
		BasicAuth(login, password, http.HandlerFunc(h.GetSettings)))
	mux.Handle("POST /admin/settings",
		BasicAuth(login, password, http.HandlerFunc(h.PostSettings)))
}

type settingsPageData struct {
	APIBaseURL string
	APIKey     string
	Saved      bool
}

func (h AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.GetSettings"
	log := slog.With("op", op)

	cfg, err := h.manager.APISettings(r.Context())
	if err != nil {
		http.Error(w, "failed to load settings", http.StatusInternalServerError)
		log.Error("failed to load settings", "err", err)
		return
	}

	data := settingsPageData{
		APIBaseURL: cfg.BaseURL,
		APIKey:     cfg.Key,
		Saved:      r.URL.Query().Get("settings-updated") != "",
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, data); err != nil {
		log.Error("failed to render settings page", "err", err)
	}
}

func (h AdminHandler) PostSettings(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.PostSettings"
	log := slog.With("op", op)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		log.Warn("failed to parse form", "err", err)
		return
	}

	err := h.manager.UpdateAPISettings(
		r.Context(),
		r.PostFormValue("api_base_url"),
		r.PostFormValue("api_key"),
	)
	if err != nil {
		http.Error(w, "failed to save settings", http.StatusInternalServerError)
		log.Error("failed to save settings", "err", err)
		return
	}

	log.Info("settings saved")
	http.Redirect(w, r, "/admin/settings?settings-updated=1", http.StatusSeeOther)
}

const settingsPageTemplate = `<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>Stock Display Settings</title>
</head>
<body>
	<h1>Stock Display Settings</h1>
	{{- if .Saved}}
	<p class="notice">Settings Saved</p>
	{{- end}}
	<p>Configure the external API settings for fetching product stock information.</p>
	<form action="/admin/settings" method="post">
		<h2>API Configuration</h2>
		<p>
			<label for="api_base_url">API URL</label><br>
			<input type="url" id="api_base_url" name="api_base_url"
				value="{{.APIBaseURL}}" placeholder="https://example.com" size="40">
			<br><small>Enter the base URL of the external API.</small>
		</p>
		<p>
			<label for="api_key">API Key (X-API-KEY)</label><br>
			<input type="text" id="api_key" name="api_key"
				value="{{.APIKey}}" placeholder="Your API Key" size="40">
			<br><small>Enter the API key that will be sent as X-API-KEY header.</small>
		</p>
		<p><button type="submit">Save Settings</button></p>
	</form>
</body>
</html>
`
