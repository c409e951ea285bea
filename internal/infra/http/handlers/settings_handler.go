package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/xavierca1/commission-crm/internal/entity"
)

// Chaves aceitas no endpoint de settings. Qualquer outra chave no body é
// ignorada em silêncio.
var allowedConfigKeys = map[string]bool{
	entity.ConfigDiscordWebhook:     true,
	entity.ConfigMakeWebhook:        true,
	entity.ConfigStripeAPIKey:       true,
	entity.ConfigSMTPServer:         true,
	entity.ConfigSMTPEmail:          true,
	entity.ConfigSMTPPassword:       true,
	entity.ConfigManagerEmail:       true,
	entity.ConfigDefaultLeadGenMail: true,
}

type SettingsHandler struct {
	Config   entity.ConfigRepository
	Username string
	Password string
}

func NewSettingsHandler(config entity.ConfigRepository, username, password string) *SettingsHandler {
	return &SettingsHandler{Config: config, Username: username, Password: password}
}

// Save faz o upsert das chaves de config. A checagem de credencial é estática
// (Basic Auth contra o ambiente); uma automação já construída não enxerga os
// valores novos, só instâncias criadas depois.
func (h *SettingsHandler) Save(w http.ResponseWriter, r *http.Request) {
	if !h.authenticated(r) {
		w.Header().Set("WWW-Authenticate", `Basic realm="settings"`)
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	var settings map[string]string
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	saved := 0
	for key, value := range settings {
		if !allowedConfigKeys[key] {
			continue
		}
		if err := h.Config.Upsert(r.Context(), key, value); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to save settings")
			return
		}
		saved++
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "saved": saved})
}

func (h *SettingsHandler) authenticated(r *http.Request) bool {
	if h.Username == "" || h.Password == "" {
		return false
	}
	user, pass, ok := r.BasicAuth()
	if !ok {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(h.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(h.Password)) == 1
	return userOK && passOK
}
