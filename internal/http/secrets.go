package http

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"internguard-engine/internal/config"
	"internguard-engine/internal/secrets"
)

type SecretsHandler struct {
	CfgVal *atomic.Value // stores config.Config
}

type setSecretReq struct {
	Password string `json:"password,omitempty"`
	APIKey   string `json:"apiKey,omitempty"`
}

func (h SecretsHandler) SetIMAPPassword(w http.ResponseWriter, r *http.Request) {
	var req setSecretReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_json", "invalid json")
		return
	}

	cfg := h.CfgVal.Load().(config.Config)
	account := secrets.IMAPKeyringAccount(cfg.Mail.Username, cfg.Mail.IMAPHost)
	if err := secrets.SetIMAPPassword(account, req.Password); err != nil {
		WriteError(w, r, http.StatusBadRequest, "keyring_error", "failed to store password: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h SecretsHandler) SetURLScanKey(w http.ResponseWriter, r *http.Request) {
	var req setSecretReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_json", "invalid json")
		return
	}

	if err := secrets.SetURLScanAPIKey(req.APIKey); err != nil {
		WriteError(w, r, http.StatusBadRequest, "keyring_error", "failed to store API key: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
