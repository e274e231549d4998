package http

import (
	"net/http"

	"internguard-engine/internal/detect"
)

// ValidateHandler exposes the company registry format validators.
type ValidateHandler struct{}

func (ValidateHandler) CIN(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query().Get("value")
	if v == "" {
		WriteError(w, r, http.StatusBadRequest, "missing_value", "value query parameter is required")
		return
	}
	WriteJSON(w, http.StatusOK, detect.ValidateCIN(v))
}

func (ValidateHandler) GST(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query().Get("value")
	if v == "" {
		WriteError(w, r, http.StatusBadRequest, "missing_value", "value query parameter is required")
		return
	}
	WriteJSON(w, http.StatusOK, detect.ValidateGST(v))
}
