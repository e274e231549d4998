package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"internguard-engine/internal/chat"
)

type ChatHandler struct {
	Bot *chat.Bot
}

func (h ChatHandler) Message(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_json", "invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		WriteError(w, r, http.StatusBadRequest, "missing_message", "message is required")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"reply": h.Bot.Reply(req.Message),
	})
}
