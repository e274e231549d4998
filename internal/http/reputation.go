package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"internguard-engine/internal/events"
	"internguard-engine/internal/reputation"
)

type ReputationHandler struct {
	Engine      *reputation.Engine
	Hub         *events.Hub
	RecentLimit int
}

// Search answers GET /reputation/search?q=<query>.
func (h ReputationHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	result, err := h.Engine.Search(query)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "search_failed", err.Error())
		return
	}
	if result == nil {
		WriteError(w, r, http.StatusBadRequest, "query_too_short", "query must be at least 2 characters")
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// Report accepts a community submission.
func (h ReputationHandler) Report(w http.ResponseWriter, r *http.Request) {
	var ur reputation.UserReport
	if err := json.NewDecoder(r.Body).Decode(&ur); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_json", "invalid request body")
		return
	}

	if err := h.Engine.Submit(ur); err != nil {
		WriteError(w, r, http.StatusBadRequest, "submit_failed", err.Error())
		return
	}

	if h.Hub != nil {
		h.Hub.Publish(events.MakeEvent(
			RequestIDFrom(r.Context()),
			events.TypeReportSubmitted, 1,
			map[string]any{"companyName": ur.CompanyName},
		))
	}

	WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// Recent serves the community feed.
func (h ReputationHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = h.RecentLimit
	}

	feed, err := h.Engine.RecentReports(limit)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "feed_failed", err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"reports":    feed,
		"flagLabels": reputation.FlagLabels,
	})
}
