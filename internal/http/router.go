// Package http is the engine's JSON API: posting analysis, reputation
// lookups, community reports, the FAQ bot and an SSE event stream.
package http

import (
	"database/sql"
	"net/http"
	"sync/atomic"

	"internguard-engine/internal/chat"
	"internguard-engine/internal/detect"
	"internguard-engine/internal/events"
	"internguard-engine/internal/intel"
	"internguard-engine/internal/reputation"
	"internguard-engine/internal/webscan"
)

type Deps struct {
	DB  *sql.DB
	Hub *events.Hub

	Detect     *detect.Engine
	Reputation *reputation.Engine
	Bot        *chat.Bot

	// nil disables the live website scan
	WebScanner *webscan.Scanner
	// nil disables the urlscan.io lookup
	URLScan      *intel.URLScanClient
	WhoisEnabled bool

	// current config snapshot (stores config.Config)
	CfgVal      *atomic.Value
	UserCfgPath string

	RecentLimit int
}

// NewMux returns the raw mux so main() can still attach /shutdown (needs srv+token).
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	ah := AnalyzeHandler{
		DB:           d.DB,
		Hub:          d.Hub,
		Detect:       d.Detect,
		WebScanner:   d.WebScanner,
		URLScan:      d.URLScan,
		WhoisEnabled: d.WhoisEnabled,
	}
	mux.HandleFunc("/analyze", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.Analyze,
	}))
	mux.HandleFunc("/analyze/recent", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ah.Recent,
	}))

	rh := ReputationHandler{
		Engine:      d.Reputation,
		Hub:         d.Hub,
		RecentLimit: d.RecentLimit,
	}
	mux.HandleFunc("/reputation/search", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.Search,
	}))
	mux.HandleFunc("/reputation/report", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: rh.Report,
	}))
	mux.HandleFunc("/reputation/recent", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.Recent,
	}))

	ch := ChatHandler{Bot: d.Bot}
	mux.HandleFunc("/chat", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ch.Message,
	}))

	vh := ValidateHandler{}
	mux.HandleFunc("/validate/cin", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: vh.CIN,
	}))
	mux.HandleFunc("/validate/gst", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: vh.GST,
	}))

	sh := SecretsHandler{CfgVal: d.CfgVal}
	mux.HandleFunc("/api/secrets/imap", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.SetIMAPPassword,
	}))
	mux.HandleFunc("/api/secrets/urlscan", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.SetURLScanKey,
	}))

	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: HealthHandler{}.Health,
	}))

	return mux
}
