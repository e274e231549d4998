package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"internguard-engine/internal/detect"
	"internguard-engine/internal/events"
	"internguard-engine/internal/intel"
	"internguard-engine/internal/store"
	"internguard-engine/internal/webscan"
)

// Share of the website content score folded back into the URL signal.
const webContentWeight = 0.3

type AnalyzeHandler struct {
	DB           *sql.DB
	Hub          *events.Hub
	Detect       *detect.Engine
	WebScanner   *webscan.Scanner
	URLScan      *intel.URLScanClient
	WhoisEnabled bool
}

// AnalyzeResponse is the full answer to one posting analysis: the composite
// result plus everything the live checks added.
type AnalyzeResponse struct {
	Result     detect.CompositeResult `json:"result"`
	ScamDBHits []detect.ScamDBHit     `json:"scamDbHits"`
	Website    *webscan.Info          `json:"website,omitempty"`
	URLScan    *intel.URLScanResult   `json:"urlscan,omitempty"`
	DomainAge  *intel.DomainAge       `json:"domainAge,omitempty"`
}

// Analyze scores a posting. The five signal analyzers run synchronously;
// the live website scan, urlscan lookup and whois query run concurrently
// and amend the result before the final rescore.
func (h AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var in detect.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_json", "invalid request body")
		return
	}
	if strings.TrimSpace(in.JobText) == "" {
		WriteError(w, r, http.StatusBadRequest, "missing_job_text", "jobText is required")
		return
	}

	resp := AnalyzeResponse{Result: h.Detect.Run(in)}

	hostname := hostnameOf(in.CompanyURL)
	resp.ScamDBHits = h.Detect.ApplyScamDBHits(&resp.Result, hostname, in.CompanyName, in.RecruiterEmail)
	if resp.ScamDBHits == nil {
		resp.ScamDBHits = []detect.ScamDBHit{}
	}

	g, ctx := errgroup.WithContext(r.Context())

	if h.WebScanner != nil && strings.TrimSpace(in.CompanyURL) != "" {
		g.Go(func() error {
			resp.Website = h.WebScanner.Scan(ctx, in.CompanyURL)
			return nil
		})
	}
	if h.URLScan != nil && hostname != "" {
		g.Go(func() error {
			resp.URLScan = h.URLScan.Search(ctx, hostname)
			return nil
		})
	}
	if h.WhoisEnabled && hostname != "" {
		g.Go(func() error {
			age := intel.WhoisDomainAge(hostname)
			if age.Known {
				resp.DomainAge = &age
			}
			return nil
		})
	}
	_ = g.Wait()

	if resp.Website != nil && resp.Website.Fetched && resp.Website.ContentScore > 0 {
		u := &resp.Result.Breakdown.URL
		u.Score += int(float64(resp.Website.ContentScore)*webContentWeight + 0.5)
		if u.Score > 100 {
			u.Score = 100
		}
		for _, f := range resp.Website.ContentFlags {
			u.Flags = append(u.Flags, "(Web) "+f)
		}
		h.Detect.Rescore(&resp.Result)
	}

	if h.DB != nil {
		_ = store.LogAnalysis(r.Context(), h.DB, store.Analysis{
			Verdict:     resp.Result.Verdict.Label,
			Score:       resp.Result.Composite,
			CompanyName: in.CompanyName,
			URL:         in.CompanyURL,
			CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		})
	}

	if h.Hub != nil {
		h.Hub.Publish(events.MakeEvent(
			RequestIDFrom(r.Context()),
			events.TypeAnalysisDone, 1,
			map[string]any{
				"composite": resp.Result.Composite,
				"verdict":   resp.Result.Verdict.Label,
			},
		))
	}

	WriteJSON(w, http.StatusOK, resp)
}

// Recent lists the latest analysis log rows.
func (h AnalyzeHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	rows, err := store.RecentAnalyses(r.Context(), h.DB, limit)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "db_error", err.Error())
		return
	}
	if rows == nil {
		rows = []store.Analysis{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"analyses": rows})
}

func hostnameOf(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.HasPrefix(raw, "http") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}
