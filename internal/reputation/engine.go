package reputation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/nyaruka/phonenumbers"
)

const (
	minQueryLen      = 2
	topFlagCount     = 4
	recentFeedLimit  = 6
	recentUserSlots  = 3
	unscoredUserRank = 30 // placeholder score for lone user submissions in the feed
)

// Engine answers reputation queries against the seed records merged with the
// community report store.
type Engine struct {
	seeds   []ScamRecord
	store   ReportStore
	now     func() time.Time
	refDate time.Time
}

// NewEngine wires a reputation engine over the given report store. Surge
// windows are measured from the fixed reference date so results stay
// reproducible across runs; pass WithClock to anchor them to wall time.
func NewEngine(store ReportStore, opts ...Option) *Engine {
	e := &Engine{
		seeds:   SeedRecords(),
		store:   store,
		now:     time.Now,
		refDate: DefaultReferenceDate,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces both the submission clock and the surge reference date.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
		e.refDate = now()
	}
}

// WithSeeds replaces the built-in seed records.
func WithSeeds(seeds []ScamRecord) Option {
	return func(e *Engine) { e.seeds = seeds }
}

// SearchResult is the full answer to a reputation lookup.
type SearchResult struct {
	Found           bool           `json:"found"`
	Query           string         `json:"query"`
	Entry           *ScamRecord    `json:"entry,omitempty"`
	MatchType       string         `json:"matchType,omitempty"`
	ReputationScore int            `json:"reputationScore"`
	Classification  Classification `json:"classification"`
	Surge           Surge          `json:"surge"`
	FlagAnalysis    map[string]int `json:"flagAnalysis"`
	TopFlags        []FlagShare    `json:"topFlags"`
	TotalReports    int            `json:"totalReports"`
	VerifiedReports int            `json:"verifiedReports"`
	FirstReport     string         `json:"firstReport"`
	SimilarClusters int            `json:"similarClusters"`
	PaymentPercent  int            `json:"paymentPercent"`
}

// Search runs a query against the merged database and returns the
// best-matching record with its full reputation workup. Queries shorter than
// two characters return nil. Ties on match score keep the earliest record,
// so seed entries outrank later user entries at equal confidence.
func (e *Engine) Search(query string) (*SearchResult, error) {
	if len(strings.TrimSpace(query)) < minQueryLen {
		return nil, nil
	}
	db, err := MergedDatabase(e.seeds, e.store)
	if err != nil {
		return nil, fmt.Errorf("merge reputation database: %w", err)
	}

	var best *ScamRecord
	bestScore := 0.0
	bestType := ""
	for i := range db {
		m := MatchEntry(&db[i], query)
		if m.Matched && m.Score > bestScore {
			best = &db[i]
			bestScore = m.Score
			bestType = m.Type
		}
	}
	if best == nil {
		return &SearchResult{Found: false, Query: query}, nil
	}

	score := ComputeScore(best)
	flagAnalysis := AnalyzeFlags(best.Reports)
	verified := 0
	for _, r := range best.Reports {
		if r.Verified {
			verified++
		}
	}

	return &SearchResult{
		Found:           true,
		Query:           query,
		Entry:           best,
		MatchType:       bestType,
		ReputationScore: score,
		Classification:  Classify(score),
		Surge:           DetectSurge(best.Reports, e.refDate),
		FlagAnalysis:    flagAnalysis,
		TopFlags:        TopFlags(flagAnalysis, topFlagCount),
		TotalReports:    len(best.Reports),
		VerifiedReports: verified,
		FirstReport:     earliestReportDate(best.Reports),
		SimilarClusters: CountClusterPeers(best, db),
		PaymentPercent:  flagAnalysis["upfront_payment"],
	}, nil
}

// FeedEntry is one row of the recent-community-reports feed.
type FeedEntry struct {
	Name           string         `json:"name"`
	Score          int            `json:"score"`
	Classification Classification `json:"classification"`
	Latest         string         `json:"latest"`
	Reports        int            `json:"reports"`
	Surge          Surge          `json:"surge"`
	IsUser         bool           `json:"isUser"`
}

// RecentReports builds the community feed: up to three of the newest user
// submissions first, then seed records ordered by most recent report, capped
// at limit (6 when limit <= 0).
func (e *Engine) RecentReports(limit int) ([]FeedEntry, error) {
	if limit <= 0 {
		limit = recentFeedLimit
	}
	userReports, err := e.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load user reports: %w", err)
	}

	seeded := make([]FeedEntry, 0, len(e.seeds))
	for i := range e.seeds {
		rec := &e.seeds[i]
		score := ComputeScore(rec)
		seeded = append(seeded, FeedEntry{
			Name:           rec.CompanyName,
			Score:          score,
			Classification: Classify(score),
			Latest:         latestReportDate(rec.Reports),
			Reports:        len(rec.Reports),
			Surge:          DetectSurge(rec.Reports, e.refDate),
		})
	}
	sort.SliceStable(seeded, func(i, j int) bool {
		return seeded[i].Latest > seeded[j].Latest
	})

	feed := make([]FeedEntry, 0, limit)
	for i, ur := range userReports {
		if i >= recentUserSlots {
			break
		}
		name := ur.CompanyName
		if name == "" {
			name = "Unknown"
		}
		feed = append(feed, FeedEntry{
			Name:           name,
			Score:          unscoredUserRank,
			Classification: Classify(unscoredUserRank),
			Latest:         ur.Date,
			Reports:        1,
			IsUser:         true,
		})
	}
	feed = append(feed, seeded...)
	if len(feed) > limit {
		feed = feed[:limit]
	}
	return feed, nil
}

// Submit validates and persists a community report, stamping it with the
// current date. Phone numbers are normalized to E.164 when they parse as
// Indian numbers; unparseable input is stored as given.
func (e *Engine) Submit(ur UserReport) error {
	if strings.TrimSpace(ur.CompanyName) == "" && strings.TrimSpace(ur.Domain) == "" &&
		strings.TrimSpace(ur.Email) == "" && strings.TrimSpace(ur.UPIID) == "" &&
		strings.TrimSpace(ur.Phone) == "" {
		return fmt.Errorf("report needs at least one identifier")
	}
	if ur.Flags == nil {
		ur.Flags = []string{}
	}
	ur.Phone = normalizePhone(ur.Phone)
	ur.Date = e.now().Format("2006-01-02")
	if err := e.store.Append(ur); err != nil {
		return fmt.Errorf("persist report: %w", err)
	}
	return nil
}

func normalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	num, err := phonenumbers.Parse(raw, "IN")
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}

func earliestReportDate(reports []Report) string {
	if len(reports) == 0 {
		return "—"
	}
	min := reports[0].Date
	for _, r := range reports[1:] {
		if r.Date < min {
			min = r.Date
		}
	}
	return min
}

func latestReportDate(reports []Report) string {
	max := ""
	for _, r := range reports {
		if r.Date > max {
			max = r.Date
		}
	}
	return max
}
