// Package chat is a scripted FAQ responder for internship-fraud questions.
// Substring matching against a fixed knowledge base, with a fuzzy pass for
// near-miss phrasing and rotating fallbacks when nothing fits.
package chat

import (
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

type Bot struct {
	kb        []Entry
	fallbacks []string

	mu            sync.Mutex
	fallbackIndex int
}

func NewBot() *Bot {
	return &Bot{
		kb:        knowledgeBase(),
		fallbacks: fallbackResponses(),
	}
}

// Reply answers one message. Entries are tried in knowledge-base order and
// the first substring hit wins, so greetings beat topic matches for inputs
// like "hello, is this url safe". Empty input returns "".
func (b *Bot) Reply(input string) string {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return ""
	}

	for _, e := range b.kb {
		for _, p := range e.Patterns {
			if strings.Contains(normalized, p) {
				return e.Response
			}
		}
	}

	// Second pass: tolerate typos like "registation fee".
	for _, e := range b.kb {
		for _, p := range e.Patterns {
			if len(p) >= 6 && len(fuzzy.RankFindNormalizedFold(p, []string{normalized})) > 0 {
				return e.Response
			}
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	fb := b.fallbacks[b.fallbackIndex%len(b.fallbacks)]
	b.fallbackIndex++
	return fb
}
