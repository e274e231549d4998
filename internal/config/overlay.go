package config

import (
	"fmt"

	"internguard-engine/internal/rules"
)

// OverlayRules compiles any user-supplied keyword rules and appends them to
// the built-in dictionary. The built-in tables themselves are never replaced.
func OverlayRules(cfg Config, set *rules.Set) error {
	for _, kr := range cfg.Analysis.ExtraKeywordRules {
		compiled, err := rules.CompileKeyword(kr.Pattern, kr.Weight, kr.Severity, kr.Label)
		if err != nil {
			return fmt.Errorf("overlay keyword rules: %w", err)
		}
		set.Keywords = append(set.Keywords, compiled)
	}
	return nil
}
