// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

package artwork

import (
	"strings"

	"github.com/soyounglim/gallerim/internal/platform/i18n"
)

// StatusValidator runs the publish gate and formats its failures for the
// admin CMS.
//
// # Output format
//
// Failures are aggregated into a map keyed by error kind; each entry is
// "<identifier>|<field>", where the identifier is the artwork's title in
// DisplayLang (falling back to the raw ID when that translation is absent or
// blank). The same map is used for one artwork and, additively, for a whole
// bulk batch.
type StatusValidator struct {
	// DisplayLang selects the language used for the human-readable identifier
	// in error entries. Defaults to the platform default language.
	DisplayLang i18n.Lang

	rules []Rule
}

// NewStatusValidator returns a validator carrying the full publish gate.
func NewStatusValidator() *StatusValidator {
	return &StatusValidator{
		DisplayLang: i18n.DefaultLang,
		rules:       PublishRules(),
	}
}

// Validate runs every rule in registration order and returns the failures.
// It never stops at the first failure: the CMS shows the artist everything
// that still blocks publication in one round trip.
func (v *StatusValidator) Validate(a *Artwork) []Violation {
	var violations []Violation
	for _, rule := range v.rules {
		if violation := rule.Check(a); violation != nil {
			violations = append(violations, *violation)
		}
	}
	return violations
}

// Collect appends the formatted entries for one artwork's violations into an
// existing aggregation map. Rules that report multiple comma-joined field
// paths contribute one entry per path.
func (v *StatusValidator) Collect(a *Artwork, violations []Violation, into map[string][]string) {
	identifier := v.displayIdentifier(a)
	for _, violation := range violations {
		for _, field := range strings.Split(violation.Field, ",") {
			into[violation.Kind] = append(into[violation.Kind], identifier+"|"+field)
		}
	}
}

// FormatErrors is the single-artwork convenience over [StatusValidator.Collect].
func (v *StatusValidator) FormatErrors(a *Artwork, violations []Violation) map[string][]string {
	errs := make(map[string][]string)
	v.Collect(a, violations, errs)
	return errs
}

// displayIdentifier prefers the display-language title so admins can tell
// failing artworks apart without cross-referencing IDs.
func (v *StatusValidator) displayIdentifier(a *Artwork) string {
	if tr := a.TranslationFor(v.DisplayLang); tr != nil && strings.TrimSpace(tr.Title) != "" {
		return tr.Title
	}
	return a.ID
}
