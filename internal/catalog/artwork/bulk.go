// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

package artwork

import (
	"github.com/soyounglim/gallerim/internal/platform/apperr"
)

// StatusChangePlan is the outcome of planning a bulk publish/unpublish.
//
// IDs lists the artworks that may flip state; Errors aggregates, per error
// kind, every reason the rest were excluded. Both can be non-empty at once:
// a batch succeeds for the artworks it can and reports the remainder.
type StatusChangePlan struct {
	IDs    []string
	Errors map[string][]string
}

// Partial reports whether part of the batch was rejected.
func (p StatusChangePlan) Partial() bool { return len(p.Errors) > 0 }

// PlanStatusChange decides, without touching storage, which of the requested
// artworks may move to the target state.
//
// # Semantics
//
//   - A requested ID with no loaded artwork yields a NOT_FOUND entry "<id>|id".
//   - An artwork already in the target state is silently excluded: re-publishing
//     a published artwork is a no-op, not an error.
//   - On the publish path each remaining candidate runs through the full
//     publish gate; failures are merged additively into Errors and the artwork
//     is excluded. Unpublishing has no gate.
//
// Duplicate requested IDs are processed once. The plan preserves request order.
func PlanStatusChange(requestedIDs []string, loaded []*Artwork, publish bool, validator *StatusValidator) StatusChangePlan {
	byID := make(map[string]*Artwork, len(loaded))
	for _, a := range loaded {
		byID[a.ID] = a
	}

	plan := StatusChangePlan{Errors: make(map[string][]string)}
	seen := make(map[string]bool, len(requestedIDs))

	for _, id := range requestedIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		a, ok := byID[id]
		if !ok {
			plan.Errors[apperr.KindNotFound] = append(plan.Errors[apperr.KindNotFound], id+"|"+FieldID)
			continue
		}

		// Already in the target state: nothing to do.
		if a.IsDraft != publish {
			continue
		}

		if publish {
			if violations := validator.Validate(a); len(violations) > 0 {
				validator.Collect(a, violations, plan.Errors)
				continue
			}
		}

		plan.IDs = append(plan.IDs, id)
	}

	return plan
}
