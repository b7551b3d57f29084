// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

package artwork_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soyounglim/gallerim/internal/catalog/artwork"
	"github.com/soyounglim/gallerim/internal/platform/apperr"
	"github.com/soyounglim/gallerim/internal/platform/i18n"
)

func named(id, koTitle string) *artwork.Artwork {
	a := publishable()
	a.ID = id
	a.TranslationFor(i18n.Ko).Title = koTitle
	return a
}

/*
TestPlanStatusChange_MixedBatch is the canonical partial-success case: one
artwork already published (no-op), one publishable draft, one draft blocked by
a missing rating.
*/
func TestPlanStatusChange_MixedBatch(t *testing.T) {
	a1 := named("a1", "이미 공개됨")
	a1.IsDraft = false
	a2 := named("a2", "공개 가능")
	a3 := named("a3", "평점 없음")
	a3.Rating = nil

	validator := artwork.NewStatusValidator()
	plan := artwork.PlanStatusChange(
		[]string{"a1", "a2", "a3"},
		[]*artwork.Artwork{a1, a2, a3},
		true, validator,
	)

	assert.Equal(t, []string{"a2"}, plan.IDs)
	assert.Equal(t, map[string][]string{
		apperr.KindFieldRequired: {"평점 없음|rating"},
	}, plan.Errors)
	assert.True(t, plan.Partial())
}

/*
TestPlanStatusChange_NotFound checks the "<id>|id" entry for unknown IDs.
*/
func TestPlanStatusChange_NotFound(t *testing.T) {
	a := named("a1", "있는 것")

	validator := artwork.NewStatusValidator()
	plan := artwork.PlanStatusChange(
		[]string{"ghost", "a1"},
		[]*artwork.Artwork{a},
		true, validator,
	)

	assert.Equal(t, []string{"a1"}, plan.IDs)
	assert.Equal(t, []string{"ghost|id"}, plan.Errors[apperr.KindNotFound])
}

/*
TestPlanStatusChange_NoOpIsNotAnError verifies that artworks already in the
target state are excluded silently on both paths.
*/
func TestPlanStatusChange_NoOpIsNotAnError(t *testing.T) {
	published := named("p1", "공개")
	published.IsDraft = false
	draft := named("d1", "초안")

	validator := artwork.NewStatusValidator()

	t.Run("publish", func(t *testing.T) {
		plan := artwork.PlanStatusChange([]string{"p1"}, []*artwork.Artwork{published}, true, validator)
		assert.Empty(t, plan.IDs)
		assert.Empty(t, plan.Errors)
		assert.False(t, plan.Partial())
	})

	t.Run("unpublish", func(t *testing.T) {
		plan := artwork.PlanStatusChange([]string{"d1"}, []*artwork.Artwork{draft}, false, validator)
		assert.Empty(t, plan.IDs)
		assert.Empty(t, plan.Errors)
	})
}

/*
TestPlanStatusChange_UnpublishSkipsGate checks that invalid artworks can still
be unpublished: the gate only guards the draft -> published direction.
*/
func TestPlanStatusChange_UnpublishSkipsGate(t *testing.T) {
	broken := named("b1", "깨진 것")
	broken.IsDraft = false
	broken.Rating = nil
	broken.GenreIDs = nil

	validator := artwork.NewStatusValidator()
	plan := artwork.PlanStatusChange([]string{"b1"}, []*artwork.Artwork{broken}, false, validator)

	assert.Equal(t, []string{"b1"}, plan.IDs)
	assert.Empty(t, plan.Errors)
}

/*
TestPlanStatusChange_ErrorsMergeAdditively checks that multiple failing
artworks pile into the same kind buckets.
*/
func TestPlanStatusChange_ErrorsMergeAdditively(t *testing.T) {
	first := named("f1", "첫째")
	first.Rating = nil
	second := named("f2", "둘째")
	second.Rating = nil
	second.GenreIDs = nil

	validator := artwork.NewStatusValidator()
	plan := artwork.PlanStatusChange(
		[]string{"f1", "f2"},
		[]*artwork.Artwork{first, second},
		true, validator,
	)

	assert.Empty(t, plan.IDs)
	require.Contains(t, plan.Errors, apperr.KindFieldRequired)
	assert.Equal(t, []string{"첫째|rating", "둘째|rating"}, plan.Errors[apperr.KindFieldRequired])
	assert.Equal(t, []string{"둘째|genres"}, plan.Errors[apperr.KindNotExist])
}

/*
TestPlanStatusChange_DuplicateIDsProcessedOnce guards against double entries
when the client repeats an ID.
*/
func TestPlanStatusChange_DuplicateIDsProcessedOnce(t *testing.T) {
	a := named("a1", "하나")

	validator := artwork.NewStatusValidator()
	plan := artwork.PlanStatusChange(
		[]string{"a1", "a1", "ghost", "ghost"},
		[]*artwork.Artwork{a},
		true, validator,
	)

	assert.Equal(t, []string{"a1"}, plan.IDs)
	assert.Equal(t, []string{"ghost|id"}, plan.Errors[apperr.KindNotFound])
}
