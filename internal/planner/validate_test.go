package planner_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/planner"
)

func TestValidate(t *testing.T) {
	good := poi("good", 21.0, 105.8)
	nan := poi("nan", math.NaN(), 105.8)
	inf := poi("inf", 21.0, math.Inf(1))
	idle := poi("idle", 21.0, 105.8)
	idle.VisitMinutes = 0

	valid, errs := planner.Validate([]planner.PointOfInterest{nan, good, inf, idle})

	assert.Equal(t, []string{"good"}, ids(valid))
	require.Len(t, errs, 3)
	assert.ErrorIs(t, errs[0], planner.ErrBadCoordinate)
	assert.ErrorIs(t, errs[1], planner.ErrBadCoordinate)
	assert.ErrorIs(t, errs[2], planner.ErrBadVisitMinutes)
}

func TestIsCategory(t *testing.T) {
	assert.True(t, planner.IsCategory("Restaurants & Foodie Spots"))
	assert.False(t, planner.IsCategory("restaurants & foodie spots"))
	assert.Len(t, planner.Categories, 9)
}
