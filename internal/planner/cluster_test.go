package planner_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/planner"
)

func TestClusterByDay_conservesPoints(t *testing.T) {
	points := grid(23)
	for _, days := range []int{1, 2, 3, 4, 7, 30} {
		t.Run(fmt.Sprintf("%d days", days), func(t *testing.T) {
			clusters := planner.ClusterByDay(points, days)
			require.Len(t, clusters, days)

			var got []string
			for _, c := range clusters {
				got = append(got, ids(c)...)
			}
			assert.ElementsMatch(t, ids(points), got)
		})
	}
}

func TestClusterByDay_singleDayReturnsInput(t *testing.T) {
	points := grid(7)
	clusters := planner.ClusterByDay(points, 1)

	require.Len(t, clusters, 1)
	assert.Equal(t, points, clusters[0])
}

func TestClusterByDay_emptyInput(t *testing.T) {
	clusters := planner.ClusterByDay(nil, 3)

	require.Len(t, clusters, 3)
	for _, c := range clusters {
		assert.Empty(t, c)
	}
}

func TestClusterByDay_separatesDistantGroups(t *testing.T) {
	points := []planner.PointOfInterest{
		poi("a1", 0, 0), poi("b1", 1, 1),
		poi("a2", 0.01, 0), poi("b2", 0.99, 1),
		poi("a3", 0, 0.01), poi("b3", 1, 0.99),
	}
	clusters := planner.ClusterByDay(points, 2)

	require.Len(t, clusters, 2)
	assert.Equal(t, []string{"a1", "a2", "a3"}, ids(clusters[0]))
	assert.Equal(t, []string{"b1", "b2", "b3"}, ids(clusters[1]))
}

func TestClusterByDay_fillsEmptyDayFromLargest(t *testing.T) {
	points := []planner.PointOfInterest{
		poi("a1", 0, 0), poi("a2", 0.01, 0), poi("a3", 0, 0.01), poi("a4", 0.01, 0.01),
		poi("far", 1, 1),
	}
	clusters := planner.ClusterByDay(points, 3)

	require.Len(t, clusters, 3)
	assert.Equal(t, []string{"a1", "a2", "a3"}, ids(clusters[0]))
	assert.Equal(t, []string{"a4"}, ids(clusters[1]))
	assert.Equal(t, []string{"far"}, ids(clusters[2]))
}

func TestClusterByDay_drainsOverfullDay(t *testing.T) {
	// identical coordinates collapse every center onto one spot, so the
	// first day wins every point before balancing
	points := make([]planner.PointOfInterest, 10)
	for i := range points {
		points[i] = poi(fmt.Sprintf("p%d", i), 16.0544, 108.2022)
	}
	clusters := planner.ClusterByDay(points, 2)

	require.Len(t, clusters, 2)
	// maxPerDay = ceil(10/2)+2 = 7, balancing stops there rather than at 5/5
	assert.Len(t, clusters[0], 7)
	assert.Len(t, clusters[1], 3)
	assert.Equal(t, []string{"p9", "p8", "p7"}, ids(clusters[1]))
}

func TestClusterByDay_coincidentCentersFavorFirstDay(t *testing.T) {
	points := make([]planner.PointOfInterest, 18)
	for i := range points {
		points[i] = poi(fmt.Sprintf("p%02d", i), 10.7769, 106.7009)
	}
	clusters := planner.ClusterByDay(points, 3)

	require.Len(t, clusters, 3)
	// every distance ties, so all points start on day one; empty days take one
	// point each, then day one drains down to ceil(18/3)+2 = 8 alternating
	// into the smallest day
	assert.Equal(t, ids(points[:8]), ids(clusters[0]))
	assert.Equal(t, []string{"p17", "p15", "p13", "p11", "p09"}, ids(clusters[1]))
	assert.Equal(t, []string{"p16", "p14", "p12", "p10", "p08"}, ids(clusters[2]))
}

func TestClusterByDay_moreDaysThanPoints(t *testing.T) {
	points := []planner.PointOfInterest{poi("a", 0, 0), poi("b", 1, 1)}
	clusters := planner.ClusterByDay(points, 4)

	require.Len(t, clusters, 4)
	empty := 0
	for _, c := range clusters {
		if len(c) == 0 {
			empty++
		}
		assert.LessOrEqual(t, len(c), 1)
	}
	assert.Equal(t, 2, empty)
}

func TestClusterByDay_singleDonorIsNotEmptied(t *testing.T) {
	clusters := planner.ClusterByDay([]planner.PointOfInterest{poi("only", 10, 10)}, 2)

	require.Len(t, clusters, 2)
	assert.Equal(t, []string{"only"}, ids(clusters[0]))
	assert.Empty(t, clusters[1])
}

func TestClusterByDay_nonPositiveDayCount(t *testing.T) {
	assert.Empty(t, planner.ClusterByDay(grid(3), 0))
}
