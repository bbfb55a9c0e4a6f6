package service

import (
	"context"
	"testing"
	"time"

	"anoa.com/plusgems/internal/dto"
	"anoa.com/plusgems/internal/model"
	"anoa.com/plusgems/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dashboardFixture() *fakeNominationRepo {
	repo := newFakeNominationRepo()
	repo.records = []model.NominationRecord{
		record("Ana", "Bruno", "Engineering", "Teamwork", 10, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)),
		record("Bruno", "Carla", "Sales", "Innovation", 25, time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)),
		record("Ana", "Carla", "Sales", "Teamwork", 5, time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)),
	}
	repo.records[2].Status = model.StatusPending
	return repo
}

func TestGetDashboardAssemblesAllComponents(t *testing.T) {
	svc := NewDashboardService(dashboardFixture(), nil, 5*time.Minute)

	resp, err := svc.GetDashboard(context.Background(), dto.DashboardFilter{})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.KPIs.TotalNominations)
	assert.Equal(t, 40, resp.KPIs.TotalCrystals)
	assert.Equal(t, 2, resp.KPIs.DistinctHeroes)
	assert.Len(t, resp.Feed, 3)
	assert.Len(t, resp.Ranking, 2)
	assert.Len(t, resp.PillarDistribution, 2)
	assert.Len(t, resp.TimeSeries, 3)
	assert.False(t, resp.FlowGraph.Empty())
}

func TestGetDashboardDateRange(t *testing.T) {
	svc := NewDashboardService(dashboardFixture(), nil, 5*time.Minute)

	resp, err := svc.GetDashboard(context.Background(), dto.DashboardFilter{
		From: "2025-03-11",
		To:   "2025-03-11",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.KPIs.TotalNominations)
	assert.Equal(t, 25, resp.KPIs.TotalCrystals)
	require.Len(t, resp.TimeSeries, 1)
	assert.Equal(t, "2025-03-11", resp.TimeSeries[0].Date)
}

func TestGetDashboardHeroFilterMatchesEitherRole(t *testing.T) {
	svc := NewDashboardService(dashboardFixture(), nil, 5*time.Minute)

	resp, err := svc.GetDashboard(context.Background(), dto.DashboardFilter{
		Heroes: []string{"Bruno"},
	})

	require.NoError(t, err)
	// Bruno is nominee of the first record and nominator of the second.
	assert.Equal(t, 2, resp.KPIs.TotalNominations)
	assert.Equal(t, 35, resp.KPIs.TotalCrystals)
}

func TestGetDashboardPillarAndStatusFilters(t *testing.T) {
	svc := NewDashboardService(dashboardFixture(), nil, 5*time.Minute)

	byPillar, err := svc.GetDashboard(context.Background(), dto.DashboardFilter{
		Pillars: []string{"Teamwork"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, byPillar.KPIs.TotalNominations)
	assert.Equal(t, 15, byPillar.KPIs.TotalCrystals)

	byStatus, err := svc.GetDashboard(context.Background(), dto.DashboardFilter{
		Status: model.StatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, byStatus.KPIs.TotalNominations)
	assert.Equal(t, 5, byStatus.KPIs.TotalCrystals)
}

func TestGetDashboardRejectsMalformedDates(t *testing.T) {
	svc := NewDashboardService(dashboardFixture(), nil, 5*time.Minute)

	_, err := svc.GetDashboard(context.Background(), dto.DashboardFilter{From: "11-03-2025"})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	_, err = svc.GetDashboard(context.Background(), dto.DashboardFilter{To: "soon"})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestGetDashboardExplicitTopZero(t *testing.T) {
	svc := NewDashboardService(dashboardFixture(), nil, 5*time.Minute)

	zero := 0
	resp, err := svc.GetDashboard(context.Background(), dto.DashboardFilter{TopN: &zero})

	require.NoError(t, err)
	assert.True(t, resp.FlowGraph.Empty())
	// The other components ignore the flow graph bound.
	assert.Equal(t, 3, resp.KPIs.TotalNominations)
}
