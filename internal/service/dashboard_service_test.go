package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dzhusipov/fleet-core/internal/model"
)

func dashboardFixture(vehicles *stubVehicleRepo, expenses *stubExpenseRepo, maintenance *stubMaintenanceRepo) *DashboardService {
	return NewDashboardService(vehicles, newStubDriverRepo(), maintenance, newStubContractRepo(), expenses)
}

func TestExpenseSummaryFillsEmptyMonths(t *testing.T) {
	v := &model.Vehicle{LicensePlate: "AAA111"}
	vehicles := newStubVehicleRepo(v)
	expenses := &stubExpenseRepo{expenses: []model.Expense{
		{VehicleID: v.ID, Category: model.ExpenseFuel, Amount: dec("100"), Date: day("2026-06-15")},
		{VehicleID: v.ID, Category: model.ExpenseService, Amount: dec("50"), Date: day("2026-08-10")},
	}}
	svc := dashboardFixture(vehicles, expenses, &stubMaintenanceRepo{})

	out, err := svc.ExpenseSummary(context.Background(), day("2026-08-31"), 3)
	require.NoError(t, err)

	require.Len(t, out.Monthly, 3)
	assert.Equal(t, "2026-06-01", out.Monthly[0].Month)
	assert.True(t, out.Monthly[0].Total.Equal(dec("100")))
	assert.Equal(t, 1, out.Monthly[0].Count)
	assert.Equal(t, "2026-07-01", out.Monthly[1].Month)
	assert.True(t, out.Monthly[1].Total.IsZero())
	assert.Equal(t, 0, out.Monthly[1].Count)
	assert.Equal(t, "2026-08-01", out.Monthly[2].Month)
	assert.True(t, out.Monthly[2].Total.Equal(dec("50")))
	assert.True(t, out.Total.Equal(dec("150")))
}

func TestMaintenanceStatsCountsAndCompletedCost(t *testing.T) {
	v := &model.Vehicle{LicensePlate: "AAA111"}
	vehicles := newStubVehicleRepo(v)
	maintenance := &stubMaintenanceRepo{records: []model.MaintenanceRecord{
		{VehicleID: v.ID, Status: model.MaintenanceCompleted, Cost: decPtr("300"), ScheduledDate: dayPtr("2026-02-01")},
		{VehicleID: v.ID, Status: model.MaintenanceCompleted, Cost: decPtr("200"), ScheduledDate: dayPtr("2026-04-01")},
		{VehicleID: v.ID, Status: model.MaintenanceScheduled, Cost: decPtr("999"), ScheduledDate: dayPtr("2026-08-01")},
	}}
	svc := dashboardFixture(vehicles, &stubExpenseRepo{}, maintenance)

	out, err := svc.MaintenanceStats(context.Background(), day("2026-08-31"))
	require.NoError(t, err)

	require.Len(t, out.ByStatus, 4)
	assert.Equal(t, "scheduled", out.ByStatus[0].Status)
	assert.Equal(t, 1, out.ByStatus[0].Count)
	assert.Equal(t, "completed", out.ByStatus[2].Status)
	assert.Equal(t, 2, out.ByStatus[2].Count)
	assert.True(t, out.CompletedCost.Equal(dec("500")))
}

func TestTopVehiclesRanksBySpend(t *testing.T) {
	a := &model.Vehicle{LicensePlate: "AAA111"}
	b := &model.Vehicle{LicensePlate: "BBB222"}
	vehicles := newStubVehicleRepo(a, b)
	expenses := &stubExpenseRepo{expenses: []model.Expense{
		{VehicleID: a.ID, Category: model.ExpenseFuel, Amount: dec("100"), Date: day("2026-01-01")},
		{VehicleID: b.ID, Category: model.ExpenseFuel, Amount: dec("400"), Date: day("2026-02-01")},
		{VehicleID: a.ID, Category: model.ExpenseService, Amount: dec("50"), Date: day("2026-03-01")},
	}}
	svc := dashboardFixture(vehicles, expenses, &stubMaintenanceRepo{})

	rows, err := svc.TopVehicles(context.Background(), 5)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "BBB222", rows[0].LicensePlate)
	assert.True(t, rows[0].Total.Equal(dec("400")))
	assert.Equal(t, "AAA111", rows[1].LicensePlate)
	assert.True(t, rows[1].Total.Equal(dec("150")))

	rows, err = svc.TopVehicles(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "BBB222", rows[0].LicensePlate)
}
