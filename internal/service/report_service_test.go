package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dzhusipov/fleet-core/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

func TestTCOIncludesEveryVehicle(t *testing.T) {
	a := &model.Vehicle{LicensePlate: "AAA111", Brand: "Toyota", Model: "Camry", PurchasePrice: decPtr("10000")}
	b := &model.Vehicle{LicensePlate: "BBB222", Brand: "Kia", Model: "Rio"}
	vehicles := newStubVehicleRepo(a, b)

	expenses := &stubExpenseRepo{expenses: []model.Expense{
		{VehicleID: a.ID, Category: model.ExpenseService, Amount: dec("500"), Date: day("2026-03-01")},
		{VehicleID: a.ID, Category: model.ExpenseFuel, Amount: dec("250"), Date: day("2026-04-01")},
		// outside the window, must not count
		{VehicleID: a.ID, Category: model.ExpenseService, Amount: dec("9999"), Date: day("2025-01-01")},
	}}
	maintenance := &stubMaintenanceRepo{records: []model.MaintenanceRecord{
		{VehicleID: a.ID, Status: model.MaintenanceCompleted, Cost: decPtr("300"), ScheduledDate: dayPtr("2026-05-01")},
		// not completed, must not count
		{VehicleID: a.ID, Status: model.MaintenanceScheduled, Cost: decPtr("100"), ScheduledDate: dayPtr("2026-06-01")},
	}}

	svc := NewReportService(vehicles, expenses, maintenance)
	report, err := svc.TCO(context.Background(), day("2026-01-01"), day("2026-12-31"), nil)
	require.NoError(t, err)

	require.Len(t, report.Vehicles, 2)

	first := report.Vehicles[0]
	assert.Equal(t, "AAA111", first.LicensePlate)
	assert.True(t, first.ExpenseTotal.Equal(dec("750")), "expense total %s", first.ExpenseTotal)
	// completed maintenance shows as its own column, outside the tco sum
	assert.True(t, first.MaintenanceTotal.Equal(dec("300")))
	assert.True(t, first.TCO.Equal(dec("10750")))

	// zero-expense vehicle still gets a row
	second := report.Vehicles[1]
	assert.Equal(t, "BBB222", second.LicensePlate)
	assert.True(t, second.TCO.IsZero())

	assert.True(t, report.Total.Equal(dec("10750")))
}

func TestTCOSortsByExpenseTotalThenPlate(t *testing.T) {
	a := &model.Vehicle{LicensePlate: "CCC333", PurchasePrice: decPtr("9000")}
	b := &model.Vehicle{LicensePlate: "AAA111"}
	c := &model.Vehicle{LicensePlate: "BBB222"}
	vehicles := newStubVehicleRepo(a, b, c)
	expenses := &stubExpenseRepo{expenses: []model.Expense{
		{VehicleID: a.ID, Category: model.ExpenseFuel, Amount: dec("500"), Date: day("2026-02-01")},
		{VehicleID: b.ID, Category: model.ExpenseFuel, Amount: dec("500"), Date: day("2026-02-01")},
		{VehicleID: c.ID, Category: model.ExpenseFuel, Amount: dec("900"), Date: day("2026-02-01")},
	}}
	svc := NewReportService(vehicles, expenses, &stubMaintenanceRepo{})

	report, err := svc.TCO(context.Background(), time.Time{}, time.Time{}, nil)
	require.NoError(t, err)
	require.Len(t, report.Vehicles, 3)
	// spend ranking, not purchase price
	assert.Equal(t, "BBB222", report.Vehicles[0].LicensePlate)
	// tie on 500 breaks by plate
	assert.Equal(t, "AAA111", report.Vehicles[1].LicensePlate)
	assert.Equal(t, "CCC333", report.Vehicles[2].LicensePlate)
}

func TestTCOMaintenanceCostIsInformational(t *testing.T) {
	a := &model.Vehicle{LicensePlate: "AAA111", PurchasePrice: decPtr("10000")}
	b := &model.Vehicle{LicensePlate: "BBB222", PurchasePrice: decPtr("1000")}
	vehicles := newStubVehicleRepo(a, b)
	expenses := &stubExpenseRepo{expenses: []model.Expense{
		{VehicleID: b.ID, Category: model.ExpenseService, Amount: dec("800"), Date: day("2026-02-01")},
	}}
	maintenance := &stubMaintenanceRepo{records: []model.MaintenanceRecord{
		{VehicleID: a.ID, Status: model.MaintenanceCompleted, Cost: decPtr("500"), ScheduledDate: dayPtr("2026-03-01")},
	}}
	svc := NewReportService(vehicles, expenses, maintenance)

	report, err := svc.TCO(context.Background(), time.Time{}, time.Time{}, nil)
	require.NoError(t, err)
	require.Len(t, report.Vehicles, 2)

	// b has the bigger spend, so it ranks first even though a's maintenance
	// outweighs it
	assert.Equal(t, "BBB222", report.Vehicles[0].LicensePlate)

	second := report.Vehicles[1]
	assert.Equal(t, "AAA111", second.LicensePlate)
	assert.True(t, second.MaintenanceTotal.Equal(dec("500")))
	assert.True(t, second.TCO.Equal(dec("10000")), "tco %s", second.TCO)
}

func TestUtilizationRate(t *testing.T) {
	var fleet []*model.Vehicle
	for i := 0; i < 7; i++ {
		fleet = append(fleet, &model.Vehicle{LicensePlate: string(rune('A'+i)) + "1", Status: model.VehicleActive})
	}
	fleet = append(fleet,
		&model.Vehicle{LicensePlate: "M1", Status: model.VehicleInMaintenance},
		&model.Vehicle{LicensePlate: "M2", Status: model.VehicleInMaintenance},
		&model.Vehicle{LicensePlate: "R1", Status: model.VehicleReserved},
	)
	svc := NewReportService(newStubVehicleRepo(fleet...), &stubExpenseRepo{}, &stubMaintenanceRepo{})

	report, err := svc.Utilization(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, report.TotalVehicles)
	assert.Equal(t, 70.0, report.UtilizationRate)
	// one slice per status, even when empty
	assert.Len(t, report.ByStatus, 4)
}

func TestUtilizationEmptyFleet(t *testing.T) {
	svc := NewReportService(newStubVehicleRepo(), &stubExpenseRepo{}, &stubMaintenanceRepo{})
	report, err := svc.Utilization(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, report.TotalVehicles)
	assert.Equal(t, 0.0, report.UtilizationRate)
}

func TestFuelReportOnlyCountsFuelWithLiters(t *testing.T) {
	v := &model.Vehicle{LicensePlate: "FUE001"}
	vehicles := newStubVehicleRepo(v)

	l1, l2 := 10.25, 20.3
	expenses := &stubExpenseRepo{expenses: []model.Expense{
		{VehicleID: v.ID, Category: model.ExpenseFuel, Amount: dec("5000"), FuelLiters: &l1, Date: day("2026-02-01")},
		{VehicleID: v.ID, Category: model.ExpenseFuel, Amount: dec("10000"), FuelLiters: &l2, Date: day("2026-02-15")},
		// fuel without liters is ignored
		{VehicleID: v.ID, Category: model.ExpenseFuel, Amount: dec("3000"), Date: day("2026-02-20")},
		// non-fuel is ignored
		{VehicleID: v.ID, Category: model.ExpenseService, Amount: dec("7000"), Date: day("2026-02-25")},
	}}

	svc := NewReportService(vehicles, expenses, &stubMaintenanceRepo{})
	report, err := svc.Fuel(context.Background(), time.Time{}, time.Time{}, nil)
	require.NoError(t, err)

	require.Len(t, report.Vehicles, 1)
	row := report.Vehicles[0]
	assert.Equal(t, 30.6, row.TotalLiters)
	assert.Equal(t, 2, row.RefuelCount)
	assert.True(t, row.TotalCost.Equal(dec("15000")))
	assert.Equal(t, 30.6, report.TotalLiters)
}

func TestExpenseAnalysisOrdering(t *testing.T) {
	v := &model.Vehicle{LicensePlate: "EXP001"}
	vehicles := newStubVehicleRepo(v)

	expenses := &stubExpenseRepo{expenses: []model.Expense{
		{VehicleID: v.ID, Category: model.ExpenseFuel, Amount: dec("100"), Date: day("2026-02-10")},
		{VehicleID: v.ID, Category: model.ExpenseFuel, Amount: dec("150"), Date: day("2026-03-05")},
		{VehicleID: v.ID, Category: model.ExpenseService, Amount: dec("400"), Date: day("2026-01-20")},
		{VehicleID: v.ID, Category: model.ExpenseParking, Amount: dec("50"), Date: day("2026-03-15")},
	}}

	svc := NewReportService(vehicles, expenses, &stubMaintenanceRepo{})
	report, err := svc.ExpenseAnalysis(context.Background(), time.Time{}, time.Time{}, nil)
	require.NoError(t, err)

	require.Len(t, report.ByCategory, 3)
	assert.Equal(t, "service", report.ByCategory[0].Category)
	assert.Equal(t, "fuel", report.ByCategory[1].Category)
	assert.Equal(t, 2, report.ByCategory[1].Count)
	assert.Equal(t, "parking", report.ByCategory[2].Category)

	// monthly buckets key on the first day of the month and carry counts
	require.Len(t, report.Monthly, 3)
	assert.Equal(t, "2026-01-01", report.Monthly[0].Month)
	assert.Equal(t, 1, report.Monthly[0].Count)
	assert.Equal(t, "2026-02-01", report.Monthly[1].Month)
	assert.Equal(t, "2026-03-01", report.Monthly[2].Month)
	assert.True(t, report.Monthly[2].Total.Equal(dec("200")))
	assert.Equal(t, 2, report.Monthly[2].Count)

	assert.True(t, report.Total.Equal(dec("700")))
	assert.Equal(t, 4, report.TotalCount)
}

// A window whose end precedes its start matches nothing; the report comes
// back empty instead of failing.
func TestExpenseAnalysisReversedWindowIsEmpty(t *testing.T) {
	v := &model.Vehicle{LicensePlate: "EXP002"}
	expenses := &stubExpenseRepo{expenses: []model.Expense{
		{VehicleID: v.ID, Category: model.ExpenseFuel, Amount: dec("100"), Date: day("2026-02-10")},
	}}

	svc := NewReportService(newStubVehicleRepo(v), expenses, &stubMaintenanceRepo{})
	report, err := svc.ExpenseAnalysis(context.Background(), day("2026-06-30"), day("2026-01-01"), nil)
	require.NoError(t, err)

	assert.Empty(t, report.ByCategory)
	assert.Empty(t, report.Monthly)
	assert.True(t, report.Total.IsZero())
	assert.Equal(t, 0, report.TotalCount)
}

func TestMaintenanceHistoryDefaults(t *testing.T) {
	v := &model.Vehicle{LicensePlate: "MNT001", Brand: "Toyota", Model: "Hilux"}
	vehicles := newStubVehicleRepo(v)
	provider := "AutoService LLP"

	maintenance := &stubMaintenanceRepo{records: []model.MaintenanceRecord{
		{
			VehicleID:       v.ID,
			Vehicle:         v,
			Type:            model.MaintenanceRepair,
			Title:           "Brake pads",
			Status:          model.MaintenanceCompleted,
			Cost:            decPtr("120.50"),
			ScheduledDate:   dayPtr("2026-04-01"),
			CompletedDate:   dayPtr("2026-04-03"),
			ServiceProvider: &provider,
		},
		// no vehicle preload, no dates, no cost
		{VehicleID: v.ID, Type: model.MaintenanceInspection, Title: "Yearly check", Status: model.MaintenanceScheduled},
	}}

	svc := NewReportService(vehicles, &stubExpenseRepo{}, maintenance)
	report, err := svc.MaintenanceHistory(context.Background(), time.Time{}, time.Time{}, nil)
	require.NoError(t, err)

	require.Len(t, report.Records, 2)
	first := report.Records[0]
	assert.Equal(t, "2026-04-01", first.Date)
	assert.Equal(t, "MNT001", first.LicensePlate)
	assert.Equal(t, "Toyota", first.Brand)
	assert.Equal(t, "Hilux", first.Model)
	assert.Equal(t, "2026-04-03", first.CompletedDate)
	assert.Equal(t, "AutoService LLP", first.ServiceProvider)

	assert.Equal(t, "", report.Records[1].Date)
	assert.True(t, report.Records[1].Cost.IsZero())
	assert.True(t, report.Total.Equal(dec("120.50")))
}

func TestPeriodLabel(t *testing.T) {
	from, to := day("2026-01-01"), day("2026-06-30")
	assert.Equal(t, "Period: 2026-01-01 — 2026-06-30", PeriodLabel(from, to))
	assert.Equal(t, "From: 2026-01-01", PeriodLabel(from, time.Time{}))
	assert.Equal(t, "Until: 2026-06-30", PeriodLabel(time.Time{}, to))
	assert.Equal(t, "All time", PeriodLabel(time.Time{}, time.Time{}))
}

func TestExportExpensesCSV(t *testing.T) {
	v := &model.Vehicle{LicensePlate: "CSV001"}
	vehicles := newStubVehicleRepo(v)
	expenses := &stubExpenseRepo{expenses: []model.Expense{
		{VehicleID: v.ID, Category: model.ExpenseFuel, Amount: dec("120.5"), Date: day("2026-02-01")},
	}}

	svc := NewReportService(vehicles, expenses, &stubMaintenanceRepo{})
	data, err := svc.ExportExpensesCSV(context.Background(), time.Time{}, time.Time{}, nil)
	require.NoError(t, err)

	require.True(t, len(data) > 3)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3], "missing UTF-8 BOM")
	// exactly the header and the by_category rows, so the file parses back
	// into the analysis payload
	assert.Equal(t, "category,total,count\nfuel,120.50,1\n", string(data[3:]))
}
