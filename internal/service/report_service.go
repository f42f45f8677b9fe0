package service

import (
	"context"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dzhusipov/fleet-core/internal/dto"
	"github.com/dzhusipov/fleet-core/internal/export"
	"github.com/dzhusipov/fleet-core/internal/model"
	"github.com/dzhusipov/fleet-core/internal/repository"
)

// ReportService computes the fleet analytics reports. All aggregation happens
// in memory over rows fetched through the repositories, with decimal
// arithmetic for money.
type ReportService struct {
	vehicles    repository.VehicleRepository
	expenses    repository.ExpenseRepository
	maintenance repository.MaintenanceRepository
}

func NewReportService(
	vehicles repository.VehicleRepository,
	expenses repository.ExpenseRepository,
	maintenance repository.MaintenanceRepository,
) *ReportService {
	return &ReportService{vehicles: vehicles, expenses: expenses, maintenance: maintenance}
}

// TCO builds the total-cost-of-ownership report: purchase price plus the
// expense total in the window. Every vehicle in scope gets a row even with no
// expenses. Completed maintenance cost rides along as an informational
// column. Rows sort by expense total descending, ties broken by license
// plate.
func (s *ReportService) TCO(ctx context.Context, from, to time.Time, vehicleID *uuid.UUID) (dto.TCOReport, error) {
	vehicles, err := s.vehicles.All(ctx, vehicleID)
	if err != nil {
		return dto.TCOReport{}, err
	}
	expenses, err := s.expenses.InWindow(ctx, from, to, vehicleID)
	if err != nil {
		return dto.TCOReport{}, err
	}
	records, err := s.maintenance.InWindow(ctx, from, to, vehicleID)
	if err != nil {
		return dto.TCOReport{}, err
	}

	expenseByVehicle := make(map[uuid.UUID]decimal.Decimal)
	for _, e := range expenses {
		expenseByVehicle[e.VehicleID] = expenseByVehicle[e.VehicleID].Add(e.Amount)
	}
	maintByVehicle := make(map[uuid.UUID]decimal.Decimal)
	for _, m := range records {
		if m.Status == model.MaintenanceCompleted && m.Cost != nil {
			maintByVehicle[m.VehicleID] = maintByVehicle[m.VehicleID].Add(*m.Cost)
		}
	}

	report := dto.TCOReport{Vehicles: make([]dto.VehicleTCO, 0, len(vehicles))}
	for _, v := range vehicles {
		purchase := decimal.Zero
		if v.PurchasePrice != nil {
			purchase = *v.PurchasePrice
		}
		expTotal := expenseByVehicle[v.ID]
		maintTotal := maintByVehicle[v.ID]
		tco := purchase.Add(expTotal)
		report.Vehicles = append(report.Vehicles, dto.VehicleTCO{
			VehicleID:        v.ID,
			LicensePlate:     v.LicensePlate,
			Brand:            v.Brand,
			Model:            v.Model,
			PurchasePrice:    purchase,
			ExpenseTotal:     expTotal,
			MaintenanceTotal: maintTotal,
			TCO:              tco,
		})
		report.Total = report.Total.Add(tco)
	}
	sort.SliceStable(report.Vehicles, func(i, j int) bool {
		a, b := report.Vehicles[i], report.Vehicles[j]
		if !a.ExpenseTotal.Equal(b.ExpenseTotal) {
			return a.ExpenseTotal.GreaterThan(b.ExpenseTotal)
		}
		return a.LicensePlate < b.LicensePlate
	})
	return report, nil
}

// Utilization breaks the fleet down by status. The rate is the share of
// ACTIVE vehicles as a percentage with one decimal place; an empty fleet
// reports 0.0.
func (s *ReportService) Utilization(ctx context.Context) (dto.UtilizationReport, error) {
	counts, err := s.vehicles.CountByStatus(ctx)
	if err != nil {
		return dto.UtilizationReport{}, err
	}

	report := dto.UtilizationReport{ByStatus: make([]dto.StatusCount, 0, 4)}
	for _, st := range model.AllVehicleStatuses() {
		n := counts[st]
		report.TotalVehicles += n
		report.ByStatus = append(report.ByStatus, dto.StatusCount{Status: string(st), Count: n})
	}
	if report.TotalVehicles > 0 {
		active := counts[model.VehicleActive]
		report.UtilizationRate = math.Round(float64(active)/float64(report.TotalVehicles)*1000) / 10
	}
	return report, nil
}

// Fuel aggregates fuel-category expenses that carry a liters value. Liters
// round to one decimal place; rows sort by total liters descending.
func (s *ReportService) Fuel(ctx context.Context, from, to time.Time, vehicleID *uuid.UUID) (dto.FuelReport, error) {
	vehicles, err := s.vehicles.All(ctx, vehicleID)
	if err != nil {
		return dto.FuelReport{}, err
	}
	plates := make(map[uuid.UUID]string, len(vehicles))
	for _, v := range vehicles {
		plates[v.ID] = v.LicensePlate
	}

	expenses, err := s.expenses.InWindow(ctx, from, to, vehicleID)
	if err != nil {
		return dto.FuelReport{}, err
	}

	type acc struct {
		liters float64
		cost   decimal.Decimal
		count  int
	}
	byVehicle := make(map[uuid.UUID]*acc)
	for _, e := range expenses {
		if e.Category != model.ExpenseFuel || e.FuelLiters == nil {
			continue
		}
		a := byVehicle[e.VehicleID]
		if a == nil {
			a = &acc{}
			byVehicle[e.VehicleID] = a
		}
		a.liters += *e.FuelLiters
		a.cost = a.cost.Add(e.Amount)
		a.count++
	}

	report := dto.FuelReport{Vehicles: make([]dto.VehicleFuel, 0, len(byVehicle))}
	for id, a := range byVehicle {
		liters := math.Round(a.liters*10) / 10
		row := dto.VehicleFuel{
			VehicleID:    id,
			LicensePlate: plates[id],
			TotalLiters:  liters,
			TotalCost:    a.cost,
			RefuelCount:  a.count,
		}
		if a.liters > 0 {
			row.AvgPricePerLiter = a.cost.Div(decimal.NewFromFloat(a.liters)).Round(2)
		}
		report.Vehicles = append(report.Vehicles, row)
		report.TotalLiters += liters
		report.TotalCost = report.TotalCost.Add(a.cost)
	}
	report.TotalLiters = math.Round(report.TotalLiters*10) / 10
	sort.SliceStable(report.Vehicles, func(i, j int) bool {
		a, b := report.Vehicles[i], report.Vehicles[j]
		if a.TotalLiters != b.TotalLiters {
			return a.TotalLiters > b.TotalLiters
		}
		return a.LicensePlate < b.LicensePlate
	})
	return report, nil
}

// ExpenseAnalysis groups expenses by category (largest first) and by month
// (chronological).
func (s *ReportService) ExpenseAnalysis(ctx context.Context, from, to time.Time, vehicleID *uuid.UUID) (dto.ExpenseAnalysis, error) {
	expenses, err := s.expenses.InWindow(ctx, from, to, vehicleID)
	if err != nil {
		return dto.ExpenseAnalysis{}, err
	}

	type acc struct {
		total decimal.Decimal
		count int
	}
	byCategory := make(map[string]*acc)
	byMonth := make(map[string]*acc)
	report := dto.ExpenseAnalysis{}

	bump := func(m map[string]*acc, key string, amount decimal.Decimal) {
		a := m[key]
		if a == nil {
			a = &acc{}
			m[key] = a
		}
		a.total = a.total.Add(amount)
		a.count++
	}
	for _, e := range expenses {
		bump(byCategory, string(e.Category), e.Amount)
		// calendar month, truncated to the first
		bump(byMonth, e.Date.Format("2006-01")+"-01", e.Amount)

		report.Total = report.Total.Add(e.Amount)
		report.TotalCount++
	}

	report.ByCategory = make([]dto.CategoryTotal, 0, len(byCategory))
	for cat, a := range byCategory {
		report.ByCategory = append(report.ByCategory, dto.CategoryTotal{Category: cat, Total: a.total, Count: a.count})
	}
	sort.SliceStable(report.ByCategory, func(i, j int) bool {
		a, b := report.ByCategory[i], report.ByCategory[j]
		if !a.Total.Equal(b.Total) {
			return a.Total.GreaterThan(b.Total)
		}
		return a.Category < b.Category
	})

	report.Monthly = make([]dto.MonthlyTotal, 0, len(byMonth))
	for month, a := range byMonth {
		report.Monthly = append(report.Monthly, dto.MonthlyTotal{Month: month, Total: a.total, Count: a.count})
	}
	sort.Slice(report.Monthly, func(i, j int) bool {
		return report.Monthly[i].Month < report.Monthly[j].Month
	})

	return report, nil
}

// MaintenanceHistory lists maintenance records in the window, newest
// scheduled date first. Missing dates render as empty strings and missing
// costs as zero.
func (s *ReportService) MaintenanceHistory(ctx context.Context, from, to time.Time, vehicleID *uuid.UUID) (dto.MaintenanceHistoryReport, error) {
	records, err := s.maintenance.InWindow(ctx, from, to, vehicleID)
	if err != nil {
		return dto.MaintenanceHistoryReport{}, err
	}

	report := dto.MaintenanceHistoryReport{Records: make([]dto.MaintenanceHistoryRow, 0, len(records))}
	for _, m := range records {
		row := dto.MaintenanceHistoryRow{
			Type:   string(m.Type),
			Title:  m.Title,
			Status: string(m.Status),
			Cost:   decimal.Zero,
		}
		if m.ScheduledDate != nil {
			row.Date = m.ScheduledDate.Format("2006-01-02")
		}
		if m.CompletedDate != nil {
			row.CompletedDate = m.CompletedDate.Format("2006-01-02")
		}
		if m.Vehicle != nil {
			row.LicensePlate = m.Vehicle.LicensePlate
			row.Brand = m.Vehicle.Brand
			row.Model = m.Vehicle.Model
		}
		if m.ServiceProvider != nil {
			row.ServiceProvider = *m.ServiceProvider
		}
		if m.Cost != nil {
			row.Cost = *m.Cost
		}
		report.Records = append(report.Records, row)
		report.Total = report.Total.Add(row.Cost)
	}
	return report, nil
}

// PeriodLabel renders the date window for export subtitles.
func PeriodLabel(from, to time.Time) string {
	const layout = "2006-01-02"
	switch {
	case !from.IsZero() && !to.IsZero():
		return "Period: " + from.Format(layout) + " — " + to.Format(layout)
	case !from.IsZero():
		return "From: " + from.Format(layout)
	case !to.IsZero():
		return "Until: " + to.Format(layout)
	default:
		return "All time"
	}
}

// ExportTCOXLSX renders the TCO report as a styled workbook.
func (s *ReportService) ExportTCOXLSX(ctx context.Context, from, to time.Time, vehicleID *uuid.UUID) ([]byte, error) {
	report, err := s.TCO(ctx, from, to, vehicleID)
	if err != nil {
		return nil, err
	}
	rows := make([][]any, 0, len(report.Vehicles))
	for _, v := range report.Vehicles {
		rows = append(rows, []any{
			v.LicensePlate,
			v.Brand + " " + v.Model,
			v.PurchasePrice.InexactFloat64(),
			v.ExpenseTotal.InexactFloat64(),
			v.MaintenanceTotal.InexactFloat64(),
			v.TCO.InexactFloat64(),
		})
	}
	return export.Workbook(export.Sheet{
		Title:     "Total Cost of Ownership",
		Period:    PeriodLabel(from, to),
		Headers:   []string{"License Plate", "Vehicle", "Purchase Price", "Expenses", "Maintenance", "TCO"},
		Rows:      rows,
		MoneyCols: []int{2, 3, 4, 5},
		Summary:   []any{"Total", "", "", "", "", report.Total.InexactFloat64()},
	})
}

// ExportFuelXLSX renders the fuel consumption report as a styled workbook.
func (s *ReportService) ExportFuelXLSX(ctx context.Context, from, to time.Time, vehicleID *uuid.UUID) ([]byte, error) {
	report, err := s.Fuel(ctx, from, to, vehicleID)
	if err != nil {
		return nil, err
	}
	rows := make([][]any, 0, len(report.Vehicles))
	for _, v := range report.Vehicles {
		rows = append(rows, []any{
			v.LicensePlate,
			v.TotalLiters,
			v.TotalCost.InexactFloat64(),
			v.AvgPricePerLiter.InexactFloat64(),
			v.RefuelCount,
		})
	}
	return export.Workbook(export.Sheet{
		Title:     "Fuel Consumption",
		Period:    PeriodLabel(from, to),
		Headers:   []string{"License Plate", "Total Liters", "Total Cost", "Avg Price per Liter", "Refuels"},
		Rows:      rows,
		MoneyCols: []int{2, 3},
		Summary:   []any{"Total", report.TotalLiters, report.TotalCost.InexactFloat64(), "", ""},
	})
}

// ExportExpensesXLSX renders the expense analysis as a styled workbook.
func (s *ReportService) ExportExpensesXLSX(ctx context.Context, from, to time.Time, vehicleID *uuid.UUID) ([]byte, error) {
	report, err := s.ExpenseAnalysis(ctx, from, to, vehicleID)
	if err != nil {
		return nil, err
	}
	rows := make([][]any, 0, len(report.ByCategory))
	for _, c := range report.ByCategory {
		rows = append(rows, []any{c.Category, c.Total.InexactFloat64(), c.Count})
	}
	return export.Workbook(export.Sheet{
		Title:     "Expense Analysis",
		Period:    PeriodLabel(from, to),
		Headers:   []string{"Category", "Total", "Count"},
		Rows:      rows,
		MoneyCols: []int{1},
		Summary:   []any{"Total", report.Total.InexactFloat64(), report.TotalCount},
	})
}

// ExportExpensesCSV renders the per-category breakdown as BOM-prefixed CSV.
// One row per category, nothing else, so parsing the file back yields exactly
// the by_category entries.
func (s *ReportService) ExportExpensesCSV(ctx context.Context, from, to time.Time, vehicleID *uuid.UUID) ([]byte, error) {
	report, err := s.ExpenseAnalysis(ctx, from, to, vehicleID)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(report.ByCategory))
	for _, c := range report.ByCategory {
		rows = append(rows, []string{c.Category, c.Total.StringFixed(2), strconv.Itoa(c.Count)})
	}
	return export.CSV([]string{"category", "total", "count"}, rows)
}

// ExportMaintenanceXLSX renders the maintenance history as a styled workbook.
func (s *ReportService) ExportMaintenanceXLSX(ctx context.Context, from, to time.Time, vehicleID *uuid.UUID) ([]byte, error) {
	report, err := s.MaintenanceHistory(ctx, from, to, vehicleID)
	if err != nil {
		return nil, err
	}
	rows := make([][]any, 0, len(report.Records))
	for _, r := range report.Records {
		rows = append(rows, []any{
			r.Date,
			r.LicensePlate,
			r.Brand + " " + r.Model,
			r.Type,
			r.Title,
			r.Status,
			r.CompletedDate,
			r.ServiceProvider,
			r.Cost.InexactFloat64(),
		})
	}
	return export.Workbook(export.Sheet{
		Title:     "Maintenance History",
		Period:    PeriodLabel(from, to),
		Headers:   []string{"Date", "License Plate", "Vehicle", "Type", "Title", "Status", "Completed", "Service Provider", "Cost"},
		Rows:      rows,
		MoneyCols: []int{8},
		Summary:   []any{"Total", "", "", "", "", "", "", "", report.Total.InexactFloat64()},
	})
}
