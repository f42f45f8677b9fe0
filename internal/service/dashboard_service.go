package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dzhusipov/fleet-core/internal/dto"
	"github.com/dzhusipov/fleet-core/internal/model"
	"github.com/dzhusipov/fleet-core/internal/repository"
)

type DashboardService struct {
	vehicles    repository.VehicleRepository
	drivers     repository.DriverRepository
	maintenance repository.MaintenanceRepository
	contracts   repository.ContractRepository
	expenses    repository.ExpenseRepository
}

func NewDashboardService(
	vehicles repository.VehicleRepository,
	drivers repository.DriverRepository,
	maintenance repository.MaintenanceRepository,
	contracts repository.ContractRepository,
	expenses repository.ExpenseRepository,
) *DashboardService {
	return &DashboardService{
		vehicles:    vehicles,
		drivers:     drivers,
		maintenance: maintenance,
		contracts:   contracts,
		expenses:    expenses,
	}
}

// Summary collects the landing-page counters: fleet composition, open work,
// contracts expiring within 30 days and the current month's spend.
func (s *DashboardService) Summary(ctx context.Context, now time.Time) (dto.DashboardResponse, error) {
	var out dto.DashboardResponse

	counts, err := s.vehicles.CountByStatus(ctx)
	if err != nil {
		return out, err
	}
	for _, n := range counts {
		out.TotalVehicles += n
	}
	out.ActiveVehicles = counts[model.VehicleActive]
	out.InMaintenance = counts[model.VehicleInMaintenance]
	if out.TotalVehicles > 0 {
		out.UtilizationRate = math.Round(float64(out.ActiveVehicles)/float64(out.TotalVehicles)*1000) / 10
	}

	drivers, err := s.drivers.Count(ctx)
	if err != nil {
		return out, err
	}
	out.TotalDrivers = int(drivers)

	open, err := s.maintenance.CountOpen(ctx)
	if err != nil {
		return out, err
	}
	out.OpenMaintenance = int(open)

	expiring, err := s.contracts.CountExpiringBy(ctx, now.AddDate(0, 0, 30))
	if err != nil {
		return out, err
	}
	out.ExpiringContracts = int(expiring)

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthExpenses, err := s.expenses.InWindow(ctx, monthStart, now, nil)
	if err != nil {
		return out, err
	}
	out.MonthExpenses = decimal.Zero
	for _, e := range monthExpenses {
		out.MonthExpenses = out.MonthExpenses.Add(e.Amount)
	}

	return out, nil
}

// ExpenseSummary buckets fleet spend by month over the trailing window.
// Months without expenses come back with a zero total so charts stay gapless.
func (s *DashboardService) ExpenseSummary(ctx context.Context, now time.Time, months int) (dto.ExpenseSummaryResponse, error) {
	if months <= 0 {
		months = 6
	}
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)

	expenses, err := s.expenses.InWindow(ctx, from, now, nil)
	if err != nil {
		return dto.ExpenseSummaryResponse{}, err
	}

	type bucket struct {
		total decimal.Decimal
		count int
	}
	byMonth := make(map[string]*bucket, months)
	out := dto.ExpenseSummaryResponse{Monthly: make([]dto.MonthlyTotal, 0, months)}
	for _, e := range expenses {
		month := e.Date.Format("2006-01") + "-01"
		b := byMonth[month]
		if b == nil {
			b = &bucket{total: decimal.Zero}
			byMonth[month] = b
		}
		b.total = b.total.Add(e.Amount)
		b.count++
		out.Total = out.Total.Add(e.Amount)
	}
	for m := from; !m.After(now); m = m.AddDate(0, 1, 0) {
		key := m.Format("2006-01-02")
		row := dto.MonthlyTotal{Month: key, Total: decimal.Zero}
		if b := byMonth[key]; b != nil {
			row.Total = b.total
			row.Count = b.count
		}
		out.Monthly = append(out.Monthly, row)
	}
	return out, nil
}

// MaintenanceStats counts trailing-year maintenance by status and sums the
// cost of completed work.
func (s *DashboardService) MaintenanceStats(ctx context.Context, now time.Time) (dto.MaintenanceStatsResponse, error) {
	records, err := s.maintenance.InWindow(ctx, now.AddDate(-1, 0, 0), now, nil)
	if err != nil {
		return dto.MaintenanceStatsResponse{}, err
	}

	counts := make(map[model.MaintenanceStatus]int, 4)
	out := dto.MaintenanceStatsResponse{CompletedCost: decimal.Zero}
	for _, m := range records {
		counts[m.Status]++
		if m.Status == model.MaintenanceCompleted && m.Cost != nil {
			out.CompletedCost = out.CompletedCost.Add(*m.Cost)
		}
	}
	for _, st := range []model.MaintenanceStatus{
		model.MaintenanceScheduled,
		model.MaintenanceInProgress,
		model.MaintenanceCompleted,
		model.MaintenanceCancelled,
	} {
		out.ByStatus = append(out.ByStatus, dto.StatusCount{Status: string(st), Count: counts[st]})
	}
	return out, nil
}

// TopVehicles ranks vehicles by all-time spend, ties broken by plate.
func (s *DashboardService) TopVehicles(ctx context.Context, limit int) ([]dto.TopVehicleRow, error) {
	if limit <= 0 {
		limit = 5
	}

	expenses, err := s.expenses.InWindow(ctx, time.Time{}, time.Time{}, nil)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.vehicles.All(ctx, nil)
	if err != nil {
		return nil, err
	}
	plates := make(map[uuid.UUID]string, len(vehicles))
	for _, v := range vehicles {
		plates[v.ID] = v.LicensePlate
	}

	byVehicle := make(map[uuid.UUID]decimal.Decimal)
	for _, e := range expenses {
		byVehicle[e.VehicleID] = byVehicle[e.VehicleID].Add(e.Amount)
	}

	rows := make([]dto.TopVehicleRow, 0, len(byVehicle))
	for id, total := range byVehicle {
		rows = append(rows, dto.TopVehicleRow{VehicleID: id, LicensePlate: plates[id], Total: total})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !a.Total.Equal(b.Total) {
			return a.Total.GreaterThan(b.Total)
		}
		return a.LicensePlate < b.LicensePlate
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}
