package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportQuery is the common filter of every report: an optional date window
// and an optional single-vehicle scope.
type ReportQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	VehicleID string `form:"vehicle_id"`
}

// VehicleTCO is one row of the total-cost-of-ownership report. TCO is the
// purchase price plus every expense in the window; completed maintenance cost
// is reported alongside but not summed in. Vehicles with no expenses still get
// a row with zero totals.
type VehicleTCO struct {
	VehicleID        uuid.UUID       `json:"vehicle_id"`
	LicensePlate     string          `json:"license_plate"`
	Brand            string          `json:"brand"`
	Model            string          `json:"model"`
	PurchasePrice    decimal.Decimal `json:"purchase_price"`
	ExpenseTotal     decimal.Decimal `json:"expense_total"`
	MaintenanceTotal decimal.Decimal `json:"maintenance_total"`
	TCO              decimal.Decimal `json:"tco"`
}

type TCOReport struct {
	Vehicles []VehicleTCO    `json:"vehicles"`
	Total    decimal.Decimal `json:"total"`
}

// StatusCount is one slice of the utilization breakdown.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type UtilizationReport struct {
	TotalVehicles int           `json:"total_vehicles"`
	ByStatus      []StatusCount `json:"by_status"`
	// Percentage of active vehicles, rounded to one decimal place.
	UtilizationRate float64 `json:"utilization_rate"`
}

// VehicleFuel is one row of the fuel-consumption report. Only fuel-category
// expenses with a recorded liters value contribute.
type VehicleFuel struct {
	VehicleID        uuid.UUID       `json:"vehicle_id"`
	LicensePlate     string          `json:"license_plate"`
	TotalLiters      float64         `json:"total_liters"`
	TotalCost        decimal.Decimal `json:"total_cost"`
	RefuelCount      int             `json:"refuel_count"`
	AvgPricePerLiter decimal.Decimal `json:"avg_price_per_liter"`
}

type FuelReport struct {
	Vehicles    []VehicleFuel   `json:"vehicles"`
	TotalLiters float64         `json:"total_liters"`
	TotalCost   decimal.Decimal `json:"total_cost"`
}

type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

type MonthlyTotal struct {
	// Month as the first day of the calendar month, "YYYY-MM-01".
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

type ExpenseAnalysis struct {
	ByCategory []CategoryTotal `json:"by_category"`
	Monthly    []MonthlyTotal  `json:"monthly"`
	Total      decimal.Decimal `json:"total"`
	TotalCount int             `json:"total_count"`
}

// MaintenanceHistoryRow is one line of the maintenance-history report,
// ordered by scheduled date descending. Unset dates render as empty strings
// and unset costs as zero.
type MaintenanceHistoryRow struct {
	Date            string          `json:"date"`
	LicensePlate    string          `json:"license_plate"`
	Brand           string          `json:"brand"`
	Model           string          `json:"model"`
	Type            string          `json:"type"`
	Title           string          `json:"title"`
	Status          string          `json:"status"`
	CompletedDate   string          `json:"completed_date"`
	ServiceProvider string          `json:"service_provider"`
	Cost            decimal.Decimal `json:"cost"`
}

type MaintenanceHistoryReport struct {
	Records []MaintenanceHistoryRow `json:"records"`
	Total   decimal.Decimal         `json:"total"`
}

// DashboardResponse aggregates the landing-page counters.
type DashboardResponse struct {
	TotalVehicles     int             `json:"total_vehicles"`
	ActiveVehicles    int             `json:"active_vehicles"`
	InMaintenance     int             `json:"in_maintenance"`
	TotalDrivers      int             `json:"total_drivers"`
	OpenMaintenance   int             `json:"open_maintenance"`
	ExpiringContracts int             `json:"expiring_contracts"`
	MonthExpenses     decimal.Decimal `json:"month_expenses"`
	UtilizationRate   float64         `json:"utilization_rate"`
}

// ExpenseSummaryResponse feeds the dashboard spend chart: one bucket per
// month, zero months included.
type ExpenseSummaryResponse struct {
	Monthly []MonthlyTotal  `json:"monthly"`
	Total   decimal.Decimal `json:"total"`
}

type MaintenanceStatsResponse struct {
	ByStatus      []StatusCount   `json:"by_status"`
	CompletedCost decimal.Decimal `json:"completed_cost"`
}

type TopVehicleRow struct {
	VehicleID    uuid.UUID       `json:"vehicle_id"`
	LicensePlate string          `json:"license_plate"`
	Total        decimal.Decimal `json:"total"`
}
