package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory is the grouping key of the expense-analysis report.
type ExpenseCategory string

const (
	ExpenseFuel      ExpenseCategory = "fuel"
	ExpenseParts     ExpenseCategory = "parts"
	ExpenseService   ExpenseCategory = "service"
	ExpenseInsurance ExpenseCategory = "insurance"
	ExpenseTax       ExpenseCategory = "tax"
	ExpenseFine      ExpenseCategory = "fine"
	ExpenseParking   ExpenseCategory = "parking"
	ExpenseToll      ExpenseCategory = "toll"
	ExpenseWashing   ExpenseCategory = "washing"
	ExpenseOther     ExpenseCategory = "other"
)

func (c ExpenseCategory) Valid() bool {
	switch c {
	case ExpenseFuel, ExpenseParts, ExpenseService, ExpenseInsurance, ExpenseTax,
		ExpenseFine, ExpenseParking, ExpenseToll, ExpenseWashing, ExpenseOther:
		return true
	}
	return false
}

type Currency string

const (
	CurrencyKZT Currency = "KZT"
	CurrencyRUB Currency = "RUB"
	CurrencyUSD Currency = "USD"
	CurrencyTRY Currency = "TRY"
)

func (c Currency) Valid() bool {
	switch c {
	case CurrencyKZT, CurrencyRUB, CurrencyUSD, CurrencyTRY:
		return true
	}
	return false
}

// Expense is a single cost line item. Fuel-category expenses additionally
// carry the refuel sub-fields used by the fuel-consumption report.
type Expense struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VehicleID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	DriverID    *uuid.UUID      `gorm:"type:uuid"`
	Category    ExpenseCategory `gorm:"type:varchar(20);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency    Currency        `gorm:"type:varchar(3);not null;default:'KZT'"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Description *string         `gorm:"type:text"`
	Vendor      *string         `gorm:"type:varchar(300)"`

	// Fuel sub-fields
	FuelLiters        *float64
	FuelPricePerLiter *decimal.Decimal `gorm:"type:decimal(8,2)"`
	FuelType          *string          `gorm:"type:varchar(20)"`
	MileageAtRefuel   *int

	CreatedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Vehicle *Vehicle `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
	Driver  *Driver  `gorm:"foreignKey:DriverID;constraint:OnDelete:SET NULL"`
}
