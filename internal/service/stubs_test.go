package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dzhusipov/fleet-core/internal/dto"
	"github.com/dzhusipov/fleet-core/internal/model"
	"github.com/dzhusipov/fleet-core/internal/repository"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubVehicleRepo is an in-memory VehicleRepository for testing.
type stubVehicleRepo struct {
	vehicles map[uuid.UUID]*model.Vehicle
}

func newStubVehicleRepo(vehicles ...*model.Vehicle) *stubVehicleRepo {
	r := &stubVehicleRepo{vehicles: make(map[uuid.UUID]*model.Vehicle)}
	for _, v := range vehicles {
		if v.ID == uuid.Nil {
			v.ID = uuid.New()
		}
		r.vehicles[v.ID] = v
	}
	return r
}

func (r *stubVehicleRepo) Create(_ context.Context, v *model.Vehicle) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.vehicles[v.ID] = v
	return nil
}

func (r *stubVehicleRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Vehicle, error) {
	v, ok := r.vehicles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return v, nil
}

func (r *stubVehicleRepo) GetByPlate(_ context.Context, plate string) (*model.Vehicle, error) {
	for _, v := range r.vehicles {
		if v.LicensePlate == plate {
			return v, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubVehicleRepo) GetByVIN(_ context.Context, vin string) (*model.Vehicle, error) {
	for _, v := range r.vehicles {
		if v.VIN == vin {
			return v, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubVehicleRepo) GetForUpdate(_ context.Context, _ *gorm.DB, id uuid.UUID) (*model.Vehicle, error) {
	v, ok := r.vehicles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return v, nil
}

func (r *stubVehicleRepo) List(_ context.Context, _ dto.VehicleFilter) ([]model.Vehicle, int64, error) {
	return nil, 0, nil
}

func (r *stubVehicleRepo) All(_ context.Context, vehicleID *uuid.UUID) ([]model.Vehicle, error) {
	var out []model.Vehicle
	for _, v := range r.vehicles {
		if vehicleID != nil && v.ID != *vehicleID {
			continue
		}
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LicensePlate < out[j].LicensePlate })
	return out, nil
}

func (r *stubVehicleRepo) Update(_ context.Context, v *model.Vehicle) error {
	r.vehicles[v.ID] = v
	return nil
}

func (r *stubVehicleRepo) UpdateMileage(_ context.Context, _ *gorm.DB, id uuid.UUID, mileage int) error {
	v, ok := r.vehicles[id]
	if !ok {
		return repository.ErrNotFound
	}
	v.CurrentMileage = mileage
	return nil
}

func (r *stubVehicleRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.vehicles[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.vehicles, id)
	return nil
}

func (r *stubVehicleRepo) CountByStatus(_ context.Context) (map[model.VehicleStatus]int, error) {
	out := make(map[model.VehicleStatus]int)
	for _, v := range r.vehicles {
		out[v.Status]++
	}
	return out, nil
}

func (r *stubVehicleRepo) DB() *gorm.DB { return nil }

var _ repository.VehicleRepository = (*stubVehicleRepo)(nil)

// stubExpenseRepo serves expenses to the report tests.
type stubExpenseRepo struct {
	expenses []model.Expense
}

func (r *stubExpenseRepo) Create(_ context.Context, e *model.Expense) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.expenses = append(r.expenses, *e)
	return nil
}

func (r *stubExpenseRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Expense, error) {
	for i := range r.expenses {
		if r.expenses[i].ID == id {
			return &r.expenses[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubExpenseRepo) List(_ context.Context, _ dto.ExpenseFilter) ([]model.Expense, int64, error) {
	return nil, 0, nil
}

func (r *stubExpenseRepo) Update(_ context.Context, _ *model.Expense) error { return nil }
func (r *stubExpenseRepo) Delete(_ context.Context, _ uuid.UUID) error      { return nil }

func (r *stubExpenseRepo) InWindow(_ context.Context, from, to time.Time, vehicleID *uuid.UUID) ([]model.Expense, error) {
	var out []model.Expense
	for _, e := range r.expenses {
		if !from.IsZero() && e.Date.Before(from) {
			continue
		}
		if !to.IsZero() && e.Date.After(to) {
			continue
		}
		if vehicleID != nil && e.VehicleID != *vehicleID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

var _ repository.ExpenseRepository = (*stubExpenseRepo)(nil)

// stubMaintenanceRepo serves maintenance records to the report tests.
type stubMaintenanceRepo struct {
	records []model.MaintenanceRecord
}

func (r *stubMaintenanceRepo) Create(_ context.Context, m *model.MaintenanceRecord) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.records = append(r.records, *m)
	return nil
}

func (r *stubMaintenanceRepo) GetByID(_ context.Context, id uuid.UUID) (*model.MaintenanceRecord, error) {
	for i := range r.records {
		if r.records[i].ID == id {
			return &r.records[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubMaintenanceRepo) List(_ context.Context, _ dto.MaintenanceFilter) ([]model.MaintenanceRecord, int64, error) {
	return nil, 0, nil
}

func (r *stubMaintenanceRepo) Update(_ context.Context, m *model.MaintenanceRecord) error {
	for i := range r.records {
		if r.records[i].ID == m.ID {
			r.records[i] = *m
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *stubMaintenanceRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (r *stubMaintenanceRepo) Open(_ context.Context) ([]model.MaintenanceRecord, error) {
	return nil, nil
}

func (r *stubMaintenanceRepo) CountOpen(_ context.Context) (int64, error) { return 0, nil }

func (r *stubMaintenanceRepo) ScheduledBetween(_ context.Context, _, _ time.Time) ([]model.MaintenanceRecord, error) {
	return nil, nil
}

func (r *stubMaintenanceRepo) InWindow(_ context.Context, from, to time.Time, vehicleID *uuid.UUID) ([]model.MaintenanceRecord, error) {
	var out []model.MaintenanceRecord
	for _, m := range r.records {
		if m.ScheduledDate != nil {
			if !from.IsZero() && m.ScheduledDate.Before(from) {
				continue
			}
			if !to.IsZero() && m.ScheduledDate.After(to) {
				continue
			}
		}
		if vehicleID != nil && m.VehicleID != *vehicleID {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

var _ repository.MaintenanceRepository = (*stubMaintenanceRepo)(nil)

// stubMileageRepo records odometer readings in memory.
type stubMileageRepo struct {
	logs []model.MileageLog
}

func (r *stubMileageRepo) Insert(_ context.Context, _ *gorm.DB, m *model.MileageLog) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.logs = append(r.logs, *m)
	return nil
}

func (r *stubMileageRepo) Latest(_ context.Context, _ *gorm.DB, vehicleID uuid.UUID) (*model.MileageLog, error) {
	var latest *model.MileageLog
	for i := range r.logs {
		l := &r.logs[i]
		if l.VehicleID != vehicleID {
			continue
		}
		if latest == nil || l.Mileage > latest.Mileage {
			latest = l
		}
	}
	if latest == nil {
		return nil, repository.ErrNotFound
	}
	return latest, nil
}

func (r *stubMileageRepo) List(_ context.Context, _ dto.MileageFilter) ([]model.MileageLog, int64, error) {
	return nil, 0, nil
}

func (r *stubMileageRepo) DB() *gorm.DB { return nil }

var _ repository.MileageRepository = (*stubMileageRepo)(nil)

// stubContractRepo implements the expiry sweep against an in-memory table.
type stubContractRepo struct {
	contracts map[uuid.UUID]*model.Contract
}

func newStubContractRepo(contracts ...*model.Contract) *stubContractRepo {
	r := &stubContractRepo{contracts: make(map[uuid.UUID]*model.Contract)}
	for _, c := range contracts {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		r.contracts[c.ID] = c
	}
	return r
}

func (r *stubContractRepo) Create(_ context.Context, c *model.Contract) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.contracts[c.ID] = c
	return nil
}

func (r *stubContractRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Contract, error) {
	c, ok := r.contracts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return c, nil
}

func (r *stubContractRepo) List(_ context.Context, _ dto.ContractFilter) ([]model.Contract, int64, error) {
	return nil, 0, nil
}

func (r *stubContractRepo) Update(_ context.Context, c *model.Contract) error {
	r.contracts[c.ID] = c
	return nil
}

func (r *stubContractRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (r *stubContractRepo) ExpireOverdue(_ context.Context, today time.Time) ([]model.Contract, error) {
	var expired []model.Contract
	for _, c := range r.contracts {
		if c.Status == model.ContractActive && c.EndDate.Before(today) {
			c.Status = model.ContractExpired
			expired = append(expired, *c)
		}
	}
	return expired, nil
}

func (r *stubContractRepo) ExpiringBetween(_ context.Context, _, _ time.Time) ([]model.Contract, error) {
	return nil, nil
}

func (r *stubContractRepo) CountExpiringBy(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

var _ repository.ContractRepository = (*stubContractRepo)(nil)

// stubUserRepo is keyed by email for auth tests.
type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo(users ...*model.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
	for _, u := range users {
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
		r.users[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) { return nil, nil }

func (r *stubUserRepo) ByRoles(_ context.Context, roles ...model.Role) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		if !u.Active {
			continue
		}
		for _, role := range roles {
			if u.Role == role {
				out = append(out, *u)
				break
			}
		}
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)
