package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dzhusipov/fleet-core/internal/dto"
	"github.com/dzhusipov/fleet-core/internal/model"
	"github.com/dzhusipov/fleet-core/internal/repository"
)

// stubDriverRepo only resolves lookups; the rest is unused by vehicle tests.
type stubDriverRepo struct {
	drivers map[uuid.UUID]*model.Driver
}

func newStubDriverRepo(drivers ...*model.Driver) *stubDriverRepo {
	r := &stubDriverRepo{drivers: make(map[uuid.UUID]*model.Driver)}
	for _, d := range drivers {
		if d.ID == uuid.Nil {
			d.ID = uuid.New()
		}
		r.drivers[d.ID] = d
	}
	return r
}

func (r *stubDriverRepo) Create(_ context.Context, d *model.Driver) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.drivers[d.ID] = d
	return nil
}

func (r *stubDriverRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Driver, error) {
	d, ok := r.drivers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return d, nil
}

func (r *stubDriverRepo) List(_ context.Context, _ dto.DriverFilter) ([]model.Driver, int64, error) {
	return nil, 0, nil
}

func (r *stubDriverRepo) Update(_ context.Context, _ *model.Driver) error { return nil }
func (r *stubDriverRepo) Delete(_ context.Context, _ uuid.UUID) error     { return nil }
func (r *stubDriverRepo) Count(_ context.Context) (int64, error)          { return 0, nil }

func (r *stubDriverRepo) LicenseExpiringBy(_ context.Context, _ time.Time) ([]model.Driver, error) {
	return nil, nil
}

func (r *stubDriverRepo) MedicalExpiringBy(_ context.Context, _ time.Time) ([]model.Driver, error) {
	return nil, nil
}

var _ repository.DriverRepository = (*stubDriverRepo)(nil)

func validCreateVehicle() dto.CreateVehicleRequest {
	return dto.CreateVehicleRequest{
		LicensePlate: "KZ777AA",
		VIN:          "JT2BF22K1W0123456",
		Brand:        "Toyota",
		Model:        "Camry",
		Year:         2022,
		BodyType:     "sedan",
		FuelType:     "gasoline",
		Transmission: "automatic",
	}
}

func TestCreateVehicleRejectsDuplicatePlate(t *testing.T) {
	existing := &model.Vehicle{LicensePlate: "KZ777AA", VIN: "XXXXXXXXXXXXXXXXX"}
	svc := NewVehicleService(newStubVehicleRepo(existing), newStubDriverRepo())

	_, err := svc.Create(context.Background(), validCreateVehicle())
	assert.ErrorIs(t, err, ErrDuplicatePlate)
}

func TestCreateVehicleRejectsDuplicateVIN(t *testing.T) {
	existing := &model.Vehicle{LicensePlate: "OTHER01", VIN: "JT2BF22K1W0123456"}
	svc := NewVehicleService(newStubVehicleRepo(existing), newStubDriverRepo())

	_, err := svc.Create(context.Background(), validCreateVehicle())
	assert.ErrorIs(t, err, ErrDuplicateVIN)
}

func TestCreateVehicleRejectsUnknownEnum(t *testing.T) {
	svc := NewVehicleService(newStubVehicleRepo(), newStubDriverRepo())

	req := validCreateVehicle()
	req.BodyType = "hovercraft"
	_, err := svc.Create(context.Background(), req)

	var enumErr *InvalidEnumError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "body_type", enumErr.Field)
}

func TestUpdateVehicleTriState(t *testing.T) {
	notes := "old notes"
	dept := "logistics"
	v := &model.Vehicle{
		LicensePlate: "KZ111BB",
		VIN:          "JT2BF22K1W0999999",
		Brand:        "Kia",
		Notes:        &notes,
		Department:   &dept,
		Status:       model.VehicleActive,
	}
	repo := newStubVehicleRepo(v)
	svc := NewVehicleService(repo, newStubDriverRepo())

	// absent fields untouched, explicit null clears, value replaces
	resp, err := svc.Update(context.Background(), v.ID, dto.UpdateVehicleRequest{
		Notes:  dto.Null[string](),
		Status: dto.Some("in_maintenance"),
	})
	require.NoError(t, err)

	assert.Nil(t, resp.Notes)
	assert.Equal(t, "in_maintenance", resp.Status)
	require.NotNil(t, resp.Department)
	assert.Equal(t, "logistics", *resp.Department)
	assert.Equal(t, "Kia", resp.Brand)
}

func TestUpdateVehicleClearsDriverAssignment(t *testing.T) {
	driver := &model.Driver{FullName: "Test Driver"}
	drivers := newStubDriverRepo(driver)
	v := &model.Vehicle{LicensePlate: "KZ222CC", VIN: "JT2BF22K1W0888888", AssignedDriverID: &driver.ID}
	svc := NewVehicleService(newStubVehicleRepo(v), drivers)

	resp, err := svc.Update(context.Background(), v.ID, dto.UpdateVehicleRequest{
		AssignedDriverID: dto.Null[uuid.UUID](),
	})
	require.NoError(t, err)
	assert.Nil(t, resp.AssignedDriverID)
}

func TestUpdateVehicleUnknownDriver(t *testing.T) {
	v := &model.Vehicle{LicensePlate: "KZ333DD", VIN: "JT2BF22K1W0777777"}
	svc := NewVehicleService(newStubVehicleRepo(v), newStubDriverRepo())

	_, err := svc.Update(context.Background(), v.ID, dto.UpdateVehicleRequest{
		AssignedDriverID: dto.Some(uuid.New()),
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
