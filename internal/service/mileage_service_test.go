package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dzhusipov/fleet-core/internal/dto"
	"github.com/dzhusipov/fleet-core/internal/model"
)

func mileageFixture(current int) (*MileageService, *stubMileageRepo, *model.Vehicle) {
	v := &model.Vehicle{LicensePlate: "KZ123ABC", CurrentMileage: current, Status: model.VehicleActive}
	vehicles := newStubVehicleRepo(v)
	logs := &stubMileageRepo{}
	svc := NewMileageService(logs, vehicles, nil, zerolog.Nop())
	return svc, logs, v
}

func TestRecordRejectsDecrease(t *testing.T) {
	svc, logs, v := mileageFixture(50000)

	_, err := svc.Record(context.Background(), dto.CreateMileageLogRequest{
		VehicleID: v.ID,
		Mileage:   49000,
		Date:      dto.NewDate(day("2026-08-01")),
	}, nil)

	var decErr *MileageDecreaseError
	require.True(t, errors.As(err, &decErr))
	assert.Equal(t, 50000, decErr.Latest)
	assert.Equal(t, 49000, decErr.Proposed)

	// nothing persisted
	assert.Empty(t, logs.logs)
	assert.Equal(t, 50000, v.CurrentMileage)
}

func TestRecordAcceptsAndUpdatesOdometer(t *testing.T) {
	svc, logs, v := mileageFixture(50000)

	resp, err := svc.Record(context.Background(), dto.CreateMileageLogRequest{
		VehicleID: v.ID,
		Mileage:   50200,
		Date:      dto.NewDate(day("2026-08-01")),
	}, nil)
	require.NoError(t, err)

	assert.False(t, resp.Flagged)
	require.NotNil(t, resp.Distance)
	assert.Equal(t, 200, *resp.Distance)
	require.Len(t, logs.logs, 1)
	assert.Equal(t, 50200, v.CurrentMileage)
}

func TestRecordFlagsLargeJump(t *testing.T) {
	svc, logs, v := mileageFixture(50000)

	resp, err := svc.Record(context.Background(), dto.CreateMileageLogRequest{
		VehicleID: v.ID,
		Mileage:   51500,
		Date:      dto.NewDate(day("2026-08-01")),
	}, nil)
	require.NoError(t, err)

	// flagged but still accepted
	assert.True(t, resp.Flagged)
	require.NotNil(t, resp.Distance)
	assert.Equal(t, 1500, *resp.Distance)
	require.Len(t, logs.logs, 1)
	assert.Equal(t, 51500, v.CurrentMileage)
}

func TestRecordBaselineUsesLatestLog(t *testing.T) {
	svc, logs, v := mileageFixture(50000)
	logs.logs = append(logs.logs, model.MileageLog{VehicleID: v.ID, Mileage: 52000, Date: day("2026-07-01")})

	_, err := svc.Record(context.Background(), dto.CreateMileageLogRequest{
		VehicleID: v.ID,
		Mileage:   51000,
		Date:      dto.NewDate(day("2026-08-01")),
	}, nil)

	var decErr *MileageDecreaseError
	require.True(t, errors.As(err, &decErr))
	assert.Equal(t, 52000, decErr.Latest)
	require.Len(t, logs.logs, 1)
}

func TestRecordBulkPartialAcceptance(t *testing.T) {
	svc, logs, v := mileageFixture(50000)

	result, err := svc.RecordBulk(context.Background(), dto.BulkMileageRequest{
		// entry 1 drops below the baseline, entry 2 names an unknown vehicle
		Entries: []dto.CreateMileageLogRequest{
			{VehicleID: v.ID, Mileage: 50100, Date: dto.NewDate(day("2026-08-01"))},
			{VehicleID: v.ID, Mileage: 49000, Date: dto.NewDate(day("2026-08-02"))},
			{VehicleID: uuid.New(), Mileage: 100, Date: dto.NewDate(day("2026-08-02"))},
			{VehicleID: v.ID, Mileage: 50300, Date: dto.NewDate(day("2026-08-03"))},
		},
	}, nil)
	require.NoError(t, err)

	require.Len(t, result.Accepted, 2)
	require.Len(t, result.Rejected, 2)
	assert.Equal(t, 1, result.Rejected[0].Index)
	assert.Equal(t, 2, result.Rejected[1].Index)
	require.Len(t, logs.logs, 2)
	assert.Equal(t, 50300, v.CurrentMileage)
}

func TestRecordEqualReadingAllowed(t *testing.T) {
	svc, logs, v := mileageFixture(50000)

	resp, err := svc.Record(context.Background(), dto.CreateMileageLogRequest{
		VehicleID: v.ID,
		Mileage:   50000,
		Date:      dto.NewDate(day("2026-08-01")),
	}, nil)
	require.NoError(t, err)

	assert.False(t, resp.Flagged)
	require.NotNil(t, resp.Distance)
	assert.Equal(t, 0, *resp.Distance)
	require.Len(t, logs.logs, 1)
	assert.Equal(t, 50000, v.CurrentMileage)
}
