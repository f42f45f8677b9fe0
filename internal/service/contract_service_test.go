package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dzhusipov/fleet-core/internal/model"
)

func TestExpireOverdue(t *testing.T) {
	today := day("2026-08-31")

	repo := newStubContractRepo(
		&model.Contract{Status: model.ContractActive, EndDate: day("2026-08-30")},
		&model.Contract{Status: model.ContractActive, EndDate: day("2026-01-15")},
		&model.Contract{Status: model.ContractActive, EndDate: day("2026-12-31")},
		&model.Contract{Status: model.ContractExpired, EndDate: day("2025-06-01")},
	)
	svc := NewContractService(repo, newStubVehicleRepo(), zerolog.Nop())

	n, err := svc.ExpireOverdue(context.Background(), today)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// idempotent: a second sweep finds nothing left to expire
	n, err = svc.ExpireOverdue(context.Background(), today)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	for _, c := range repo.contracts {
		if c.EndDate.Before(today) {
			assert.Equal(t, model.ContractExpired, c.Status)
		} else {
			assert.Equal(t, model.ContractActive, c.Status)
		}
	}
}

// A contract ending exactly today is still active; only strictly past end
// dates expire.
func TestExpireOverdueKeepsSameDayContract(t *testing.T) {
	today := day("2026-08-31")
	repo := newStubContractRepo(
		&model.Contract{Status: model.ContractActive, EndDate: today},
	)
	svc := NewContractService(repo, newStubVehicleRepo(), zerolog.Nop())

	n, err := svc.ExpireOverdue(context.Background(), today)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

// The sweep runs at arbitrary wall-clock times; a mid-day reference must not
// expire a contract whose end date is today's midnight.
func TestExpireOverdueTruncatesReferenceToMidnight(t *testing.T) {
	repo := newStubContractRepo(
		&model.Contract{Status: model.ContractActive, EndDate: day("2026-08-31")},
		&model.Contract{Status: model.ContractActive, EndDate: day("2026-08-30")},
	)
	svc := NewContractService(repo, newStubVehicleRepo(), zerolog.Nop())

	midDay := day("2026-08-31").Add(14*time.Hour + 35*time.Minute)
	n, err := svc.ExpireOverdue(context.Background(), midDay)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	for _, c := range repo.contracts {
		if c.EndDate.Equal(day("2026-08-31")) {
			assert.Equal(t, model.ContractActive, c.Status)
		} else {
			assert.Equal(t, model.ContractExpired, c.Status)
		}
	}
}
