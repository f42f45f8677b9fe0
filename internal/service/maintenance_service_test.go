package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dzhusipov/fleet-core/internal/model"
)

func TestValidTransition(t *testing.T) {
	cases := []struct {
		from, to model.MaintenanceStatus
		ok       bool
	}{
		{model.MaintenanceScheduled, model.MaintenanceInProgress, true},
		{model.MaintenanceScheduled, model.MaintenanceCancelled, true},
		{model.MaintenanceInProgress, model.MaintenanceCompleted, true},
		{model.MaintenanceInProgress, model.MaintenanceCancelled, true},
		{model.MaintenanceScheduled, model.MaintenanceCompleted, true},
		{model.MaintenanceCompleted, model.MaintenanceInProgress, false},
		{model.MaintenanceCancelled, model.MaintenanceScheduled, false},
		{model.MaintenanceCompleted, model.MaintenanceCompleted, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, validTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}
