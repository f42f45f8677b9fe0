package worker

// Background goroutine that periodically expires overdue contracts and raises
// reminder notifications for upcoming maintenance, contract expiries and
// driver document expiries.

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dzhusipov/fleet-core/internal/model"
	"github.com/dzhusipov/fleet-core/internal/repository"
	"github.com/dzhusipov/fleet-core/internal/service"
)

const (
	maintenanceReminderDays = 14
	contractReminderDays    = 30
	driverDocReminderDays   = 30
)

var managerRoles = []model.Role{model.RoleAdmin, model.RoleFleetManager}

// SweeperConfig holds all dependencies for the sweep goroutine.
type SweeperConfig struct {
	Contracts     *service.ContractService
	Notifications *service.NotificationService
	ContractRepo  repository.ContractRepository
	Maintenance   repository.MaintenanceRepository
	Drivers       repository.DriverRepository
	Interval      time.Duration
}

// StartSweeper launches a goroutine that runs one sweep immediately and then
// one per interval. It respects the context for graceful shutdown.
func StartSweeper(ctx context.Context, cfg SweeperConfig) {
	go func() {
		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()

		log.Info().Dur("interval", cfg.Interval).Msg("sweeper: started")
		runSweep(ctx, cfg)

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("sweeper: shutting down")
				return
			case <-ticker.C:
				runSweep(ctx, cfg)
			}
		}
	}()
}

func runSweep(ctx context.Context, cfg SweeperConfig) {
	now := time.Now()

	expired, err := cfg.Contracts.ExpireOverdue(ctx, now)
	if err != nil {
		log.Error().Err(err).Msg("sweeper: contract expiry failed")
	} else if expired > 0 {
		log.Info().Int("count", expired).Msg("sweeper: contracts expired")
	}

	remindMaintenance(ctx, cfg, now)
	remindContracts(ctx, cfg, now)
	remindDriverDocs(ctx, cfg, now)
}

func remindMaintenance(ctx context.Context, cfg SweeperConfig, now time.Time) {
	due, err := cfg.Maintenance.ScheduledBetween(ctx, now, now.AddDate(0, 0, maintenanceReminderDays))
	if err != nil {
		log.Error().Err(err).Msg("sweeper: maintenance reminder query failed")
		return
	}
	for _, m := range due {
		date := ""
		if m.ScheduledDate != nil {
			date = m.ScheduledDate.Format("2006-01-02")
		}
		err := cfg.Notifications.NotifyRoles(ctx, managerRoles,
			model.NotifyMaintenanceDue,
			"notification.title.maintenance",
			"notification.maintenance_due",
			"maintenance", m.ID,
			m.Title, date,
		)
		if err != nil {
			log.Error().Err(err).Str("maintenance_id", m.ID.String()).
				Msg("sweeper: maintenance reminder failed")
		}
	}
}

func remindContracts(ctx context.Context, cfg SweeperConfig, now time.Time) {
	expiring, err := cfg.ContractRepo.ExpiringBetween(ctx, now, now.AddDate(0, 0, contractReminderDays))
	if err != nil {
		log.Error().Err(err).Msg("sweeper: contract reminder query failed")
		return
	}
	for _, c := range expiring {
		number := string(c.Type)
		if c.ContractNumber != nil {
			number = *c.ContractNumber
		}
		err := cfg.Notifications.NotifyRoles(ctx, managerRoles,
			model.NotifyContractExpiring,
			"notification.title.contract",
			"notification.contract_expiring",
			"contract", c.ID,
			number, c.Contractor, c.EndDate.Format("2006-01-02"),
		)
		if err != nil {
			log.Error().Err(err).Str("contract_id", c.ID.String()).
				Msg("sweeper: contract reminder failed")
		}
	}
}

func remindDriverDocs(ctx context.Context, cfg SweeperConfig, now time.Time) {
	by := now.AddDate(0, 0, driverDocReminderDays)

	licenses, err := cfg.Drivers.LicenseExpiringBy(ctx, by)
	if err != nil {
		log.Error().Err(err).Msg("sweeper: license reminder query failed")
	} else {
		for _, d := range licenses {
			err := cfg.Notifications.NotifyRoles(ctx, managerRoles,
				model.NotifyLicenseExpiring,
				"notification.title.license",
				"notification.license_expiring",
				"driver", d.ID,
				d.FullName, d.LicenseExpiry.Format("2006-01-02"),
			)
			if err != nil {
				log.Error().Err(err).Str("driver_id", d.ID.String()).
					Msg("sweeper: license reminder failed")
			}
		}
	}

	medicals, err := cfg.Drivers.MedicalExpiringBy(ctx, by)
	if err != nil {
		log.Error().Err(err).Msg("sweeper: medical reminder query failed")
		return
	}
	for _, d := range medicals {
		err := cfg.Notifications.NotifyRoles(ctx, managerRoles,
			model.NotifyMedicalExpiring,
			"notification.title.medical",
			"notification.medical_expiring",
			"driver", d.ID,
			d.FullName, d.MedicalExpiry.Format("2006-01-02"),
		)
		if err != nil {
			log.Error().Err(err).Str("driver_id", d.ID.String()).
				Msg("sweeper: medical reminder failed")
		}
	}
}
