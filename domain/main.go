package domain

import (
	"github.com/playitloud/waitlist-api/config"
	"github.com/playitloud/waitlist-api/domain/monitoring"
	"github.com/playitloud/waitlist-api/domain/ops"
	"github.com/playitloud/waitlist-api/domain/pitch"
	"github.com/playitloud/waitlist-api/domain/waitlist"
)

func SetupCoreDomain(appConfig *config.ApplicationConfig) {
	appConfig.RouterService.MountController(monitoring.NewMonitoringController(appConfig.DB, appConfig.Logger, appConfig.Cache))
	appConfig.RouterService.MountController(waitlist.NewWaitlistController(appConfig.DB, appConfig.Logger, appConfig.Mailer, appConfig.Identity))
	appConfig.RouterService.MountController(pitch.NewPitchController(appConfig.DB, appConfig.Logger, appConfig.Mailer))

	// The resolver endpoint reuses the waitlist service rather than owning
	// its own repository.
	resolver := waitlist.NewWaitlistService(appConfig.Logger, waitlist.NewWaitlistRepository(appConfig.DB), appConfig.Mailer)
	appConfig.RouterService.MountController(ops.NewOpsController(resolver, appConfig.Mailer, appConfig.Logger))
}
