package service

import "github.com/alexanderramin/fuelplan/internal/app"

// PlannerService is the full set of planning use cases exposed to the CLI
// and the HTTP API.
type PlannerService interface {
	app.TargetsUseCase
	app.SkeletonUseCase
	app.PlanUseCase
	app.VerifyNamingUseCase
}
