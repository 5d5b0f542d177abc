package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/maxviazov/cricket-records-service/internal/service"
)

// Services bundles the use cases the HTTP API exposes.
type Services struct {
	Records   service.RecordsService
	Scorecard service.ScorecardService
	Reference service.ReferenceService
}

// Register mounts all public routes on the given engine.
// A nil service leaves its routes unmounted, which keeps health-only tests small.
func Register(r *gin.Engine, repo Pinger, svcs Services) {
	h := NewHealthHandler(repo)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	api := r.Group(APIV1Prefix) // Versioning added via single source of truth
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		if svcs.Records != nil {
			NewRecordsHandler(svcs.Records).Register(api)
		}
		if svcs.Scorecard != nil {
			NewScorecardHandler(svcs.Scorecard).Register(api)
		}
		if svcs.Reference != nil {
			NewReferenceHandler(svcs.Reference).Register(api)
		}
	}
}
