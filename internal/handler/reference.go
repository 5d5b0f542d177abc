package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/cricket-records-service/internal/model"
	"github.com/maxviazov/cricket-records-service/internal/repository"
	"github.com/maxviazov/cricket-records-service/internal/service"
	"github.com/maxviazov/cricket-records-service/pkg/response"
)

type ReferenceHandler struct {
	svc service.ReferenceService
}

func NewReferenceHandler(svc service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{svc: svc}
}

func (h *ReferenceHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/reference")
	{
		g.GET("/teams", h.byMatchType(h.svc.ListTeams))
		g.GET("/grounds", h.byMatchType(h.svc.ListGrounds))
		g.GET("/countries", h.byMatchType(h.svc.ListCountries))
		g.GET("/players", h.players)
	}
}

type listFunc func(ctx context.Context, mt model.MatchType, page repository.Page) (repository.PageResult[model.RefItem], error)

func (h *ReferenceHandler) byMatchType(list listFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := pageFromQuery(c)
		if err != nil {
			response.WriteError(c, err)
			return
		}
		res, err := list(c.Request.Context(), model.MatchType(c.Query("match_type")), page)
		if err != nil {
			response.WriteError(c, err)
			return
		}
		response.WriteData(c, http.StatusOK, res)
	}
}

func (h *ReferenceHandler) players(c *gin.Context) {
	page, err := pageFromQuery(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	res, err := h.svc.FindPlayers(c.Request.Context(), c.Query("name"), page)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}
