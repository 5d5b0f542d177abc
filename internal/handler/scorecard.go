package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/cricket-records-service/internal/service"
	"github.com/maxviazov/cricket-records-service/pkg/response"
)

type ScorecardHandler struct {
	svc service.ScorecardService
}

func NewScorecardHandler(svc service.ScorecardService) *ScorecardHandler {
	return &ScorecardHandler{svc: svc}
}

func (h *ScorecardHandler) Register(r *gin.RouterGroup) {
	r.GET("/matches/:match_id/scorecard", h.get)
}

func (h *ScorecardHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("match_id"), 10, 64)
	if err != nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "match_id", Message: "must be an integer id"}}))
		return
	}
	sc, err := h.svc.GetScorecard(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, sc)
}
