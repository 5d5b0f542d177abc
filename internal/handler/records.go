package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/cricket-records-service/internal/engine"
	"github.com/maxviazov/cricket-records-service/internal/service"
	"github.com/maxviazov/cricket-records-service/pkg/response"
)

type RecordsHandler struct {
	svc service.RecordsService
}

func NewRecordsHandler(svc service.RecordsService) *RecordsHandler { return &RecordsHandler{svc: svc} }

func (h *RecordsHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/records")
	{
		g.GET("", h.categories)
		g.GET("/:category", h.query)
	}
}

type categoryInfo struct {
	Category   engine.Category    `json:"category"`
	SortFields []engine.SortField `json:"sort_fields"`
}

// categories lists what can be queried and how each category can be sorted.
func (h *RecordsHandler) categories(c *gin.Context) {
	cats := engine.Categories()
	out := make([]categoryInfo, 0, len(cats))
	for _, cat := range cats {
		fields, _ := engine.SortFields(cat)
		out = append(out, categoryInfo{Category: cat, SortFields: fields})
	}
	response.WriteData(c, http.StatusOK, out)
}

func (h *RecordsHandler) query(c *gin.Context) {
	f, err := filterFromQuery(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	res, err := h.svc.Query(c.Request.Context(), engine.Category(c.Param("category")), f)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}
