package http

import (
	"net/http"

	"parts-service/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetSource(c *gin.Context) {
	name, err := h.vehicles.SourceName(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, SourceResponse{Source: name})
}

func (h *Handler) GetMakes(c *gin.Context) {
	makes, err := h.vehicles.GetMakes(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, makes)
}

func (h *Handler) GetYears(c *gin.Context) {
	makeID, ok := intParam(c, "makeId")
	if !ok {
		return
	}
	years, err := h.vehicles.GetYearsForMake(c.Request.Context(), makeID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, years)
}

// GetModels lists a make's models, narrowed to one model year when ?year= is set.
func (h *Handler) GetModels(c *gin.Context) {
	makeID, ok := intParam(c, "makeId")
	if !ok {
		return
	}
	year, byYear, ok := intQuery(c, "year")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	var models []domain.VehicleModel
	var err error
	if byYear {
		models, err = h.vehicles.GetModelsForMakeAndYear(ctx, makeID, year)
	} else {
		models, err = h.vehicles.GetModelsForMake(ctx, makeID)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models)
}

func (h *Handler) GetEngines(c *gin.Context) {
	makeID, ok := intParam(c, "makeId")
	if !ok {
		return
	}
	year, ok := intParam(c, "year")
	if !ok {
		return
	}
	modelID, ok := intParam(c, "modelId")
	if !ok {
		return
	}
	engines, err := h.vehicles.GetEnginesForModel(c.Request.Context(), makeID, year, modelID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, engines)
}
