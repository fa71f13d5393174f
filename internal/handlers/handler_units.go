package handlers

import (
	"net/http"

	"github.com/Bugian/unit-conversion-api/internal/core/domain"
	"github.com/Bugian/unit-conversion-api/internal/dto"
	"github.com/gin-gonic/gin"
)

// listUnits godoc
// @Summary List supported units
// @Description Returns the unit symbols accepted for each unit type
// @Tags units
// @Produce  json
// @Success 200 {object} map[string][]string
// @Router /units [get]
func listUnits(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToUnitsResponse(domain.UnitTypes()))
}
