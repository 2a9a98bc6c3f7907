package publicapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tripveda/tripveda/internal/domain"
	"github.com/tripveda/tripveda/internal/webserver"
)

func registerTaxiRoutes() {
	webserver.PubGET("/taxi/vehicles", listActiveVehicles)
	webserver.PubGET("/taxi/routes", listActiveRoutes)
}

func listActiveVehicles(c echo.Context) error {
	db := GetDB(c).Where("is_active = true")
	if t := strings.TrimSpace(c.QueryParam("type")); t != "" {
		db = db.Where("type = ?", t)
	}
	var rows []domain.Vehicle
	if err := db.Order("seats ASC").Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load vehicles")
	}
	return ok(c, rows)
}

func listActiveRoutes(c echo.Context) error {
	db := GetDB(c).Where("is_active = true")
	if origin := strings.TrimSpace(c.QueryParam("origin")); origin != "" {
		db = db.Where("origin ILIKE ?", "%"+origin+"%")
	}
	var rows []domain.TaxiRoute
	if err := db.Order("name ASC").Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load routes")
	}
	return ok(c, rows)
}
