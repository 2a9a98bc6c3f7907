package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tripveda/tripveda/internal/domain"
	"github.com/tripveda/tripveda/internal/webserver"
	"github.com/tripveda/tripveda/pkg/common"
)

func registerTaxiRoutes() {
	webserver.ApiGET("/taxi/vehicles", listVehicles)
	webserver.ApiPOST("/taxi/vehicles", createVehicle)
	webserver.ApiPUT("/taxi/vehicles/:id", updateVehicle)
	webserver.ApiDELETE("/taxi/vehicles/:id", deleteVehicle)

	webserver.ApiGET("/taxi/routes", listRoutes)
	webserver.ApiPOST("/taxi/routes", createRoute)
	webserver.ApiPUT("/taxi/routes/:id", updateRoute)
	webserver.ApiDELETE("/taxi/routes/:id", deleteRoute)
}

func listVehicles(c echo.Context) error {
	page, pageSize := parsePagination(c)

	db := GetDB(c).Model(&domain.Vehicle{})
	if t := strings.TrimSpace(c.QueryParam("type")); t != "" {
		db = db.Where("type = ?", t)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query vehicles", err.Error())
	}
	var rows []domain.Vehicle
	if err := db.Order("name ASC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query vehicles", err.Error())
	}
	return paged(c, rows, total, page, pageSize)
}

func createVehicle(c echo.Context) error {
	var v domain.Vehicle
	if err := c.Bind(&v); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse vehicle", err.Error())
	}
	v.Name = strings.TrimSpace(v.Name)
	if v.Name == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Name is required", nil)
	}
	if v.PricePerKm < 0 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Price per km must not be negative", nil)
	}
	v.ID = common.UUIDint64()
	if err := GetDB(c).Create(&v).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create vehicle", err.Error())
	}
	audit(c, "vehicle_create", "created vehicle "+v.Name)
	return ok(c, v)
}

func updateVehicle(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid vehicle ID", nil)
	}
	var v domain.Vehicle
	if err := GetDB(c).Where("id = ?", id).First(&v).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Vehicle not found", nil)
	}
	var payload domain.Vehicle
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse vehicle", err.Error())
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Name is required", nil)
	}
	if payload.PricePerKm < 0 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Price per km must not be negative", nil)
	}

	v.Name = payload.Name
	v.Type = payload.Type
	v.Seats = payload.Seats
	v.ImageURL = payload.ImageURL
	v.PricePerKm = payload.PricePerKm
	v.IsActive = payload.IsActive
	v.Remark = payload.Remark

	if err := GetDB(c).Save(&v).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update vehicle", err.Error())
	}
	audit(c, "vehicle_update", "updated vehicle "+v.Name)
	return ok(c, v)
}

func deleteVehicle(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid vehicle ID", nil)
	}
	if err := GetDB(c).Where("id = ?", id).Delete(&domain.Vehicle{}).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete vehicle", err.Error())
	}
	audit(c, "vehicle_delete", "deleted vehicle")
	return ok(c, map[string]interface{}{"id": id})
}

func listRoutes(c echo.Context) error {
	page, pageSize := parsePagination(c)

	db := GetDB(c).Model(&domain.TaxiRoute{})
	if q := strings.TrimSpace(c.QueryParam("q")); q != "" {
		db = db.Where("name ILIKE ? or origin ILIKE ? or destination ILIKE ?",
			"%"+q+"%", "%"+q+"%", "%"+q+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query routes", err.Error())
	}
	var rows []domain.TaxiRoute
	if err := db.Order("name ASC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query routes", err.Error())
	}
	return paged(c, rows, total, page, pageSize)
}

func validateRoute(r *domain.TaxiRoute) (string, bool) {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return "Name is required", false
	}
	if r.Price < 0 || r.DistanceKm < 0 {
		return "Price and distance must not be negative", false
	}
	return "", true
}

func createRoute(c echo.Context) error {
	var route domain.TaxiRoute
	if err := c.Bind(&route); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse route", err.Error())
	}
	if msg, valid := validateRoute(&route); !valid {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", msg, nil)
	}
	route.ID = common.UUIDint64()
	if err := GetDB(c).Create(&route).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create route", err.Error())
	}
	audit(c, "route_create", "created route "+route.Name)
	return ok(c, route)
}

func updateRoute(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid route ID", nil)
	}
	var route domain.TaxiRoute
	if err := GetDB(c).Where("id = ?", id).First(&route).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Route not found", nil)
	}
	var payload domain.TaxiRoute
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse route", err.Error())
	}
	if msg, valid := validateRoute(&payload); !valid {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", msg, nil)
	}

	route.Name = payload.Name
	route.Origin = payload.Origin
	route.Destination = payload.Destination
	route.DistanceKm = payload.DistanceKm
	route.Price = payload.Price
	route.VehicleType = payload.VehicleType
	route.IsActive = payload.IsActive

	if err := GetDB(c).Save(&route).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update route", err.Error())
	}
	audit(c, "route_update", "updated route "+route.Name)
	return ok(c, route)
}

func deleteRoute(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid route ID", nil)
	}
	if err := GetDB(c).Where("id = ?", id).Delete(&domain.TaxiRoute{}).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete route", err.Error())
	}
	audit(c, "route_delete", "deleted route")
	return ok(c, map[string]interface{}{"id": id})
}
