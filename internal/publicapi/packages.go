package publicapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tripveda/tripveda/internal/catalog"
	"github.com/tripveda/tripveda/internal/domain"
	"github.com/tripveda/tripveda/internal/webserver"
)

func registerPackageRoutes() {
	webserver.PubGET("/packages", listPublicPackages)
	webserver.PubGET("/packages/:slug", getPublicPackage)
}

// parseSpec reads the shared filter parameters from the query string.
func parseSpec(c echo.Context) catalog.Spec {
	spec := catalog.Spec{
		Query:  c.QueryParam("q"),
		Region: c.QueryParam("region"),
		Theme:  c.QueryParam("theme"),
		Bucket: catalog.DurationBucket(c.QueryParam("duration")),
		Sort:   catalog.SortKey(c.QueryParam("sort")),
	}
	if raw := strings.TrimSpace(c.QueryParam("price_max")); raw != "" {
		if ceiling, err := strconv.ParseFloat(raw, 64); err == nil && ceiling >= 0 {
			spec.PriceCeiling = &ceiling
		}
	}
	return spec
}

func parseVisible(c echo.Context) int {
	visible := catalog.DefaultPageSize
	if v, err := strconv.Atoi(c.QueryParam("visible")); err == nil && v > 0 {
		visible = v
	}
	return visible
}

// listPublicPackages filters the active catalog in memory so every filter
// predicate behaves identically to the on-page filtering widgets.
func listPublicPackages(c echo.Context) error {
	var items []domain.TourPackage
	if err := GetDB(c).Where("is_active = true").Order("created_at DESC").Find(&items).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load packages")
	}

	filtered := catalog.Packages(items, parseSpec(c))
	window, hasMore := catalog.Window(filtered, parseVisible(c))

	return ok(c, map[string]interface{}{
		"items":    window,
		"total":    len(filtered),
		"has_more": hasMore,
	})
}

func getPublicPackage(c echo.Context) error {
	slug := c.Param("slug")
	var pkg domain.TourPackage
	err := GetDB(c).Where("slug = ? and is_active = true", slug).First(&pkg).Error
	if err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Package not found")
	}
	return ok(c, pkg)
}
