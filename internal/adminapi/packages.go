package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tripveda/tripveda/internal/domain"
	"github.com/tripveda/tripveda/internal/webserver"
	"github.com/tripveda/tripveda/pkg/common"
)

type packagePayload struct {
	Slug             string               `json:"slug"`
	Title            string               `json:"title"`
	Description      string               `json:"description"`
	ShortDescription string               `json:"short_description"`
	Price            float64              `json:"price"`
	OriginalPrice    *float64             `json:"original_price"`
	Category         string               `json:"category"`
	Region           string               `json:"region"`
	Duration         string               `json:"duration"`
	Highlights       domain.StringList    `json:"highlights"`
	Inclusions       domain.StringList    `json:"inclusions"`
	Exclusions       domain.StringList    `json:"exclusions"`
	Images           domain.StringList    `json:"images"`
	Itinerary        domain.ItineraryDays `json:"itinerary"`
	IsActive         bool                 `json:"is_active"`
	IsFeatured       bool                 `json:"is_featured"`
}

func registerPackageRoutes() {
	webserver.ApiGET("/content/packages", listPackages)
	webserver.ApiGET("/content/packages/:id", getPackage)
	webserver.ApiPOST("/content/packages", createPackage)
	webserver.ApiPUT("/content/packages/:id", updatePackage)
	webserver.ApiDELETE("/content/packages/:id", deletePackage)
}

func validatePackagePayload(p *packagePayload) (string, bool) {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return "Title is required", false
	}
	if p.Price < 0 {
		return "Price must not be negative", false
	}
	if p.OriginalPrice != nil && *p.OriginalPrice < p.Price {
		return "Original price must be greater than or equal to price", false
	}
	return "", true
}

func listPackages(c echo.Context) error {
	page, pageSize := parsePagination(c)

	q := strings.TrimSpace(c.QueryParam("q"))
	region := strings.TrimSpace(c.QueryParam("region"))
	category := strings.TrimSpace(c.QueryParam("category"))

	sortField := strings.TrimSpace(c.QueryParam("sort"))
	order := strings.ToUpper(strings.TrimSpace(c.QueryParam("order")))
	if order != "ASC" && order != "DESC" {
		order = "DESC"
	}

	// whitelist allowed sort columns to avoid SQL injection
	allowed := map[string]string{
		"id":         "id",
		"title":      "title",
		"price":      "price",
		"region":     "region",
		"created_at": "created_at",
		"updated_at": "updated_at",
	}
	sortCol, okCol := allowed[sortField]
	if !okCol || sortCol == "" {
		sortCol = "id"
	}

	db := GetDB(c).Model(&domain.TourPackage{})
	if q != "" {
		db = db.Where("title ILIKE ? or short_description ILIKE ?", "%"+q+"%", "%"+q+"%")
	}
	if region != "" {
		db = db.Where("region = ?", region)
	}
	if category != "" {
		db = db.Where("category = ?", category)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query packages", err.Error())
	}

	var rows []domain.TourPackage
	if err := db.Order(sortCol + " " + order).Offset((page - 1) * pageSize).Limit(pageSize).Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query packages", err.Error())
	}

	return paged(c, rows, total, page, pageSize)
}

func getPackage(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid package ID", nil)
	}
	var pkg domain.TourPackage
	if err := GetDB(c).Where("id = ?", id).First(&pkg).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Package not found", nil)
	}
	return ok(c, pkg)
}

func createPackage(c echo.Context) error {
	var payload packagePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse package", err.Error())
	}
	if msg, valid := validatePackagePayload(&payload); !valid {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", msg, nil)
	}

	slug := strings.TrimSpace(payload.Slug)
	if slug == "" {
		slug = common.Slugify(payload.Title)
	}
	var count int64
	GetDB(c).Model(&domain.TourPackage{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		return fail(c, http.StatusConflict, "SLUG_TAKEN", "A package with this slug already exists", nil)
	}

	pkg := domain.TourPackage{
		ID:               common.UUIDint64(),
		Slug:             slug,
		Title:            payload.Title,
		Description:      payload.Description,
		ShortDescription: payload.ShortDescription,
		Price:            payload.Price,
		OriginalPrice:    payload.OriginalPrice,
		Category:         payload.Category,
		Region:           payload.Region,
		Duration:         payload.Duration,
		Highlights:       payload.Highlights,
		Inclusions:       payload.Inclusions,
		Exclusions:       payload.Exclusions,
		Images:           payload.Images,
		Itinerary:        payload.Itinerary,
		IsActive:         payload.IsActive,
		IsFeatured:       payload.IsFeatured,
	}
	if err := GetDB(c).Create(&pkg).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create package", err.Error())
	}
	audit(c, "package_create", "created package "+slug)
	return ok(c, pkg)
}

func updatePackage(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid package ID", nil)
	}
	var pkg domain.TourPackage
	if err := GetDB(c).Where("id = ?", id).First(&pkg).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Package not found", nil)
	}

	var payload packagePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse package", err.Error())
	}
	if msg, valid := validatePackagePayload(&payload); !valid {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", msg, nil)
	}
	if slugChanged(pkg.Slug, payload.Slug) {
		return fail(c, http.StatusBadRequest, "SLUG_IMMUTABLE", "The slug of an existing package cannot be changed", nil)
	}

	pkg.Title = payload.Title
	pkg.Description = payload.Description
	pkg.ShortDescription = payload.ShortDescription
	pkg.Price = payload.Price
	pkg.OriginalPrice = payload.OriginalPrice
	pkg.Category = payload.Category
	pkg.Region = payload.Region
	pkg.Duration = payload.Duration
	pkg.Highlights = payload.Highlights
	pkg.Inclusions = payload.Inclusions
	pkg.Exclusions = payload.Exclusions
	pkg.Images = payload.Images
	pkg.Itinerary = payload.Itinerary
	pkg.IsActive = payload.IsActive
	pkg.IsFeatured = payload.IsFeatured

	if err := GetDB(c).Save(&pkg).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update package", err.Error())
	}
	audit(c, "package_update", "updated package "+pkg.Slug)
	return ok(c, pkg)
}

func deletePackage(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid package ID", nil)
	}
	if err := GetDB(c).Where("id = ?", id).Delete(&domain.TourPackage{}).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete package", err.Error())
	}
	audit(c, "package_delete", "deleted package")
	return ok(c, map[string]interface{}{"id": id})
}
