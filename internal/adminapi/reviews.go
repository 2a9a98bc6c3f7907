package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tripveda/tripveda/internal/domain"
	"github.com/tripveda/tripveda/internal/webserver"
)

func registerReviewRoutes() {
	webserver.ApiGET("/crm/reviews", listReviews)
	webserver.ApiPUT("/crm/reviews/:id/approve", approveReview)
	webserver.ApiPUT("/crm/reviews/:id/unapprove", unapproveReview)
	webserver.ApiDELETE("/crm/reviews/:id", deleteReview)
}

func listReviews(c echo.Context) error {
	page, pageSize := parsePagination(c)

	db := GetDB(c).Model(&domain.Review{})
	switch strings.TrimSpace(c.QueryParam("approved")) {
	case "true":
		db = db.Where("is_approved = true")
	case "false":
		db = db.Where("is_approved = false")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query reviews", err.Error())
	}

	var rows []domain.Review
	if err := db.Order("created_at DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query reviews", err.Error())
	}

	return paged(c, rows, total, page, pageSize)
}

func setReviewApproval(c echo.Context, approved bool) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid review ID", nil)
	}
	ret := GetDB(c).Model(&domain.Review{}).Where("id = ?", id).
		Update("is_approved", approved)
	if ret.Error != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update review", ret.Error.Error())
	}
	if ret.RowsAffected == 0 {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Review not found", nil)
	}
	if approved {
		audit(c, "review_approve", "approved review")
	} else {
		audit(c, "review_unapprove", "unapproved review")
	}
	return ok(c, map[string]interface{}{"id": id, "is_approved": approved})
}

func approveReview(c echo.Context) error {
	return setReviewApproval(c, true)
}

func unapproveReview(c echo.Context) error {
	return setReviewApproval(c, false)
}

func deleteReview(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid review ID", nil)
	}
	if err := GetDB(c).Where("id = ?", id).Delete(&domain.Review{}).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete review", err.Error())
	}
	audit(c, "review_delete", "deleted review")
	return ok(c, map[string]interface{}{"id": id})
}
