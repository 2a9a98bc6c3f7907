package publicapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tripveda/tripveda/internal/domain"
	"github.com/tripveda/tripveda/internal/settings"
	"github.com/tripveda/tripveda/internal/webserver"
	"github.com/tripveda/tripveda/pkg/common"
)

type reviewPayload struct {
	Name       string `json:"name" form:"name"`
	City       string `json:"city" form:"city"`
	Phone      string `json:"phone" form:"phone"`
	ImageURL   string `json:"image_url" form:"image_url"`
	Rating     int    `json:"rating" form:"rating"`
	ReviewText string `json:"review_text" form:"review_text"`
}

func registerReviewRoutes() {
	webserver.PubGET("/reviews", listApprovedReviews)
	webserver.PubPOST("/reviews", submitReview)
}

func listApprovedReviews(c echo.Context) error {
	var rows []domain.Review
	err := GetDB(c).Where("is_approved = true").
		Order("created_at DESC").Limit(100).Find(&rows).Error
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load reviews")
	}
	return ok(c, rows)
}

// submitReview accepts a visitor testimonial. Whether it appears immediately
// depends on the reviews_auto_approve setting.
func submitReview(c echo.Context) error {
	var payload reviewPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse review")
	}
	payload.Name = strings.TrimSpace(payload.Name)
	payload.ReviewText = strings.TrimSpace(payload.ReviewText)
	if payload.Name == "" || payload.ReviewText == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Name and review text are required")
	}
	if payload.Rating < 1 || payload.Rating > 5 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Rating must be between 1 and 5")
	}

	review := domain.Review{
		ID:         common.UUIDint64(),
		Name:       payload.Name,
		City:       strings.TrimSpace(payload.City),
		Phone:      strings.TrimSpace(payload.Phone),
		ImageURL:   strings.TrimSpace(payload.ImageURL),
		Rating:     payload.Rating,
		ReviewText: payload.ReviewText,
		IsApproved: appctx.Settings().GetBool(settings.KeyReviewsAutoApprove),
	}
	if err := GetDB(c).Create(&review).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save review")
	}

	return ok(c, map[string]interface{}{
		"id":          review.ID,
		"is_approved": review.IsApproved,
	})
}
