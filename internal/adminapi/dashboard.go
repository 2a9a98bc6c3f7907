package adminapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/montanaflynn/stats"

	"github.com/tripveda/tripveda/internal/domain"
	"github.com/tripveda/tripveda/internal/webserver"
	"github.com/tripveda/tripveda/pkg/metrics"
)

func registerDashboardRoutes() {
	webserver.ApiGET("/dashboard/summary", dashboardSummary)
	webserver.ApiGET("/dashboard/metrics/:name", dashboardMetrics)
}

func dashboardSummary(c echo.Context) error {
	db := GetDB(c)

	var packages, posts, diaries, pendingReviews, newLeads, totalLeads int64
	db.Model(&domain.TourPackage{}).Count(&packages)
	db.Model(&domain.BlogPost{}).Count(&posts)
	db.Model(&domain.TravelDiary{}).Count(&diaries)
	db.Model(&domain.Review{}).Where("is_approved = false").Count(&pendingReviews)
	db.Model(&domain.Lead{}).Where("status = ?", domain.LeadStatusNew).Count(&newLeads)
	db.Model(&domain.Lead{}).Count(&totalLeads)

	var ratings []float64
	if err := db.Model(&domain.Review{}).Where("is_approved = true").
		Pluck("rating", &ratings).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query ratings", err.Error())
	}
	avgRating := 0.0
	if len(ratings) > 0 {
		avgRating, _ = stats.Mean(ratings)
		avgRating, _ = stats.Round(avgRating, 2)
	}

	var recentLeads []domain.Lead
	db.Order("created_at DESC").Limit(5).Find(&recentLeads)

	return ok(c, map[string]interface{}{
		"packages":        packages,
		"posts":           posts,
		"diaries":         diaries,
		"pending_reviews": pendingReviews,
		"new_leads":       newLeads,
		"total_leads":     totalLeads,
		"average_rating":  avgRating,
		"recent_leads":    recentLeads,
	})
}

// dashboardMetrics serves the stored gauge series for the ops charts.
func dashboardMetrics(c echo.Context) error {
	name := c.Param("name")
	allowed := map[string]bool{
		"system_cpuuse":   true,
		"system_memuse":   true,
		"tripveda_cpuuse": true,
		"tripveda_memuse": true,
	}
	if !allowed[name] {
		return fail(c, http.StatusBadRequest, "INVALID_METRIC", "Unknown metric name", nil)
	}

	end := time.Now().Unix()
	start := end - 24*3600
	points, err := metrics.Select(name, start, end)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "METRICS_ERROR", "Failed to query metrics", err.Error())
	}
	return ok(c, points)
}
