package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tripveda/tripveda/internal/domain"
	"github.com/tripveda/tripveda/internal/webserver"
	"github.com/tripveda/tripveda/pkg/common"
)

type diaryPayload struct {
	Slug        string            `json:"slug"`
	Title       string            `json:"title"`
	Excerpt     string            `json:"excerpt"`
	Content     string            `json:"content"`
	CoverImage  string            `json:"cover_image"`
	Gallery     domain.StringList `json:"gallery"`
	Author      string            `json:"author"`
	Destination string            `json:"destination"`
	Duration    string            `json:"duration"`
	Tags        domain.StringList `json:"tags"`
	IsPublished bool              `json:"is_published"`
}

func registerDiaryRoutes() {
	webserver.ApiGET("/content/diaries", listDiaries)
	webserver.ApiGET("/content/diaries/:id", getDiary)
	webserver.ApiPOST("/content/diaries", createDiary)
	webserver.ApiPUT("/content/diaries/:id", updateDiary)
	webserver.ApiDELETE("/content/diaries/:id", deleteDiary)
}

func listDiaries(c echo.Context) error {
	page, pageSize := parsePagination(c)

	q := strings.TrimSpace(c.QueryParam("q"))
	destination := strings.TrimSpace(c.QueryParam("destination"))

	db := GetDB(c).Model(&domain.TravelDiary{})
	if q != "" {
		db = db.Where("title ILIKE ? or excerpt ILIKE ?", "%"+q+"%", "%"+q+"%")
	}
	if destination != "" {
		db = db.Where("destination = ?", destination)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query diaries", err.Error())
	}

	var rows []domain.TravelDiary
	if err := db.Order("created_at DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query diaries", err.Error())
	}

	return paged(c, rows, total, page, pageSize)
}

func getDiary(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid diary ID", nil)
	}
	var diary domain.TravelDiary
	if err := GetDB(c).Where("id = ?", id).First(&diary).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Diary not found", nil)
	}
	return ok(c, diary)
}

func createDiary(c echo.Context) error {
	var payload diaryPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse diary", err.Error())
	}
	payload.Title = strings.TrimSpace(payload.Title)
	if payload.Title == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Title is required", nil)
	}

	slug := strings.TrimSpace(payload.Slug)
	if slug == "" {
		slug = common.Slugify(payload.Title)
	}
	var count int64
	GetDB(c).Model(&domain.TravelDiary{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		return fail(c, http.StatusConflict, "SLUG_TAKEN", "A diary with this slug already exists", nil)
	}

	diary := domain.TravelDiary{
		ID:          common.UUIDint64(),
		Slug:        slug,
		Title:       payload.Title,
		Excerpt:     payload.Excerpt,
		Content:     payload.Content,
		CoverImage:  payload.CoverImage,
		Gallery:     payload.Gallery,
		Author:      payload.Author,
		Destination: payload.Destination,
		Duration:    payload.Duration,
		Tags:        payload.Tags,
		IsPublished: payload.IsPublished,
		PublishedAt: domain.ResolvePublishedAt(nil, false, payload.IsPublished, nowFunc()),
	}
	if err := GetDB(c).Create(&diary).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create diary", err.Error())
	}
	audit(c, "diary_create", "created diary "+slug)
	return ok(c, diary)
}

func updateDiary(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid diary ID", nil)
	}
	var diary domain.TravelDiary
	if err := GetDB(c).Where("id = ?", id).First(&diary).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Diary not found", nil)
	}

	var payload diaryPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse diary", err.Error())
	}
	payload.Title = strings.TrimSpace(payload.Title)
	if payload.Title == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Title is required", nil)
	}
	if slugChanged(diary.Slug, payload.Slug) {
		return fail(c, http.StatusBadRequest, "SLUG_IMMUTABLE", "The slug of an existing diary cannot be changed", nil)
	}

	diary.PublishedAt = domain.ResolvePublishedAt(diary.PublishedAt, diary.IsPublished, payload.IsPublished, nowFunc())
	diary.Title = payload.Title
	diary.Excerpt = payload.Excerpt
	diary.Content = payload.Content
	diary.CoverImage = payload.CoverImage
	diary.Gallery = payload.Gallery
	diary.Author = payload.Author
	diary.Destination = payload.Destination
	diary.Duration = payload.Duration
	diary.Tags = payload.Tags
	diary.IsPublished = payload.IsPublished

	if err := GetDB(c).Save(&diary).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update diary", err.Error())
	}
	audit(c, "diary_update", "updated diary "+diary.Slug)
	return ok(c, diary)
}

func deleteDiary(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid diary ID", nil)
	}
	if err := GetDB(c).Where("id = ?", id).Delete(&domain.TravelDiary{}).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete diary", err.Error())
	}
	audit(c, "diary_delete", "deleted diary")
	return ok(c, map[string]interface{}{"id": id})
}
