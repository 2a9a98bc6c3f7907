package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tripveda/tripveda/internal/domain"
	"github.com/tripveda/tripveda/internal/webserver"
	"github.com/tripveda/tripveda/pkg/common"
)

type postPayload struct {
	Slug        string            `json:"slug"`
	Title       string            `json:"title"`
	Excerpt     string            `json:"excerpt"`
	Content     string            `json:"content"`
	CoverImage  string            `json:"cover_image"`
	Gallery     domain.StringList `json:"gallery"`
	Author      string            `json:"author"`
	Category    string            `json:"category"`
	Tags        domain.StringList `json:"tags"`
	IsPublished bool              `json:"is_published"`
}

func registerPostRoutes() {
	webserver.ApiGET("/content/posts", listPosts)
	webserver.ApiGET("/content/posts/:id", getPost)
	webserver.ApiPOST("/content/posts", createPost)
	webserver.ApiPUT("/content/posts/:id", updatePost)
	webserver.ApiDELETE("/content/posts/:id", deletePost)
}

func listPosts(c echo.Context) error {
	page, pageSize := parsePagination(c)

	q := strings.TrimSpace(c.QueryParam("q"))
	category := strings.TrimSpace(c.QueryParam("category"))
	published := strings.TrimSpace(c.QueryParam("published"))

	db := GetDB(c).Model(&domain.BlogPost{})
	if q != "" {
		db = db.Where("title ILIKE ? or excerpt ILIKE ?", "%"+q+"%", "%"+q+"%")
	}
	if category != "" {
		db = db.Where("category = ?", category)
	}
	if published == "true" {
		db = db.Where("is_published = true")
	} else if published == "false" {
		db = db.Where("is_published = false")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query posts", err.Error())
	}

	var rows []domain.BlogPost
	if err := db.Order("created_at DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query posts", err.Error())
	}

	return paged(c, rows, total, page, pageSize)
}

func getPost(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid post ID", nil)
	}
	var post domain.BlogPost
	if err := GetDB(c).Where("id = ?", id).First(&post).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Post not found", nil)
	}
	return ok(c, post)
}

func createPost(c echo.Context) error {
	var payload postPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse post", err.Error())
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
	GetDB(c).Model(&domain.BlogPost{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		return fail(c, http.StatusConflict, "SLUG_TAKEN", "A post with this slug already exists", nil)
	}

	post := domain.BlogPost{
		ID:          common.UUIDint64(),
		Slug:        slug,
		Title:       payload.Title,
		Excerpt:     payload.Excerpt,
		Content:     payload.Content,
		CoverImage:  payload.CoverImage,
		Gallery:     payload.Gallery,
		Author:      payload.Author,
		Category:    payload.Category,
		Tags:        payload.Tags,
		IsPublished: payload.IsPublished,
		PublishedAt: domain.ResolvePublishedAt(nil, false, payload.IsPublished, nowFunc()),
	}
	if err := GetDB(c).Create(&post).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create post", err.Error())
	}
	audit(c, "post_create", "created post "+slug)
	return ok(c, post)
}

func updatePost(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid post ID", nil)
	}
	var post domain.BlogPost
	if err := GetDB(c).Where("id = ?", id).First(&post).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Post not found", nil)
	}

	var payload postPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse post", err.Error())
	}
	payload.Title = strings.TrimSpace(payload.Title)
	if payload.Title == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Title is required", nil)
	}
	if slugChanged(post.Slug, payload.Slug) {
		return fail(c, http.StatusBadRequest, "SLUG_IMMUTABLE", "The slug of an existing post cannot be changed", nil)
	}

	post.PublishedAt = domain.ResolvePublishedAt(post.PublishedAt, post.IsPublished, payload.IsPublished, nowFunc())
	post.Title = payload.Title
	post.Excerpt = payload.Excerpt
	post.Content = payload.Content
	post.CoverImage = payload.CoverImage
	post.Gallery = payload.Gallery
	post.Author = payload.Author
	post.Category = payload.Category
	post.Tags = payload.Tags
	post.IsPublished = payload.IsPublished

	if err := GetDB(c).Save(&post).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update post", err.Error())
	}
	audit(c, "post_update", "updated post "+post.Slug)
	return ok(c, post)
}

func deletePost(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid post ID", nil)
	}
	if err := GetDB(c).Where("id = ?", id).Delete(&domain.BlogPost{}).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete post", err.Error())
	}
	audit(c, "post_delete", "deleted post")
	return ok(c, map[string]interface{}{"id": id})
}
