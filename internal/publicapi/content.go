package publicapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripveda/tripveda/internal/catalog"
	"github.com/tripveda/tripveda/internal/domain"
	"github.com/tripveda/tripveda/internal/webserver"
)

func registerContentRoutes() {
	webserver.PubGET("/posts", listPublicPosts)
	webserver.PubGET("/posts/:slug", getPublicPost)
	webserver.PubGET("/diaries", listPublicDiaries)
	webserver.PubGET("/diaries/:slug", getPublicDiary)
}

func listPublicPosts(c echo.Context) error {
	var items []domain.BlogPost
	err := GetDB(c).Where("is_published = true").
		Order("published_at DESC").Find(&items).Error
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load posts")
	}

	filtered := catalog.Posts(items, parseSpec(c))
	window, hasMore := catalog.Window(filtered, parseVisible(c))

	return ok(c, map[string]interface{}{
		"items":    window,
		"total":    len(filtered),
		"has_more": hasMore,
	})
}

func getPublicPost(c echo.Context) error {
	var post domain.BlogPost
	err := GetDB(c).Where("slug = ? and is_published = true", c.Param("slug")).
		First(&post).Error
	if err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Post not found")
	}
	return ok(c, post)
}

func listPublicDiaries(c echo.Context) error {
	var items []domain.TravelDiary
	err := GetDB(c).Where("is_published = true").
		Order("published_at DESC").Find(&items).Error
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load diaries")
	}

	filtered := catalog.Diaries(items, parseSpec(c))
	window, hasMore := catalog.Window(filtered, parseVisible(c))

	return ok(c, map[string]interface{}{
		"items":    window,
		"total":    len(filtered),
		"has_more": hasMore,
	})
}

func getPublicDiary(c echo.Context) error {
	var diary domain.TravelDiary
	err := GetDB(c).Where("slug = ? and is_published = true", c.Param("slug")).
		First(&diary).Error
	if err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Diary not found")
	}
	return ok(c, diary)
}
