package adminapi

import (
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tripveda/tripveda/internal/media"
	"github.com/tripveda/tripveda/internal/webserver"
)

var mediaService *media.Service

// InitMedia hands the media service to the upload handlers.
func InitMedia(svc *media.Service) {
	mediaService = svc
}

func registerMediaRoutes() {
	webserver.ApiGET("/content/media", listMedia)
	webserver.ApiPOST("/content/media", uploadMedia)
	webserver.ApiDELETE("/content/media/:id", deleteMedia)
}

func listMedia(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	assets, err := mediaService.List(limit)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to list media", err.Error())
	}
	return ok(c, assets)
}

func uploadMedia(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "A file field is required", nil)
	}
	src, err := file.Open()
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to read upload", err.Error())
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to read upload", err.Error())
	}

	asset, err := mediaService.Upload(file.Filename, data)
	if err != nil {
		return fail(c, http.StatusBadGateway, "UPLOAD_FAILED", "Media host rejected the upload", err.Error())
	}
	audit(c, "media_upload", "uploaded "+file.Filename)
	return ok(c, asset)
}

func deleteMedia(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid media ID", nil)
	}
	if err := mediaService.Delete(id); err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Media asset not found", err.Error())
	}
	audit(c, "media_delete", "deleted media registry entry")
	return ok(c, map[string]interface{}{"id": id})
}
