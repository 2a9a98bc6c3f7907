package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tripveda/tripveda/internal/webserver"
)

type settingPayload struct {
	Name  string `json:"name" form:"name"`
	Value string `json:"value" form:"value"`
}

func registerSettingsRoutes() {
	webserver.ApiGET("/settings", getSettings)
	webserver.ApiPUT("/settings", putSetting)
	webserver.ApiPOST("/settings/batch", batchSaveSettings)
}

// getSettings returns the merged view: stored rows over built-in defaults.
func getSettings(c echo.Context) error {
	return ok(c, map[string]interface{}{
		"state":  appctx.Settings().State().String(),
		"values": appctx.Settings().All(),
	})
}

func putSetting(c echo.Context) error {
	var payload settingPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse setting", err.Error())
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Setting name is required", nil)
	}
	if err := appctx.Settings().Save(payload.Name, payload.Value); err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save setting", err.Error())
	}
	audit(c, "setting_save", "saved setting "+payload.Name)
	return ok(c, map[string]interface{}{"name": payload.Name, "value": payload.Value})
}

// batchSaveSettings saves keys in sorted order and stops at the first
// failure. The response always reports which keys succeeded, failed and
// were skipped.
func batchSaveSettings(c echo.Context) error {
	var updates map[string]string
	if err := c.Bind(&updates); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse settings", err.Error())
	}
	if len(updates) == 0 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "No settings provided", nil)
	}

	result := appctx.Settings().SaveBatch(updates)
	audit(c, "setting_batch", "batch saved settings")
	if len(result.Failed) > 0 {
		return c.JSON(http.StatusMultiStatus, map[string]interface{}{
			"code": "PARTIAL",
			"data": result,
		})
	}
	return ok(c, result)
}
