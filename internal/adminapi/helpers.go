// Package adminapi implements the JWT-protected back-office REST API.
package adminapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tripveda/tripveda/internal/app"
	"github.com/tripveda/tripveda/internal/domain"
	"github.com/tripveda/tripveda/internal/webserver"
	"github.com/tripveda/tripveda/pkg/common"
)

var appctx app.AppContext

// GetDB returns the request-scoped gorm handle injected by the web server.
func GetDB(c echo.Context) *gorm.DB {
	if db, ok := c.Get(webserver.ContextKeyDB).(*gorm.DB); ok {
		return db
	}
	return appctx.DB()
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"code": "OK",
		"data": data,
	})
}

func fail(c echo.Context, status int, code, message string, detail interface{}) error {
	return c.JSON(status, map[string]interface{}{
		"code":    code,
		"message": message,
		"detail":  detail,
	})
}

func paged(c echo.Context, rows interface{}, total int64, page, pageSize int) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"code":      "OK",
		"data":      rows,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func parsePagination(c echo.Context) (page, pageSize int) {
	page = 1
	pageSize = 20
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}
	if ps, err := strconv.Atoi(c.QueryParam("perPage")); err == nil && ps > 0 && ps <= 500 {
		pageSize = ps
	} else if ps, err := strconv.Atoi(c.QueryParam("pageSize")); err == nil && ps > 0 && ps <= 500 {
		pageSize = ps
	}
	return page, pageSize
}

func parseIDParam(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// slugChanged reports whether an update payload tries to rename a stored
// slug. Slugs are permalinks and never change after creation; an empty or
// identical payload slug is fine.
func slugChanged(current, requested string) bool {
	s := strings.TrimSpace(requested)
	return s != "" && s != current
}

// currentOperator returns the authenticated operator username.
func currentOperator(c echo.Context) string {
	if usr, ok := c.Get(webserver.ContextKeyOperator).(string); ok {
		return usr
	}
	return ""
}

// isSuper reports whether the authenticated operator has the super level.
func isSuper(c echo.Context) bool {
	lvl, _ := c.Get(webserver.ContextKeyLevel).(string)
	return lvl == "super"
}

// audit records one back-office action against the operator log.
func audit(c echo.Context, action, desc string) {
	log := domain.SysOprLog{
		ID:        common.UUIDint64(),
		OprName:   currentOperator(c),
		OprIp:     c.RealIP(),
		OptAction: action,
		OptDesc:   desc,
		OptTime:   nowFunc(),
	}
	if err := GetDB(c).Create(&log).Error; err != nil {
		zap.L().Error("failed to write operator log", zap.Error(err))
	}
}
