package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tripveda/tripveda/internal/domain"
	"github.com/tripveda/tripveda/internal/webserver"
	"github.com/tripveda/tripveda/pkg/common"
)

type operatorPayload struct {
	Realname string `json:"realname"`
	Mobile   string `json:"mobile"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Level    string `json:"level"`
	Status   string `json:"status"`
	Remark   string `json:"remark"`
}

// Operator management is restricted to super operators.
func registerOperatorRoutes() {
	webserver.ApiGET("/system/operators", listOperators)
	webserver.ApiPOST("/system/operators", createOperator)
	webserver.ApiPUT("/system/operators/:id", updateOperator)
	webserver.ApiDELETE("/system/operators/:id", deleteOperator)
}

func requireSuper(c echo.Context) error {
	if !isSuper(c) {
		return fail(c, http.StatusForbidden, "FORBIDDEN", "Only super operators can manage accounts", nil)
	}
	return nil
}

func listOperators(c echo.Context) error {
	if err := requireSuper(c); err != nil {
		return err
	}
	var rows []domain.SysOpr
	if err := GetDB(c).Order("username ASC").Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query operators", err.Error())
	}
	return ok(c, rows)
}

func validOperatorLevel(level string) bool {
	return level == "super" || level == "editor"
}

func createOperator(c echo.Context) error {
	if err := requireSuper(c); err != nil {
		return err
	}
	var payload operatorPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse operator", err.Error())
	}
	payload.Username = strings.TrimSpace(payload.Username)
	if payload.Username == "" || payload.Password == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Username and password are required", nil)
	}
	if !validOperatorLevel(payload.Level) {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Level must be 'super' or 'editor'", nil)
	}

	var count int64
	GetDB(c).Model(&domain.SysOpr{}).Where("username = ?", payload.Username).Count(&count)
	if count > 0 {
		return fail(c, http.StatusConflict, "USERNAME_TAKEN", "An operator with this username already exists", nil)
	}

	hashed, err := common.HashPassword(payload.Password)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "HASH_ERROR", "Failed to hash password", err.Error())
	}

	opr := domain.SysOpr{
		ID:       common.UUIDint64(),
		Realname: payload.Realname,
		Mobile:   payload.Mobile,
		Email:    payload.Email,
		Username: payload.Username,
		Password: hashed,
		Level:    payload.Level,
		Status:   common.ENABLED,
		Remark:   payload.Remark,
	}
	if err := GetDB(c).Create(&opr).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create operator", err.Error())
	}
	audit(c, "operator_create", "created operator "+opr.Username)
	return ok(c, opr)
}

func updateOperator(c echo.Context) error {
	if err := requireSuper(c); err != nil {
		return err
	}
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid operator ID", nil)
	}
	var opr domain.SysOpr
	if err := GetDB(c).Where("id = ?", id).First(&opr).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Operator not found", nil)
	}

	var payload operatorPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse operator", err.Error())
	}
	if payload.Level != "" && !validOperatorLevel(payload.Level) {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Level must be 'super' or 'editor'", nil)
	}

	opr.Realname = payload.Realname
	opr.Mobile = payload.Mobile
	opr.Email = payload.Email
	opr.Remark = payload.Remark
	if payload.Level != "" {
		opr.Level = payload.Level
	}
	if payload.Status != "" {
		opr.Status = payload.Status
	}
	if payload.Password != "" {
		hashed, err := common.HashPassword(payload.Password)
		if err != nil {
			return fail(c, http.StatusInternalServerError, "HASH_ERROR", "Failed to hash password", err.Error())
		}
		opr.Password = hashed
	}

	if err := GetDB(c).Save(&opr).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update operator", err.Error())
	}
	audit(c, "operator_update", "updated operator "+opr.Username)
	return ok(c, opr)
}

func deleteOperator(c echo.Context) error {
	if err := requireSuper(c); err != nil {
		return err
	}
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid operator ID", nil)
	}
	var opr domain.SysOpr
	if err := GetDB(c).Where("id = ?", id).First(&opr).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Operator not found", nil)
	}
	if opr.Username == currentOperator(c) {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "You cannot delete your own account", nil)
	}
	if err := GetDB(c).Delete(&opr).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete operator", err.Error())
	}
	audit(c, "operator_delete", "deleted operator "+opr.Username)
	return ok(c, map[string]interface{}{"id": id})
}
