package adminapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"

	"github.com/tripveda/tripveda/internal/domain"
	"github.com/tripveda/tripveda/internal/webserver"
)

type leadStatusPayload struct {
	Status string `json:"status" form:"status"`
}

// Leads carry customer communication history, so there is deliberately no
// delete endpoint. Closed leads stay queryable forever.
func registerLeadRoutes() {
	webserver.ApiGET("/crm/leads", listLeads)
	webserver.ApiGET("/crm/leads/:id", getLead)
	webserver.ApiGET("/crm/leads/export", exportLeads)
	webserver.ApiPUT("/crm/leads/:id/status", updateLeadStatus)
}

func listLeads(c echo.Context) error {
	page, pageSize := parsePagination(c)

	db := GetDB(c).Model(&domain.Lead{})
	if q := strings.TrimSpace(c.QueryParam("q")); q != "" {
		db = db.Where("name ILIKE ? or email ILIKE ? or reference_number ILIKE ?",
			"%"+q+"%", "%"+q+"%", "%"+q+"%")
	}
	if status := strings.TrimSpace(c.QueryParam("status")); status != "" {
		db = db.Where("status = ?", status)
	}
	if st := strings.TrimSpace(c.QueryParam("service_type")); st != "" {
		db = db.Where("service_type = ?", st)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query leads", err.Error())
	}

	var rows []domain.Lead
	if err := db.Order("created_at DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query leads", err.Error())
	}

	return paged(c, rows, total, page, pageSize)
}

func getLead(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid lead ID", nil)
	}
	var lead domain.Lead
	if err := GetDB(c).Where("id = ?", id).First(&lead).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Lead not found", nil)
	}
	return ok(c, lead)
}

// updateLeadStatus is the only mutation leads support.
func updateLeadStatus(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid lead ID", nil)
	}
	var payload leadStatusPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse status", err.Error())
	}
	if !domain.ValidLeadStatus(payload.Status) {
		return fail(c, http.StatusBadRequest, "INVALID_STATUS",
			"Status must be one of: "+strings.Join(domain.LeadStatuses, ", "), nil)
	}

	ret := GetDB(c).Model(&domain.Lead{}).Where("id = ?", id).
		Update("status", payload.Status)
	if ret.Error != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update lead", ret.Error.Error())
	}
	if ret.RowsAffected == 0 {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Lead not found", nil)
	}
	audit(c, "lead_status", "set lead status to "+payload.Status)
	return ok(c, map[string]interface{}{"id": id, "status": payload.Status})
}

func exportLeads(c echo.Context) error {
	db := GetDB(c).Model(&domain.Lead{})
	if status := strings.TrimSpace(c.QueryParam("status")); status != "" {
		db = db.Where("status = ?", status)
	}
	if from := strings.TrimSpace(c.QueryParam("from")); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			db = db.Where("created_at >= ?", t)
		}
	}
	if to := strings.TrimSpace(c.QueryParam("to")); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			db = db.Where("created_at < ?", t.Add(24*time.Hour))
		}
	}

	var rows []domain.Lead
	if err := db.Order("created_at DESC").Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query leads", err.Error())
	}

	csvData, err := gocsv.MarshalString(&rows)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_ERROR", "Failed to render CSV", err.Error())
	}

	audit(c, "lead_export", "exported leads to CSV")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="leads-`+time.Now().Format("20060102")+`.csv"`)
	return c.Blob(http.StatusOK, "text/csv", []byte(csvData))
}
