package publicapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/tripveda/tripveda/internal/domain"
	"github.com/tripveda/tripveda/internal/leads"
	"github.com/tripveda/tripveda/internal/settings"
	"github.com/tripveda/tripveda/internal/webserver"
	"github.com/tripveda/tripveda/internal/whatsapp"
)

func registerEnquiryRoutes() {
	webserver.PubPOST("/enquiry", submitEnquiry)
}

// submitEnquiry runs the lead pipeline. Suppressed spam gets the same
// response shape as an accepted lead.
func submitEnquiry(c echo.Context) error {
	var input leads.SubmitInput
	if err := c.Bind(&input); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse enquiry")
	}

	result, err := leadService.Submit(input)
	if err != nil {
		if verr, okErr := err.(*leads.ValidationError); okErr {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"code":         "VALIDATION_FAILED",
				"message":      "Please correct the highlighted fields",
				"field_errors": verr.Fields,
			})
		}
		// storage failures must not leak internals to the public form
		zap.L().Error("enquiry submit failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "SUBMIT_FAILED",
			"We could not save your enquiry, please try again or reach us on WhatsApp")
	}

	packageTitle := ""
	if input.PackageSlug != "" {
		var pkg domain.TourPackage
		if err := GetDB(c).Select("title").Where("slug = ?", input.PackageSlug).
			First(&pkg).Error; err == nil {
			packageTitle = pkg.Title
		}
	}

	waLink := whatsapp.BuildLink(
		appctx.Settings().GetString(settings.KeyWhatsappNumber),
		whatsapp.BookingContext{
			ServiceType:     input.ServiceType,
			PackageTitle:    packageTitle,
			RouteName:       input.RouteName,
			TravelDate:      input.TravelDate,
			Travelers:       input.Travelers,
			Name:            input.Name,
			Phone:           input.Phone,
			Notes:           input.Subject,
			ReferenceNumber: result.ReferenceNumber,
		})

	return ok(c, map[string]interface{}{
		"reference_number": result.ReferenceNumber,
		"whatsapp_url":     waLink,
	})
}
