package adminapi

import (
	"time"

	"github.com/tripveda/tripveda/internal/app"
)

var nowFunc = time.Now

// Init wires every back-office route group. The web server must be
// initialized first.
func Init(ctx app.AppContext) {
	appctx = ctx

	registerAuthRoutes()
	registerPackageRoutes()
	registerPostRoutes()
	registerDiaryRoutes()
	registerReviewRoutes()
	registerLeadRoutes()
	registerMediaRoutes()
	registerTaxiRoutes()
	registerSettingsRoutes()
	registerDashboardRoutes()
	registerOperatorRoutes()
}
