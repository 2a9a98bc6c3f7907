package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripveda/tripveda/internal/domain"
)

func TestSummaryOmitsEmptyFields(t *testing.T) {
	ctx := BookingContext{
		ServiceType:  domain.ServiceTypePackage,
		PackageTitle: "Manali Adventure Escape",
		Name:         "Asha Verma",
	}
	summary := ctx.Summary()
	assert.Contains(t, summary, "Package: Manali Adventure Escape")
	assert.Contains(t, summary, "Name: Asha Verma")
	assert.NotContains(t, summary, "Route:")
	assert.NotContains(t, summary, "Travelers:")
	assert.NotContains(t, summary, "Reference:")
	assert.False(t, strings.HasSuffix(summary, "\n"))
}

func TestSummaryGreetingPerServiceType(t *testing.T) {
	assert.Contains(t, BookingContext{ServiceType: domain.ServiceTypeTaxi}.Summary(), "book a taxi")
	assert.Contains(t, BookingContext{ServiceType: domain.ServiceTypePackage}.Summary(), "tour package")
	assert.Contains(t, BookingContext{}.Summary(), "travel enquiry")
}

func TestSummaryNormalizesParsableDates(t *testing.T) {
	ctx := BookingContext{TravelDate: "2026-12-24"}
	assert.Contains(t, ctx.Summary(), "Travel date: 24 Dec 2026")

	// unparsable dates pass through untouched
	ctx = BookingContext{TravelDate: "sometime next summer"}
	assert.Contains(t, ctx.Summary(), "Travel date: sometime next summer")
}

func TestBuildLink(t *testing.T) {
	ctx := BookingContext{
		ServiceType:     domain.ServiceTypeTaxi,
		RouteName:       "Manali - Leh",
		ReferenceNumber: "TV-20260830-K7M2XQ",
	}
	link := BuildLink("+91 98160-00000", ctx)
	require.True(t, strings.HasPrefix(link, "https://wa.me/919816000000?text="), link)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	text := parsed.Query().Get("text")
	assert.Contains(t, text, "Route: Manali - Leh")
	assert.Contains(t, text, "Reference: TV-20260830-K7M2XQ")
}

func TestBuildLinkWithoutNumber(t *testing.T) {
	assert.Equal(t, "", BuildLink("", BookingContext{}))
	assert.Equal(t, "", BuildLink("n/a", BookingContext{}))
}
