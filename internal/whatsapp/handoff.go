// Package whatsapp builds the click-to-chat hand-off links that carry a
// pre-filled booking summary into a WhatsApp conversation.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/araddon/dateparse"

	"github.com/tripveda/tripveda/internal/domain"
	"github.com/tripveda/tripveda/pkg/common"
)

// BookingContext is everything known about the enquiry at hand-off time.
// Empty fields are omitted from the message.
type BookingContext struct {
	ServiceType     string
	PackageTitle    string
	RouteName       string
	TravelDate      string
	Travelers       int
	Name            string
	Phone           string
	Notes           string
	ReferenceNumber string
}

// Summary renders the pre-filled chat message. Lines for empty fields are
// dropped rather than rendered blank.
func (c BookingContext) Summary() string {
	var b strings.Builder
	switch c.ServiceType {
	case domain.ServiceTypeTaxi:
		b.WriteString("Hi! I would like to book a taxi.\n")
	case domain.ServiceTypePackage:
		b.WriteString("Hi! I am interested in a tour package.\n")
	default:
		b.WriteString("Hi! I have a travel enquiry.\n")
	}

	writeLine := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString("\n")
	}

	writeLine("Package", c.PackageTitle)
	writeLine("Route", c.RouteName)
	writeLine("Travel date", normalizeDate(c.TravelDate))
	if c.Travelers > 0 {
		writeLine("Travelers", fmt.Sprintf("%d", c.Travelers))
	}
	writeLine("Name", c.Name)
	writeLine("Phone", c.Phone)
	writeLine("Notes", c.Notes)
	writeLine("Reference", c.ReferenceNumber)

	return strings.TrimRight(b.String(), "\n")
}

// normalizeDate renders user-entered dates consistently. Anything dateparse
// cannot read passes through untouched.
func normalizeDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return raw
	}
	return t.Format("02 Jan 2006")
}

// BuildLink returns a wa.me click-to-chat URL for the configured business
// number with the booking summary pre-filled. An unconfigured number yields
// an empty string so callers can hide the button.
func BuildLink(number string, ctx BookingContext) string {
	digits := common.Digits(number)
	if digits == "" {
		return ""
	}
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(ctx.Summary())
}
