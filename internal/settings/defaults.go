package settings

// TypeSite is the sys_config category all site settings live under.
const TypeSite = "site"

// Keys every deployment is expected to carry. Missing rows fall back to
// the defaults below.
const (
	KeySiteName           = "site_name"
	KeyContactEmail       = "contact_email"
	KeyContactPhone       = "contact_phone"
	KeyWhatsappNumber     = "whatsapp_number"
	KeyAddress            = "address"
	KeyGoogleMapsEmbed    = "google_maps_embed"
	KeyFacebookURL        = "facebook_url"
	KeyInstagramURL       = "instagram_url"
	KeyTwitterURL         = "twitter_url"
	KeyYoutubeURL         = "youtube_url"
	KeyBusinessHours      = "business_hours"
	KeyAboutText          = "about_text"
	KeyMetaTitle          = "meta_title"
	KeyMetaDescription    = "meta_description"
	KeyMaintenanceMode    = "maintenance_mode"
	KeyReviewsAutoApprove = "reviews_auto_approve"
)

// Defaults is the built-in fallback for every known key. The resolver serves
// these verbatim when the store is unreachable.
var Defaults = map[string]string{
	KeySiteName:           "TripVeda Holidays",
	KeyContactEmail:       "hello@tripveda.in",
	KeyContactPhone:       "+91 98160 00000",
	KeyWhatsappNumber:     "+91 98160 00000",
	KeyAddress:            "Mall Road, Manali, Himachal Pradesh 175131",
	KeyGoogleMapsEmbed:    "",
	KeyFacebookURL:        "https://facebook.com/tripveda",
	KeyInstagramURL:       "https://instagram.com/tripveda",
	KeyTwitterURL:         "",
	KeyYoutubeURL:         "",
	KeyBusinessHours:      "Mon-Sat 9:00-19:00 IST",
	KeyAboutText:          "Himachal travel specialists since 2012. Tour packages, taxi services and custom itineraries across the mountains.",
	KeyMetaTitle:          "TripVeda Holidays | Manali Tour Packages & Taxi Service",
	KeyMetaDescription:    "Handcrafted Himachal tour packages, reliable taxi routes and local travel guidance from TripVeda Holidays, Manali.",
	KeyMaintenanceMode:    "disabled",
	KeyReviewsAutoApprove: "enabled",
}

// PublicKeys are the settings served on the public site API. Everything else
// stays back-office only.
var PublicKeys = []string{
	KeySiteName,
	KeyContactEmail,
	KeyContactPhone,
	KeyWhatsappNumber,
	KeyAddress,
	KeyGoogleMapsEmbed,
	KeyFacebookURL,
	KeyInstagramURL,
	KeyTwitterURL,
	KeyYoutubeURL,
	KeyBusinessHours,
	KeyAboutText,
	KeyMetaTitle,
	KeyMetaDescription,
}

// SiteSettings is the typed view handed to templates and the public API.
type SiteSettings struct {
	SiteName        string `json:"site_name" mapstructure:"site_name"`
	ContactEmail    string `json:"contact_email" mapstructure:"contact_email"`
	ContactPhone    string `json:"contact_phone" mapstructure:"contact_phone"`
	WhatsappNumber  string `json:"whatsapp_number" mapstructure:"whatsapp_number"`
	Address         string `json:"address" mapstructure:"address"`
	GoogleMapsEmbed string `json:"google_maps_embed" mapstructure:"google_maps_embed"`
	FacebookURL     string `json:"facebook_url" mapstructure:"facebook_url"`
	InstagramURL    string `json:"instagram_url" mapstructure:"instagram_url"`
	TwitterURL      string `json:"twitter_url" mapstructure:"twitter_url"`
	YoutubeURL      string `json:"youtube_url" mapstructure:"youtube_url"`
	BusinessHours   string `json:"business_hours" mapstructure:"business_hours"`
	AboutText       string `json:"about_text" mapstructure:"about_text"`
	MetaTitle       string `json:"meta_title" mapstructure:"meta_title"`
	MetaDescription string `json:"meta_description" mapstructure:"meta_description"`
}
