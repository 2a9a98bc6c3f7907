package domain

import "time"

// TourPackage is a sellable tour offering shown on the public site.
// Slug is immutable once the package has been published and shared.
type TourPackage struct {
	ID               int64         `json:"id,string" gorm:"primaryKey" form:"id"`
	Slug             string        `gorm:"uniqueIndex;size:200" json:"slug" form:"slug"`
	Title            string        `gorm:"index;size:255" json:"title" form:"title"`
	Description      string        `gorm:"type:text" json:"description" form:"description"`
	ShortDescription string        `gorm:"size:512" json:"short_description" form:"short_description"`
	Price            float64       `json:"price" form:"price"`
	OriginalPrice    *float64      `json:"original_price,omitempty" form:"original_price"` // pre-discount price, >= Price when present
	Category         string        `gorm:"index;size:64" json:"category" form:"category"`
	Region           string        `gorm:"index;size:64" json:"region" form:"region"`
	Duration         string        `gorm:"size:64" json:"duration" form:"duration"` // free text, e.g. "5 Days / 4 Nights"
	Highlights       StringList    `gorm:"type:jsonb" json:"highlights"`
	Inclusions       StringList    `gorm:"type:jsonb" json:"inclusions"`
	Exclusions       StringList    `gorm:"type:jsonb" json:"exclusions"`
	Images           StringList    `gorm:"type:jsonb" json:"images"`
	Itinerary        ItineraryDays `gorm:"type:jsonb" json:"itinerary"`
	IsActive         bool          `gorm:"index" json:"is_active" form:"is_active"`
	IsFeatured       bool          `json:"is_featured" form:"is_featured"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// TableName Specify table name
func (TourPackage) TableName() string {
	return "tour_package"
}
