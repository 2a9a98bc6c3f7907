package domain

import "time"

// Lead service types
const (
	ServiceTypePackage = "package"
	ServiceTypeTaxi    = "taxi"
	ServiceTypeEnquiry = "enquiry"
)

// Lead statuses. No transition order is enforced.
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusBooked    = "booked"
	LeadStatusClosed    = "closed"
)

// ServiceTypes lists the accepted lead service types.
var ServiceTypes = []string{ServiceTypePackage, ServiceTypeTaxi, ServiceTypeEnquiry}

// LeadStatuses lists the accepted lead statuses.
var LeadStatuses = []string{LeadStatusNew, LeadStatusContacted, LeadStatusBooked, LeadStatusClosed}

// Lead is a persisted customer inquiry or booking request. Rows are immutable
// except for Status and are never deleted automatically.
type Lead struct {
	ID              int64     `json:"id,string" gorm:"primaryKey" form:"id"`
	ReferenceNumber string    `gorm:"uniqueIndex;size:32" json:"reference_number" csv:"reference_number"`
	Name            string    `gorm:"size:128" json:"name" form:"name" csv:"name"`
	Email           string    `gorm:"index;size:255" json:"email" form:"email" csv:"email"`
	Phone           string    `gorm:"size:32" json:"phone" form:"phone" csv:"phone"`
	Subject         string    `gorm:"size:255" json:"subject" form:"subject" csv:"subject"`
	Message         string    `gorm:"type:text" json:"message" form:"message" csv:"message"`
	ServiceType     string    `gorm:"index;size:16" json:"service_type" form:"service_type" csv:"service_type"`
	PackageSlug     string    `gorm:"size:200" json:"package_slug" form:"package_slug" csv:"package_slug"`
	RouteName       string    `gorm:"size:255" json:"route_name" form:"route_name" csv:"route_name"`
	TravelDate      string    `gorm:"size:64" json:"travel_date" form:"travel_date" csv:"travel_date"`
	Travelers       int       `json:"travelers" form:"travelers" csv:"travelers"`
	Status          string    `gorm:"index;size:16" json:"status" form:"status" csv:"status"`
	CreatedAt       time.Time `json:"created_at" csv:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" csv:"-"`
}

// TableName Specify table name
func (Lead) TableName() string {
	return "crm_lead"
}

// ValidServiceType reports whether v is one of the accepted service types.
func ValidServiceType(v string) bool {
	for _, t := range ServiceTypes {
		if t == v {
			return true
		}
	}
	return false
}

// ValidLeadStatus reports whether v is one of the accepted lead statuses.
func ValidLeadStatus(v string) bool {
	for _, s := range LeadStatuses {
		if s == v {
			return true
		}
	}
	return false
}
