package domain

import "time"

// Vehicle is a taxi fleet entry shown on the booking page.
type Vehicle struct {
	ID         int64     `json:"id,string" gorm:"primaryKey" form:"id"`
	Name       string    `gorm:"index;size:128" json:"name" form:"name"`
	Type       string    `gorm:"index;size:32" json:"type" form:"type"` // sedan / suv / tempo-traveller
	Seats      int       `json:"seats" form:"seats"`
	ImageURL   string    `gorm:"size:1024" json:"image_url" form:"image_url"`
	PricePerKm float64   `json:"price_per_km" form:"price_per_km"`
	IsActive   bool      `gorm:"index" json:"is_active" form:"is_active"`
	Remark     string    `gorm:"size:255" json:"remark" form:"remark"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Vehicle) TableName() string {
	return "taxi_vehicle"
}

// TaxiRoute is a fixed-fare route offered by the taxi service.
type TaxiRoute struct {
	ID          int64     `json:"id,string" gorm:"primaryKey" form:"id"`
	Name        string    `gorm:"index;size:255" json:"name" form:"name"`
	Origin      string    `gorm:"index;size:128" json:"origin" form:"origin"`
	Destination string    `gorm:"index;size:128" json:"destination" form:"destination"`
	DistanceKm  float64   `json:"distance_km" form:"distance_km"`
	Price       float64   `json:"price" form:"price"`
	VehicleType string    `gorm:"size:32" json:"vehicle_type" form:"vehicle_type"`
	IsActive    bool      `gorm:"index" json:"is_active" form:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName Specify table name
func (TaxiRoute) TableName() string {
	return "taxi_route"
}
