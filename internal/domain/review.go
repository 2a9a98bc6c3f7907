package domain

import "time"

// Review is a customer testimonial. Approval policy for self-service
// submissions is controlled by the reviews_auto_approve setting.
type Review struct {
	ID         int64     `json:"id,string" gorm:"primaryKey" form:"id"`
	Name       string    `gorm:"size:128" json:"name" form:"name"`
	City       string    `gorm:"size:128" json:"city" form:"city"`
	Phone      string    `gorm:"size:32" json:"phone" form:"phone"`
	ImageURL   string    `gorm:"size:1024" json:"image_url" form:"image_url"`
	Rating     int       `json:"rating" form:"rating"` // 1..5 inclusive
	ReviewText string    `gorm:"type:text" json:"review_text" form:"review_text"`
	IsApproved bool      `gorm:"index" json:"is_approved" form:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Review) TableName() string {
	return "crm_review"
}
