package domain

import "time"

// MediaAsset is a registry entry for an uploaded asset. The binary lives on
// the external asset host; deleting a row never touches the hosted file.
type MediaAsset struct {
	ID        int64     `json:"id,string" gorm:"primaryKey" form:"id"`
	URL       string    `gorm:"size:1024" json:"url" form:"url"`
	PublicID  string    `gorm:"size:255" json:"public_id" form:"public_id"`
	Folder    string    `gorm:"index;size:128" json:"folder" form:"folder"`
	Format    string    `gorm:"size:16" json:"format" form:"format"`
	Bytes     int64     `json:"bytes" form:"bytes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (MediaAsset) TableName() string {
	return "media_asset"
}
