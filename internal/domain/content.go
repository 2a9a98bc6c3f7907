package domain

import "time"

// BlogPost is an editorial article on the public site.
type BlogPost struct {
	ID          int64      `json:"id,string" gorm:"primaryKey" form:"id"`
	Slug        string     `gorm:"uniqueIndex;size:200" json:"slug" form:"slug"`
	Title       string     `gorm:"index;size:255" json:"title" form:"title"`
	Excerpt     string     `gorm:"size:512" json:"excerpt" form:"excerpt"`
	Content     string     `gorm:"type:text" json:"content" form:"content"` // markdown
	CoverImage  string     `gorm:"size:1024" json:"cover_image" form:"cover_image"`
	Gallery     StringList `gorm:"type:jsonb" json:"gallery"`
	Author      string     `gorm:"size:128" json:"author" form:"author"`
	Category    string     `gorm:"index;size:64" json:"category" form:"category"`
	Tags        StringList `gorm:"type:jsonb" json:"tags"`
	IsPublished bool       `gorm:"index" json:"is_published" form:"is_published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName Specify table name
func (BlogPost) TableName() string {
	return "blog_post"
}

// TravelDiary is a trip report written by a traveler or the in-house team.
type TravelDiary struct {
	ID          int64      `json:"id,string" gorm:"primaryKey" form:"id"`
	Slug        string     `gorm:"uniqueIndex;size:200" json:"slug" form:"slug"`
	Title       string     `gorm:"index;size:255" json:"title" form:"title"`
	Excerpt     string     `gorm:"size:512" json:"excerpt" form:"excerpt"`
	Content     string     `gorm:"type:text" json:"content" form:"content"` // markdown
	CoverImage  string     `gorm:"size:1024" json:"cover_image" form:"cover_image"`
	Gallery     StringList `gorm:"type:jsonb" json:"gallery"`
	Author      string     `gorm:"size:128" json:"author" form:"author"`
	Destination string     `gorm:"index;size:128" json:"destination" form:"destination"`
	Duration    string     `gorm:"size:64" json:"duration" form:"duration"` // free text, e.g. "4 Days"
	Tags        StringList `gorm:"type:jsonb" json:"tags"`
	IsPublished bool       `gorm:"index" json:"is_published" form:"is_published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName Specify table name
func (TravelDiary) TableName() string {
	return "travel_diary"
}

// ResolvePublishedAt returns the published_at value after a publish flag change.
// The timestamp is stamped once, on the first false -> true transition, and is
// never overwritten by later unpublish/republish cycles.
func ResolvePublishedAt(current *time.Time, wasPublished, willPublish bool, now time.Time) *time.Time {
	if current != nil {
		return current
	}
	if !wasPublished && willPublish {
		t := now
		return &t
	}
	return nil
}
