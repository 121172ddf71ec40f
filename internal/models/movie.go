package models

import "time"

type Movie struct {
	ID                uint      `gorm:"primaryKey" json:"id" example:"1"`
	Title             string    `gorm:"not null;index" json:"title" example:"Top 5 Deshedding Brushes"`
	CategoryID        *uint     `gorm:"index" json:"categoryId"`
	Category          *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Description       string    `gorm:"type:text" json:"description"`
	VideoURL          string    `gorm:"not null" json:"video_url" example:"https://cdn.example.com/videos/brushes/master.m3u8"`
	ThumbnailURL      string    `gorm:"not null" json:"thumbnail_url"`
	Duration          string    `json:"duration" example:"12:45"`
	ReleaseYear       int       `gorm:"index" json:"release_year" example:"2024"`
	Rating            string    `json:"rating" example:"4.5"`
	Cast              string    `json:"cast"`
	Director          string    `json:"director"`
	Show              string    `json:"show"`
	ProductsReviewed  string    `gorm:"type:text" json:"products_reviewed"`
	KeyHighlights     string    `gorm:"type:text" json:"key_highlights"`
	AdditionalContext string    `gorm:"type:text" json:"additional_context"`
	Hosts             []Host    `gorm:"many2many:movie_hosts;constraint:OnDelete:CASCADE" json:"hosts,omitempty"`
	CreatedAt         time.Time `gorm:"index" json:"created_at"`
	UpdatedAt         time.Time `gorm:"index" json:"updated_at"`
}

func (Movie) TableName() string {
	return "movies"
}
