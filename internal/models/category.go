package models

import "time"

type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id" example:"1"`
	Name        string    `gorm:"not null;index" json:"name" example:"Grooming"`
	Description string    `gorm:"type:text" json:"description" example:"Grooming tools put through their paces"`
	Movies      []Movie   `gorm:"foreignKey:CategoryID" json:"movies,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}
