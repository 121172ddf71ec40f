package models

import "time"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID          uint       `gorm:"primaryKey" json:"id" example:"1"`
	Name        string     `gorm:"not null" json:"name" example:"Ana Torres"`
	Email       string     `gorm:"uniqueIndex;not null" json:"email" example:"ana@example.com"`
	PhoneNumber string     `json:"phone_number" example:"+51 999 111 222"`
	DateBorn    *time.Time `json:"date_born,omitempty"`
	Password    string     `gorm:"not null" json:"-"`
	Role        string     `gorm:"not null;default:USER;index" json:"role" example:"USER"`
	LastSession *time.Time `json:"last_session,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
