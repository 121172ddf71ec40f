package models

import "time"

type Host struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	Name      string    `gorm:"not null;index" json:"name" example:"Dana Rivers"`
	Bio       string    `gorm:"type:text" json:"bio" example:"Veterinary technician turned presenter"`
	Movies    []Movie   `gorm:"many2many:movie_hosts;" json:"movies,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Host) TableName() string {
	return "hosts"
}

// MovieHost is the movies<->hosts join row. It is never exposed over the API;
// handlers flatten it into the hosts/movies arrays of its parents.
type MovieHost struct {
	MovieID   uint      `gorm:"primaryKey" json:"movie_id"`
	HostID    uint      `gorm:"primaryKey" json:"host_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (MovieHost) TableName() string {
	return "movie_hosts"
}
