package db

import "time"

type Model struct {
	ID        string     `gorm:"primary_key;size:72" json:"id"`
	CreatedAt time.Time  `json:"createAt"`
	UpdatedAt time.Time  `json:"-"`
	DeletedAt *time.Time `sql:"index" json:"-"`
}
