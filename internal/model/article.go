package model

import "time"

type Article struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:500;uniqueIndex;not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Author      string    `gorm:"size:255" json:"author"`
	Category    string    `gorm:"size:100" json:"category"`
	Source      string    `gorm:"size:255" json:"source"`
	PublishedAt LocalTime `gorm:"type:datetime" json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
