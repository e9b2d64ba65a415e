package course

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	IsNew     bool      `gorm:"not null;default:false" json:"is_new"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func NewCourse(title string) Course {
	return Course{ID: uuid.New(), Title: title}
}
