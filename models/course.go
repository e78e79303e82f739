package models

import (
	"fmt"
	"time"
)

type PublishStatus string

const (
	StatusDraft     PublishStatus = "draft"
	StatusPublished PublishStatus = "published"
)

type Category struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"category_name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type Course struct {
	ID               uint          `json:"id" gorm:"primarykey"`
	AuthorID         uint          `json:"author_id" gorm:"not null;index"`
	CategoryID       uint          `json:"category_id" gorm:"not null;index"`
	Category         *Category     `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Title            string        `json:"title" gorm:"not null"`
	BriefDescription string        `json:"brief_description"`
	Description      string        `json:"description" gorm:"type:text"`
	ImageURL         string        `json:"image"`
	Price            int64         `json:"price" gorm:"not null;default:0"`
	Status           PublishStatus `json:"status_course" gorm:"type:varchar(20);not null;default:'draft'"`
	Lessons          []Lesson      `json:"course_lessons,omitempty" gorm:"foreignKey:CourseID"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// OwnerID is the course author.
func (c *Course) OwnerID() uint {
	if c == nil {
		return 0
	}
	return c.AuthorID
}

// TotalDuration sums the loaded lessons.
func (c *Course) TotalDuration() time.Duration {
	var total time.Duration
	for _, l := range c.Lessons {
		total += time.Duration(l.VideoSeconds) * time.Second
	}
	return total
}

type Lesson struct {
	ID           uint          `json:"id" gorm:"primarykey"`
	CourseID     uint          `json:"course" gorm:"not null;index"`
	Course       *Course       `json:"-" gorm:"foreignKey:CourseID"`
	Title        string        `json:"title" gorm:"not null"`
	VideoURL     string        `json:"video"`
	Goal         string        `json:"goal" gorm:"type:text"`
	VideoSeconds int           `json:"video_time" gorm:"not null;default:0"`
	Status       PublishStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft'"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// OwnerID is inherited from the parent course, so the course must be loaded.
func (l *Lesson) OwnerID() uint {
	if l == nil {
		return 0
	}
	return l.Course.OwnerID()
}

// FormatDuration renders d as HH:MM:SS.
func FormatDuration(d time.Duration) string {
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}
