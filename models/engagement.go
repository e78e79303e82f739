package models

import "time"

type Favorite struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user" gorm:"not null;uniqueIndex:idx_favorites_user_course"`
	CourseID  uint      `json:"course" gorm:"not null;uniqueIndex:idx_favorites_user_course"`
	CreatedAt time.Time `json:"created_at"`
}

func (f *Favorite) OwnerID() uint {
	if f == nil {
		return 0
	}
	return f.UserID
}

// PurchasedCourse rows are never updated or deleted through the API.
type PurchasedCourse struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user" gorm:"not null;uniqueIndex:idx_purchases_user_course"`
	CourseID  uint      `json:"course" gorm:"not null;uniqueIndex:idx_purchases_user_course"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *PurchasedCourse) OwnerID() uint {
	if p == nil {
		return 0
	}
	return p.UserID
}

// Review targets exactly one of a course or a lesson.
type Review struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"-" gorm:"not null;uniqueIndex:idx_reviews_user_course;uniqueIndex:idx_reviews_user_lesson"`
	User      *User     `json:"-" gorm:"foreignKey:UserID"`
	CourseID  *uint     `json:"course" gorm:"uniqueIndex:idx_reviews_user_course"`
	LessonID  *uint     `json:"lesson" gorm:"uniqueIndex:idx_reviews_user_lesson"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment" gorm:"type:text"`
	City      string    `json:"city"`
	Region    string    `json:"region"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Review) OwnerID() uint {
	if r == nil {
		return 0
	}
	return r.UserID
}

// BlacklistedToken records a revoked refresh token by its jti.
type BlacklistedToken struct {
	ID        uint      `gorm:"primarykey"`
	JTI       string    `gorm:"column:jti;uniqueIndex;not null"`
	UserID    uint      `gorm:"not null;index"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}
