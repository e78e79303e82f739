package models

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     Role   `json:"role" binding:"omitempty,role"`
}

type RegisterResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// LoginRequest accepts either the username or the email as identifier.
type LoginRequest struct {
	Username string `json:"username" binding:"required_without=Email"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required"`
}

type LoginUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginResponse struct {
	User    LoginUser `json:"user"`
	Access  string    `json:"access"`
	Refresh string    `json:"refresh"`
}

type TokenRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type RefreshResponse struct {
	Access string `json:"access"`
}

type UpdateProfileRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=50"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Avatar   *string `json:"avatar" binding:"omitempty,url"`
}

type ProfileResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Email    string `json:"email"`
}

type ProfileListItem struct {
	ID               uint   `json:"id"`
	Username         string `json:"username"`
	Avatar           string `json:"avatar"`
	Role             Role   `json:"role"`
	Favorites        []uint `json:"favorites"`
	PurchasedCourses []uint `json:"purchased_courses"`
}

type CourseRequest struct {
	CategoryID       uint          `json:"category" binding:"required"`
	Title            string        `json:"title" binding:"required,min=1,max=255"`
	BriefDescription string        `json:"brief_description" binding:"max=500"`
	Description      string        `json:"description"`
	ImageURL         string        `json:"image" binding:"omitempty,url"`
	Price            int64         `json:"price" binding:"gte=0"`
	Status           PublishStatus `json:"status_course" binding:"omitempty,oneof=draft published"`
}

type CourseListParams struct {
	CategoryID uint   `form:"category"`
	Status     string `form:"status" binding:"omitempty,oneof=draft published"`
	Page       int    `form:"page,default=1" binding:"gte=1"`
	Limit      int    `form:"limit,default=10" binding:"gte=1,lte=100"`
}

type CourseListItem struct {
	ID               uint          `json:"id"`
	Title            string        `json:"title"`
	BriefDescription string        `json:"brief_description"`
	ImageURL         string        `json:"image"`
	Price            int64         `json:"price"`
	Status           PublishStatus `json:"status_course"`
	Category         *Category     `json:"category,omitempty"`
	TotalDuration    string        `json:"total_duration"`
	LessonsCount     int           `json:"lessons_count"`
	IsFavorite       bool          `json:"is_favorite"`
}

type LessonRequest struct {
	CourseID     uint          `json:"course" binding:"required"`
	Title        string        `json:"title" binding:"required,min=1,max=255"`
	VideoURL     string        `json:"video" binding:"omitempty,url"`
	Goal         string        `json:"goal"`
	VideoSeconds int           `json:"video_time" binding:"gte=0"`
	Status       PublishStatus `json:"status" binding:"omitempty,oneof=draft published"`
}

type FavoriteRequest struct {
	CourseID uint `json:"course" binding:"required"`
}

type PurchaseRequest struct {
	CourseID uint `json:"course" binding:"required"`
}

// ReviewRequest targets exactly one of course or lesson.
type ReviewRequest struct {
	CourseID *uint  `json:"course" binding:"required_without=LessonID,excluded_with=LessonID"`
	LessonID *uint  `json:"lesson" binding:"required_without=CourseID"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment" binding:"max=2000"`
	City     string `json:"city" binding:"max=100"`
	Region   string `json:"region" binding:"max=100"`
}

type ReviewUpdateRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" binding:"omitempty,max=2000"`
	City    *string `json:"city" binding:"omitempty,max=100"`
	Region  *string `json:"region" binding:"omitempty,max=100"`
}

type ReviewListParams struct {
	CourseID uint `form:"course"`
	LessonID uint `form:"lesson"`
}

type ReviewAuthor struct {
	Username string `json:"username"`
}

type ReviewResponse struct {
	ID       uint         `json:"id"`
	User     ReviewAuthor `json:"user"`
	CourseID *uint        `json:"course,omitempty"`
	LessonID *uint        `json:"lesson,omitempty"`
	Rating   int          `json:"rating"`
	Comment  string       `json:"comment"`
	City     string       `json:"city"`
	Region   string       `json:"region"`
}

// NewReviewResponse expects r.User to be preloaded.
func NewReviewResponse(r *Review) ReviewResponse {
	res := ReviewResponse{
		ID:       r.ID,
		CourseID: r.CourseID,
		LessonID: r.LessonID,
		Rating:   r.Rating,
		Comment:  r.Comment,
		City:     r.City,
		Region:   r.Region,
	}
	if r.User != nil {
		res.User.Username = r.User.Username
	}
	return res
}
