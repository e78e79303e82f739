package services

import (
	"context"
	"testing"

	"logo-lms/access"
	"logo-lms/models"
	"logo-lms/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFavoriteAdd(t *testing.T) {
	ctx := context.Background()
	course := &models.Course{ID: 10, AuthorID: author.UserID}

	t.Run("student", func(t *testing.T) {
		favs, courses := &MockFavoriteRepository{}, &MockCourseRepository{}
		courses.On("GetByID", ctx, uint(10)).Return(course, nil)
		favs.On("Exists", ctx, pupil.UserID, uint(10)).Return(false, nil)
		favs.On("Create", ctx, mock.Anything).Return(nil)

		fav, err := NewFavoriteService(favs, courses).Add(ctx, pupil, 10)
		require.NoError(t, err)
		assert.Equal(t, pupil.UserID, fav.UserID)
	})

	t.Run("duplicate by pre-check", func(t *testing.T) {
		favs, courses := &MockFavoriteRepository{}, &MockCourseRepository{}
		courses.On("GetByID", ctx, uint(10)).Return(course, nil)
		favs.On("Exists", ctx, pupil.UserID, uint(10)).Return(true, nil)

		_, err := NewFavoriteService(favs, courses).Add(ctx, pupil, 10)
		assert.Equal(t, models.ErrAlreadyFavorited, err)
		favs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate by unique index", func(t *testing.T) {
		favs, courses := &MockFavoriteRepository{}, &MockCourseRepository{}
		courses.On("GetByID", ctx, uint(10)).Return(course, nil)
		favs.On("Exists", ctx, pupil.UserID, uint(10)).Return(false, nil)
		favs.On("Create", ctx, mock.Anything).Return(repositories.ErrDuplicate)

		_, err := NewFavoriteService(favs, courses).Add(ctx, pupil, 10)
		assert.Equal(t, models.ErrAlreadyFavorited, err)
	})

	t.Run("owner role denied", func(t *testing.T) {
		favs, courses := &MockFavoriteRepository{}, &MockCourseRepository{}
		_, err := NewFavoriteService(favs, courses).Add(ctx, author, 10)
		assert.Equal(t, access.ErrWrongRole, err)
		courses.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("missing course", func(t *testing.T) {
		favs, courses := &MockFavoriteRepository{}, &MockCourseRepository{}
		courses.On("GetByID", ctx, uint(10)).Return(nil, gorm.ErrRecordNotFound)
		_, err := NewFavoriteService(favs, courses).Add(ctx, pupil, 10)
		assert.Equal(t, models.ErrCourseNotFound, err)
	})
}

func TestFavoriteRemove(t *testing.T) {
	ctx := context.Background()

	favs := &MockFavoriteRepository{}
	fav := &models.Favorite{ID: 1, UserID: pupil.UserID, CourseID: 10}
	favs.On("Get", ctx, pupil.UserID, uint(10)).Return(fav, nil)
	favs.On("Get", ctx, pupil.UserID, uint(11)).Return(nil, gorm.ErrRecordNotFound)
	favs.On("Delete", ctx, fav).Return(nil)
	svc := NewFavoriteService(favs, &MockCourseRepository{})

	assert.NoError(t, svc.Remove(ctx, pupil, 10))
	assert.Equal(t, models.ErrFavoriteNotFound, svc.Remove(ctx, pupil, 11))
	assert.Equal(t, access.ErrUnauthenticated, svc.Remove(ctx, nil, 10))
}

func TestPurchase(t *testing.T) {
	ctx := context.Background()
	course := &models.Course{ID: 10}

	purchases, courses := &MockPurchaseRepository{}, &MockCourseRepository{}
	courses.On("GetByID", ctx, uint(10)).Return(course, nil)
	purchases.On("Exists", ctx, pupil.UserID, uint(10)).Return(false, nil).Once()
	purchases.On("Create", ctx, mock.Anything).Return(nil).Once()
	purchases.On("Exists", ctx, pupil.UserID, uint(10)).Return(true, nil)
	svc := NewPurchaseService(purchases, courses)

	p, err := svc.Buy(ctx, pupil, 10)
	require.NoError(t, err)
	assert.Equal(t, uint(10), p.CourseID)

	_, err = svc.Buy(ctx, pupil, 10)
	assert.Equal(t, models.ErrAlreadyPurchased, err)

	_, err = svc.Buy(ctx, author, 10)
	assert.Equal(t, access.ErrWrongRole, err)

	_, err = svc.Buy(ctx, roleless, 10)
	assert.Equal(t, access.ErrWrongRole, err)

	purchases.AssertNumberOfCalls(t, "Create", 1)
}

func TestPurchaseDuplicateAtInsert(t *testing.T) {
	ctx := context.Background()
	purchases, courses := &MockPurchaseRepository{}, &MockCourseRepository{}
	courses.On("GetByID", ctx, uint(10)).Return(&models.Course{ID: 10}, nil)
	purchases.On("Exists", ctx, pupil.UserID, uint(10)).Return(false, nil)
	purchases.On("Create", ctx, mock.Anything).Return(repositories.ErrDuplicate)

	_, err := NewPurchaseService(purchases, courses).Buy(ctx, pupil, 10)
	assert.Equal(t, models.ErrAlreadyPurchased, err)
}

func TestReviewCreate(t *testing.T) {
	ctx := context.Background()
	courseID, lessonID := uint(10), uint(7)

	newSvc := func() (ReviewService, *MockReviewRepository, *MockCourseRepository, *MockLessonRepository) {
		reviews, courses, lessons := &MockReviewRepository{}, &MockCourseRepository{}, &MockLessonRepository{}
		return NewReviewService(reviews, courses, lessons), reviews, courses, lessons
	}

	t.Run("course review", func(t *testing.T) {
		svc, reviews, courses, _ := newSvc()
		courses.On("GetByID", ctx, courseID).Return(&models.Course{ID: courseID}, nil)
		reviews.On("Exists", ctx, pupil.UserID, &courseID, (*uint)(nil)).Return(false, nil)
		reviews.On("Create", ctx, mock.Anything).Return(nil)

		res, err := svc.Create(ctx, pupil, models.ReviewRequest{CourseID: &courseID, Rating: 5, Comment: "great"})
		require.NoError(t, err)
		assert.Equal(t, "pupil", res.User.Username)
		assert.Equal(t, 5, res.Rating)
	})

	t.Run("lesson review already exists", func(t *testing.T) {
		svc, reviews, _, lessons := newSvc()
		lessons.On("GetByID", ctx, lessonID).Return(&models.Lesson{ID: lessonID}, nil)
		reviews.On("Exists", ctx, pupil.UserID, (*uint)(nil), &lessonID).Return(true, nil)

		_, err := svc.Create(ctx, pupil, models.ReviewRequest{LessonID: &lessonID, Rating: 3})
		assert.Equal(t, models.ErrAlreadyReviewed, err)
	})

	t.Run("lost race at insert", func(t *testing.T) {
		svc, reviews, courses, _ := newSvc()
		courses.On("GetByID", ctx, courseID).Return(&models.Course{ID: courseID}, nil)
		reviews.On("Exists", ctx, pupil.UserID, &courseID, (*uint)(nil)).Return(false, nil)
		reviews.On("Create", ctx, mock.Anything).Return(repositories.ErrDuplicate)

		_, err := svc.Create(ctx, pupil, models.ReviewRequest{CourseID: &courseID, Rating: 4})
		assert.Equal(t, models.ErrAlreadyReviewed, err)
	})

	t.Run("both targets", func(t *testing.T) {
		svc, _, _, _ := newSvc()
		_, err := svc.Create(ctx, pupil, models.ReviewRequest{CourseID: &courseID, LessonID: &lessonID, Rating: 4})
		assert.Equal(t, models.ErrReviewTarget, err)
	})

	t.Run("owner denied", func(t *testing.T) {
		svc, _, _, _ := newSvc()
		_, err := svc.Create(ctx, author, models.ReviewRequest{CourseID: &courseID, Rating: 4})
		assert.Equal(t, access.ErrWrongRole, err)
	})
}

func TestReviewMutationsRequireAuthor(t *testing.T) {
	ctx := context.Background()
	courseID := uint(10)
	review := &models.Review{ID: 1, UserID: pupil.UserID, CourseID: &courseID, Rating: 2, User: &models.User{Username: "pupil"}}
	classmate := &access.Identity{UserID: 9, Username: "classmate", Role: models.RoleStudent}

	reviews := &MockReviewRepository{}
	reviews.On("GetByID", ctx, uint(1)).Return(review, nil)
	reviews.On("Update", ctx, review).Return(nil)
	svc := NewReviewService(reviews, &MockCourseRepository{}, &MockLessonRepository{})

	rating := 5
	_, err := svc.Update(ctx, classmate, 1, models.ReviewUpdateRequest{Rating: &rating})
	assert.Equal(t, access.ErrNotOwner, err)
	assert.Equal(t, access.ErrNotOwner, svc.Delete(ctx, classmate, 1))
	reviews.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)

	res, err := svc.Update(ctx, pupil, 1, models.ReviewUpdateRequest{Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Rating)
}
