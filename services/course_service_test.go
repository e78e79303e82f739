package services

import (
	"context"
	"testing"

	"logo-lms/access"
	"logo-lms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var (
	author   = &access.Identity{UserID: 1, Username: "teacher", Role: models.RoleOwner}
	rival    = &access.Identity{UserID: 2, Username: "rival", Role: models.RoleOwner}
	pupil    = &access.Identity{UserID: 3, Username: "pupil", Role: models.RoleStudent}
	roleless = &access.Identity{UserID: 4, Username: "nobody"}
)

type courseFixture struct {
	svc        CourseService
	courses    *MockCourseRepository
	categories *MockCategoryRepository
	favorites  *MockFavoriteRepository
}

func newCourseFixture() *courseFixture {
	f := &courseFixture{
		courses:    &MockCourseRepository{},
		categories: &MockCategoryRepository{},
		favorites:  &MockFavoriteRepository{},
	}
	f.svc = NewCourseService(f.courses, f.categories, f.favorites)
	return f
}

func TestCourseListMarksFavorites(t *testing.T) {
	ctx := context.Background()
	params := models.CourseListParams{Page: 1, Limit: 10}
	courses := []models.Course{
		{ID: 10, Title: "Go", Lessons: []models.Lesson{{VideoSeconds: 60}, {VideoSeconds: 30}}},
		{ID: 11, Title: "SQL"},
	}

	f := newCourseFixture()
	f.courses.On("List", ctx, params).Return(courses, int64(2), nil)
	f.favorites.On("CourseIDs", ctx, pupil.UserID).Return([]uint{11}, nil)

	items, total, err := f.svc.List(ctx, pupil, params)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	assert.False(t, items[0].IsFavorite)
	assert.Equal(t, 2, items[0].LessonsCount)
	assert.Equal(t, "00:01:30", items[0].TotalDuration)
	assert.True(t, items[1].IsFavorite)
	assert.Equal(t, "00:00:00", items[1].TotalDuration)
}

func TestCourseListAnonymous(t *testing.T) {
	ctx := context.Background()
	params := models.CourseListParams{Page: 1, Limit: 10}

	f := newCourseFixture()
	f.courses.On("List", ctx, params).Return([]models.Course{{ID: 10}}, int64(1), nil)

	items, _, err := f.svc.List(ctx, nil, params)
	require.NoError(t, err)
	assert.False(t, items[0].IsFavorite)
	f.favorites.AssertNotCalled(t, "CourseIDs", mock.Anything, mock.Anything)
}

func TestCourseCreate(t *testing.T) {
	ctx := context.Background()
	req := models.CourseRequest{CategoryID: 5, Title: "Go", Price: 1000}

	t.Run("owner", func(t *testing.T) {
		f := newCourseFixture()
		f.categories.On("GetByID", ctx, uint(5)).Return(&models.Category{ID: 5}, nil)
		f.courses.On("Create", ctx, mock.MatchedBy(func(c *models.Course) bool {
			return c.AuthorID == author.UserID && c.Status == models.StatusDraft
		})).Return(nil)

		course, err := f.svc.Create(ctx, author, req)
		require.NoError(t, err)
		assert.Equal(t, author.UserID, course.OwnerID())
	})

	t.Run("student denied before any store access", func(t *testing.T) {
		f := newCourseFixture()
		_, err := f.svc.Create(ctx, pupil, req)
		assert.Equal(t, access.ErrWrongRole, err)
		f.categories.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		f.courses.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unset role denied", func(t *testing.T) {
		f := newCourseFixture()
		_, err := f.svc.Create(ctx, roleless, req)
		assert.Equal(t, access.ErrWrongRole, err)
	})

	t.Run("anonymous", func(t *testing.T) {
		f := newCourseFixture()
		_, err := f.svc.Create(ctx, nil, req)
		assert.Equal(t, access.ErrUnauthenticated, err)
	})

	t.Run("unknown category", func(t *testing.T) {
		f := newCourseFixture()
		f.categories.On("GetByID", ctx, uint(5)).Return(nil, gorm.ErrRecordNotFound)
		_, err := f.svc.Create(ctx, author, req)
		assert.Equal(t, models.ErrUnknownCategory, err)
	})
}

func TestCourseUpdateAndDeleteRequireOwnership(t *testing.T) {
	ctx := context.Background()
	course := func() *models.Course { return &models.Course{ID: 10, AuthorID: author.UserID, CategoryID: 5} }

	t.Run("other owner cannot delete", func(t *testing.T) {
		f := newCourseFixture()
		f.courses.On("GetByID", ctx, uint(10)).Return(course(), nil)

		err := f.svc.Delete(ctx, rival, 10)
		assert.Equal(t, access.ErrNotOwner, err)
		f.courses.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("other owner cannot update", func(t *testing.T) {
		f := newCourseFixture()
		f.courses.On("GetByID", ctx, uint(10)).Return(course(), nil)

		_, err := f.svc.Update(ctx, rival, 10, models.CourseRequest{CategoryID: 5, Title: "mine now"})
		assert.Equal(t, access.ErrNotOwner, err)
		f.courses.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("author deletes", func(t *testing.T) {
		f := newCourseFixture()
		f.courses.On("GetByID", ctx, uint(10)).Return(course(), nil)
		f.courses.On("Delete", ctx, uint(10)).Return(nil)

		assert.NoError(t, f.svc.Delete(ctx, author, 10))
		f.courses.AssertExpectations(t)
	})

	t.Run("author updates", func(t *testing.T) {
		f := newCourseFixture()
		f.courses.On("GetByID", ctx, uint(10)).Return(course(), nil)
		f.courses.On("Update", ctx, mock.Anything).Return(nil)

		updated, err := f.svc.Update(ctx, author, 10, models.CourseRequest{CategoryID: 5, Title: "Go 2", Status: models.StatusPublished})
		require.NoError(t, err)
		assert.Equal(t, "Go 2", updated.Title)
		assert.Equal(t, models.StatusPublished, updated.Status)
		f.categories.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("missing course", func(t *testing.T) {
		f := newCourseFixture()
		f.courses.On("GetByID", ctx, uint(10)).Return(nil, gorm.ErrRecordNotFound)
		assert.Equal(t, models.ErrCourseNotFound, f.svc.Delete(ctx, author, 10))
	})
}
