package handlers

import (
	"context"

	"logo-lms/access"
	"logo-lms/models"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RegisterResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LoginResponse), args.Error(1)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*models.RefreshResponse, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshResponse), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, identity *access.Identity, refreshToken string) error {
	args := m.Called(ctx, identity, refreshToken)
	return args.Error(0)
}

type MockCourseService struct {
	mock.Mock
}

func (m *MockCourseService) List(ctx context.Context, identity *access.Identity, params models.CourseListParams) ([]models.CourseListItem, int64, error) {
	args := m.Called(ctx, identity, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.CourseListItem), args.Get(1).(int64), args.Error(2)
}

func (m *MockCourseService) Detail(ctx context.Context, id uint) (*models.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *MockCourseService) Get(ctx context.Context, identity *access.Identity, id uint) (*models.Course, error) {
	args := m.Called(ctx, identity, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *MockCourseService) Create(ctx context.Context, identity *access.Identity, req models.CourseRequest) (*models.Course, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *MockCourseService) Update(ctx context.Context, identity *access.Identity, id uint, req models.CourseRequest) (*models.Course, error) {
	args := m.Called(ctx, identity, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *MockCourseService) Delete(ctx context.Context, identity *access.Identity, id uint) error {
	args := m.Called(ctx, identity, id)
	return args.Error(0)
}

type MockPurchaseService struct {
	mock.Mock
}

func (m *MockPurchaseService) Buy(ctx context.Context, identity *access.Identity, courseID uint) (*models.PurchasedCourse, error) {
	args := m.Called(ctx, identity, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PurchasedCourse), args.Error(1)
}

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) List(ctx context.Context, params models.ReviewListParams) ([]models.ReviewResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) Get(ctx context.Context, id uint) (*models.ReviewResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) Create(ctx context.Context, identity *access.Identity, req models.ReviewRequest) (*models.ReviewResponse, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) Update(ctx context.Context, identity *access.Identity, id uint, req models.ReviewUpdateRequest) (*models.ReviewResponse, error) {
	args := m.Called(ctx, identity, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) Delete(ctx context.Context, identity *access.Identity, id uint) error {
	args := m.Called(ctx, identity, id)
	return args.Error(0)
}
