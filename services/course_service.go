package services

import (
	"context"
	"errors"

	"logo-lms/access"
	"logo-lms/logger"
	"logo-lms/models"
	"logo-lms/repositories"

	"gorm.io/gorm"
)

type CourseService interface {
	List(ctx context.Context, identity *access.Identity, params models.CourseListParams) ([]models.CourseListItem, int64, error)
	Detail(ctx context.Context, id uint) (*models.Course, error)
	Get(ctx context.Context, identity *access.Identity, id uint) (*models.Course, error)
	Create(ctx context.Context, identity *access.Identity, req models.CourseRequest) (*models.Course, error)
	Update(ctx context.Context, identity *access.Identity, id uint, req models.CourseRequest) (*models.Course, error)
	Delete(ctx context.Context, identity *access.Identity, id uint) error
}

type courseService struct {
	courseRepo   repositories.CourseRepository
	categoryRepo repositories.CategoryRepository
	favoriteRepo repositories.FavoriteRepository
	log          *logger.Logger
}

func NewCourseService(
	courseRepo repositories.CourseRepository,
	categoryRepo repositories.CategoryRepository,
	favoriteRepo repositories.FavoriteRepository,
) CourseService {
	return &courseService{
		courseRepo:   courseRepo,
		categoryRepo: categoryRepo,
		favoriteRepo: favoriteRepo,
		log:          logger.New("courses"),
	}
}

// List marks the caller's favorites; anonymous callers see none.
func (s *courseService) List(ctx context.Context, identity *access.Identity, params models.CourseListParams) ([]models.CourseListItem, int64, error) {
	courses, total, err := s.courseRepo.List(ctx, params)
	if err != nil {
		return nil, 0, internal(s.log, "list courses", err)
	}

	favorites := map[uint]bool{}
	if identity.Authenticated() {
		ids, err := s.favoriteRepo.CourseIDs(ctx, identity.UserID)
		if err != nil {
			return nil, 0, internal(s.log, "list favorites", err)
		}
		for _, id := range ids {
			favorites[id] = true
		}
	}

	items := make([]models.CourseListItem, 0, len(courses))
	for i := range courses {
		c := &courses[i]
		items = append(items, models.CourseListItem{
			ID:               c.ID,
			Title:            c.Title,
			BriefDescription: c.BriefDescription,
			ImageURL:         c.ImageURL,
			Price:            c.Price,
			Status:           c.Status,
			Category:         c.Category,
			TotalDuration:    models.FormatDuration(c.TotalDuration()),
			LessonsCount:     len(c.Lessons),
			IsFavorite:       favorites[c.ID],
		})
	}
	return items, total, nil
}

func (s *courseService) Detail(ctx context.Context, id uint) (*models.Course, error) {
	course, err := s.courseRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, lookupError(s.log, err, models.ErrCourseNotFound)
	}
	return course, nil
}

func (s *courseService) Get(ctx context.Context, identity *access.Identity, id uint) (*models.Course, error) {
	if err := authorize(s.log, access.OwnerGate, access.Request{Identity: identity, Action: access.ActionRead}); err != nil {
		return nil, err
	}
	course, err := s.courseRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, lookupError(s.log, err, models.ErrCourseNotFound)
	}
	if err := authorize(s.log, access.CoursePolicy, access.Request{Identity: identity, Action: access.ActionRead, Target: course}); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *courseService) Create(ctx context.Context, identity *access.Identity, req models.CourseRequest) (*models.Course, error) {
	if err := authorize(s.log, access.CoursePolicy, access.Request{Identity: identity, Action: access.ActionCreate}); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	course := &models.Course{AuthorID: identity.UserID}
	applyCourse(course, req)
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, internal(s.log, "create course", err)
	}

	s.log.Info("user %d created course %d", identity.UserID, course.ID)
	return course, nil
}

func (s *courseService) Update(ctx context.Context, identity *access.Identity, id uint, req models.CourseRequest) (*models.Course, error) {
	course, err := s.loadForWrite(ctx, identity, id, access.ActionUpdate)
	if err != nil {
		return nil, err
	}
	if req.CategoryID != course.CategoryID {
		if err := s.checkCategory(ctx, req.CategoryID); err != nil {
			return nil, err
		}
	}

	applyCourse(course, req)
	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, internal(s.log, "update course", err)
	}
	return course, nil
}

func (s *courseService) Delete(ctx context.Context, identity *access.Identity, id uint) error {
	if _, err := s.loadForWrite(ctx, identity, id, access.ActionDelete); err != nil {
		return err
	}
	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return lookupError(s.log, err, models.ErrCourseNotFound)
	}
	s.log.Info("user %d deleted course %d", identity.UserID, id)
	return nil
}

// loadForWrite checks the role before loading and ownership after.
func (s *courseService) loadForWrite(ctx context.Context, identity *access.Identity, id uint, action access.Action) (*models.Course, error) {
	if err := authorize(s.log, access.OwnerGate, access.Request{Identity: identity, Action: action}); err != nil {
		return nil, err
	}
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.log, err, models.ErrCourseNotFound)
	}
	if err := authorize(s.log, access.CoursePolicy, access.Request{Identity: identity, Action: action, Target: course}); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *courseService) checkCategory(ctx context.Context, id uint) error {
	_, err := s.categoryRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrUnknownCategory
	}
	if err != nil {
		return internal(s.log, "load category", err)
	}
	return nil
}

func applyCourse(c *models.Course, req models.CourseRequest) {
	c.CategoryID = req.CategoryID
	c.Title = req.Title
	c.BriefDescription = req.BriefDescription
	c.Description = req.Description
	c.ImageURL = req.ImageURL
	c.Price = req.Price
	c.Status = req.Status
	if c.Status == "" {
		c.Status = models.StatusDraft
	}
}
