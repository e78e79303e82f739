package services

import (
	"context"

	"logo-lms/access"
	"logo-lms/logger"
	"logo-lms/models"
	"logo-lms/repositories"
)

// LessonService guards every lesson through its parent course's owner.
type LessonService interface {
	Create(ctx context.Context, identity *access.Identity, req models.LessonRequest) (*models.Lesson, error)
	Get(ctx context.Context, identity *access.Identity, id uint) (*models.Lesson, error)
	Update(ctx context.Context, identity *access.Identity, id uint, req models.LessonRequest) (*models.Lesson, error)
	Delete(ctx context.Context, identity *access.Identity, id uint) error
}

type lessonService struct {
	lessonRepo repositories.LessonRepository
	courseRepo repositories.CourseRepository
	log        *logger.Logger
}

func NewLessonService(lessonRepo repositories.LessonRepository, courseRepo repositories.CourseRepository) LessonService {
	return &lessonService{
		lessonRepo: lessonRepo,
		courseRepo: courseRepo,
		log:        logger.New("lessons"),
	}
}

func (s *lessonService) Create(ctx context.Context, identity *access.Identity, req models.LessonRequest) (*models.Lesson, error) {
	course, err := s.ownedCourse(ctx, identity, req.CourseID, access.ActionCreate)
	if err != nil {
		return nil, err
	}

	lesson := &models.Lesson{}
	applyLesson(lesson, req)
	if err := s.lessonRepo.Create(ctx, lesson); err != nil {
		return nil, internal(s.log, "create lesson", err)
	}

	s.log.Info("user %d added lesson %d to course %d", identity.UserID, lesson.ID, course.ID)
	return lesson, nil
}

func (s *lessonService) Get(ctx context.Context, identity *access.Identity, id uint) (*models.Lesson, error) {
	return s.load(ctx, identity, id, access.ActionRead)
}

// Update may move the lesson, in which case the caller must own both courses.
func (s *lessonService) Update(ctx context.Context, identity *access.Identity, id uint, req models.LessonRequest) (*models.Lesson, error) {
	lesson, err := s.load(ctx, identity, id, access.ActionUpdate)
	if err != nil {
		return nil, err
	}
	if req.CourseID != lesson.CourseID {
		course, err := s.ownedCourse(ctx, identity, req.CourseID, access.ActionUpdate)
		if err != nil {
			return nil, err
		}
		lesson.Course = course
	}

	applyLesson(lesson, req)
	if err := s.lessonRepo.Update(ctx, lesson); err != nil {
		return nil, internal(s.log, "update lesson", err)
	}
	return lesson, nil
}

func (s *lessonService) Delete(ctx context.Context, identity *access.Identity, id uint) error {
	if _, err := s.load(ctx, identity, id, access.ActionDelete); err != nil {
		return err
	}
	if err := s.lessonRepo.Delete(ctx, id); err != nil {
		return lookupError(s.log, err, models.ErrLessonNotFound)
	}
	return nil
}

func (s *lessonService) load(ctx context.Context, identity *access.Identity, id uint, action access.Action) (*models.Lesson, error) {
	if err := authorize(s.log, access.OwnerGate, access.Request{Identity: identity, Action: action}); err != nil {
		return nil, err
	}
	lesson, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.log, err, models.ErrLessonNotFound)
	}
	if err := authorize(s.log, access.LessonPolicy, access.Request{Identity: identity, Action: action, Target: lesson}); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *lessonService) ownedCourse(ctx context.Context, identity *access.Identity, courseID uint, action access.Action) (*models.Course, error) {
	if err := authorize(s.log, access.OwnerGate, access.Request{Identity: identity, Action: action}); err != nil {
		return nil, err
	}
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, lookupError(s.log, err, models.ErrCourseNotFound)
	}
	if err := authorize(s.log, access.LessonPolicy, access.Request{Identity: identity, Action: action, Target: course}); err != nil {
		return nil, err
	}
	return course, nil
}

func applyLesson(l *models.Lesson, req models.LessonRequest) {
	l.CourseID = req.CourseID
	l.Title = req.Title
	l.VideoURL = req.VideoURL
	l.Goal = req.Goal
	l.VideoSeconds = req.VideoSeconds
	l.Status = req.Status
	if l.Status == "" {
		l.Status = models.StatusDraft
	}
}
