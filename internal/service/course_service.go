package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"courseapi/internal/model"
	"courseapi/internal/pubsub"
	"courseapi/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var ErrCourseNotFound = errors.New("course not found")

// CourseService defines the interface for course operations
type CourseService interface {
	ListCourses(ctx context.Context) ([]model.Course, error)
	// GetCourseByID retrieves a course with its owner, or nil when absent
	GetCourseByID(ctx context.Context, courseID int64) (*model.Course, error)
	CreateCourse(ctx context.Context, c *model.Course) (*model.Course, error)
	// UpdateCourse updates an existing course
	UpdateCourse(ctx context.Context, c *model.Course) (*model.Course, error)
	// DeleteCourse deletes a course by its ID
	DeleteCourse(ctx context.Context, c *model.Course) error
}

// courseService is the implementation of CourseService
type courseService struct {
	repo      repository.CourseRepository
	publisher pubsub.Publisher
	topic     string
	logger    zerolog.Logger
}

// NewCourseService creates a new CourseService. Lifecycle events go to topic
// through publisher; pass pubsub.NoopPublisher to disable them.
func NewCourseService(repo repository.CourseRepository, publisher pubsub.Publisher, topic string, logger zerolog.Logger) CourseService {
	return &courseService{repo: repo, publisher: publisher, topic: topic, logger: logger}
}

func (s *courseService) ListCourses(ctx context.Context) ([]model.Course, error) {
	return s.repo.ListCourses(ctx)
}

func (s *courseService) GetCourseByID(ctx context.Context, courseID int64) (*model.Course, error) {
	return s.repo.GetCourseByID(ctx, courseID)
}

// CreateCourse creates a new course record
func (s *courseService) CreateCourse(ctx context.Context, c *model.Course) (*model.Course, error) {
	if err := s.repo.CreateCourse(ctx, c); err != nil {
		return nil, err
	}
	s.publish(ctx, model.CourseCreated, c)
	return c, nil
}

func (s *courseService) UpdateCourse(ctx context.Context, c *model.Course) (*model.Course, error) {
	if err := s.repo.UpdateCourse(ctx, c); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	s.publish(ctx, model.CourseUpdated, c)
	return c, nil
}

func (s *courseService) DeleteCourse(ctx context.Context, c *model.Course) error {
	if err := s.repo.DeleteCourse(ctx, c.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCourseNotFound
		}
		return err
	}
	s.publish(ctx, model.CourseDeleted, c)
	return nil
}

// publish is best effort: the write has already been committed.
func (s *courseService) publish(ctx context.Context, eventType model.CourseEventType, c *model.Course) {
	event := model.CourseEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		CourseID:   c.ID,
		UserID:     c.UserID,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error().Err(err).Str("event_type", string(eventType)).Msg("Failed to marshal course event")
		return
	}
	if _, err := s.publisher.Publish(ctx, s.topic, payload); err != nil {
		s.logger.Error().Err(err).
			Str("event_type", string(eventType)).
			Int64("course_id", c.ID).
			Msg("Failed to publish course event")
	}
}
