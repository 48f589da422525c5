package model

import "time"

type CourseEventType string

const (
	CourseCreated CourseEventType = "course.created"
	CourseUpdated CourseEventType = "course.updated"
	CourseDeleted CourseEventType = "course.deleted"
)

// CourseEvent is published after a course is created, updated or deleted
type CourseEvent struct {
	ID         string          `json:"id"`
	Type       CourseEventType `json:"type"`
	CourseID   int64           `json:"courseId"`
	UserID     int64           `json:"userId"`
	OccurredAt time.Time       `json:"occurredAt"`
}
