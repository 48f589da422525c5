package model

import "time"

// Course represents a course owned by exactly one user
type Course struct {
	ID              int64     `db:"id" json:"id"`
	UserID          int64     `db:"user_id" json:"userId"`
	Title           string    `db:"title" json:"title"`
	Description     string    `db:"description" json:"description"`
	EstimatedTime   *string   `db:"estimated_time" json:"estimatedTime"`
	MaterialsNeeded *string   `db:"materials_needed" json:"materialsNeeded"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`

	// Owner is populated by queries that join the owning user.
	Owner *CourseOwner `db:"-" json:"owner,omitempty"`
}

// CourseOwner is the public subset of the owning user returned with a course
type CourseOwner struct {
	FirstName    string `db:"first_name" json:"firstName"`
	LastName     string `db:"last_name" json:"lastName"`
	EmailAddress string `db:"email_address" json:"emailAddress"`
}
