package repository

import (
	"context"
	"database/sql"
	"errors"

	"courseapi/internal/model"
)

// CourseRepository defines the interface for interacting with course data
type CourseRepository interface {
	// ListCourses returns every course with its owner, ordered by ID
	ListCourses(ctx context.Context) ([]model.Course, error)
	// GetCourseByID retrieves a course and its owner, or nil when absent
	GetCourseByID(ctx context.Context, courseID int64) (*model.Course, error)
	CreateCourse(ctx context.Context, c *model.Course) error
	UpdateCourse(ctx context.Context, c *model.Course) error
	DeleteCourse(ctx context.Context, courseID int64) error
}

type courseRepo struct {
	db *sql.DB
}

// NewCourseRepo creates a new CourseRepository
func NewCourseRepo(db *sql.DB) CourseRepository {
	return &courseRepo{db: db}
}

const courseWithOwnerColumns = `
	c.id, c.user_id, c.title, c.description, c.estimated_time, c.materials_needed,
	c.created_at, c.updated_at, u.first_name, u.last_name, u.email_address`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourseWithOwner(row rowScanner) (*model.Course, error) {
	var c model.Course
	var owner model.CourseOwner
	var estimatedTime, materialsNeeded sql.NullString
	if err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Title,
		&c.Description,
		&estimatedTime,
		&materialsNeeded,
		&c.CreatedAt,
		&c.UpdatedAt,
		&owner.FirstName,
		&owner.LastName,
		&owner.EmailAddress,
	); err != nil {
		return nil, err
	}
	c.EstimatedTime = nullableString(estimatedTime)
	c.MaterialsNeeded = nullableString(materialsNeeded)
	c.Owner = &owner
	return &c, nil
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// ListCourses retrieves all courses joined with their owners
func (r *courseRepo) ListCourses(ctx context.Context) ([]model.Course, error) {
	query := `SELECT ` + courseWithOwnerColumns + `
		FROM courses c
		JOIN users u ON u.id = c.user_id
		ORDER BY c.id ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	courses := []model.Course{}
	for rows.Next() {
		c, err := scanCourseWithOwner(rows)
		if err != nil {
			return nil, translateError(err)
		}
		courses = append(courses, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}
	return courses, nil
}

// GetCourseByID retrieves a course by its ID
func (r *courseRepo) GetCourseByID(ctx context.Context, courseID int64) (*model.Course, error) {
	query := `SELECT ` + courseWithOwnerColumns + `
		FROM courses c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = $1
	`
	c, err := scanCourseWithOwner(r.db.QueryRowContext(ctx, query, courseID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, translateError(err)
	}
	return c, nil
}

// CreateCourse inserts a new course and fills in the generated fields
func (r *courseRepo) CreateCourse(ctx context.Context, c *model.Course) error {
	query := `
		INSERT INTO courses (user_id, title, description, estimated_time, materials_needed)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, c.UserID, c.Title, c.Description, c.EstimatedTime, c.MaterialsNeeded).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return translateError(err)
	}
	return nil
}

// UpdateCourse overwrites the editable columns of an existing course
func (r *courseRepo) UpdateCourse(ctx context.Context, c *model.Course) error {
	query := `
		UPDATE courses
		SET title = $1, description = $2, estimated_time = $3, materials_needed = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(ctx, query, c.Title, c.Description, c.EstimatedTime, c.MaterialsNeeded, c.ID).
		Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return translateError(err)
	}
	return nil
}

// DeleteCourse permanently removes a course
func (r *courseRepo) DeleteCourse(ctx context.Context, courseID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, courseID)
	if err != nil {
		return translateError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return translateError(err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
