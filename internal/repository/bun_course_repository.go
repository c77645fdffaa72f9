package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dalythu/REST-API/internal/db/bunx"
	"github.com/dalythu/REST-API/internal/db/models"
	"github.com/uptrace/bun"
)

// BunCourseRepository implements CourseRepository using Bun ORM
type BunCourseRepository struct {
	db *bun.DB
}

// NewBunCourseRepository creates a new Bun-based course repository
func NewBunCourseRepository(db *bun.DB) *BunCourseRepository {
	return &BunCourseRepository{db: db}
}

// Create validates and inserts a new course
func (r *BunCourseRepository) Create(ctx context.Context, course *models.Course) error {
	if course.ID == "" {
		course.ID = bunx.NewUUIDv7()
	}
	if err := course.Validate(); err != nil {
		return err
	}

	_, err := r.db.NewInsert().
		Model(course).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

// GetByID retrieves a course and its owner by course ID
func (r *BunCourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	course := new(models.Course)
	err := r.db.NewSelect().
		Model(course).
		Relation("Owner").
		Where("c.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("course %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get course by ID: %w", err)
	}
	return course, nil
}

// List retrieves all courses with their owners
func (r *BunCourseRepository) List(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := r.db.NewSelect().
		Model(&courses).
		Relation("Owner").
		Order("c.created_at ASC", "c.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// Update validates and persists changes to an existing course
func (r *BunCourseRepository) Update(ctx context.Context, course *models.Course) error {
	if err := course.Validate(); err != nil {
		return err
	}

	course.UpdatedAt = time.Now()
	result, err := r.db.NewUpdate().
		Model(course).
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("course %s: %w", course.ID, ErrNotFound)
	}

	return nil
}

// Delete removes a course by ID
func (r *BunCourseRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.NewDelete().
		Model((*models.Course)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("course %s: %w", id, ErrNotFound)
	}

	return nil
}
