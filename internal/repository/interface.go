package repository

import (
	"context"

	"github.com/dalythu/REST-API/internal/db/models"
)

// UserRepository exposes persistence operations for user accounts.
//
// Lookups return ErrNotFound (wrapped) when no record matches. Create
// validates the model first and reports rule violations as
// *models.ValidationError and email collisions as *ConstraintError.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// CourseRepository exposes persistence operations for courses.
// Reads load the owning user alongside the course.
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id string) (*models.Course, error)
	List(ctx context.Context) ([]models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id string) error
}
