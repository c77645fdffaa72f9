package server

import (
	"context"
	"errors"

	"github.com/dalythu/REST-API/internal/db/models"
)

// mockUserRepository implements repository.UserRepository for handler tests
type mockUserRepository struct {
	createFunc     func(ctx context.Context, user *models.User) error
	getByIDFunc    func(ctx context.Context, id string) (*models.User, error)
	getByEmailFunc func(ctx context.Context, email string) (*models.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return errors.New("not implemented")
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return nil, errors.New("not implemented")
}

// mockCourseRepository implements repository.CourseRepository for handler tests
type mockCourseRepository struct {
	createFunc  func(ctx context.Context, course *models.Course) error
	getByIDFunc func(ctx context.Context, id string) (*models.Course, error)
	listFunc    func(ctx context.Context) ([]models.Course, error)
	updateFunc  func(ctx context.Context, course *models.Course) error
	deleteFunc  func(ctx context.Context, id string) error
}

func (m *mockCourseRepository) Create(ctx context.Context, course *models.Course) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, course)
	}
	return errors.New("not implemented")
}

func (m *mockCourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCourseRepository) List(ctx context.Context) ([]models.Course, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCourseRepository) Update(ctx context.Context, course *models.Course) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, course)
	}
	return errors.New("not implemented")
}

func (m *mockCourseRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}
