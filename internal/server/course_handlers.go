package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dalythu/REST-API/internal/auth"
	"github.com/dalythu/REST-API/internal/db/models"
	"github.com/dalythu/REST-API/internal/repository"
)

// CourseHandlers wires the /api/courses endpoints.
//
// Mutating handlers follow a fixed order: fetch the course, report 404 when
// it does not exist, check ownership against the authenticated principal,
// then act on the already-fetched record. The not-found check strictly
// precedes the ownership check so non-owners learn nothing beyond what an
// unauthenticated client would.
type CourseHandlers struct {
	courses repository.CourseRepository
}

// NewCourseHandlers creates a new handler set for course operations
func NewCourseHandlers(courses repository.CourseRepository) *CourseHandlers {
	return &CourseHandlers{courses: courses}
}

// courseResponse is the client-visible shape of a course, embedding the
// owner's safe fields.
type courseResponse struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	EstimatedTime   string        `json:"estimatedTime,omitempty"`
	MaterialsNeeded string        `json:"materialsNeeded,omitempty"`
	User            *userResponse `json:"user,omitempty"`
}

func newCourseResponse(c *models.Course) courseResponse {
	resp := courseResponse{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		EstimatedTime:   c.EstimatedTime,
		MaterialsNeeded: c.MaterialsNeeded,
	}
	if c.Owner != nil {
		owner := newUserResponse(c.Owner)
		resp.User = &owner
	}
	return resp
}

// courseRequest is the POST/PUT body for course writes. Ownership is never
// read from the body; it comes from the authenticated principal.
type courseRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	EstimatedTime   string `json:"estimatedTime"`
	MaterialsNeeded string `json:"materialsNeeded"`
}

// ListCourses handles GET /api/courses - return all courses with owners
func (h *CourseHandlers) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courses.List(r.Context())
	if err != nil {
		respondUnexpected(w, err)
		return
	}

	resp := make([]courseResponse, 0, len(courses))
	for i := range courses {
		resp = append(resp, newCourseResponse(&courses[i]))
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetCourse handles GET /api/courses/{courseID} - return one course
func (h *CourseHandlers) GetCourse(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")

	course, err := h.courses.GetByID(r.Context(), courseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondMessage(w, http.StatusNotFound, "Course not found.")
		} else {
			respondUnexpected(w, err)
		}
		return
	}

	respondJSON(w, http.StatusOK, newCourseResponse(course))
}

// CreateCourse handles POST /api/courses - create a course owned by the
// authenticated principal
func (h *CourseHandlers) CreateCourse(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.GetUserFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Access Denied")
		return
	}

	var req courseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	course := &models.Course{
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
		OwnerID:         principal.ID,
	}

	if err := h.courses.Create(r.Context(), course); err != nil {
		respondWriteError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/courses/%s", course.ID))
	w.WriteHeader(http.StatusCreated)
}

// UpdateCourse handles PUT /api/courses/{courseID} - replace course fields
func (h *CourseHandlers) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.GetUserFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Access Denied")
		return
	}

	courseID := chi.URLParam(r, "courseID")
	course, err := h.courses.GetByID(r.Context(), courseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondMessage(w, http.StatusNotFound, "Course not found.")
		} else {
			respondUnexpected(w, err)
		}
		return
	}

	if !auth.CanMutate(principal.ID, course.OwnerID) {
		respondMessage(w, http.StatusForbidden, "You are not authorized to modify this course.")
		return
	}

	var req courseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	course.Title = req.Title
	course.Description = req.Description
	course.EstimatedTime = req.EstimatedTime
	course.MaterialsNeeded = req.MaterialsNeeded

	if err := h.courses.Update(r.Context(), course); err != nil {
		respondWriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteCourse handles DELETE /api/courses/{courseID} - remove a course
func (h *CourseHandlers) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.GetUserFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Access Denied")
		return
	}

	courseID := chi.URLParam(r, "courseID")
	course, err := h.courses.GetByID(r.Context(), courseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondMessage(w, http.StatusNotFound, "Course not found.")
		} else {
			respondUnexpected(w, err)
		}
		return
	}

	if !auth.CanMutate(principal.ID, course.OwnerID) {
		respondMessage(w, http.StatusForbidden, "You are not authorized to delete this course.")
		return
	}

	if err := h.courses.Delete(r.Context(), course.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Deleted between fetch and delete; the course is gone either way.
			respondMessage(w, http.StatusNotFound, "Course not found.")
		} else {
			respondUnexpected(w, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
