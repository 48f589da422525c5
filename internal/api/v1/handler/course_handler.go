package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"courseapi/internal/api/v1/dto"
	"courseapi/internal/middleware"
	"courseapi/internal/model"
	"courseapi/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// CourseHandler handles course-related endpoints
type CourseHandler struct {
	courseService service.CourseService
	validate      *validator.Validate
	errs          *middleware.ErrorWriter
	logger        zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseService service.CourseService, validate *validator.Validate, errs *middleware.ErrorWriter, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
		validate:      validate,
		errs:          errs,
		logger:        logger,
	}
}

// RegisterRoutes mounts course routes. Listing is public; everything else
// goes through authMw.
func (h *CourseHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /courses", h.listCourses)
	mux.Handle("POST /courses", authMw(http.HandlerFunc(h.createCourse)))
	mux.Handle("GET /courses/{id}", authMw(http.HandlerFunc(h.getCourse)))
	mux.Handle("PUT /courses/{id}", authMw(http.HandlerFunc(h.updateCourse)))
	mux.Handle("DELETE /courses/{id}", authMw(http.HandlerFunc(h.deleteCourse)))
}

// listCourses godoc
// @Summary List courses
// @Description Returns every course with its owner. No authentication required.
// @Tags courses
// @Produce json
// @Success 200 {array} dto.CourseResponseDTO
// @Failure 500 {object} middleware.InternalErrorResponse
// @Router /courses [get]
func (h *CourseHandler) listCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseService.ListCourses(r.Context())
	if err != nil {
		h.errs.InternalError(w, r, err)
		return
	}
	resp := make([]dto.CourseResponseDTO, 0, len(courses))
	for i := range courses {
		resp = append(resp, toCourseResponse(&courses[i]))
	}
	middleware.WriteJSON(w, http.StatusOK, resp)
}

// getCourse godoc
// @Summary Get a course
// @Description Retrieves a course owned by the authenticated user.
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.CourseResponseDTO
// @Failure 401 {object} middleware.MessageResponse
// @Failure 403 {object} middleware.MessageResponse
// @Failure 404 {object} middleware.MessageResponse
// @Router /courses/{id} [get]
func (h *CourseHandler) getCourse(w http.ResponseWriter, r *http.Request) {
	course, _, ok := h.loadOwnedCourse(w, r, "view")
	if !ok {
		return
	}
	middleware.WriteJSON(w, http.StatusOK, toCourseResponse(course))
}

// createCourse godoc
// @Summary Create a new course
// @Description Creates a new course owned by the authenticated user.
// @Tags courses
// @Accept json
// @Param course body dto.CourseCreateDTO true "Course creation request"
// @Success 201 "Location header points at the new course"
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} middleware.MessageResponse
// @Router /courses [post]
func (h *CourseHandler) createCourse(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Access Denied")
		return
	}
	var req dto.CourseCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeValidationError(w, validationMessages(err))
		return
	}
	course := &model.Course{
		UserID:          user.ID,
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
	}
	created, err := h.courseService.CreateCourse(r.Context(), course)
	if err != nil {
		writeStorageError(w, r, h.errs, err)
		return
	}
	h.logger.Info().Int64("course_id", created.ID).Int64("user_id", user.ID).Msg("Course created")
	w.Header().Set("Location", APIBasePath+"/courses/"+strconv.FormatInt(created.ID, 10))
	w.WriteHeader(http.StatusCreated)
}

// updateCourse godoc
// @Summary Update a course
// @Description Replaces title and description of a course owned by the authenticated user.
// @Tags courses
// @Accept json
// @Param id path int true "Course ID"
// @Param course body dto.CourseUpdateDTO true "Course update request"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} middleware.MessageResponse
// @Failure 403 {object} middleware.MessageResponse
// @Failure 404 {object} middleware.MessageResponse
// @Router /courses/{id} [put]
func (h *CourseHandler) updateCourse(w http.ResponseWriter, r *http.Request) {
	course, _, ok := h.loadOwnedCourse(w, r, "update")
	if !ok {
		return
	}
	var req dto.CourseUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeValidationError(w, validationMessages(err))
		return
	}

	course.Title = req.Title
	course.Description = req.Description
	if req.EstimatedTime != nil {
		course.EstimatedTime = req.EstimatedTime
	}
	if req.MaterialsNeeded != nil {
		course.MaterialsNeeded = req.MaterialsNeeded
	}
	if _, err := h.courseService.UpdateCourse(r.Context(), course); err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			writeMessage(w, http.StatusNotFound, "Course not found")
			return
		}
		writeStorageError(w, r, h.errs, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// deleteCourse godoc
// @Summary Delete a course
// @Description Permanently deletes a course owned by the authenticated user.
// @Tags courses
// @Param id path int true "Course ID"
// @Success 204 "No Content"
// @Failure 401 {object} middleware.MessageResponse
// @Failure 403 {object} middleware.MessageResponse
// @Failure 404 {object} middleware.MessageResponse
// @Router /courses/{id} [delete]
func (h *CourseHandler) deleteCourse(w http.ResponseWriter, r *http.Request) {
	course, user, ok := h.loadOwnedCourse(w, r, "delete")
	if !ok {
		return
	}
	if err := h.courseService.DeleteCourse(r.Context(), course); err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			writeMessage(w, http.StatusNotFound, "Course not found")
			return
		}
		h.errs.InternalError(w, r, err)
		return
	}
	h.logger.Info().Int64("course_id", course.ID).Int64("user_id", user.ID).Msg("Course deleted")
	w.WriteHeader(http.StatusNoContent)
}

// loadOwnedCourse resolves the {id} course and checks it belongs to the
// authenticated user. A missing course is reported before ownership.
// On false the response has already been written.
func (h *CourseHandler) loadOwnedCourse(w http.ResponseWriter, r *http.Request, action string) (*model.Course, *model.User, bool) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Access Denied")
		return nil, nil, false
	}
	courseID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Course not found")
		return nil, nil, false
	}
	course, err := h.courseService.GetCourseByID(r.Context(), courseID)
	if err != nil {
		h.errs.InternalError(w, r, err)
		return nil, nil, false
	}
	if course == nil {
		writeMessage(w, http.StatusNotFound, "Course not found")
		return nil, nil, false
	}
	if course.UserID != user.ID {
		h.logger.Warn().
			Int64("course_id", course.ID).
			Int64("user_id", user.ID).
			Str("action", action).
			Msg("Course access denied")
		writeMessage(w, http.StatusForbidden, "Authentication Failed. You do not have access to "+action+" this course")
		return nil, nil, false
	}
	return course, user, true
}

func toCourseResponse(c *model.Course) dto.CourseResponseDTO {
	resp := dto.CourseResponseDTO{
		ID:            c.ID,
		Title:         c.Title,
		Description:   c.Description,
		EstimatedTime: c.EstimatedTime,
	}
	if c.Owner != nil {
		resp.Owner = dto.CourseOwnerDTO{
			FirstName:    c.Owner.FirstName,
			LastName:     c.Owner.LastName,
			EmailAddress: c.Owner.EmailAddress,
		}
	}
	return resp
}
