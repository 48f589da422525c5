package handler

import (
	"encoding/json"
	"net/http"

	"courseapi/internal/api/v1/dto"
	"courseapi/internal/middleware"
	"courseapi/internal/model"
	"courseapi/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type UserHandler struct {
	userService service.UserService
	validate    *validator.Validate
	errs        *middleware.ErrorWriter
	logger      zerolog.Logger
}

func NewUserHandler(userService service.UserService, v *validator.Validate, errs *middleware.ErrorWriter, logger zerolog.Logger) *UserHandler {
	return &UserHandler{userService: userService, validate: v, errs: errs, logger: logger}
}

// RegisterRoutes mounts user routes
func (h *UserHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("GET /users", authMw(http.HandlerFunc(h.getUser)))
	mux.HandleFunc("POST /users", h.createUser)
}

// createUser godoc
// @Summary Register a user
// @Tags users
// @Accept json
// @Param user body dto.UserCreateDTO true "User registration request"
// @Success 201 "Created"
// @Failure 400 {object} dto.ValidationErrorResponse
// @Router /users [post]
func (h *UserHandler) createUser(w http.ResponseWriter, r *http.Request) {
	// 1. Decode request body into DTO
	var req dto.UserCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	// 2. Validate DTO
	if err := h.validate.Struct(&req); err != nil {
		writeValidationError(w, validationMessages(err))
		return
	}

	// 3. Create the user; the service hashes the password
	userModel := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		EmailAddress: req.EmailAddress,
	}
	createdUser, err := h.userService.Create(r.Context(), userModel, req.Password)
	if err != nil {
		writeStorageError(w, r, h.errs, err)
		return
	}

	h.logger.Info().Int64("user_id", createdUser.ID).Msg("User created")
	w.Header().Set("Location", "/")
	w.WriteHeader(http.StatusCreated)
}

// getUser godoc
// @Summary Get the authenticated user
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponseDTO
// @Failure 401 {object} middleware.MessageResponse
// @Router /users [get]
func (h *UserHandler) getUser(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Access Denied")
		return
	}
	resp := dto.UserResponseDTO{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		EmailAddress: user.EmailAddress,
	}
	middleware.WriteJSON(w, http.StatusOK, resp)
}
