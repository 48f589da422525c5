package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"courseapi/internal/middleware"
	"courseapi/internal/model"
	"courseapi/internal/repository"
	"courseapi/internal/service"

	"github.com/rs/zerolog"
)

// fakeUserService keeps users in memory with plaintext passwords.
type fakeUserService struct {
	users     map[string]*model.User
	passwords map[string]string
	nextID    int64
	createErr error
}

func newFakeUserService() *fakeUserService {
	return &fakeUserService{users: map[string]*model.User{}, passwords: map[string]string{}}
}

func (s *fakeUserService) add(id int64, email, password string) *model.User {
	u := &model.User{ID: id, FirstName: "First" + email, LastName: "Last", EmailAddress: email, PasswordHash: "hash:" + password}
	s.users[email] = u
	s.passwords[email] = password
	if id > s.nextID {
		s.nextID = id
	}
	return u
}

func (s *fakeUserService) Create(ctx context.Context, u *model.User, password string) (*model.User, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	if _, ok := s.users[u.EmailAddress]; ok {
		return nil, &repository.ValidationError{Messages: []string{"email address must be unique"}}
	}
	s.nextID++
	u.ID = s.nextID
	u.PasswordHash = "hash:" + password
	s.users[u.EmailAddress] = u
	s.passwords[u.EmailAddress] = password
	return u, nil
}

func (s *fakeUserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, service.ErrUserNotFound
	}
	if s.passwords[email] != password {
		return nil, service.ErrInvalidPassword
	}
	return u, nil
}

type fakeCourseService struct {
	courses   map[int64]*model.Course
	nextID    int64
	err       error
	writeErr  error
	deleted   []int64
	lastSaved *model.Course
}

func newFakeCourseService() *fakeCourseService {
	return &fakeCourseService{courses: map[int64]*model.Course{}}
}

func (s *fakeCourseService) add(c *model.Course) {
	s.courses[c.ID] = c
	if c.ID > s.nextID {
		s.nextID = c.ID
	}
}

func (s *fakeCourseService) ListCourses(ctx context.Context) ([]model.Course, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := []model.Course{}
	for id := int64(1); id <= s.nextID; id++ {
		if c, ok := s.courses[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (s *fakeCourseService) GetCourseByID(ctx context.Context, id int64) (*model.Course, error) {
	if s.err != nil {
		return nil, s.err
	}
	c, ok := s.courses[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (s *fakeCourseService) CreateCourse(ctx context.Context, c *model.Course) (*model.Course, error) {
	if s.writeErr != nil {
		return nil, s.writeErr
	}
	s.nextID++
	c.ID = s.nextID
	s.courses[c.ID] = c
	s.lastSaved = c
	return c, nil
}

func (s *fakeCourseService) UpdateCourse(ctx context.Context, c *model.Course) (*model.Course, error) {
	if s.writeErr != nil {
		return nil, s.writeErr
	}
	if _, ok := s.courses[c.ID]; !ok {
		return nil, service.ErrCourseNotFound
	}
	s.courses[c.ID] = c
	s.lastSaved = c
	return c, nil
}

func (s *fakeCourseService) DeleteCourse(ctx context.Context, c *model.Course) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	if _, ok := s.courses[c.ID]; !ok {
		return service.ErrCourseNotFound
	}
	delete(s.courses, c.ID)
	s.deleted = append(s.deleted, c.ID)
	return nil
}

type testAPI struct {
	users   *fakeUserService
	courses *fakeCourseService
	handler http.Handler
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	users := newFakeUserService()
	courses := newFakeCourseService()
	logger := zerolog.Nop()
	errs := middleware.NewErrorWriter(logger, false)
	validate := NewValidator()

	mux := http.NewServeMux()
	authMw := middleware.AuthMiddleware(users, "test", errs, logger)
	NewUserHandler(users, validate, errs, logger).RegisterRoutes(mux, authMw)
	NewCourseHandler(courses, validate, errs, logger).RegisterRoutes(mux, authMw)
	mux.HandleFunc("/", RouteNotFound)

	return &testAPI{users: users, courses: courses, handler: mux}
}

type reqOpt func(*http.Request)

func withAuth(email, password string) reqOpt {
	return func(r *http.Request) { r.SetBasicAuth(email, password) }
}

func (a *testAPI) do(method, target, body string, opts ...reqOpt) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

var errBoom = errors.New("boom")

func strPtr(s string) *string { return &s }
