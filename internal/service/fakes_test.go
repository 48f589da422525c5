package service

import (
	"context"
	"errors"
	"sync"

	"courseapi/internal/model"
	"courseapi/internal/repository"
)

type fakeUserRepo struct {
	users  map[string]*model.User
	nextID int64
	err    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, u *model.User) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.users[u.EmailAddress]; ok {
		return &repository.ValidationError{Messages: []string{"email address must be unique"}}
	}
	r.nextID++
	u.ID = r.nextID
	stored := *u
	r.users[u.EmailAddress] = &stored
	return nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.users[email], nil
}

type fakeCourseRepo struct {
	courses map[int64]*model.Course
	nextID  int64
	err     error
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: map[int64]*model.Course{}}
}

func (r *fakeCourseRepo) ListCourses(ctx context.Context) ([]model.Course, error) {
	out := []model.Course{}
	for _, c := range r.courses {
		out = append(out, *c)
	}
	return out, r.err
}

func (r *fakeCourseRepo) GetCourseByID(ctx context.Context, id int64) (*model.Course, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.courses[id], nil
}

func (r *fakeCourseRepo) CreateCourse(ctx context.Context, c *model.Course) error {
	if r.err != nil {
		return r.err
	}
	r.nextID++
	c.ID = r.nextID
	stored := *c
	r.courses[c.ID] = &stored
	return nil
}

func (r *fakeCourseRepo) UpdateCourse(ctx context.Context, c *model.Course) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.courses[c.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *c
	r.courses[c.ID] = &stored
	return nil
}

func (r *fakeCourseRepo) DeleteCourse(ctx context.Context, id int64) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.courses[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.courses, id)
	return nil
}

type recordingPublisher struct {
	mu       sync.Mutex
	topics   []string
	payloads [][]byte
	fail     bool
}

func (p *recordingPublisher) Publish(ctx context.Context, topic string, payload []byte) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return "", errors.New("publish failed")
	}
	p.topics = append(p.topics, topic)
	p.payloads = append(p.payloads, payload)
	return "msg-1", nil
}
