package service

import (
	"context"

	"school_manager/internal/model"
	"school_manager/internal/repository"
)

type fakeUserRepo struct {
	users     map[int64]*model.User
	nextID    int64
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*model.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	u.ID = r.nextID
	r.nextID++
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) List(context.Context) ([]model.User, error) {
	out := []model.User{}
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) ListByRole(_ context.Context, role model.Role) ([]model.User, error) {
	out := []model.User{}
	for _, u := range r.users {
		if u.RoleID == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *model.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeClassRepo struct {
	classes map[int64]*model.Class
	updated *model.Class
}

func (r *fakeClassRepo) Create(_ context.Context, c *model.Class) error {
	c.ID = int64(len(r.classes) + 1)
	cp := *c
	cp.TeacherName = "Tom Ruiz"
	cp.SpecialtyName = "Math"
	r.classes[c.ID] = &cp
	return nil
}

func (r *fakeClassRepo) FindByID(_ context.Context, id int64) (*model.Class, error) {
	c, ok := r.classes[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClassRepo) List(context.Context, repository.ClassFilter) ([]model.Class, error) {
	return []model.Class{}, nil
}

func (r *fakeClassRepo) Update(_ context.Context, c *model.Class) error {
	if _, ok := r.classes[c.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *c
	r.updated = &cp
	r.classes[c.ID] = &cp
	return nil
}

func (r *fakeClassRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.classes[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.classes, id)
	return nil
}

type fakeEnrollmentRepo struct {
	exists    bool
	createErr error
	created   []model.Enrollment
	deleteErr error
}

func (r *fakeEnrollmentRepo) Exists(context.Context, int64, int64) (bool, error) {
	return r.exists, nil
}

func (r *fakeEnrollmentRepo) Create(_ context.Context, e *model.Enrollment) error {
	if r.createErr != nil {
		return r.createErr
	}
	e.ID = int64(len(r.created) + 1)
	r.created = append(r.created, *e)
	return nil
}

func (r *fakeEnrollmentRepo) List(context.Context) ([]model.Enrollment, error) {
	return r.created, nil
}

func (r *fakeEnrollmentRepo) ListByStudent(context.Context, int64) ([]model.Enrollment, error) {
	return r.created, nil
}

func (r *fakeEnrollmentRepo) ListByClass(context.Context, int64) ([]model.Enrollment, error) {
	return r.created, nil
}

func (r *fakeEnrollmentRepo) Delete(context.Context, int64, int64) error {
	return r.deleteErr
}
