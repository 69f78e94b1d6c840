package service

import (
	"context"
	"strings"
	"testing"

	"school_manager/internal/model"
	"school_manager/internal/utils"
	"school_manager/internal/validation"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func baseCreateUser() model.CreateUserRequest {
	return model.CreateUserRequest{
		FirstName: "Ana", LastName: "Diaz", DNI: "12345678",
		Email: "ana@school.test", Password: "secret1",
	}
}

func TestUserService_Create_Defaults(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	u, err := svc.Create(context.Background(), baseCreateUser())
	require.NoError(t, err)
	assert.Equal(t, model.RoleStudent, u.RoleID)
	assert.Equal(t, model.StatusActive, u.Status)
	assert.Nil(t, u.SpecialtyID)
	assert.NotEqual(t, "secret1", u.Password)
	assert.True(t, utils.CheckPasswordHash("secret1", u.Password))
}

func TestUserService_Create_ExplicitRoleAndSpecialty(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	req := baseCreateUser()
	role := model.RoleTeacher
	sid := validation.ID(4)
	req.RoleID = &role
	req.Status = strPtr(model.StatusPending)
	req.SpecialtyID = &sid

	u, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, model.RoleTeacher, u.RoleID)
	assert.Equal(t, model.StatusPending, u.Status)
	require.NotNil(t, u.SpecialtyID)
	assert.Equal(t, int64(4), *u.SpecialtyID)
}

func TestUserService_Create_EmailTaken(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	_, err := svc.Create(context.Background(), baseCreateUser())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), baseCreateUser())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserService_Create_UniqueViolationRace(t *testing.T) {
	repo := newFakeUserRepo()
	repo.createErr = &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), baseCreateUser())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserService_Update_MergesAndRehashes(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	created, err := svc.Create(context.Background(), baseCreateUser())
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, model.UpdateUserRequest{
		LastName: strPtr("Gomez"),
		Password: strPtr("newsecret"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", updated.FirstName)
	assert.Equal(t, "Gomez", updated.LastName)
	assert.Equal(t, "ana@school.test", updated.Email)
	assert.True(t, utils.CheckPasswordHash("newsecret", updated.Password))

	stored, _ := repo.FindByID(context.Background(), created.ID)
	assert.Equal(t, "Gomez", stored.LastName)
}

func TestUserService_NotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Update(context.Background(), 42, model.UpdateUserRequest{FirstName: strPtr("Bob")})
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), 42), ErrUserNotFound)
}

func TestUserService_PasswordOverByteLimit(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	req := baseCreateUser()
	req.Password = strings.Repeat("é", 40)
	_, err := svc.Create(context.Background(), req)
	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "password", errs[0].Field)
	assert.Empty(t, repo.users)

	u, err := svc.Create(context.Background(), baseCreateUser())
	require.NoError(t, err)
	_, err = svc.Update(context.Background(), u.ID, model.UpdateUserRequest{Password: strPtr(strings.Repeat("ü", 50))})
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "password must be at most 72 bytes long", errs[0].Message)
}
