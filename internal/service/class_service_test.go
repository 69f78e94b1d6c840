package service

import (
	"context"
	"testing"

	"school_manager/internal/model"
	"school_manager/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClassFixture() (*fakeClassRepo, ClassService) {
	repo := &fakeClassRepo{classes: map[int64]*model.Class{
		1: {ID: 1, SpecialtyID: 1, TeacherID: 2, Day: "monday", StartTime: "09:00", EndTime: "10:00"},
	}}
	return repo, NewClassService(repo)
}

func TestClassService_Create_ReturnsJoinedNames(t *testing.T) {
	_, svc := newClassFixture()
	c, err := svc.Create(context.Background(), model.CreateClassRequest{
		SpecialtyID: 1, TeacherID: 2, Day: "friday", StartTime: "14:00", EndTime: "15:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "Tom Ruiz", c.TeacherName)
	assert.Equal(t, "Math", c.SpecialtyName)
}

func TestClassService_Update_ChecksMergedTimes(t *testing.T) {
	repo, svc := newClassFixture()

	_, err := svc.Update(context.Background(), 1, model.UpdateClassRequest{StartTime: strPtr("10:30")})
	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "end_time", errs[0].Field)
	assert.Nil(t, repo.updated)

	c, err := svc.Update(context.Background(), 1, model.UpdateClassRequest{EndTime: strPtr("11:15")})
	require.NoError(t, err)
	assert.Equal(t, "09:00", c.StartTime)
	assert.Equal(t, "11:15", c.EndTime)
	assert.Equal(t, "monday", repo.updated.Day)
}

func TestClassService_NotFound(t *testing.T) {
	_, svc := newClassFixture()

	_, err := svc.Get(context.Background(), 9)
	assert.ErrorIs(t, err, ErrClassNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), 9), ErrClassNotFound)
}

func TestClassService_Update_InvertedPairRejectedBeforeLookup(t *testing.T) {
	repo, svc := newClassFixture()

	_, err := svc.Update(context.Background(), 999, model.UpdateClassRequest{
		StartTime: strPtr("10:00"), EndTime: strPtr("09:00"),
	})
	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "end_time must be after start_time", errs[0].Message)
	assert.NotErrorIs(t, err, ErrClassNotFound)
	assert.Nil(t, repo.updated)
}

func TestClassService_Get_IsStable(t *testing.T) {
	_, svc := newClassFixture()

	first, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	second, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
