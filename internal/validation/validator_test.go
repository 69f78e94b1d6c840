package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Name    string `json:"name" validate:"required,min=2,max=50"`
	Email   string `json:"email" validate:"required,email"`
	OwnerID ID     `json:"owner_id" validate:"required,gt=0"`
	Status  string `json:"status" validate:"omitempty,oneof=active inactive pending"`
	Present *bool  `json:"present" validate:"required"`
}

type slot struct {
	Start string `json:"start" validate:"required,hhmm"`
	End   string `json:"end" validate:"required,hhmm"`
}

func (s *slot) CrossValidate() Errors {
	start, _ := ParseClock(s.Start)
	end, _ := ParseClock(s.End)
	if end <= start {
		return Errors{{Field: "end", Message: "end must be after start"}}
	}
	return nil
}

type patch struct {
	Name *string `json:"name" validate:"omitempty,min=2"`
	Day  *string `json:"day" validate:"omitempty,ymd"`
}

type idParam struct {
	ID ID `json:"id" validate:"required,gt=0"`
}

func asErrors(t *testing.T, err error) Errors {
	t.Helper()
	require.Error(t, err)
	errs, ok := err.(Errors)
	require.True(t, ok, "expected validation.Errors, got %T", err)
	return errs
}

func fields(errs Errors) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestBody_Valid(t *testing.T) {
	v := New()
	var in signup
	err := v.Body(strings.NewReader(`{"name":"Ana","email":"ana@school.test","owner_id":"7","present":false}`), &in)
	require.NoError(t, err)
	assert.Equal(t, ID(7), in.OwnerID)
	require.NotNil(t, in.Present)
	assert.False(t, *in.Present)
}

func TestBody_CollectsAllFieldErrors(t *testing.T) {
	v := New()
	var in signup
	err := v.Body(strings.NewReader(`{"name":"A","email":"nope","owner_id":-3,"status":"gone"}`), &in)
	errs := asErrors(t, err)

	assert.ElementsMatch(t, []string{"name", "email", "owner_id", "status", "present"}, fields(errs))
	for _, e := range errs {
		switch e.Field {
		case "name":
			assert.Equal(t, "name must be at least 2 characters long", e.Message)
		case "owner_id":
			assert.Equal(t, "owner_id must be a positive integer", e.Message)
		case "status":
			assert.Equal(t, "status must be one of: active, inactive, pending", e.Message)
		case "present":
			assert.Equal(t, "present is required", e.Message)
		}
	}
}

func TestBody_TypeMismatchNamesField(t *testing.T) {
	v := New()
	var in signup
	errs := asErrors(t, v.Body(strings.NewReader(`{"name":"Ana","owner_id":"abc"}`), &in))
	require.Len(t, errs, 1)
	assert.Equal(t, "owner_id", errs[0].Field)
	assert.Equal(t, "owner_id must be an integer", errs[0].Message)

	errs = asErrors(t, v.Body(strings.NewReader(`{"name":12}`), &in))
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "name must be a string", errs[0].Message)
}

func TestBody_MalformedAndEmpty(t *testing.T) {
	v := New()
	var in signup

	errs := asErrors(t, v.Body(strings.NewReader(`{"name":`), &in))
	assert.Equal(t, Errors{{Field: BodyField, Message: "malformed JSON"}}, errs)

	errs = asErrors(t, v.Body(strings.NewReader(``), &in))
	assert.Equal(t, Errors{{Field: BodyField, Message: "request body is required"}}, errs)

	errs = asErrors(t, v.Body(strings.NewReader(`[1,2]`), &in))
	assert.Equal(t, BodyField, errs[0].Field)
}

func TestBody_CrossRuleOnlyAfterFieldsPass(t *testing.T) {
	v := New()

	var bad slot
	errs := asErrors(t, v.Body(strings.NewReader(`{"start":"25:00","end":"08:00"}`), &bad))
	assert.Equal(t, []string{"start"}, fields(errs))

	var inverted slot
	errs = asErrors(t, v.Body(strings.NewReader(`{"start":"10:00","end":"9:30"}`), &inverted))
	assert.Equal(t, Errors{{Field: "end", Message: "end must be after start"}}, errs)

	var equal slot
	errs = asErrors(t, v.Body(strings.NewReader(`{"start":"10:00","end":"10:00"}`), &equal))
	assert.Equal(t, []string{"end"}, fields(errs))

	var ok slot
	assert.NoError(t, v.Body(strings.NewReader(`{"start":"9:00","end":"10:30"}`), &ok))
}

func TestPatch(t *testing.T) {
	v := New()

	var empty patch
	errs := asErrors(t, v.Patch(strings.NewReader(`{}`), &empty))
	assert.Equal(t, Errors{{Field: BodyField, Message: "at least one field is required to update"}}, errs)

	var badDate patch
	errs = asErrors(t, v.Patch(strings.NewReader(`{"day":"2024-02-30"}`), &badDate))
	assert.Equal(t, "day must be a date in YYYY-MM-DD format", errs[0].Message)

	var ok patch
	require.NoError(t, v.Patch(strings.NewReader(`{"name":"Math"}`), &ok))
	assert.Equal(t, "Math", *ok.Name)
	assert.Nil(t, ok.Day)
}

func TestParams(t *testing.T) {
	v := New()

	var p idParam
	require.NoError(t, v.Params(map[string]string{"id": "42"}, &p))
	assert.Equal(t, int64(42), p.ID.Int64())

	var bad idParam
	errs := asErrors(t, v.Params(map[string]string{"id": "x1"}, &bad))
	assert.Equal(t, "id", errs[0].Field)

	var zero idParam
	errs = asErrors(t, v.Params(map[string]string{"id": "-1"}, &zero))
	assert.Equal(t, "id must be a positive integer", errs[0].Message)
}

func TestParseClock(t *testing.T) {
	m, ok := ParseClock("9:05")
	assert.True(t, ok)
	assert.Equal(t, 545, m)

	m, ok = ParseClock("23:59")
	assert.True(t, ok)
	assert.Equal(t, 23*60+59, m)

	for _, s := range []string{"24:00", "12:60", "1200", "", "12:5"} {
		_, ok := ParseClock(s)
		assert.False(t, ok, s)
	}
}

func TestIsDate(t *testing.T) {
	assert.True(t, IsDate("2024-02-29"))
	assert.False(t, IsDate("2023-02-29"))
	assert.False(t, IsDate("2024-2-1"))
	assert.False(t, IsDate("01/02/2024"))
}

func TestErrors_Error(t *testing.T) {
	errs := Errors{{Field: "a", Message: "a is required"}, {Field: "b", Message: "b is bad"}}
	assert.Equal(t, "validation failed: a: a is required; b: b is bad", errs.Error())
}
