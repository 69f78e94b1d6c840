package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"school_manager/internal/middleware"
	"school_manager/internal/model"
	"school_manager/internal/repository"
	"school_manager/internal/utils"
	"school_manager/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testAPI struct {
	router  *gin.Engine
	jwt     *utils.JWTUtil
	users   *stubUserService
	auth    *stubAuthService
	classes *stubClassService
	enrolls *stubEnrollmentService
	specs   *stubSpecialtyService
	msgs    *stubMessageService
	items   *stubItemService
	attend  *stubAttendanceService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	ju, err := utils.NewJWTUtil("handler-secret", time.Hour)
	require.NoError(t, err)

	api := &testAPI{
		router:  gin.New(),
		jwt:     ju,
		users:   &stubUserService{},
		auth:    &stubAuthService{},
		classes: &stubClassService{},
		enrolls: &stubEnrollmentService{},
		specs:   &stubSpecialtyService{},
		msgs:    &stubMessageService{},
		items:   &stubItemService{},
		attend:  &stubAttendanceService{},
	}
	v := validation.New()
	authMW := middleware.JWTAuthMiddleware(ju)
	rg := api.router.Group("/api")
	NewAuthHandler(api.auth, v).RegisterAuthRoutes(rg)
	NewUserHandler(api.users, v).RegisterUserRoutes(rg, authMW, middleware.OptionalJWTAuth(ju))
	NewClassHandler(api.classes, v).RegisterClassRoutes(rg, authMW)
	NewEnrollmentHandler(api.enrolls, v).RegisterEnrollmentRoutes(rg, authMW)
	NewSpecialtyHandler(api.specs, v).RegisterSpecialtyRoutes(rg, authMW)
	NewMessageHandler(api.msgs, v).RegisterMessageRoutes(rg, authMW)
	NewItemHandler(api.items, v).RegisterItemRoutes(rg, authMW)
	NewAttendanceHandler(api.attend, v).RegisterAttendanceRoutes(rg, authMW)
	return api
}

func (a *testAPI) token(t *testing.T, role model.Role) string {
	t.Helper()
	tok, err := a.jwt.GenerateToken(99, role, "caller@school.test")
	require.NoError(t, err)
	return tok
}

// do sends body as JSON unless it is already a string.
func (a *testAPI) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst))
}

type errorBody struct {
	Error  string                  `json:"error"`
	Field  string                  `json:"field"`
	Errors []validation.FieldError `json:"errors"`
}

type stubAuthService struct {
	user  *model.User
	token string
	err   error
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (*model.User, string, error) {
	return s.user, s.token, s.err
}

type stubUserService struct {
	created   *model.CreateUserRequest
	updated   *model.UpdateUserRequest
	listRole  model.Role
	user      *model.User
	users     []model.User
	err       error
	deletedID int64
}

func (s *stubUserService) Create(_ context.Context, req model.CreateUserRequest) (*model.User, error) {
	s.created = &req
	return s.user, s.err
}

func (s *stubUserService) List(context.Context) ([]model.User, error) { return s.users, s.err }

func (s *stubUserService) ListByRole(_ context.Context, role model.Role) ([]model.User, error) {
	s.listRole = role
	return s.users, s.err
}

func (s *stubUserService) Get(context.Context, int64) (*model.User, error) { return s.user, s.err }

func (s *stubUserService) Update(_ context.Context, _ int64, req model.UpdateUserRequest) (*model.User, error) {
	s.updated = &req
	return s.user, s.err
}

func (s *stubUserService) Delete(_ context.Context, id int64) error {
	s.deletedID = id
	return s.err
}

type stubClassService struct {
	filter  repository.ClassFilter
	classes []model.Class
	class   *model.Class
	err     error
	updates int
}

func (s *stubClassService) Create(context.Context, model.CreateClassRequest) (*model.Class, error) {
	return s.class, s.err
}

func (s *stubClassService) List(_ context.Context, f repository.ClassFilter) ([]model.Class, error) {
	s.filter = f
	return s.classes, s.err
}

func (s *stubClassService) Get(context.Context, int64) (*model.Class, error) { return s.class, s.err }

func (s *stubClassService) Update(context.Context, int64, model.UpdateClassRequest) (*model.Class, error) {
	s.updates++
	return s.class, s.err
}

func (s *stubClassService) Delete(context.Context, int64) error { return s.err }

type stubEnrollmentService struct {
	studentID, classID int64
	enrollment         *model.Enrollment
	list               []model.Enrollment
	err                error
}

func (s *stubEnrollmentService) Enroll(_ context.Context, studentID, classID int64) (*model.Enrollment, error) {
	s.studentID, s.classID = studentID, classID
	return s.enrollment, s.err
}

func (s *stubEnrollmentService) List(context.Context) ([]model.Enrollment, error) {
	return s.list, s.err
}

func (s *stubEnrollmentService) ListByStudent(_ context.Context, studentID int64) ([]model.Enrollment, error) {
	s.studentID = studentID
	return s.list, s.err
}

func (s *stubEnrollmentService) ListByClass(_ context.Context, classID int64) ([]model.Enrollment, error) {
	s.classID = classID
	return s.list, s.err
}

func (s *stubEnrollmentService) Unenroll(_ context.Context, studentID, classID int64) error {
	s.studentID, s.classID = studentID, classID
	return s.err
}

// The remaining stubs record the last call and return whatever is set.

type stubSpecialtyService struct {
	specialty *model.Specialty
	err       error
	calls     int
}

func (s *stubSpecialtyService) Create(context.Context, model.SpecialtyRequest) (*model.Specialty, error) {
	s.calls++
	return s.specialty, s.err
}

func (s *stubSpecialtyService) List(context.Context) ([]model.Specialty, error) {
	s.calls++
	return []model.Specialty{}, s.err
}

func (s *stubSpecialtyService) Get(context.Context, int64) (*model.Specialty, error) {
	s.calls++
	return s.specialty, s.err
}

func (s *stubSpecialtyService) Update(context.Context, int64, model.SpecialtyRequest) (*model.Specialty, error) {
	s.calls++
	return s.specialty, s.err
}

func (s *stubSpecialtyService) Delete(context.Context, int64) error {
	s.calls++
	return s.err
}

type stubMessageService struct {
	message *model.ClassMessage
	classID int64
	err     error
	calls   int
}

func (s *stubMessageService) Create(context.Context, model.CreateMessageRequest) (*model.ClassMessage, error) {
	s.calls++
	return s.message, s.err
}

func (s *stubMessageService) List(context.Context) ([]model.ClassMessage, error) {
	s.calls++
	return []model.ClassMessage{}, s.err
}

func (s *stubMessageService) ListByClass(_ context.Context, classID int64) ([]model.ClassMessage, error) {
	s.calls++
	s.classID = classID
	return []model.ClassMessage{}, s.err
}

func (s *stubMessageService) Get(context.Context, int64) (*model.ClassMessage, error) {
	s.calls++
	return s.message, s.err
}

func (s *stubMessageService) Update(context.Context, int64, model.UpdateMessageRequest) (*model.ClassMessage, error) {
	s.calls++
	return s.message, s.err
}

func (s *stubMessageService) Delete(context.Context, int64) error {
	s.calls++
	return s.err
}

type stubItemService struct {
	item    *model.Item
	created *model.CreateItemRequest
	err     error
	calls   int
}

func (s *stubItemService) Create(_ context.Context, req model.CreateItemRequest) (*model.Item, error) {
	s.calls++
	s.created = &req
	return s.item, s.err
}

func (s *stubItemService) List(context.Context) ([]model.Item, error) {
	s.calls++
	return []model.Item{}, s.err
}

func (s *stubItemService) Get(context.Context, int64) (*model.Item, error) {
	s.calls++
	return s.item, s.err
}

func (s *stubItemService) Update(context.Context, int64, model.UpdateItemRequest) (*model.Item, error) {
	s.calls++
	return s.item, s.err
}

func (s *stubItemService) Delete(context.Context, int64) error {
	s.calls++
	return s.err
}

type stubAttendanceService struct {
	record *model.Attendance
	filter repository.AttendanceFilter
	err    error
	calls  int
}

func (s *stubAttendanceService) Create(context.Context, model.CreateAttendanceRequest) (*model.Attendance, error) {
	s.calls++
	return s.record, s.err
}

func (s *stubAttendanceService) List(_ context.Context, f repository.AttendanceFilter) ([]model.Attendance, error) {
	s.calls++
	s.filter = f
	return []model.Attendance{}, s.err
}

func (s *stubAttendanceService) Get(context.Context, int64) (*model.Attendance, error) {
	s.calls++
	return s.record, s.err
}

func (s *stubAttendanceService) Update(context.Context, int64, model.UpdateAttendanceRequest) (*model.Attendance, error) {
	s.calls++
	return s.record, s.err
}

func (s *stubAttendanceService) Delete(context.Context, int64) error {
	s.calls++
	return s.err
}
