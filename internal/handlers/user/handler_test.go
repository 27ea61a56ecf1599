package user_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"todoapi/infras/otel/mocks"
	userMocks "todoapi/internal/domains/user/mocks"
	"todoapi/internal/domains/user/model/dto"
	"todoapi/internal/handlers/user"
	"todoapi/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T {
	return &v
}

func newRouter(t *testing.T) (*chi.Mux, *userMocks.MockUserService) {
	ctrl := gomock.NewController(t)
	svc := userMocks.NewMockUserService(ctrl)

	handler := user.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/api", handler.Router)

	return router, svc
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		target           string
		body             string
		setupMock        func(svc *userMocks.MockUserService)
		expectedCode     int
		expectedBody     string
		expectedLocation string
	}{
		{
			name:   "list all",
			method: http.MethodGet,
			target: "/api/UserModel/",
			setupMock: func(svc *userMocks.MockUserService) {
				svc.EXPECT().GetAll(gomock.Any()).Return([]dto.UserResponse{{ID: 1, Username: ptr("alice"), Password: "d"}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"id":1,"username":"alice","password":"d","email":null}]`,
		},
		{
			name:   "get one",
			method: http.MethodGet,
			target: "/api/UserModel/1",
			setupMock: func(svc *userMocks.MockUserService) {
				svc.EXPECT().Get(gomock.Any(), int64(1)).Return(dto.UserResponse{ID: 1, Email: ptr("a@x.io"), Password: "d"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":1,"username":null,"password":"d","email":"a@x.io"}`,
		},
		{
			name:         "get with a non integer id",
			method:       http.MethodGet,
			target:       "/api/UserModel/one",
			setupMock:    func(_ *userMocks.MockUserService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"id must be an integer"}`,
		},
		{
			name:   "get missing",
			method: http.MethodGet,
			target: "/api/UserModel/2",
			setupMock: func(svc *userMocks.MockUserService) {
				svc.EXPECT().Get(gomock.Any(), int64(2)).Return(dto.UserResponse{}, failure.NotFound("user not found"))
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"user not found"}`,
		},
		{
			name:   "create",
			method: http.MethodPost,
			target: "/api/UserModel/",
			body:   `{"username":"alice","password":"s3cret"}`,
			setupMock: func(svc *userMocks.MockUserService) {
				svc.EXPECT().
					Create(gomock.Any(), dto.CreateUserRequest{Username: ptr("alice"), Password: ptr("s3cret")}).
					Return(dto.UserResponse{ID: 3, Username: ptr("alice"), Password: "digest"}, nil)
			},
			expectedCode:     http.StatusCreated,
			expectedBody:     `{"id":3,"username":"alice","password":"digest","email":null}`,
			expectedLocation: "/api/UserModel/3",
		},
		{
			name:         "create without password",
			method:       http.MethodPost,
			target:       "/api/UserModel/",
			body:         `{"username":"alice"}`,
			setupMock:    func(_ *userMocks.MockUserService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"password is required"}`,
		},
		{
			name:   "create with empty password",
			method: http.MethodPost,
			target: "/api/UserModel/",
			body:   `{"username":"alice","password":""}`,
			setupMock: func(svc *userMocks.MockUserService) {
				svc.EXPECT().
					Create(gomock.Any(), dto.CreateUserRequest{Username: ptr("alice"), Password: ptr("")}).
					Return(dto.UserResponse{ID: 4, Username: ptr("alice"), Password: "digest"}, nil)
			},
			expectedCode:     http.StatusCreated,
			expectedBody:     `{"id":4,"username":"alice","password":"digest","email":null}`,
			expectedLocation: "/api/UserModel/4",
		},
		{
			name:   "update",
			method: http.MethodPut,
			target: "/api/UserModel/3",
			body:   `{"username":"bob","email":"b@x.io"}`,
			setupMock: func(svc *userMocks.MockUserService) {
				svc.EXPECT().Update(gomock.Any(), int64(3), dto.UpdateUserRequest{Username: ptr("bob"), Email: ptr("b@x.io")}).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"User updated successfully"}`,
		},
		{
			name:   "update missing",
			method: http.MethodPut,
			target: "/api/UserModel/3",
			body:   `{}`,
			setupMock: func(svc *userMocks.MockUserService) {
				svc.EXPECT().Update(gomock.Any(), int64(3), gomock.Any()).Return(failure.NotFound("user not found"))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/api/UserModel/3",
			setupMock: func(svc *userMocks.MockUserService) {
				svc.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"User deleted successfully"}`,
		},
		{
			name:   "sign in verified",
			method: http.MethodPost,
			target: "/api/UserModel/signin",
			body:   `{"username":"alice","password":"s3cret"}`,
			setupMock: func(svc *userMocks.MockUserService) {
				svc.EXPECT().
					SignIn(gomock.Any(), dto.SignInRequest{Username: ptr("alice"), Password: ptr("s3cret")}).
					Return(dto.SignInResponse{IsVerified: true, ID: ptr(int64(3))}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"isVerified":true,"id":3}`,
		},
		{
			name:   "sign in rejected",
			method: http.MethodPost,
			target: "/api/UserModel/signin",
			body:   `{"username":"alice","password":"nope"}`,
			setupMock: func(svc *userMocks.MockUserService) {
				svc.EXPECT().SignIn(gomock.Any(), gomock.Any()).Return(dto.SignInResponse{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"isVerified":false}`,
		},
		{
			name:   "sign in with empty password",
			method: http.MethodPost,
			target: "/api/UserModel/signin",
			body:   `{"username":"alice","password":""}`,
			setupMock: func(svc *userMocks.MockUserService) {
				svc.EXPECT().
					SignIn(gomock.Any(), dto.SignInRequest{Username: ptr("alice"), Password: ptr("")}).
					Return(dto.SignInResponse{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"isVerified":false}`,
		},
		{
			name:         "sign in without password",
			method:       http.MethodPost,
			target:       "/api/UserModel/signin",
			body:         `{"username":"alice"}`,
			setupMock:    func(_ *userMocks.MockUserService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"password is required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			}

			assert.Equal(t, tt.expectedLocation, rec.Header().Get("Location"))
		})
	}
}
