package user

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketdto "github.com/garagehq/shopapi/internal/application/ticket/dto"
	ticketusecases "github.com/garagehq/shopapi/internal/application/ticket/usecases"
	"github.com/garagehq/shopapi/internal/application/user/dto"
	"github.com/garagehq/shopapi/internal/application/user/usecases"
	"github.com/garagehq/shopapi/internal/interfaces/http/handlers/testutil"
	"github.com/garagehq/shopapi/internal/shared/authorization"
	"github.com/garagehq/shopapi/internal/shared/errors"
	"github.com/garagehq/shopapi/internal/shared/logger"
)

type mockSignupUC struct {
	got    usecases.SignupCommand
	result *dto.UserDTO
	err    error
}

func (m *mockSignupUC) Execute(_ context.Context, cmd usecases.SignupCommand) (*dto.UserDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockLoginUC struct {
	result *dto.TokenDTO
	err    error
}

func (m *mockLoginUC) Execute(_ context.Context, _ usecases.LoginCommand) (*dto.TokenDTO, error) {
	return m.result, m.err
}

type mockGetUserUC struct {
	result *dto.UserDTO
	err    error
}

func (m *mockGetUserUC) Execute(_ context.Context, _ uint) (*dto.UserDTO, error) {
	return m.result, m.err
}

type mockListUsersUC struct {
	got    usecases.ListUsersQuery
	result *usecases.ListUsersResult
}

func (m *mockListUsersUC) Execute(_ context.Context, q usecases.ListUsersQuery) (*usecases.ListUsersResult, error) {
	m.got = q
	return m.result, nil
}

type mockUpdateUserUC struct {
	got    usecases.UpdateUserCommand
	result *dto.UserDTO
	err    error
}

func (m *mockUpdateUserUC) Execute(_ context.Context, cmd usecases.UpdateUserCommand) (*dto.UserDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockDeleteUserUC struct {
	got usecases.DeleteUserCommand
	err error
}

func (m *mockDeleteUserUC) Execute(_ context.Context, cmd usecases.DeleteUserCommand) error {
	m.got = cmd
	return m.err
}

type mockListTicketsUC struct {
	got ticketusecases.ListTicketsQuery
}

func (m *mockListTicketsUC) Execute(_ context.Context, q ticketusecases.ListTicketsQuery) (*ticketusecases.ListTicketsResult, error) {
	m.got = q
	return &ticketusecases.ListTicketsResult{Tickets: []*ticketdto.TicketDTO{{ID: 4}}, Total: 1}, nil
}

type testDeps struct {
	signup  *mockSignupUC
	login   *mockLoginUC
	get     *mockGetUserUC
	list    *mockListUsersUC
	update  *mockUpdateUserUC
	delete  *mockDeleteUserUC
	tickets *mockListTicketsUC
}

func newTestHandler() (*Handler, *testDeps) {
	deps := &testDeps{
		signup:  &mockSignupUC{},
		login:   &mockLoginUC{},
		get:     &mockGetUserUC{},
		list:    &mockListUsersUC{},
		update:  &mockUpdateUserUC{},
		delete:  &mockDeleteUserUC{},
		tickets: &mockListTicketsUC{},
	}
	h := NewHandler(deps.signup, deps.login, deps.get, deps.list, deps.update, deps.delete, deps.tickets, logger.NewNopLogger())
	return h, deps
}

func TestHandler_Signup(t *testing.T) {
	h, deps := newTestHandler()
	now := time.Now().UTC()
	deps.signup.result = &dto.UserDTO{ID: 1, Name: "alice", Email: "alice@example.com", Role: "user", CreatedAt: now, UpdatedAt: now}

	c, w := testutil.NewTestContext(http.MethodPost, "/users/", map[string]any{
		"email":    "alice@example.com",
		"password": "password123",
		"role":     "admin",
	})
	h.Signup(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "alice@example.com", deps.signup.got.Email)

	var got dto.UserDTO
	require.NoError(t, testutil.ParseResponse(w, &got))
	assert.Equal(t, uint(1), got.ID)
	assert.Equal(t, "user", got.Role)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestHandler_Signup_Validation(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{"missing email", map[string]string{"password": "password123"}},
		{"missing password", map[string]string{"email": "alice@example.com"}},
		{"bad email", map[string]string{"email": "alice", "password": "password123"}},
		{"short password", map[string]string{"email": "alice@example.com", "password": "pw"}},
		{"malformed json", `{"email":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler()
			c, w := testutil.NewTestContext(http.MethodPost, "/users/", tt.body)
			h.Signup(c)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandler_Signup_Conflict(t *testing.T) {
	h, deps := newTestHandler()
	deps.signup.err = errors.NewConflictError("email already registered")

	c, w := testutil.NewTestContext(http.MethodPost, "/users/signup", map[string]string{
		"email":    "alice@example.com",
		"password": "password123",
	})
	h.Signup(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "email already registered", testutil.ParseError(w).Error)
}

func TestHandler_Login(t *testing.T) {
	h, deps := newTestHandler()
	deps.login.result = &dto.TokenDTO{Token: "abc", TokenType: "Bearer", ExpiresIn: 3600}

	c, w := testutil.NewTestContext(http.MethodPost, "/users/login", map[string]string{
		"email":    "alice@example.com",
		"password": "password123",
	})
	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"token":"abc","token_type":"Bearer","expires_in":3600}`, w.Body.String())
}

func TestHandler_Login_BadCredentials(t *testing.T) {
	h, deps := newTestHandler()
	deps.login.err = errors.NewUnauthorizedError("invalid email or password")

	c, w := testutil.NewTestContext(http.MethodPost, "/users/login", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})
	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotContains(t, w.Body.String(), "token\"")
}

func TestHandler_ListUsers(t *testing.T) {
	h, deps := newTestHandler()
	deps.list.result = &usecases.ListUsersResult{Users: []*dto.UserDTO{{ID: 1}, {ID: 2}}, Total: 12}

	c, w := testutil.NewTestContext(http.MethodGet, "/users/", nil)
	testutil.SetQueryParams(c, map[string]string{"page": "2", "per_page": "500"})
	h.ListUsers(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "12", w.Header().Get("X-Total-Count"))
	assert.Equal(t, 2, deps.list.got.Page)
	assert.Equal(t, 100, deps.list.got.PageSize)

	var got []dto.UserDTO
	require.NoError(t, testutil.ParseResponse(w, &got))
	assert.Len(t, got, 2)
}

func TestHandler_GetUser(t *testing.T) {
	h, deps := newTestHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/users/abc", nil)
	testutil.SetURLParam(c, "id", "abc")
	h.GetUser(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	deps.get.err = errors.NewNotFoundError("user not found")
	c, w = testutil.NewTestContext(http.MethodGet, "/users/9", nil)
	testutil.SetURLParam(c, "id", "9")
	h.GetUser(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UpdateUser_AllowList(t *testing.T) {
	h, deps := newTestHandler()
	deps.update.result = &dto.UserDTO{ID: 3, Name: "New"}

	c, w := testutil.NewTestContext(http.MethodPut, "/users/3", map[string]any{
		"name": "New",
		"role": "admin",
		"id":   99,
	})
	testutil.SetURLParam(c, "id", "3")
	testutil.SetAuthContext(c, 3, authorization.RoleUser)
	h.UpdateUser(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(3), deps.update.got.UserID)
	assert.Equal(t, uint(3), deps.update.got.Actor.UserID)
	require.NotNil(t, deps.update.got.Name)
	assert.Equal(t, "New", *deps.update.got.Name)
	assert.Nil(t, deps.update.got.Email)
	assert.Nil(t, deps.update.got.Password)
}

func TestHandler_UpdateUser_Forbidden(t *testing.T) {
	h, deps := newTestHandler()
	deps.update.err = errors.NewForbiddenError("you do not have permission to modify this user")

	c, w := testutil.NewTestContext(http.MethodPut, "/users/3", map[string]any{"name": "New"})
	testutil.SetURLParam(c, "id", "3")
	testutil.SetAuthContext(c, 4, authorization.RoleUser)
	h.UpdateUser(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_DeleteUser(t *testing.T) {
	h, deps := newTestHandler()

	c, w := testutil.NewTestContext(http.MethodDelete, "/users/3", nil)
	testutil.SetURLParam(c, "id", "3")
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
	h.DeleteUser(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"user deleted","deleted":3}`, w.Body.String())
	assert.Equal(t, authorization.RoleAdmin, deps.delete.got.Actor.Role)
}

func TestHandler_DeleteUser_NotAuthenticated(t *testing.T) {
	h, _ := newTestHandler()

	c, w := testutil.NewTestContext(http.MethodDelete, "/users/3", nil)
	testutil.SetURLParam(c, "id", "3")
	h.DeleteUser(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_MyTickets(t *testing.T) {
	h, deps := newTestHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/users/my-tickets", nil)
	testutil.SetAuthContext(c, 8, authorization.RoleUser)
	h.MyTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, deps.tickets.got.OwnerID)
	assert.Equal(t, uint(8), *deps.tickets.got.OwnerID)
	assert.Equal(t, "1", w.Header().Get("X-Total-Count"))
}
