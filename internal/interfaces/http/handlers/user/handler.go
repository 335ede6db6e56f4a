package user

import (
	"github.com/gin-gonic/gin"

	ticketusecases "github.com/garagehq/shopapi/internal/application/ticket/usecases"
	"github.com/garagehq/shopapi/internal/application/user/usecases"
	"github.com/garagehq/shopapi/internal/interfaces/http/handlers/common"
	"github.com/garagehq/shopapi/internal/shared/logger"
	"github.com/garagehq/shopapi/internal/shared/utils"
)

type Handler struct {
	signupUC      usecases.SignupExecutor
	loginUC       usecases.LoginExecutor
	getUserUC     usecases.GetUserExecutor
	listUsersUC   usecases.ListUsersExecutor
	updateUserUC  usecases.UpdateUserExecutor
	deleteUserUC  usecases.DeleteUserExecutor
	listTicketsUC ticketusecases.ListTicketsExecutor
	logger        logger.Interface
}

func NewHandler(
	signupUC usecases.SignupExecutor,
	loginUC usecases.LoginExecutor,
	getUserUC usecases.GetUserExecutor,
	listUsersUC usecases.ListUsersExecutor,
	updateUserUC usecases.UpdateUserExecutor,
	deleteUserUC usecases.DeleteUserExecutor,
	listTicketsUC ticketusecases.ListTicketsExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		signupUC:      signupUC,
		loginUC:       loginUC,
		getUserUC:     getUserUC,
		listUsersUC:   listUsersUC,
		updateUserUC:  updateUserUC,
		deleteUserUC:  deleteUserUC,
		listTicketsUC: listTicketsUC,
		logger:        logger,
	}
}

// Signup handles POST /users/ and POST /users/signup
// @Summary Register a user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup payload"
// @Success 201 {object} dto.UserDTO
// @Failure 400 {object} utils.ErrorBody
// @Failure 409 {object} utils.ErrorBody
// @Router /users/ [post]
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for signup", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.signupUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// Login handles POST /users/login
// @Summary Exchange credentials for a bearer token
// @Tags Users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} dto.TokenDTO
// @Failure 401 {object} utils.ErrorBody
// @Router /users/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListUsers handles GET /users/
func (h *Handler) ListUsers(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListResponse(c, result.Users, result.Total)
}

// GetUser handles GET /users/:id
func (h *Handler) GetUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// UpdateUser handles PUT /users/:id
func (h *Handler) UpdateUser(c *gin.Context) {
	actor, ok := common.Actor(c)
	if !ok {
		return
	}

	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUserUC.Execute(c.Request.Context(), usecases.UpdateUserCommand{
		Actor:    actor,
		UserID:   id,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// DeleteUser handles DELETE /users/:id
func (h *Handler) DeleteUser(c *gin.Context) {
	actor, ok := common.Actor(c)
	if !ok {
		return
	}

	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUserUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{Actor: actor, UserID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DeletedResponse(c, "user deleted", id)
}

// MyTickets handles GET /users/my-tickets
// @Summary List the caller's tickets
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param per_page query int false "Page size (max 100)"
// @Success 200 {array} object
// @Router /users/my-tickets [get]
func (h *Handler) MyTickets(c *gin.Context) {
	actor, ok := common.Actor(c)
	if !ok {
		return
	}

	p := utils.ParsePagination(c)
	result, err := h.listTicketsUC.Execute(c.Request.Context(), ticketusecases.ListTicketsQuery{
		OwnerID:  &actor.UserID,
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListResponse(c, result.Tickets, result.Total)
}
