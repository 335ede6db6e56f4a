package mechanic

import (
	"github.com/gin-gonic/gin"

	"github.com/garagehq/shopapi/internal/application/mechanic/usecases"
	"github.com/garagehq/shopapi/internal/shared/constants"
	"github.com/garagehq/shopapi/internal/shared/logger"
	"github.com/garagehq/shopapi/internal/shared/utils"
)

const maxLeaderboardSize = 100

type Handler struct {
	createUC      usecases.CreateMechanicExecutor
	getUC         usecases.GetMechanicExecutor
	listUC        usecases.ListMechanicsExecutor
	updateUC      usecases.UpdateMechanicExecutor
	deleteUC      usecases.DeleteMechanicExecutor
	leaderboardUC usecases.LeaderboardExecutor
	logger        logger.Interface
}

func NewHandler(
	createUC usecases.CreateMechanicExecutor,
	getUC usecases.GetMechanicExecutor,
	listUC usecases.ListMechanicsExecutor,
	updateUC usecases.UpdateMechanicExecutor,
	deleteUC usecases.DeleteMechanicExecutor,
	leaderboardUC usecases.LeaderboardExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUC:      createUC,
		getUC:         getUC,
		listUC:        listUC,
		updateUC:      updateUC,
		deleteUC:      deleteUC,
		leaderboardUC: leaderboardUC,
		logger:        logger,
	}
}

// CreateMechanic handles POST /mechanics/
// @Summary Create a mechanic
// @Tags Mechanics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateMechanicRequest true "Mechanic"
// @Success 201 {object} dto.MechanicDTO
// @Failure 400 {object} utils.ErrorBody
// @Failure 401 {object} utils.ErrorBody
// @Router /mechanics/ [post]
func (h *Handler) CreateMechanic(c *gin.Context) {
	var req CreateMechanicRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateMechanicCommand{
		Name:      req.Name,
		Specialty: req.Specialty,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// ListMechanics handles GET /mechanics/
// @Summary List mechanics ordered by name
// @Tags Mechanics
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Page size (max 100)"
// @Success 200 {array} dto.MechanicDTO
// @Header 200 {string} X-Total-Count "Total number of mechanics"
// @Router /mechanics/ [get]
func (h *Handler) ListMechanics(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListMechanicsQuery{
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListResponse(c, result.Mechanics, result.Total)
}

// Leaderboard handles GET /mechanics/leaderboard
// @Summary Mechanics ranked by ticket count
// @Tags Mechanics
// @Produce json
// @Param limit query int false "Entries to return (default 10, max 100)"
// @Success 200 {array} dto.LeaderboardEntryDTO
// @Router /mechanics/leaderboard [get]
func (h *Handler) Leaderboard(c *gin.Context) {
	limit := utils.ParseLimit(c, "limit", constants.DefaultLeaderboardSize, maxLeaderboardSize)

	result, err := h.leaderboardUC.Execute(c.Request.Context(), limit)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *Handler) GetMechanic(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "mechanic")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *Handler) UpdateMechanic(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "mechanic")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateMechanicRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateMechanicCommand{
		ID:        id,
		Name:      req.Name,
		Specialty: req.Specialty,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *Handler) DeleteMechanic(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "mechanic")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DeletedResponse(c, "mechanic deleted", id)
}
