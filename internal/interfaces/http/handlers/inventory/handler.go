package inventory

import (
	"github.com/gin-gonic/gin"

	"github.com/garagehq/shopapi/internal/application/inventory/usecases"
	"github.com/garagehq/shopapi/internal/shared/logger"
	"github.com/garagehq/shopapi/internal/shared/utils"
)

type CreatePartRequest struct {
	Name  string  `json:"name" validate:"required,max=120"`
	Price float64 `json:"price" validate:"gte=0"`
}

type UpdatePartRequest struct {
	Name  *string  `json:"name" validate:"omitempty,max=120"`
	Price *float64 `json:"price" validate:"omitempty,gte=0"`
}

type Handler struct {
	createUC usecases.CreatePartExecutor
	getUC    usecases.GetPartExecutor
	listUC   usecases.ListPartsExecutor
	updateUC usecases.UpdatePartExecutor
	deleteUC usecases.DeletePartExecutor
	logger   logger.Interface
}

func NewHandler(
	createUC usecases.CreatePartExecutor,
	getUC usecases.GetPartExecutor,
	listUC usecases.ListPartsExecutor,
	updateUC usecases.UpdatePartExecutor,
	deleteUC usecases.DeletePartExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

func (h *Handler) CreatePart(c *gin.Context) {
	var req CreatePartRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreatePartCommand{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

func (h *Handler) ListParts(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListPartsQuery{
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListResponse(c, result.Parts, result.Total)
}

func (h *Handler) GetPart(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "part")
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

func (h *Handler) UpdatePart(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "part")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePartRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdatePartCommand{
		ID:    id,
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *Handler) DeletePart(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "part")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DeletedResponse(c, "part deleted", id)
}
