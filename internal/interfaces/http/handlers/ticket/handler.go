package ticket

import (
	"github.com/gin-gonic/gin"

	"github.com/garagehq/shopapi/internal/application/ticket/usecases"
	"github.com/garagehq/shopapi/internal/interfaces/http/handlers/common"
	"github.com/garagehq/shopapi/internal/shared/logger"
	"github.com/garagehq/shopapi/internal/shared/utils"
)

type Handler struct {
	createUC        usecases.CreateTicketExecutor
	getUC           usecases.GetTicketExecutor
	listUC          usecases.ListTicketsExecutor
	updateUC        usecases.UpdateTicketExecutor
	deleteUC        usecases.DeleteTicketExecutor
	editMechanicsUC usecases.EditMechanicsExecutor
	addPartUC       usecases.AddPartExecutor
	removePartUC    usecases.RemovePartExecutor
	logger          logger.Interface
}

func NewHandler(
	createUC usecases.CreateTicketExecutor,
	getUC usecases.GetTicketExecutor,
	listUC usecases.ListTicketsExecutor,
	updateUC usecases.UpdateTicketExecutor,
	deleteUC usecases.DeleteTicketExecutor,
	editMechanicsUC usecases.EditMechanicsExecutor,
	addPartUC usecases.AddPartExecutor,
	removePartUC usecases.RemovePartExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUC:        createUC,
		getUC:           getUC,
		listUC:          listUC,
		updateUC:        updateUC,
		deleteUC:        deleteUC,
		editMechanicsUC: editMechanicsUC,
		addPartUC:       addPartUC,
		removePartUC:    removePartUC,
		logger:          logger,
	}
}

// CreateTicket handles POST /tickets/
// @Summary Open a service ticket
// @Description The caller becomes the owner. status defaults to open.
// @Tags Tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTicketRequest true "Ticket"
// @Success 201 {object} dto.TicketDTO
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody "unknown primary mechanic"
// @Router /tickets/ [post]
func (h *Handler) CreateTicket(c *gin.Context) {
	actor, ok := common.Actor(c)
	if !ok {
		return
	}

	var req CreateTicketRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Actor:             actor,
		Description:       req.Description,
		Status:            req.Status,
		PrimaryMechanicID: req.PrimaryMechanicID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// ListTickets handles GET /tickets/
// @Summary List tickets ordered by id
// @Tags Tickets
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param per_page query int false "Page size (max 100)"
// @Success 200 {array} dto.TicketDTO
// @Header 200 {string} X-Total-Count "Total number of tickets"
// @Router /tickets/ [get]
func (h *Handler) ListTickets(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListResponse(c, result.Tickets, result.Total)
}

// GetTicket handles GET /tickets/:id
// @Summary Get a ticket with its owner, mechanics and parts
// @Tags Tickets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Success 200 {object} dto.TicketDTO
// @Failure 404 {object} utils.ErrorBody
// @Router /tickets/{id} [get]
func (h *Handler) GetTicket(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
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

// UpdateTicket handles PUT /tickets/:id
// @Summary Update description, status or primary mechanic
// @Description Only the owner or a ticket manager may update. A null primary_mechanic_id clears it.
// @Tags Tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param request body UpdateTicketRequest true "Fields to change"
// @Success 200 {object} dto.TicketDTO
// @Failure 400 {object} utils.ErrorBody
// @Failure 403 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /tickets/{id} [put]
func (h *Handler) UpdateTicket(c *gin.Context) {
	actor, ok := common.Actor(c)
	if !ok {
		return
	}

	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		Actor:              actor,
		TicketID:           id,
		Description:        req.Description,
		Status:             req.Status,
		PrimaryMechanicID:  req.PrimaryMechanicID.Value,
		PrimaryMechanicSet: req.PrimaryMechanicID.Set,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// DeleteTicket handles DELETE /tickets/:id
// @Summary Delete a ticket and its associations
// @Tags Tickets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.DeletedBody
// @Failure 403 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /tickets/{id} [delete]
func (h *Handler) DeleteTicket(c *gin.Context) {
	actor, ok := common.Actor(c)
	if !ok {
		return
	}

	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{Actor: actor, TicketID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DeletedResponse(c, "ticket deleted", id)
}

// EditMechanics handles PUT /tickets/:id/edit
// @Summary Add and remove ticket mechanics
// @Description Re-adding a member or removing a non-member is a no-op. Unknown add ids fail the whole request.
// @Tags Tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param request body EditMechanicsRequest true "Mechanic ids"
// @Success 200 {object} dto.TicketDTO
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /tickets/{id}/edit [put]
func (h *Handler) EditMechanics(c *gin.Context) {
	actor, ok := common.Actor(c)
	if !ok {
		return
	}

	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req EditMechanicsRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.editMechanicsUC.Execute(c.Request.Context(), usecases.EditMechanicsCommand{
		Actor:     actor,
		TicketID:  id,
		AddIDs:    req.AddIDs,
		RemoveIDs: req.RemoveIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// AddPart handles POST /tickets/:id/add-part/:part_id
// @Summary Attach a part to a ticket
// @Tags Tickets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param part_id path int true "Part ID"
// @Success 200 {object} dto.TicketDTO
// @Failure 404 {object} utils.ErrorBody
// @Router /tickets/{id}/add-part/{part_id} [post]
func (h *Handler) AddPart(c *gin.Context) {
	cmd, ok := h.partCommand(c)
	if !ok {
		return
	}

	result, err := h.addPartUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// RemovePart handles DELETE /tickets/:id/parts/:part_id
// @Summary Detach a part from a ticket
// @Tags Tickets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param part_id path int true "Part ID"
// @Success 200 {object} dto.TicketDTO
// @Failure 404 {object} utils.ErrorBody
// @Router /tickets/{id}/parts/{part_id} [delete]
func (h *Handler) RemovePart(c *gin.Context) {
	cmd, ok := h.partCommand(c)
	if !ok {
		return
	}

	result, err := h.removePartUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *Handler) partCommand(c *gin.Context) (usecases.PartCommand, bool) {
	actor, ok := common.Actor(c)
	if !ok {
		return usecases.PartCommand{}, false
	}

	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return usecases.PartCommand{}, false
	}
	partID, err := utils.ParseIDParam(c, "part_id", "part")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return usecases.PartCommand{}, false
	}

	return usecases.PartCommand{Actor: actor, TicketID: ticketID, PartID: partID}, true
}
