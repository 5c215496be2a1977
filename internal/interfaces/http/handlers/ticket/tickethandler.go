package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixdesk/internal/application/ticket/usecases"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC       usecases.CreateTicketExecutor
	updateTicketUC       usecases.UpdateTicketExecutor
	toggleStatusUC       usecases.ToggleTicketStatusExecutor
	deleteTicketUC       usecases.DeleteTicketExecutor
	getTicketUC          usecases.GetTicketExecutor
	listTicketsUC        usecases.ListTicketsExecutor
	addHistoryEntryUC    usecases.AddHistoryEntryExecutor
	updateHistoryEntryUC usecases.UpdateHistoryEntryExecutor
	deleteHistoryEntryUC usecases.DeleteHistoryEntryExecutor
	logger               logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	toggleStatusUC usecases.ToggleTicketStatusExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	addHistoryEntryUC usecases.AddHistoryEntryExecutor,
	updateHistoryEntryUC usecases.UpdateHistoryEntryExecutor,
	deleteHistoryEntryUC usecases.DeleteHistoryEntryExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:       createTicketUC,
		updateTicketUC:       updateTicketUC,
		toggleStatusUC:       toggleStatusUC,
		deleteTicketUC:       deleteTicketUC,
		getTicketUC:          getTicketUC,
		listTicketsUC:        listTicketsUC,
		addHistoryEntryUC:    addHistoryEntryUC,
		updateHistoryEntryUC: updateHistoryEntryUC,
		deleteHistoryEntryUC: deleteHistoryEntryUC,
		logger:               logger.NewLogger(),
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Priority:    req.Priority,
		ImageData:   req.ImageData,
		Actor:       actorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketSID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		Status:     c.Query("status"),
		Type:       c.Query("type"),
		Priority:   c.Query("priority"),
		CreatorSID: c.Query("creator"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateTicket handles PUT /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		TicketSID:   c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Priority:    req.Priority,
		Status:      req.Status,
		ImageData:   req.ImageData,
		Actor:       actorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// ToggleStatus handles PATCH /tickets/:id/status
func (h *TicketHandler) ToggleStatus(c *gin.Context) {
	result, err := h.toggleStatusUC.Execute(c.Request.Context(), usecases.ToggleTicketStatusCommand{
		TicketSID: c.Param("id"),
		Actor:     actorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status toggled", result)
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		TicketSID: c.Param("id"),
		Actor:     actorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// AddHistoryEntry handles POST /tickets/:id/history
func (h *TicketHandler) AddHistoryEntry(c *gin.Context) {
	var req AddHistoryEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.addHistoryEntryUC.Execute(c.Request.Context(), usecases.AddHistoryEntryCommand{
		TicketSID:   c.Param("id"),
		Description: req.Description,
		Actor:       actorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "History entry added")
}

// UpdateHistoryEntry handles PUT /tickets/:id/history/:entryId
func (h *TicketHandler) UpdateHistoryEntry(c *gin.Context) {
	var req UpdateHistoryEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.updateHistoryEntryUC.Execute(c.Request.Context(), usecases.UpdateHistoryEntryCommand{
		TicketSID:   c.Param("id"),
		EntrySID:    c.Param("entryId"),
		Description: req.Description,
		Actor:       actorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "History entry updated", result)
}

// DeleteHistoryEntry handles DELETE /tickets/:id/history/:entryId
func (h *TicketHandler) DeleteHistoryEntry(c *gin.Context) {
	err := h.deleteHistoryEntryUC.Execute(c.Request.Context(), usecases.DeleteHistoryEntryCommand{
		TicketSID: c.Param("id"),
		EntrySID:  c.Param("entryId"),
		Actor:     actorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
