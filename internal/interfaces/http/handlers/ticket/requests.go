package ticket

import (
	"github.com/gin-gonic/gin"

	"fixdesk/internal/application/ticket/usecases"
	"fixdesk/internal/shared/constants"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Priority    string `json:"priority" binding:"required"`
	ImageData   string `json:"image_data"`
}

type UpdateTicketRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
	ImageData   *string `json:"image_data"`
}

type AddHistoryEntryRequest struct {
	Description string `json:"description" binding:"required"`
}

type UpdateHistoryEntryRequest struct {
	Description string `json:"description" binding:"required"`
}

// actorFromContext rebuilds the authenticated identity placed in the
// context by the auth middleware.
func actorFromContext(c *gin.Context) usecases.Actor {
	return usecases.Actor{
		UserSID:  c.GetString(constants.ContextKeyUserSID),
		Username: c.GetString(constants.ContextKeyUsername),
		Role:     c.GetString(constants.ContextKeyUserRole),
	}
}
