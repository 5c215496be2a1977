package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixdesk/internal/application/user/usecases"
	"fixdesk/internal/shared/constants"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/utils"
)

type UserHandler struct {
	listUsersUC  usecases.ListUsersExecutor
	deleteUserUC usecases.DeleteUserExecutor
	logger       logger.Interface
}

func NewUserHandler(
	listUsersUC usecases.ListUsersExecutor,
	deleteUserUC usecases.DeleteUserExecutor,
) *UserHandler {
	return &UserHandler{
		listUsersUC:  listUsersUC,
		deleteUserUC: deleteUserUC,
		logger:       logger.NewLogger(),
	}
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	result, err := h.listUsersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actorSID := c.GetString(constants.ContextKeyUserSID)

	err := h.deleteUserUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{
		UserSID:  c.Param("id"),
		ActorSID: actorSID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
