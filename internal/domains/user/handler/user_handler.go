package handler

import (
	"github.com/gin-gonic/gin"

	"newsforum-backend/internal/domains/user/service"
	"newsforum-backend/internal/shared/response"
)

// UserHandler serves the read-only user endpoints
type UserHandler struct {
	service service.ServiceInterface
}

func NewUserHandler(service service.ServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// ListUsers GET /api/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, gin.H{"users": users})
}

// GetUser GET /api/users/:username
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.service.GetUser(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, gin.H{"user": user})
}
