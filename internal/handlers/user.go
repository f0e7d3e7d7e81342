package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/eduboard/backend/internal/requestdata"
	"github.com/eduboard/backend/internal/services"
)

type UserHandler struct {
	userSvc services.UserService
}

func NewUserHandler(userSvc services.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// GET /api/user
func (h *UserHandler) GetMe(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.userSvc.GetByID(c.Request.Context(), nil, rd.UserID)
	if err != nil {
		RespondError(c, http.StatusNotFound, "user not found")
		return
	}
	RespondOK(c, gin.H{"user": user})
}
