package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/domain"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/service"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuth(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(r gin.IRouter) {
	r.POST("/login", h.Login)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": domain.ErrMissingFields.Error()})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
