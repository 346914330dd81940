package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/domain"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/service"
)

type UserHandler struct {
	users *service.UserService
}

func NewUser(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Register(r gin.IRouter) {
	r.GET("/users", h.List)
	r.GET("/users/:uid", h.Get)
	r.POST("/users", h.Create)
	r.PUT("/users/:uid", h.Update)
	r.DELETE("/users/:uid", h.Delete)
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	userID, err := userIDParam(c)
	if err != nil {
		return
	}

	user, err := h.users.GetUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": domain.ErrMissingFields.Error()})
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), domain.NewUser{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	userID, err := userIDParam(c)
	if err != nil {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": domain.ErrMissingFields.Error()})
		return
	}

	user, err := h.users.UpdateUser(c.Request.Context(), userID, domain.UserUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	userID, err := userIDParam(c)
	if err != nil {
		return
	}

	if err := h.users.DeleteUser(c.Request.Context(), userID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuário excluído com sucesso!"})
}

func userIDParam(c *gin.Context) (int64, error) {
	userID, err := strconv.ParseInt(c.Param("uid"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID inválido"})
		return 0, err
	}
	return userID, nil
}
