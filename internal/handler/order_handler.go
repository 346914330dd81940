package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/domain"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/middleware"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/service"
	"github.com/samber/lo"
)

type OrderHandler struct {
	orders *service.OrderService
}

func NewOrder(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) Register(r gin.IRouter) {
	r.GET("/orders", h.List)
	r.GET("/orders/:orderId", h.Get)
	r.POST("/orders", h.Create)
	r.PUT("/orders/:orderId", h.UpdateStatus)
	r.DELETE("/orders/:orderId", h.Delete)
}

type createOrderRequest struct {
	UserID   int64              `json:"userId"`
	Client   string             `json:"client"`
	Products []orderLineRequest `json:"products"`
}

type orderLineRequest struct {
	ProductID int64 `json:"productId"`
	Qty       int32 `json:"qty"`
}

type updateOrderRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) List(c *gin.Context) {
	ok := false
	defer func() { middleware.RecordOrderOperation("list", ok) }()

	orders, err := h.orders.ListOrders(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	ok = true
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	ok := false
	defer func() { middleware.RecordOrderOperation("get", ok) }()

	orderID, err := orderIDParam(c)
	if err != nil {
		return
	}

	order, err := h.orders.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		writeError(c, err)
		return
	}

	ok = true
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Create(c *gin.Context) {
	ok := false
	defer func() { middleware.RecordOrderOperation("create", ok) }()

	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": domain.ErrIncompleteRequest.Error()})
		return
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), domain.NewOrder{
		UserID: req.UserID,
		Client: req.Client,
		Lines: lo.Map(req.Products, func(line orderLineRequest, _ int) domain.NewOrderLine {
			return domain.NewOrderLine{ProductID: line.ProductID, Quantity: line.Qty}
		}),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	ok = true
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	ok := false
	defer func() { middleware.RecordOrderOperation("update_status", ok) }()

	orderID, err := orderIDParam(c)
	if err != nil {
		return
	}

	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": domain.ErrIncompleteRequest.Error()})
		return
	}

	order, err := h.orders.UpdateOrderStatus(c.Request.Context(), orderID, req.Status)
	if err != nil {
		writeError(c, err)
		return
	}

	ok = true
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	ok := false
	defer func() { middleware.RecordOrderOperation("delete", ok) }()

	orderID, err := orderIDParam(c)
	if err != nil {
		return
	}

	if err := h.orders.DeleteOrder(c.Request.Context(), orderID); err != nil {
		writeError(c, err)
		return
	}

	ok = true
	c.JSON(http.StatusOK, gin.H{"message": "Ordem excluída com sucesso!"})
}

// orderIDParam parses the path id, writing the 400 response on failure.
func orderIDParam(c *gin.Context) (int64, error) {
	orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID inválido"})
		return 0, err
	}
	return orderID, nil
}
