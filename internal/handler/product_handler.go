package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/domain"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/service"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	products *service.ProductService
}

func NewProduct(products *service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) Register(r gin.IRouter) {
	r.GET("/products", h.List)
	r.GET("/products/:productId", h.Get)
	r.POST("/products", h.Create)
	r.PUT("/products/:productId", h.Update)
	r.DELETE("/products/:productId", h.Delete)
}

type productRequest struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
	Image    string          `json:"image"`
	Type     string          `json:"type"`
}

func (r productRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Name:     r.Name,
		Price:    r.Price,
		Currency: r.Currency,
		Image:    r.Image,
		Type:     r.Type,
	}
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.products.ListProducts(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	productID, err := productIDParam(c)
	if err != nil {
		return
	}

	product, err := h.products.GetProduct(c.Request.Context(), productID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": domain.ErrMissingFields.Error()})
		return
	}

	product, err := h.products.CreateProduct(c.Request.Context(), req.toInput())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	productID, err := productIDParam(c)
	if err != nil {
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": domain.ErrMissingFields.Error()})
		return
	}

	product, err := h.products.UpdateProduct(c.Request.Context(), productID, req.toInput())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	productID, err := productIDParam(c)
	if err != nil {
		return
	}

	if err := h.products.DeleteProduct(c.Request.Context(), productID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Produto excluído com sucesso!"})
}

func productIDParam(c *gin.Context) (int64, error) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID inválido"})
		return 0, err
	}
	return productID, nil
}
