package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/curexo/orders_backend/internal/apperrors"
	portssvc "github.com/curexo/orders_backend/internal/core/ports/services"
	"github.com/curexo/orders_backend/internal/dto"
	"github.com/curexo/orders_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// orderHandler handles HTTP requests related to orders.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

// newOrderHandler creates a new orderHandler.
func newOrderHandler(os portssvc.OrderSvcFacade) *orderHandler {
	return &orderHandler{
		orderService: os,
	}
}

// registerOrderRoutes registers all order-related routes.
func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := newOrderHandler(orderService)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("", h.listOrders)
		orders.GET("/:id", h.getOrder)
		orders.PUT("/:id", h.updateOrderCurrency)
		orders.DELETE("/:id", h.deleteOrder)
	}
}

// createOrder godoc
// @Summary Create a new order
// @Description Creates an order with a customer name, a positive price and a supported currency
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   order body dto.CreateOrderRequest true "Order details"
// @Success 200 {object} dto.OrderResponse
// @Failure 422 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create order"
// @Router /orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create order request", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create order", slog.String("customer_name", req.CustomerName), slog.String("currency", req.Currency.String()))

	createdOrder, err := h.orderService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating order", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create order in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		}
		return
	}

	logger.Info("Order created successfully", slog.Int64("order_id", createdOrder.OrderID))
	c.JSON(http.StatusOK, dto.ToOrderResponse(createdOrder))
}

// getOrder godoc
// @Summary Get an order by ID
// @Description Retrieves an order, optionally converting its price to another currency for the response only
// @Tags orders
// @Produce  json
// @Param   id path int true "Order ID"
// @Param   to_currency query string false "Target currency code (3 letters)"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 503 {object} map[string]string "Exchange rate provider unreachable"
// @Failure 500 {object} map[string]string "Failed to retrieve order"
// @Router /orders/{id} [get]
func (h *orderHandler) getOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	orderID, ok := parseOrderID(c, logger)
	if !ok {
		return
	}

	var params dto.OrderQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for GetOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("order_id", orderID))
	logger.Info("Received request to get order", slog.String("to_currency", params.ToCurrency.String()))

	order, err := h.orderService.GetOrderByID(c.Request.Context(), orderID, params.ToCurrency)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Order not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		} else {
			respondConversionError(c, logger, err, "Failed to retrieve order")
		}
		return
	}

	logger.Info("Order retrieved successfully")
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// listOrders godoc
// @Summary List all orders
// @Description Retrieves all orders, optionally converting prices to another currency for the response only
// @Tags orders
// @Produce  json
// @Param   to_currency query string false "Target currency code (3 letters)"
// @Success 200 {array} dto.OrderResponse
// @Failure 503 {object} map[string]string "Exchange rate provider unreachable"
// @Failure 500 {object} map[string]string "Failed to list orders"
// @Router /orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.OrderQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListOrders", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logger.Info("Received request to list orders", slog.String("to_currency", params.ToCurrency.String()))

	orders, err := h.orderService.ListOrders(c.Request.Context(), params.ToCurrency)
	if err != nil {
		respondConversionError(c, logger, err, "Failed to list orders")
		return
	}

	logger.Info("Orders listed successfully", slog.Int("count", len(orders)))
	c.JSON(http.StatusOK, dto.ToListOrderResponse(orders))
}

// updateOrderCurrency godoc
// @Summary Update the currency of an order
// @Description Converts the order's price to the new currency and persists the converted pair
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   id path int true "Order ID"
// @Param   order body dto.UpdateOrderCurrencyRequest true "New currency"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} map[string]string "Currency unchanged"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 503 {object} map[string]string "Exchange rate provider unreachable"
// @Failure 500 {object} map[string]string "Failed to update order"
// @Router /orders/{id} [put]
func (h *orderHandler) updateOrderCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	orderID, ok := parseOrderID(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateOrderCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update order currency request", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("order_id", orderID))
	logger.Info("Received request to update order currency", slog.String("currency", req.Currency.String()))

	order, err := h.orderService.UpdateOrderCurrency(c.Request.Context(), orderID, req.Currency)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Order not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		} else if errors.Is(err, apperrors.ErrNoChange) {
			logger.Warn("Order currency unchanged")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Currency is the same as the current one. Nothing to update."})
		} else {
			respondConversionError(c, logger, err, "Failed to update order")
		}
		return
	}

	logger.Info("Order currency updated successfully", slog.String("currency", order.Currency.String()))
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// deleteOrder godoc
// @Summary Delete an order
// @Description Removes an order permanently
// @Tags orders
// @Produce  json
// @Param   id path int true "Order ID"
// @Success 200 {object} dto.DeleteOrderResponse
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 500 {object} map[string]string "Failed to delete order"
// @Router /orders/{id} [delete]
func (h *orderHandler) deleteOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	orderID, ok := parseOrderID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("order_id", orderID))
	logger.Info("Received request to delete order")

	if err := h.orderService.DeleteOrder(c.Request.Context(), orderID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Order not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		} else {
			logger.Error("Failed to delete order in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		}
		return
	}

	logger.Info("Order deleted successfully")
	c.JSON(http.StatusOK, dto.ToDeleteOrderResponse(orderID))
}

// parseOrderID reads the :id path parameter, answering 400 on garbage.
func parseOrderID(c *gin.Context, logger *slog.Logger) (int64, bool) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		logger.Warn("Invalid order ID in path", slog.String("id", c.Param("id")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return 0, false
	}
	return orderID, true
}

// respondConversionError maps the conversion error taxonomy onto HTTP statuses:
// provider rejections keep their own status and message, unreachable provider
// is 503, a missing pair is 404, and anything unexpected is 500.
func respondConversionError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var upstreamErr *apperrors.UpstreamError
	switch {
	case errors.As(err, &upstreamErr):
		logger.Warn("Exchange rate provider rejected request", slog.Int("status", upstreamErr.StatusCode), slog.String("body", upstreamErr.Body))
		c.JSON(upstreamErr.StatusCode, gin.H{"error": upstreamErr.Body})
	case errors.Is(err, apperrors.ErrServiceUnavailable):
		logger.Error("Exchange rate provider unreachable", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Currency API request failed"})
	case errors.Is(err, apperrors.ErrRateNotFound):
		logger.Warn("Exchange rate not found for requested pair")
		c.JSON(http.StatusNotFound, gin.H{"error": "Exchange rate for the requested currency not found"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error during conversion", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConversion):
		logger.Error("Unexpected error during currency conversion", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unexpected error during currency conversion"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
