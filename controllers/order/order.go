package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JAX838/divine-sounds/orders"
	"github.com/JAX838/divine-sounds/store"
)

// -------- Request Structs --------

type PlaceOrderRequest struct {
	CustomerName string               `json:"customerName" binding:"required"`
	PhoneNumber  string               `json:"phoneNumber" binding:"required"`
	Items        []orders.ItemRequest `json:"items" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Handlers --------

// PlaceOrderHandler creates a new order from catalog prices. The SMS
// confirmation is fire-and-forget: the 201 never waits on it.
func PlaceOrderHandler(engine *orders.Engine, feed *Feed) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := engine.CreateOrder(req.CustomerName, req.PhoneNumber, req.Items)
		if err != nil {
			respondOrderError(c, err)
			return
		}

		feed.Broadcast(order)

		c.JSON(http.StatusCreated, gin.H{
			"message": "Order placed successfully",
			"order":   order,
		})
	}
}

func GetAllOrdersHandler(engine *orders.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := engine.ListOrders()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func GetOrderByIDHandler(engine *orders.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderID(c)
		if !ok {
			return
		}
		order, err := engine.GetOrder(id)
		if err != nil {
			respondOrderError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func UpdateOrderStatusHandler(engine *orders.Engine, feed *Feed) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderID(c)
		if !ok {
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := engine.UpdateOrderStatus(id, req.Status)
		if err != nil {
			respondOrderError(c, err)
			return
		}

		feed.Broadcast(order)

		c.JSON(http.StatusOK, gin.H{
			"message": "Order status updated successfully",
			"order":   order,
		})
	}
}

func DeleteOrderHandler(engine *orders.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderID(c)
		if !ok {
			return
		}
		if err := engine.DeleteOrder(id); err != nil {
			respondOrderError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}

// -------- Helpers --------

func orderID(c *gin.Context) (uint, bool) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return 0, false
	}
	return uint(id), true
}

func respondOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, orders.ErrInvalidStatus),
		errors.Is(err, orders.ErrIllegalTransition),
		errors.Is(err, orders.ErrEmptyOrder):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
