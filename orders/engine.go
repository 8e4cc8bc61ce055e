// Package orders holds the order workflow engine: it creates orders from
// authoritative catalog prices, validates status transitions and triggers
// customer SMS notifications as a detached side effect of state changes.
package orders

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/JAX838/divine-sounds/models"
	"github.com/JAX838/divine-sounds/notify"
	"github.com/JAX838/divine-sounds/store"
)

var (
	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrIllegalTransition = errors.New("illegal status transition")
)

// ItemRequest is one requested line item. Any price the client may have
// claimed is absent on purpose: totals are always computed from the catalog.
type ItemRequest struct {
	ProductID uint `json:"product" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

type Engine struct {
	orders     store.OrderRepository
	catalog    store.CatalogStore
	dispatcher *notify.Dispatcher
	policy     TransitionPolicy
}

func NewEngine(orders store.OrderRepository, catalog store.CatalogStore, dispatcher *notify.Dispatcher, policy TransitionPolicy) *Engine {
	return &Engine{
		orders:     orders,
		catalog:    catalog,
		dispatcher: dispatcher,
		policy:     policy,
	}
}

// CreateOrder resolves every requested product, snapshots name and price
// into order items, computes the total from the catalog prices and persists
// the order as Pending. If any product fails to resolve, nothing is
// persisted. The order-received SMS is dispatched after persistence and
// never affects the outcome.
func (e *Engine) CreateOrder(customerName, phoneNumber string, items []ItemRequest) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	var total float64
	orderItems := make([]models.OrderItem, 0, len(items))

	for _, req := range items {
		product, err := e.catalog.FindProductByID(req.ProductID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, fmt.Errorf("product %d %w", req.ProductID, store.ErrNotFound)
			}
			return nil, err
		}

		orderItems = append(orderItems, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    req.Quantity,
		})
		total += product.Price * float64(req.Quantity)
	}

	order := &models.Order{
		OrderRef:     generateOrderRef(),
		CustomerName: customerName,
		PhoneNumber:  phoneNumber,
		Items:        orderItems,
		TotalAmount:  total,
		Status:       models.OrderStatusPending,
	}

	if err := e.orders.Create(order); err != nil {
		return nil, err
	}

	e.dispatcher.DispatchOrderEvent(notify.EventOrderReceived, order)

	return order, nil
}

// UpdateOrderStatus validates the new status against the enumeration and the
// configured transition policy, persists it, and dispatches the matching SMS
// for Confirmed, Shipped and Delivered. Pending never notifies.
func (e *Engine) UpdateOrderStatus(id uint, rawStatus string) (*models.Order, error) {
	status, err := ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	if e.policy == TransitionForwardOnly {
		current, err := e.orders.FindByID(id)
		if err != nil {
			return nil, err
		}
		if !e.policy.allows(current.Status, status) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, current.Status, status)
		}
	}

	order, err := e.orders.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}

	if event, ok := notify.EventForStatus(status); ok {
		e.dispatcher.DispatchOrderEvent(event, order)
	}

	return order, nil
}

func (e *Engine) GetOrder(id uint) (*models.Order, error) {
	return e.orders.FindByID(id)
}

func (e *Engine) ListOrders() ([]models.Order, error) {
	return e.orders.FindAll()
}

func (e *Engine) DeleteOrder(id uint) error {
	return e.orders.DeleteByID(id)
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
