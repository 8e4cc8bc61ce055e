package notify

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/JAX838/divine-sounds/models"
)

// Event identifies which lifecycle message to send for an order.
type Event string

const (
	EventOrderReceived Event = "order_received"
	EventConfirmed     Event = "confirmed"
	EventShipped       Event = "shipped"
	EventDelivered     Event = "delivered"
)

// EventForStatus maps a stored status to its notification event. Pending is
// only the creation default and never notifies on its own.
func EventForStatus(status models.OrderStatus) (Event, bool) {
	switch status {
	case models.OrderStatusConfirmed:
		return EventConfirmed, true
	case models.OrderStatusShipped:
		return EventShipped, true
	case models.OrderStatusDelivered:
		return EventDelivered, true
	default:
		return "", false
	}
}

// MessageFor renders the customer-facing SMS body for an event.
func MessageFor(event Event, order *models.Order) string {
	switch event {
	case EventOrderReceived:
		var b strings.Builder
		fmt.Fprintf(&b, "✅ Hello %s, we have RECEIVED your order!\n\n📦 Items:\n", order.CustomerName)
		for _, item := range order.Items {
			fmt.Fprintf(&b, "- %s x%d @ KES %s\n", item.ProductName, item.Quantity, formatAmount(item.Price))
		}
		fmt.Fprintf(&b, "\n💰 Total Payable: KES %s\n\n⏱️ You'll get updates once it's confirmed and shipped.", formatAmount(order.TotalAmount))
		return b.String()
	case EventConfirmed:
		return fmt.Sprintf(
			"✅ Hello %s, your order has been CONFIRMED. Total: KES %s. We will notify you when it's shipped.",
			order.CustomerName, formatAmount(order.TotalAmount),
		)
	case EventShipped:
		return fmt.Sprintf("📦 Hello %s, your order is now SHIPPED and on the way!", order.CustomerName)
	case EventDelivered:
		return fmt.Sprintf("🎉 Hello %s, your order has been DELIVERED. Thank you for shopping with us!", order.CustomerName)
	default:
		return ""
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
