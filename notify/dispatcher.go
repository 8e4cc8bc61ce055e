package notify

import (
	"log"
	"sync"

	"github.com/JAX838/divine-sounds/models"
)

// Gateway is the outbound SMS capability. Implementations may fail for
// network, auth or provider reasons; callers never depend on the result.
type Gateway interface {
	Send(recipients []string, message string) error
}

// Dispatcher submits order-lifecycle SMS messages without ever letting a
// gateway failure reach the operation that triggered it. Each dispatch runs
// as a detached goroutine so a slow provider cannot inflate request latency.
type Dispatcher struct {
	gateway Gateway
	wg      sync.WaitGroup
}

func NewDispatcher(gateway Gateway) *Dispatcher {
	return &Dispatcher{gateway: gateway}
}

// DispatchOrderEvent formats and sends the SMS for event in the background.
// Failure is logged and discarded here, at the dispatch boundary.
func (d *Dispatcher) DispatchOrderEvent(event Event, order *models.Order) {
	phone := NormalizePhone(order.PhoneNumber)
	if phone == "" {
		log.Printf("⚠️ Skipping SMS for order %d: invalid phone %q", order.ID, order.PhoneNumber)
		return
	}

	message := MessageFor(event, order)
	if message == "" {
		return
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Printf("⚠️ SMS dispatch panicked (non-blocking): %v", r)
			}
		}()
		if err := d.gateway.Send([]string{phone}, message); err != nil {
			log.Printf("⚠️ SMS failed (non-blocking): %v", err)
			return
		}
		log.Printf("📱 SMS %s sent to %s for order %d", event, phone, order.ID)
	}()
}

// Wait blocks until every in-flight dispatch has finished. Used on shutdown
// and by tests.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
