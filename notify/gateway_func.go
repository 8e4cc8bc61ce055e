package notify

// GatewayFunc adapts a plain function to the Gateway interface.
type GatewayFunc func(recipients []string, message string) error

func (f GatewayFunc) Send(recipients []string, message string) error {
	return f(recipients, message)
}
