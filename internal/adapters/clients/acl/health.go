package acl

import (
	"context"
	"fmt"
)

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *Client) Name() string {
	return "todo-api"
}

// HealthCheck reports the remote API's availability from the circuit breaker
// state. No network call is made. While the breaker is open every
// orchestrated operation is rejected as a network failure.
func (c *Client) HealthCheck(ctx context.Context) error {
	if err := c.req.HealthCheck(ctx); err != nil {
		return fmt.Errorf("remote operations unavailable: %w", err)
	}
	return nil
}
