package rabbitmq

import "context"

// PublisherInterface is what the order service needs to announce a placed
// order; tests substitute a mock.
type PublisherInterface interface {
	Publish(ctx context.Context, routingKey string, data any) error
}

var _ PublisherInterface = (*Publisher)(nil)
