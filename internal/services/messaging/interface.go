package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetCollectedMessage returns the message logged when an item is picked up
	GetCollectedMessage(ctx context.Context, input *GetCollectedMessageInput) (*GetCollectedMessageOutput, error)

	// GetEventMessage returns the announcement text for a run milestone
	GetEventMessage(ctx context.Context, input *GetEventMessageInput) (*GetEventMessageOutput, error)
}
