package usecase

import "context"

// InboundMessageInput carries one text message from the messaging webhook.
// From is the sender's mobile number; transport prefixes such as
// "whatsapp:" are stripped by the caller.
type InboundMessageInput struct {
	From string
	Body string
}

// MessageReply is the text sent back to the sender.
type MessageReply struct {
	Body string
}

// MessageUsecase turns inbound text messages into orders.
type MessageUsecase interface {
	// HandleMessage interprets the message body and always produces a
	// reply: the menu for the "order" keyword, a confirmation for a
	// well-formed order, or a fixed error text otherwise.
	HandleMessage(ctx context.Context, input *InboundMessageInput) (*MessageReply, error)
}
