// Package notify provides interchangeable message-delivery variants and the
// coordinator that depends only on the delivery contract, never on a
// concrete channel.
package notify

import "github.com/google/uuid"

// Message is a notification payload. The ID is assigned at construction and
// travels with the message through whichever channel delivers it.
type Message struct {
	ID        uuid.UUID
	Recipient string
	Subject   string
	Body      string
}

// NewMessage builds a message with a fresh ID.
func NewMessage(recipient, subject, body string) Message {
	return Message{
		ID:        uuid.New(),
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
	}
}
