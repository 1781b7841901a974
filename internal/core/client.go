package core

import "sync"

// DefaultClientBuffer is the event buffer used when none is configured.
const DefaultClientBuffer = 16

// Client is one live connection as seen by the core layer.
// The transport sends on Commands and reads Events; the hub never closes Events.
type Client struct {
	ID       string
	Commands chan *Command
	Events   chan *Event

	closeOnce sync.Once
	reason    string
}

// NewClient constructs a client with initialized channels.
func NewClient(id string, buffer int) *Client {
	if buffer <= 0 {
		buffer = DefaultClientBuffer
	}
	return &Client{
		ID:       id,
		Commands: make(chan *Command, buffer),
		Events:   make(chan *Event, buffer),
	}
}

// close ends the command stream. Commands already queued are still processed.
func (c *Client) close(reason string) {
	c.closeOnce.Do(func() {
		c.reason = reason
		close(c.Commands)
	})
}
