package domain

import (
	"fmt"
	"time"
)

// Client is a registered customer of the agency. The registration date is
// fixed at construction and never changes.
type Client struct {
	id         string
	name       string
	phone      string
	email      string
	registered time.Time
}

// NewClient validates the contact details and registers the client now.
func NewClient(id, name, phone, email string) (*Client, error) {
	return RestoreClient(id, name, phone, email, Now())
}

// RestoreClient rebuilds a client with a known registration date. Used by
// the persistence layer; applies the same validation as NewClient.
func RestoreClient(id, name, phone, email string, registered time.Time) (*Client, error) {
	if !ValidNumericID(id) {
		return nil, fmt.Errorf("%w: invalid id: must be 6-8 digits only", ErrValidation)
	}
	if !ValidPhone(phone) {
		return nil, fmt.Errorf("%w: invalid phone number format", ErrValidation)
	}
	if !ValidEmail(email) {
		return nil, fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	return &Client{id: id, name: name, phone: phone, email: email, registered: registered}, nil
}

func (c *Client) ID() string                  { return c.id }
func (c *Client) Name() string                { return c.name }
func (c *Client) Phone() string               { return c.phone }
func (c *Client) Email() string               { return c.email }
func (c *Client) RegistrationDate() time.Time { return c.registered }

func (c *Client) SetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	c.name = name
	return nil
}

func (c *Client) SetPhone(phone string) error {
	if !ValidPhone(phone) {
		return fmt.Errorf("%w: invalid phone number format", ErrValidation)
	}
	c.phone = phone
	return nil
}

func (c *Client) SetEmail(email string) error {
	if !ValidEmail(email) {
		return fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	c.email = email
	return nil
}

// FileRecord renders the clients data file line.
func (c *Client) FileRecord() string {
	return joinRecord([]string{c.id, c.name, c.phone, c.email, FormatTime(c.registered)})
}

func (c *Client) String() string {
	return fmt.Sprintf("Client %s: %s, %s, %s (registered %s)", c.id, c.name, c.phone, c.email, FormatTime(c.registered))
}
