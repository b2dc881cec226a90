package domain

import (
	"strings"
	"time"
)

// Contact is the person reachable at a manufacturer. A contact is owned by
// exactly one manufacturer and is only created together with it.
type Contact struct {
	id        string
	name      string
	email     string
	phone     string
	createdAt time.Time
}

// NewContact creates a Contact. All fields are mandatory.
func NewContact(id, name, email, phone string, now time.Time) (*Contact, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(phone) == "" {
		return nil, ErrIncompleteContact
	}
	return &Contact{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		createdAt: now,
	}, nil
}

func (c *Contact) ID() string           { return c.id }
func (c *Contact) Name() string         { return c.name }
func (c *Contact) Email() string        { return c.email }
func (c *Contact) Phone() string        { return c.phone }
func (c *Contact) CreatedAt() time.Time { return c.createdAt }
