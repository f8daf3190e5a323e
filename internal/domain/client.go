package domain

import (
	"errors"
	"strings"
	"time"
)

type Client struct {
	ID        int64
	Name      Name
	Phone     Phone
	Email     Email
	Address   Address
	Tags      []Tag
	Remark    *Text // nil when no remark is set
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewClient creates a new client with required fields
func NewClient(name Name, phone Phone, email Email, address Address, tags []Tag) *Client {
	now := time.Now()
	return &Client{
		Name:      name,
		Phone:     phone,
		Email:     email,
		Address:   address,
		Tags:      UniqueTags(tags),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsSameClient returns true if both clients have the same name, ignoring case
func (c *Client) IsSameClient(other *Client) bool {
	if other == nil {
		return false
	}
	return strings.EqualFold(c.Name.String(), other.Name.String())
}

// SetRemark replaces the remark; nil clears it
func (c *Client) SetRemark(remark *Text) {
	c.Remark = remark
	c.UpdatedAt = time.Now()
}

// TagNames returns the bare names of the client's tags
func (c *Client) TagNames() []string {
	names := make([]string, len(c.Tags))
	for i, t := range c.Tags {
		names[i] = t.Name()
	}
	return names
}

// Validate returns an error if the client is invalid
func (c *Client) Validate() error {
	if c.Name.IsZero() {
		return errors.New("client name is required")
	}
	if c.Phone.IsZero() {
		return errors.New("client phone is required")
	}
	if c.Email.IsZero() {
		return errors.New("client email is required")
	}
	if c.Address.IsZero() {
		return errors.New("client address is required")
	}
	return nil
}
