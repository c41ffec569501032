package core

import (
	"fmt"
	"strings"
)

const (
	CustomIDSeparator = ":"

	// MaxCustomIDLength is Discord's limit for custom IDs
	MaxCustomIDLength = 100
)

// CustomID is a parsed domain:action:target:args... component ID
type CustomID struct {
	Domain string
	Action string
	Target string
	Args   []string
}

func NewCustomID(domain, action string) *CustomID {
	return &CustomID{
		Domain: domain,
		Action: action,
		Args:   make([]string, 0),
	}
}

func (c *CustomID) WithTarget(target string) *CustomID {
	c.Target = target
	return c
}

func (c *CustomID) WithArgs(args ...string) *CustomID {
	c.Args = append(c.Args, args...)
	return c
}

// Encode converts the CustomID to a string. Parts may not contain the separator.
func (c *CustomID) Encode() (string, error) {
	parts := []string{c.Domain, c.Action}
	if c.Target != "" || len(c.Args) > 0 {
		parts = append(parts, c.Target)
	}
	parts = append(parts, c.Args...)

	for _, part := range parts {
		if strings.Contains(part, CustomIDSeparator) {
			return "", fmt.Errorf("custom ID part %q contains %q", part, CustomIDSeparator)
		}
	}

	result := strings.Join(parts, CustomIDSeparator)
	if len(result) > MaxCustomIDLength {
		return "", fmt.Errorf("custom ID exceeds maximum length of %d characters", MaxCustomIDLength)
	}

	return result, nil
}

// MustEncode is like Encode but panics on error
func (c *CustomID) MustEncode() string {
	result, err := c.Encode()
	if err != nil {
		panic(err)
	}
	return result
}

// ParseCustomID parses a custom ID string
func ParseCustomID(customID string) (*CustomID, error) {
	if customID == "" {
		return nil, fmt.Errorf("empty custom ID")
	}

	parts := strings.Split(customID, CustomIDSeparator)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("invalid custom ID format: expected at least domain:action")
	}

	result := NewCustomID(parts[0], parts[1])
	if len(parts) > 2 {
		result.Target = parts[2]
		result.Args = append(result.Args, parts[3:]...)
	}

	return result, nil
}

// CustomIDBuilder builds custom IDs for one domain
type CustomIDBuilder struct {
	domain string
}

func NewCustomIDBuilder(domain string) *CustomIDBuilder {
	return &CustomIDBuilder{domain: domain}
}

func (b *CustomIDBuilder) Build(action string) *CustomID {
	return NewCustomID(b.domain, action)
}

// Button creates a button custom ID
func (b *CustomIDBuilder) Button(action, target string, args ...string) string {
	return NewCustomID(b.domain, action).
		WithTarget(target).
		WithArgs(args...).
		MustEncode()
}
