package order

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"cucharon/internal/menu"
)

const (
	WhatsAppBaseURL = "https://wa.me/"

	// MaxEncodedLength is the largest encoded message some devices open
	// reliably. Longer messages are refused, never truncated.
	MaxEncodedLength = 1800
)

// EncodeMessage percent-encodes msg for a URL query value, with spaces
// as %20 so the text survives deep-link handlers unchanged.
func EncodeMessage(msg string) string {
	return strings.ReplaceAll(url.QueryEscape(msg), "+", "%20")
}

// WhatsAppLink builds the deep link for phone with message pre-filled.
func WhatsAppLink(phone, message string) (string, error) {
	encoded := EncodeMessage(message)
	if len(encoded) > MaxEncodedLength {
		return "", ErrMessageTooLong
	}
	return WhatsAppBaseURL + digitsOnly(phone) + "?text=" + encoded, nil
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// --------------------------------------------------
// Side-dish policy
// --------------------------------------------------

// SidePolicy decides whether side choices are required before sending.
// It only applies to orders that contain a main dish.
type SidePolicy string

const (
	SidesNone SidePolicy = "none"
	SidesAny  SidePolicy = "any"
	SidesAll  SidePolicy = "all"
)

func ParseSidePolicy(s string) (SidePolicy, error) {
	switch p := SidePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case SidesNone, SidesAny, SidesAll:
		return p, nil
	case "":
		return SidesAll, nil
	default:
		return "", fmt.Errorf("unknown side policy %q (want none, any or all)", s)
	}
}

// Check returns a warning when the order does not satisfy the policy.
func (p SidePolicy) Check(order DerivedOrder, sides SideSelection) error {
	if !order.HasMainDishes() {
		return nil
	}

	chosen := 0
	for _, cat := range menu.SideCategories {
		if sides[cat] != "" {
			chosen++
		}
	}

	switch p {
	case SidesAll:
		if chosen < len(menu.SideCategories) {
			return ErrIncompleteSides
		}
	case SidesAny:
		if chosen == 0 {
			return ErrMissingSide
		}
	}
	return nil
}

// --------------------------------------------------
// Checkout
// --------------------------------------------------

// Handoff is what the customer is sent to: the message and its deep link.
type Handoff struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

// Checkout turns a derived order into a handoff. Every refusal is a
// *Warning and leaves the caller's state untouched.
type Checkout struct {
	Formatter *Formatter
	Phone     string
	Policy    SidePolicy
}

func (c *Checkout) Prepare(order DerivedOrder, sides SideSelection, meta Meta) (*Handoff, error) {
	if order.IsEmpty() {
		return nil, ErrEmptyOrder
	}

	if err := c.Policy.Check(order, sides); err != nil {
		return nil, err
	}

	msg, err := c.Formatter.Format(order, meta)
	if err != nil {
		return nil, err
	}

	link, err := WhatsAppLink(c.Phone, msg)
	if err != nil {
		return nil, err
	}

	return &Handoff{Message: msg, Link: link}, nil
}
