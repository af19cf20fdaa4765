package order

import (
	"errors"
	"strings"

	"cucharon/internal/menu"
)

// MaxQuantity is the most of any one item a single order may carry.
const MaxQuantity = 10

var ErrNotSideCategory = errors.New("not a side-dish category")

// SideSelection maps a side slot to the chosen option name.
// An absent key means nothing chosen for that slot.
type SideSelection map[menu.Category]string

// Selection is one customer's in-progress order. It is owned by a single
// session and is not safe for concurrent use.
type Selection struct {
	quantities map[string]int
	sides      SideSelection
}

func NewSelection() *Selection {
	return &Selection{
		quantities: make(map[string]int),
		sides:      make(SideSelection),
	}
}

func clamp(n int) int {
	switch {
	case n < 0:
		return 0
	case n > MaxQuantity:
		return MaxQuantity
	default:
		return n
	}
}

// Quantity returns the current quantity for id.
func (s *Selection) Quantity(id string) int {
	return s.quantities[id]
}

// SetQuantity stores n clamped to [0, MaxQuantity] and returns the stored value.
func (s *Selection) SetQuantity(id string, n int) int {
	n = clamp(n)
	if n == 0 {
		delete(s.quantities, id)
		return 0
	}
	s.quantities[id] = n
	return n
}

func (s *Selection) Increment(id string) int {
	return s.SetQuantity(id, s.quantities[id]+1)
}

func (s *Selection) Decrement(id string) int {
	return s.SetQuantity(id, s.quantities[id]-1)
}

// Toggle selects one of an unselected item, or removes a selected one.
func (s *Selection) Toggle(id string) int {
	if s.quantities[id] > 0 {
		return s.SetQuantity(id, 0)
	}
	return s.SetQuantity(id, 1)
}

// SetSide chooses name for a side slot. A blank name clears the slot.
func (s *Selection) SetSide(cat menu.Category, name string) error {
	if !cat.IsSide() {
		return ErrNotSideCategory
	}

	name = strings.TrimSpace(name)
	if name == "" {
		delete(s.sides, cat)
		return nil
	}
	s.sides[cat] = name
	return nil
}

func (s *Selection) ClearSide(cat menu.Category) {
	delete(s.sides, cat)
}

// Clear resets quantities and side choices.
func (s *Selection) Clear() {
	s.quantities = make(map[string]int)
	s.sides = make(SideSelection)
}

// Quantities returns a copy of the non-zero quantities.
func (s *Selection) Quantities() map[string]int {
	out := make(map[string]int, len(s.quantities))
	for id, n := range s.quantities {
		out[id] = n
	}
	return out
}

// Sides returns a copy of the side choices.
func (s *Selection) Sides() SideSelection {
	out := make(SideSelection, len(s.sides))
	for cat, name := range s.sides {
		out[cat] = name
	}
	return out
}

func (s *Selection) IsEmpty() bool {
	return len(s.quantities) == 0 && len(s.sides) == 0
}
