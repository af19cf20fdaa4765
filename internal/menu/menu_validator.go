package menu

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrInvalidDocument = errors.New("invalid menu data provided")
	ErrInvalidItem     = errors.New("invalid menu item")
)

// ParseDocument decodes a full menu document.
// Only the shape is checked: "days" must be present and be a JSON object.
func ParseDocument(body []byte) (*Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	days, ok := raw["days"]
	if !ok {
		return nil, fmt.Errorf("%w: days is required", ErrInvalidDocument)
	}
	days = bytes.TrimSpace(days)
	if len(days) == 0 || days[0] != '{' {
		return nil, fmt.Errorf("%w: days must be an object", ErrInvalidDocument)
	}

	doc := &Document{}
	if err := json.Unmarshal(body, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if doc.Days == nil {
		doc.Days = map[string]DayMenu{}
	}

	return doc, nil
}

// ValidateItems enforces the admin editing rules: every item needs a
// non-empty name and a price greater than zero. The server does not
// apply this; clients run it before saving.
func ValidateItems(doc *Document) error {
	if doc == nil {
		return ErrInvalidDocument
	}

	days := make([]string, 0, len(doc.Days))
	for day := range doc.Days {
		days = append(days, day)
	}
	sort.Strings(days)

	for _, day := range days {
		for _, key := range orderedKeys(doc.Days[day]) {
			// side choices are informational and carry no price
			side := Category(key).IsSide()
			for i, item := range doc.Days[day][key] {
				if strings.TrimSpace(item.Name) == "" || (!side && item.Price <= 0) {
					return fmt.Errorf(
						"%w in %s, %s (#%d): all items must have a name and a price greater than 0",
						ErrInvalidItem, day, Category(key).Title(), i+1,
					)
				}
			}
		}
	}

	return nil
}
