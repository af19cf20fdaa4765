package order

import (
	"strconv"
	"strings"
	"time"
)

const (
	separator       = "--------------------"
	timestampLayout = "2006-01-02 15:04"
)

// Meta carries what the message needs beyond the order itself.
type Meta struct {
	Day string
}

// Formatter renders orders as plain-text chat messages.
type Formatter struct {
	Restaurant string
	// Now is the clock used for the generation timestamp.
	Now func() time.Time
	// Location, when set, is the zone the timestamp is shown in.
	Location *time.Location
}

func NewFormatter(restaurant string, loc *time.Location) *Formatter {
	return &Formatter{
		Restaurant: restaurant,
		Now:        time.Now,
		Location:   loc,
	}
}

// Format renders the order with sections in a fixed order: header, main
// dishes, side notes, extras, beverages, total, timestamp. Sections with
// no lines are left out. An order with a zero total is refused with
// ErrEmptyOrder.
func (f *Formatter) Format(order DerivedOrder, meta Meta) (string, error) {
	if order.IsEmpty() {
		return "", ErrEmptyOrder
	}

	var b strings.Builder

	b.WriteString("*Pedido " + f.Restaurant + " - " + meta.Day + "*\n")
	b.WriteString(separator + "\n")

	writeSection(&b, "Platos", order.Items, true)
	writeSection(&b, "Guarniciones", order.SideNotes, false)
	writeSection(&b, "Extras", order.Extras, true)
	writeSection(&b, "Jugos", order.Beverages, true)

	b.WriteString("*Total: " + FormatAmount(order.Total) + "*\n")
	b.WriteString("(Pedido generado: " + f.timestamp() + ")")

	return b.String(), nil
}

func writeSection(b *strings.Builder, title string, lines []OrderLine, priced bool) {
	if len(lines) == 0 {
		return
	}

	b.WriteString("*" + title + ":*\n")
	for _, line := range lines {
		if priced {
			b.WriteString("- " + strconv.Itoa(line.Quantity) + "x " + line.Name + "\n")
		} else {
			b.WriteString("- " + line.Name + "\n")
		}
	}
	b.WriteString(separator + "\n")
}

func (f *Formatter) timestamp() string {
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}

	t := now()
	if f.Location != nil {
		t = t.In(f.Location)
	}
	return t.Format(timestampLayout)
}
