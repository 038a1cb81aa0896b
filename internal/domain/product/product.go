package product

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Collection is the collection name products are stored under.
const Collection = "products"

// Searchable product fields.
const (
	FieldName  = "name"
	FieldPrice = "price"
	FieldStock = "stock"
)

// Product is a catalogue entry. ID is assigned by the engine and
// replaced with the engine hit identifier on every read.
type Product struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Price   float64    `json:"price"`
	Stock   int        `json:"stock"`
	Created time.Time  `json:"created"`
	Updated *time.Time `json:"updated,omitempty"`
	Feature *Feature   `json:"feature,omitempty"`
}

// SetID overwrites the identifier with the engine hit identifier.
func (p *Product) SetID(id string) { p.ID = id }

// Feature holds optional physical attributes.
type Feature struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Color  Color `json:"color"`
}

// Color is a product colour.
type Color int

// Supported colours.
const (
	ColorRed Color = iota + 1
	ColorBlue
	ColorGreen
)

var colorNames = map[Color]string{
	ColorRed:   "Red",
	ColorBlue:  "Blue",
	ColorGreen: "Green",
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// IsValid reports whether c is a known colour.
func (c Color) IsValid() bool {
	_, ok := colorNames[c]
	return ok
}

// ParseColor resolves a colour by name, ignoring case.
func ParseColor(s string) (Color, error) {
	for c, name := range colorNames {
		if strings.EqualFold(name, s) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", s)
}

// MarshalJSON stores the colour by name.
func (c Color) MarshalJSON() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("marshal color: invalid value %d", int(c))
	}
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts a colour name.
func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("unmarshal color: %w", err)
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
