package core

import (
	"encoding/json"
	"strings"
)

// OptionRef is a selectable menu option as stored on an order line.
// Historical documents stored these either as a bare string ("Pollo") or as
// an object ({"name":"Pollo"}), so the shape is resolved once here at
// unmarshal time and every caller works with the normalized struct.
type OptionRef struct {
	Name        string `json:"name"`
	Replacement string `json:"replacement,omitempty"`
}

func (o *OptionRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		o.Name = s
		return nil
	}

	var obj struct {
		Name        string          `json:"name"`
		Label       json.RawMessage `json:"label"`
		Title       json.RawMessage `json:"title"`
		Method      json.RawMessage `json:"method"`
		Type        json.RawMessage `json:"type"`
		Payment     json.RawMessage `json:"payment"`
		Replacement json.RawMessage `json:"replacement"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	o.Name = obj.Name
	if o.Name == "" {
		// Payment method objects were written under several different
		// keys over the app's history; take the first one that yields a
		// label.
		for _, raw := range []json.RawMessage{obj.Label, obj.Title, obj.Method, obj.Type, obj.Payment} {
			if name := nameFromRaw(raw); name != "" {
				o.Name = name
				break
			}
		}
	}
	o.Replacement = nameFromRaw(obj.Replacement)
	return nil
}

// nameFromRaw resolves a replacement that may itself be a string or {name}.
func nameFromRaw(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Name
	}
	return ""
}

// NameOf returns the option's name, or "" for a nil reference.
func NameOf(o *OptionRef) string {
	if o == nil {
		return ""
	}
	return o.Name
}

// FoldName lowercases and trims a name for comparison and price lookups.
func FoldName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CleanText strips the " NUEVO" marketing tag the catalog appends to newly
// added options.
func CleanText(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, " NUEVO", ""))
}

// Addition is an extra item added to a meal or breakfast line.
type Addition struct {
	Name        string `json:"name"`
	Protein     string `json:"protein,omitempty"`
	Replacement string `json:"replacement,omitempty"`
	Quantity    int    `json:"quantity"`
	Price       Money  `json:"price"`
}

// Qty returns the addition quantity, treating missing/zero as one unit.
func (a Addition) Qty() int {
	if a.Quantity < 1 {
		return 1
	}
	return a.Quantity
}

// Address holds delivery destination data for client orders.
type Address struct {
	Address       string `json:"address,omitempty"`
	PhoneNumber   string `json:"phoneNumber,omitempty"`
	Neighborhood  string `json:"neighborhood,omitempty"`
	Details       string `json:"details,omitempty"`
	AddressType   string `json:"addressType,omitempty"` // house|school|complex|shop
	RecipientName string `json:"recipientName,omitempty"`
	UnitDetails   string `json:"unitDetails,omitempty"`
	LocalName     string `json:"localName,omitempty"`
}

// HasDeliveryData reports whether the address identifies a delivery
// destination (used to infer takeaway pricing for historical breakfasts).
func (a *Address) HasDeliveryData() bool {
	if a == nil {
		return false
	}
	return strings.TrimSpace(a.Address) != "" || strings.TrimSpace(a.PhoneNumber) != ""
}
