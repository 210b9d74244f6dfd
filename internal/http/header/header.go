package header

import "strings"

type Field struct {
	Name  string
	Value string
}

// Header is an ordered list of fields. Lookups ignore the case of the name
// and return the first match.
type Header struct {
	fields []Field
}

func (h *Header) Add(name, value string) {
	h.fields = append(h.fields, Field{Name: name, Value: value})
}

func (h *Header) appendToLast(more string) {
	last := &h.fields[len(h.fields)-1]
	if last.Value == "" {
		last.Value = more
		return
	}
	last.Value += " " + more
}

func (h Header) Get(name string) (string, bool) {
	for _, f := range h.fields {
		if strings.EqualFold(f.Name, name) {
			return f.Value, true
		}
	}
	return "", false
}

func (h Header) Value(name string) string {
	val, _ := h.Get(name)
	return val
}

func (h Header) Values(name string) []string {
	var values []string
	for _, f := range h.fields {
		if strings.EqualFold(f.Name, name) {
			values = append(values, f.Value)
		}
	}
	return values
}

func (h Header) Has(name string) bool {
	_, ok := h.Get(name)
	return ok
}

func (h Header) Len() int {
	return len(h.fields)
}

// Fields returns a copy of the fields in arrival order.
func (h Header) Fields() []Field {
	out := make([]Field, len(h.fields))
	copy(out, h.fields)
	return out
}
