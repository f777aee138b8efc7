package mdsite

import "strings"

// Attr is an element attribute. Absent attributes keep their slot in the
// order but are not rendered.
type Attr struct {
	Key    string
	Value  string
	Absent bool
}

// Attrs is an insertion-ordered attribute list.
type Attrs []Attr

// Set replaces the value of key or appends it.
func (a Attrs) Set(key, value string) Attrs {
	for i := range a {
		if a[i].Key == key {
			a[i].Value = value
			a[i].Absent = false
			return a
		}
	}
	return append(a, Attr{Key: key, Value: value})
}

// Get returns the value of key and whether it is present.
func (a Attrs) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, !attr.Absent
		}
	}
	return "", false
}

// HTML renders the present attributes as ` key="value"` in order.
func (a Attrs) HTML() string {
	if len(a) == 0 {
		return ""
	}
	var b strings.Builder
	a.writeHTML(&b)
	return b.String()
}

func (a Attrs) writeHTML(b *strings.Builder) {
	for _, attr := range a {
		if attr.Absent {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(attr.Key)
		b.WriteString(`="`)
		b.WriteString(attr.Value)
		b.WriteByte('"')
	}
}
