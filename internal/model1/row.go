package model1

import "strings"

// RowStyle tells a host how to paint a rendered row.
type RowStyle int

const (
	// StyleNormal is a regular content row.
	StyleNormal RowStyle = iota

	// StylePlaceholder is a loading skeleton.
	StylePlaceholder

	// StyleHeading is a section header.
	StyleHeading

	// StyleFooter is a section footer.
	StyleFooter

	// StyleBlank is an inert row.
	StyleBlank
)

// String returns the style name.
func (s RowStyle) String() string {
	switch s {
	case StylePlaceholder:
		return "placeholder"
	case StyleHeading:
		return "heading"
	case StyleFooter:
		return "footer"
	case StyleBlank:
		return "blank"
	default:
		return "normal"
	}
}

// Fields represents the column texts of a row.
type Fields []string

// Clone returns a copy of the fields.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	copy(out, f)
	return out
}

// IsBlank returns true if every field is empty.
func (f Fields) IsBlank() bool {
	for _, v := range f {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Row represents a rendered element.
type Row struct {
	ID        string
	Fields    Fields
	Style     RowStyle
	Separator bool
}

// NewRow returns a row with size empty fields.
func NewRow(size int) Row {
	return Row{Fields: make(Fields, size)}
}

// Clone returns a deep copy of the row.
func (r Row) Clone() Row {
	return Row{
		ID:        r.ID,
		Fields:    r.Fields.Clone(),
		Style:     r.Style,
		Separator: r.Separator,
	}
}

// Len returns the number of fields.
func (r Row) Len() int {
	return len(r.Fields)
}

// Text joins the fields with sep, skipping empty ones.
func (r Row) Text(sep string) string {
	ss := make([]string, 0, len(r.Fields))
	for _, f := range r.Fields {
		if f == "" {
			continue
		}
		ss = append(ss, f)
	}
	return strings.Join(ss, sep)
}
