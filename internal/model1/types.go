package model1

import "fmt"

// AutomaticDimension asks the host to size a header or footer from its content.
const AutomaticDimension = -1

// Identifiable names a view-model or renderer kind.
//
// Identifier must return the same value for every instance of a kind,
// including its zero value, and must not depend on instance state.
type Identifiable interface {
	Identifier() string
}

// ViewModel represents the data driving one row, header or footer.
type ViewModel interface {
	Identifiable
}

// IdentifierOf returns the identifier of kind T.
func IdentifierOf[T Identifiable]() string {
	var zero T
	return zero.Identifier()
}

// IndexPath addresses a row within a section.
type IndexPath struct {
	Section int
	Row     int
}

// String returns a section/row representation.
func (p IndexPath) String() string {
	return fmt.Sprintf("%d/%d", p.Section, p.Row)
}

// View represents a pooled rendered element.
type View interface {
	Identifiable

	// Render returns the element content.
	Render() Row
}

// DataSource is what a host pulls from on every render pass.
type DataSource interface {
	// NumberOfSections returns the section count.
	NumberOfSections() int

	// NumberOfRows returns the row count of a section.
	NumberOfRows(section int) int

	// CellForRow returns the rendered row at a position.
	CellForRow(at IndexPath) View

	// HeaderHeight returns 0 when a section has no header space.
	HeaderHeight(section int) int

	// ViewForHeader returns the section header or nil.
	ViewForHeader(section int) View

	// FooterHeight returns 0 when a section has no footer space.
	FooterHeight(section int) int

	// ViewForFooter returns the section footer or nil.
	ViewForFooter(section int) View

	// DidSelectRow notifies a row was selected.
	DidSelectRow(at IndexPath)
}

// Host represents a list widget capable of pooling views by renderer kind.
type Host interface {
	// SetDataSource wires the source the host pulls from.
	SetDataSource(DataSource)

	// RegisterCell prepares a pool of row views.
	RegisterCell(identifier string, newCell func() View)

	// DequeueCell returns a pooled row view for a position.
	DequeueCell(identifier string, at IndexPath) View

	// RegisterHeaderFooter prepares a pool of header/footer views.
	RegisterHeaderFooter(identifier string, newView func() View)

	// DequeueHeaderFooter returns a pooled header/footer view.
	DequeueHeaderFooter(identifier string) View

	// ReloadData pulls everything from the data source again.
	ReloadData()

	// Deselect clears the selection of a row.
	Deselect(at IndexPath)
}
