package model1

const (
	// NAValue stands in for missing text.
	NAValue = "n/a"

	// EmptyIdentifier names the empty view-model kind. Nothing registers it.
	EmptyIdentifier = "empty"
)

// Empty is a view model no renderer handles. Accessors return it when the
// backing data is gone; it renders as an inert row.
type Empty struct{}

// Identifier returns the empty kind identifier.
func (Empty) Identifier() string {
	return EmptyIdentifier
}
