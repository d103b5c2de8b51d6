package model

import "github.com/smartlisting/smartlisting/internal/model1"

// Section represents an ordered list of row view models with an optional
// header and footer.
type Section struct {
	Header model1.ViewModel
	Footer model1.ViewModel
	Items  []model1.ViewModel
}

// DataListener represents a sections listener.
type DataListener interface {
	// SectionsChanged notifies the sections were replaced.
	SectionsChanged()

	// SectionsLoadFailed notifies the load failed.
	SectionsLoadFailed(error)
}
