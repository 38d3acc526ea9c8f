// Package api is common to the different backings of gridded datasets
// (in-memory or NetCDF).
package api

import (
	"github.com/ctessum/sparse"
)

// Canonical dimension names. Time-varying variables declare
// (time, y, x) or (time, z, y, x); constants declare dimensions with
// no overlap with {time, y, x}.
const (
	DimTime = "time"
	DimZ    = "z"
	DimY    = "y"
	DimX    = "x"
)

type AttributeMap interface {
	// Ordered list of keys
	Keys() []string
	// Indexed lookup
	Get(key string) (val interface{}, has bool)
}

// Variable is one named array of a gridded dataset. Dimensions names,
// in order, the axes of Data.Shape.
type Variable struct {
	Data       *sparse.DenseArray
	Dimensions []string
	Attributes AttributeMap
}

// Dataset is a collection of named multi-dimensional arrays sharing a
// common coordinate system along named dimensions.
type Dataset interface {
	// Close closes this dataset and any underlying files.
	Close()

	// Attributes returns the global attributes for this dataset.
	Attributes() AttributeMap

	// ListVariables lists the variables in this dataset.
	ListVariables() []string

	// GetVariable returns the named variable or sets the error if not found.
	GetVariable(name string) (*Variable, error)

	// ListDimensions lists the names of the dimensions in this dataset.
	ListDimensions() []string

	// GetDimension returns the length of the given dimension and sets
	// the bool to true if found.
	GetDimension(name string) (int, bool)
}
