// Package inmem implements a gridded dataset held entirely in memory.
// It is the backing used by the file loaders and the natural way to
// construct datasets in tests.
package inmem

import (
	"errors"

	"github.com/batchatco/go-grid-sampler/grid/api"
	"github.com/batchatco/go-grid-sampler/grid/util"
	"github.com/batchatco/go-grid-sampler/internal"
)

var (
	ErrInvalidName        = errors.New("not a valid name")
	ErrDuplicateDimension = errors.New("duplicate dimension")
	ErrDuplicateVariable  = errors.New("duplicate variable")
	ErrUnknownDimension   = errors.New("unknown dimension")
	ErrBadLength          = errors.New("dimension length must be positive")
	ErrShapeMismatch      = errors.New("data shape doesn't match dimensions")
	ErrNilData            = errors.New("variable has no data")
	ErrNotFound           = errors.New("not found")
)

type dimension struct {
	name   string
	length int
}

// Dataset is an in-memory implementation of api.Dataset.
// Dimensions must be added before the variables that use them.
type Dataset struct {
	dimensions  []dimension
	globalAttrs *util.OrderedMap
	vars        *util.OrderedMap
}

func NewDataset() *Dataset {
	attrs, _ := util.NewOrderedMap(nil, nil)
	vars, _ := util.NewOrderedMap(nil, nil)
	return &Dataset{
		globalAttrs: attrs,
		vars:        vars,
	}
}

// AddDimension declares a named dimension of the given length.
func (d *Dataset) AddDimension(name string, length int) error {
	if !internal.IsValidName(name) {
		return ErrInvalidName
	}
	if length < 1 {
		return ErrBadLength
	}
	if _, has := d.GetDimension(name); has {
		return ErrDuplicateDimension
	}
	d.dimensions = append(d.dimensions, dimension{name, length})
	return nil
}

// AddAttribute sets a global attribute.
func (d *Dataset) AddAttribute(key string, val interface{}) {
	d.globalAttrs.Add(key, val)
}

// AddVar adds a variable. Its dimensions must already be declared and
// its data shape must agree with the declared dimension lengths. A
// variable with no dimensions is a scalar and must hold exactly one
// element.
func (d *Dataset) AddVar(name string, v api.Variable) error {
	if !internal.IsValidName(name) {
		return ErrInvalidName
	}
	if _, has := d.vars.Get(name); has {
		return ErrDuplicateVariable
	}
	if v.Data == nil {
		return ErrNilData
	}
	if len(v.Dimensions) == 0 {
		if len(v.Data.Elements) != 1 {
			return ErrShapeMismatch
		}
	} else {
		if len(v.Data.Shape) != len(v.Dimensions) {
			return ErrShapeMismatch
		}
		for i, dimName := range v.Dimensions {
			length, has := d.GetDimension(dimName)
			if !has {
				return ErrUnknownDimension
			}
			if v.Data.Shape[i] != length {
				return ErrShapeMismatch
			}
		}
	}
	if v.Attributes == nil {
		empty, _ := util.NewOrderedMap(nil, nil)
		v.Attributes = empty
	}
	d.vars.Add(name, v)
	return nil
}

// Close is a no-op; there is no underlying file.
func (d *Dataset) Close() {
}

// Attributes returns the global attributes for this dataset.
func (d *Dataset) Attributes() api.AttributeMap {
	return d.globalAttrs
}

// ListVariables lists the variables in insertion order.
func (d *Dataset) ListVariables() []string {
	return d.vars.Keys()
}

// GetVariable returns the named variable or sets the error if not found.
func (d *Dataset) GetVariable(name string) (*api.Variable, error) {
	vf, has := d.vars.Get(name)
	if !has {
		return nil, ErrNotFound
	}
	varFound := vf.(api.Variable)
	return &varFound, nil
}

// ListDimensions lists the dimension names in declaration order.
func (d *Dataset) ListDimensions() []string {
	ret := make([]string, len(d.dimensions))
	for i, dim := range d.dimensions {
		ret[i] = dim.name
	}
	return ret
}

// GetDimension returns the length of the named dimension and sets the
// bool to true if found.
func (d *Dataset) GetDimension(name string) (int, bool) {
	for _, dim := range d.dimensions {
		if dim.name == name {
			return dim.length, true
		}
	}
	return 0, false
}

var _ api.Dataset = (*Dataset)(nil)
