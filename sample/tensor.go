package sample

import (
	"errors"
	"fmt"
)

var (
	ErrStackEmpty = errors.New("nothing to stack")
	ErrStackShape = errors.New("tensors must share a shape to be stacked")
)

// Tensor is a dense row-major array of float32, the element type
// training frameworks consume. It mirrors the surface of
// sparse.DenseArray, which backs the datasets themselves in double
// precision.
type Tensor struct {
	Elements []float32
	Shape    []int
}

// Zeros initializes a new zero-filled tensor.
func Zeros(dims ...int) *Tensor {
	t := new(Tensor)
	t.Shape = dims
	size := 1
	for _, d := range dims {
		size *= d
	}
	t.Elements = make([]float32, size)
	return t
}

// Len returns the total number of elements.
func (t *Tensor) Len() int {
	return len(t.Elements)
}

// Index1d converts an n-dimensional index to the offset into Elements.
// It panics on a malformed index; indexing mistakes are programming
// errors, as in sparse.DenseArray.
func (t *Tensor) Index1d(index ...int) int {
	if len(index) != len(t.Shape) {
		panic(fmt.Sprintf("tensor index %v doesn't match shape %v", index, t.Shape))
	}
	offset := 0
	for i, ix := range index {
		if ix < 0 || ix >= t.Shape[i] {
			panic(fmt.Sprintf("tensor index %v out of bounds for shape %v", index, t.Shape))
		}
		offset = offset*t.Shape[i] + ix
	}
	return offset
}

// Get returns an array value.
func (t *Tensor) Get(index ...int) float32 {
	return t.Elements[t.Index1d(index...)]
}

// Set sets an array value.
func (t *Tensor) Set(val float32, index ...int) {
	t.Elements[t.Index1d(index...)] = val
}

// Stack concatenates tensors of identical shape along a new leading
// axis. The result's shape is (len(ts), shape...).
func Stack(ts []*Tensor) (*Tensor, error) {
	if len(ts) == 0 {
		return nil, ErrStackEmpty
	}
	shape := ts[0].Shape
	out := Zeros(append([]int{len(ts)}, shape...)...)
	n := 0
	for _, t := range ts {
		if !sameShape(t.Shape, shape) {
			return nil, ErrStackShape
		}
		n += copy(out.Elements[n:], t.Elements)
	}
	return out, nil
}

func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
