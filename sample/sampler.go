// Package sample adapts a gridded dataset into fixed-shape samples for
// mini-batch training. A sample is one fixed-length time window at a
// single (y, x) spatial column; every time-varying variable comes back
// in a canonical 4-axis layout (time, level-or-1, 1, 1) so that
// surface and profile fields stack uniformly.
package sample

import (
	"errors"

	"github.com/batchatco/go-thrower"
	"github.com/ctessum/sparse"

	"github.com/batchatco/go-grid-sampler/grid/api"
)

var (
	ErrMissingDimension   = errors.New("dataset must have time, y and x dimensions")
	ErrTimeLength         = errors.New("window length must evenly divide the time extent")
	ErrVariableDimensions = errors.New("time-varying variables must have dimensions (time,y,x) or (time,z,y,x)")
	ErrBadSampleIndex     = errors.New("sample index out of range")
)

// sampleKey addresses one sample: a window of timeLength steps at one
// spatial column.
type sampleKey struct {
	timeStart, y, x int
}

// field caches the raw array and layout of one variable so Get never
// repeats dimension lookups.
type field struct {
	name string
	data *sparse.DenseArray
	hasZ bool
	nz   int
}

// Sampler enumerates the samples of a gridded dataset: every
// combination of window start and spatial column, time outermost, then
// y, then x. It is built once per dataset and is read-only afterward;
// concurrent Get calls are safe as long as nothing mutates the backing
// arrays.
type Sampler struct {
	ds         api.Dataset
	timeLength int
	fields     []field // time-varying variables, dataset order
	constants  []field // no overlap with {time, y, x}
	index      []sampleKey
}

// New builds a sampler over ds with windows of timeLength time steps.
// A timeLength of zero or less means the full time extent. The window
// length must evenly divide the time extent.
func New(ds api.Dataset, timeLength int) (s *Sampler, err error) {
	defer thrower.RecoverError(&err)

	numTime, hasTime := ds.GetDimension(api.DimTime)
	numY, hasY := ds.GetDimension(api.DimY)
	numX, hasX := ds.GetDimension(api.DimX)
	if !hasTime || !hasY || !hasX {
		return nil, ErrMissingDimension
	}
	if timeLength <= 0 {
		timeLength = numTime
	}
	if numTime%timeLength != 0 {
		return nil, ErrTimeLength
	}

	smp := &Sampler{ds: ds, timeLength: timeLength}
	for _, name := range ds.ListVariables() {
		v, err := ds.GetVariable(name)
		thrower.ThrowIfError(err)
		if isConstant(v.Dimensions) {
			smp.constants = append(smp.constants, field{name: name, data: v.Data})
			continue
		}
		f := field{name: name, data: v.Data}
		switch {
		case sameDims(v.Dimensions, api.DimTime, api.DimY, api.DimX):
			f.nz = 1
		case sameDims(v.Dimensions, api.DimTime, api.DimZ, api.DimY, api.DimX):
			f.hasZ = true
			f.nz = v.Data.Shape[1]
		default:
			return nil, ErrVariableDimensions
		}
		smp.fields = append(smp.fields, f)
	}

	smp.index = make([]sampleKey, 0, numTime/timeLength*numY*numX)
	for t := 0; t < numTime; t += timeLength {
		for y := 0; y < numY; y++ {
			for x := 0; x < numX; x++ {
				smp.index = append(smp.index, sampleKey{t, y, x})
			}
		}
	}
	return smp, nil
}

// isConstant reports whether a variable with these dimensions is
// reused unchanged across all samples: no dependence on time or
// horizontal position.
func isConstant(dims []string) bool {
	for _, d := range dims {
		switch d {
		case api.DimTime, api.DimY, api.DimX:
			return false
		}
	}
	return true
}

func sameDims(dims []string, want ...string) bool {
	if len(dims) != len(want) {
		return false
	}
	for i := range dims {
		if dims[i] != want[i] {
			return false
		}
	}
	return true
}

// Count returns the number of addressable samples.
func (s *Sampler) Count() int {
	return len(s.index)
}

// TimeLength returns the window length in time steps.
func (s *Sampler) TimeLength() int {
	return s.timeLength
}

// Get returns sample i: each time-varying variable sliced to its
// window and column and reshaped to (timeLength, nz or 1, 1, 1). The
// tensors are freshly allocated copies; the dataset is never mutated.
// Constant variables do not appear; see Constants.
func (s *Sampler) Get(i int) (map[string]*Tensor, error) {
	if i < 0 || i >= len(s.index) {
		return nil, ErrBadSampleIndex
	}
	key := s.index[i]
	out := make(map[string]*Tensor, len(s.fields))
	for _, f := range s.fields {
		t := Zeros(s.timeLength, f.nz, 1, 1)
		n := 0
		for ti := key.timeStart; ti < key.timeStart+s.timeLength; ti++ {
			if f.hasZ {
				for z := 0; z < f.nz; z++ {
					t.Elements[n] = float32(f.data.Get(ti, z, key.y, key.x))
					n++
				}
			} else {
				t.Elements[n] = float32(f.data.Get(ti, key.y, key.x))
				n++
			}
		}
		out[f.name] = t
	}
	return out, nil
}

// Constants returns each constant variable's full array as a float32
// tensor. Scalars come back with shape (1). Whether these participate
// in automatic differentiation is the training framework's concern;
// they are plain arrays here.
func (s *Sampler) Constants() map[string]*Tensor {
	out := make(map[string]*Tensor, len(s.constants))
	for _, f := range s.constants {
		shape := f.data.Shape
		if len(shape) == 0 {
			shape = []int{1}
		}
		t := Zeros(shape...)
		for i, v := range f.data.Elements {
			t.Elements[i] = float32(v)
		}
		out[f.name] = t
	}
	return out
}
