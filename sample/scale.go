package sample

import (
	"errors"

	"github.com/ctessum/sparse"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"

	"github.com/batchatco/go-grid-sampler/grid/api"
)

var (
	ErrMissingStd = errors.New("missing standard-deviation field for a time-varying variable")
)

// Scales returns, per time-varying variable, a normalization divisor:
// the maximum of the variable's standard-deviation field. The
// statistic is an explicit input; StdDev computes a suitable one.
func (s *Sampler) Scales(std map[string]*sparse.DenseArray) (map[string]float32, error) {
	out := make(map[string]float32, len(s.fields))
	for _, f := range s.fields {
		sd, has := std[f.name]
		if !has || sd == nil || len(sd.Elements) == 0 {
			return nil, ErrMissingStd
		}
		out[f.name] = float32(floats.Max(sd.Elements))
	}
	return out, nil
}

// StdDev computes, for each time-varying variable, the standard
// deviation of its values over time and horizontal position, one value
// per vertical level: shape (nz) for profile fields, (1) for surface
// fields. The result is what Scales consumes.
func (s *Sampler) StdDev() (map[string]*sparse.DenseArray, error) {
	numTime, _ := s.ds.GetDimension(api.DimTime)
	out := make(map[string]*sparse.DenseArray, len(s.fields))
	for _, f := range s.fields {
		sd := sparse.ZerosDense(f.nz)
		for z := 0; z < f.nz; z++ {
			vals := make([]float64, 0, len(f.data.Elements)/f.nz)
			for t := 0; t < numTime; t++ {
				vals = append(vals, levelValues(f, t, z)...)
			}
			v, err := stats.Float64Data(vals).StandardDeviation()
			if err != nil {
				return nil, err
			}
			sd.Set(v, z)
		}
		out[f.name] = sd
	}
	return out, nil
}

// levelValues gathers one time step of one vertical level across the
// horizontal grid.
func levelValues(f field, t, z int) []float64 {
	var ny, nx int
	if f.hasZ {
		ny, nx = f.data.Shape[2], f.data.Shape[3]
	} else {
		ny, nx = f.data.Shape[1], f.data.Shape[2]
	}
	vals := make([]float64, 0, ny*nx)
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			if f.hasZ {
				vals = append(vals, f.data.Get(t, z, y, x))
			} else {
				vals = append(vals, f.data.Get(t, y, x))
			}
		}
	}
	return vals
}
