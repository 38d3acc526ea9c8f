// Package netcdf loads gridded datasets from NetCDF classic (CDF)
// files. The whole file is read eagerly into memory; the returned
// dataset has no reference to the file afterward.
package netcdf

import (
	"errors"
	"os"

	"github.com/batchatco/go-thrower"
	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"

	"github.com/batchatco/go-grid-sampler/grid/api"
	"github.com/batchatco/go-grid-sampler/grid/inmem"
	"github.com/batchatco/go-grid-sampler/grid/util"
	"github.com/batchatco/go-grid-sampler/internal"
)

var (
	ErrUnknownType = errors.New("unsupported variable element type")
	ErrShortRead   = errors.New("short read")
)

var logger = internal.NewLogger()

// Open opens a NetCDF classic file by name.
func Open(fname string) (api.Dataset, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return New(file)
}

// New reads a dataset from an opened NetCDF classic file. The file may
// be closed once New returns.
func New(file *os.File) (ds api.Dataset, err error) {
	defer thrower.RecoverError(&err)

	ff, err := cdf.Open(file)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	thrower.ThrowIfError(err)
	numRecs := int(ff.Header.NumRecs(info.Size()))

	d := inmem.NewDataset()

	// The record dimension has length zero in the header; its true
	// length comes from the file size.
	dimNames := ff.Header.Dimensions("")
	dimLengths := ff.Header.Lengths("")
	skipDims := map[string]bool{}
	for i, name := range dimNames {
		length := dimLengths[i]
		if length == 0 {
			length = numRecs
		}
		if length == 0 {
			logger.Warnf("skipping empty dimension %q", name)
			skipDims[name] = true
			continue
		}
		thrower.ThrowIfError(d.AddDimension(name, length))
	}

	for _, key := range ff.Header.Attributes("") {
		d.AddAttribute(key, ff.Header.GetAttribute("", key))
	}

	for _, name := range ff.Header.Variables() {
		v, err := readVar(ff, name, numRecs, skipDims)
		if err == ErrUnknownType {
			logger.Warnf("skipping variable %q: unsupported element type", name)
			continue
		}
		if v == nil && err == nil {
			logger.Warnf("skipping variable %q: references an empty dimension", name)
			continue
		}
		thrower.ThrowIfError(err)
		thrower.ThrowIfError(d.AddVar(name, *v))
	}
	return d, nil
}

// readVar reads the named variable in full and converts it to a dense
// array, patching the unlimited dimension's length if necessary.
func readVar(ff *cdf.File, name string, numRecs int, skipDims map[string]bool) (*api.Variable, error) {
	if _, isChar := ff.Header.ZeroValue(name, 0).(string); isChar {
		return nil, ErrUnknownType
	}
	dims := ff.Header.Dimensions(name)
	lengths := ff.Header.Lengths(name)
	isRecord := false
	n := 1
	for i := range lengths {
		if skipDims[dims[i]] {
			return nil, nil
		}
		if lengths[i] == 0 {
			lengths[i] = numRecs
			isRecord = true
		}
		n *= lengths[i]
	}

	// A fixed variable is read contiguously; a record variable needs
	// an explicit corner one past the last record.
	var begin, end []int
	if isRecord {
		begin, end = make([]int, len(lengths)), make([]int, len(lengths))
		end[0] = numRecs
	}
	r := ff.Reader(name, begin, end)
	buf := r.Zero(n)
	data, err := toDense(buf, lengths)
	if err != nil {
		return nil, err
	}
	nread, err := r.Read(buf)
	if err != nil {
		return nil, err
	}
	if nread != n {
		return nil, ErrShortRead
	}
	fillDense(data, buf)

	attrs, err := util.NewOrderedMap(nil, nil)
	if err != nil {
		return nil, err
	}
	for _, key := range ff.Header.Attributes(name) {
		attrs.Add(key, ff.Header.GetAttribute(name, key))
	}
	return &api.Variable{
		Data:       data,
		Dimensions: dims,
		Attributes: attrs,
	}, nil
}

// toDense allocates the dense array for buf's element type, or returns
// ErrUnknownType for anything non-numeric.
func toDense(buf interface{}, lengths []int) (*sparse.DenseArray, error) {
	switch buf.(type) {
	case []int8, []uint8, []int16, []int32, []float32, []float64:
		return sparse.ZerosDense(lengths...), nil
	default:
		return nil, ErrUnknownType
	}
}

func fillDense(data *sparse.DenseArray, buf interface{}) {
	switch vals := buf.(type) {
	case []int8:
		for i, val := range vals {
			data.Elements[i] = float64(val)
		}
	case []uint8:
		for i, val := range vals {
			data.Elements[i] = float64(val)
		}
	case []int16:
		for i, val := range vals {
			data.Elements[i] = float64(val)
		}
	case []int32:
		for i, val := range vals {
			data.Elements[i] = float64(val)
		}
	case []float32:
		for i, val := range vals {
			data.Elements[i] = float64(val)
		}
	case []float64:
		copy(data.Elements, vals)
	}
}
