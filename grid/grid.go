// Package grid opens gridded dataset files without the caller having
// to know their format.
package grid

import (
	"errors"
	"io"
	"os"

	"github.com/batchatco/go-grid-sampler/grid/api"
	"github.com/batchatco/go-grid-sampler/grid/netcdf"
)

const (
	kindCDF = 'C'
	kindHDF = 0x89
)

var (
	ErrUnknown         = errors.New("not a recognized dataset file")
	ErrHDF5Unsupported = errors.New("HDF5-based NetCDF4 files are not supported")
)

// Open opens a gridded dataset file by name, detecting its format from
// the leading magic byte. Only NetCDF classic (CDF) files are
// currently readable.
func Open(fname string) (api.Dataset, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	kind, err := getKind(file)
	if err != nil {
		return nil, ErrUnknown
	}
	switch kind {
	case kindCDF:
		return netcdf.New(file)
	case kindHDF:
		return nil, ErrHDF5Unsupported
	}
	return nil, ErrUnknown
}

func getKind(file io.ReadSeeker) (byte, error) {
	var b [1]byte
	n, err := file.Read(b[:])
	if n == 0 {
		return 0, err
	}
	_, err = file.Seek(0, io.SeekStart)
	return b[0], err
}
