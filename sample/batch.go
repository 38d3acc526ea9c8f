package sample

import (
	"errors"

	"github.com/batchatco/go-thrower"
)

var (
	ErrBadBatchSize  = errors.New("batch size must be positive")
	ErrBadBatchIndex = errors.New("batch index out of range")
)

// Batcher groups consecutive samples into batches, stacking each
// variable along a new leading axis. When the sample count does not
// divide evenly, the final batch is smaller.
type Batcher struct {
	s    *Sampler
	size int
}

func NewBatcher(s *Sampler, size int) (*Batcher, error) {
	if size < 1 {
		return nil, ErrBadBatchSize
	}
	return &Batcher{s: s, size: size}, nil
}

// Count returns the number of batches.
func (b *Batcher) Count() int {
	return (b.s.Count() + b.size - 1) / b.size
}

// Get returns batch i: samples [i*size, min((i+1)*size, s.Count()))
// in order, each variable shaped (batchSize, timeLength, nz or 1, 1, 1).
func (b *Batcher) Get(i int) (m map[string]*Tensor, err error) {
	defer thrower.RecoverError(&err)

	if i < 0 || i >= b.Count() {
		return nil, ErrBadBatchIndex
	}
	begin := i * b.size
	end := begin + b.size
	if end > b.s.Count() {
		end = b.s.Count()
	}
	samples := make([]map[string]*Tensor, 0, end-begin)
	for j := begin; j < end; j++ {
		sm, err := b.s.Get(j)
		thrower.ThrowIfError(err)
		samples = append(samples, sm)
	}
	out := make(map[string]*Tensor, len(b.s.fields))
	for _, f := range b.s.fields {
		ts := make([]*Tensor, len(samples))
		for k, sm := range samples {
			ts[k] = sm[f.name]
		}
		stacked, err := Stack(ts)
		thrower.ThrowIfError(err)
		out[f.name] = stacked
	}
	return out, nil
}
