package sample

import (
	"testing"
)

func TestBatchSizes(t *testing.T) {
	d := newTestDataset(t)
	s, err := New(d, 4)
	if err != nil {
		t.Error(err)
		return
	}
	// 10 samples at batch size 4 yield batches of 4, 4 and 2.
	b, err := NewBatcher(s, 4)
	if err != nil {
		t.Error(err)
		return
	}
	if b.Count() != 3 {
		t.Error("expected 3 batches, got", b.Count())
		return
	}
	wantSizes := []int{4, 4, 2}
	for i, want := range wantSizes {
		m, err := b.Get(i)
		if err != nil {
			t.Error(err)
			return
		}
		if !sameShape(m["b"].Shape, []int{want, 4, 1, 1, 1}) {
			t.Errorf("batch %d: b shaped %v, want leading axis %d",
				i, m["b"].Shape, want)
			return
		}
		if !sameShape(m["a"].Shape, []int{want, 4, 4, 1, 1}) {
			t.Errorf("batch %d: a shaped %v, want leading axis %d",
				i, m["a"].Shape, want)
			return
		}
	}
}

func TestBatchOrder(t *testing.T) {
	d := newTestDataset(t)
	s, err := New(d, 4)
	if err != nil {
		t.Error(err)
		return
	}
	b, err := NewBatcher(s, 4)
	if err != nil {
		t.Error(err)
		return
	}
	// The final batch holds samples 8 and 9 in order.
	m, err := b.Get(2)
	if err != nil {
		t.Error(err)
		return
	}
	for k, j := range []int{8, 9} {
		single, err := s.Get(j)
		if err != nil {
			t.Error(err)
			return
		}
		for ti := 0; ti < 4; ti++ {
			if m["b"].Get(k, ti, 0, 0, 0) != single["b"].Get(ti, 0, 0, 0) {
				t.Errorf("batch element %d disagrees with sample %d", k, j)
				return
			}
		}
	}
}

func TestBatchErrors(t *testing.T) {
	d := newTestDataset(t)
	s, err := New(d, 4)
	if err != nil {
		t.Error(err)
		return
	}
	if _, err := NewBatcher(s, 0); err != ErrBadBatchSize {
		t.Error("expected batch size error, got", err)
		return
	}
	b, err := NewBatcher(s, 4)
	if err != nil {
		t.Error(err)
		return
	}
	if _, err := b.Get(-1); err != ErrBadBatchIndex {
		t.Error("expected bounds error for negative index, got", err)
		return
	}
	if _, err := b.Get(b.Count()); err != ErrBadBatchIndex {
		t.Error("expected bounds error past the end, got", err)
		return
	}
}
