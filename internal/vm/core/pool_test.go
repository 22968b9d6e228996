// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package core

import "testing"

func TestUint256PoolRoundTrip(t *testing.T) {
	v := GetUint256()
	v.SetUint64(42)
	PutUint256(v)

	v2 := GetUint256()
	if !v2.IsZero() {
		t.Errorf("expected PutUint256 to clear before returning to pool, got %v", v2)
	}
	PutUint256(v2)
}

func TestByteSlicePoolSizesExactly(t *testing.T) {
	b := GetByteSlice(10)
	if len(b) != 10 {
		t.Errorf("GetByteSlice(10) len = %d, want 10", len(b))
	}
	PutByteSlice(b)

	big := GetByteSlice(100)
	if len(big) != 100 {
		t.Errorf("GetByteSlice(100) len = %d, want 100", len(big))
	}
}

func TestHashBufferPool(t *testing.T) {
	b := GetHashBuffer()
	if len(*b) != 32 {
		t.Fatalf("hash buffer len = %d, want 32", len(*b))
	}
	PutHashBuffer(b)
}

func TestSizeClass(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
	}
	for _, tt := range tests {
		if got := sizeClass(tt.size); got != tt.want {
			t.Errorf("sizeClass(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestGetMemoryReturnsExactLength(t *testing.T) {
	b := GetMemory(50)
	if len(b) != 50 {
		t.Errorf("GetMemory(50) len = %d, want 50", len(b))
	}
	PutMemory(b)

	huge := GetMemory(1 << 21) // beyond the largest pooled size class
	if len(huge) != 1<<21 {
		t.Errorf("GetMemory(huge) len = %d, want %d", len(huge), 1<<21)
	}
}
