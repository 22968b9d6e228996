// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package core

import (
	"bytes"
	"testing"
)

func TestMemoryResizeRoundsUpTo32(t *testing.T) {
	m := NewMemory(1024)
	if err := m.ResizeOffset(1, 1); err != nil {
		t.Fatalf("ResizeOffset failed: %v", err)
	}
	if m.Len() != 32 {
		t.Errorf("expected len 32, got %d", m.Len())
	}
}

func TestMemoryResizeNoopOnZeroSize(t *testing.T) {
	m := NewMemory(1024)
	if err := m.ResizeOffset(100, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("zero-size resize should be a no-op, got len=%d", m.Len())
	}
}

func TestMemoryResizeOverLimit(t *testing.T) {
	m := NewMemory(32)
	if err := m.ResizeOffset(0, 64); err == nil || err.Kind != ErrInvalidRange {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestMemorySetAndGet(t *testing.T) {
	m := NewMemory(1024)
	if err := m.ResizeOffset(0, 32); err != nil {
		t.Fatalf("ResizeOffset failed: %v", err)
	}
	data := bytes.Repeat([]byte{0xab}, 32)
	if err := m.Set(0, data); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got := m.Get(0, 32)
	if !bytes.Equal(got, data) {
		t.Errorf("Get mismatch: got %x, want %x", got, data)
	}
}

func TestMemoryGetBeyondHighWaterMarkReadsZero(t *testing.T) {
	m := NewMemory(1024)
	got := m.Get(1000, 8)
	if !bytes.Equal(got, make([]byte, 8)) {
		t.Errorf("expected zero bytes, got %x", got)
	}
}

func TestMemorySetOutOfRangeFails(t *testing.T) {
	m := NewMemory(1024)
	if err := m.Set(0, []byte{1, 2, 3}); err == nil || err.Kind != ErrInvalidRange {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestMemoryCopyLargeOverlapping(t *testing.T) {
	m := NewMemory(1024)
	if err := m.ResizeOffset(0, 64); err != nil {
		t.Fatalf("ResizeOffset failed: %v", err)
	}
	seed := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	if err := m.Set(0, seed); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// MCOPY-style self-copy: shift seed forward by 2 bytes within memory.
	if err := m.CopyLarge(2, 0, 8, m.store); err != nil {
		t.Fatalf("CopyLarge failed: %v", err)
	}
	got := m.Get(2, 8)
	if !bytes.Equal(got, seed) {
		t.Errorf("overlapping copy corrupted data: got %x, want %x", got, seed)
	}
}

func TestMemoryCopyLargeZeroFillsPastSource(t *testing.T) {
	m := NewMemory(1024)
	if err := m.ResizeOffset(0, 32); err != nil {
		t.Fatalf("ResizeOffset failed: %v", err)
	}
	source := []byte{1, 2, 3}
	if err := m.CopyLarge(0, 0, 8, source); err != nil {
		t.Fatalf("CopyLarge failed: %v", err)
	}
	want := []byte{1, 2, 3, 0, 0, 0, 0, 0}
	got := m.Get(0, 8)
	if !bytes.Equal(got, want) {
		t.Errorf("expected zero-filled tail, got %x, want %x", got, want)
	}
}
