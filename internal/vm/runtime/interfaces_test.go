// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package runtime

import (
	"testing"

	"github.com/n42blockchain/coreevm/internal/vm/core"
)

// acceptsCaller and acceptsStateReader exercise that MemoryHandler can be
// passed through the narrower Caller/StateReader interfaces, not just the
// full Handler surface.
func acceptsCaller(c Caller) CreateResult {
	return c.Create(core.B160{}, core.CreateSchemeLegacy(), core.ZeroW256(), nil, nil)
}

func acceptsStateReader(s StateReader, addr core.B160) uint64 {
	return s.Nonce(addr)
}

func TestMemoryHandlerSatisfiesCaller(t *testing.T) {
	h := NewMemoryHandler(core.Context{}, 0, nil)
	result := acceptsCaller(h)
	if !result.Reason.IsFatal() {
		t.Errorf("expected the narrowed Caller view to still report Fatal, got %+v", result)
	}
}

func TestMemoryHandlerSatisfiesStateReader(t *testing.T) {
	h := NewMemoryHandler(core.Context{}, 0, nil)
	if got := acceptsStateReader(h, testAddr(1)); got != 0 {
		t.Errorf("unseeded nonce via StateReader = %d, want 0", got)
	}
}
