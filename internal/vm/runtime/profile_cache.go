// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.
//
// The N42 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The N42 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the N42 library. If not, see <http://www.gnu.org/licenses/>.

package runtime

import (
	"sync"

	"github.com/n42blockchain/coreevm/internal/vm/core"
)

// ValidationProfile is the set of opcodes a Handler's PreValidate rejects.
// Unlike the teacher's per-hard-fork jump tables, this module has no fork
// axis to key on; instead a profile is selected per call frame (e.g. a
// STATICCALL enters the "static" profile for its whole sub-call).
type ValidationProfile struct {
	name      string
	forbidden map[core.OpCode]struct{}
}

// Name returns the profile's cache key.
func (p ValidationProfile) Name() string { return p.name }

// Forbids reports whether op is disallowed under this profile.
func (p ValidationProfile) Forbids(op core.OpCode) bool {
	_, ok := p.forbidden[op]
	return ok
}

var profileCache = &profileCacheType{
	profiles: make(map[string]ValidationProfile),
}

type profileCacheType struct {
	mu       sync.RWMutex
	profiles map[string]ValidationProfile
}

// GetCachedProfile returns the named ValidationProfile, building and caching
// it on first use. Profiles are immutable once built, so concurrent readers
// never need to synchronize beyond the cache lookup itself.
func GetCachedProfile(name string) ValidationProfile {
	profileCache.mu.RLock()
	p, ok := profileCache.profiles[name]
	profileCache.mu.RUnlock()
	if ok {
		return p
	}

	profileCache.mu.Lock()
	defer profileCache.mu.Unlock()
	if p, ok = profileCache.profiles[name]; ok {
		return p
	}
	p = newProfileByName(name)
	profileCache.profiles[name] = p
	return p
}

func newProfileByName(name string) ValidationProfile {
	switch name {
	case "static":
		return newStaticProfile()
	default:
		return newDefaultProfile()
	}
}

func newDefaultProfile() ValidationProfile {
	return ValidationProfile{name: "default", forbidden: map[core.OpCode]struct{}{}}
}

// newStaticProfile forbids every opcode that can mutate state or emit a log,
// matching the EVM's STATICCALL read-only restriction.
func newStaticProfile() ValidationProfile {
	forbidden := map[core.OpCode]struct{}{
		core.SSTORE:       {},
		core.TSTORE:       {},
		core.LOG0:         {},
		core.LOG1:         {},
		core.LOG2:         {},
		core.LOG3:         {},
		core.LOG4:         {},
		core.CREATE:       {},
		core.CREATE2:      {},
		core.SELFDESTRUCT: {},
	}
	return ValidationProfile{name: "static", forbidden: forbidden}
}

// PrewarmProfiles pre-builds every known profile so the first call into a
// fresh process never pays the build cost mid-execution.
func PrewarmProfiles() {
	GetCachedProfile("default")
	GetCachedProfile("static")
}
