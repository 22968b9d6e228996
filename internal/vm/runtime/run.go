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
	"github.com/n42blockchain/coreevm/internal/vm/core"
	vmerrors "github.com/n42blockchain/coreevm/pkg/errors"
)

// Runner drives a core.Machine to completion against a Handler, resolving
// every Trap the Machine raises until it produces a terminal ExitReason.
type Runner struct {
	Handler Handler
	Context core.Context
}

// NewRunner constructs a Runner bound to h and ctx.
func NewRunner(h Handler, ctx core.Context) *Runner {
	return &Runner{Handler: h, Context: ctx}
}

// Run drives m to a terminal ExitReason, resolving traps against r.Handler.
// maxSteps == 0 means unbounded. Otherwise maxSteps, less one for every trap
// resolved so far, is the step budget of each m.Run call; steps executed
// inside m.Run are not added to that count, so the total number of steps
// across resumptions can exceed maxSteps.
func (r *Runner) Run(m *core.Machine, maxSteps uint64) (core.ExitReason, error) {
	if r.Handler == nil {
		return core.ExitReason{}, vmerrors.ErrHandlerNotConfigured
	}
	var steps uint64
	for {
		var budget uint64
		if maxSteps > 0 {
			if steps >= maxSteps {
				return core.ExitStepLimitReached(), nil
			}
			budget = maxSteps - steps
		}
		capture := m.Run(budget, r.Handler.PreValidate, r.Context)
		if capture.IsExit() {
			return capture.Exit, nil
		}
		if reason := r.resolveTrap(m, capture.Trap); reason != nil {
			return *reason, nil
		}
		m.Advance(1)
		steps++
	}
}

// resolveTrap handles the one opcode family core.Machine cannot decide on
// its own: hashing is resolved inline (a pure function of its input),
// everything else is forwarded to the Handler's catch-all. A non-nil return
// means the trap resolution itself was terminal (e.g. a malformed stack, or
// the Handler escalating to Fatal); nil means the Machine should resume.
func (r *Runner) resolveTrap(m *core.Machine, op core.OpCode) *core.ExitReason {
	if op == core.KECCAK256 {
		return r.resolveKeccak(m)
	}
	if fatal := r.Handler.Other(op, m); fatal != nil {
		reason := core.ExitFataled(fatal)
		return &reason
	}
	return nil
}

func (r *Runner) resolveKeccak(m *core.Machine) *core.ExitReason {
	off, err := m.Stack().Pop()
	if err != nil {
		return errorReason(err)
	}
	size, err := m.Stack().Pop()
	if err != nil {
		return errorReason(err)
	}
	offset, oerr := core.OffsetToUint64(off)
	if oerr != nil {
		return errorReason(oerr)
	}
	length, oerr := core.OffsetToUint64(size)
	if oerr != nil {
		return errorReason(oerr)
	}
	if rerr := m.Memory().ResizeOffset(offset, length); rerr != nil {
		return errorReason(rerr)
	}
	data := m.Memory().GetCopy(offset, length)
	hash := r.Handler.Keccak256(data)
	var v core.W256
	v.SetBytes32(hash[:])
	if perr := m.Stack().Push(v); perr != nil {
		return errorReason(perr)
	}
	return nil
}

func errorReason(e *core.ExitError) *core.ExitReason {
	r := core.ExitWithError(e)
	return &r
}
