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

package core

// Machine is a single stack-machine execution context: one call frame's
// code, its input data, its stack and memory, and the bookkeeping needed to
// resume after a host trap. A Machine never reaches outside of itself: all
// environment, state and sub-call interaction is surfaced as a Trap for the
// host to resolve, after which the host calls Advance and Run again.
type Machine struct {
	code   []byte
	data   []byte
	valids Valids

	stack  *Stack
	memory *Memory

	position uint64 // program counter into code
	exited   bool
	exitWith ExitReason

	returnRange [2]uint64 // [offset,size) into memory set by RETURN/REVERT

	listener EventListener
}

// New constructs a Machine ready to execute code against the given input
// data. valids is the JUMPDEST validity bitmap for code, in the format
// ComputeValids produces; a caller that has already computed or cached one
// (typically via a Handler's Valids query) should pass it directly instead
// of paying for a rescan. A nil valids falls back to ComputeValids(code).
// stackLimit and memoryLimit bound the Stack and Memory respectively;
// SPEC_FULL's demo configuration uses conf.MachineConfig's defaults for
// both.
func New(code, valids, data []byte, stackLimit int, memoryLimit uint64) *Machine {
	v := Valids(valids)
	if v == nil {
		v = ComputeValids(code)
	}
	return &Machine{
		code:   code,
		data:   data,
		valids: v,
		stack:  NewStack(stackLimit),
		memory: NewMemory(memoryLimit),
	}
}

// SetListener attaches an EventListener that receives a Step/StepResult
// event around every instruction. A nil listener disables tracing.
func (m *Machine) SetListener(l EventListener) { m.listener = l }

// Position returns the current program counter.
func (m *Machine) Position() uint64 { return m.position }

// Advance moves the program counter forward by delta. A host calls this
// after successfully resolving a Trap, to move past the single-byte
// trapped opcode before resuming Run; every opcode the core itself does not
// dispatch (and therefore can trap on) is one byte wide, with no immediate
// operand.
func (m *Machine) Advance(delta uint64) { m.position += delta }

// Stack exposes the machine's operand stack, primarily for host inspection
// and tracing.
func (m *Machine) Stack() *Stack { return m.stack }

// Memory exposes the machine's linear memory, primarily for host inspection
// and tracing.
func (m *Machine) Memory() *Memory { return m.memory }

// Code returns the executing code buffer.
func (m *Machine) Code() []byte { return m.code }

// ReturnValue returns the bytes captured by the RETURN or REVERT that ended
// this run, or nil if the machine has not exited via one of those opcodes.
func (m *Machine) ReturnValue() []byte {
	off, size := m.returnRange[0], m.returnRange[1]
	if size == 0 {
		return nil
	}
	return m.memory.GetCopy(off, size)
}

// Inspect is a debugging accessor returning the opcode about to execute, or
// false once the machine has run off the end of its code.
func (m *Machine) Inspect() (OpCode, bool) {
	if m.position >= uint64(len(m.code)) {
		return 0, false
	}
	return OpCode(m.code[m.position]), true
}

// PreValidator runs once per step, immediately before the opcode's handler
// is dispatched, letting the host enforce cross-cutting constraints (gas
// accounting, the static-call denylist) ahead of the opcode's side effect. A
// nil PreValidator disables the check.
type PreValidator func(ctx Context, op OpCode, stack *Stack) *ExitError

// Run executes steps until the machine exits, traps out to the host, or
// maxSteps is exhausted (0 means unbounded). It is re-entrant: a Trap
// capture leaves the program counter on the trapped opcode; the host
// resolves the requested operation, calls Advance(1) and calls Run again to
// resume from the following instruction. Run does not report how many steps
// it executed. preValidate, if non-nil, is called
// once per step before dispatch; an error it returns latches as the
// machine's terminal exit without the opcode ever running.
func (m *Machine) Run(maxSteps uint64, preValidate PreValidator, context Context) Capture {
	if m.exited {
		return CaptureExit(m.exitWith)
	}
	var steps uint64
	for {
		if maxSteps > 0 && steps >= maxSteps {
			return CaptureExit(ExitStepLimitReached())
		}
		steps++

		op, ok := m.Inspect()
		if !ok {
			m.finish(ExitSucceeded(Stopped))
			return CaptureExit(m.exitWith)
		}

		if preValidate != nil {
			if verr := preValidate(context, op, m.stack); verr != nil {
				m.finish(ExitWithError(verr))
				return CaptureExit(m.exitWith)
			}
		}

		if m.listener != nil {
			m.listener.OnEvent(StepEvent{Position: m.position, Opcode: op})
		}

		c := dispatch(m, op)

		if m.listener != nil {
			m.listener.OnEvent(StepResultEvent{Position: m.position, Opcode: op, Outcome: c.kind})
		}

		switch c.kind {
		case controlContinue:
			m.position += c.delta
		case controlJump:
			m.position = c.target
		case controlExit:
			m.finish(c.exit)
			return CaptureExit(m.exitWith)
		case controlTrap:
			return CaptureTrap(c.trap)
		}
	}
}

func (m *Machine) finish(r ExitReason) {
	m.exited = true
	m.exitWith = r
}
