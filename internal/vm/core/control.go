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

// Package core's exit taxonomy mirrors a closed sum type. Go has no native
// sum types, so each case is represented as a small comparable struct with
// an explicit discriminant; constructors are the only supported way to
// build a value, so a caller can never observe a hybrid state (e.g. an
// ExitReason that is simultaneously Succeed and Error).
package core

// ExitSucceed enumerates the normal termination reasons.
type ExitSucceed uint8

const (
	Stopped ExitSucceed = iota
	Returned
	Suicided
)

func (s ExitSucceed) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Returned:
		return "returned"
	case Suicided:
		return "suicided"
	default:
		return "unknown-succeed"
	}
}

// ExitErrorKind enumerates the in-band VM errors triggered by bytecode.
type ExitErrorKind uint8

const (
	ErrStackUnderflow ExitErrorKind = iota
	ErrStackOverflow
	ErrInvalidJump
	ErrInvalidRange
	ErrDesignatedInvalid
	ErrCallTooDeep
	ErrCreateCollision
	ErrCreateContractLimit
	ErrOutOfOffset
	ErrOutOfGas
	ErrOutOfFund
	ErrPCUnderflow
	ErrCreateEmpty
	ErrStaticModeViolation
)

func (k ExitErrorKind) String() string {
	switch k {
	case ErrStackUnderflow:
		return "stack underflow"
	case ErrStackOverflow:
		return "stack overflow"
	case ErrInvalidJump:
		return "invalid jump destination"
	case ErrInvalidRange:
		return "invalid memory range"
	case ErrDesignatedInvalid:
		return "designated invalid opcode"
	case ErrCallTooDeep:
		return "call too deep"
	case ErrCreateCollision:
		return "create collision"
	case ErrCreateContractLimit:
		return "create contract size limit exceeded"
	case ErrOutOfOffset:
		return "out of offset"
	case ErrOutOfGas:
		return "out of gas"
	case ErrOutOfFund:
		return "out of fund"
	case ErrPCUnderflow:
		return "pc underflow"
	case ErrCreateEmpty:
		return "create empty"
	case ErrStaticModeViolation:
		return "static mode violation"
	default:
		return "unknown error"
	}
}

// ExitError is an in-band VM error. It implements the error interface so
// host and CLI code can use errors.Is/errors.As against it directly.
type ExitError struct {
	Kind ExitErrorKind
}

func (e *ExitError) Error() string { return e.Kind.String() }

// NewExitError constructs an *ExitError of the given kind.
func NewExitError(kind ExitErrorKind) *ExitError { return &ExitError{Kind: kind} }

// ExitRevert marks an explicit REVERT termination. It carries no payload of
// its own beyond the fact of reversion; the revert data lives in the
// Machine's return range.
type ExitRevert uint8

const Reverted ExitRevert = 0

func (ExitRevert) String() string { return "reverted" }

// ExitFatalKind enumerates structural failures outside the normative EVM
// error space.
type ExitFatalKind uint8

const (
	FatalNotSupported ExitFatalKind = iota
	FatalUnhandledInterrupt
	FatalCallErrorAsFatal
)

// ExitFatal is a fatal, non-recoverable termination. Like ExitError, it
// implements the error interface.
type ExitFatal struct {
	Kind    ExitFatalKind
	Wrapped *ExitError // set only when Kind == FatalCallErrorAsFatal
}

func (f *ExitFatal) Error() string {
	switch f.Kind {
	case FatalNotSupported:
		return "fatal: opcode not supported by host"
	case FatalUnhandledInterrupt:
		return "fatal: unhandled interrupt"
	case FatalCallErrorAsFatal:
		if f.Wrapped != nil {
			return "fatal: call error escalated: " + f.Wrapped.Error()
		}
		return "fatal: call error escalated"
	default:
		return "fatal: unknown"
	}
}

// NewCallErrorAsFatal escalates an ExitError to a Fatal termination.
func NewCallErrorAsFatal(e *ExitError) *ExitFatal {
	return &ExitFatal{Kind: FatalCallErrorAsFatal, Wrapped: e}
}

// ExitReasonKind discriminates the ExitReason sum.
type ExitReasonKind uint8

const (
	ExitKindStepLimitReached ExitReasonKind = iota
	ExitKindSucceed
	ExitKindRevert
	ExitKindError
	ExitKindFatal
)

// ExitReason is the closed sum of every way a Machine can terminate.
type ExitReason struct {
	Kind    ExitReasonKind
	Succeed ExitSucceed
	Revert  ExitRevert
	Err     *ExitError
	Fatal   *ExitFatal
}

func ExitStepLimitReached() ExitReason { return ExitReason{Kind: ExitKindStepLimitReached} }
func ExitSucceeded(s ExitSucceed) ExitReason {
	return ExitReason{Kind: ExitKindSucceed, Succeed: s}
}
func ExitReverted() ExitReason { return ExitReason{Kind: ExitKindRevert, Revert: Reverted} }
func ExitErrored(kind ExitErrorKind) ExitReason {
	return ExitReason{Kind: ExitKindError, Err: NewExitError(kind)}
}
func ExitWithError(e *ExitError) ExitReason { return ExitReason{Kind: ExitKindError, Err: e} }
func ExitFataled(f *ExitFatal) ExitReason   { return ExitReason{Kind: ExitKindFatal, Fatal: f} }

// IsSucceed, IsError, IsRevert, IsFatal classify the reason.
func (r ExitReason) IsSucceed() bool { return r.Kind == ExitKindSucceed }
func (r ExitReason) IsError() bool   { return r.Kind == ExitKindError }
func (r ExitReason) IsRevert() bool  { return r.Kind == ExitKindRevert }
func (r ExitReason) IsFatal() bool   { return r.Kind == ExitKindFatal }

// Error implements the error interface when the reason is not a normal
// terminal (Succeed); calling it on a Succeed/StepLimitReached reason is a
// programmer error, as those are not failures.
func (r ExitReason) Error() string {
	switch r.Kind {
	case ExitKindError:
		return r.Err.Error()
	case ExitKindFatal:
		return r.Fatal.Error()
	case ExitKindRevert:
		return "reverted"
	case ExitKindStepLimitReached:
		return "step limit reached"
	default:
		return r.Succeed.String()
	}
}

// Trap is the opcode byte a core step handed back to the host, requesting
// it perform an environmental operation the core does not implement.
type Trap = OpCode

// Capture is the outcome of one Run call: either a terminal Exit or a
// resumable Trap.
type Capture struct {
	IsTrap bool
	Exit   ExitReason
	Trap   Trap
}

func CaptureExit(r ExitReason) Capture  { return Capture{Exit: r} }
func CaptureTrap(op Trap) Capture       { return Capture{IsTrap: true, Trap: op} }
func (c Capture) IsExit() bool          { return !c.IsTrap }

// controlKind discriminates the four-way per-step control outcome.
type controlKind uint8

const (
	controlContinue controlKind = iota
	controlJump
	controlExit
	controlTrap
)

// control is the per-opcode-handler outcome. The dispatch loop interprets
// exactly one of its four shapes per step; handlers must use the
// constructors below rather than constructing the struct directly, keeping
// the "forbid hybrid states" discipline from leaking into handler code.
type control struct {
	kind   controlKind
	delta  uint64
	target uint64
	exit   ExitReason
	trap   Trap
}

func controlContinueBy(delta uint64) control { return control{kind: controlContinue, delta: delta} }
func controlJumpTo(target uint64) control    { return control{kind: controlJump, target: target} }
func controlExitWith(r ExitReason) control   { return control{kind: controlExit, exit: r} }
func controlTrapWith(op Trap) control        { return control{kind: controlTrap, trap: op} }
