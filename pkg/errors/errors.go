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

// Package errors defines common error types used throughout the N42 codebase.
// This package provides a centralized location for error definitions to ensure
// consistency and avoid duplication across modules.
package errors

import (
	"errors"
	"fmt"
)

// =====================
// Machine boundary errors
// =====================

var (
	// ErrOpcodeNotImplemented describes a trap that a host has no case for.
	// No function in this module returns it; Handler.Other reports such a
	// trap as a *core.ExitFatal instead.
	ErrOpcodeNotImplemented = errors.New("opcode not implemented by host")

	// ErrHandlerNotConfigured is returned when a Runner is asked to drive a
	// Machine before a Handler has been attached.
	ErrHandlerNotConfigured = errors.New("no handler configured for machine run")

	// ErrMachineAlreadyExited describes a Machine that has already produced a
	// terminal Capture. No function in this module returns it; core's
	// Machine.Run repeats the latched exit instead.
	ErrMachineAlreadyExited = errors.New("machine already exited")

	// ErrUnsupportedTrap describes a Trap opcode with no resolution path at
	// all. No function in this module returns it; runtime's Runner forwards
	// every trap other than KECCAK256 to Handler.Other.
	ErrUnsupportedTrap = errors.New("unsupported trap opcode")
)

// =====================
// Decoding errors
// =====================

var (
	// ErrInvalidSize is returned when a number has an invalid size.
	ErrInvalidSize = errors.New("big endian number has an invalid size")
)

// =====================
// Helper Functions
// =====================

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}

// Errorf formats according to a format specifier and returns the string as a value that satisfies error.
func Errorf(format string, a ...interface{}) error {
	return fmt.Errorf(format, a...)
}

