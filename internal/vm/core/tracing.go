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

// Event is the common interface implemented by every tracing event a Machine
// emits. It carries no behavior of its own; listeners type-switch on the
// concrete event.
type Event interface {
	isEvent()
}

// StepEvent fires immediately before an opcode executes.
type StepEvent struct {
	Position uint64
	Opcode   OpCode
}

func (StepEvent) isEvent() {}

// StepResultEvent fires immediately after an opcode executes, reporting the
// control outcome it produced (continue/jump/exit/trap).
type StepResultEvent struct {
	Position uint64
	Opcode   OpCode
	Outcome  controlKind
}

func (StepResultEvent) isEvent() {}

// EventListener receives Machine tracing events. Implementations must not
// retain the Machine itself; they see only the event values passed to
// OnEvent.
type EventListener interface {
	OnEvent(Event)
}

// EventListenerFunc adapts a plain function to EventListener.
type EventListenerFunc func(Event)

func (f EventListenerFunc) OnEvent(e Event) { f(e) }
