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

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/n42blockchain/coreevm/internal/vm/core"
)

// account is the demo handler's view of one address: its balance, nonce,
// deployed code and persistent/transient storage.
type account struct {
	nonce   uint64
	balance core.W256
	code    []byte
	storage map[core.W256]core.W256
	transu  map[core.W256]core.W256
}

func newAccount() *account {
	return &account{storage: make(map[core.W256]core.W256), transu: make(map[core.W256]core.W256)}
}

// MemoryHandler is a minimal, entirely in-memory Handler: no real gas
// accounting, no sub-call execution (CREATE/CALL resolve as NotSupported),
// and a static-mode check driven by ValidationProfile. It exists to give
// cmd/evmrun something real to run code against without pulling in a full
// state database.
type MemoryHandler struct {
	mu       sync.Mutex
	accounts map[core.B160]*account
	logs     []loggedEvent

	ctx     core.Context
	gasLeft uint64

	runID   uuid.UUID
	log     *logrus.Entry
	profile ValidationProfile
}

type loggedEvent struct {
	Address core.B160
	Topics  []core.B256
	Data    []byte
}

// NewMemoryHandler constructs a MemoryHandler seeded with ctx and an initial
// gas allowance, tagging every log line it emits with a fresh run id so
// concurrent demo runs can be told apart in shared output.
func NewMemoryHandler(ctx core.Context, gasLeft uint64, logger *logrus.Logger) *MemoryHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	runID := uuid.New()
	return &MemoryHandler{
		accounts: make(map[core.B160]*account),
		ctx:      ctx,
		gasLeft:  gasLeft,
		runID:    runID,
		log:      logger.WithField("run_id", runID.String()),
		profile:  GetCachedProfile("default"),
	}
}

// SetBalance seeds addr's balance, for test and CLI setup.
func (h *MemoryHandler) SetBalance(addr core.B160, value core.W256) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.account(addr).balance = value
}

// SetCode seeds addr's deployed code, for test and CLI setup.
func (h *MemoryHandler) SetCode(addr core.B160, code []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.account(addr).code = code
}

// Logs returns every log emitted against this handler so far.
func (h *MemoryHandler) Logs() []loggedEvent {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]loggedEvent(nil), h.logs...)
}

func (h *MemoryHandler) account(addr core.B160) *account {
	a, ok := h.accounts[addr]
	if !ok {
		a = newAccount()
		h.accounts[addr] = a
	}
	return a
}

func (h *MemoryHandler) Keccak256(data []byte) core.B256 {
	return core.B256(crypto.Keccak256Hash(data))
}

func (h *MemoryHandler) Nonce(addr core.B160) uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.account(addr).nonce
}

func (h *MemoryHandler) Balance(addr core.B160) core.W256 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.account(addr).balance
}

func (h *MemoryHandler) CodeSize(addr core.B160) uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return uint64(len(h.account(addr).code))
}

func (h *MemoryHandler) CodeHash(addr core.B160) core.B256 {
	h.mu.Lock()
	code := h.account(addr).code
	h.mu.Unlock()
	return h.Keccak256(code)
}

func (h *MemoryHandler) Code(addr core.B160) []byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]byte(nil), h.account(addr).code...)
}

// Valids computes the JUMPDEST bitmap for addr's currently deployed code on
// every call; a production Handler backed by a real state database would
// cache this alongside the code itself.
func (h *MemoryHandler) Valids(addr core.B160) []byte {
	h.mu.Lock()
	code := h.account(addr).code
	h.mu.Unlock()
	return core.ComputeValids(code)
}

func (h *MemoryHandler) Storage(addr core.B160, key core.W256) core.W256 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.account(addr).storage[key]
}

func (h *MemoryHandler) TransientStorage(addr core.B160, key core.W256) core.W256 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.account(addr).transu[key]
}

func (h *MemoryHandler) GasLeft() uint64 { return h.gasLeft }

func (h *MemoryHandler) GasPrice() core.W256           { return h.ctx.GasPrice }
func (h *MemoryHandler) Origin() core.B160             { return h.ctx.Origin }
func (h *MemoryHandler) BlockHash(core.W256) core.B256 { return core.B256{} }
func (h *MemoryHandler) BlockNumber() core.W256        { return h.ctx.BlockNumber }
func (h *MemoryHandler) BlockCoinbase() core.B160      { return core.B160{} }
func (h *MemoryHandler) BlockTimestamp() core.W256     { return h.ctx.Timestamp }
func (h *MemoryHandler) BlockDifficulty() core.W256    { return h.ctx.Difficulty }
func (h *MemoryHandler) BlockGasLimit() core.W256      { return core.NewW256FromUint64(h.gasLeft) }
func (h *MemoryHandler) ChainID() core.W256            { return h.ctx.ChainID }

func (h *MemoryHandler) SetStorage(addr core.B160, key, value core.W256) *core.ExitError {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.profile.Forbids(core.SSTORE) {
		return core.NewExitError(core.ErrStaticModeViolation)
	}
	h.account(addr).storage[key] = value
	return nil
}

func (h *MemoryHandler) SetTransientStorage(addr core.B160, key, value core.W256) *core.ExitError {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.account(addr).transu[key] = value
	return nil
}

func (h *MemoryHandler) Log(addr core.B160, topics []core.B256, data []byte) *core.ExitError {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.profile.Forbids(core.LOG0) {
		return core.NewExitError(core.ErrStaticModeViolation)
	}
	h.logs = append(h.logs, loggedEvent{Address: addr, Topics: topics, Data: data})
	h.log.WithField("address", addr.Hex()).Debug("log emitted")
	return nil
}

func (h *MemoryHandler) MarkDelete(addr, target core.B160) *core.ExitError {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.profile.Forbids(core.SELFDESTRUCT) {
		return core.NewExitError(core.ErrStaticModeViolation)
	}
	delete(h.accounts, addr)
	return nil
}

// Create always reports FatalNotSupported: this demo handler has no
// sub-execution engine. A real host would recursively construct a
// core.Machine for the init code here.
func (h *MemoryHandler) Create(caller core.B160, scheme core.CreateScheme, value core.W256, initCode []byte, gas *uint64) CreateResult {
	h.log.Warn("CREATE requested but sub-execution is not supported by this demo handler")
	return CreateResult{Reason: core.ExitFataled(&core.ExitFatal{Kind: core.FatalNotSupported})}
}

// Call always reports FatalNotSupported, for the same reason as Create.
func (h *MemoryHandler) Call(codeAddress core.B160, transfer *core.Transfer, input []byte, gas *uint64, isStatic bool, ctx core.Context) CallResult {
	h.log.Warn("CALL requested but sub-execution is not supported by this demo handler")
	return CallResult{Reason: core.ExitFataled(&core.ExitFatal{Kind: core.FatalNotSupported})}
}

// PreValidate enforces the active ValidationProfile's opcode denylist ahead
// of every step; a STATICCALL sub-frame would call SetStaticMode(true)
// before driving its Machine.
func (h *MemoryHandler) PreValidate(ctx core.Context, op core.OpCode, stack *core.Stack) *core.ExitError {
	if h.profile.Forbids(op) {
		return core.NewExitError(core.ErrStaticModeViolation)
	}
	return nil
}

// SetStaticMode switches the handler between the default and read-only
// opcode profiles.
func (h *MemoryHandler) SetStaticMode(static bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if static {
		h.profile = GetCachedProfile("static")
	} else {
		h.profile = GetCachedProfile("default")
	}
}

// Other reports FatalNotSupported for every trap this demo handler doesn't
// otherwise resolve (KECCAK256 is handled directly by Runner, see run.go).
func (h *MemoryHandler) Other(op core.OpCode, m *core.Machine) *core.ExitFatal {
	h.log.WithField("opcode", op.String()).Warn("unhandled trap")
	return &core.ExitFatal{Kind: core.FatalNotSupported}
}
