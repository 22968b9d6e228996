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

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/n42blockchain/coreevm/conf"
	"github.com/n42blockchain/coreevm/internal/vm/core"
	"github.com/n42blockchain/coreevm/internal/vm/runtime"
	"github.com/n42blockchain/coreevm/log"
	"github.com/n42blockchain/coreevm/params"
)

const usageText = `evmrun [options]

运行一段字节码并打印退出结果：
  evmrun --code 600160020160005260206000f3
  evmrun --codefile init.hex --calldata 0x1234 --static`

var (
	codeFlag = &cli.StringFlag{
		Name:  "code",
		Usage: "十六进制编码的字节码 (可带 0x 前缀)",
	}
	codeFileFlag = &cli.StringFlag{
		Name:  "codefile",
		Usage: "包含十六进制字节码的文件路径，与 --code 二选一",
	}
	calldataFlag = &cli.StringFlag{
		Name:  "calldata",
		Usage: "十六进制编码的调用数据",
	}
	staticFlag = &cli.BoolFlag{
		Name:  "static",
		Usage: "以只读模式运行 (禁止 SSTORE/LOG/CREATE/SELFDESTRUCT)",
	}
	gasFlag = &cli.Uint64Flag{
		Name:  "gas",
		Usage: "提供给执行的 gas 额度",
		Value: 10_000_000,
	}
	maxStepsFlag = &cli.Uint64Flag{
		Name:  "max-steps",
		Usage: "最大执行步数，0 表示使用默认值 (10000000)",
	}
	verboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "打印每一步的程序计数器和操作码",
	}
)

func main() {
	app := &cli.App{
		Name:      "evmrun",
		Usage:     "独立运行核心栈式虚拟机",
		UsageText: usageText,
		Version:   params.VersionWithCommit(params.GitCommit, ""),
		Flags:     []cli.Flag{codeFlag, codeFileFlag, calldataFlag, staticFlag, gasFlag, maxStepsFlag, verboseFlag},
		Action:    run,
		Copyright: "Copyright 2022-2026 The N42 Authors",
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	log.Init("", conf.DefaultLoggerConfig())

	code, err := loadCode(c)
	if err != nil {
		return err
	}
	calldata, err := decodeHex(c.String("calldata"))
	if err != nil {
		return fmt.Errorf("decoding --calldata: %w", err)
	}

	machineCfg := conf.DefaultMachineConfig()
	if ms := c.Uint64("max-steps"); ms > 0 {
		machineCfg.MaxSteps = ms
	}
	_ = machineCfg.Validate()

	ctx := core.Context{
		Address: common.HexToAddress("0x00000000000000000000000000000000c0de00"),
		Caller:  common.HexToAddress("0x00000000000000000000000000000000ca11e5"),
		Origin:  common.HexToAddress("0x00000000000000000000000000000000ca11e5"),
		ChainID: core.NewW256FromUint64(1),
	}
	handler := runtime.NewMemoryHandler(ctx, c.Uint64("gas"), logrus.StandardLogger())
	handler.SetStaticMode(c.Bool("static"))
	handler.SetCode(ctx.Address, code)

	m := core.New(code, handler.Valids(ctx.Address), calldata, machineCfg.StackLimit, machineCfg.MemoryLimit)
	if c.Bool("verbose") {
		m.SetListener(core.EventListenerFunc(traceEvent))
	}

	runner := runtime.NewRunner(handler, ctx)
	reason, err := runner.Run(m, machineCfg.MaxSteps)
	if err != nil {
		return err
	}

	printResult(reason, m.ReturnValue())
	return nil
}

func loadCode(c *cli.Context) ([]byte, error) {
	switch {
	case c.String("code") != "":
		return decodeHex(c.String("code"))
	case c.String("codefile") != "":
		raw, err := os.ReadFile(c.String("codefile"))
		if err != nil {
			return nil, fmt.Errorf("reading --codefile: %w", err)
		}
		return decodeHex(strings.TrimSpace(string(raw)))
	default:
		return nil, fmt.Errorf("one of --code or --codefile is required")
	}
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if s == "" {
		return nil, nil
	}
	return hex.DecodeString(s)
}

func traceEvent(e core.Event) {
	switch ev := e.(type) {
	case core.StepEvent:
		fmt.Fprintf(os.Stderr, "pc=%-5d op=%s\n", ev.Position, ev.Opcode)
	}
}

func printResult(reason core.ExitReason, ret []byte) {
	switch {
	case reason.IsSucceed():
		fmt.Printf("succeeded: %s\n", reason.Succeed)
	case reason.IsRevert():
		fmt.Println("reverted")
	case reason.IsError():
		fmt.Printf("error: %s\n", reason.Error())
	case reason.IsFatal():
		fmt.Printf("fatal: %s\n", reason.Error())
	default:
		fmt.Println("step limit reached")
	}
	if len(ret) > 0 {
		fmt.Printf("return data: 0x%s\n", hex.EncodeToString(ret))
	}
}
