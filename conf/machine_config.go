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

package conf

// MachineConfig 定义单次虚拟机运行的资源边界
//
// 这些限制独立于任何具体计价方案：StackLimit/MemoryLimit 防止单次调用
// 无限增长操作数栈或线性内存，MaxSteps 为 Run 提供一个硬性的指令数上限，
// 避免一次调用（或宿主未正确处理陷阱）导致无限循环。
type MachineConfig struct {
	// StackLimit 操作数栈最多可容纳的 W256 字数
	// 默认: 1024
	StackLimit int `json:"stack_limit" yaml:"stack_limit"`

	// MemoryLimit 线性内存可扩展到的最大字节数
	// 默认: 32 * 1024 * 1024 (32 MiB)
	MemoryLimit uint64 `json:"memory_limit" yaml:"memory_limit"`

	// MaxSteps 单次 Run 调用允许执行的最大指令数，0 表示不限制
	// 默认: 10_000_000
	MaxSteps uint64 `json:"max_steps" yaml:"max_steps"`
}

// DefaultMachineConfig 返回默认的机器资源配置
func DefaultMachineConfig() MachineConfig {
	return MachineConfig{
		StackLimit:  1024,
		MemoryLimit: 32 * 1024 * 1024,
		MaxSteps:    10_000_000,
	}
}

// Validate 验证配置有效性，修正非法字段为默认值
func (c *MachineConfig) Validate() error {
	if c.StackLimit <= 0 {
		c.StackLimit = 1024
	}
	if c.MemoryLimit == 0 {
		c.MemoryLimit = 32 * 1024 * 1024
	}
	return nil
}
