// Copyright 2018-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import "github.com/beevik/cmd"

var cmds *cmd.Tree

func init() {
	root := cmd.NewTree(cmd.TreeDescriptor{Name: "op65"})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "help",
		Description: "Display help for a command.",
		Usage:       "help [<command>]",
		Data:        (*Host).cmdHelp,
	})

	// Bank commands
	bk := root.AddSubtree(cmd.TreeDescriptor{Name: "bank", Brief: "Memory bank commands"})
	bk.AddCommand(cmd.CommandDescriptor{
		Name:  "list",
		Brief: "List memory banks",
		Description: "List every memory bank known to the system memory," +
			" along with its address range and whether it is active for" +
			" reads and writes.",
		Usage: "bank list",
		Data:  (*Host).cmdBankList,
	})
	bk.AddCommand(cmd.CommandDescriptor{
		Name:  "rom",
		Brief: "Map a ROM image",
		Description: "Load a binary file and map it as a read-only bank at" +
			" the specified page-aligned address. Reads in the covered pages" +
			" come from the ROM, while writes still reach the RAM underneath.",
		Usage: "bank rom <filename> <address>",
		Data:  (*Host).cmdBankROM,
	})
	bk.AddCommand(cmd.CommandDescriptor{
		Name:  "trap",
		Brief: "Map a halt trap",
		Description: "Map a trap bank at the specified page-aligned address." +
			" Any access to a trapped address stops the CPU with a halt" +
			" error. The size defaults to one page.",
		Usage: "bank trap <address> [<bytes>]",
		Data:  (*Host).cmdBankTrap,
	})
	bk.AddCommand(cmd.CommandDescriptor{
		Name:  "remove",
		Brief: "Remove a memory bank",
		Description: "Remove the ROM or trap bank starting at the specified" +
			" address. The system RAM cannot be removed.",
		Usage: "bank remove <address>",
		Data:  (*Host).cmdBankRemove,
	})

	// Breakpoint commands
	bp := root.AddSubtree(cmd.TreeDescriptor{Name: "breakpoint", Brief: "Breakpoint commands"})
	bp.AddCommand(cmd.CommandDescriptor{
		Name:        "list",
		Brief:       "List breakpoints",
		Description: "List all current breakpoints.",
		Usage:       "breakpoint list",
		Data:        (*Host).cmdBreakpointList,
	})
	bp.AddCommand(cmd.CommandDescriptor{
		Name:  "add",
		Brief: "Add a breakpoint",
		Description: "Add a breakpoint at the specified address." +
			" The breakpoint starts enabled.",
		Usage: "breakpoint add <address>",
		Data:  (*Host).cmdBreakpointAdd,
	})
	bp.AddCommand(cmd.CommandDescriptor{
		Name:        "remove",
		Brief:       "Remove a breakpoint",
		Description: "Remove a breakpoint at the specified address.",
		Usage:       "breakpoint remove <address>",
		Data:        (*Host).cmdBreakpointRemove,
	})
	bp.AddCommand(cmd.CommandDescriptor{
		Name:        "enable",
		Brief:       "Enable a breakpoint",
		Description: "Enable a previously added breakpoint.",
		Usage:       "breakpoint enable <address>",
		Data:        (*Host).cmdBreakpointEnable,
	})
	bp.AddCommand(cmd.CommandDescriptor{
		Name:  "disable",
		Brief: "Disable a breakpoint",
		Description: "Disable a previously added breakpoint. This" +
			" prevents the breakpoint from being hit when stepping the" +
			" CPU.",
		Usage: "breakpoint disable <address>",
		Data:  (*Host).cmdBreakpointDisable,
	})

	root.AddCommand(cmd.CommandDescriptor{
		Name:  "decode",
		Brief: "Decode and resolve instructions",
		Description: "Decode instructions starting at the requested address" +
			" using the current index registers, and display the effective" +
			" address each operand resolves to, whether indexing crossed a" +
			" page boundary, and the cycle count. Pointer bytes are read" +
			" through the bus, so decoding may fail where disassembly does" +
			" not.",
		Usage: "decode [<address>] [<count>]",
		Data:  (*Host).cmdDecode,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "disassemble",
		Brief: "Disassemble code",
		Description: "Disassemble machine code starting at the requested" +
			" address. The number of instruction lines to disassemble may be" +
			" specified as an option. If no address is specified, the" +
			" disassembly continues from where the last disassembly left off.",
		Usage: "disassemble [<address>] [<lines>]",
		Data:  (*Host).cmdDisassemble,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "evaluate",
		Brief: "Evaluate an expression",
		Description: "Evaluate an integer expression and display the result." +
			" Expressions may use the operators + - * / % << >> & ^ | ~," +
			" the prefix operators < (low byte) and > (high byte)," +
			" parentheses, character constants such as 'A', and the" +
			" register names a, x, y, sp and pc. Any command argument" +
			" that takes an address or a count accepts an expression.",
		Usage: "evaluate <expression>",
		Data:  (*Host).cmdEvaluate,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "load",
		Brief: "Load a binary file",
		Description: "Load the contents of a raw binary file into the emulated" +
			" system's memory at the specified address, and point the program" +
			" counter at it.",
		Usage: "load <filename> <address>",
		Data:  (*Host).cmdLoad,
	})

	// Memory commands
	me := root.AddSubtree(cmd.TreeDescriptor{Name: "memory", Brief: "Memory commands"})
	me.AddCommand(cmd.CommandDescriptor{
		Name:  "dump",
		Brief: "Dump memory at address",
		Description: "Dump the contents of memory starting from the" +
			" specified address. The number of bytes to dump may be" +
			" specified as an option. If no address is specified, the" +
			" memory dump continues from where the last dump left off." +
			" Inaccessible bytes are shown as dashes.",
		Usage: "memory dump [<address>] [<bytes>]",
		Data:  (*Host).cmdMemoryDump,
	})
	me.AddCommand(cmd.CommandDescriptor{
		Name:  "set",
		Brief: "Set memory at address",
		Description: "Set the contents of memory starting from the specified" +
			" address. The values to assign should be a series of" +
			" space-separated byte values.",
		Usage: "memory set <address> <byte> [<byte> ...]",
		Data:  (*Host).cmdMemorySet,
	})
	me.AddCommand(cmd.CommandDescriptor{
		Name:  "copy",
		Brief: "Copy memory",
		Description: "Copy memory from one range of addresses to another. You" +
			" must specify the destination address, the first byte of the source" +
			" address, and the last byte of the source address.",
		Usage: "memory copy <dst addr> <src addr begin> <src addr end>",
		Data:  (*Host).cmdMemoryCopy,
	})

	root.AddCommand(cmd.CommandDescriptor{
		Name:  "opcode",
		Brief: "Display opcode table entries",
		Description: "Display the dispatch table entry for an opcode byte, or" +
			" every variant of a mnemonic. Mnemonics may be abbreviated to any" +
			" unambiguous prefix.",
		Usage: "opcode <byte>|<mnemonic>",
		Data:  (*Host).cmdOpcode,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "quit",
		Brief:       "Quit the program",
		Description: "Quit the program.",
		Usage:       "quit",
		Data:        (*Host).cmdQuit,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "register",
		Brief: "View or change register values",
		Description: "When used without arguments, this command displays the current" +
			" contents of the CPU registers.  When used with arguments, this" +
			" command changes the value of a register or one of the CPU's status" +
			" flags. Allowed register names include A, X, Y, PC and SP. Allowed status" +
			" flag names include N (Negative), V (Overflow), B (Break), D (Decimal)," +
			" I (InterruptDisable), Z (Zero) and C (Carry).",
		Usage: "register [<name> <value>]",
		Data:  (*Host).cmdRegister,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "reset",
		Brief: "Reset the CPU",
		Description: "Reinitialize the CPU registers and clear a halt. The" +
			" program counter is set to the specified address, or to the" +
			" current program counter if none is given.",
		Usage: "reset [<address>]",
		Data:  (*Host).cmdReset,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "set",
		Brief: "Set a configuration variable",
		Description: "Set the value of a configuration variable. To see the" +
			" current values of all configuration variables, type set" +
			" without any arguments.",
		Usage: "set [<var> <value>]",
		Data:  (*Host).cmdSet,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "step",
		Brief: "Step the CPU",
		Description: "Decode the instruction at the program counter and advance" +
			" past it. No instruction semantics are applied: jumps, branches" +
			" and register updates are not performed. Stepping stops on a bus" +
			" error, a KIL instruction, a breakpoint, or Ctrl-C. The number of" +
			" steps may be specified as an option.",
		Usage: "step [<count>]",
		Data:  (*Host).cmdStep,
	})

	// Add command shortcuts.
	root.AddShortcut("ba", "breakpoint add")
	root.AddShortcut("br", "breakpoint remove")
	root.AddShortcut("bl", "breakpoint list")
	root.AddShortcut("be", "breakpoint enable")
	root.AddShortcut("bd", "breakpoint disable")
	root.AddShortcut("d", "disassemble")
	root.AddShortcut("dc", "decode")
	root.AddShortcut("e", "evaluate")
	root.AddShortcut("m", "memory dump")
	root.AddShortcut("mc", "memory copy")
	root.AddShortcut("ms", "memory set")
	root.AddShortcut("o", "opcode")
	root.AddShortcut("r", "register")
	root.AddShortcut("rom", "bank rom")
	root.AddShortcut("s", "step")
	root.AddShortcut("?", "help")
	root.AddShortcut(".", "register")

	cmds = root
}
