package debugger

const (
	cmdStep      = "step"
	cmdContinue  = "continue"
	cmdMem       = "mem"
	cmdEnable    = "enable"
	cmdDisable   = "disable"
	cmdNext      = "next"
	cmdRegisters = "registers"
	cmdPrinter   = "printer"
	cmdHelp      = "help"
	cmdExit      = "exit"
)

// commands in help order.
var commands = []string{
	cmdStep,
	cmdContinue,
	cmdMem,
	cmdEnable,
	cmdDisable,
	cmdNext,
	cmdRegisters,
	cmdPrinter,
	cmdHelp,
	cmdExit,
}

var alias = map[string]string{
	"s":    cmdStep,
	"c":    cmdContinue,
	"m":    cmdMem,
	"n":    cmdNext,
	"r":    cmdRegisters,
	"p":    cmdPrinter,
	"h":    cmdHelp,
	"?":    cmdHelp,
	"q":    cmdExit,
	"quit": cmdExit,
}

var usage = map[string]string{
	cmdMem: "[addr] [count]",
}

var help = map[string]string{
	cmdStep:      "Execute a single instruction",
	cmdContinue:  "Run until the next DEBUG pause or HALT",
	cmdMem:       "Dump memory, continuing from the last dump by default",
	cmdEnable:    "Pause at DEBUG instructions",
	cmdDisable:   "Ignore DEBUG instructions",
	cmdNext:      "Disassemble the instruction at the program counter",
	cmdRegisters: "Display the registers and CPU state",
	cmdPrinter:   "Display the printer output",
	cmdHelp:      "List the commands",
	cmdExit:      "Leave the debugger",
}

// lookup resolves a command or alias.
func lookup(word string) (cmd string, ok bool) {
	if cmd, ok = alias[word]; ok {
		return
	}

	_, ok = help[word]
	if ok {
		cmd = word
	}

	return
}
