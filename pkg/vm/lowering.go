package vm

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"n2t.dev/toolchain/pkg/asm"
)

// Base register holding the segment's address for the four "pointer indirect" segments.
var segmentBase = map[SegmentType]string{
	Argument: "ARG", Local: "LCL", This: "THIS", That: "THAT",
}

// ----------------------------------------------------------------------------
// Vm Lowerer

// The Lowerer takes a 'vm.Program' (one or more already-parsed modules) and produces
// its 'asm.Program' counterpart.
//
// Modules are lowered in a deterministic (sorted by name) order so that two runs on the
// same input always produce byte-identical output, fresh labels are minted from a single
// counter shared across the whole program to avoid collisions across modules.
type Lowerer struct {
	program Program
	counter uint32
}

// Initializes and returns to the caller a brand new 'Lowerer' struct.
// Requires the argument 'vm.Program' to be non-nil.
func NewLowerer(p Program) Lowerer {
	return Lowerer{program: p}
}

// Triggers the lowering process on every module of the program, in name order.
func (l *Lowerer) Lowerer() (asm.Program, error) {
	program := asm.Program{}

	names := make([]string, 0, len(l.program))
	for name := range l.program {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		stem := strings.TrimSuffix(name, path.Ext(name))

		for _, op := range l.program[name] {
			instructions, err := l.lowerOperation(op, stem)
			if err != nil {
				return nil, fmt.Errorf("%s: %s", name, err)
			}
			program = append(program, instructions...)
		}
	}

	return program, nil
}

// Dispatches a single VM operation to its specialized handler.
func (l *Lowerer) lowerOperation(op Operation, stem string) ([]asm.Instruction, error) {
	switch tOp := op.(type) {
	case MemoryOp:
		return l.handleMemoryOp(tOp, stem)
	case ArithmeticOp:
		return l.handleArithmeticOp(tOp)
	case LabelDecl:
		return l.handleLabelDecl(tOp)
	case GotoOp:
		return l.handleGotoOp(tOp)
	case FuncDecl:
		return l.handleFuncDecl(tOp)
	case ReturnOp:
		return l.handleReturnOp(tOp)
	case FuncCallOp:
		return l.handleFuncCallOp(tOp)
	default:
		return nil, fmt.Errorf("unrecognized operation %T", op)
	}
}

// Mints a new program-wide unique label with the given prefix, used for comparison
// short-circuits and call return addresses (to avoid collisions between occurrences).
func (l *Lowerer) freshLabel(prefix string) string {
	l.counter++
	return fmt.Sprintf("%s_%d", prefix, l.counter)
}

// ----------------------------------------------------------------------------
// Stack access templates

// Pushes the value currently held in D onto the stack and advances SP.
func pushD() []asm.Instruction {
	return []asm.Instruction{
		asm.AInstruction{Location: "SP"},
		asm.CInstruction{Dest: "A", Comp: "M"},
		asm.CInstruction{Dest: "M", Comp: "D"},
		asm.AInstruction{Location: "SP"},
		asm.CInstruction{Dest: "M", Comp: "M+1"},
	}
}

// Decrements SP and loads the popped value into D, leaving A pointed at the freed slot.
func popToD() []asm.Instruction {
	return []asm.Instruction{
		asm.AInstruction{Location: "SP"},
		asm.CInstruction{Dest: "M", Comp: "M-1"},
		asm.CInstruction{Dest: "A", Comp: "M"},
		asm.CInstruction{Dest: "D", Comp: "M"},
	}
}

// Pushes the value held at the named built-in register (e.g. 'LCL', 'ARG') onto the stack.
func pushNamed(name string) []asm.Instruction {
	instructions := []asm.Instruction{
		asm.AInstruction{Location: name},
		asm.CInstruction{Dest: "D", Comp: "M"},
	}
	return append(instructions, pushD()...)
}

// Pushes a constant literal value onto the stack.
func pushConstant(k uint16) []asm.Instruction {
	instructions := []asm.Instruction{
		asm.AInstruction{Location: fmt.Sprint(k)},
		asm.CInstruction{Dest: "D", Comp: "A"},
	}
	return append(instructions, pushD()...)
}

// Reads/writes a direct memory cell (a raw address or a symbolic one, e.g. a static label).
func memDirect(operation OperationType, address string) []asm.Instruction {
	if operation == Push {
		instructions := []asm.Instruction{
			asm.AInstruction{Location: address},
			asm.CInstruction{Dest: "D", Comp: "M"},
		}
		return append(instructions, pushD()...)
	}

	instructions := popToD()
	return append(instructions,
		asm.AInstruction{Location: address},
		asm.CInstruction{Dest: "M", Comp: "D"},
	)
}

// Reads/writes a cell addressed indirectly through a base register plus an offset
// (used for argument/local/this/that, whose base is only known at runtime).
func memIndirect(operation OperationType, base string, offset uint16) []asm.Instruction {
	if operation == Push {
		return []asm.Instruction{
			asm.AInstruction{Location: fmt.Sprint(offset)},
			asm.CInstruction{Dest: "D", Comp: "A"},
			asm.AInstruction{Location: base},
			asm.CInstruction{Dest: "A", Comp: "D+M"},
			asm.CInstruction{Dest: "D", Comp: "M"},
			asm.AInstruction{Location: "SP"},
			asm.CInstruction{Dest: "A", Comp: "M"},
			asm.CInstruction{Dest: "M", Comp: "D"},
			asm.AInstruction{Location: "SP"},
			asm.CInstruction{Dest: "M", Comp: "M+1"},
		}
	}

	instructions := []asm.Instruction{
		asm.AInstruction{Location: fmt.Sprint(offset)},
		asm.CInstruction{Dest: "D", Comp: "A"},
		asm.AInstruction{Location: base},
		asm.CInstruction{Dest: "D", Comp: "D+M"},
		asm.AInstruction{Location: "R13"},
		asm.CInstruction{Dest: "M", Comp: "D"},
	}
	instructions = append(instructions, popToD()...)
	return append(instructions,
		asm.AInstruction{Location: "R13"},
		asm.CInstruction{Dest: "A", Comp: "M"},
		asm.CInstruction{Dest: "M", Comp: "D"},
	)
}

// ----------------------------------------------------------------------------
// Memory & arithmetic ops

// Specialized function to convert a 'vm.MemoryOp' to its asm counterpart.
func (l *Lowerer) handleMemoryOp(op MemoryOp, stem string) ([]asm.Instruction, error) {
	if op.Operation == Pop && op.Segment == Constant {
		return nil, fmt.Errorf("cannot 'pop' onto the 'constant' segment")
	}

	switch op.Segment {
	case Constant:
		return pushConstant(op.Offset), nil

	case Argument, Local, This, That:
		return memIndirect(op.Operation, segmentBase[op.Segment], op.Offset), nil

	case Pointer:
		if op.Offset > 1 {
			return nil, fmt.Errorf("invalid 'pointer' offset, got %d", op.Offset)
		}
		register := "THIS"
		if op.Offset == 1 {
			register = "THAT"
		}
		return memDirect(op.Operation, register), nil

	case Temp:
		if op.Offset > 7 {
			return nil, fmt.Errorf("invalid 'temp' offset, got %d", op.Offset)
		}
		return memDirect(op.Operation, fmt.Sprint(5+op.Offset)), nil

	case Static:
		return memDirect(op.Operation, fmt.Sprintf("%s.%d", stem, op.Offset)), nil

	default:
		return nil, fmt.Errorf("unrecognized segment '%s'", op.Segment)
	}
}

// Comp bit-codes used to implement the commutative binary ops directly on the stack.
var binaryComp = map[ArithOpType]string{Add: "D+M", And: "D&M", Or: "D|M"}

// Jump bit-codes used by the three comparison ops, keyed the same way as 'binaryComp'.
var comparisonJump = map[ArithOpType]string{Eq: "JEQ", Gt: "JGT", Lt: "JLT"}

// Specialized function to convert a 'vm.ArithmeticOp' to its asm counterpart.
func (l *Lowerer) handleArithmeticOp(op ArithmeticOp) ([]asm.Instruction, error) {
	switch op.Operation {
	case Add, And, Or:
		return l.binaryOp(binaryComp[op.Operation]), nil
	case Sub:
		return l.binaryOp("M-D"), nil
	case Neg:
		return l.unaryOp("-D"), nil
	case Not:
		return l.unaryOp("!D"), nil
	case Eq, Gt, Lt:
		return l.comparisonOp(comparisonJump[op.Operation]), nil
	default:
		return nil, fmt.Errorf("unrecognized arithmetic operation '%s'", op.Operation)
	}
}

// pop y into D, pop x leaving A at its slot, compute 'comp' (x, y available as M, D), push.
func (l *Lowerer) binaryOp(comp string) []asm.Instruction {
	instructions := popToD() // D = y
	instructions = append(instructions,
		asm.AInstruction{Location: "SP"},
		asm.CInstruction{Dest: "M", Comp: "M-1"},
		asm.CInstruction{Dest: "A", Comp: "M"}, // A = address of x
		asm.CInstruction{Dest: "D", Comp: comp},
	)
	return append(instructions, pushD()...)
}

// pop x into D, compute 'comp' unary, push.
func (l *Lowerer) unaryOp(comp string) []asm.Instruction {
	instructions := popToD()
	instructions = append(instructions, asm.CInstruction{Dest: "D", Comp: comp})
	return append(instructions, pushD()...)
}

// pop y into D, pop x leaving A at its slot, compare x and y and push -1/0 accordingly.
func (l *Lowerer) comparisonOp(jump string) []asm.Instruction {
	trueLabel, endLabel := l.freshLabel("COMPTRUE"), l.freshLabel("COMPEND")

	instructions := popToD() // D = y
	instructions = append(instructions,
		asm.AInstruction{Location: "SP"},
		asm.CInstruction{Dest: "M", Comp: "M-1"},
		asm.CInstruction{Dest: "A", Comp: "M"}, // A = address of x
		asm.CInstruction{Dest: "D", Comp: "M-D"},
		asm.AInstruction{Location: trueLabel},
		asm.CInstruction{Comp: "D", Jump: jump},
		asm.CInstruction{Dest: "D", Comp: "0"},
		asm.AInstruction{Location: endLabel},
		asm.CInstruction{Comp: "0", Jump: "JMP"},
		asm.LabelDecl{Name: trueLabel},
		asm.CInstruction{Dest: "D", Comp: "-1"},
		asm.LabelDecl{Name: endLabel},
	)
	return append(instructions, pushD()...)
}

// ----------------------------------------------------------------------------
// Control flow & function ops

// Specialized function to convert a 'vm.LabelDecl' to its asm counterpart.
func (l *Lowerer) handleLabelDecl(op LabelDecl) ([]asm.Instruction, error) {
	return []asm.Instruction{asm.LabelDecl{Name: op.Name}}, nil
}

// Specialized function to convert a 'vm.GotoOp' to its asm counterpart.
func (l *Lowerer) handleGotoOp(op GotoOp) ([]asm.Instruction, error) {
	if op.Jump == Unconditional {
		return []asm.Instruction{
			asm.AInstruction{Location: op.Label},
			asm.CInstruction{Comp: "0", Jump: "JMP"},
		}, nil
	}

	instructions := popToD()
	return append(instructions,
		asm.AInstruction{Location: op.Label},
		asm.CInstruction{Comp: "D", Jump: "JNE"},
	), nil
}

// Specialized function to convert a 'vm.FuncDecl' to its asm counterpart.
func (l *Lowerer) handleFuncDecl(op FuncDecl) ([]asm.Instruction, error) {
	instructions := []asm.Instruction{asm.LabelDecl{Name: op.Name}}
	for i := uint8(0); i < op.NLocal; i++ {
		instructions = append(instructions, pushConstant(0)...)
	}
	return instructions, nil
}

// Specialized function to convert a 'vm.ReturnOp' to its asm counterpart.
//
// Uses R14 to stash the callee's frame base ('LCL') and R13 to stash the return address,
// both read out before the frame's segment pointers are overwritten by the restore step.
func (l *Lowerer) handleReturnOp(op ReturnOp) ([]asm.Instruction, error) {
	frameMinus := func(offset string) []asm.Instruction {
		return []asm.Instruction{
			asm.AInstruction{Location: "R14"},
			asm.CInstruction{Dest: "D", Comp: "M"},
			asm.AInstruction{Location: offset},
			asm.CInstruction{Dest: "D", Comp: "D-A"},
			asm.CInstruction{Dest: "A", Comp: "D"},
			asm.CInstruction{Dest: "D", Comp: "M"},
		}
	}

	instructions := []asm.Instruction{
		asm.AInstruction{Location: "LCL"},
		asm.CInstruction{Dest: "D", Comp: "M"},
		asm.AInstruction{Location: "R14"},
		asm.CInstruction{Dest: "M", Comp: "D"}, // R14 = FRAME = LCL
	}
	instructions = append(instructions, frameMinus("5")...)
	instructions = append(instructions,
		asm.AInstruction{Location: "R13"},
		asm.CInstruction{Dest: "M", Comp: "D"}, // R13 = RET = *(FRAME-5)
	)

	instructions = append(instructions, popToD()...)
	instructions = append(instructions,
		asm.AInstruction{Location: "ARG"},
		asm.CInstruction{Dest: "A", Comp: "M"},
		asm.CInstruction{Dest: "M", Comp: "D"}, // *ARG = popped value
		asm.AInstruction{Location: "ARG"},
		asm.CInstruction{Dest: "D", Comp: "M+1"},
		asm.AInstruction{Location: "SP"},
		asm.CInstruction{Dest: "M", Comp: "D"}, // SP = ARG+1
	)

	restore := func(offset, dest string) []asm.Instruction {
		instructions := frameMinus(offset)
		return append(instructions,
			asm.AInstruction{Location: dest},
			asm.CInstruction{Dest: "M", Comp: "D"},
		)
	}
	instructions = append(instructions, restore("1", "THAT")...)
	instructions = append(instructions, restore("2", "THIS")...)
	instructions = append(instructions, restore("3", "ARG")...)
	instructions = append(instructions, restore("4", "LCL")...)

	instructions = append(instructions,
		asm.AInstruction{Location: "R13"},
		asm.CInstruction{Dest: "A", Comp: "M"},
		asm.CInstruction{Comp: "0", Jump: "JMP"}, // goto RET
	)
	return instructions, nil
}

// Produces the bootstrap sequence: sets 'SP' to its base address (256) and calls
// 'Sys.init' through the very same call-frame protocol used for any other call, rather
// than jumping to it directly (which would leave no frame for it to 'return' from).
func (l *Lowerer) Bootstrap() ([]asm.Instruction, error) {
	instructions := []asm.Instruction{
		asm.AInstruction{Location: "256"},
		asm.CInstruction{Dest: "D", Comp: "A"},
		asm.AInstruction{Location: "SP"},
		asm.CInstruction{Dest: "M", Comp: "D"},
	}

	call, err := l.handleFuncCallOp(FuncCallOp{Name: "Sys.init", NArgs: 0})
	if err != nil {
		return nil, err
	}
	return append(instructions, call...), nil
}

// Specialized function to convert a 'vm.FuncCallOp' to its asm counterpart.
func (l *Lowerer) handleFuncCallOp(op FuncCallOp) ([]asm.Instruction, error) {
	returnLabel := l.freshLabel("FUNC_RETURN")

	instructions := []asm.Instruction{
		asm.AInstruction{Location: returnLabel},
		asm.CInstruction{Dest: "D", Comp: "A"},
	}
	instructions = append(instructions, pushD()...)
	instructions = append(instructions, pushNamed("LCL")...)
	instructions = append(instructions, pushNamed("ARG")...)
	instructions = append(instructions, pushNamed("THIS")...)
	instructions = append(instructions, pushNamed("THAT")...)

	instructions = append(instructions,
		asm.AInstruction{Location: "SP"},
		asm.CInstruction{Dest: "D", Comp: "M"},
		asm.AInstruction{Location: fmt.Sprint(5 + int(op.NArgs))},
		asm.CInstruction{Dest: "D", Comp: "D-A"},
		asm.AInstruction{Location: "ARG"},
		asm.CInstruction{Dest: "M", Comp: "D"}, // ARG = SP-5-n

		asm.AInstruction{Location: "SP"},
		asm.CInstruction{Dest: "D", Comp: "M"},
		asm.AInstruction{Location: "LCL"},
		asm.CInstruction{Dest: "M", Comp: "D"}, // LCL = SP

		asm.AInstruction{Location: op.Name},
		asm.CInstruction{Comp: "0", Jump: "JMP"},

		asm.LabelDecl{Name: returnLabel},
	)
	return instructions, nil
}
