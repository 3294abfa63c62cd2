// Command emawp is a small demonstration tool for the awp package: it
// parses one or two floating point operands (either as plain decimals or
// as MERA-400 internal word triplets), optionally runs a kernel
// operation against them, and prints the result. It is a Go-idiomatic
// descendant of emawp-tool.c, the C demo tool this package's algorithms
// were ported from.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/jfik/mera-awp/awp"
	"github.com/jfik/mera-awp/awpconfig"
	"github.com/jfik/mera-awp/internal/wordio"
)

type operation int

const (
	opNone operation = iota
	opNorm
	opAdd
	opSub
	opMul
	opDiv
)

var opNames = map[operation]string{
	opNone: "none",
	opNorm: "norm",
	opAdd:  "add",
	opSub:  "sub",
	opMul:  "mul",
	opDiv:  "div",
}

func main() {
	var (
		normFlag   = flag.Bool("n", false, "normalize (one operand)")
		addFlag    = flag.Bool("a", false, "float add (two operands)")
		subFlag    = flag.Bool("s", false, "float subtract (two operands)")
		mulFlag    = flag.Bool("m", false, "float multiply (two operands)")
		divFlag    = flag.Bool("d", false, "float divide (two operands)")
		intOp      = flag.String("i", "", "integer operation instead of float: add, sub, mul, div")
		roundFlag  = flag.Bool("round", false, "apply the bit-40 rounding guard in FromDouble")
		verbose    = flag.Bool("v", false, "print the mantissa * 2^exponent debug line")
		configPath = flag.String("config", "", "path to a TOML config file (default: per-OS config dir)")
	)
	flag.Usage = usage
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		errexit("%v", err)
	}
	if *roundFlag {
		cfg.Arithmetic.DefaultRound = true
	}

	if *intOp != "" {
		if err := runIntegerOp(*intOp, flag.Args()); err != nil {
			errexit("%v", err)
		}
		return
	}

	op, err := resolveOperation(*normFlag, *addFlag, *subFlag, *mulFlag, *divFlag)
	if err != nil {
		errexit("%v", err)
	}

	if err := runFloatOp(op, flag.Args(), cfg, *verbose); err != nil {
		errexit("%v", err)
	}
}

func resolveOperation(n, a, s, m, d bool) (operation, error) {
	chosen := []operation{}
	if n {
		chosen = append(chosen, opNorm)
	}
	if a {
		chosen = append(chosen, opAdd)
	}
	if s {
		chosen = append(chosen, opSub)
	}
	if m {
		chosen = append(chosen, opMul)
	}
	if d {
		chosen = append(chosen, opDiv)
	}
	if len(chosen) > 1 {
		return opNone, fmt.Errorf("only one operation can be specified")
	}
	if len(chosen) == 0 {
		return opNone, nil
	}
	return chosen[0], nil
}

func argsRequired(op operation) int {
	if op == opNorm {
		return 1
	}
	if op == opNone {
		return 1
	}
	return 2
}

// operand mirrors emawp-tool.c's struct num: an argument is either a
// plain decimal float or a register word triplet.
type operand struct {
	isWord  bool
	triplet [3]uint16
	value   float64
}

func parseOperands(need int, args []string) ([]operand, error) {
	switch {
	case len(args) == need:
		out := make([]operand, need)
		for i, a := range args {
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return nil, fmt.Errorf("bad floating point argument %q: %w", a, err)
			}
			out[i] = operand{value: v}
		}
		return out, nil

	case len(args) == 3*need:
		out := make([]operand, need)
		for i := 0; i < need; i++ {
			w, err := wordio.ParseTriplet(args[3*i], args[3*i+1], args[3*i+2])
			if err != nil {
				return nil, err
			}
			out[i] = operand{isWord: true, triplet: w}
		}
		return out, nil

	default:
		return nil, fmt.Errorf("wrong number of positional arguments: need %d float(s) or %d word(s)", need, 3*need)
	}
}

func runFloatOp(op operation, args []string, cfg *awpconfig.Config, verbose bool) error {
	need := argsRequired(op)
	operands, err := parseOperands(need, args)
	if err != nil {
		return err
	}

	regs := make([]*awp.Registers, len(operands))
	for i, o := range operands {
		var flags, r1, r2, r3 uint16
		r := awp.NewRegisters(&flags, &r1, &r2, &r3)
		if o.isWord {
			r1, r2, r3 = o.triplet[0], o.triplet[1], o.triplet[2]
		} else if err := r.FromDouble(o.value, cfg.Arithmetic.DefaultRound); err != nil {
			return fmt.Errorf("converting operand %d: %w", i+1, err)
		}
		regs[i] = r
		printRegisters(fmt.Sprintf("in%d", i+1), r, verbose)
	}

	if op == opNone {
		return nil
	}

	primary := regs[0]
	var opErr error
	switch op {
	case opNorm:
		opErr = primary.FloatNorm()
	case opAdd:
		opErr = primary.FloatAddSub(*regs[1].R1, *regs[1].R2, *regs[1].R3, +1)
	case opSub:
		opErr = primary.FloatAddSub(*regs[1].R1, *regs[1].R2, *regs[1].R3, -1)
	case opMul:
		opErr = primary.FloatMul(*regs[1].R1, *regs[1].R2, *regs[1].R3)
	case opDiv:
		opErr = primary.FloatDiv(*regs[1].R1, *regs[1].R2, *regs[1].R3)
	}

	printRegisters(opNames[op], primary, verbose)
	if opErr != nil {
		return opErr
	}
	return nil
}

func printRegisters(name string, r *awp.Registers, verbose bool) {
	value, _ := r.ToDouble()
	fmt.Printf("%4s:  %s  %s  %s  %.10f\n",
		name,
		wordio.FlagString(*r.Flags),
		wordio.FormatTriplet([3]uint16{*r.R1, *r.R2, *r.R3}),
		"->",
		value,
	)

	if verbose {
		m := int64(*r.R1)<<48 | int64(*r.R2)<<32 | int64(*r.R3&0xFF00)<<16
		e := int8(*r.R3 & 0x00FF)
		mf := math.Ldexp(float64(m), -63)
		fmt.Printf("                                             = %.10f * 2^%d\n", mf, e)
	}
}

func runIntegerOp(opName string, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("integer operations take exactly two dword arguments")
	}
	a, err := parseDword(args[0])
	if err != nil {
		return err
	}
	b, err := parseDword(args[1])
	if err != nil {
		return err
	}

	var flags uint16
	r1, r2 := uint16(a>>16), uint16(a)
	r := awp.NewRegisters(&flags, &r1, &r2, nil)

	switch strings.ToLower(opName) {
	case "add":
		if err := r.AddSub(uint16(b>>16), uint16(b), +1); err != nil {
			return err
		}
	case "sub":
		if err := r.AddSub(uint16(b>>16), uint16(b), -1); err != nil {
			return err
		}
	case "mul":
		if err := r.Mul(int16(uint16(b))); err != nil {
			return err
		}
	case "div":
		if err := r.Div(int16(uint16(b))); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown integer operation %q (want add, sub, mul, div)", opName)
	}

	fmt.Printf("%s:  %s  0x%04x 0x%04x\n", opName, wordio.FlagString(flags), r1, r2)
	return nil
}

// parseDword accepts either a "hi:lo" pair of 16-bit word literals or a
// plain signed/unsigned 32-bit decimal.
func parseDword(s string) (uint32, error) {
	if hi, lo, ok := strings.Cut(s, ":"); ok {
		h, err := wordio.ParseWord(hi)
		if err != nil {
			return 0, err
		}
		l, err := wordio.ParseWord(lo)
		if err != nil {
			return 0, err
		}
		return uint32(h)<<16 | uint32(l), nil
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad dword argument %q: %w", s, err)
	}
	return uint32(int32(v)), nil
}

func loadConfig(path string) (*awpconfig.Config, error) {
	if path == "" {
		return awpconfig.Load()
	}
	return awpconfig.LoadFrom(path)
}

func errexit(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage:

   emawp [-v] <arg>
   emawp [-v] -n <arg>
   emawp [-v] -a|-s|-m|-d <arg> <arg>
   emawp -i add|sub|mul|div <hi:lo> <hi:lo>
   emawp -h

If no operation is specified, argument is converted and printed. Other
float operations are:

   -n : normalize
   -a : add
   -s : subtract
   -m : multiply
   -d : divide

Arguments can either be a hex/binary/decimal word triplet representing a
floating point number in MERA-400 internal format (e.g. 0x4000 0x0000
0x0002), or a plain decimal floating point number. All operands of one
call must use the same form. "-v" makes computations verbose.

`)
	flag.PrintDefaults()
}
