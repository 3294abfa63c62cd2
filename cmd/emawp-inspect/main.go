// Command emawp-inspect is a small terminal form over the awp kernel: it
// lets an operator key in one or two register triplets, pick an
// operation, and watch the resulting registers, flags, and double value
// update live. It carries no kernel logic of its own — every computation
// is delegated to a scratch awp.Registers built fresh per run so nothing
// here is persisted between operations.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/jfik/mera-awp/awp"
	"github.com/jfik/mera-awp/awpconfig"
	"github.com/jfik/mera-awp/internal/wordio"
)

// inspector bundles the application and the widgets the run loop reads
// from and writes to, the way the teacher's TUI bundles its panels on a
// single struct.
type inspector struct {
	cfg *awpconfig.Config
	app *tview.Application

	op1Field *tview.InputField
	op2Field *tview.InputField
	opSelect *tview.DropDown
	result   *tview.TextView

	lastIntResult [2]uint16
	lastIntFlags  uint16
}

var operations = []string{"norm", "add", "sub", "mul", "div", "mw", "dw", "ad", "sd"}

func main() {
	cfg, err := awpconfig.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "emawp-inspect: %v\n", err)
		os.Exit(1)
	}

	insp := newInspector(cfg)
	if err := insp.app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "emawp-inspect: %v\n", err)
		os.Exit(1)
	}
}

func newInspector(cfg *awpconfig.Config) *inspector {
	insp := &inspector{
		cfg: cfg,
		app: tview.NewApplication(),
	}

	insp.initializeViews()
	insp.buildLayout()
	return insp
}

func (insp *inspector) initializeViews() {
	insp.op1Field = tview.NewInputField().
		SetLabel("operand 1 (triplet or decimal) ").
		SetFieldWidth(40).
		SetChangedFunc(func(string) { insp.recompute() })
	insp.op1Field.SetBorder(true).SetTitle(" Operand 1 ")

	insp.op2Field = tview.NewInputField().
		SetLabel("operand 2 (triplet or decimal) ").
		SetFieldWidth(40).
		SetChangedFunc(func(string) { insp.recompute() })
	insp.op2Field.SetBorder(true).SetTitle(" Operand 2 ")

	insp.opSelect = tview.NewDropDown().
		SetLabel("operation ").
		SetOptions(operations, func(string, int) { insp.recompute() })
	insp.opSelect.SetCurrentOption(0)
	insp.opSelect.SetBorder(true).SetTitle(" Operation ")

	insp.result = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	insp.result.SetBorder(true).SetTitle(" Result ")
}

func (insp *inspector) buildLayout() {
	inputs := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(insp.op1Field, 0, 1, true).
		AddItem(insp.op2Field, 0, 1, false).
		AddItem(insp.opSelect, 0, 1, false)

	root := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(inputs, 3, 0, true).
		AddItem(insp.result, 0, 1, false)

	insp.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlC {
			insp.app.Stop()
			return nil
		}
		return event
	})

	insp.app.SetRoot(root, true).SetFocus(insp.op1Field)
}

// recompute parses both operand fields fresh and runs the selected
// operation against a scratch Registers, writing the outcome to the
// result pane. Parse failures are shown inline rather than treated as
// fatal: the operator is still typing.
func (insp *inspector) recompute() {
	_, opName := insp.opSelect.GetCurrentOption()

	w1, err := insp.parseField(insp.op1Field.GetText())
	if err != nil {
		insp.result.SetText(fmt.Sprintf("[red]operand 1: %v[-]", err))
		return
	}

	var flags, r1, r2, r3 uint16
	r1, r2, r3 = w1[0], w1[1], w1[2]
	r := awp.NewRegisters(&flags, &r1, &r2, &r3)

	var opErr error
	switch opName {
	case "norm":
		opErr = r.FloatNorm()
	case "add", "sub", "mul", "div":
		w2, err := insp.parseField(insp.op2Field.GetText())
		if err != nil {
			insp.result.SetText(fmt.Sprintf("[red]operand 2: %v[-]", err))
			return
		}
		switch opName {
		case "add":
			opErr = r.FloatAddSub(w2[0], w2[1], w2[2], +1)
		case "sub":
			opErr = r.FloatAddSub(w2[0], w2[1], w2[2], -1)
		case "mul":
			opErr = r.FloatMul(w2[0], w2[1], w2[2])
		case "div":
			opErr = r.FloatDiv(w2[0], w2[1], w2[2])
		}
	case "mw", "dw", "ad", "sd":
		opErr = insp.runIntegerForm(opName)
		insp.renderIntegerResult(opName, opErr)
		return
	}

	insp.renderFloatResult(r, opErr)
}

func (insp *inspector) runIntegerForm(opName string) error {
	w1, err := insp.parseField(insp.op1Field.GetText())
	if err != nil {
		return err
	}
	w2, err := insp.parseField(insp.op2Field.GetText())
	if err != nil {
		return err
	}

	var flags uint16
	r1, r2 := w1[1], w1[2]
	r := awp.NewRegisters(&flags, &r1, &r2, nil)

	var opErr error
	switch opName {
	case "ad":
		opErr = r.AddSub(w2[1], w2[2], +1)
	case "sd":
		opErr = r.AddSub(w2[1], w2[2], -1)
	case "mw":
		opErr = r.Mul(int16(w2[2]))
	case "dw":
		opErr = r.Div(int16(w2[2]))
	}

	insp.lastIntResult = [2]uint16{r1, r2}
	insp.lastIntFlags = flags
	return opErr
}

func (insp *inspector) renderFloatResult(r *awp.Registers, opErr error) {
	value, _ := r.ToDouble()
	line := fmt.Sprintf("%s  %s  %.10f", wordio.FlagString(*r.Flags),
		wordio.FormatTriplet([3]uint16{*r.R1, *r.R2, *r.R3}), value)
	if opErr != nil {
		line += fmt.Sprintf("  [red](%v)[-]", opErr)
	}
	insp.result.SetText(line)
}

func (insp *inspector) renderIntegerResult(opName string, opErr error) {
	line := fmt.Sprintf("%s  %s  0x%04x 0x%04x", opName, wordio.FlagString(insp.lastIntFlags),
		insp.lastIntResult[0], insp.lastIntResult[1])
	if opErr != nil {
		line += fmt.Sprintf("  [red](%v)[-]", opErr)
	}
	insp.result.SetText(line)
}

// parseField accepts a whitespace-separated word triplet or a single
// decimal value, matching the CLI's mixed-form argument parsing.
func (insp *inspector) parseField(s string) ([3]uint16, error) {
	var fields [3]string
	n, _ := fmt.Sscanf(s, "%s %s %s", &fields[0], &fields[1], &fields[2])
	if n == 3 {
		return wordio.ParseTriplet(fields[0], fields[1], fields[2])
	}

	var value float64
	if _, err := fmt.Sscanf(s, "%g", &value); err != nil {
		return [3]uint16{}, fmt.Errorf("expected a word triplet or a decimal number")
	}

	var flags, r1, r2, r3 uint16
	r := awp.NewRegisters(&flags, &r1, &r2, &r3)
	if err := r.FromDouble(value, insp.cfg.Arithmetic.DefaultRound); err != nil {
		return [3]uint16{}, err
	}
	return [3]uint16{r1, r2, r3}, nil
}
