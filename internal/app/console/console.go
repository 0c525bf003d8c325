package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"payslipcalc/internal/domain/payroll"
)

const clearScreen = "\033[H\033[2J"

var errInputClosed = errors.New("input closed")

type Options struct {
	ClearScreen bool
	ExitDelay   time.Duration
}

// Console runs the interactive prompt, calculate, print and reload loop.
type Console struct {
	in   *bufio.Reader
	out  io.Writer
	opts Options
}

func New(in io.Reader, out io.Writer, opts Options) *Console {
	return &Console{in: bufio.NewReader(in), out: out, opts: opts}
}

// Run returns nil when the user exits or input ends.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.opts.ClearScreen {
			fmt.Fprint(c.out, clearScreen)
		}

		gross, err := c.askGrossSalary(ctx)
		if err != nil {
			return ignoreClosed(err)
		}
		advance, err := c.askAdvance(ctx)
		if err != nil {
			return ignoreClosed(err)
		}
		Print(c.out, payroll.CalculateNetSalary(gross, advance))

		fmt.Fprintln(c.out, "\nDo you want to reload the application or exit? (Enter R to Reload or any other key to exit))")
		answer, err := c.readLine()
		if err != nil && !errors.Is(err, errInputClosed) {
			return err
		}
		if !strings.EqualFold(strings.TrimSpace(answer), "R") {
			fmt.Fprintln(c.out, "Closing app...")
			return c.wait(ctx)
		}
	}
}

// Print writes the payslip lines in display order. The advance line only
// appears when an advance was requested.
func Print(out io.Writer, p payroll.Payslip) {
	d := p.Display()
	fmt.Fprintf(out, "\nNet Salary: %s\n", d.NetSalary)
	if p.ReceiveAdvance {
		fmt.Fprintf(out, "Advance Salary: %s\n", d.AdvanceSalary)
	}
	fmt.Fprintf(out, "INSS: %s\n", d.INSS)
	fmt.Fprintf(out, "IRRF: %s\n", d.IRRF)
}

func (c *Console) askGrossSalary(ctx context.Context) (decimal.Decimal, error) {
	for {
		if err := ctx.Err(); err != nil {
			return decimal.Zero, err
		}
		fmt.Fprintln(c.out, "Enter your salary: (0000.00)")
		line, err := c.readLine()
		if err != nil {
			return decimal.Zero, err
		}
		gross, err := payroll.ParseGrossSalary(line)
		if err == nil {
			return gross, nil
		}
		fmt.Fprintln(c.out, "Invalid salary, please try again.")
	}
}

func (c *Console) askAdvance(ctx context.Context) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		fmt.Fprintln(c.out, "Do you receive salary advance? (y/N)")
		line, err := c.readLine()
		if err != nil {
			return false, err
		}
		advance, err := payroll.ParseAdvanceAnswer(line)
		if err == nil {
			return advance, nil
		}
		fmt.Fprintln(c.out, "Invalid input. Please enter 'y' or 'N'.")
	}
}

// readLine has no length limit, so an oversized line is rejected by the
// parsers and re-prompted rather than ending the session. A final line
// without a newline is still returned.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", errInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) wait(ctx context.Context) error {
	if c.opts.ExitDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(c.opts.ExitDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func ignoreClosed(err error) error {
	if errors.Is(err, errInputClosed) {
		return nil
	}
	return err
}
