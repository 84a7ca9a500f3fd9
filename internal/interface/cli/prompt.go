// Package cli implements the interactive console: role login, per-role
// capability menus and the presenters that render views to the terminal.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Prompter reads line-oriented input. Every read echoes a label first; an
// io error (closed stdin included) surfaces to the shell, which treats it
// as a quit.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Line prompts for one trimmed line.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Int prompts for an integer, re-prompting on junk.
func (p *Prompter) Int(label string) (int, error) {
	for {
		line, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a number.")
			continue
		}
		return n, nil
	}
}

// Decimal prompts for a decimal amount, re-prompting on junk.
func (p *Prompter) Decimal(label string) (decimal.Decimal, error) {
	for {
		line, err := p.Line(label)
		if err != nil {
			return decimal.Zero, err
		}
		d, err := decimal.NewFromString(line)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter an amount.")
			continue
		}
		return d, nil
	}
}

// YesNo prompts for a y/n answer, re-prompting on junk.
func (p *Prompter) YesNo(label string) (bool, error) {
	for {
		line, err := p.Line(label + " (y/n)")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}
