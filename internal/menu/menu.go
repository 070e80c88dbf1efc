// Package menu implements a minimal interactive numbered menu for terminal
// front ends.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type option struct {
	tag      string
	callback func()
}

// Menu is a numbered option list driven by line input.
type Menu struct {
	in      *bufio.Scanner
	out     io.Writer
	options []option
	stopped bool
}

// New creates a menu reading selections from in and printing to out.
func New(in io.Reader, out io.Writer) *Menu {
	return &Menu{in: bufio.NewScanner(in), out: out}
}

// Add appends an option; options are numbered in insertion order.
func (m *Menu) Add(tag string, callback func()) {
	m.options = append(m.options, option{tag: tag, callback: callback})
}

// Stop makes Run return after the current callback completes.
func (m *Menu) Stop() {
	m.stopped = true
}

// Run shows the menu and dispatches selections until Stop is called or the
// input is exhausted.
func (m *Menu) Run() {
	for !m.stopped {
		fmt.Fprintln(m.out, "------------------------")
		for i, opt := range m.options {
			fmt.Fprintf(m.out, "%d) %s\n", i+1, opt.tag)
		}
		fmt.Fprintln(m.out, "------------------------")

		choice, ok := m.PromptInt("Select: ")
		if !ok {
			return
		}
		if choice < 1 || choice > len(m.options) {
			fmt.Fprintln(m.out, "Invalid option.")
			continue
		}
		fmt.Fprintln(m.out)
		m.options[choice-1].callback()
		fmt.Fprintln(m.out)
	}
}

// PromptLine prints prompt and returns the next input line; ok is false when
// the input is exhausted.
func (m *Menu) PromptLine(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// PromptInt prompts until an integer is entered; ok is false when the input
// is exhausted.
func (m *Menu) PromptInt(prompt string) (int, bool) {
	for {
		text, ok := m.PromptLine(prompt)
		if !ok {
			return 0, false
		}
		value, err := strconv.Atoi(text)
		if err != nil {
			fmt.Fprintln(m.out, "Enter a number.")
			continue
		}
		return value, true
	}
}

// PromptIntDefault behaves like PromptInt but returns fallback on an empty
// line.
func (m *Menu) PromptIntDefault(prompt string, fallback int) (int, bool) {
	for {
		text, ok := m.PromptLine(prompt)
		if !ok {
			return 0, false
		}
		if text == "" {
			return fallback, true
		}
		value, err := strconv.Atoi(text)
		if err != nil {
			fmt.Fprintln(m.out, "Enter a number.")
			continue
		}
		return value, true
	}
}

// Select prompts for one of the supplied labels and returns its index; ok is
// false when the input is exhausted.
func (m *Menu) Select(prompt string, labels []string) (int, bool) {
	for {
		for i, label := range labels {
			fmt.Fprintf(m.out, "  %d - %s\n", i+1, label)
		}
		choice, ok := m.PromptInt(prompt)
		if !ok {
			return 0, false
		}
		if choice >= 1 && choice <= len(labels) {
			return choice - 1, true
		}
		fmt.Fprintln(m.out, "Invalid option.")
	}
}
