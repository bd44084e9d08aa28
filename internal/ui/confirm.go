package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Questions asked before destructive actions.
const (
	ConfirmDeleteLink     = "Are you sure to delete this link ?"
	ConfirmDeleteCategory = "Delete this category, links will be not deleted"
)

// Confirmer asks a blocking yes/no question.
type Confirmer interface {
	Confirm(question string) bool
}

// PromptConfirmer asks on a terminal. Anything but y or yes is a no.
type PromptConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPromptConfirmer reads answers from in and writes questions to out.
func NewPromptConfirmer(in io.Reader, out io.Writer) *PromptConfirmer {
	return &PromptConfirmer{in: bufio.NewReader(in), out: out}
}

func (p *PromptConfirmer) Confirm(question string) bool {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)

	answer, err := p.in.ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// AutoConfirm answers every question the same way, for non-interactive use.
type AutoConfirm bool

func (a AutoConfirm) Confirm(string) bool {
	return bool(a)
}
