// Package cli implements the interactive terminal chat loop.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	askuc "github.com/kailas-cloud/counsellor/internal/usecase/ask"
)

const separatorWidth = 60

// Asker answers user questions.
type Asker interface {
	Ask(ctx context.Context, query string) (askuc.Answer, error)
}

type styles struct {
	banner lipgloss.Style
	prompt lipgloss.Style
	bot    lipgloss.Style
	errMsg lipgloss.Style
	rule   lipgloss.Style
}

// newStyles binds styles to out; non-terminal writers get plain text.
func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		banner: r.NewStyle().Bold(true),
		prompt: r.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		bot:    r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		errMsg: r.NewStyle().Foreground(lipgloss.Color("9")),
		rule:   r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// REPL reads questions line by line and prints answers until exit.
type REPL struct {
	asker  Asker
	in     io.Reader
	out    io.Writer
	org    string
	styles styles
}

// NewREPL creates a chat loop speaking for org.
func NewREPL(a Asker, in io.Reader, out io.Writer, org string) *REPL {
	return &REPL{asker: a, in: in, out: out, org: org, styles: newStyles(out)}
}

// Run loops until the user types exit or quit, input ends, or ctx is done.
// A failed question is reported and the loop keeps going.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, r.styles.banner.Render(r.org+" RAG Chatbot (no streaming). Type 'exit' to quit."))
	fmt.Fprintln(r.out)

	sc := bufio.NewScanner(r.in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		if err := ctx.Err(); err != nil {
			return nil //nolint:nilerr // interrupted by the user
		}

		fmt.Fprint(r.out, r.styles.prompt.Render("You:")+" ")
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			fmt.Fprintln(r.out)
			return nil
		}

		q := strings.TrimSpace(sc.Text())
		if q == "" {
			continue
		}
		if isExit(q) {
			return nil
		}

		r.answer(ctx, q)
	}
}

func (r *REPL) answer(ctx context.Context, q string) {
	ans, err := r.asker.Ask(ctx, q)
	if err != nil {
		fmt.Fprintln(r.out, r.styles.errMsg.Render("⚠️ Error: "+err.Error()))
		fmt.Fprintln(r.out, r.rule())
		return
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.styles.bot.Render(r.org+" Bot:")+" "+ans.Text)
	fmt.Fprintln(r.out, r.rule())
}

func (r *REPL) rule() string {
	return r.styles.rule.Render(strings.Repeat("-", separatorWidth))
}

func isExit(q string) bool {
	switch strings.ToLower(q) {
	case "exit", "quit":
		return true
	}
	return false
}

// AskOnce answers a single question and prints the reply to out.
func AskOnce(ctx context.Context, a Asker, out io.Writer, query string) error {
	ans, err := a.Ask(ctx, query)
	if err != nil {
		return fmt.Errorf("ask: %w", err)
	}
	fmt.Fprintln(out, ans.Text)
	return nil
}
