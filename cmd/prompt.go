package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"catalog-manager/core/fuzzy"
	"catalog-manager/core/reconcile"

	"github.com/mattn/go-isatty"
)

// terminalPrompt asks import questions on a terminal.
type terminalPrompt struct {
	in  *bufio.Reader
	out io.Writer
}

func newTerminalPrompt(in io.Reader, out io.Writer) *terminalPrompt {
	return &terminalPrompt{in: bufio.NewReader(in), out: out}
}

// isInteractive reports whether stdin is a terminal.
func isInteractive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (p *terminalPrompt) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	answer, err := p.in.ReadString('\n')
	if err != nil && answer == "" {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

func (p *terminalPrompt) SelectCandidate(_ context.Context, query string, candidates []fuzzy.Candidate) (string, bool, error) {
	fmt.Fprintf(p.out, "\n%q\n", query)
	if len(candidates) == 0 {
		fmt.Fprintln(p.out, "  no close match, ignored")
		return "", false, nil
	}
	fmt.Fprintln(p.out, candidatesTable(candidates))

	for {
		answer, err := p.ask(fmt.Sprintf("Pick 1-%d, or Enter to ignore: ", len(candidates)))
		if err != nil {
			return "", false, err
		}
		if answer == "" {
			return "", false, nil
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= 1 && n <= len(candidates) {
			return candidates[n-1].Record.ID, true, nil
		}
		fmt.Fprintln(p.out, "  not a listed choice")
	}
}

func (p *terminalPrompt) ConfirmPreview(_ context.Context, preview *reconcile.Preview) (reconcile.Decision, error) {
	answer, err := p.ask(fmt.Sprintf("\n%s\nType 'yes' to continue: ", preview.Summary()))
	if err != nil {
		return reconcile.DecisionCancel, err
	}
	if answer == "yes" {
		return reconcile.DecisionProceed, nil
	}
	return reconcile.DecisionCancel, nil
}

func (p *terminalPrompt) ChooseStrategy(_ context.Context, preview *reconcile.Preview) (reconcile.Decision, error) {
	question := fmt.Sprintf("%d records are already marked. [m]erge, [o]verwrite or [c]ancel? ", preview.Existing)
	for {
		answer, err := p.ask(question)
		if err != nil {
			return reconcile.DecisionCancel, err
		}
		switch strings.ToLower(answer) {
		case "m", "merge":
			return reconcile.DecisionMerge, nil
		case "o", "overwrite":
			return reconcile.DecisionOverwrite, nil
		case "c", "cancel", "":
			return reconcile.DecisionCancel, nil
		}
	}
}
