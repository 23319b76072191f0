package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"housing-advantage/models"
)

// Prompter asks questions on out and reads answers line by line from in.
type Prompter struct {
	in       *bufio.Reader
	out      io.Writer
	attempts int
}

func NewPrompter(in io.Reader, out io.Writer, attempts int) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, attempts: max(attempts, 1)}
}

// Line prints prompt and returns the next input line without surrounding
// whitespace. A final line without a newline is still returned; io.EOF is
// returned only when nothing was left to read.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Choose asks for a number between 1 and n, re-prompting on bad input.
// It gives up with models.ErrInvalidSelection once the attempts are used
// or the input ends.
func (p *Prompter) Choose(prompt string, n int) (int, error) {
	for attempt := 1; attempt <= p.attempts; attempt++ {
		line, err := p.Line(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, fmt.Errorf("%w: no input", models.ErrInvalidSelection)
			}
			return 0, err
		}
		choice, err := checkChoice(line, n)
		if err == nil {
			return choice, nil
		}
		fmt.Fprintf(p.out, "%v\n", err)
	}
	return 0, fmt.Errorf("%w: no valid choice after %d attempts", models.ErrInvalidSelection, p.attempts)
}

// checkChoice parses s as a 1-based index into n items.
func checkChoice(s string, n int) (int, error) {
	choice, err := strconv.Atoi(s)
	if err != nil || choice < 1 || choice > n {
		return 0, fmt.Errorf("%w: %q is not between 1 and %d", models.ErrInvalidSelection, s, n)
	}
	return choice, nil
}
