package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

const (
	colorRed    = "31"
	colorGreen  = "32"
	colorYellow = "33"
	colorBlue   = "34"
)

// Terminal prompts for answers and prints drill feedback. It is not a logger.
type Terminal struct {
	out   io.Writer
	in    *bufio.Reader
	color bool
}

// New wraps in/out. Colour is used only when out is a terminal and noColor is false.
func New(in io.Reader, out io.Writer, noColor bool) *Terminal {
	color := false
	if f, ok := out.(*os.File); ok && !noColor {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			color = true
			out = colorable.NewColorable(f)
		}
	}
	return &Terminal{out: out, in: bufio.NewReader(in), color: color}
}

// Stdio is New over the process's standard streams.
func Stdio(noColor bool) *Terminal {
	return New(os.Stdin, os.Stdout, noColor)
}

// Prompt shows key and reads one line, without its line ending.
// io.EOF is returned only when no input at all was read.
func (t *Terminal) Prompt(key string) (string, error) {
	fmt.Fprintf(t.out, "%s ", key)
	line, err := t.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Correct acknowledges a right answer with the pass score.
func (t *Terminal) Correct(done, total int) {
	fmt.Fprintf(t.out, "%s  Good! (%d/%d)\n\n", t.paint(colorGreen, "✓"), done, total)
}

// FullLoop announces that every key was answered in this pass.
func (t *Terminal) FullLoop() {
	fmt.Fprintf(t.out, "%s\n\n", t.paint(colorBlue, ">< >< FULL LOOP >< ><"))
}

// Wrong reveals the accepted answers.
func (t *Terminal) Wrong(answers []string) {
	painted := make([]string, len(answers))
	for i, a := range answers {
		painted[i] = t.paint(colorYellow, a)
	}
	fmt.Fprintf(t.out, "%s  %s was the right answer.\n\n", t.paint(colorRed, "✘"), strings.Join(painted, " or "))
}

// Summary prints the totals of a finished drill.
func (t *Terminal) Summary(rounds, correct, passes int) {
	if rounds == 0 {
		return
	}
	fmt.Fprintf(t.out, "\n%d/%d correct (%.0f%%), %d full loops\n", correct, rounds, 100*float64(correct)/float64(rounds), passes)
}

func (t *Terminal) paint(code, s string) string {
	if !t.color {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}
