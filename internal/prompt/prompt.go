// pattern: Imperative Shell

package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
)

var (
	// ErrInputClosed is returned when the input stream ends before an answer.
	ErrInputClosed = errors.New("confirmation input closed")
	// ErrInterrupted is returned when the user presses ctrl+c at a prompt.
	ErrInterrupted = errors.New("confirmation interrupted")
)

// Confirmer asks a yes/no question and blocks until it is answered.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Auto confirms every question without asking.
type Auto struct{}

// Confirm always returns true.
func (Auto) Confirm(string) (bool, error) {
	return true, nil
}

// Line asks each question through a short inline bubbletea program.
// A terminal is handed to the program as is. Any other reader is fed to
// the program one line per question, so later answers stay queued.
type Line struct {
	in    io.Reader
	lines *bufio.Reader
	out   io.Writer
}

// NewLine creates a line-based confirmer.
func NewLine(in io.Reader, out io.Writer) *Line {
	l := &Line{in: in, out: out}
	if f, ok := in.(term.File); !ok || !term.IsTerminal(f.Fd()) {
		l.lines = bufio.NewReader(in)
	}
	return l
}

// Confirm shows question and parses the submitted answer with ParseAnswer.
// A final unterminated line is accepted; end of input without any text is
// ErrInputClosed.
func (l *Line) Confirm(question string) (bool, error) {
	input := l.in
	if l.lines != nil {
		line, err := l.nextLine()
		if err != nil {
			return false, err
		}
		input = strings.NewReader(line)
	}

	p := tea.NewProgram(newAnswerModel(question), tea.WithInput(input), tea.WithOutput(l.out))
	final, err := p.Run()
	if errors.Is(err, tea.ErrInterrupted) {
		return false, ErrInterrupted
	}
	if err != nil {
		return false, fmt.Errorf("run prompt: %w", err)
	}

	m, ok := final.(answerModel)
	if !ok || !m.done {
		return false, ErrInputClosed
	}
	return ParseAnswer(m.answer), nil
}

// nextLine reads one answer and ends it with a carriage return, which the
// program reads as enter.
func (l *Line) nextLine() (string, error) {
	line, err := l.lines.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read answer: %w", err)
	}
	if err != nil && line == "" {
		return "", ErrInputClosed
	}
	return strings.TrimRight(line, "\r\n") + "\r", nil
}

// answerModel collects one line of text and quits on enter.
type answerModel struct {
	question string
	input    textinput.Model
	answer   string
	done     bool
}

func newAnswerModel(question string) answerModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Focus()
	return answerModel{question: question, input: ti}
}

func (m answerModel) Init() tea.Cmd {
	return nil
}

func (m answerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter, tea.KeyCtrlJ:
			m.answer = m.input.Value()
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC:
			return m, tea.Interrupt
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View keeps the answered question on screen once the program exits.
func (m answerModel) View() string {
	if m.done {
		return m.question + m.answer + "\n"
	}
	return m.question + m.input.View()
}

// ParseAnswer treats an empty answer, "y" or "Y" as yes and anything else as no.
func ParseAnswer(answer string) bool {
	switch strings.TrimSpace(answer) {
	case "", "y", "Y":
		return true
	default:
		return false
	}
}
