package prompt

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

func (s *Session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Session) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

// ask prints the prompt and returns the next trimmed line. io.EOF means the
// input is exhausted.
func (s *Session) ask(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// askInt re-prompts until the line is a whole number
func (s *Session) askInt(prompt string) (int, error) {
	for {
		line, err := s.ask(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		s.println("Please enter a valid number.")
	}
}

// askOptionalInt returns ok false for an empty line and re-prompts on
// anything else that is not a whole number
func (s *Session) askOptionalInt(prompt string) (int, bool, error) {
	for {
		line, err := s.ask(prompt)
		if err != nil {
			return 0, false, err
		}
		if line == "" {
			return 0, false, nil
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, true, nil
		}
		s.println("Please enter a valid number.")
	}
}

// askIntInRange re-prompts until the number lies in [lo,hi]. An empty line
// returns def.
func (s *Session) askIntInRange(prompt string, lo, hi, def int) (int, error) {
	for {
		n, ok, err := s.askOptionalInt(prompt)
		if err != nil {
			return 0, err
		}
		if !ok {
			return def, nil
		}
		if n >= lo && n <= hi {
			return n, nil
		}
		s.printf("Value must be between %d and %d.\n", lo, hi)
	}
}

// askYesNo treats anything starting with y as yes
func (s *Session) askYesNo(prompt string) (bool, error) {
	line, err := s.ask(prompt)
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(line), "y"), nil
}

// askOptional returns nil for an empty line so callers can leave a field alone
func (s *Session) askOptional(prompt string) (*string, error) {
	line, err := s.ask(prompt)
	if err != nil || line == "" {
		return nil, err
	}
	return &line, nil
}

func parseInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil
}
