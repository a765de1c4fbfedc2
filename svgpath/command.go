package svgpath

import (
	"fmt"
	"strconv"
)

// Command is a single path drawing command with its coordinate arguments.
// Op is the SVG command letter; uppercase means absolute coordinates,
// lowercase relative. Each Command carries exactly one argument group:
// repeated groups in the source are expanded into separate Commands during
// parsing, with extra groups after a moveto becoming linetos per the SVG
// grammar.
type Command struct {
	Op   byte
	Args []float64
}

// argCount returns the number of arguments one group of the command takes,
// or -1 for an unrecognized command letter.
func argCount(op byte) int {
	switch op {
	case 'M', 'm', 'L', 'l', 'T', 't':
		return 2
	case 'H', 'h', 'V', 'v':
		return 1
	case 'Z', 'z':
		return 0
	case 'C', 'c':
		return 6
	case 'S', 's', 'Q', 'q':
		return 4
	case 'A', 'a':
		return 7
	default:
		return -1
	}
}

// isCurve reports whether the command draws a curved segment.
func isCurve(op byte) bool {
	switch op {
	case 'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a':
		return true
	}
	return false
}

// ParseCommands parses an SVG path data string into drawing commands.
// It returns an error for unknown command letters, numbers appearing before
// the first command, malformed numbers, or argument groups of the wrong size.
func ParseCommands(d string) ([]Command, error) {
	s := &scanner{data: d}
	var cmds []Command

	for {
		s.skipSeparators()
		if s.eof() {
			return cmds, nil
		}

		op, ok := s.command()
		if !ok {
			return nil, fmt.Errorf("path data: expected command letter at offset %d", s.pos)
		}
		n := argCount(op)
		if n < 0 {
			return nil, fmt.Errorf("path data: unknown command %q at offset %d", op, s.pos-1)
		}

		if n == 0 {
			cmds = append(cmds, Command{Op: op})
			continue
		}

		// Read one or more argument groups for this command letter.
		groups := 0
		for {
			s.skipSeparators()
			if s.eof() || !startsNumber(s.peek()) {
				break
			}

			args := make([]float64, 0, n)
			for i := 0; i < n; i++ {
				s.skipSeparators()
				v, err := s.number()
				if err != nil {
					return nil, fmt.Errorf("path data: command %q: %w", op, err)
				}
				args = append(args, v)
			}

			groupOp := op
			if groups > 0 {
				// Extra groups after a moveto are implicit linetos.
				switch op {
				case 'M':
					groupOp = 'L'
				case 'm':
					groupOp = 'l'
				}
			}
			cmds = append(cmds, Command{Op: groupOp, Args: args})
			groups++
		}

		if groups == 0 {
			return nil, fmt.Errorf("path data: command %q has no arguments", op)
		}
	}
}

// scanner is a minimal lexer over path data.
type scanner struct {
	data string
	pos  int
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.data)
}

func (s *scanner) peek() byte {
	return s.data[s.pos]
}

func (s *scanner) skipSeparators() {
	for !s.eof() {
		switch s.data[s.pos] {
		case ' ', '\t', '\n', '\r', ',':
			s.pos++
		default:
			return
		}
	}
}

// command consumes a command letter, if one is next.
func (s *scanner) command() (byte, bool) {
	c := s.data[s.pos]
	if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
		s.pos++
		return c, true
	}
	return 0, false
}

func startsNumber(c byte) bool {
	return (c >= '0' && c <= '9') || c == '-' || c == '+' || c == '.'
}

// number consumes one floating point number. SVG allows numbers to run
// together ("1.5.5" is 1.5 followed by .5), so scanning stops at the first
// byte that cannot extend the current literal.
func (s *scanner) number() (float64, error) {
	start := s.pos
	if s.eof() || !startsNumber(s.peek()) {
		return 0, fmt.Errorf("expected number at offset %d", s.pos)
	}

	if c := s.peek(); c == '-' || c == '+' {
		s.pos++
	}

	digits := 0
	for !s.eof() && s.peek() >= '0' && s.peek() <= '9' {
		s.pos++
		digits++
	}
	if !s.eof() && s.peek() == '.' {
		s.pos++
		for !s.eof() && s.peek() >= '0' && s.peek() <= '9' {
			s.pos++
			digits++
		}
	}
	if digits == 0 {
		return 0, fmt.Errorf("malformed number at offset %d", start)
	}

	if !s.eof() && (s.peek() == 'e' || s.peek() == 'E') {
		s.pos++
		if !s.eof() && (s.peek() == '-' || s.peek() == '+') {
			s.pos++
		}
		expDigits := 0
		for !s.eof() && s.peek() >= '0' && s.peek() <= '9' {
			s.pos++
			expDigits++
		}
		if expDigits == 0 {
			return 0, fmt.Errorf("malformed exponent at offset %d", start)
		}
	}

	return parseFloat(s.data[start:s.pos])
}

func parseFloat(lit string) (float64, error) {
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed number %q", lit)
	}
	return v, nil
}
