package main

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/zephyrtronium/scicalc"
)

// session is the state of one calculator front end: the angle mode, the last
// answer, and the memory register. It is not safe for concurrent use.
type session struct {
	degrees bool
	format  string
	echo    bool

	ans    float64
	hasAns bool
	mem    memory
}

func newSession(c config) (*session, error) {
	deg, err := c.degrees()
	if err != nil {
		return nil, err
	}
	return &session{degrees: deg, format: c.Format, echo: c.Echo}, nil
}

var errNoAns = errors.New("no previous answer")

// recallre matches the words replaced by session values in expressions.
var recallre = regexp.MustCompile(`(?i)\b(ans|mem)\b`)

const help = `enter an expression to evaluate it, or one of:
  deg, rad     take trigonometric arguments in degrees or radians
  m+ EXPR      add the value of EXPR to memory
  m- EXPR      subtract the value of EXPR from memory
  mr           show memory
  mc           clear memory
in expressions, ans is the last answer and mem is the memory.`

// exec runs one line of input. The result is the text to show, which may be
// empty.
func (s *session) exec(line string) (string, error) {
	line = strings.TrimSpace(line)
	cmd, rest := line, ""
	if k := strings.IndexFunc(line, isSpace); k >= 0 {
		cmd, rest = line[:k], strings.TrimSpace(line[k:])
	}
	switch cmd = strings.ToLower(cmd); cmd {
	case "":
		return "", nil
	case "deg":
		if rest == "" {
			s.degrees = true
			return "mode: degrees", nil
		}
	case "rad":
		if rest == "" {
			s.degrees = false
			return "mode: radians", nil
		}
	case "m+", "m-":
		p, v, err := s.eval(rest)
		if err != nil {
			return "", err
		}
		if cmd == "m+" {
			s.mem.add(v)
		} else {
			s.mem.sub(v)
		}
		return s.echoed(p) + "M = " + s.num(s.mem.recall()), nil
	case "mr":
		if rest == "" {
			return s.num(s.mem.recall()), nil
		}
	case "mc":
		if rest == "" {
			s.mem.clear()
			return "memory cleared", nil
		}
	case "help":
		if rest == "" {
			return help + "\nfunctions: " + strings.Join(scicalc.Functions(), " ") +
				"\nconstants: " + strings.Join(scicalc.Constants(), " "), nil
		}
	}
	p, v, err := s.eval(line)
	if err != nil {
		return "", err
	}
	s.ans, s.hasAns = v, true
	return s.echoed(p) + s.num(v), nil
}

// eval evaluates an expression after substituting ans and mem. It also returns
// the postfix form that was evaluated.
func (s *session) eval(src string) (scicalc.Postfix, float64, error) {
	var serr error
	src = recallre.ReplaceAllStringFunc(src, func(w string) string {
		var v float64
		switch strings.ToLower(w) {
		case "ans":
			if !s.hasAns {
				serr = errNoAns
			}
			v = s.ans
		case "mem":
			v = s.mem.recall()
		}
		if math.IsInf(v, 0) || math.IsNaN(v) {
			serr = fmt.Errorf("%s is %g", w, v)
		}
		return "(" + strconv.FormatFloat(v, 'f', -1, 64) + ")"
	})
	if serr != nil {
		return nil, 0, serr
	}
	p, err := scicalc.ToPostfix(src)
	if err != nil {
		return nil, 0, err
	}
	v, err := scicalc.EvalPostfix(p, s.degrees)
	return p, v, err
}

// echoed is the prefix showing p when echo is enabled.
func (s *session) echoed(p scicalc.Postfix) string {
	if !s.echo {
		return ""
	}
	return p.String() + " : "
}

func (s *session) num(v float64) string {
	return fmt.Sprintf(s.format, v)
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}
