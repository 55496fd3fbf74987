package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"
)

func main() {
	log.SetFlags(0)
	opts, err := parseArgs(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	s, err := newSession(opts.config)
	if err != nil {
		log.Fatal(err)
	}

	for _, arg := range opts.args {
		run(s, os.Stdout, arg)
	}
	std := len(opts.args) == 0
	if opts.in == "" && std && term.IsTerminal(int(os.Stdin.Fd())) {
		if err := interactive(s, opts.Prompt); err != nil {
			log.Fatal(err)
		}
		return
	}
	f, err := infile(opts.in, std)
	if err != nil {
		log.Fatal(err)
	}
	if f == nil {
		return
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		run(s, os.Stdout, sc.Text())
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}

// run executes one line in the session and writes its output or error to w.
func run(s *session, w io.Writer, line string) {
	out, err := s.exec(line)
	if err != nil {
		fmt.Fprintln(w, err)
		return
	}
	if out != "" {
		fmt.Fprintln(w, out)
	}
}

// interactive runs a prompt on the terminal attached to stdin until EOF.
func interactive(s *session, prompt string) (err error) {
	fd := int(os.Stdin.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := term.Restore(fd, old); err == nil {
			err = rerr
		}
	}()
	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, prompt)
	return repl(s, t)
}

// repl reads lines from t and runs each one until EOF.
func repl(s *session, t *term.Terminal) error {
	for {
		line, err := t.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		run(s, t, line)
	}
}

func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}
