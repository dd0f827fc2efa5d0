// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matrixtools/screen"
)

// interactiveCmd starts the text menu (also the default command)
var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Start the interactive menu",
	Long: `Presents the Matrix Tools menu on the terminal. Pick a screen by number,
fill in its fields at the prompts, and the result (or the error dialog) is
printed before returning to the menu. Enter q to quit.`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func runInteractive(cmd *cobra.Command, args []string) error {
	sh := screen.NewShell(screenOptions()...)

	return (&session{
		in:  bufio.NewScanner(cmd.InOrStdin()),
		out: cmd.OutOrStdout(),
		sh:  sh,
	}).loop()
}

// session drives a Shell from line-oriented input.
type session struct {
	in  *bufio.Scanner
	out io.Writer
	sh  *screen.Shell
}

// errQuit ends the loop without an error.
var errQuit = errors.New("quit")

func (s *session) loop() error {
	for {
		err := s.menu()
		switch {
		case errors.Is(err, errQuit), errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}
	}
}

// readLine prompts and returns the next trimmed line; io.EOF at end of input.
func (s *session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return strings.TrimSpace(s.in.Text()), nil
}

func (s *session) menu() error {
	s.sh.Back()
	fmt.Fprintln(s.out, screen.Menu)
	for i, id := range screen.MenuEntries() {
		fmt.Fprintf(s.out, "  %d) %s\n", i+1, id)
	}
	fmt.Fprintln(s.out, "  q) Quit")

	choice, err := s.readLine("> ")
	if err != nil {
		return err
	}
	if choice == "q" || choice == "quit" {
		return errQuit
	}
	n, err := strconv.Atoi(choice)
	entries := screen.MenuEntries()
	if err != nil || n < 1 || n > len(entries) {
		fmt.Fprintf(s.out, "unknown choice %q\n\n", choice)
		return nil
	}
	id := entries[n-1]
	if err = s.sh.Show(id); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "\n%s\n", id)

	switch id {
	case screen.Calculator:
		err = s.calculator()
	case screen.Generator:
		err = s.generator()
	}
	var alert *screen.Alert
	if errors.As(err, &alert) {
		fmt.Fprintf(s.out, "[%s] %s\n\n", alert.Title, alert.Message)
		return nil
	}

	return err
}

func (s *session) calculator() error {
	c := s.sh.Calculator()
	line, err := s.readLine(fmt.Sprintf("Matrix size (1-%d) [%d]: ", c.MaxSize(), c.Size()))
	if err != nil {
		return err
	}
	if line != "" {
		n, convErr := strconv.Atoi(line)
		if convErr != nil {
			n = 0
		}
		if err = c.SetSize(n); err != nil {
			return err
		}
	}
	for i := 0; i < c.Size(); i++ {
		line, err = s.readLine(fmt.Sprintf("Row %d: ", i+1))
		if err != nil {
			return err
		}
		cells := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
		for j := 0; j < c.Size(); j++ {
			cell := ""
			if j < len(cells) {
				cell = cells[j]
			}
			if err = c.SetCell(i, j, cell); err != nil {
				return err
			}
		}
	}

	res, err := c.Calculate()
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s\n\n", res.Text)

	return nil
}

func (s *session) generator() error {
	g := s.sh.Generator()
	line, err := s.readLine("Eigenvalues (e.g. 2, 3): ")
	if err != nil {
		return err
	}
	g.SetEigenvalues(line)

	fmt.Fprintln(s.out, "Eigenvectors, one per line; blank line to finish (blank first line keeps the current text):")
	var lines []string
	for {
		line, err = s.readLine("  ")
		if errors.Is(err, io.EOF) && len(lines) > 0 {
			break
		}
		if err != nil {
			return err
		}
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	if len(lines) > 0 {
		g.SetEigenvectors(strings.Join(lines, "\n"))
	}

	res, err := g.Generate()
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s\n\n", res.Text)

	return nil
}
