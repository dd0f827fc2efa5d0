// SPDX-License-Identifier: MIT

package screen

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrUnknownScreen is returned by Show for an unknown ID.
var ErrUnknownScreen = errors.New("screen: unknown screen")

// ID names a screen.
type ID int

// Screens, in menu order after Menu itself.
const (
	Menu ID = iota
	Calculator
	Generator
)

// String returns the screen title.
func (id ID) String() string {
	switch id {
	case Menu:
		return "Matrix Tools"
	case Calculator:
		return "Eigenvalue Calculator"
	case Generator:
		return "Matrix Generator"
	default:
		return fmt.Sprintf("Screen(%d)", int(id))
	}
}

// MenuEntries lists the screens reachable from the menu.
func MenuEntries() []ID { return []ID{Calculator, Generator} }

// Shell switches between the menu and the two screens. Screens are built on
// first use and kept, so their input survives a trip back to the menu.
type Shell struct {
	opts   []Option
	logger *zap.Logger
	active ID
	calc   *EigenCalculator
	gen    *MatrixGenerator
}

// NewShell starts on the menu.
func NewShell(opts ...Option) *Shell {
	return &Shell{opts: opts, logger: gatherSettings(opts...).logger, active: Menu}
}

// Active returns the visible screen.
func (s *Shell) Active() ID { return s.active }

// Show makes id the visible screen, constructing it on first use.
func (s *Shell) Show(id ID) error {
	switch id {
	case Menu:
	case Calculator:
		s.Calculator()
	case Generator:
		s.Generator()
	default:
		return fmt.Errorf("%v: %w", id, ErrUnknownScreen)
	}
	s.logger.Debug("show screen", zap.Stringer("from", s.active), zap.Stringer("to", id))
	s.active = id

	return nil
}

// Back returns to the menu.
func (s *Shell) Back() { _ = s.Show(Menu) }

// Calculator returns the calculator screen, constructing it on first use.
func (s *Shell) Calculator() *EigenCalculator {
	if s.calc == nil {
		s.calc = NewEigenCalculator(s.opts...)
	}

	return s.calc
}

// Generator returns the generator screen, constructing it on first use.
func (s *Shell) Generator() *MatrixGenerator {
	if s.gen == nil {
		s.gen = NewMatrixGenerator(s.opts...)
	}

	return s.gen
}
