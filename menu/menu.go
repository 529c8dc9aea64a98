// Package menu implements the in-game settings screen
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/render"
)

// Result tells the game loop what to do after the menu closes
type Result int

const (
	ResultReturn Result = iota // Resume play
	ResultExit                 // End the game
)

func (r Result) String() string {
	if r == ResultExit {
		return "exit"
	}
	return "return"
}

// Option numbers following the five settings
const (
	optionReturn = engine.FieldCount + 1
	optionExit   = engine.FieldCount + 2
)

// Rows below the prompt
const (
	rowCurrent = constants.MenuPromptRow + 1
	rowEntry   = constants.MenuPromptRow + 2
	rowError   = constants.MenuPromptRow + 3
)

// Menu is the blocking settings screen
type Menu struct {
	r   render.Renderer
	src input.Source
}

// New creates a menu drawing to r and reading lines from src
func New(r render.Renderer, src input.Source) *Menu {
	return &Menu{r: r, src: src}
}

// Run shows the menu until the player returns to the game or exits.
// Settings are changed in place; a rejected value leaves the setting untouched.
// An interrupt from the keyboard counts as exit; a closed source as return.
func (m *Menu) Run(ctx context.Context, settings *engine.Settings) (Result, error) {
	m.drawOptions()

	for {
		line, err := m.readLine(ctx, constants.MenuPromptRow, constants.MenuPrompt)
		if done, res, err := m.finished(err); done {
			return res, err
		}

		m.r.ClearLine(rowCurrent)
		m.r.ClearLine(rowEntry)
		m.r.ClearLine(rowError)

		option, convErr := strconv.Atoi(strings.TrimSpace(line))
		switch {
		case convErr != nil || option < 1 || option > optionExit:
			m.showError(constants.MenuInvalidSelection)
		case option == optionReturn:
			return ResultReturn, nil
		case option == optionExit:
			return ResultExit, nil
		default:
			field := engine.Field(option - 1)
			if done, res, err := m.edit(ctx, settings, field); done {
				return res, err
			}
		}
	}
}

// edit prompts for a new value of one field
func (m *Menu) edit(ctx context.Context, settings *engine.Settings, field engine.Field) (bool, Result, error) {
	m.r.MoveCursor(rowCurrent, 0)
	m.r.DrawText(fmt.Sprintf(constants.MenuCurrentFormat, settings.Get(field)))
	m.r.Refresh()

	line, err := m.readLine(ctx, rowEntry, constants.MenuNewValuePrompt)
	if done, res, err := m.finished(err); done {
		return true, res, err
	}

	value, err := strconv.Atoi(strings.TrimSpace(line))
	if err == nil {
		err = settings.Set(field, value)
	}
	if err != nil {
		log.Printf("menu: rejected %s value %q: %v", field, line, err)
		m.showError(constants.MenuInvalidValue)
		return false, ResultReturn, nil
	}

	log.Printf("menu: %s set to %d", field, value)
	return false, ResultReturn, nil
}

// finished maps a read error to the menu's outcome
func (m *Menu) finished(err error) (bool, Result, error) {
	switch {
	case err == nil:
		return false, ResultReturn, nil
	case errors.Is(err, io.EOF):
		return true, ResultReturn, nil
	case errors.Is(err, input.ErrInterrupted):
		return true, ResultExit, nil
	default:
		return true, ResultExit, fmt.Errorf("menu input: %w", err)
	}
}

func (m *Menu) drawOptions() {
	m.r.Clear()
	for f := engine.Field(0); int(f) < engine.FieldCount; f++ {
		m.drawOption(int(f)+1, f.Label())
	}
	m.drawOption(optionReturn, constants.MenuReturnLabel)
	m.drawOption(optionExit, constants.MenuExitLabel)
	m.r.Refresh()
}

func (m *Menu) drawOption(n int, label string) {
	m.r.MoveCursor(n-1, 0)
	m.r.DrawText(strconv.Itoa(n) + ". " + label)
}

// readLine prompts on row and echoes typed text after the prompt
func (m *Menu) readLine(ctx context.Context, row int, prompt string) (string, error) {
	echo := func(partial string) {
		m.r.ClearLine(row)
		m.r.DrawText(prompt + partial)
		m.r.Refresh()
	}
	echo("")
	return m.src.ReadLine(ctx, echo)
}

func (m *Menu) showError(msg string) {
	m.r.MoveCursor(rowError, 0)
	m.r.DrawText(msg)
	m.r.Refresh()
}
