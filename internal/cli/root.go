package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/fitlog/internal/storage"
	"github.com/julianstephens/fitlog/internal/validation"
)

// Context is passed to every command's Run method.
type Context struct {
	Store     storage.Gateway
	Repo      *storage.Repository
	Validator *validation.Validator

	// Out receives command output. Nil means stdout.
	Out io.Writer
	// Confirm asks a yes/no question. Nil means an interactive huh prompt.
	Confirm func(title string) (bool, error)
}

func NewContext(store storage.Gateway) *Context {
	return &Context{
		Store:     store,
		Repo:      storage.NewRepository(store),
		Validator: validation.New(),
	}
}

func (c *Context) Writer() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Writer(), format, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Writer(), args...)
}

// Ask returns true when skip is set, otherwise it prompts for confirmation.
func (c *Context) Ask(title string, skip bool) (bool, error) {
	if skip {
		return true, nil
	}
	if c.Confirm != nil {
		return c.Confirm(title)
	}

	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("interactive form error: %w", err)
	}
	return confirmed, nil
}
