package classifier

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/chess-vn/tierank/internal/domains/entities"
	"github.com/chess-vn/tierank/pkg/logging"
	"github.com/chess-vn/tierank/pkg/tiers"
	"go.uber.org/zap"
)

type App struct {
	config Config
	tables map[string]tiers.Table
	in     *bufio.Reader
	out    io.Writer

	titleStyle lipgloss.Style
}

func New(config Config, tables map[string]tiers.Table, in io.Reader, out io.Writer) *App {
	renderer := lipgloss.NewRenderer(out)
	return &App{
		config:     config,
		tables:     tables,
		in:         bufio.NewReader(in),
		out:        out,
		titleStyle: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A")),
	}
}

// Run plays one prompt sequence for the named mode and prints its result.
// An empty name or an unknown menu option is reported to the user and is not
// an error.
func (app *App) Run(mode string) error {
	cfg, ok := app.config.Modes[mode]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
	table, ok := app.tables[cfg.Table]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTable, cfg.Table)
	}
	result, err := template.New(mode).Parse(cfg.Result)
	if err != nil {
		return fmt.Errorf("failed to parse result format: %w", err)
	}

	app.banner(cfg)

	s := newSession(mode, cfg, table, app.in, app.out)
	logging.Info("Run started", zap.String("runId", s.id), zap.String("mode", mode))

	player, err := s.play()
	switch {
	case errors.Is(err, ErrEmptyName):
		fmt.Fprintln(app.out, cfg.EmptyName)
		return nil
	case errors.Is(err, ErrInvalidOption):
		fmt.Fprintln(app.out, cfg.InvalidOption)
		return nil
	case err != nil:
		logging.Error("Run failed", zap.String("runId", s.id), zap.Error(err))
		return err
	}
	return app.print(result, player)
}

func (app *App) banner(cfg Mode) {
	fmt.Fprintln(app.out, app.titleStyle.Render(cfg.Title))
	fmt.Fprintln(app.out, cfg.Intro)
	fmt.Fprintln(app.out)
}

func (app *App) print(result *template.Template, player entities.Player) error {
	if err := result.Execute(app.out, player); err != nil {
		return fmt.Errorf("failed to print result: %w", err)
	}
	fmt.Fprintln(app.out)
	return nil
}
