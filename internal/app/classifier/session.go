package classifier

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/chess-vn/tierank/internal/domains/entities"
	"github.com/chess-vn/tierank/pkg/logging"
	"github.com/chess-vn/tierank/pkg/tiers"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// session is a single prompt sequence: name, stats, menu choice.
type session struct {
	id    string
	mode  string
	cfg   Mode
	table tiers.Table
	in    *bufio.Reader
	out   io.Writer
}

func newSession(mode string, cfg Mode, table tiers.Table, in *bufio.Reader, out io.Writer) *session {
	return &session{
		id:    uuid.NewString(),
		mode:  mode,
		cfg:   cfg,
		table: table,
		in:    in,
		out:   out,
	}
}

func (s *session) play() (entities.Player, error) {
	player := entities.Player{RunId: s.id}

	name, err := s.prompt(s.cfg.NamePrompt)
	if err != nil {
		return player, err
	}
	player.Name = strings.TrimSpace(name)
	if player.Name == "" {
		return player, ErrEmptyName
	}

	for _, field := range s.cfg.Stats {
		raw, err := s.prompt(field.Prompt)
		if err != nil {
			return player, err
		}
		player.Stats = append(player.Stats, entities.ParseStat(raw))
	}
	s.echo(player)

	line, err := s.prompt(s.menu())
	if err != nil {
		return player, err
	}
	choice, ok := s.choose(line)
	if !ok {
		logging.Warn("Invalid menu option",
			zap.String("runId", s.id),
			zap.String("input", line),
		)
		return player, ErrInvalidOption
	}

	player.Score = s.score(player.Stats)
	player.Tier = s.classify(player.Score)
	logging.Info("Player classified",
		zap.String("runId", s.id),
		zap.String("mode", s.mode),
		zap.Int("option", choice),
		zap.Stringer("score", player.Score),
		zap.String("tier", player.Tier),
	)
	return player, nil
}

// prompt blocks until a full line or EOF is read.
func (s *session) prompt(text string) (string, error) {
	fmt.Fprint(s.out, text)
	line, err := s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	logging.Debug("Prompt answered", zap.String("runId", s.id), zap.String("prompt", text))
	return line, nil
}

func (s *session) echo(player entities.Player) {
	fmt.Fprintln(s.out)
	fmt.Fprintf(s.out, s.cfg.Greeting+"\n", player.Name)
	for i, field := range s.cfg.Stats {
		fmt.Fprintf(s.out, "%s: %s\n", field.Label, player.Stats[i])
	}
	fmt.Fprintln(s.out)
}

func (s *session) menu() string {
	var b strings.Builder
	b.WriteString(s.cfg.MenuTitle)
	b.WriteString("\n")
	for _, option := range s.cfg.Options {
		fmt.Fprintf(&b, "  %d: %s\n", option.Choice, option.Label)
	}
	b.WriteString("Enter option: ")
	return b.String()
}

func (s *session) choose(line string) (int, bool) {
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, false
	}
	ok := slices.ContainsFunc(s.cfg.Options, func(option Option) bool {
		return option.Choice == choice
	})
	return choice, ok
}

func (s *session) score(stats []entities.Stat) entities.Stat {
	if s.cfg.Score == ScoreDifference {
		return stats[0].Sub(stats[1])
	}
	return stats[0]
}

// Every menu option runs the same lookup.
func (s *session) classify(score entities.Stat) string {
	if !score.Valid {
		return s.table.Fallback
	}
	return s.table.Classify(score.Value)
}
