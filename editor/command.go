// SPDX-License-Identifier: EPL-2.0

package editor

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ik5/soundedit/effects"
)

// Op names a UI command.
type Op string

const (
	OpPlay      Op = "play"
	OpStop      Op = "stop"
	OpSetTrim   Op = "set-trim"
	OpClearTrim Op = "clear-trim"
	OpCopy      Op = "copy"
	OpPaste     Op = "paste"
	OpDelete    Op = "delete"
	OpEffect    Op = "effect"
	OpBytes     Op = "bytes"
)

// Command is one discrete UI event. Only the fields its Op needs are read.
type Command struct {
	Op         Op
	Start, End float64
	Effect     effects.Kind
	Format     string
}

func (c Command) String() string {
	switch c.Op {
	case OpSetTrim:
		return fmt.Sprintf("trim:%g:%g", c.Start, c.End)
	case OpEffect:
		return "effect:" + c.Effect.String()
	case OpBytes:
		return "bytes:" + c.Format
	default:
		return string(c.Op)
	}
}

// ParseCommand reads the textual form used on the command line:
//
//	play, stop, copy, paste, delete, clear-trim
//	trim:0.25:0.75   (or set-trim:0.25:0.75)
//	effect:echo
//	bytes:mp3
func ParseCommand(text string) (Command, error) {
	name, arg, _ := strings.Cut(strings.TrimSpace(text), ":")

	switch op := Op(strings.ToLower(name)); op {
	case OpPlay, OpStop, OpCopy, OpPaste, OpDelete, OpClearTrim:
		if arg != "" {
			return Command{}, fmt.Errorf("%w: %q takes no argument", ErrBadCommand, name)
		}
		return Command{Op: op}, nil

	case "trim", OpSetTrim:
		a, b, ok := strings.Cut(arg, ":")
		if !ok {
			return Command{}, fmt.Errorf("%w: %q wants start:end", ErrBadCommand, text)
		}
		start, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return Command{}, fmt.Errorf("%w: trim start: %w", ErrBadCommand, err)
		}
		end, err := strconv.ParseFloat(b, 64)
		if err != nil {
			return Command{}, fmt.Errorf("%w: trim end: %w", ErrBadCommand, err)
		}
		return Command{Op: OpSetTrim, Start: start, End: end}, nil

	case OpEffect:
		kind, err := effects.ParseKind(arg)
		if err != nil {
			return Command{}, fmt.Errorf("%w: %w", ErrBadCommand, err)
		}
		return Command{Op: OpEffect, Effect: kind}, nil

	case OpBytes:
		if arg == "" {
			arg = "wav"
		}
		return Command{Op: OpBytes, Format: arg}, nil
	}

	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

// Dispatch runs cmd against the session. Only OpBytes returns data.
func (s *Session) Dispatch(ctx context.Context, cmd Command) ([]byte, error) {
	switch cmd.Op {
	case OpPlay:
		return nil, s.Play()
	case OpStop:
		s.Stop()
	case OpSetTrim:
		s.SetTrim(cmd.Start, cmd.End)
	case OpClearTrim:
		s.ClearTrim()
	case OpCopy:
		s.Copy()
	case OpPaste:
		return nil, s.Paste(ctx)
	case OpDelete:
		return nil, s.Delete(ctx)
	case OpEffect:
		return nil, s.ApplyEffect(ctx, cmd.Effect)
	case OpBytes:
		return s.Bytes(cmd.Format)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Op)
	}

	return nil, nil
}
