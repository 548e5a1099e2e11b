package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/mango-snake/internal/core"
)

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Grid.Cols <= 0 || c.Grid.Rows <= 0 {
		errs = append(errs, fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Grid.Cols, c.Grid.Rows))
	}

	t := c.Timing
	if t.BaseInterval <= 0 {
		errs = append(errs, fmt.Errorf("timing.base_interval must be positive, got %s", t.BaseInterval))
	}
	if t.MinInterval <= 0 {
		errs = append(errs, fmt.Errorf("timing.min_interval must be positive, got %s", t.MinInterval))
	}
	if t.MinInterval > t.BaseInterval {
		errs = append(errs, fmt.Errorf("timing.min_interval %s exceeds base_interval %s", t.MinInterval, t.BaseInterval))
	}
	if t.DecayStep < 0 {
		errs = append(errs, fmt.Errorf("timing.decay_step must not be negative, got %s", t.DecayStep))
	}

	errs = append(errs, c.validateStart()...)

	if utf8.RuneCountInString(c.Appearance.Character) != 1 {
		errs = append(errs, fmt.Errorf("appearance.character must be a single glyph, got %q", c.Appearance.Character))
	}
	if utf8.RuneCountInString(c.Appearance.Food) != 1 {
		errs = append(errs, fmt.Errorf("appearance.food must be a single glyph, got %q", c.Appearance.Food))
	}
	if c.Feedback.FlashFrames < 0 {
		errs = append(errs, fmt.Errorf("feedback.flash_frames must not be negative, got %d", c.Feedback.FlashFrames))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid snake config: %w", err)
	}
	return nil
}

// validateStart checks the initial body: in bounds, unique, connected,
// not filling the grid, and not heading into its own neck.
func (c SnakeConfig) validateStart() []error {
	var errs []error
	grid := c.GridModel()
	body := c.Start.Body

	if !c.Start.Direction.Valid() {
		errs = append(errs, fmt.Errorf("start.direction %v is not a unit vector", c.Start.Direction))
	}
	if len(body) == 0 {
		return append(errs, errors.New("start.body must have at least one segment"))
	}
	if grid.Size() > 0 && len(body) >= grid.Size() {
		errs = append(errs, fmt.Errorf("start.body has %d segments, grid only has %d cells", len(body), grid.Size()))
	}

	seen := make(map[core.Cell]bool, len(body))
	for i, seg := range body {
		if !grid.InBounds(seg) {
			errs = append(errs, fmt.Errorf("start.body[%d] %v is outside the grid", i, seg))
		}
		if seen[seg] {
			errs = append(errs, fmt.Errorf("start.body[%d] %v is a duplicate", i, seg))
		}
		seen[seg] = true
		if i > 0 && core.Abs(seg.X-body[i-1].X)+core.Abs(seg.Y-body[i-1].Y) != 1 {
			errs = append(errs, fmt.Errorf("start.body[%d] %v is not adjacent to %v", i, seg, body[i-1]))
		}
	}
	if len(body) > 1 && c.Start.Direction.Valid() && body[0].Add(c.Start.Direction) == body[1] {
		errs = append(errs, fmt.Errorf("start.direction %v points into the body", c.Start.Direction))
	}

	if f := c.Start.Food; f != nil {
		if !grid.InBounds(*f) {
			errs = append(errs, fmt.Errorf("start.food %v is outside the grid", *f))
		}
		if seen[*f] {
			errs = append(errs, fmt.Errorf("start.food %v is on the body", *f))
		}
	}
	return errs
}
