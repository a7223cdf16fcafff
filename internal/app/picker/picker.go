package picker

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Option is one selectable row in a picker dropdown.
type Option struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// Loader fetches the candidate options for a level, scoped by the parent
// level's selected id (0 for the root level).
type Loader func(ctx context.Context, parentID int64) ([]Option, error)

// Level is one dropdown of a cascading chain. Filtering is in-memory over
// the loaded candidate list; the list itself is re-fetched only when the
// parent selection changes.
type Level struct {
	name     string
	loader   Loader
	options  []Option
	loaded   bool
	query    string
	selected *Option
}

// NewLevel creates a chain level with its scoped loader.
func NewLevel(name string, loader Loader) *Level {
	return &Level{name: name, loader: loader}
}

// Name returns the level identifier used by the chain API.
func (l *Level) Name() string { return l.name }

func (l *Level) reset() {
	l.options = nil
	l.loaded = false
	l.query = ""
	l.selected = nil
}

// matches applies the case-insensitive substring filter.
func (l *Level) matches() []Option {
	if l.query == "" {
		out := make([]Option, len(l.options))
		copy(out, l.options)
		return out
	}
	q := strings.ToLower(l.query)
	out := make([]Option, 0, len(l.options))
	for _, opt := range l.options {
		if strings.Contains(strings.ToLower(opt.Label), q) {
			out = append(out, opt)
		}
	}
	return out
}

// Chain is an ordered set of dependent picker levels. Selecting a value at
// level N clears every level below it and reloads level N+1's candidates
// scoped to the selection.
type Chain struct {
	mu     sync.Mutex
	levels []*Level
}

// NewChain builds a chain from root to leaf.
func NewChain(levels ...*Level) *Chain {
	return &Chain{levels: levels}
}

func (c *Chain) levelIndex(name string) (int, error) {
	for i, l := range c.levels {
		if l.name == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown picker level %q", name)
}

// Load fetches the root level's candidates. Deeper levels stay empty and
// disabled until their parent is selected.
func (c *Chain) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.levels) == 0 {
		return nil
	}
	root := c.levels[0]
	options, err := root.loader(ctx, 0)
	if err != nil {
		return err
	}
	for _, l := range c.levels {
		l.reset()
	}
	root.options = options
	root.loaded = true
	return nil
}

// SetQuery updates a level's filter text and returns the matching options.
// The second result reports whether the level's candidates are loaded; an
// empty match list on a loaded level means "no results found", which the
// caller renders explicitly. Editing the query abandons the level's
// current selection, so everything downstream is cleared too.
func (c *Chain) SetQuery(level, query string) ([]Option, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, err := c.levelIndex(level)
	if err != nil {
		return nil, false, err
	}
	l := c.levels[i]
	l.query = query
	if l.selected != nil {
		l.selected = nil
	}
	c.clearBelowLocked(i)
	return l.matches(), l.loaded, nil
}

// Select picks an option at a level, clears every downstream level, and
// loads the next level's candidates scoped to the selection.
func (c *Chain) Select(ctx context.Context, level string, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, err := c.levelIndex(level)
	if err != nil {
		return err
	}
	l := c.levels[i]
	var chosen *Option
	for idx := range l.options {
		if l.options[idx].ID == id {
			chosen = &l.options[idx]
			break
		}
	}
	if chosen == nil {
		return fmt.Errorf("option %d not loaded at level %q", id, level)
	}
	l.selected = chosen
	l.query = chosen.Label
	c.clearBelowLocked(i)

	if i+1 < len(c.levels) {
		next := c.levels[i+1]
		options, err := next.loader(ctx, chosen.ID)
		if err != nil {
			return err
		}
		next.options = options
		next.loaded = true
	}
	return nil
}

// Clear wipes a level's query and selection along with everything below.
func (c *Chain) Clear(level string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, err := c.levelIndex(level)
	if err != nil {
		return err
	}
	l := c.levels[i]
	l.query = ""
	l.selected = nil
	c.clearBelowLocked(i)
	return nil
}

// clearBelowLocked resets every level strictly below index i.
func (c *Chain) clearBelowLocked(i int) {
	for j := i + 1; j < len(c.levels); j++ {
		c.levels[j].reset()
	}
}

// Selection returns the selected option at a level, if any.
func (c *Chain) Selection(level string) (Option, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, err := c.levelIndex(level)
	if err != nil {
		return Option{}, false
	}
	if c.levels[i].selected == nil {
		return Option{}, false
	}
	return *c.levels[i].selected, true
}

// Options returns a level's currently matching options and whether the
// level's candidates have been loaded at all.
func (c *Chain) Options(level string) ([]Option, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, err := c.levelIndex(level)
	if err != nil {
		return nil, false
	}
	return c.levels[i].matches(), c.levels[i].loaded
}
