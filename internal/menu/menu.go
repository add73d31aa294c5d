// Package menu is the interactive terminal front end of the engine.
//
// The user picks a generator, a strategy and a size; the image is generated
// in the background and previewed with half-block characters. The menu is
// the only place that requires sizes divisible by 4.
package menu

import (
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fractkit/fract"
	"github.com/fractkit/fract/internal/imageio"
)

// ErrSize is returned by ValidateSize for sizes the menu does not accept.
var ErrSize = errors.New("menu: size must be a positive integer divisible by 4")

// ValidateSize parses s as an image side length.
func ValidateSize(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 || n%4 != 0 {
		return 0, fmt.Errorf("%w: %q", ErrSize, s)
	}
	return n, nil
}

type step int

const (
	chooseGenerator step = iota
	chooseStrategy
	enterSize
	generating
	showResult
)

const (
	listWidth  = 40
	listHeight = 14
)

// Config configures the menu.
type Config struct {
	// Out is the path the result is saved to. The extension selects the
	// format.
	Out string

	// Workers is passed to the engine. Zero keeps the engine default.
	Workers int

	// Save writes the result. Defaults to imageio.Save.
	Save func(path string, img image.Image) error
}

// Model is the Bubble Tea model of the menu.
type Model struct {
	cfg Config

	step   step
	width  int
	height int

	gens   list.Model
	strats list.Model
	size   textinput.Model
	spin   spinner.Model

	generator fract.Generator
	strategy  fract.Strategy
	pixels    int
	result    *fract.Buffer
	elapsed   time.Duration
	status    string
}

type choice struct {
	name, desc string
	index      int
}

func (c choice) Title() string       { return c.name }
func (c choice) Description() string { return c.desc }
func (c choice) FilterValue() string { return c.name }

var strategyDesc = map[fract.Strategy]string{
	fract.Sequential: "single goroutine",
	fract.Rows:       "one goroutine per band of rows",
	fract.Locked:     "interleaved rows behind one lock",
	fract.Tiles:      "64x64 tiles on a work-stealing pool",
	fract.Flat:       "flat pixel chunks on a work-stealing pool",
}

// done reports the end of a background generation.
type done struct {
	buf     *fract.Buffer
	elapsed time.Duration
	err     error
}

// New returns the menu at its first step.
func New(cfg Config) Model {
	if cfg.Out == "" {
		cfg.Out = "fract.png"
	}
	if cfg.Save == nil {
		cfg.Save = imageio.Save
	}

	gens := make([]list.Item, len(fract.Generators))
	for i, g := range fract.Generators {
		desc := "escape-time fractal"
		if g == fract.Noise {
			desc = "uniform random RGB"
		}
		gens[i] = choice{name: g.String(), desc: desc, index: i}
	}
	strats := make([]list.Item, len(fract.Strategies))
	for i, s := range fract.Strategies {
		strats[i] = choice{name: s.String(), desc: strategyDesc[s], index: i}
	}

	m := Model{cfg: cfg}
	m.gens = newList("Generator", gens)
	m.strats = newList("Strategy", strats)

	m.size = textinput.New()
	m.size.Placeholder = "512"
	m.size.CharLimit = 6
	m.size.Width = 10
	m.size.Prompt = "size: "

	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot
	m.spin.Style = titleStyle

	m.status = "choose a generator"
	return m
}

func newList(title string, items []list.Item) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), listWidth, listHeight)
	l.Title = title
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	return l
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		h := max(msg.Height-4, 4)
		m.gens.SetSize(min(msg.Width, listWidth), h)
		m.strats.SetSize(min(msg.Width, listWidth), h)
		return m, nil

	case spinner.TickMsg:
		if m.step != generating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case done:
		if msg.err != nil {
			m.step = enterSize
			m.status = msg.err.Error()
			return m, m.size.Focus()
		}
		m.result, m.elapsed = msg.buf, msg.elapsed
		m.step = showResult
		m.status = fmt.Sprintf("done in %v", msg.elapsed.Round(time.Microsecond))
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.step {
	case chooseGenerator:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "esc":
			return m, nil
		case "enter":
			m.generator = fract.Generators[selected(m.gens)]
			m.step = chooseStrategy
			m.status = "choose a strategy"
			return m, nil
		}
		m.gens, cmd = m.gens.Update(msg)

	case chooseStrategy:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "esc":
			m.step = chooseGenerator
			m.status = "choose a generator"
			return m, nil
		case "enter":
			m.strategy = fract.Strategies[selected(m.strats)]
			m.step = enterSize
			m.status = "enter a size divisible by 4"
			return m, m.size.Focus()
		}
		m.strats, cmd = m.strats.Update(msg)

	case enterSize:
		switch msg.String() {
		case "esc":
			m.size.Blur()
			m.step = chooseStrategy
			m.status = "choose a strategy"
			return m, nil
		case "enter":
			n, err := ValidateSize(m.size.Value())
			if err != nil {
				m.status = err.Error()
				return m, nil
			}
			m.size.Blur()
			m.pixels = n
			m.step = generating
			m.status = fmt.Sprintf("generating %s %dx%d with %s", m.generator, n, n, m.strategy)
			return m, tea.Batch(m.spin.Tick, m.generate(n))
		}
		m.size, cmd = m.size.Update(msg)

	case showResult:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "s":
			if err := m.cfg.Save(m.cfg.Out, m.result); err != nil {
				m.status = "save failed: " + err.Error()
			} else {
				m.status = "saved to " + m.cfg.Out
				fract.Logger().Info("menu: saved", "path", m.cfg.Out)
			}
		case "r":
			return m.restart(), nil
		}
	}
	return m, cmd
}

// restart returns to the first step, keeping the window size.
func (m Model) restart() Model {
	n := New(m.cfg)
	n.width, n.height = m.width, m.height
	if m.width > 0 {
		n.gens.SetSize(m.gens.Width(), m.gens.Height())
		n.strats.SetSize(m.strats.Width(), m.strats.Height())
	}
	return n
}

func (m Model) generate(size int) tea.Cmd {
	g, s := m.generator, m.strategy
	opts := []fract.Option{fract.WithStrategy(s)}
	if m.cfg.Workers != 0 {
		opts = append(opts, fract.WithWorkers(m.cfg.Workers))
	}
	return func() tea.Msg {
		start := time.Now()
		buf, err := g.Generate(size, opts...)
		return done{buf: buf, elapsed: time.Since(start), err: err}
	}
}

func selected(l list.Model) int {
	if c, ok := l.SelectedItem().(choice); ok {
		return c.index
	}
	return 0
}
