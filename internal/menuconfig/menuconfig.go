// Package menuconfig loads the declarative attributes of a slide menu from YAML.
package menuconfig

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"golang.org/x/image/colornames"

	"github.com/ErikKalkoken/slidemenu/internal/slidemenu"
)

var ErrInvalid = errors.New("invalid menu definition")

type itemDef struct {
	Label      string `yaml:"label"`
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
}

type menuDef struct {
	SubMenuCount   int       `yaml:"subMenuCount"`
	TextSize       float32   `yaml:"textSize"`
	HeightPolicy   string    `yaml:"heightPolicy"`
	Height         float32   `yaml:"height"`
	ScrollDuration string    `yaml:"scrollDuration"`
	Items          []itemDef `yaml:"items"`
}

// Menu is a slide menu definition.
type Menu struct {
	Config slidemenu.Config
	Items  []slidemenu.Item // items without callbacks
}

// Factory returns a factory for binding the items of m to a slide menu.
// activate is called with the index and label of a tapped item.
func (m Menu) Factory(activate func(index int, label string)) func() []slidemenu.Item {
	return func() []slidemenu.Item {
		items := make([]slidemenu.Item, len(m.Items))
		for i, it := range m.Items {
			if activate != nil {
				it.OnActivate = func() {
					activate(i, it.Label)
				}
			}
			items[i] = it
		}
		return items
	}
}

// LoadFile loads a menu definition from a YAML file.
func LoadFile(name string) (Menu, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return Menu{}, err
	}
	m, err := Load(bytes.NewReader(data))
	if err != nil {
		return Menu{}, fmt.Errorf("%s: %w", name, err)
	}
	return m, nil
}

// Load loads a menu definition in YAML from r.
//
// The sub menu count defaults to 0 and is not derived from the items.
// A mismatch is reported when the items are bound.
func Load(r io.Reader) (Menu, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Menu{}, err
	}
	var d menuDef
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Menu{}, fmt.Errorf("parse menu: %w", err)
	}
	cfg := slidemenu.Config{SubMenuCount: d.SubMenuCount, TextSize: d.TextSize}
	switch strings.ToLower(d.HeightPolicy) {
	case "", "match":
		cfg.HeightPolicy = slidemenu.HeightPolicy{Kind: slidemenu.MatchParent}
	case "wrap":
		cfg.HeightPolicy = slidemenu.HeightPolicy{Kind: slidemenu.WrapContent}
	case "fixed":
		cfg.HeightPolicy = slidemenu.Fixed(d.Height)
	default:
		return Menu{}, fmt.Errorf("height policy %q: %w", d.HeightPolicy, ErrInvalid)
	}
	if d.ScrollDuration != "" {
		cfg.ScrollDuration, err = time.ParseDuration(d.ScrollDuration)
		if err != nil {
			return Menu{}, fmt.Errorf("scroll duration: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Menu{}, err
	}
	m := Menu{Config: cfg}
	for i, x := range d.Items {
		it := slidemenu.Item{Label: x.Label}
		if x.Background != "" {
			it.BackgroundColor, err = ParseColor(x.Background)
			if err != nil {
				return Menu{}, fmt.Errorf("item %d: %w", i, err)
			}
		}
		if x.Text != "" {
			it.TextColor, err = ParseColor(x.Text)
			if err != nil {
				return Menu{}, fmt.Errorf("item %d: %w", i, err)
			}
		}
		m.Items = append(m.Items, it)
	}
	return m, nil
}

// ParseColor returns the color for a SVG color name like "red" or a hex notation like "#FF0000" or "#FF000080".
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	h, found := strings.CutPrefix(s, "#")
	if !found || (len(h) != 6 && len(h) != 8) {
		return nil, fmt.Errorf("color %q: %w", s, ErrInvalid)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("color %q: %w", s, ErrInvalid)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
