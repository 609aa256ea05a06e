// Package fonts keeps the font data the application registers and the
// per-family fallback order the theme resolves fonts from.
package fonts

import (
	"errors"
	"fmt"
	"slices"

	"fyne.io/fyne/v2"
	"golang.org/x/image/font/sfnt"
)

var (
	ErrEmptyFont   = errors.New("font data is empty")
	ErrInvalidFont = errors.New("font data is not a valid sfnt font")
)

type Family int

const (
	Proportional Family = iota
	Monospace
)

func (f Family) String() string {
	switch f {
	case Proportional:
		return "proportional"
	case Monospace:
		return "monospace"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// Definitions maps font names to their data and lists, per family, the
// names to try in order.
type Definitions struct {
	data     map[string]fyne.Resource
	names    map[string]string
	families map[Family][]string
}

func NewDefinitions() *Definitions {
	return &Definitions{
		data:  make(map[string]fyne.Resource),
		names: make(map[string]string),
		families: map[Family][]string{
			Proportional: {},
			Monospace:    {},
		},
	}
}

// Validate parses res as a TrueType/OpenType font and returns its family name.
func Validate(res fyne.Resource) (string, error) {
	if res == nil || len(res.Content()) == 0 {
		return "", ErrEmptyFont
	}

	f, err := sfnt.Parse(res.Content())
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidFont, res.Name(), err)
	}

	family, err := f.Name(&sfnt.Buffer{}, sfnt.NameIDFamily)
	if err != nil {
		// the font is usable without a name table entry
		return "", nil
	}
	return family, nil
}

// Register stores res under name, puts name first in the proportional
// list and last in the monospace list. Registering the same name again
// leaves a single entry in each list at the same positions.
func (d *Definitions) Register(name string, res fyne.Resource) error {
	if name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidFont)
	}
	family, err := Validate(res)
	if err != nil {
		return err
	}

	d.data[name] = res
	d.names[name] = family

	prop := slices.DeleteFunc(d.families[Proportional], func(n string) bool { return n == name })
	d.families[Proportional] = slices.Insert(prop, 0, name)

	mono := slices.DeleteFunc(d.families[Monospace], func(n string) bool { return n == name })
	d.families[Monospace] = append(mono, name)

	return nil
}

// Add appends name to a single family without touching the others.
func (d *Definitions) Add(family Family, name string, res fyne.Resource) {
	d.data[name] = res
	if !slices.Contains(d.families[family], name) {
		d.families[family] = append(d.families[family], name)
	}
}

// Families returns a copy of the fallback list for f.
func (d *Definitions) Families(f Family) []string {
	return slices.Clone(d.families[f])
}

// FontFamily is the family name read from the font's name table when it
// was registered; empty for fonts added without validation.
func (d *Definitions) FontFamily(name string) string {
	return d.names[name]
}

// Resolve returns the first font in f's fallback list that has data, or
// nil when the family is empty.
func (d *Definitions) Resolve(f Family) fyne.Resource {
	if d == nil {
		return nil
	}
	for _, name := range d.families[f] {
		if res, ok := d.data[name]; ok && res != nil {
			return res
		}
	}
	return nil
}

// Clone returns an independent copy; resources are shared. Cloning nil
// yields empty definitions.
func (d *Definitions) Clone() *Definitions {
	c := NewDefinitions()
	if d == nil {
		return c
	}
	for name, res := range d.data {
		c.data[name] = res
	}
	for name, family := range d.names {
		c.names[name] = family
	}
	for f, names := range d.families {
		c.families[f] = slices.Clone(names)
	}
	return c
}
