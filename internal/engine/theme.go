package engine

import (
	"fmt"
	"strings"
)

// Breakpoint is one responsive screen, ordered smallest to largest.
type Breakpoint struct {
	Name     string
	MinWidth string
}

// FontSize pairs a font-size value with its default line-height.
type FontSize struct {
	Size       string
	LineHeight string
}

// Theme maps semantic token names to literal CSS values. Utility parsers
// resolve through a *Theme at generation time, so overriding values never
// requires rebuilding the parser registry.
type Theme struct {
	Breakpoints []Breakpoint
	// Colors maps palette name to shade to value. Single-value colors
	// (white, black, transparent) live under the empty shade key.
	Colors        map[string]map[string]string
	Spacing       map[string]string
	FontSizes     map[string]FontSize
	FontWeights   map[string]string
	FontFamilies  map[string]string
	LineHeights   map[string]string
	LetterSpacing map[string]string
	BorderRadius  map[string]string
	BorderWidths  map[string]string
	Shadows       map[string]string
	Opacity       map[string]string
	ZIndex        map[string]string
	Blurs         map[string]string
	Durations     map[string]string
	Timings       map[string]string
	// Keyframes maps an animation name to the raw body of its @keyframes
	// block; Animations maps the same name to the animation shorthand.
	Keyframes  map[string]string
	Animations map[string]string
}

// Color resolves a color token like "red-500", "white" or "transparent".
func (t *Theme) Color(name string) (string, bool) {
	if palette, ok := t.Colors[name]; ok {
		if v, ok := palette[""]; ok {
			return v, true
		}
	}
	i := strings.LastIndex(name, "-")
	if i <= 0 {
		return "", false
	}
	palette, shade := name[:i], name[i+1:]
	shades, ok := t.Colors[palette]
	if !ok {
		return "", false
	}
	v, ok := shades[shade]
	return v, ok
}

// Breakpoint resolves a breakpoint name to its min-width.
func (t *Theme) Breakpoint(name string) (string, bool) {
	for _, bp := range t.Breakpoints {
		if bp.Name == name {
			return bp.MinWidth, true
		}
	}
	return "", false
}

// IsBreakpoint reports whether name is a configured screen.
func (t *Theme) IsBreakpoint(name string) bool {
	_, ok := t.Breakpoint(name)
	return ok
}

// Override merges a configuration map (typically loaded through koanf from
// a YAML theme file) into the theme. Scalar sections replace per key;
// unknown sections are reported so typos do not silently vanish.
func (t *Theme) Override(raw map[string]any) error {
	for section, v := range raw {
		switch section {
		case "breakpoints":
			m, err := stringMap(section, v)
			if err != nil {
				return err
			}
			for name, width := range m {
				t.setBreakpoint(name, width)
			}
		case "colors":
			nested, ok := v.(map[string]any)
			if !ok {
				return fmt.Errorf("theme section %q: expected a mapping", section)
			}
			for palette, shades := range nested {
				switch sv := shades.(type) {
				case string:
					t.Colors[palette] = map[string]string{"": sv}
				case map[string]any:
					m, err := stringMap(section+"."+palette, sv)
					if err != nil {
						return err
					}
					if t.Colors[palette] == nil {
						t.Colors[palette] = make(map[string]string)
					}
					for shade, val := range m {
						t.Colors[palette][shade] = val
					}
				default:
					return fmt.Errorf("theme color %q: expected string or mapping", palette)
				}
			}
		case "spacing":
			if err := mergeStringSection(section, v, &t.Spacing); err != nil {
				return err
			}
		case "fontweights":
			if err := mergeStringSection(section, v, &t.FontWeights); err != nil {
				return err
			}
		case "fontfamilies":
			if err := mergeStringSection(section, v, &t.FontFamilies); err != nil {
				return err
			}
		case "lineheights":
			if err := mergeStringSection(section, v, &t.LineHeights); err != nil {
				return err
			}
		case "letterspacing":
			if err := mergeStringSection(section, v, &t.LetterSpacing); err != nil {
				return err
			}
		case "borderradius":
			if err := mergeStringSection(section, v, &t.BorderRadius); err != nil {
				return err
			}
		case "borderwidths":
			if err := mergeStringSection(section, v, &t.BorderWidths); err != nil {
				return err
			}
		case "shadows":
			if err := mergeStringSection(section, v, &t.Shadows); err != nil {
				return err
			}
		case "opacity":
			if err := mergeStringSection(section, v, &t.Opacity); err != nil {
				return err
			}
		case "zindex":
			if err := mergeStringSection(section, v, &t.ZIndex); err != nil {
				return err
			}
		case "blurs":
			if err := mergeStringSection(section, v, &t.Blurs); err != nil {
				return err
			}
		case "durations":
			if err := mergeStringSection(section, v, &t.Durations); err != nil {
				return err
			}
		case "timings":
			if err := mergeStringSection(section, v, &t.Timings); err != nil {
				return err
			}
		case "keyframes":
			if err := mergeStringSection(section, v, &t.Keyframes); err != nil {
				return err
			}
		case "animations":
			if err := mergeStringSection(section, v, &t.Animations); err != nil {
				return err
			}
		case "fontsizes":
			nested, ok := v.(map[string]any)
			if !ok {
				return fmt.Errorf("theme section %q: expected a mapping", section)
			}
			for name, spec := range nested {
				switch sv := spec.(type) {
				case string:
					t.FontSizes[name] = FontSize{Size: sv}
				case map[string]any:
					m, err := stringMap(section+"."+name, sv)
					if err != nil {
						return err
					}
					t.FontSizes[name] = FontSize{Size: m["size"], LineHeight: m["line-height"]}
				default:
					return fmt.Errorf("theme font size %q: expected string or mapping", name)
				}
			}
		default:
			return fmt.Errorf("unknown theme section %q", section)
		}
	}
	return nil
}

func (t *Theme) setBreakpoint(name, minWidth string) {
	for i := range t.Breakpoints {
		if t.Breakpoints[i].Name == name {
			t.Breakpoints[i].MinWidth = minWidth
			return
		}
	}
	t.Breakpoints = append(t.Breakpoints, Breakpoint{Name: name, MinWidth: minWidth})
}

func mergeStringSection(section string, v any, dst *map[string]string) error {
	m, err := stringMap(section, v)
	if err != nil {
		return err
	}
	if *dst == nil {
		*dst = make(map[string]string)
	}
	for k, val := range m {
		(*dst)[k] = val
	}
	return nil
}

func stringMap(section string, v any) (map[string]string, error) {
	nested, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("theme section %q: expected a mapping", section)
	}
	out := make(map[string]string, len(nested))
	for k, val := range nested {
		s, ok := val.(string)
		if !ok {
			s = fmt.Sprintf("%v", val)
		}
		out[k] = s
	}
	return out, nil
}
