package windcss

import (
	"strings"

	"github.com/yacobolo/windcss/internal/engine"
)

// PropertyCategory groups CSS properties for summary statistics
type PropertyCategory string

const (
	CategoryLayout     PropertyCategory = "layout"
	CategoryVisual     PropertyCategory = "visual"
	CategoryTypography PropertyCategory = "typography"
	CategoryEffects    PropertyCategory = "effects"
)

// propertyCategories maps CSS property names to categories
var propertyCategories = map[string]PropertyCategory{
	// Visual
	"background":       CategoryVisual,
	"background-color": CategoryVisual,
	"background-image": CategoryVisual,
	"color":            CategoryVisual,
	"border":           CategoryVisual,
	"border-color":     CategoryVisual,
	"border-radius":    CategoryVisual,
	"border-width":     CategoryVisual,
	"border-style":     CategoryVisual,
	"box-shadow":       CategoryVisual,
	"opacity":          CategoryVisual,
	"outline":          CategoryVisual,

	// Layout
	"display":               CategoryLayout,
	"position":              CategoryLayout,
	"visibility":            CategoryLayout,
	"float":                 CategoryLayout,
	"flex":                  CategoryLayout,
	"flex-direction":        CategoryLayout,
	"flex-wrap":             CategoryLayout,
	"flex-basis":            CategoryLayout,
	"justify-content":       CategoryLayout,
	"align-items":           CategoryLayout,
	"align-self":            CategoryLayout,
	"align-content":         CategoryLayout,
	"order":                 CategoryLayout,
	"gap":                   CategoryLayout,
	"row-gap":               CategoryLayout,
	"column-gap":            CategoryLayout,
	"grid-template-columns": CategoryLayout,
	"grid-template-rows":    CategoryLayout,
	"grid-column":           CategoryLayout,
	"grid-row":              CategoryLayout,
	"inset":                 CategoryLayout,
	"top":                   CategoryLayout,
	"right":                 CategoryLayout,
	"bottom":                CategoryLayout,
	"left":                  CategoryLayout,
	"width":                 CategoryLayout,
	"height":                CategoryLayout,
	"min-width":             CategoryLayout,
	"min-height":            CategoryLayout,
	"max-width":             CategoryLayout,
	"max-height":            CategoryLayout,
	"padding":               CategoryLayout,
	"margin":                CategoryLayout,
	"overflow":              CategoryLayout,
	"overflow-x":            CategoryLayout,
	"overflow-y":            CategoryLayout,
	"z-index":               CategoryLayout,
	"object-fit":            CategoryLayout,
	"object-position":       CategoryLayout,

	// Typography
	"font-family":     CategoryTypography,
	"font-size":       CategoryTypography,
	"font-weight":     CategoryTypography,
	"font-style":      CategoryTypography,
	"line-height":     CategoryTypography,
	"letter-spacing":  CategoryTypography,
	"text-align":      CategoryTypography,
	"text-decoration": CategoryTypography,
	"text-transform":  CategoryTypography,
	"text-overflow":   CategoryTypography,
	"white-space":     CategoryTypography,
	"word-break":      CategoryTypography,

	// Effects
	"transition":                 CategoryEffects,
	"transition-property":        CategoryEffects,
	"transition-duration":        CategoryEffects,
	"transition-timing-function": CategoryEffects,
	"transition-delay":           CategoryEffects,
	"transform":                  CategoryEffects,
	"transform-origin":           CategoryEffects,
	"animation":                  CategoryEffects,
	"filter":                     CategoryEffects,
	"backdrop-filter":            CategoryEffects,
	"mix-blend-mode":             CategoryEffects,
	"will-change":                CategoryEffects,
}

// categorizeProperty determines the category of a CSS property
func categorizeProperty(name string) PropertyCategory {
	if cat, exists := propertyCategories[name]; exists {
		return cat
	}

	// Catch-all prefixes for families the exact table doesn't enumerate
	switch {
	case strings.HasPrefix(name, "flex-"), strings.HasPrefix(name, "grid-"),
		strings.HasPrefix(name, "padding-"), strings.HasPrefix(name, "margin-"),
		strings.HasPrefix(name, "inset-"):
		return CategoryLayout
	case strings.HasPrefix(name, "border-"), strings.HasPrefix(name, "outline-"),
		strings.HasPrefix(name, "background-"):
		return CategoryVisual
	case strings.HasPrefix(name, "font-"), strings.HasPrefix(name, "text-"):
		return CategoryTypography
	case strings.HasPrefix(name, "animation-"):
		return CategoryEffects
	}

	return CategoryLayout
}

// CategorizeRules groups compiled rules by the category of their first
// concrete declaration. Custom properties don't classify a rule on
// their own, so the first non-variable property decides.
func CategorizeRules(rules []engine.Rule) map[PropertyCategory]int {
	result := make(map[PropertyCategory]int)
	for _, rule := range rules {
		prop := firstConcreteProperty(rule)
		if prop == "" {
			continue
		}
		result[categorizeProperty(prop)]++
	}
	return result
}

func firstConcreteProperty(rule engine.Rule) string {
	for _, d := range rule.Declarations {
		if !strings.HasPrefix(d.Property, "--") {
			return d.Property
		}
	}
	return ""
}
