package windcss

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/yacobolo/windcss/internal/engine"
)

// Generate is the main entry point
func Generate(config Config) (*GenerateResult, error) {
	result := &GenerateResult{}

	theme, err := LoadTheme(config.ThemePath)
	if err != nil {
		return nil, fmt.Errorf("theme failed: %w", err)
	}

	eng, err := engine.New(theme, engine.Options{
		DarkMode: config.DarkMode,
		Workers:  config.Workers,
	})
	if err != nil {
		return nil, err
	}
	for _, plugin := range config.Plugins {
		if err := eng.RegisterParser(plugin); err != nil {
			return nil, fmt.Errorf("registering parser %q: %w", plugin.Name, err)
		}
	}

	// 1. Scan content files for class attributes
	elements, stats, err := ScanFiles(config.ContentPaths, config.Verbose)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.FilesScanned = stats.FilesScanned
	result.ElementsFound = len(elements)

	if config.Verbose {
		fmt.Printf("Found %d elements in %d files\n", len(elements), stats.FilesScanned)
	}

	// 2. Compile every element's class list
	classLists := make([][]string, len(elements))
	used := make(map[string]bool)
	for i, elem := range elements {
		classLists[i] = elem.Classes
		result.ClassesFound += len(elem.Classes)
		for _, class := range elem.Classes {
			used[class] = true
		}
	}
	result.UniqueClasses = len(used)

	// Safelisted classes compile as one extra element and always survive
	// the shake, whether or not the scan saw them.
	if len(config.Safelist) > 0 {
		classLists = append(classLists, config.Safelist)
		for _, class := range config.Safelist {
			used[class] = true
		}
	}

	result.Diagnostics = eng.CompileElements(classLists)

	for _, diag := range result.Diagnostics {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%s: %s", diag.Token, diag.Message))
	}

	if config.Verbose {
		fmt.Printf("Compiled %d unique classes\n", result.UniqueClasses)
	}

	// 3. Drop rules nothing references, then merge what remains
	eng.Shake(used)
	if config.Optimize {
		eng.Optimize()
	}
	result.RulesEmitted = len(eng.Rules())

	// 4. Serialize
	result.CSS = eng.CSS()

	if config.Verbose {
		fmt.Printf("Emitted %d rules (%d bytes)\n", result.RulesEmitted, len(result.CSS))
	}

	if config.OutputPath != "" {
		if err := writeOutputFile(config.OutputPath, result.CSS); err != nil {
			return nil, fmt.Errorf("write failed: %w", err)
		}
	}

	return result, nil
}

// LoadTheme builds the theme, applying YAML overrides from path on top
// of the defaults. An empty path means defaults only.
func LoadTheme(path string) (*engine.Theme, error) {
	theme := engine.DefaultTheme()
	if path == "" {
		return theme, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading theme file %s: %w", path, err)
	}
	if err := theme.Override(k.Raw()); err != nil {
		return nil, fmt.Errorf("applying theme overrides from %s: %w", path, err)
	}
	return theme, nil
}

// writeOutputFile writes css to path, creating parent directories
func writeOutputFile(path, css string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(css), 0644)
}
