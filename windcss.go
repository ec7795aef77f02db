// Package windcss compiles utility class names into CSS.
//
// windcss scans source files for class attributes, resolves each
// utility token through a priority-ordered parser chain, and emits a
// deduplicated stylesheet containing only the rules the scanned
// markup actually uses.
//
// # Generation
//
// Compile a stylesheet from source files:
//
//	config := windcss.Config{
//		ContentPaths: []string{"web/**/*.html", "internal/**/*.templ"},
//		OutputPath:   "web/static/styles.css",
//	}
//	result, err := windcss.Generate(config)
//
// # Checking
//
// Report unknown utilities and malformed variants without writing CSS:
//
//	checkConfig := windcss.CheckConfig{
//		ContentPaths: []string{"web/**/*.html"},
//	}
//	result, err := windcss.Check(checkConfig)
//
// # CLI Tool
//
// windcss also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/windcss/cmd/windcss@latest
package windcss
