package windcss

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractElementsFromLine(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantClasses [][]string
	}{
		{
			name:        "single class",
			line:        `<div class="flex">`,
			wantClasses: [][]string{{"flex"}},
		},
		{
			name:        "multiple classes",
			line:        `<div class="flex items-center gap-4">`,
			wantClasses: [][]string{{"flex", "items-center", "gap-4"}},
		},
		{
			name:        "single quotes",
			line:        `<div class='p-4 m-2'>`,
			wantClasses: [][]string{{"p-4", "m-2"}},
		},
		{
			name:        "JSX className",
			line:        `<div className="grid grid-cols-3">`,
			wantClasses: [][]string{{"grid", "grid-cols-3"}},
		},
		{
			name:        "two elements on one line",
			line:        `<span class="font-bold"></span><span class="italic"></span>`,
			wantClasses: [][]string{{"font-bold"}, {"italic"}},
		},
		{
			name:        "variant tokens survive splitting",
			line:        `<button class="hover:bg-blue-600 md:px-6">`,
			wantClasses: [][]string{{"hover:bg-blue-600", "md:px-6"}},
		},
		{
			name:        "comment line skipped",
			line:        `// class="flex"`,
			wantClasses: nil,
		},
		{
			name:        "html comment skipped",
			line:        `<!-- class="flex" -->`,
			wantClasses: nil,
		},
		{
			name:        "no class attribute",
			line:        `<div id="main">`,
			wantClasses: nil,
		},
		{
			name:        "empty attribute ignored",
			line:        `<div class="   ">`,
			wantClasses: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elements := extractElementsFromLine(tt.line, 1, "test.html")
			require.Len(t, elements, len(tt.wantClasses))
			for i, want := range tt.wantClasses {
				assert.Equal(t, want, elements[i].Classes)
			}
		})
	}
}

func TestExtractElementsFromLine_Positions(t *testing.T) {
	line := `<div class="flex items-center">`
	elements := extractElementsFromLine(line, 7, "page.html")
	require.Len(t, elements, 1)

	elem := elements[0]
	require.Len(t, elem.Refs, 2)

	assert.Equal(t, "flex", elem.Refs[0].ClassName)
	assert.Equal(t, 7, elem.Refs[0].Location.Line)
	assert.Equal(t, 13, elem.Refs[0].Location.Column) // 'f' of flex

	assert.Equal(t, "items-center", elem.Refs[1].ClassName)
	assert.Equal(t, 18, elem.Refs[1].Location.Column)
}

func TestIsGenerated(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{
			name:     "standard templ generated (_templ.go)",
			path:     "internal/web/features/sidebar_templ.go",
			expected: true,
		},
		{
			name:     "alternate templ generated (.templ.go)",
			path:     "internal/web/features/sidebar.templ.go",
			expected: true,
		},
		{
			name:     "minified asset",
			path:     "web/static/vendor.min.html",
			expected: true,
		},
		{
			name:     "templ source file",
			path:     "internal/web/features/sidebar.templ",
			expected: false,
		},
		{
			name:     "regular html file",
			path:     "web/pages/index.html",
			expected: false,
		},
		{
			name:     "file with templ in name but not generated",
			path:     "internal/templates/handler.go",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isGenerated(tt.path)
			require.Equal(t, tt.expected, got, "isGenerated(%q)", tt.path)
		})
	}
}

func TestShouldSkipFile(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{
			name:     "skip templ generated",
			path:     "internal/web/sidebar_templ.go",
			expected: true,
		},
		{
			name:     "scan templ source",
			path:     "internal/web/sidebar.templ",
			expected: false,
		},
		{
			name:     "scan regular html",
			path:     "web/index.html",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldSkipFile(tt.path)
			require.Equal(t, tt.expected, got, "shouldSkipFile(%q)", tt.path)
		})
	}
}

func TestScanFiles(t *testing.T) {
	dir := t.TempDir()

	page := `<html>
<body>
  <div class="flex items-center">
    <p class="text-lg font-bold">hi</p>
  </div>
</body>
</html>`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "page.html"), []byte(page), 0644))

	// Generated file should be filtered out entirely
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vendor.min.html"),
		[]byte(`<div class="should-not-appear">`), 0644))

	elements, stats, err := ScanFiles([]string{filepath.Join(dir, "*.html")}, false)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.FilesDiscovered)
	assert.Equal(t, 1, stats.FilesScanned)
	assert.Equal(t, 1, stats.FilesSkipped)

	require.Len(t, elements, 2)
	assert.Equal(t, []string{"flex", "items-center"}, elements[0].Classes)
	assert.Equal(t, []string{"text-lg", "font-bold"}, elements[1].Classes)
	for _, elem := range elements {
		assert.NotContains(t, elem.Classes, "should-not-appear")
	}
}
