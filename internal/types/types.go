// Package types defines every cross‑package data structure used by the vaultmap tools.
package types

const (
	// DiagramStyleMindmap renders the table of contents as a Mermaid mindmap.
	DiagramStyleMindmap DiagramStyle = "mindmap"
	// DiagramStyleFlowchart renders the table of contents as a top-down Mermaid flowchart.
	DiagramStyleFlowchart DiagramStyle = "flowchart"

	// DefaultTocTitle is used when no title is supplied.
	DefaultTocTitle = "Table of Contents"
	// DefaultSectionName names the single section of a freshly scanned configuration.
	DefaultSectionName = "Uncategorized"
)

// DiagramStyle selects the Mermaid diagram flavor.
type DiagramStyle string

// SupportedDiagramStyles lists diagram styles in the order they are advertised.
var SupportedDiagramStyles = []DiagramStyle{DiagramStyleMindmap, DiagramStyleFlowchart}

// IsSupported reports whether the style is recognized.
func (style DiagramStyle) IsSupported() bool {
	for _, supportedStyle := range SupportedDiagramStyles {
		if style == supportedStyle {
			return true
		}
	}
	return false
}

// TocConfig describes the sections of a table of contents.
type TocConfig struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// Section is a top-level group of files, optionally split into subsections.
type Section struct {
	Name        string       `json:"name"`
	Files       []string     `json:"files"`
	Subsections []Subsection `json:"subsections,omitempty"`
}

// Subsection is a named group of files nested under a section.
type Subsection struct {
	Name  string   `json:"name"`
	Files []string `json:"files"`
}
