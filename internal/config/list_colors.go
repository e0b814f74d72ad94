package config

// DefaultListColors are the ANSI colors of the active, open and blocked
// sections of a ticket listing
var DefaultListColors = StringArray{"42", "33", "203"}

// List sections, in the order their colors are configured
const (
	SectionActive  = "active"
	SectionOpen    = "open"
	SectionBlocked = "blocked"
)

var sections = []string{SectionActive, SectionOpen, SectionBlocked}

// ListColors maps listing sections to terminal colors
type ListColors struct {
	Colors []string
}

// NewListColors creates ListColors, falling back to the defaults for
// sections without a configured color
func NewListColors(colors []string) *ListColors {
	merged := make([]string, len(sections))
	for i := range sections {
		if i < len(colors) && colors[i] != "" {
			merged[i] = colors[i]
		} else {
			merged[i] = DefaultListColors[i]
		}
	}
	return &ListColors{Colors: merged}
}

// GetColor returns the color for a section, or the first color when the
// section is unknown
func (c *ListColors) GetColor(section string) string {
	for i, s := range sections {
		if s == section {
			return c.Colors[i]
		}
	}
	return c.Colors[0]
}
