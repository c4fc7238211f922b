package logic

import "regexp"

var materialIconRE = regexp.MustCompile(`^:material/(.+):$`)

// ContentKind tells the view how to draw option content
type ContentKind int

const (
	ContentText ContentKind = iota
	ContentIcon
)

// Content is resolved option content ready for rendering
type Content struct {
	Kind ContentKind
	Text string // raw content for text, icon name for icons
}

// ResolveContent picks the selected override while the option is visually
// selected and an override is configured, and the fallback otherwise.
func ResolveContent(visuallySelected bool, fallback, selectedOverride string) string {
	if visuallySelected && selectedOverride != "" {
		return selectedOverride
	}
	return fallback
}

// ShowHighlight reports whether selection styling applies to an option
func ShowHighlight(visuallySelected, highlightDisabled bool) bool {
	return visuallySelected && !highlightDisabled
}

// ParseContent classifies content as a :material/<name>: icon token or text
func ParseContent(content string) Content {
	if m := materialIconRE.FindStringSubmatch(content); m != nil {
		return Content{Kind: ContentIcon, Text: m[1]}
	}
	return Content{Kind: ContentText, Text: content}
}
