// Package render provides terminal markdown rendering for assistant
// replies.
package render

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

const defaultWidth = 80

type rendererKey struct {
	style string
	width int
}

// Renderer construction is expensive (style loading), so instances are
// cached per style/width and reused across replies.
var (
	cacheMu sync.Mutex
	cache   = map[rendererKey]*glamour.TermRenderer{}
)

// Markdown renders text as terminal markdown with the given glamour
// style ("dark", "light", "notty", ...) wrapped at width. Rendering is
// serialized: TermRenderer is not safe for concurrent use.
func Markdown(text, style string, width int) (string, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	r, err := rendererFor(style, width)
	if err != nil {
		return "", err
	}
	return r.Render(text)
}

// rendererFor must be called with cacheMu held.
func rendererFor(style string, width int) (*glamour.TermRenderer, error) {
	if style == "" {
		style = "dark"
	}
	if width <= 0 {
		width = defaultWidth
	}

	key := rendererKey{style: style, width: width}
	if r, ok := cache[key]; ok {
		return r, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
	if err != nil {
		return nil, err
	}

	cache[key] = r
	return r, nil
}
