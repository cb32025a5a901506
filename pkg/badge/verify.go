package badge

import (
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// ErrMalformed means the generated Markdown does not parse back into the
// expected image link, usually because the username holds URL-special characters.
var ErrMalformed = errors.New("malformed badge markdown")

var md = goldmark.New()

// Verify parses l.Markdown and checks it is a single link to the profile URL
// wrapping a single image of the badge URL.
func Verify(l Links) error {
	src := []byte(l.Markdown)
	doc := md.Parser().Parse(text.NewReader(src))

	var links []*ast.Link
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if link, ok := n.(*ast.Link); ok {
			links = append(links, link)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return fmt.Errorf("badge.Verify: walk: %w", err)
	}

	if len(links) != 1 {
		return fmt.Errorf("badge.Verify: %w: found %d links, want 1", ErrMalformed, len(links))
	}
	link := links[0]
	if got := resolvedDestination(link.Destination); got != l.ProfileURL {
		return fmt.Errorf("badge.Verify: %w: link points to %q, want %q", ErrMalformed, got, l.ProfileURL)
	}
	if link.ChildCount() != 1 {
		return fmt.Errorf("badge.Verify: %w: link has %d children, want 1 image", ErrMalformed, link.ChildCount())
	}
	img, ok := link.FirstChild().(*ast.Image)
	if !ok {
		return fmt.Errorf("badge.Verify: %w: link does not wrap an image", ErrMalformed)
	}
	if got := resolvedDestination(img.Destination); got != l.BadgeURL {
		return fmt.Errorf("badge.Verify: %w: image source %q, want %q", ErrMalformed, got, l.BadgeURL)
	}
	return nil
}

// resolvedDestination returns dest as a renderer emits it: backslash escapes
// removed and character references decoded.
func resolvedDestination(dest []byte) string {
	dest = util.UnescapePunctuations(dest)
	dest = util.ResolveNumericReferences(dest)
	dest = util.ResolveEntityNames(dest)
	return string(dest)
}
