// Package badge builds the RoboContest stats badge links: the badge image
// URL, the profile URL and the Markdown image-link that embeds both.
package badge

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	// ProfileBase is the fixed external profile host path.
	ProfileBase = "https://robocontest.uz/profile/"

	badgePath = "/api/badge?username="
	altText   = "RoboContest Stats"
	imgAlt    = "RoboContest Stats Badge"
)

// ErrEmptyUsername is returned when the trimmed username is empty.
var ErrEmptyUsername = errors.New("username is required")

// Options tunes link construction.
type Options struct {
	// EscapeUsername percent-encodes the username in both URLs.
	// Off by default: the username is interpolated verbatim.
	EscapeUsername bool
}

// Links is the derived output of one generation. It is never cached.
type Links struct {
	Username   string
	BadgeURL   string
	ProfileURL string
	Markdown   string
}

// Generate trims username and builds the badge links for it against origin.
func Generate(origin, username string, opts Options) (Links, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return Links{}, ErrEmptyUsername
	}

	queryName, pathName := username, username
	if opts.EscapeUsername {
		queryName = url.QueryEscape(username)
		pathName = url.PathEscape(username)
	}

	badgeURL := strings.TrimRight(origin, "/") + badgePath + queryName
	profileURL := ProfileBase + pathName

	return Links{
		Username:   username,
		BadgeURL:   badgeURL,
		ProfileURL: profileURL,
		Markdown:   fmt.Sprintf("[![%s](%s)](%s)", altText, badgeURL, profileURL),
	}, nil
}

// PreviewHTML returns the anchor-wrapped image fragment shown as the preview.
func (l Links) PreviewHTML() string {
	return fmt.Sprintf(`<a href="%s"><img src="%s" alt="%s"></a>`, l.ProfileURL, l.BadgeURL, imgAlt)
}
