package share

import (
	"net/url"
	"strings"
)

// Default texts used when the caller provides none.
const (
	DefaultTitle = "Download our app"
	DefaultText  = "Get the perfect app for your device"
)

// Platform names accepted by Links.URL.
const (
	PlatformCopy     = "copy"
	PlatformTwitter  = "twitter"
	PlatformFacebook = "facebook"
	PlatformLinkedIn = "linkedin"
)

// Page is the content being shared.
type Page struct {
	URL   string
	Title string
	Text  string
}

// Links holds the share targets for a page.
type Links struct {
	Title    string `json:"title"`
	Text     string `json:"text"`
	Copy     string `json:"copy"`
	Twitter  string `json:"twitter"`
	Facebook string `json:"facebook"`
	LinkedIn string `json:"linkedin"`
}

// Build returns share links for the page. The page URL must be an absolute
// http(s) URL.
func Build(p Page) (Links, error) {
	pageURL, err := normalizeURL(p.URL)
	if err != nil {
		return Links{}, err
	}

	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = DefaultTitle
	}
	text := strings.TrimSpace(p.Text)
	if text == "" {
		text = DefaultText
	}

	u := encodeComponent(pageURL)
	return Links{
		Title:    title,
		Text:     text,
		Copy:     pageURL,
		Twitter:  "https://twitter.com/intent/tweet?text=" + encodeComponent(text) + "&url=" + u,
		Facebook: "https://www.facebook.com/sharer/sharer.php?u=" + u,
		LinkedIn: "https://www.linkedin.com/sharing/share-offsite/?url=" + u,
	}, nil
}

// URL returns the link for a platform, or "" if the platform is unknown.
func (l Links) URL(platform string) string {
	switch strings.ToLower(platform) {
	case PlatformCopy:
		return l.Copy
	case PlatformTwitter:
		return l.Twitter
	case PlatformFacebook:
		return l.Facebook
	case PlatformLinkedIn:
		return l.LinkedIn
	default:
		return ""
	}
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyURL
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", ErrInvalidURL
	}
	return u.String(), nil
}

// encodeComponent escapes s for use as a query value with spaces as %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
