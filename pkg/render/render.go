// Package render turns stored article body text into displayable HTML.
//
// The transform is cosmetic and best-effort: markdown-style images, inline
// video tags and bare media URLs are rewritten into HTML fragments, and
// anything malformed passes through untouched. It is applied at display time
// only and never persisted back to the store.
package render

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	mediaClass   = "w-full max-w-2xl mx-auto my-6 rounded-lg shadow-md"
	videoWrapper = `<div class="w-full max-w-2xl mx-auto my-6 rounded-lg shadow-md overflow-hidden">`
	fallbackText = "Your browser does not support the video tag."
)

var (
	markdownImagePattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	videoTagPattern      = regexp.MustCompile(`<video\s+src="([^"]+)"(?:\s*controls)?\s*></video>`)

	// Bare URLs must not be preceded by a quote or an open paren so that
	// output of the two passes above is never re-matched.
	bareImageURLPattern = regexp.MustCompile(`(?i)(^|[^"'(])(https?://[^\s"]+\.(?:jpg|jpeg|png|gif|webp|svg|tiff|bmp|ico))`)
	bareVideoURLPattern = regexp.MustCompile(`(?i)(^|[^"'(])(https?://[^\s"]+\.(?:mp4|webm|ogg|mov|avi|wmv|flv|mkv))`)
)

// Content rewrites the three recognized patterns in order: markdown images,
// explicit video tags, then bare image and video URLs.
func Content(content string) string {
	parsed := markdownImagePattern.ReplaceAllString(content,
		fmt.Sprintf(`<img src="$2" alt="$1" class="%s" />`, mediaClass))

	parsed = videoTagPattern.ReplaceAllString(parsed,
		videoWrapper+
			`<video src="$1" controls class="w-full h-auto">`+
			`<source src="$1">`+
			fallbackText+
			`</video>`+
			`</div>`)

	parsed = wrapBareURLs(parsed, bareImageURLPattern, func(url string) string {
		return fmt.Sprintf(`<img src="%s" alt="image" class="%s" />`, url, mediaClass)
	})

	parsed = wrapBareURLs(parsed, bareVideoURLPattern, func(url string) string {
		return videoWrapper +
			fmt.Sprintf(`<video src="%s" controls class="w-full h-auto"><source src="%s">%s</video>`, url, url, fallbackText) +
			`</div>`
	})

	return parsed
}

// wrapBareURLs rewrites each match of pattern through build. A URL directly
// followed by a word character or a dot is left alone, so an address whose
// path merely contains a recognized extension does not get wrapped.
func wrapBareURLs(content string, pattern *regexp.Regexp, build func(url string) string) string {
	matches := pattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		end := m[1]
		urlStart, urlEnd := m[4], m[5]

		if urlEnd < len(content) && isWordByte(content[urlEnd]) {
			continue
		}

		b.WriteString(content[last:urlStart])
		b.WriteString(build(content[urlStart:urlEnd]))
		last = end
	}
	b.WriteString(content[last:])

	return b.String()
}

func isWordByte(c byte) bool {
	return c == '.' || c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
