package view

import (
	"hash/fnv"
	"html"
	"strings"

	"github.com/kennygrant/sanitize"
)

const (
	masonryDescriptionWords = 30
	trimMore                = "..."
	minLineClamp            = 4
	maxLineClamp            = 8
)

var lineBreaks = strings.NewReplacer("</p>", "\n", "<br>", "\n", "<br/>", "\n", "<br />", "\n")

// StripTags turns possibly tagged text into plain text. Text that only looks like markup,
// such as "<3" or "->", is kept along with line breaks. The result is unescaped; templates escape it.
func StripTags(s string) string {
	if !strings.ContainsAny(s, "<>&") {
		return s
	}
	out, err := sanitize.HTMLAllowing(lineBreaks.Replace(s), []string{})
	if err != nil {
		return s
	}
	return html.UnescapeString(out)
}

// TrimWords keeps the first n whitespace separated words of the plain text of s,
// appending more when anything was cut.
func TrimWords(s string, n int, more string) string {
	words := strings.Fields(StripTags(s))
	if len(words) <= n {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:n], " ") + more
}

// lineClamp derives a clamp in [minLineClamp, maxLineClamp] from the video id.
// The same id always gets the same clamp.
func lineClamp(videoID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(videoID))
	return minLineClamp + int(h.Sum32()%uint32(maxLineClamp-minLineClamp+1))
}
