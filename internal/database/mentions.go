package database

import "regexp"

var mentionRegex = regexp.MustCompile(`@\w+`)

// extractMentions returns the names (without the @) mentioned in content,
// in order of appearance. The same regexp drives fan-out and rendering so
// both passes see identical token boundaries.
func extractMentions(content string) []string {
	matches := mentionRegex.FindAllString(content, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1:])
	}
	return names
}

// renderMentions rewrites every @name token into a profile hyperlink of the
// form <a href="!name">@name</a>. Text between tokens is untouched.
func renderMentions(content string) string {
	return mentionRegex.ReplaceAllStringFunc(content, func(m string) string {
		return `<a href="!` + m[1:] + `">` + m + `</a>`
	})
}
