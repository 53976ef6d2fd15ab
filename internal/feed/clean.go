package feed

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	metaTagRe     = regexp.MustCompile(`(?i)<meta[^>]*>`)
	emptyParaRe   = regexp.MustCompile(`(?i)<p>\s*(<i></i>)?\s*(&nbsp;)?\s*</p>`)
	emptyItalicRe = regexp.MustCompile(`(?i)<i>\s*</i>`)
	generatedByRe = regexp.MustCompile(`generatedBy="[^"]*"`)
	spacesRe      = regexp.MustCompile(`\s+`)
)

// CleanHTML strips the editor artifacts the vendor feed embeds in
// description fields: meta tags, empty paragraph/italic shells, and
// generator attributes. Content that is empty after cleanup collapses
// to the empty string.
func CleanHTML(html string) string {
	if html == "" {
		return ""
	}
	html = metaTagRe.ReplaceAllString(html, "")
	html = emptyParaRe.ReplaceAllString(html, "")
	html = emptyItalicRe.ReplaceAllString(html, "")
	html = generatedByRe.ReplaceAllString(html, "")
	html = strings.TrimSpace(spacesRe.ReplaceAllString(html, " "))
	if html == "" || html == "<p></p>" {
		return ""
	}
	return html
}

// NormalizePrice formats a feed price as a two-decimal string. The
// vendor feed mixes dot and comma decimal separators, so a lone comma
// is treated as the decimal point. Anything unparsable becomes zero.
func NormalizePrice(price string) string {
	s := strings.TrimSpace(price)
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", v)
}
