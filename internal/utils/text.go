package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	blankLinesRe = regexp.MustCompile(`\n{3,}`)
	htmlTagRe    = regexp.MustCompile(`<[^>]*>`)
	spacesRe     = regexp.MustCompile(`\s+`)
)

// ReplaceWord replaces every case-insensitive whole-word occurrence of word.
// Word boundaries are Unicode aware, so accented letters count as part of a word.
func ReplaceWord(text, word, repl string) string {
	pat := lowerRunes(word)
	if len(pat) == 0 {
		return text
	}
	src := []rune(text)
	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(src); {
		if wordAt(src, pat, i) {
			sb.WriteString(repl)
			i += len(pat)
			continue
		}
		sb.WriteRune(src[i])
		i++
	}
	return sb.String()
}

// ContainsWord reports whether word occurs in text as a whole word, ignoring case.
func ContainsWord(text, word string) bool {
	pat := lowerRunes(word)
	if len(pat) == 0 {
		return false
	}
	src := []rune(text)
	for i := range src {
		if wordAt(src, pat, i) {
			return true
		}
	}
	return false
}

func wordAt(src, pat []rune, i int) bool {
	if i+len(pat) > len(src) {
		return false
	}
	for k, r := range pat {
		if unicode.ToLower(src[i+k]) != r {
			return false
		}
	}
	if isWordRune(pat[0]) && i > 0 && isWordRune(src[i-1]) {
		return false
	}
	end := i + len(pat)
	if isWordRune(pat[len(pat)-1]) && end < len(src) && isWordRune(src[end]) {
		return false
	}
	return true
}

func lowerRunes(s string) []rune {
	out := []rune(s)
	for i, r := range out {
		out[i] = unicode.ToLower(r)
	}
	return out
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// TruncateRunes cuts s to at most n runes.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// RuneLen is the length of s in characters.
func RuneLen(s string) int {
	return len([]rune(s))
}

// CollapseBlankLines squeezes runs of three or more newlines into one blank line.
func CollapseBlankLines(s string) string {
	return blankLinesRe.ReplaceAllString(s, "\n\n")
}

// StripHTML removes markup tags and squeezes whitespace.
func StripHTML(s string) string {
	s = htmlTagRe.ReplaceAllString(s, "")
	s = strings.NewReplacer("&quot;", `"`, "&amp;", "&", "&#39;", "'", "&lt;", "<", "&gt;", ">").Replace(s)
	return strings.TrimSpace(spacesRe.ReplaceAllString(s, " "))
}

// ContainsAny reports whether text contains any of the substrings.
func ContainsAny(text string, subs []string) bool {
	for _, s := range subs {
		if s != "" && strings.Contains(text, s) {
			return true
		}
	}
	return false
}

// CountAny counts how many of the substrings occur in text.
func CountAny(text string, subs []string) int {
	n := 0
	for _, s := range subs {
		if s != "" && strings.Contains(text, s) {
			n++
		}
	}
	return n
}

// AppendUnique appends v when it is not present yet.
func AppendUnique(list []string, v string) []string {
	for _, s := range list {
		if s == v {
			return list
		}
	}
	return append(list, v)
}
