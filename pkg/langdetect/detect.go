// Package langdetect guesses the language of code content. It backs the
// fence annotations the Markdown serializer writes for code blocks whose
// source carries no language information.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Unknown is returned when no language can be named with confidence.
// Callers emit an unannotated fence in that case.
const Unknown = ""

// Fence identifiers for the languages the pattern checks recognize.
const (
	langGo         = "go"
	langPython     = "python"
	langJSON       = "json"
	langYAML       = "yaml"
	langHTML       = "html"
	langSQL        = "sql"
	langJavaScript = "javascript"
)

// Detect returns the fence identifier for code content, or Unknown.
func Detect(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return Unknown
	}

	// A shebang is the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	// Cheap high-precision patterns beat the classifier for short
	// snippets, which is what table cells and fences mostly hold.
	if lang := detectByPattern(trimmed); lang != Unknown {
		return lang
	}

	candidates := []string{
		"Go", "Python", "Shell", "JavaScript", "TypeScript",
		"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON", "YAML", "HTML",
	}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return Unknown
}

func detectByPattern(trimmed []byte) string {
	s := string(trimmed)
	switch {
	case bytes.HasPrefix(trimmed, []byte("package ")) && strings.Contains(s, "func "):
		return langGo
	case strings.Contains(s, "def ") && strings.Contains(s, "):"):
		return langPython
	case hasHTMLTag(trimmed):
		return langHTML
	case (trimmed[0] == '{' || trimmed[0] == '[') && bytes.Contains(trimmed, []byte(`"`)):
		return langJSON
	case hasSQLKeyword(s):
		return langSQL
	case strings.Contains(s, "console.log") || strings.Contains(s, "=> {"):
		return langJavaScript
	case looksLikeYAML(trimmed):
		return langYAML
	default:
		return Unknown
	}
}

func hasHTMLTag(trimmed []byte) bool {
	lower := bytes.ToLower(trimmed)
	return bytes.Contains(lower, []byte("<!doctype html")) ||
		bytes.Contains(lower, []byte("<html")) ||
		bytes.Contains(lower, []byte("<body>"))
}

func hasSQLKeyword(s string) bool {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for _, kw := range []string{"SELECT ", "INSERT INTO ", "UPDATE ", "DELETE FROM ", "CREATE TABLE "} {
		if strings.HasPrefix(upper, kw) {
			return true
		}
	}
	return false
}

// looksLikeYAML counts key: value lines; two or more suggest YAML.
func looksLikeYAML(trimmed []byte) bool {
	keyCount := 0
	for _, line := range bytes.Split(trimmed, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' || bytes.HasPrefix(line, []byte("- ")) {
			continue
		}
		colon := bytes.IndexByte(line, ':')
		if colon <= 0 || (colon != len(line)-1 && line[colon+1] != ' ') {
			return false
		}
		keyCount++
	}
	return keyCount >= 2
}

// normalize maps enry language names to fence identifiers.
func normalize(lang string) string {
	switch lang {
	case "":
		return Unknown
	case "Shell":
		return "bash"
	default:
		return strings.ToLower(lang)
	}
}
