package util

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// languageAliases maps short fence tags to the canonical language name.
var languageAliases = map[string]string{
	"js":     "javascript",
	"mjs":    "javascript",
	"node":   "javascript",
	"ts":     "typescript",
	"py":     "python",
	"py3":    "python",
	"golang": "go",
	"sh":     "bash",
	"zsh":    "bash",
	"shell":  "bash",
	"yml":    "yaml",
	"htm":    "html",
	"xhtml":  "html",
	"md":     "markdown",
	"rb":     "ruby",
	"rs":     "rust",
	"cpp":    "c++",
	"cc":     "c++",
	"kt":     "kotlin",
	"text":   "plaintext",
	"txt":    "plaintext",
}

// LanguageToExt maps canonical language names to file extensions.
var LanguageToExt = map[string]string{
	"python":     "py",
	"javascript": "js",
	"typescript": "ts",
	"java":       "java",
	"c++":        "cpp",
	"c":          "c",
	"html":       "html",
	"css":        "css",
	"bash":       "sh",
	"php":        "php",
	"markdown":   "md",
	"json":       "json",
	"yaml":       "yaml",
	"xml":        "xml",
	"dockerfile": "dockerfile",
	"plaintext":  "txt",
	"toml":       "toml",
	"go":         "go",
	"ruby":       "rb",
	"rust":       "rs",
	"swift":      "swift",
	"kotlin":     "kt",
	"sql":        "sql",
	"jsx":        "jsx",
	"tsx":        "tsx",
	"mermaid":    "mmd",
}

// CanonicalLanguage lower-cases a fence tag and resolves aliases.
// Only the first word of the tag counts: "js title=x" is "javascript".
func CanonicalLanguage(tag string) string {
	fields := strings.Fields(strings.ToLower(tag))
	if len(fields) == 0 {
		return ""
	}
	lang := fields[0]
	if alias, ok := languageAliases[lang]; ok {
		return alias
	}
	return lang
}

// GetExt returns the file extension for a fence tag, "txt" when unknown.
func GetExt(language string) string {
	ext, ok := LanguageToExt[CanonicalLanguage(language)]
	if !ok {
		return "txt"
	}
	return ext
}

var filenamePattern = regexp.MustCompile(`([a-zA-Z0-9_\-\.]+\.[a-zA-Z0-9]+)`)

// ExtractValidFilename returns the first token of line that looks like a file name.
func ExtractValidFilename(line string) string {
	for _, match := range filenamePattern.FindAllString(line, -1) {
		if filepath.Ext(match) != "" {
			return match
		}
	}
	return ""
}

// GetFilename names a code block. A file name mentioned in the first two lines
// wins; otherwise the name is "snippet.<ext>".
func GetFilename(code string, language string) string {
	lines := strings.SplitN(strings.TrimSpace(code), "\n", 3)
	sample := lines[0]
	if len(lines) > 1 {
		sample += " " + lines[1]
	}
	sample = strings.ReplaceAll(sample, "\\", "")

	ext := GetExt(language)
	if name := ExtractValidFilename(sample); name != "" {
		if strings.HasSuffix(name, "."+ext) && len(name) <= 24 {
			return name
		}
		return name + "." + ext
	}
	return "snippet." + ext
}

// UniqueName appends -2, -3, ... before the extension until name is not in seen,
// then records it.
func UniqueName(name string, seen map[string]bool) string {
	candidate := name
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 2; seen[candidate]; i++ {
		candidate = base + "-" + strconv.Itoa(i) + ext
	}
	seen[candidate] = true
	return candidate
}
