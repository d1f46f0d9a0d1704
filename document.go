package mdpanel

import (
	"github.com/riverfjs/mdpanel/internal/converter"
	"github.com/riverfjs/mdpanel/internal/placeholder"
	"github.com/riverfjs/mdpanel/internal/util"
)

// Document is the result of processing one source snapshot.
type Document struct {
	Markup    string
	Stats     Stats
	Issues    Issues
	CodeFiles []CodeFile
	CharLevel CharLevel
}

// CodeFile is a fenced code block ready to be saved as a file.
type CodeFile struct {
	FileName string
	Language string
	Code     string
}

// Data returns the file contents with a trailing newline.
func (f CodeFile) Data() []byte {
	return []byte(f.Code + "\n")
}

// ExtractCodeFiles returns every complete fenced block of markdown in document
// order, each with a unique file name derived from its first lines or language.
func ExtractCodeFiles(markdown string) []CodeFile {
	return namedFiles(converter.CodeBlocks(normalizeNewlines(markdown)))
}

func codeFiles(table *placeholder.Table) []CodeFile {
	var blocks []placeholder.CodePayload
	for _, e := range table.Entries() {
		if e.Kind == placeholder.CodeBlock {
			blocks = append(blocks, e.Code)
		}
	}
	return namedFiles(blocks)
}

func namedFiles(blocks []placeholder.CodePayload) []CodeFile {
	var files []CodeFile
	seen := make(map[string]bool)
	for _, b := range blocks {
		files = append(files, CodeFile{
			FileName: util.UniqueName(util.GetFilename(b.Code, b.Language), seen),
			Language: b.Language,
			Code:     b.Code,
		})
	}
	return files
}
