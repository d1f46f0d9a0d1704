package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalLanguage(t *testing.T) {
	assert.Equal(t, "javascript", CanonicalLanguage("JS"))
	assert.Equal(t, "python", CanonicalLanguage(" py "))
	assert.Equal(t, "go", CanonicalLanguage("go title=main.go"))
	assert.Equal(t, "", CanonicalLanguage(""))
	assert.Equal(t, "haskell", CanonicalLanguage("haskell"))
}

func TestGetExt(t *testing.T) {
	assert.Equal(t, "py", GetExt("python"))
	assert.Equal(t, "js", GetExt("js"))
	assert.Equal(t, "txt", GetExt(""))
	assert.Equal(t, "txt", GetExt("brainfuck"))
}

func TestGetFilename(t *testing.T) {
	tests := []struct {
		name string
		code string
		lang string
		want string
	}{
		{"fallback", "print(1)", "python", "snippet.py"},
		{"named in comment", "# app.py\nprint(1)", "python", "app.py"},
		{"wrong extension", "// config.json\nx", "js", "config.json.js"},
		{"second line", "#!/bin/sh\n# deploy.sh", "sh", "deploy.sh"},
		{"unknown language", "hello", "", "snippet.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetFilename(tt.code, tt.lang))
		})
	}
}

func TestUniqueName(t *testing.T) {
	seen := map[string]bool{}
	assert.Equal(t, "snippet.go", UniqueName("snippet.go", seen))
	assert.Equal(t, "snippet-2.go", UniqueName("snippet.go", seen))
	assert.Equal(t, "snippet-3.go", UniqueName("snippet.go", seen))
	assert.Equal(t, "main.go", UniqueName("main.go", seen))
}
