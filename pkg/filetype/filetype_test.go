package filetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBinary(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    bool
	}{
		{name: "plain text", content: []byte("hello world\n"), want: false},
		{name: "go source", content: []byte("package main\n\nfunc main() {}\n"), want: false},
		{name: "nul bytes", content: []byte{0x00, 0x01, 0x02, 0x00}, want: true},
		{name: "png header", content: []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00}, want: true},
		{name: "empty", content: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBinary(tt.content))
		})
	}
}

func TestIsVendored(t *testing.T) {
	assert.True(t, IsVendored("vendor/github.com/foo/bar.go"))
	assert.True(t, IsVendored("node_modules/left-pad/index.js"))
	assert.False(t, IsVendored("cmd/srccheck/main.go"))
	assert.False(t, IsVendored("pkg/wellformed/validate.go"))
}

func TestLanguage(t *testing.T) {
	assert.Equal(t, "go", Language("main.go", []byte("package main\n")))
	assert.Equal(t, "python", Language("script.py", []byte("print('hi')\n")))
	assert.Equal(t, LanguageUnknown, Language("mystery", nil))
}

func TestClassify(t *testing.T) {
	c := Classify("vendor/lib.go", []byte("package lib\n"))
	assert.Equal(t, "go", c.Language)
	assert.False(t, c.Binary)
	assert.True(t, c.Vendored)
}
