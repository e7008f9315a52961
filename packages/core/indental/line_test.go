package indental

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want line
	}{
		{
			name: "bare label",
			raw:  "NAME",
			want: line{number: 1, indent: 0, content: "NAME"},
		},
		{
			name: "indented item",
			raw:  "    ITEM 1  ",
			want: line{number: 1, indent: 4, content: "ITEM 1"},
		},
		{
			name: "key value",
			raw:  "  KEY : VALUE",
			want: line{number: 1, indent: 2, content: "KEY : VALUE", hasKey: true, key: "KEY", value: "VALUE"},
		},
		{
			name: "empty line",
			raw:  "",
			want: line{number: 1, indent: 0, skipped: true},
		},
		{
			name: "whitespace only",
			raw:  "   \t",
			want: line{number: 1, indent: 4, skipped: true},
		},
		{
			name: "comment",
			raw:  "; note : here",
			want: line{number: 1, indent: 0, content: "; note : here", skipped: true, hasKey: true, key: "; note", value: "here"},
		},
		{
			name: "indented semicolon",
			raw:  "  ;item",
			want: line{number: 1, indent: 2, content: ";item"},
		},
		{
			name: "empty value",
			raw:  "KEY : ",
			want: line{number: 1, indent: 0, content: "KEY :", hasKey: true, key: "KEY", value: ""},
		},
		{
			name: "non-breaking space indent",
			raw:  "\u00a0\u00a0x",
			want: line{number: 1, indent: 2, content: "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.raw, 1))
		})
	}
}

func TestClassifyLines_KeepsBlankLines(t *testing.T) {
	lines := classifyLines("A\n\n  B\n")

	assert.Len(t, lines, 4)
	assert.Equal(t, 1, lines[0].number)
	assert.True(t, lines[1].skipped)
	assert.Equal(t, 3, lines[2].number)
	assert.Equal(t, 2, lines[2].indent)
	assert.True(t, lines[3].skipped)
}

func TestMeasureIndent_CountsCharacters(t *testing.T) {
	assert.Equal(t, 0, measureIndent("x"))
	assert.Equal(t, 3, measureIndent(" \t x"))
	assert.Equal(t, 2, measureIndent("\u3000\u3000漢字"))
	assert.Equal(t, 5, measureIndent("     "))
}
