package conf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineParser_Parse_SectionsAndKeys(t *testing.T) {
	t.Parallel()

	input := []byte(`[email]
admin = admin@example.com
[auth.ldap]
uri = "ldap://ldap1.example.com:389"
uri = "ldap://ldap2.example.com:389"
`)

	records, diagnostics := NewLineParser().Parse(input)

	require.Empty(t, diagnostics)
	require.Len(t, records, 5)

	assert.Equal(t, Record{Kind: SectionRecord, Section: []string{"email"}, Line: 1}, records[0])
	assert.Equal(t, Record{Kind: KeyValueRecord, Section: []string{"email"}, Key: "admin", Value: "admin@example.com", Line: 2}, records[1])
	assert.Equal(t, Record{Kind: SectionRecord, Section: []string{"auth", "ldap"}, Line: 3}, records[2])
	assert.Equal(t, Record{Kind: KeyValueRecord, Section: []string{"auth", "ldap"}, Key: "uri", Value: "ldap://ldap1.example.com:389", Line: 4}, records[3])
	assert.Equal(t, Record{Kind: KeyValueRecord, Section: []string{"auth", "ldap"}, Key: "uri", Value: "ldap://ldap2.example.com:389", Line: 5}, records[4])
}

func TestLineParser_Parse_TopLevelKeysBeforeAnyHeader(t *testing.T) {
	t.Parallel()

	records, diagnostics := NewLineParser().Parse([]byte("name = app\n[server]\nhost = localhost\n"))

	require.Empty(t, diagnostics)
	require.Len(t, records, 3)
	assert.Empty(t, records[0].Section)
	assert.Equal(t, "name", records[0].Key)
	assert.Equal(t, []string{"server"}, records[2].Section)
}

func TestLineParser_Parse_Diagnostics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantLine int
		wantMsg  string
	}{
		{
			name:     "unrecognized line",
			input:    "a = 1\ngarbage line with no equals or brackets\nb = 2\n",
			wantLine: 2,
			wantMsg:  "unrecognized line",
		},
		{
			name:     "empty key",
			input:    "= orphan value\n",
			wantLine: 1,
			wantMsg:  "empty key",
		},
		{
			name:     "empty section header",
			input:    "a = 1\n\n[]\n",
			wantLine: 3,
			wantMsg:  "empty section segment",
		},
		{
			name:     "empty section segment",
			input:    "[a..b]\n",
			wantLine: 1,
			wantMsg:  "empty section segment",
		},
		{
			name:     "empty scope segment in key",
			input:    "a..b = c\n",
			wantLine: 1,
			wantMsg:  "empty scope segment",
		},
	}

	for _, testInfo := range tests {
		testInfo := testInfo
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			_, diagnostics := NewLineParser().Parse([]byte(testInfo.input))

			require.Len(t, diagnostics, 1)
			assert.Equal(t, testInfo.wantLine, diagnostics[0].Line)
			assert.Contains(t, diagnostics[0].Message, testInfo.wantMsg)
		})
	}
}

func TestLineParser_Parse_BadLineDoesNotCorruptNeighbors(t *testing.T) {
	t.Parallel()

	input := []byte("[email]\nadmin = admin@example.com\ngarbage line with no equals or brackets\nbackup = backup@example.com\n")

	records, diagnostics := NewLineParser().Parse(input)

	require.Len(t, diagnostics, 1)
	assert.Equal(t, 3, diagnostics[0].Line)

	require.Len(t, records, 3)
	assert.Equal(t, "admin@example.com", records[1].Value)
	assert.Equal(t, "backup@example.com", records[2].Value)
	assert.Equal(t, []string{"email"}, records[2].Section)
}

func TestLineParser_Parse_BadHeaderKeepsCurrentSection(t *testing.T) {
	t.Parallel()

	input := []byte("[server]\n[.]\nhost = localhost\n")

	records, diagnostics := NewLineParser().Parse(input)

	require.Len(t, diagnostics, 1)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"server"}, records[1].Section)
}

func TestLineParser_Parse_Quoting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "unquoted value is trimmed",
			input: "key =    spaced out   \n",
			want:  "spaced out",
		},
		{
			name:  "quoted value keeps inner whitespace",
			input: `key = "  spaced out  "` + "\n",
			want:  "  spaced out  ",
		},
		{
			name:  "quotes are stripped verbatim without escape handling",
			input: `key = "a\nb"` + "\n",
			want:  `a\nb`,
		},
		{
			name:  "empty quoted value",
			input: `key = ""` + "\n",
			want:  "",
		},
		{
			name:  "unterminated quote is kept as-is",
			input: `key = "half open` + "\n",
			want:  `"half open`,
		},
		{
			name:  "empty value",
			input: "key =\n",
			want:  "",
		},
		{
			name:  "value containing delimiter splits on first occurrence",
			input: "key = a=b=c\n",
			want:  "a=b=c",
		},
	}

	for _, testInfo := range tests {
		testInfo := testInfo
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			records, diagnostics := NewLineParser().Parse([]byte(testInfo.input))

			require.Empty(t, diagnostics)
			require.Len(t, records, 1)
			assert.Equal(t, testInfo.want, records[0].Value)
		})
	}
}

func TestLineParser_Parse_Comments(t *testing.T) {
	t.Parallel()

	input := []byte("# pound comment\n// slash comment\n   # indented comment\nkey = value\n")

	records, diagnostics := NewLineParser().Parse(input)

	require.Empty(t, diagnostics)
	require.Len(t, records, 1)
	assert.Equal(t, 4, records[0].Line)
}

func TestLineParser_Parse_CustomSyntax(t *testing.T) {
	t.Parallel()

	parser := NewLineParser(
		WithCommentMarkers(";"),
		WithDelimiter(":"),
		WithScopeSeparator("/"),
	)

	input := []byte("; ini-style comment\n[a/b]\nkey: value\n")

	records, diagnostics := parser.Parse(input)

	require.Empty(t, diagnostics)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"a", "b"}, records[0].Section)
	assert.Equal(t, "value", records[1].Value)
}

func TestLineParser_Parse_ScopedKeys(t *testing.T) {
	t.Parallel()

	input := []byte("marbles.green = 2\n[sql.maria]\nauth.user = apache\n")

	records, diagnostics := NewLineParser().Parse(input)

	require.Empty(t, diagnostics)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"marbles"}, records[0].Section)
	assert.Equal(t, "green", records[0].Key)

	assert.Equal(t, []string{"sql", "maria", "auth"}, records[2].Section)
	assert.Equal(t, "user", records[2].Key)
}

func TestLineParser_Parse_WindowsLineEndings(t *testing.T) {
	t.Parallel()

	records, diagnostics := NewLineParser().Parse([]byte("[a]\r\nkey = value\r\n"))

	require.Empty(t, diagnostics)
	require.Len(t, records, 2)
	assert.Equal(t, "value", records[1].Value)
}

func TestLineParser_Parse_Deterministic(t *testing.T) {
	t.Parallel()

	input := []byte("[a]\nk = 1\nbroken\nk = 2\n")

	parser := NewLineParser()

	records1, diagnostics1 := parser.Parse(input)
	records2, diagnostics2 := parser.Parse(input)

	assert.Equal(t, records1, records2)
	assert.Equal(t, diagnostics1, diagnostics2)
}
