package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMentions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"none", "no mentions here", []string{}},
		{"single", "hi @alice", []string{"alice"}},
		{"multiple in order", "hi @alice and @bob", []string{"alice", "bob"}},
		{"repeated", "@alice @alice", []string{"alice", "alice"}},
		{"underscore and digits", "ping @bob_42", []string{"bob_42"}},
		{"punctuation boundary", "thanks @alice!", []string{"alice"}},
		{"bare at", "just an @ sign", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractMentions(tt.content))
		})
	}
}

func TestRenderMentions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"none", "plain text", "plain text"},
		{"single", "hi @alice", `hi <a href="!alice">@alice</a>`},
		{
			"multiple",
			"hello @alice and @bob",
			`hello <a href="!alice">@alice</a> and <a href="!bob">@bob</a>`,
		},
		{"trailing punctuation", "thanks @alice!", `thanks <a href="!alice">@alice</a>!`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderMentions(tt.content))
		})
	}
}
