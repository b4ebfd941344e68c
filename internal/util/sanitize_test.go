package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ent0", "ent0"},
		{"U78CB.001.WZS0043-P1-C6-T1", "u78cb-001-wzs0043-p1-c6-t1"},
		{"VIOS Host 1", "vios-host-1"},
		{"a/b", "a-b"},
		{"", "unknown"},
		{"***", "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeID(tt.in), "SanitizeID(%q)", tt.in)
	}
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"ent5"`, Quote("ent5"))
	assert.Equal(t, `"say \"hi\""`, Quote(`say "hi"`))
}
