package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trims whitespace", input: "  My Notes  ", want: "My Notes"},
		{name: "empty defaults", input: "", want: DefaultTitle},
		{name: "whitespace only defaults", input: "   \t", want: DefaultTitle},
		{name: "plain title unchanged", input: "Report", want: "Report"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTitle(tt.input))
		})
	}
}
