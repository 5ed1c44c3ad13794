package mentioning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/brand-insights-api/internal/domain"
)

func TestDedupeMentions(t *testing.T) {
	tests := []struct {
		name     string
		input    []domain.Mention
		expected []string
	}{
		{
			name: "Primeira ocorrência vence",
			input: []domain.Mention{
				{ID: "novo", PostURL: "https://instagram.com/p/1"},
				{ID: "outro", PostURL: "https://instagram.com/p/2"},
				{ID: "antigo", PostURL: "https://instagram.com/p/1"},
			},
			expected: []string{"novo", "outro"},
		},
		{
			name: "Registros sem URL são descartados",
			input: []domain.Mention{
				{ID: "sem-url"},
				{ID: "com-url", PostURL: "https://instagram.com/p/1"},
				{ID: "sem-url-2", PostURL: ""},
			},
			expected: []string{"com-url"},
		},
		{
			name:     "Entrada vazia",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DedupeMentions(tt.input)

			ids := make([]string, 0, len(got))
			for _, m := range got {
				ids = append(ids, m.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestDedupeMentions_Idempotent(t *testing.T) {
	input := []domain.Mention{
		{ID: "a", PostURL: "u1"},
		{ID: "b", PostURL: "u2"},
		{ID: "c", PostURL: "u1"},
		{ID: "d"},
		{ID: "e", PostURL: "u3"},
		{ID: "f", PostURL: "u2"},
	}

	once := DedupeMentions(input)
	twice := DedupeMentions(once)

	assert.Equal(t, once, twice)
	assert.Len(t, once, 3)
}
