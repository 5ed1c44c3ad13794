package notion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	notiondomain "github.com/vfg2006/brand-insights-api/infrastructure/integrator/notion/domain"
)

func num(n float64) *float64 { return &n }
func str(s string) *string   { return &s }
func flag(b bool) *bool      { return &b }

func title(s string) notiondomain.Property {
	return notiondomain.Property{Type: "title", Title: []notiondomain.RichText{{PlainText: s}}}
}

func richText(s string) notiondomain.Property {
	return notiondomain.Property{Type: "rich_text", RichText: []notiondomain.RichText{{PlainText: s}}}
}

func selectOf(name string) notiondomain.Property {
	return notiondomain.Property{Type: "select", Select: &notiondomain.Option{Name: name}}
}

func multiSelect(names ...string) notiondomain.Property {
	options := make([]notiondomain.Option, 0, len(names))
	for _, n := range names {
		options = append(options, notiondomain.Option{Name: n})
	}
	return notiondomain.Property{Type: "multi_select", MultiSelect: options}
}

func number(n float64) notiondomain.Property {
	return notiondomain.Property{Type: "number", Number: num(n)}
}

func dateOf(start string) notiondomain.Property {
	return notiondomain.Property{Type: "date", Date: &notiondomain.DateValue{Start: start}}
}

func TestField_TextFollowsPriority(t *testing.T) {
	field := F(S("캠페인명", KindTitle), S("이름", KindTitle))

	tests := []struct {
		name     string
		props    map[string]notiondomain.Property
		expected string
	}{
		{
			name:     "Primeira estratégia vence",
			props:    map[string]notiondomain.Property{"캠페인명": title("Verão"), "이름": title("Outro")},
			expected: "Verão",
		},
		{
			name:     "Valor vazio passa para a próxima",
			props:    map[string]notiondomain.Property{"캠페인명": title(""), "이름": title("Outro")},
			expected: "Outro",
		},
		{
			name:     "Propriedade ausente passa para a próxima",
			props:    map[string]notiondomain.Property{"이름": title("Outro")},
			expected: "Outro",
		},
		{
			name:     "Nenhuma estratégia usa o padrão",
			props:    map[string]notiondomain.Property{},
			expected: "padrão",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, field.Text(tt.props, "padrão"))
		})
	}
}

func TestField_SameNameWithDifferentKinds(t *testing.T) {
	field := F(S("카테고리", KindSelect), S("카테고리", KindMultiSelect))

	assert.Equal(t, "뷰티", field.Text(map[string]notiondomain.Property{"카테고리": selectOf("뷰티")}, ""))
	assert.Equal(t, "푸드", field.Text(map[string]notiondomain.Property{"카테고리": multiSelect("푸드", "헬스")}, ""))
}

func TestField_AllKinds(t *testing.T) {
	props := map[string]notiondomain.Property{
		"title":    title("Título"),
		"text":     richText("Texto"),
		"number":   number(42),
		"select":   selectOf("A"),
		"multi":    multiSelect("x", "y"),
		"status":   {Type: "status", Status: &notiondomain.Option{Name: "Em andamento"}},
		"date":     dateOf("2024-03-01"),
		"url":      {Type: "url", URL: str("https://instagram.com/p/1")},
		"email":    {Type: "email", Email: str("a@b.com")},
		"phone":    {Type: "phone_number", PhoneNumber: str("010-1234-5678")},
		"checkbox": {Type: "checkbox", Checkbox: flag(true)},
		"people":   {Type: "people", People: []notiondomain.Person{{Name: "Kim"}}},
		"files": {Type: "files", Files: []notiondomain.File{
			{Type: "file", File: &notiondomain.FileLink{URL: "https://s3/a.jpg"}},
			{Type: "external", External: &notiondomain.FileLink{URL: "https://cdn/b.jpg"}},
		}},
		"rollup": {Type: "rollup", Rollup: &notiondomain.Rollup{Type: "number", Number: num(7)}},
	}

	assert.Equal(t, "Título", F(S("title", KindTitle)).Text(props, ""))
	assert.Equal(t, "Texto", F(S("text", KindRichText)).Text(props, ""))
	assert.Equal(t, 42.0, F(S("number", KindNumber)).Number(props, 0))
	assert.Equal(t, "A", F(S("select", KindSelect)).Text(props, ""))
	assert.Equal(t, []string{"x", "y"}, F(S("multi", KindMultiSelect)).List(props))
	assert.Equal(t, "Em andamento", F(S("status", KindStatus)).Text(props, ""))
	assert.Equal(t, "2024-03-01", F(S("date", KindDate)).Text(props, ""))
	assert.Equal(t, "https://instagram.com/p/1", F(S("url", KindURL)).Text(props, ""))
	assert.Equal(t, "a@b.com", F(S("email", KindEmail)).Text(props, ""))
	assert.Equal(t, "010-1234-5678", F(S("phone", KindPhoneNumber)).Text(props, ""))
	assert.True(t, F(S("checkbox", KindCheckbox)).Bool(props, false))
	assert.Equal(t, "Kim", F(S("people", KindPeople)).Text(props, ""))
	assert.Equal(t, []string{"https://s3/a.jpg", "https://cdn/b.jpg"}, F(S("files", KindFiles)).List(props))
	assert.Equal(t, 7.0, F(S("rollup", KindRollupNumber)).Number(props, 0))

	date := F(S("date", KindDate)).Time(props)
	require.NotNil(t, date)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *date)
}

func TestField_NumberFallbacks(t *testing.T) {
	field := F(S("참여인원", KindNumber), S("참여자수", KindRollupNumber))

	zeroThenRollup := map[string]notiondomain.Property{
		"참여인원": number(0),
		"참여자수": {Type: "rollup", Rollup: &notiondomain.Rollup{Number: num(12)}},
	}
	assert.Equal(t, 12.0, field.Number(zeroThenRollup, 0), "zero conta como vazio")

	assert.Equal(t, 0.0, field.Number(map[string]notiondomain.Property{}, 0))

	followers := F(S("팔로워 수", KindRichText))
	assert.Equal(t, 12345.0, followers.Number(map[string]notiondomain.Property{"팔로워 수": richText("12,345")}, 0))
	assert.Equal(t, -1.0, followers.Number(map[string]notiondomain.Property{"팔로워 수": richText("muitos")}, -1))
}

func TestField_EmptyValues(t *testing.T) {
	props := map[string]notiondomain.Property{
		"select":   {Type: "select"},
		"checkbox": {Type: "checkbox", Checkbox: flag(false)},
		"multi":    {Type: "multi_select"},
		"url":      {Type: "url"},
	}

	assert.Equal(t, "x", F(S("select", KindSelect)).Text(props, "x"))
	assert.False(t, F(S("checkbox", KindCheckbox)).Bool(props, false))
	assert.Equal(t, []string{}, F(S("multi", KindMultiSelect)).List(props))
	assert.Equal(t, "", F(S("url", KindURL)).Text(props, ""))
	assert.Nil(t, F(S("select", KindDate)).Time(props))
}
