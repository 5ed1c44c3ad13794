package notion

import (
	"strconv"
	"strings"
	"time"

	notiondomain "github.com/vfg2006/brand-insights-api/infrastructure/integrator/notion/domain"
)

type Kind string

const (
	KindTitle        Kind = "title"
	KindRichText     Kind = "rich_text"
	KindNumber       Kind = "number"
	KindSelect       Kind = "select"
	KindMultiSelect  Kind = "multi_select"
	KindStatus       Kind = "status"
	KindDate         Kind = "date"
	KindURL          Kind = "url"
	KindEmail        Kind = "email"
	KindPhoneNumber  Kind = "phone_number"
	KindCheckbox     Kind = "checkbox"
	KindPeople       Kind = "people"
	KindFiles        Kind = "files"
	KindRollupNumber Kind = "rollup_number"
)

// Strategy lê uma propriedade interpretando-a com um tipo específico
type Strategy struct {
	Property string
	Kind     Kind
}

func S(property string, kind Kind) Strategy {
	return Strategy{Property: property, Kind: kind}
}

// Field é uma lista ordenada de estratégias. A primeira que produzir valor não vazio vence.
type Field []Strategy

func F(strategies ...Strategy) Field {
	return Field(strategies)
}

type value struct {
	text   string
	number float64
	list   []string
	flag   bool
}

// read extrai o valor bruto. ok é false quando a propriedade não existe ou está vazia.
func read(props map[string]notiondomain.Property, s Strategy) (value, bool) {
	prop, exists := props[s.Property]
	if !exists {
		return value{}, false
	}

	switch s.Kind {
	case KindTitle:
		return textValue(firstPlainText(prop.Title))
	case KindRichText:
		return textValue(firstPlainText(prop.RichText))
	case KindNumber:
		if prop.Number == nil || *prop.Number == 0 {
			return value{}, false
		}
		return value{number: *prop.Number, text: formatNumber(*prop.Number)}, true
	case KindRollupNumber:
		if prop.Rollup == nil || prop.Rollup.Number == nil || *prop.Rollup.Number == 0 {
			return value{}, false
		}
		n := *prop.Rollup.Number
		return value{number: n, text: formatNumber(n)}, true
	case KindSelect:
		if prop.Select == nil {
			return value{}, false
		}
		return textValue(prop.Select.Name)
	case KindStatus:
		if prop.Status == nil {
			return value{}, false
		}
		return textValue(prop.Status.Name)
	case KindMultiSelect:
		names := make([]string, 0, len(prop.MultiSelect))
		for _, option := range prop.MultiSelect {
			if option.Name != "" {
				names = append(names, option.Name)
			}
		}
		return listValue(names)
	case KindPeople:
		names := make([]string, 0, len(prop.People))
		for _, person := range prop.People {
			if person.Name != "" {
				names = append(names, person.Name)
			}
		}
		return listValue(names)
	case KindFiles:
		urls := make([]string, 0, len(prop.Files))
		for _, file := range prop.Files {
			if u := fileURL(file); u != "" {
				urls = append(urls, u)
			}
		}
		return listValue(urls)
	case KindDate:
		if prop.Date == nil {
			return value{}, false
		}
		return textValue(prop.Date.Start)
	case KindURL:
		return textValue(deref(prop.URL))
	case KindEmail:
		return textValue(deref(prop.Email))
	case KindPhoneNumber:
		return textValue(deref(prop.PhoneNumber))
	case KindCheckbox:
		if prop.Checkbox == nil || !*prop.Checkbox {
			return value{}, false
		}
		return value{flag: true, text: "true"}, true
	}

	return value{}, false
}

// Text retorna o primeiro texto não vazio. Listas devolvem o primeiro item.
func (f Field) Text(props map[string]notiondomain.Property, def string) string {
	for _, s := range f {
		if v, ok := read(props, s); ok && v.text != "" {
			return v.text
		}
	}
	return def
}

func (f Field) Number(props map[string]notiondomain.Property, def float64) float64 {
	for _, s := range f {
		v, ok := read(props, s)
		if !ok {
			continue
		}
		switch s.Kind {
		case KindNumber, KindRollupNumber:
			return v.number
		default:
			if n, ok := parseNumber(v.text); ok {
				return n
			}
		}
	}
	return def
}

func (f Field) List(props map[string]notiondomain.Property) []string {
	for _, s := range f {
		v, ok := read(props, s)
		if !ok {
			continue
		}
		if len(v.list) > 0 {
			return v.list
		}
		if v.text != "" {
			return []string{v.text}
		}
	}
	return []string{}
}

func (f Field) Bool(props map[string]notiondomain.Property, def bool) bool {
	for _, s := range f {
		if v, ok := read(props, s); ok && s.Kind == KindCheckbox {
			return v.flag
		}
	}
	return def
}

// Time lê uma data ISO (data ou data e hora). Retorna nil se nenhuma estratégia produzir data válida.
func (f Field) Time(props map[string]notiondomain.Property) *time.Time {
	for _, s := range f {
		v, ok := read(props, s)
		if !ok {
			continue
		}
		if t, err := time.Parse(time.RFC3339, v.text); err == nil {
			return &t
		}
		if t, err := time.Parse(time.DateOnly, v.text); err == nil {
			return &t
		}
	}
	return nil
}

// parseNumber aceita textos como "12,345" ou "1.2"
func parseNumber(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func textValue(s string) (value, bool) {
	if s == "" {
		return value{}, false
	}
	return value{text: s}, true
}

func listValue(items []string) (value, bool) {
	if len(items) == 0 {
		return value{}, false
	}
	return value{list: items, text: items[0]}, true
}

func firstPlainText(texts []notiondomain.RichText) string {
	if len(texts) == 0 {
		return ""
	}
	return texts[0].PlainText
}

func fileURL(file notiondomain.File) string {
	if file.External != nil && file.External.URL != "" {
		return file.External.URL
	}
	if file.File != nil {
		return file.File.URL
	}
	return ""
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
