package mentioning

import "github.com/vfg2006/brand-insights-api/internal/domain"

// DedupeMentions mantém a primeira ocorrência de cada PostURL e descarta registros sem URL.
// A entrada deve vir da mais recente para a mais antiga.
func DedupeMentions(records []domain.Mention) []domain.Mention {
	seen := make(map[string]struct{}, len(records))
	deduped := make([]domain.Mention, 0, len(records))

	for _, m := range records {
		if m.PostURL == "" {
			continue
		}
		if _, ok := seen[m.PostURL]; ok {
			continue
		}
		seen[m.PostURL] = struct{}{}
		deduped = append(deduped, m)
	}

	return deduped
}
