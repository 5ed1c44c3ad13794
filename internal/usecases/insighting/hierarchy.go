package insighting

import (
	"cmp"
	"slices"
	"time"

	"github.com/vfg2006/brand-insights-api/internal/domain"
)

const (
	StatusFilterAll    = "all"
	StatusFilterActive = "active"
	StatusFilterEnded  = "ended"
)

// entity acumula metadados e totais de um nó enquanto a árvore é montada
type entity struct {
	node     *domain.AggregateNode
	lastSeen time.Time
	statuses map[domain.AdStatus]bool
	children map[string]*entity
}

func newEntity(id string, level domain.NodeLevel) *entity {
	return &entity{
		node: &domain.AggregateNode{
			ID:       id,
			Level:    level,
			Children: []*domain.AggregateNode{},
		},
		statuses: make(map[domain.AdStatus]bool),
		children: make(map[string]*entity),
	}
}

func (e *entity) child(id string, level domain.NodeLevel) *entity {
	c, ok := e.children[id]
	if !ok {
		c = newEntity(id, level)
		e.children[id] = c
	}
	return c
}

// BuildHierarchy monta a árvore campanha → conjunto → anúncio para a janela atual.
// Toda entidade presente nas linhas aparece, mesmo sem atividade na janela.
func BuildHierarchy(rows []domain.RawAdInsight, window domain.ComparisonWindow) []*domain.AggregateNode {
	root := newEntity("", "")

	for _, row := range rows {
		campaign := root.child(row.CampaignID, domain.LevelCampaign)
		adSet := campaign.child(row.AdSetID, domain.LevelAdSet)
		ad := adSet.child(row.AdID, domain.LevelAd)

		campaign.observe(row, row.CampaignName)
		adSet.observe(row, row.AdSetName)
		ad.observe(row, row.AdName)

		if !row.CampaignCreated.IsZero() {
			created := row.CampaignCreated
			campaign.node.CreatedTime = &created
		}
		if row.ThumbnailURL != "" {
			ad.node.ThumbnailURL = row.ThumbnailURL
		}
		if row.CreativeMessage != "" {
			ad.node.CreativeMessage = row.CreativeMessage
		}

		if window.Current.Contains(row.Date) {
			ad.node.Totals = ad.node.Totals.AddRow(row)
		}
	}

	campaigns := make([]*domain.AggregateNode, 0, len(root.children))
	for _, campaign := range root.children {
		campaigns = append(campaigns, campaign.fold())
	}

	slices.SortStableFunc(campaigns, compareCampaigns)

	return campaigns
}

func (e *entity) observe(row domain.RawAdInsight, name string) {
	// metadados vêm da linha mais recente com valor preenchido
	if !row.Date.Before(e.lastSeen) {
		e.lastSeen = row.Date
		if name != "" {
			e.node.Name = name
		}
		if row.Objective != "" {
			e.node.Objective = row.Objective
		}
	} else if e.node.Name == "" {
		e.node.Name = name
	}

	if row.PlatformStatus != "" {
		e.statuses[row.PlatformStatus] = true
	}
}

// fold soma os totais dos filhos de baixo para cima e recalcula as razões em cada nível
func (e *entity) fold() *domain.AggregateNode {
	if len(e.children) > 0 && e.node.Level != domain.LevelAd {
		e.node.Totals = domain.Totals{}
		children := make([]*domain.AggregateNode, 0, len(e.children))
		for _, c := range e.children {
			child := c.fold()
			e.node.Totals = e.node.Totals.Add(child.Totals)
			children = append(children, child)
		}
		slices.SortStableFunc(children, func(a, b *domain.AggregateNode) int {
			return cmp.Compare(a.ID, b.ID)
		})
		e.node.Children = children
	}

	e.node.Ratios = e.node.Totals.Derive()
	e.node.Status = domain.DeliveryEnded
	if e.node.Totals.HasDelivery() {
		e.node.Status = domain.DeliveryActive
	}
	e.node.PlatformStatus = e.platformStatus()
	if e.node.Objective != "" {
		e.node.ObjectiveLabel = domain.FormatObjective(e.node.Objective)
	}

	return e.node
}

func (e *entity) platformStatus() domain.AdStatus {
	switch {
	case e.statuses[domain.AdStatusActive]:
		return domain.AdStatusActive
	case e.statuses[domain.AdStatusPaused]:
		return domain.AdStatusPaused
	case len(e.statuses) > 0:
		return domain.AdStatusEnded
	default:
		return ""
	}
}

// campanhas mais novas primeiro; empate pelo id
func compareCampaigns(a, b *domain.AggregateNode) int {
	at, bt := createdAt(a), createdAt(b)
	if c := bt.Compare(at); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func createdAt(n *domain.AggregateNode) time.Time {
	if n.CreatedTime == nil {
		return time.Time{}
	}
	return *n.CreatedTime
}

// FilterByStatus aplica o filtro das abas "전체/진행중/종료" sobre as campanhas
func FilterByStatus(nodes []*domain.AggregateNode, filter string) []*domain.AggregateNode {
	var want domain.DeliveryStatus
	switch filter {
	case StatusFilterActive:
		want = domain.DeliveryActive
	case StatusFilterEnded:
		want = domain.DeliveryEnded
	default:
		return nodes
	}

	filtered := make([]*domain.AggregateNode, 0, len(nodes))
	for _, n := range nodes {
		if n.Status == want {
			filtered = append(filtered, n)
		}
	}
	return filtered
}

// TopCampaigns retorna as n campanhas de maior gasto na janela
func TopCampaigns(nodes []*domain.AggregateNode, n int) []*domain.AggregateNode {
	top := slices.Clone(nodes)
	slices.SortStableFunc(top, func(a, b *domain.AggregateNode) int {
		return b.Spend.Cmp(a.Spend)
	})
	if len(top) > n {
		top = top[:n]
	}
	return top
}
