package notiondomain

import "fmt"

const MaxPageSize = 100

type QueryRequest struct {
	Filter      any    `json:"filter,omitempty"`
	Sorts       []Sort `json:"sorts,omitempty"`
	StartCursor string `json:"start_cursor,omitempty"`
	PageSize    int    `json:"page_size,omitempty"`
}

type QueryResponse struct {
	Object     string  `json:"object"`
	Results    []Page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

type Sort struct {
	Property  string `json:"property,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Direction string `json:"direction"`
}

func SortByTimestamp(timestamp string) Sort {
	return Sort{Timestamp: timestamp, Direction: "descending"}
}

func SortByProperty(property string) Sort {
	return Sort{Property: property, Direction: "descending"}
}

// RelationContains filtra páginas cuja relação contém a página informada
func RelationContains(property, pageID string) map[string]any {
	return map[string]any{
		"property": property,
		"relation": map[string]string{"contains": pageID},
	}
}

// ErrorResponse é o corpo de erro da API do Notion
type ErrorResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorResponse) Error() string {
	return fmt.Sprintf("notion: %d %s: %s", e.Status, e.Code, e.Message)
}

func (e *ErrorResponse) IsNotFound() bool {
	return e.Status == 404 || e.Code == "object_not_found"
}
