package dashdomain

import "fmt"

// Response é o envelope padrão das respostas do backend dash
type Response[T any] struct {
	ResponseName string `json:"responseName"`
	ResponseCode int    `json:"responseCode"`
	Message      string `json:"message"`
	Result       T      `json:"result"`
}

// ErrorResponse representa o corpo de erro devolvido pelo backend dash
type ErrorResponse struct {
	StatusCode   int    `json:"-"`
	ResponseName string `json:"responseName"`
	ResponseCode int    `json:"responseCode"`
	Message      string `json:"message"`
}

func (e *ErrorResponse) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend dash retornou status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend dash retornou status %d: %s", e.StatusCode, e.Message)
}

// IsUnauthorized indica credenciais recusadas pelo backend dash
func (e *ErrorResponse) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}
