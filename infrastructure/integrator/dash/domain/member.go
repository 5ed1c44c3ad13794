package dashdomain

type LoginRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// Member é o membro devolvido pelo login do backend dash
type Member struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Status string `json:"status"`
}
