package domain

type Notification struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id"`
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	IsRead     bool              `json:"is_read"`
	Attributes map[string]string `json:"attributes"`
	CreatedAt  string            `json:"created_at"`
}
