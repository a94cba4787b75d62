package topic

type CreateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
