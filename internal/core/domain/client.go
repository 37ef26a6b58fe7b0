package domain

// Client represents a customer that documents are billed to.
type Client struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CompanyName string `json:"companyName,omitempty"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
}
