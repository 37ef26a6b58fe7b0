package domain

// BusinessProfileID is the fixed identifier of the singleton business
// profile document.
const BusinessProfileID = "default"

// BusinessProfile holds the issuing business's own details, printed on
// documents.
type BusinessProfile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl,omitempty"`
	Address string `json:"address,omitempty"`
	TaxID   string `json:"taxId,omitempty"`
}
