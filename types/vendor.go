package types

// SubmitProfileUpdateRequest is a collaborator's proposed profile change.
// It replaces any unreviewed prior submission wholesale.
type SubmitProfileUpdateRequest struct {
	Description   string   `json:"description"`
	PricingTerms  string   `json:"pricing_terms"`
	ServiceImages []string `json:"service_images"`
}

// ReviewProfileRequest resolves a pending update. On approval the operator
// supplies the staged values (loaded via the stage endpoint, possibly
// edited) and must set the client-facing price explicitly.
type ReviewProfileRequest struct {
	Approve            bool     `json:"approve"`
	Description        string   `json:"description,omitempty"`
	PricingTerms       string   `json:"pricing_terms,omitempty"`
	ServiceImages      []string `json:"service_images,omitempty"`
	ClientPricingTerms string   `json:"client_pricing_terms,omitempty"`
}
