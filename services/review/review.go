package review

import (
	"errors"
	"time"

	vendorModel "catering-ops/models/vendor"
)

var (
	ErrNoPendingUpdate = errors.New("vendor has no pending update")
)

// SubmitUpdate stores a collaborator-submitted profile change on the vendor.
// The submission replaces any unreviewed prior one wholesale and does not
// touch the live description, pricing or images.
func SubmitUpdate(v *vendorModel.Vendor, description, pricingTerms string, serviceImages []string, now time.Time) {
	v.PendingUpdate = &vendorModel.ProfileUpdate{
		Description:   description,
		PricingTerms:  pricingTerms,
		ServiceImages: serviceImages,
		SubmittedAt:   now,
	}
}

// Reject discards the pending update. Live fields are unchanged.
func Reject(v *vendorModel.Vendor) error {
	if v.PendingUpdate == nil {
		return ErrNoPendingUpdate
	}
	v.PendingUpdate = nil
	return nil
}

// Staged is the pending data loaded into the operator's review form.
// Approval is never silent: the operator stages the data, sets or confirms
// the client-facing price, then saves.
type Staged struct {
	Description   string   `json:"description"`
	PricingTerms  string   `json:"pricing_terms"`
	ServiceImages []string `json:"service_images"`
}

// Stage loads the pending update for review.
func Stage(v *vendorModel.Vendor) (Staged, error) {
	if v.PendingUpdate == nil {
		return Staged{}, ErrNoPendingUpdate
	}
	return Staged{
		Description:   v.PendingUpdate.Description,
		PricingTerms:  v.PendingUpdate.PricingTerms,
		ServiceImages: v.PendingUpdate.ServiceImages,
	}, nil
}

// Approve overwrites the live description, internal pricing and images from
// the staged values and records which fields actually changed. The client
// price is whatever the operator set in the form — it is never copied from
// the submission. The pending update is cleared.
func Approve(v *vendorModel.Vendor, staged Staged, clientPricingTerms string) error {
	if v.PendingUpdate == nil {
		return ErrNoPendingUpdate
	}

	var modified vendorModel.StringSlice
	if deref(v.Description) != staged.Description {
		modified = append(modified, "description")
	}
	if deref(v.PricingTerms) != staged.PricingTerms {
		modified = append(modified, "pricing_terms")
	}
	if !equalImages(v.ServiceImages, staged.ServiceImages) {
		modified = append(modified, "service_images")
	}
	if deref(v.ClientPricingTerms) != clientPricingTerms {
		modified = append(modified, "client_pricing_terms")
	}

	v.Description = ptr(staged.Description)
	v.PricingTerms = ptr(staged.PricingTerms)
	v.ServiceImages = vendorModel.StringSlice(staged.ServiceImages)
	v.ClientPricingTerms = ptr(clientPricingTerms)
	v.PendingUpdate = nil
	v.LastModifiedFields = modified
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ptr(s string) *string {
	return &s
}

func equalImages(a vendorModel.StringSlice, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
