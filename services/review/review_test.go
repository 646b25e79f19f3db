package review

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vendorModel "catering-ops/models/vendor"
)

func strPtr(s string) *string { return &s }

func newVendor() *vendorModel.Vendor {
	return &vendorModel.Vendor{
		ID:                 "v-1",
		Name:               "美味廚房",
		Description:        strPtr("D1"),
		PricingTerms:       strPtr("P1"),
		ClientPricingTerms: strPtr("C1"),
		ServiceImages:      vendorModel.StringSlice{"img1.jpg"},
	}
}

func TestSubmitUpdateDoesNotTouchLiveFields(t *testing.T) {
	v := newVendor()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	SubmitUpdate(v, "D2", "P2", []string{"img2.jpg"}, now)

	require.NotNil(t, v.PendingUpdate)
	assert.Equal(t, "D2", v.PendingUpdate.Description)
	assert.Equal(t, "P2", v.PendingUpdate.PricingTerms)
	assert.Equal(t, now, v.PendingUpdate.SubmittedAt)

	assert.Equal(t, "D1", *v.Description)
	assert.Equal(t, "P1", *v.PricingTerms)
	assert.Equal(t, vendorModel.StringSlice{"img1.jpg"}, v.ServiceImages)
}

func TestSubmitUpdateReplacesPriorSubmission(t *testing.T) {
	v := newVendor()
	SubmitUpdate(v, "D2", "P2", nil, time.Now())
	SubmitUpdate(v, "D3", "P3", nil, time.Now())

	require.NotNil(t, v.PendingUpdate)
	assert.Equal(t, "D3", v.PendingUpdate.Description)
}

func TestRejectDiscardsPendingOnly(t *testing.T) {
	v := newVendor()
	SubmitUpdate(v, "D2", "P2", []string{"img2.jpg"}, time.Now())

	require.NoError(t, Reject(v))

	assert.Nil(t, v.PendingUpdate)
	assert.Equal(t, "D1", *v.Description)
	assert.Equal(t, "P1", *v.PricingTerms)
	assert.Equal(t, "C1", *v.ClientPricingTerms)
}

func TestRejectWithoutPending(t *testing.T) {
	assert.ErrorIs(t, Reject(newVendor()), ErrNoPendingUpdate)
}

func TestStageLoadsPendingData(t *testing.T) {
	v := newVendor()
	SubmitUpdate(v, "D2", "P2", []string{"img2.jpg"}, time.Now())

	staged, err := Stage(v)
	require.NoError(t, err)
	assert.Equal(t, "D2", staged.Description)
	assert.Equal(t, "P2", staged.PricingTerms)
	assert.Equal(t, []string{"img2.jpg"}, staged.ServiceImages)
}

func TestStageWithoutPending(t *testing.T) {
	_, err := Stage(newVendor())
	assert.ErrorIs(t, err, ErrNoPendingUpdate)
}

func TestApproveAppliesStagedAndOperatorClientPrice(t *testing.T) {
	v := newVendor()
	SubmitUpdate(v, "D2", "P2", []string{"img2.jpg"}, time.Now())
	staged, err := Stage(v)
	require.NoError(t, err)

	require.NoError(t, Approve(v, staged, "X"))

	assert.Equal(t, "D2", *v.Description)
	assert.Equal(t, "P2", *v.PricingTerms)
	assert.Equal(t, vendorModel.StringSlice{"img2.jpg"}, v.ServiceImages)
	// The client price is the operator's value, never the submission's.
	assert.Equal(t, "X", *v.ClientPricingTerms)
	assert.Nil(t, v.PendingUpdate)
}

func TestApproveRecordsModifiedFields(t *testing.T) {
	v := newVendor()
	SubmitUpdate(v, "D2", "P1", []string{"img1.jpg"}, time.Now())
	staged, err := Stage(v)
	require.NoError(t, err)

	require.NoError(t, Approve(v, staged, "C1"))

	// Only the description actually changed.
	assert.Equal(t, vendorModel.StringSlice{"description"}, v.LastModifiedFields)
}

func TestApproveWithEditedStagedValues(t *testing.T) {
	v := newVendor()
	SubmitUpdate(v, "D2", "P2", []string{"img1.jpg"}, time.Now())
	staged, err := Stage(v)
	require.NoError(t, err)

	// Operator tweaks the submission before saving.
	staged.Description = "D2-edited"
	require.NoError(t, Approve(v, staged, "C2"))

	assert.Equal(t, "D2-edited", *v.Description)
	assert.ElementsMatch(t, vendorModel.StringSlice{
		"description", "pricing_terms", "client_pricing_terms",
	}, v.LastModifiedFields)
}

func TestApproveWithoutPending(t *testing.T) {
	assert.ErrorIs(t, Approve(newVendor(), Staged{}, "X"), ErrNoPendingUpdate)
}
