package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	orderModel "catering-ops/models/order"
)

func TestComputeFromManualServiceFee(t *testing.T) {
	f := orderModel.Financials{
		BudgetPerHead: 800,
		ShippingFee:   1200,
		ServiceFee:    2000,
		TaxRate:       0.05,
		Deposit:       3840,
	}

	b := ComputeFrom(20, f)

	assert.Equal(t, 16000, b.MealCost)
	assert.Equal(t, 2000, b.EffectiveServiceFee)
	assert.Equal(t, 19200, b.Subtotal)
	assert.Equal(t, 960, b.Tax)
	assert.Equal(t, 20160, b.Total)
	assert.Equal(t, 16320, b.Balance)
}

func TestComputeFromAutomaticServiceCharge(t *testing.T) {
	f := orderModel.Financials{
		BudgetPerHead:    800,
		ServiceFee:       2000, // ignored while the flag is on
		HasServiceCharge: true,
		TaxRate:          0.05,
	}

	b := ComputeFrom(20, f)

	assert.Equal(t, 1600, b.EffectiveServiceFee)
	assert.Equal(t, 17600, b.Subtotal)
	assert.Equal(t, 880, b.Tax)
	assert.Equal(t, 18480, b.Total)
}

func TestComputeFromRoundsEachStep(t *testing.T) {
	f := orderModel.Financials{
		BudgetPerHead:    333,
		HasServiceCharge: true,
		TaxRate:          0.05,
	}

	b := ComputeFrom(3, f)

	// 999 * 0.10 = 99.9 rounds to 100, then (999+100) * 0.05 = 54.95 rounds
	// to 55 — not a single rounding of the exact total.
	assert.Equal(t, 100, b.EffectiveServiceFee)
	assert.Equal(t, 55, b.Tax)
	assert.Equal(t, 1154, b.Total)
}

func TestComputeFromNegativeAdjustments(t *testing.T) {
	f := orderModel.Financials{
		BudgetPerHead: 500,
		Adjustments:   -1000,
		TaxRate:       0.05,
	}

	b := ComputeFrom(10, f)

	assert.Equal(t, 4000, b.Subtotal)
	assert.Equal(t, 200, b.Tax)
	assert.Equal(t, 4200, b.Total)
}

func TestComputeFromZeroGuests(t *testing.T) {
	b := ComputeFrom(0, orderModel.Financials{BudgetPerHead: 800, TaxRate: 0.05})

	assert.Equal(t, 0, b.MealCost)
	assert.Equal(t, 0, b.Total)
}

func TestApplyServiceChargeToggleOverwritesStoredFee(t *testing.T) {
	f := orderModel.Financials{
		BudgetPerHead: 800,
		ServiceFee:    2000,
	}

	enabled := ApplyServiceChargeToggle(20, f, true)
	assert.True(t, enabled.HasServiceCharge)
	assert.Equal(t, 1600, enabled.ServiceFee)

	// Disabling keeps the last computed value as the manual fee.
	disabled := ApplyServiceChargeToggle(20, enabled, false)
	assert.False(t, disabled.HasServiceCharge)
	assert.Equal(t, 1600, disabled.ServiceFee)
}

func TestApplyServiceChargeToggleIdempotentWhileOn(t *testing.T) {
	f := orderModel.Financials{BudgetPerHead: 800, HasServiceCharge: true, ServiceFee: 1600}

	again := ApplyServiceChargeToggle(25, f, true)

	// Already on: the stored fee is not recomputed.
	assert.Equal(t, 1600, again.ServiceFee)
}

func TestMergeFinancialsKeepsStoredFeeWhileChargeOn(t *testing.T) {
	existing := orderModel.Financials{ServiceFee: 1600, HasServiceCharge: true}
	incoming := orderModel.Financials{ServiceFee: 9999, HasServiceCharge: true, ShippingFee: 500}

	merged := MergeFinancials(existing, incoming)

	assert.Equal(t, 1600, merged.ServiceFee)
	assert.Equal(t, 500, merged.ShippingFee)
	assert.True(t, merged.HasServiceCharge)
}

func TestMergeFinancialsAllowsFeeEditWhileChargeOff(t *testing.T) {
	existing := orderModel.Financials{ServiceFee: 2000}
	incoming := orderModel.Financials{ServiceFee: 2500}

	assert.Equal(t, 2500, MergeFinancials(existing, incoming).ServiceFee)
}

func TestMergeFinancialsTurningChargeOffReleasesFee(t *testing.T) {
	existing := orderModel.Financials{ServiceFee: 1600, HasServiceCharge: true}
	incoming := orderModel.Financials{ServiceFee: 1800, HasServiceCharge: false}

	merged := MergeFinancials(existing, incoming)

	assert.False(t, merged.HasServiceCharge)
	assert.Equal(t, 1800, merged.ServiceFee)
}

func TestComputeUsesOrderFields(t *testing.T) {
	o := &orderModel.Order{
		GuestCount: 20,
		Financials: orderModel.Financials{
			BudgetPerHead: 800,
			ShippingFee:   1200,
			ServiceFee:    2000,
			TaxRate:       0.05,
			Deposit:       3840,
		},
	}

	assert.Equal(t, ComputeFrom(20, o.Financials), Compute(o))
}
