package finance

import (
	"math"

	orderModel "catering-ops/models/order"
)

// Breakdown is the derived financial view of an order. None of these values
// are stored; they are recomputed from the order's guest count and stored
// financial terms on every read.
type Breakdown struct {
	MealCost            int `json:"meal_cost"`
	EffectiveServiceFee int `json:"effective_service_fee"`
	Subtotal            int `json:"subtotal"`
	Tax                 int `json:"tax"`
	Total               int `json:"total"`
	Balance             int `json:"balance"`
}

// serviceChargeRate is the percentage applied when the order carries the
// automatic service charge instead of a manually entered fee.
const serviceChargeRate = 0.10

// Compute derives the full financial breakdown for an order. Rounding is
// applied at each derived step (service fee from percentage, tax), not only
// at the end.
func Compute(o *orderModel.Order) Breakdown {
	return ComputeFrom(o.GuestCount, o.Financials)
}

// ComputeFrom derives the breakdown from a guest count and financial terms.
func ComputeFrom(guestCount int, f orderModel.Financials) Breakdown {
	mealCost := guestCount * f.BudgetPerHead

	serviceFee := f.ServiceFee
	if f.HasServiceCharge {
		serviceFee = roundHalf(float64(mealCost) * serviceChargeRate)
	}

	subtotal := mealCost + f.ShippingFee + serviceFee + f.Adjustments
	tax := roundHalf(float64(subtotal) * f.TaxRate)
	total := subtotal + tax

	return Breakdown{
		MealCost:            mealCost,
		EffectiveServiceFee: serviceFee,
		Subtotal:            subtotal,
		Tax:                 tax,
		Total:               total,
		Balance:             total - f.Deposit,
	}
}

// ApplyServiceChargeToggle flips the automatic-service-charge flag. Turning
// the flag on overwrites the stored manual fee with the computed 10% once;
// while the flag stays on the stored fee is ignored for computation.
func ApplyServiceChargeToggle(guestCount int, f orderModel.Financials, enabled bool) orderModel.Financials {
	if enabled && !f.HasServiceCharge {
		f.ServiceFee = roundHalf(float64(guestCount*f.BudgetPerHead) * serviceChargeRate)
	}
	f.HasServiceCharge = enabled
	return f
}

// MergeFinancials applies incoming financial terms over the stored ones.
// The stored service fee is read-only while the automatic charge stays on;
// only ApplyServiceChargeToggle may overwrite it.
func MergeFinancials(existing, incoming orderModel.Financials) orderModel.Financials {
	if existing.HasServiceCharge && incoming.HasServiceCharge {
		incoming.ServiceFee = existing.ServiceFee
	}
	return incoming
}

func roundHalf(v float64) int {
	return int(math.Round(v))
}
