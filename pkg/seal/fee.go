package seal

// Annual renewal fee tiers in cents, by employee count.
const (
	FeeSmallTierCents  int64 = 5000  // up to 20 employees
	FeeMediumTierCents int64 = 25000 // 21-50 employees

	// Large companies were meant to pay a discounted subscription rate, but
	// the pricing for that tier was never settled. Until it is, they fall
	// back to the medium tier. TODO: replace with the large-tier rate once
	// pricing signs off.
	FeeLargeTierCents int64 = FeeMediumTierCents
)

const (
	smallTierMaxEmployees  = 20
	mediumTierMaxEmployees = 50
)

// CalculateRenewalFee returns the yearly renewal fee for a company size
func CalculateRenewalFee(employeeCount int) int64 {
	switch {
	case employeeCount <= smallTierMaxEmployees:
		return FeeSmallTierCents
	case employeeCount <= mediumTierMaxEmployees:
		return FeeMediumTierCents
	default:
		return FeeLargeTierCents
	}
}
