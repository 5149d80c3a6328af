package plans

import "time"

// Plan is a subscription tier offered to CV builder users.
type Plan struct {
	ID             string    `json:"id"`
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	PriceCents     int       `json:"priceCents"`
	Currency       string    `json:"currency"`
	Interval       string    `json:"interval"`
	MonthlyImports int       `json:"monthlyImports"`
	MonthlyReviews int       `json:"monthlyReviews"`
	Features       []string  `json:"features"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Defaults returns the built-in catalog used when no rows exist yet.
func Defaults() []Plan {
	return []Plan{
		{
			ID:             "plan-free",
			Code:           "free",
			Name:           "Free",
			PriceCents:     0,
			Currency:       "usd",
			Interval:       "month",
			MonthlyImports: 1,
			MonthlyReviews: 3,
			Features:       []string{"1 CV import", "3 review sessions per month"},
			Active:         true,
		},
		{
			ID:             "plan-pro",
			Code:           "pro",
			Name:           "Pro",
			PriceCents:     900,
			Currency:       "usd",
			Interval:       "month",
			MonthlyImports: 20,
			MonthlyReviews: 100,
			Features:       []string{"20 CV imports", "100 review sessions per month", "Priority rendering"},
			Active:         true,
		},
	}
}
