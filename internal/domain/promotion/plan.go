package promotion

import "errors"

var ErrUnknownPlan = errors.New("no price plan for kind and duration")

// Plan is a purchasable promotion option. Prices are fixed server-side; the
// checkout flow never trusts a client-supplied amount.
type Plan struct {
	Kind        Kind
	Days        int
	AmountCents int64
	Label       string
}

var plans = []Plan{
	{Kind: KindFeatured, Days: 1, AmountCents: 100, Label: "1 Día"},
	{Kind: KindFeatured, Days: 3, AmountCents: 240, Label: "3 Días"},
	{Kind: KindFeatured, Days: 7, AmountCents: 520, Label: "7 Días"},
	{Kind: KindFeatured, Days: 15, AmountCents: 1050, Label: "15 Días"},
	{Kind: KindFeatured, Days: 30, AmountCents: 2000, Label: "30 Días"},
	{Kind: KindPremium, Days: 30, AmountCents: 5000, Label: "Premium (Home) - 30 Días"},
}

// Plans returns every purchasable option in display order.
func Plans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}

// FindPlan resolves the priced plan for a kind and duration.
func FindPlan(kind Kind, days int) (Plan, error) {
	for _, p := range plans {
		if p.Kind == kind && p.Days == days {
			return p, nil
		}
	}
	return Plan{}, ErrUnknownPlan
}
