package pricing

// Service tier names as printed on labels and rate cards.
const (
	ServiceEconomy  = "Fast Parcel Economy"
	ServiceStandard = "Fast Parcel Standard"
	ServicePriority = "Fast Parcel Priority"
)

// DefaultService is the tier preselected in a fresh booking draft.
const DefaultService = ServiceStandard

var rateCardCents = map[string]int64{
	ServiceEconomy:  9900,
	ServiceStandard: 14900,
	ServicePriority: 24900,
}

// CostCents returns the flat charge for a service tier. Unrecognized
// tiers are priced as Standard; the rate card treats that as an
// intentional default, not an error signal.
func CostCents(service string) int64 {
	if cents, ok := rateCardCents[service]; ok {
		return cents
	}
	return rateCardCents[ServiceStandard]
}

type ServiceOption struct {
	Name        string `json:"name"`
	ETA         string `json:"eta"`
	Description string `json:"description"`
	RateCents   int64  `json:"rate_cents"`
}

// ServiceOptions lists the bookable tiers in ascending price order.
func ServiceOptions() []ServiceOption {
	return []ServiceOption{
		{Name: ServiceEconomy, ETA: "4-6 days", Description: "Best value for non-urgent shipments", RateCents: 9900},
		{Name: ServiceStandard, ETA: "2-4 days", Description: "Balanced speed and cost", RateCents: 14900},
		{Name: ServicePriority, ETA: "1-2 days", Description: "Fastest delivery for urgent packages", RateCents: 24900},
	}
}

// PickupSlots lists the offered pickup windows.
func PickupSlots() []string {
	return []string{"Today 4-6 PM", "Tomorrow 10-12 AM", "Tomorrow 2-4 PM"}
}
