package order

// Status of a shipment. The core never transitions statuses by
// itself; orders are created as Booked and otherwise only removed.
type Status string

const (
	StatusBooked    Status = "Booked"
	StatusPickedUp  Status = "Picked Up"
	StatusInTransit Status = "In Transit"
	StatusDelivered Status = "Delivered"
)

// StatusAll is the filter value matching every status.
const StatusAll = "All"

type Order struct {
	ID          string `json:"id"`
	AWB         string `json:"awb"`
	Service     string `json:"service"`
	Status      Status `json:"status"`
	CostCents   int64  `json:"cost_cents"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
}

// TrackingStages is the illustrative checkpoint list shown in the
// tracking view. It is static; no shipment actually progresses.
var TrackingStages = []string{"Order booked", "Picked up", "In transit", "Delivered"}

// Seed returns the demo ledger in display order; freshly booked
// orders are prepended ahead of it.
func Seed() []Order {
	return []Order{
		{ID: "1", AWB: "FP00012345", Service: "Fast Parcel Standard", Status: StatusDelivered, CostCents: 14900, Origin: "Mumbai, IN", Destination: "Bengaluru, IN", Date: "2025-10-01"},
		{ID: "2", AWB: "FP00012346", Service: "Fast Parcel Priority", Status: StatusInTransit, CostCents: 24900, Origin: "Delhi, IN", Destination: "Pune, IN", Date: "2025-10-05"},
		{ID: "3", AWB: "FP00012347", Service: "Fast Parcel Economy", Status: StatusBooked, CostCents: 9900, Origin: "Hyderabad, IN", Destination: "Chennai, IN", Date: "2025-10-07"},
	}
}
