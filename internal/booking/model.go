package booking

import "fastparcel/internal/pricing"

// Step of the booking workflow. Steps are strictly linear; there is
// no branching or skipping.
type Step int

const (
	StepParties Step = iota + 1
	StepPackage
	StepPickup
	StepOptions
	StepPay
)

func (s Step) String() string {
	switch s {
	case StepParties:
		return "Parties"
	case StepPackage:
		return "Package"
	case StepPickup:
		return "Pickup"
	case StepOptions:
		return "Options"
	case StepPay:
		return "Pay"
	default:
		return "Unknown"
	}
}

// Draft is the transient form state of an in-progress booking. It
// exists only while the workflow is open and is discarded on cancel
// or successful submission. Fields are free text and deliberately
// unvalidated before advancing.
type Draft struct {
	SenderName      string `json:"sender_name"`
	SenderAddress   string `json:"sender_address"`
	ReceiverName    string `json:"receiver_name"`
	ReceiverAddress string `json:"receiver_address"`
	Weight          string `json:"weight"`
	Size            string `json:"size"`
	Contents        string `json:"contents"`
	DeclaredValue   string `json:"declared_value"`
	PickupSlot      string `json:"pickup_slot"`
	Service         string `json:"service"`
}

func emptyDraft() Draft {
	return Draft{Service: pricing.DefaultService}
}

// UpdateDraftRequest is a partial patch; only non-nil fields are
// applied to the draft.
type UpdateDraftRequest struct {
	SenderName      *string `json:"sender_name"`
	SenderAddress   *string `json:"sender_address"`
	ReceiverName    *string `json:"receiver_name"`
	ReceiverAddress *string `json:"receiver_address"`
	Weight          *string `json:"weight"`
	Size            *string `json:"size"`
	Contents        *string `json:"contents"`
	DeclaredValue   *string `json:"declared_value"`
	PickupSlot      *string `json:"pickup_slot"`
	Service         *string `json:"service"`
}

func (r UpdateDraftRequest) apply(d *Draft) {
	if r.SenderName != nil {
		d.SenderName = *r.SenderName
	}
	if r.SenderAddress != nil {
		d.SenderAddress = *r.SenderAddress
	}
	if r.ReceiverName != nil {
		d.ReceiverName = *r.ReceiverName
	}
	if r.ReceiverAddress != nil {
		d.ReceiverAddress = *r.ReceiverAddress
	}
	if r.Weight != nil {
		d.Weight = *r.Weight
	}
	if r.Size != nil {
		d.Size = *r.Size
	}
	if r.Contents != nil {
		d.Contents = *r.Contents
	}
	if r.DeclaredValue != nil {
		d.DeclaredValue = *r.DeclaredValue
	}
	if r.PickupSlot != nil {
		d.PickupSlot = *r.PickupSlot
	}
	if r.Service != nil {
		d.Service = *r.Service
	}
}
