package intake

import (
	"github.com/umalmyha/imaging-leads/internal/validation"
)

// FailureKind tells which stage of intake has failed
type FailureKind string

const (
	// FailureValidation means payload violates constraints, nothing was stored
	FailureValidation FailureKind = "validation"
	// FailureStore means datastore rejected or didn't respond to insert
	FailureStore FailureKind = "store"
)

// LeadPayload is lead form submitted by site visitor
type LeadPayload struct {
	ZipCode     string  `json:"zip_code" validate:"required,zipcode"`
	Phone       string  `json:"phone" validate:"required,max=20"`
	ImagingType string  `json:"imaging_type" validate:"required"`
	BodyPart    *string `json:"body_part"`
	HasOrder    *bool   `json:"has_order"`
	FullName    *string `json:"full_name"`
	ReferrerURL *string `json:"referrer_url"`
}

// BookingPayload is booking confirmation form submitted by site visitor
type BookingPayload struct {
	ImagingCenterName     string  `json:"imaging_center_name" validate:"required"`
	ImagingCenterAddress  *string `json:"imaging_center_address"`
	ImagingCenterPhone    *string `json:"imaging_center_phone"`
	EstimatedCostRange    *string `json:"estimated_cost_range"`
	AvailabilityText      *string `json:"availability_text"`
	ProcessedAvailability *string `json:"processed_availability"`
	CardholderName        *string `json:"cardholder_name"`
	BillingZipCode        *string `json:"billing_zip_code" validate:"omitempty,zipcode"`
	CardNumber            *string `json:"card_number"`
	HasOrder              bool    `json:"has_order"`
	OrderProviderName     *string `json:"order_provider_name"`
	OrderPracticeName     *string `json:"order_practice_name"`
	OrderLocation         *string `json:"order_location"`
	WillObtainOrder       bool    `json:"will_obtain_order"`
	OrderDocument         *string `json:"order_document"`
}

// Result is outcome of single intake attempt
type Result struct {
	Success    bool                   `json:"success"`
	Data       any                    `json:"data,omitempty"`
	Error      string                 `json:"error,omitempty"`
	Violations []validation.Violation `json:"violations,omitempty"`
	Kind       FailureKind            `json:"-"`
}

// Succeeded builds successful Result
func Succeeded(data any) Result {
	return Result{Success: true, Data: data}
}

// Rejected builds Result for payload violating constraints
func Rejected(err *validation.PayloadError) Result {
	return Result{
		Error:      err.Error(),
		Violations: err.Violations(),
		Kind:       FailureValidation,
	}
}

// StoreFailed builds Result for failed insert
func StoreFailed(msg string) Result {
	return Result{Error: msg, Kind: FailureStore}
}
