package model

import "time"

// BookingStatusSubmitted is the only status booking gets on creation
const BookingStatusSubmitted = "submitted"

// BookingConfirmation is confirmed booking of imaging center
type BookingConfirmation struct {
	ID                    int64     `json:"id"`
	ImagingCenterName     string    `json:"imaging_center_name"`
	ImagingCenterAddress  *string   `json:"imaging_center_address"`
	ImagingCenterPhone    *string   `json:"imaging_center_phone"`
	EstimatedCostRange    *string   `json:"estimated_cost_range"`
	AvailabilityText      *string   `json:"availability_text"`
	ProcessedAvailability *string   `json:"processed_availability"`
	CardholderName        *string   `json:"cardholder_name"`
	BillingZipCode        *string   `json:"billing_zip_code"`
	LastFourDigits        *string   `json:"last_four_digits"`
	HasOrder              bool      `json:"has_order"`
	OrderProviderName     *string   `json:"order_provider_name"`
	OrderPracticeName     *string   `json:"order_practice_name"`
	OrderLocation         *string   `json:"order_location"`
	WillObtainOrder       bool      `json:"will_obtain_order"`
	OrderDocument         *string   `json:"order_document"`
	Status                string    `json:"status"`
	Processed             bool      `json:"processed"`
	CreatedAt             time.Time `json:"created_at"`
}
