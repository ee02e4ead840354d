package model

import "time"

// ImagingType is kind of requested scan
type ImagingType string

const (
	ImagingTypeMRI         ImagingType = "mri"
	ImagingTypeCT          ImagingType = "ct"
	ImagingTypeXRay        ImagingType = "xray"
	ImagingTypeUltrasound  ImagingType = "ultrasound"
	ImagingTypePET         ImagingType = "pet"
	ImagingTypeMammography ImagingType = "mammography"
	ImagingTypeOther       ImagingType = "other"
)

// ImagingTypes lists all supported imaging types
var ImagingTypes = []ImagingType{
	ImagingTypeMRI,
	ImagingTypeCT,
	ImagingTypeXRay,
	ImagingTypeUltrasound,
	ImagingTypePET,
	ImagingTypeMammography,
	ImagingTypeOther,
}

// Submission is lead submission model entity
type Submission struct {
	ID          int64       `json:"id" bson:"_id"`
	ZipCode     string      `json:"zip_code" bson:"zip_code"`
	Phone       string      `json:"phone" bson:"phone"`
	FullName    *string     `json:"full_name" bson:"full_name"`
	ImagingType ImagingType `json:"imaging_type" bson:"imaging_type"`
	BodyPart    *string     `json:"body_part" bson:"body_part"`
	HasOrder    *bool       `json:"has_order" bson:"has_order"`
	UtmSource   *string     `json:"utm_source" bson:"utm_source"`
	Status      Status      `json:"status" bson:"status"`
	Notes       *string     `json:"notes" bson:"notes"`
	Version     int         `json:"version" bson:"version"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
}
