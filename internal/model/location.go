package model

// ScanLocation is imaging center offering scan for a price
type ScanLocation struct {
	ID           string  `json:"id" msgpack:"id"`
	Name         string  `json:"name" msgpack:"name"`
	Address      string  `json:"address" msgpack:"address"`
	City         string  `json:"city" msgpack:"city"`
	State        string  `json:"state" msgpack:"state"`
	ZipCode      string  `json:"zip_code" msgpack:"zip_code"`
	Price        int     `json:"price" msgpack:"price"`
	Availability string  `json:"availability" msgpack:"availability"`
	Distance     float64 `json:"distance" msgpack:"distance"`
	Lat          float64 `json:"lat" msgpack:"lat"`
	Lng          float64 `json:"lng" msgpack:"lng"`
	Type         string  `json:"type" msgpack:"type"`
	Provider     string  `json:"provider" msgpack:"provider"`
	Status       string  `json:"status" msgpack:"status"`
}
