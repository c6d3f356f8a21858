package models

// GeocodeRequest is the inbound payload of POST /geocode.
type GeocodeRequest struct {
	Address string `json:"address"`
}

// Location is a resolved address: WGS84 coordinates plus the geocoder's
// canonical display name.
type Location struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DisplayName string  `json:"display_name"`
}
