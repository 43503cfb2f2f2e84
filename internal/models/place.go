package models

// Place is one point of interest on the local-services map (vets,
// shelters, shops...). Latitude/longitude arrive as strings on the wire;
// callers parse them when they actually need coordinates.
type Place struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Latitude    string `json:"latitude"`
	Longitude   string `json:"longitude"`
	Type        string `json:"type"`
}
