package dto

type StopResponse struct {
	Name            string  `json:"name"`
	Km              float64 `json:"km"`
	Rating          string  `json:"rating"`
	PriceGBP        float64 `json:"price_gbp"`
	Food            string  `json:"food,omitempty"`
	Lat             float64 `json:"lat"`
	Lon             float64 `json:"lon"`
	DefaultSelected bool    `json:"default_selected"`
}

type ListStopsResponse struct {
	Stops []StopResponse `json:"stops"`
}

type CourseResponse struct {
	TotalKm   float64   `json:"total_km"`
	NumPoints int       `json:"num_points"`
	Start     []float64 `json:"start"`  // [lon, lat]
	Finish    []float64 `json:"finish"` // [lon, lat]
}
