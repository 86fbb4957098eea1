package models

// Coordinate — географическая точка в градусах (WGS 84).
// Широта и долгота всегда присутствуют вместе: частично заданная
// локация отбрасывается на границе API.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
