package calculatorbridge

import "encoding/json"

// AreaInput is the accepted payload for the area operation. Pointers
// distinguish absent keys from zero values, and json.Number defers
// integer parsing so fractional values can be rejected explicitly.
type AreaInput struct {
	Width  *json.Number `json:"width"`
	Height *json.Number `json:"height"`
}

// ResultResponse wraps an integer arithmetic result.
type ResultResponse struct {
	Result int `json:"result"`
}

// QuotientResponse wraps the real-valued division result.
type QuotientResponse struct {
	Result float64 `json:"result"`
}

// AreaResponse wraps an area computation with its unit label.
type AreaResponse struct {
	Result int    `json:"result"`
	Units  string `json:"units"`
}

// HealthResponse is the fixed liveness payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
