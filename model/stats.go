package model

// HandStats describes how playable one hand's stream is.
type HandStats struct {
	Engine             string `json:"engine"`
	Hand               Hand   `json:"hand"`
	Count              int    `json:"count"`
	MaxSimultaneous    int    `json:"max_simultaneous"`
	MaxSpread          int    `json:"max_spread"`
	RegisterViolations int    `json:"register_violations"`
}
