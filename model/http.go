package model

type SplitParams struct {
	MaxFingers    *int     `json:"max_fingers,omitempty"`
	AllowedSpread *int     `json:"allowed_spread,omitempty"`
	Hysteresis    *float64 `json:"hysteresis,omitempty"`
}

type SplitRequestBody struct {
	Notes  Notes       `json:"notes"`
	Engine string      `json:"engine,omitempty"`
	Params SplitParams `json:"params"`
}

type SplitResponse struct {
	RequestId string    `json:"request_id"`
	Partition Partition `json:"partition"`
}

type CompareResponse struct {
	RequestId string      `json:"request_id"`
	Greedy    Partition   `json:"greedy"`
	Optimal   Partition   `json:"optimal"`
	Disagree  int         `json:"disagree"`
	Summary   []HandStats `json:"summary,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
