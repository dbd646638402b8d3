package dto

type DeviceRequest struct {
	IP          string `json:"ip"`
	UA          string `json:"ua"`
	Fingerprint string `json:"fingerprint"`
	Label       string `json:"label"`
}

type UpdateSessionRequest struct {
	Label string `json:"label" validate:"required"`
}
