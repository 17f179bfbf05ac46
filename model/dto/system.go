package dto

const (
	StatusOk       = "ok"
	StatusError    = "error"
	StatusDisabled = "disabled"
)

// HealthStatus 健康检查结果, 依赖的取值为 ok、error 或 disabled
type HealthStatus struct {
	Version  string `json:"version"`
	Time     string `json:"time"`
	Redis    string `json:"redis"`
	Database string `json:"database"`
}
