package models

// AppInfo is the payload of GET /api/config/info. Secrets are never included.
type AppInfo struct {
	ApplicationName string `json:"applicationName"`
	ActiveProfile   string `json:"activeProfile"`
	Version         string `json:"version"`
	BuildDate       string `json:"buildDate,omitempty"`
	BuildCommit     string `json:"buildCommit,omitempty"`
	DebugMode       bool   `json:"debugMode"`
	APIBaseURL      string `json:"apiBaseUrl"`
	APITimeout      string `json:"apiTimeout"`
	APIRetryCount   int    `json:"apiRetryCount"`
	SecurityEnabled bool   `json:"securityEnabled"`
	JWTExpiration   string `json:"jwtExpiration"`
	ServerAddress   string `json:"serverAddress"`
	LalamoveBaseURL string `json:"lalamoveBaseUrl"`
	LalamoveMarket  string `json:"lalamoveMarket"`
	LedgerEnabled   bool   `json:"ledgerEnabled"`
}

// HealthInfo is the payload of GET /api/config/health.
type HealthInfo struct {
	Status        string `json:"status"`
	Profile       string `json:"profile"`
	Application   string `json:"application"`
	ServerAddress string `json:"serverAddress"`
}
