package models

// ServiceStat is a per-service rollup inside provider analytics.
type ServiceStat struct {
	ServiceID   string  `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	Bookings    int     `json:"bookings"`
	Revenue     float64 `json:"revenue"`
}

// ProviderAnalytics is the backend-computed dashboard for a provider.
type ProviderAnalytics struct {
	ProviderID    string        `json:"providerId"`
	Period        string        `json:"period"` // e.g. "30d"
	TotalBookings int           `json:"totalBookings"`
	Revenue       float64       `json:"revenue"`
	ProfileViews  int           `json:"profileViews"`
	NewFollowers  int           `json:"newFollowers"`
	TopServices   []ServiceStat `json:"topServices,omitempty"`
}
