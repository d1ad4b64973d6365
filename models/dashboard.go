package models

// DashboardCounts are list lengths of the three collections.
type DashboardCounts struct {
	Users    int `json:"users"`
	Products int `json:"products"`
	Bookings int `json:"bookings"`
}

// Dashboard is the admin overview; each section fails independently.
type Dashboard struct {
	Counts   DashboardCounts   `json:"counts"`
	Users    []User            `json:"users"`
	Products []Product         `json:"products"`
	Bookings []Booking         `json:"bookings"`
	Errors   map[string]string `json:"errors,omitempty"`
}
