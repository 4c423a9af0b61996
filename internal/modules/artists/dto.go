package artists

// Profile is the directory view of an artist: identity plus the services
// their availability rules currently advertise.
type Profile struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Bio      string   `json:"bio,omitempty"`
	Location string   `json:"location,omitempty"`
	Services []string `json:"services"`
}
