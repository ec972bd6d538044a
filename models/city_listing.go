package models

// CityListing is the wire form of a single city entry in the directory
// response (GET /api/cities).
//
// LoginPort is the channel the city server keeps open to the login service.
// It is only carried so validation can prove it differs from Port; it never
// reaches [CityServerInfo].
type CityListing struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Thumbnail   uint64 `json:"thumbnail"`
	IP          string `json:"ip"`
	Port        int    `json:"port"`
	LoginPort   int    `json:"login_port,omitempty"`
}

// CityServerInfo converts the listing into the immutable client-side value.
func (l CityListing) CityServerInfo() CityServerInfo {
	return NewCityServerInfo(l.Name, l.Description, l.Thumbnail, l.IP, l.Port)
}
