package config

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// access token lifetime in minutes
	ExpiresMinutes int `json:"expires_minutes" yaml:"expires_minutes"`
}

// Session controls the redis-backed session records that gate every
// authenticated route. A token whose session id is gone from redis is
// rejected even when the jwt itself is still valid.
type Session struct {
	// time to live in minutes
	TTLMinutes int `json:"ttl_minutes" yaml:"ttl_minutes"`
}
