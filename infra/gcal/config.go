package gcal

// Config defines settings for the Google Calendar exporter.
type Config struct {
	Enabled bool `json:"enabled"`
	// CalendarID selects the target calendar, "primary" by default.
	CalendarID string `json:"calendar_id"`
	// CredentialsFile is the OAuth client secrets file downloaded from the
	// Google Cloud console.
	CredentialsFile string `json:"credentials_file"`
	// TokenFile caches the user's access and refresh tokens between runs.
	TokenFile string `json:"token_file"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.CalendarID == "" {
		c.CalendarID = "primary"
	}
	if c.TokenFile == "" {
		c.TokenFile = "token.json"
	}
}
