package auth

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Credentials hold the OAuth client settings for a connected app.
type Credentials struct {
	// LoginURL is the token host; empty means DefaultLoginURL.
	LoginURL     string
	ClientID     string
	ClientSecret string

	// Username/Password select the username-password grant. SecurityToken is
	// appended to the password when the org requires it.
	Username      string
	Password      string
	SecurityToken string
}

// LoadCredentials reads credentials from the environment, loading a .env
// file first when one exists.
func LoadCredentials() (*Credentials, error) {
	// Best effort; a missing .env file is fine.
	_ = godotenv.Load()

	creds := &Credentials{
		LoginURL:      os.Getenv("SF_LOGIN_URL"),
		ClientID:      os.Getenv("SF_CLIENT_ID"),
		ClientSecret:  os.Getenv("SF_CLIENT_SECRET"),
		Username:      os.Getenv("SF_USERNAME"),
		Password:      os.Getenv("SF_PASSWORD"),
		SecurityToken: os.Getenv("SF_SECURITY_TOKEN"),
	}

	if err := creds.Validate(); err != nil {
		return nil, err
	}
	return creds, nil
}

// Validate checks that the credentials can drive one of the supported
// grants.
func (c *Credentials) Validate() error {
	if c == nil {
		return fmt.Errorf("credentials are required")
	}
	if c.ClientID == "" {
		return fmt.Errorf("SF_CLIENT_ID is required")
	}
	if c.ClientSecret == "" {
		return fmt.Errorf("SF_CLIENT_SECRET is required")
	}
	if c.Username != "" && c.Password == "" {
		return fmt.Errorf("SF_PASSWORD is required with SF_USERNAME")
	}
	return nil
}
