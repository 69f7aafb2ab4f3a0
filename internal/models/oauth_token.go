package models

import (
	"time"
)

// AccessToken is the server-side record of an issued bearer token.
type AccessToken struct {
	ClientID  string    `json:"client_id"`
	Scopes    []string  `json:"scopes"`
	Resource  string    `json:"resource,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (t AccessToken) Expiry() time.Time {
	return t.ExpiresAt
}

// OAuthRecord is the row layout used when pending authorizations, codes and
// tokens are kept in a SQL database. Payload holds the JSON encoded record.
type OAuthRecord struct {
	Kind      string    `gorm:"primaryKey;size:16"`
	Key       string    `gorm:"column:record_key;primaryKey;size:128"`
	Payload   string    `gorm:"not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time
}

func (OAuthRecord) TableName() string {
	return "oauth_records"
}
