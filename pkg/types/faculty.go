// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Faculty is one record in the local faculty registry.
type Faculty struct {
	// ID is the registry row identifier.
	ID int64 `json:"id" yaml:"id"`

	// Name is the faculty member's full name as first recorded.
	Name string `json:"name" yaml:"name"`

	// Department is the department label, or "Unknown".
	Department string `json:"department" yaml:"department"`

	// Email is the contact address, if known.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// ScopusID is the member's Scopus author identifier, if known.
	ScopusID string `json:"scopus_id,omitempty" yaml:"scopus_id,omitempty"`

	// PublicationCount is the unique publication count from the most
	// recent report import.
	PublicationCount int `json:"publication_count" yaml:"publication_count"`

	// UpdatedAt is the time of the last import that touched this record.
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}
