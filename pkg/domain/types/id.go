package types

import (
	"regexp"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

var idPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// UserID identifies a user profile. It is owned by the external identity
// provider and treated as an opaque string here.
type UserID string

// Validate checks if the UserID is valid
func (u UserID) Validate() error {
	if u == "" {
		return goerr.New("user ID cannot be empty")
	}
	return nil
}

// String returns the string representation of UserID
func (u UserID) String() string {
	return string(u)
}

// DepartmentID represents a unique identifier for a department
type DepartmentID string

// NewDepartmentID generates a new random DepartmentID
func NewDepartmentID() DepartmentID {
	return DepartmentID(uuid.New().String())
}

// Validate checks if the DepartmentID is valid
func (d DepartmentID) Validate() error {
	if d == "" {
		return goerr.New("department ID cannot be empty")
	}
	return nil
}

// String returns the string representation of DepartmentID
func (d DepartmentID) String() string {
	return string(d)
}

// MinistryID represents a unique identifier for a ministry
type MinistryID string

// NewMinistryID generates a new random MinistryID
func NewMinistryID() MinistryID {
	return MinistryID(uuid.New().String())
}

// Validate checks if the MinistryID is valid
func (m MinistryID) Validate() error {
	if m == "" {
		return goerr.New("ministry ID cannot be empty")
	}
	return nil
}

// String returns the string representation of MinistryID
func (m MinistryID) String() string {
	return string(m)
}

// RefID is a human-chosen identifier used in reference-data configuration
// (department and ministry seeds). Lowercase alphanumeric with hyphens.
type RefID string

// Validate checks if the RefID is valid
func (r RefID) Validate() error {
	if r == "" {
		return goerr.New("reference ID cannot be empty")
	}
	if !idPattern.MatchString(string(r)) {
		return goerr.New("reference ID must be lowercase alphanumeric with hyphens", goerr.V("id", r))
	}
	return nil
}

// String returns the string representation of RefID
func (r RefID) String() string {
	return string(r)
}
