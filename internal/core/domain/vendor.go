package domain

import (
	"regexp"
	"strings"
	"time"
)

var vendorEmailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)

// Vendor supplies assets.
type Vendor struct {
	ID           int64
	Name         string
	ContactEmail string
	Phone        string
	CreatedAt    time.Time
}

// Validate checks the invariants of a new vendor.
func (v *Vendor) Validate() error {
	if strings.TrimSpace(v.Name) == "" {
		return Invalid("Vendor name is required")
	}
	if !vendorEmailPattern.MatchString(v.ContactEmail) {
		return Invalid("Invalid email format")
	}
	return nil
}
