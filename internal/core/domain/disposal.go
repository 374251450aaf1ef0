package domain

import "time"

// Disposal is a request to retire an asset. It takes effect once an
// administrator approves it.
type Disposal struct {
	ID         int64
	AssetID    int64
	Method     string
	Value      float64
	Date       time.Time
	ApprovedBy *int64
	ApprovedAt *time.Time
	CreatedAt  time.Time
}

// Approved reports whether an administrator has signed off.
func (d *Disposal) Approved() bool {
	return d.ApprovedBy != nil
}

// Validate checks the invariants of a new disposal request.
func (d *Disposal) Validate() error {
	if d.Value < 0 {
		return Invalid("Disposal value cannot be negative")
	}
	return nil
}
