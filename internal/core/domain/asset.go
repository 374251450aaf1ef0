package domain

import (
	"strings"
	"time"
)

// AssetStatus is the lifecycle state of an asset.
type AssetStatus string

const (
	AssetActive      AssetStatus = "ACTIVE"
	AssetMaintenance AssetStatus = "MAINTENANCE"
	AssetTransferred AssetStatus = "TRANSFERRED"
	AssetDisposed    AssetStatus = "DISPOSED"
)

// ParseAssetStatus accepts a status name in any case.
func ParseAssetStatus(s string) (AssetStatus, error) {
	st := AssetStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case AssetActive, AssetMaintenance, AssetTransferred, AssetDisposed:
		return st, nil
	}
	return "", Invalid("Invalid asset status")
}

// Asset is a tracked piece of equipment.
type Asset struct {
	ID           int64
	Tag          string
	Name         string
	PurchaseDate time.Time
	PurchaseCost float64
	Status       AssetStatus
	VendorID     int64
	RuleID       int64
	CreatedAt    time.Time
}

// Validate checks the invariants of a new asset.
func (a *Asset) Validate() error {
	if strings.TrimSpace(a.Tag) == "" {
		return Invalid("Asset tag is required")
	}
	if strings.TrimSpace(a.Name) == "" {
		return Invalid("Asset name is required")
	}
	if a.PurchaseCost <= 0 {
		return Invalid("Purchase cost must be greater than 0")
	}
	return nil
}
