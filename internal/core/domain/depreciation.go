package domain

import (
	"math"
	"strings"
	"time"
)

// DepreciationMethod selects how an asset loses book value over time.
type DepreciationMethod string

const (
	MethodStraightLine     DepreciationMethod = "STRAIGHT_LINE"
	MethodDecliningBalance DepreciationMethod = "DECLINING_BALANCE"
)

const (
	decliningBalanceFactor = 2.0
	daysPerYear            = 365.25
)

// IsValid reports whether m is a supported method.
func (m DepreciationMethod) IsValid() bool {
	return m == MethodStraightLine || m == MethodDecliningBalance
}

// DepreciationRule parametrizes the book value schedule of an asset.
type DepreciationRule struct {
	ID              int64
	Name            string
	Method          DepreciationMethod
	UsefulLifeYears int
	SalvageValue    float64
	CreatedAt       time.Time
}

// Validate checks the invariants of a new rule.
func (r *DepreciationRule) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return Invalid("Rule name is required")
	}
	if r.UsefulLifeYears <= 0 {
		return Invalid("Useful life years must be greater than 0")
	}
	if r.SalvageValue < 0 {
		return Invalid("Salvage value cannot be negative")
	}
	if !r.Method.IsValid() {
		return Invalid("Invalid depreciation method")
	}
	return nil
}

// BookValue returns the value of an asset bought at purchased for cost, as of
// asOf, rounded to cents. It never drops below the salvage value, and the
// asset is worth its cost on or before the purchase date.
func (r *DepreciationRule) BookValue(cost float64, purchased, asOf time.Time) float64 {
	if r.UsefulLifeYears <= 0 || !asOf.After(purchased) {
		return roundCents(cost)
	}
	salvage := math.Min(r.SalvageValue, cost)
	life := float64(r.UsefulLifeYears)
	years := asOf.Sub(purchased).Hours() / 24 / daysPerYear

	var value float64
	switch r.Method {
	case MethodDecliningBalance:
		rate := math.Min(decliningBalanceFactor/life, 1)
		value = cost * math.Pow(1-rate, math.Floor(years))
	default:
		value = cost - (cost-salvage)*math.Min(years, life)/life
	}
	return roundCents(math.Max(value, salvage))
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
