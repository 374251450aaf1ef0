package handler

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/99minutos/asset-management/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// civilDate is a calendar date carried as "2006-01-02". RFC 3339 timestamps
// are accepted on input and truncated to their date.
type civilDate struct {
	time.Time
}

const dateLayout = "2006-01-02"

func (d *civilDate) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	y, m, day := t.Date()
	d.Time = time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return nil
}

func (d civilDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

// --- Auth ---

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type registerResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token  string   `json:"token"`
	UserID int64    `json:"userId"`
	Email  string   `json:"email"`
	Roles  []string `json:"roles"`
}

type meResponse struct {
	UserID    int64     `json:"userId"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// --- Users ---

type userResponse struct {
	ID    int64    `json:"id"`
	Email string   `json:"email"`
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}

// --- Vendors ---

type createVendorRequest struct {
	VendorName   string `json:"vendorName"   validate:"required" label:"Vendor name"`
	ContactEmail string `json:"contactEmail"`
	Phone        string `json:"phone"`
}

type vendorResponse struct {
	ID           int64     `json:"id"`
	VendorName   string    `json:"vendorName"`
	ContactEmail string    `json:"contactEmail"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// --- Depreciation rules ---

type createRuleRequest struct {
	RuleName        string  `json:"ruleName"        validate:"required" label:"Rule name"`
	Method          string  `json:"method"`
	UsefulLifeYears int     `json:"usefulLifeYears" validate:"gt=0"     label:"Useful life years"`
	SalvageValue    float64 `json:"salvageValue"    validate:"gte=0"    label:"Salvage value"`
}

type ruleResponse struct {
	ID              int64     `json:"id"`
	RuleName        string    `json:"ruleName"`
	Method          string    `json:"method"`
	UsefulLifeYears int       `json:"usefulLifeYears"`
	SalvageValue    float64   `json:"salvageValue"`
	CreatedAt       time.Time `json:"createdAt"`
}

// --- Assets ---

type createAssetRequest struct {
	AssetTag     string    `json:"assetTag"     validate:"required" label:"Asset tag"`
	AssetName    string    `json:"assetName"    validate:"required" label:"Asset name"`
	PurchaseDate civilDate `json:"purchaseDate"`
	PurchaseCost float64   `json:"purchaseCost" validate:"gt=0"     label:"Purchase cost"`
}

type assetResponse struct {
	ID                 int64     `json:"id"`
	AssetTag           string    `json:"assetTag"`
	AssetName          string    `json:"assetName"`
	PurchaseDate       civilDate `json:"purchaseDate"`
	PurchaseCost       float64   `json:"purchaseCost"`
	Status             string    `json:"status"`
	VendorID           int64     `json:"vendorId"`
	DepreciationRuleID int64     `json:"depreciationRuleId"`
	CreatedAt          time.Time `json:"createdAt"`
}

type assetDetailResponse struct {
	assetResponse
	BookValue float64       `json:"bookValue"`
	Rule      *ruleResponse `json:"depreciationRule,omitempty"`
}

// --- Lifecycle events ---

type logEventRequest struct {
	EventType        string    `json:"eventType" validate:"required" label:"Event type"`
	EventDescription string    `json:"eventDescription"`
	EventDate        civilDate `json:"eventDate"`
}

type lifecycleEventResponse struct {
	ID               int64     `json:"id"`
	AssetID          int64     `json:"assetId"`
	EventType        string    `json:"eventType"`
	EventDescription string    `json:"eventDescription"`
	EventDate        civilDate `json:"eventDate"`
	LoggedAt         time.Time `json:"loggedAt"`
}

// --- Disposals ---

type requestDisposalRequest struct {
	DisposalMethod string    `json:"disposalMethod"`
	DisposalValue  float64   `json:"disposalValue" validate:"gte=0" label:"Disposal value"`
	DisposalDate   civilDate `json:"disposalDate"`
}

type disposalResponse struct {
	ID             int64      `json:"id"`
	AssetID        int64      `json:"assetId"`
	DisposalMethod string     `json:"disposalMethod"`
	DisposalValue  float64    `json:"disposalValue"`
	DisposalDate   civilDate  `json:"disposalDate"`
	ApprovedBy     *int64     `json:"approvedBy"`
	ApprovedAt     *time.Time `json:"approvedAt"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// --- Audit ---

type auditEventsResponse struct {
	AssetID int64               `json:"assetId"`
	Events  []domain.AuditEvent `json:"events"`
}
