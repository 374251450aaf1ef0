package handler

import (
	"github.com/99minutos/asset-management/internal/core/domain"
)

// --- Domain → Response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Roles: u.Roles.Names(),
	}
}

func toVendorResponse(v *domain.Vendor) vendorResponse {
	return vendorResponse{
		ID:           v.ID,
		VendorName:   v.Name,
		ContactEmail: v.ContactEmail,
		Phone:        v.Phone,
		CreatedAt:    v.CreatedAt,
	}
}

func toRuleResponse(r *domain.DepreciationRule) ruleResponse {
	return ruleResponse{
		ID:              r.ID,
		RuleName:        r.Name,
		Method:          string(r.Method),
		UsefulLifeYears: r.UsefulLifeYears,
		SalvageValue:    r.SalvageValue,
		CreatedAt:       r.CreatedAt,
	}
}

func toAssetResponse(a *domain.Asset) assetResponse {
	return assetResponse{
		ID:                 a.ID,
		AssetTag:           a.Tag,
		AssetName:          a.Name,
		PurchaseDate:       civilDate{a.PurchaseDate},
		PurchaseCost:       a.PurchaseCost,
		Status:             string(a.Status),
		VendorID:           a.VendorID,
		DepreciationRuleID: a.RuleID,
		CreatedAt:          a.CreatedAt,
	}
}

func toLifecycleEventResponse(e *domain.LifecycleEvent) lifecycleEventResponse {
	return lifecycleEventResponse{
		ID:               e.ID,
		AssetID:          e.AssetID,
		EventType:        e.Type,
		EventDescription: e.Description,
		EventDate:        civilDate{e.EventDate},
		LoggedAt:         e.LoggedAt,
	}
}

func toDisposalResponse(d *domain.Disposal) disposalResponse {
	return disposalResponse{
		ID:             d.ID,
		AssetID:        d.AssetID,
		DisposalMethod: d.Method,
		DisposalValue:  d.Value,
		DisposalDate:   civilDate{d.Date},
		ApprovedBy:     d.ApprovedBy,
		ApprovedAt:     d.ApprovedAt,
		CreatedAt:      d.CreatedAt,
	}
}

// mapAll converts a slice, always returning a non-nil result so empty lists
// render as [].
func mapAll[T, R any](in []*T, fn func(*T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
