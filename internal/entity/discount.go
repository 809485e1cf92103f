package entity

import (
	"github.com/thrive-platform/admin-console/internal/reconcile"
)

// DiscountKey identifies the discount entity in the reconcile registry.
const DiscountKey = "discounts"

func init() {
	reconcile.Register(reconcile.EntityDef{
		Key:   DiscountKey,
		Label: "Discounts",
		Path:  "/discounts",
		Fields: []reconcile.FieldSpec{
			{
				LogicalName: "title",
				Aliases:     []string{"title", "name", "discount_title", "discountTitle"},
				WriteKeys:   []string{"title", "name"},
				Required:    true,
			},
			{
				LogicalName: "vendorID",
				Aliases:     []string{"vendor_id", "vendorId", "vendorID"},
				WriteKeys:   []string{"vendor_id", "vendorId"},
				Fallback:    "",
			},
			{
				LogicalName: "percentage",
				Aliases:     []string{"percentage", "percent", "discount_percentage", "discountPercentage", "rate"},
				Kind:        reconcile.KindNumber,
				WriteKeys:   []string{"percentage", "discount_percentage"},
			},
			{
				LogicalName: "code",
				Aliases:     []string{"code", "discount_code", "discountCode", "coupon_code", "couponCode"},
				WriteKeys:   []string{"code", "discount_code"},
			},
			{
				LogicalName: "category",
				Aliases:     []string{"category", "discount_category", "discountCategory"},
				WriteKeys:   []string{"category"},
				Fallback:    "General",
			},
			{
				LogicalName: "description",
				Aliases:     []string{"description", "details", "terms"},
				WriteKeys:   []string{"description"},
				NullToClear: true,
			},
			{
				LogicalName: "startDate",
				Aliases:     []string{"start_date", "startDate", "valid_from", "validFrom"},
				Kind:        reconcile.KindDate,
				WriteKeys:   []string{"start_date", "startDate"},
			},
			{
				LogicalName: "endDate",
				Aliases:     []string{"end_date", "endDate", "valid_until", "validUntil", "expires_at"},
				Kind:        reconcile.KindDate,
				WriteKeys:   []string{"end_date", "endDate"},
			},
			{
				LogicalName: "maxRedemptions",
				Aliases:     []string{"max_redemptions", "maxRedemptions", "redemption_limit"},
				Kind:        reconcile.KindNumber,
				WriteKeys:   []string{"max_redemptions", "maxRedemptions"},
			},
			{
				LogicalName: "active",
				Aliases:     []string{"active", "is_active", "isActive", "enabled"},
				Kind:        reconcile.KindFlag,
				WriteKeys:   []string{"active", "is_active"},
				Fallback:    true,
			},
		},
		DenyList: []string{"redemption_count", "sync_token", "updated_at"},
		Steps: [][]string{
			{"title", "vendorID", "category", "description"},
			{"percentage", "code", "startDate", "endDate", "maxRedemptions"},
		},
	})
}

// Discount is the fully-resolved discount view-model.
type Discount struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	VendorID       string  `json:"vendorId"`
	Percentage     float64 `json:"percentage"`
	Code           string  `json:"code"`
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	StartDate      string  `json:"startDate"`
	EndDate        string  `json:"endDate"`
	MaxRedemptions float64 `json:"maxRedemptions"`
	Active         bool    `json:"active"`
}

// DiscountFromFields builds the typed view-model from a normalized record.
func DiscountFromFields(id string, f reconcile.Fields) Discount {
	return Discount{
		ID:             id,
		Title:          f.String("title"),
		VendorID:       f.String("vendorID"),
		Percentage:     f.Number("percentage"),
		Code:           f.String("code"),
		Category:       f.String("category"),
		Description:    f.String("description"),
		StartDate:      f.String("startDate"),
		EndDate:        f.String("endDate"),
		MaxRedemptions: f.Number("maxRedemptions"),
		Active:         f.Bool("active"),
	}
}
