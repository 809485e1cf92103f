package entity

import (
	"github.com/thrive-platform/admin-console/internal/reconcile"
)

// VendorKey identifies the vendor entity in the reconcile registry.
const VendorKey = "vendors"

func init() {
	reconcile.Register(reconcile.EntityDef{
		Key:   VendorKey,
		Label: "Vendors",
		Path:  "/vendors",
		Fields: []reconcile.FieldSpec{
			{
				LogicalName: "vendorName",
				Aliases:     []string{"name", "vendor_name", "vendorName", "business_name", "businessName"},
				WriteKeys:   []string{"name", "vendor_name"},
				Required:    true,
			},
			{
				LogicalName: "contactName",
				Aliases:     []string{"contact_name", "contactName", "primary_contact", "primaryContact"},
				WriteKeys:   []string{"contact_name", "contactName"},
			},
			{
				LogicalName: "contactNumber",
				Aliases:     []string{"phone", "contact_number", "contactNumber", "phone_number", "phoneNumber"},
				WriteKeys:   []string{"phone", "contact_number"},
			},
			{
				LogicalName: "email",
				Aliases:     []string{"email", "primary_email", "primaryEmail", "contact_email", "contactEmail"},
				WriteKeys:   []string{"email", "primary_email"},
			},
			{
				LogicalName: "category",
				Aliases:     []string{"category", "vendor_category", "vendorCategory", "type"},
				WriteKeys:   []string{"category", "vendor_category"},
				Fallback:    "Uncategorized",
			},
			{
				LogicalName: "description",
				Aliases:     []string{"description", "about", "bio"},
				WriteKeys:   []string{"description"},
				NullToClear: true,
			},
			{
				LogicalName: "location",
				Aliases:     []string{"location", "full_address", "fullAddress", "address_line"},
				Kind:        reconcile.KindLocation,
				WriteKeys:   []string{"location"},
			},
			{
				LogicalName: "website",
				Aliases:     []string{"website", "website_url", "websiteUrl", "url"},
				WriteKeys:   []string{"website", "website_url"},
				NullToClear: true,
			},
			{
				LogicalName: "bankAccount",
				Aliases:     []string{"bank_account", "bankAccount", "account_number", "accountNumber"},
				Kind:        reconcile.KindAccount,
				WriteKeys:   []string{"bank_account", "account_number"},
			},
			{
				LogicalName: "discountRate",
				Aliases:     []string{"discount_rate", "discountRate", "default_discount", "defaultDiscount"},
				Kind:        reconcile.KindNumber,
				WriteKeys:   []string{"discount_rate", "discountRate"},
			},
			{
				LogicalName: "joinedDate",
				Aliases:     []string{"created_at", "createdAt", "joined_at", "joinedAt", "registration_date"},
				Kind:        reconcile.KindDate,
			},
			{
				LogicalName: "active",
				Aliases:     []string{"active", "is_active", "isActive"},
				Kind:        reconcile.KindFlag,
				WriteKeys:   []string{"active", "is_active"},
				Fallback:    true,
			},
			{
				LogicalName: "logoURL",
				Aliases:     []string{"logo", "logo_url", "logoUrl", "image_url", "imageUrl"},
				WriteKeys:   []string{"logo_url", "logoUrl"},
				Fallback:    "",
				NullToClear: true,
			},
		},
		// Keys the current backend rejects with 400s. Compatibility shim;
		// revisit whenever the backend contract changes.
		DenyList: []string{"verification_status", "verificationStatus", "internal_notes", "legacy_id", "updated_at"},
		Steps: [][]string{
			{"vendorName", "category", "description"},
			{"contactName", "contactNumber", "email", "website"},
			{"location", "bankAccount", "discountRate"},
		},
	})
}

// Vendor is the fully-resolved vendor view-model. Every field carries a
// usable display value; the UI never null-checks.
type Vendor struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	ContactName   string  `json:"contactName"`
	ContactNumber string  `json:"contactNumber"`
	Email         string  `json:"email"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	Website       string  `json:"website"`
	BankAccount   string  `json:"bankAccount"`
	DiscountRate  float64 `json:"discountRate"`
	JoinedDate    string  `json:"joinedDate"`
	Active        bool    `json:"active"`
	LogoURL       string  `json:"logoUrl"`
}

// VendorFromFields builds the typed view-model from a normalized record.
func VendorFromFields(id string, f reconcile.Fields) Vendor {
	return Vendor{
		ID:            id,
		Name:          f.String("vendorName"),
		ContactName:   f.String("contactName"),
		ContactNumber: f.String("contactNumber"),
		Email:         f.String("email"),
		Category:      f.String("category"),
		Description:   f.String("description"),
		Location:      f.String("location"),
		Website:       f.String("website"),
		BankAccount:   f.String("bankAccount"),
		DiscountRate:  f.Number("discountRate"),
		JoinedDate:    f.String("joinedDate"),
		Active:        f.Bool("active"),
		LogoURL:       f.String("logoURL"),
	}
}
