package entity

import (
	"github.com/thrive-platform/admin-console/internal/reconcile"
)

// BeneficiaryKey identifies the beneficiary entity in the reconcile registry.
const BeneficiaryKey = "beneficiaries"

func init() {
	reconcile.Register(reconcile.EntityDef{
		Key:   BeneficiaryKey,
		Label: "Beneficiaries",
		Path:  "/beneficiaries",
		Fields: []reconcile.FieldSpec{
			{
				LogicalName: "fullName",
				Aliases:     []string{"full_name", "fullName", "name", "beneficiary_name", "beneficiaryName"},
				WriteKeys:   []string{"full_name", "name"},
				Required:    true,
			},
			{
				LogicalName: "email",
				Aliases:     []string{"email", "contact_email", "contactEmail"},
				WriteKeys:   []string{"email", "contact_email"},
			},
			{
				LogicalName: "phone",
				Aliases:     []string{"phone", "phone_number", "phoneNumber", "contact_number"},
				WriteKeys:   []string{"phone", "phone_number"},
			},
			{
				LogicalName: "program",
				Aliases:     []string{"program", "program_name", "programName", "assistance_program"},
				WriteKeys:   []string{"program", "program_name"},
				Fallback:    "Unassigned",
			},
			{
				LogicalName: "status",
				Aliases:     []string{"status", "enrollment_status", "enrollmentStatus"},
				WriteKeys:   []string{"status", "enrollment_status"},
				Fallback:    "Pending",
			},
			{
				LogicalName: "householdSize",
				Aliases:     []string{"household_size", "householdSize", "family_size", "familySize"},
				Kind:        reconcile.KindNumber,
				WriteKeys:   []string{"household_size", "householdSize"},
			},
			{
				LogicalName: "supportAmount",
				Aliases:     []string{"support_amount", "supportAmount", "monthly_support", "monthlySupport"},
				Kind:        reconcile.KindNumber,
				WriteKeys:   []string{"support_amount", "supportAmount"},
			},
			{
				LogicalName: "enrolledDate",
				Aliases:     []string{"enrolled_at", "enrolledAt", "created_at", "createdAt"},
				Kind:        reconcile.KindDate,
			},
			{
				LogicalName: "location",
				Aliases:     []string{"location", "full_address", "fullAddress"},
				Kind:        reconcile.KindLocation,
				WriteKeys:   []string{"location"},
			},
			{
				LogicalName: "notes",
				Aliases:     []string{"notes", "case_notes", "caseNotes"},
				WriteKeys:   []string{"notes"},
				NullToClear: true,
			},
		},
		DenyList: []string{"case_worker_id", "eligibility_score", "ssn_last4", "updated_at"},
		Steps: [][]string{
			{"fullName", "email", "phone"},
			{"program", "status", "householdSize", "supportAmount"},
			{"location", "notes"},
		},
	})
}

// Beneficiary is the fully-resolved beneficiary view-model.
type Beneficiary struct {
	ID            string  `json:"id"`
	FullName      string  `json:"fullName"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Program       string  `json:"program"`
	Status        string  `json:"status"`
	HouseholdSize float64 `json:"householdSize"`
	SupportAmount float64 `json:"supportAmount"`
	EnrolledDate  string  `json:"enrolledDate"`
	Location      string  `json:"location"`
	Notes         string  `json:"notes"`
}

// BeneficiaryFromFields builds the typed view-model from a normalized record.
func BeneficiaryFromFields(id string, f reconcile.Fields) Beneficiary {
	return Beneficiary{
		ID:            id,
		FullName:      f.String("fullName"),
		Email:         f.String("email"),
		Phone:         f.String("phone"),
		Program:       f.String("program"),
		Status:        f.String("status"),
		HouseholdSize: f.Number("householdSize"),
		SupportAmount: f.Number("supportAmount"),
		EnrolledDate:  f.String("enrolledDate"),
		Location:      f.String("location"),
		Notes:         f.String("notes"),
	}
}
