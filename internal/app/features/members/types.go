// internal/app/features/members/types.go
package members

import (
	"net/http"
	"strings"

	"github.com/dalemusser/connecthub/internal/app/system/formutil"
	"github.com/dalemusser/connecthub/internal/app/system/inputval"
	"github.com/dalemusser/connecthub/internal/domain/models"
)

// memberForm backs both the new-member and edit-member screens. The field
// values echo what the user typed so a failed validation never loses input.
type memberForm struct {
	formutil.Base

	IsNew    bool
	MemberID string

	FirstName      string `form:"first_name" label:"First name" validate:"required"`
	LastName       string `form:"last_name" label:"Last name" validate:"required"`
	Email          string `form:"email" validate:"email"`
	Role           string
	JobTitle       string
	ImageURL       string `form:"image_url" label:"Image URL" validate:"httpurl"`
	LinkedInURL    string `form:"linkedin_url" label:"LinkedIn URL" validate:"httpurl"`
	XURL           string `form:"x_url" label:"X URL" validate:"httpurl"`
	OrganizationID string `form:"organization_id" label:"Organization" validate:"objectid"`

	// Organizations feeds the affiliation select.
	Organizations []models.Organization
}

func readMemberForm(r *http.Request) memberForm {
	return memberForm{
		FirstName:      strings.TrimSpace(r.FormValue("first_name")),
		LastName:       strings.TrimSpace(r.FormValue("last_name")),
		Email:          strings.TrimSpace(r.FormValue("email")),
		Role:           strings.TrimSpace(r.FormValue("role")),
		JobTitle:       strings.TrimSpace(r.FormValue("job_title")),
		ImageURL:       strings.TrimSpace(r.FormValue("image_url")),
		LinkedInURL:    strings.TrimSpace(r.FormValue("linkedin_url")),
		XURL:           strings.TrimSpace(r.FormValue("x_url")),
		OrganizationID: strings.TrimSpace(r.FormValue("organization_id")),
	}
}

// validate runs the tag rules on the form fields. withIdentity adds the
// checks the edit screen skips: email presence and the role, which only
// the create screen collects.
func (f *memberForm) validate(withIdentity bool) inputval.FieldErrors {
	errs := inputval.Validate(f).ByField()

	if withIdentity {
		if f.Email == "" {
			errs.Add("email", "Email is required.")
		}
		if f.Role != "admin" && f.Role != "member" {
			errs.Add("role", "Choose a valid role.")
		}
	}

	return errs
}
