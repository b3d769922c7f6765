// internal/app/features/organizations/types.go
package organizations

import (
	"net/http"
	"strings"

	"github.com/dalemusser/connecthub/internal/app/system/formutil"
	"github.com/dalemusser/connecthub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/connecthub/internal/app/system/inputval"
	"github.com/dalemusser/connecthub/internal/domain/models"
)

// serviceForm is one row of the services editor.
type serviceForm struct {
	Name        string
	Description string
}

// orgForm backs the new and edit screens.
type orgForm struct {
	formutil.Base

	IsNew bool
	Slug  string

	Name        string `form:"name" label:"Name" validate:"required"`
	NewSlug     string `form:"slug" label:"Slug" validate:"slug"`
	Tagline     string
	Description string
	Phone       string
	Email       string `form:"email" validate:"email"`
	Website     string `form:"website" label:"Website" validate:"httpurl"`
	CategoryID  string `form:"category_id" label:"Category" validate:"required,objectid"`
	Services    []serviceForm

	// Categories feeds the category select.
	Categories []models.Category
}

func readOrgForm(r *http.Request) orgForm {
	form := orgForm{
		Name:        strings.TrimSpace(r.FormValue("name")),
		NewSlug:     strings.TrimSpace(r.FormValue("slug")),
		Tagline:     strings.TrimSpace(r.FormValue("tagline")),
		Description: htmlsanitize.Sanitize(r.FormValue("description")),
		Phone:       strings.TrimSpace(r.FormValue("phone")),
		Email:       strings.TrimSpace(r.FormValue("email")),
		Website:     strings.TrimSpace(r.FormValue("website")),
		CategoryID:  strings.TrimSpace(r.FormValue("category_id")),
	}

	names := r.Form["service_name"]
	descs := r.Form["service_description"]
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		svc := serviceForm{Name: name}
		if i < len(descs) {
			svc.Description = htmlsanitize.Sanitize(strings.TrimSpace(descs[i]))
		}
		form.Services = append(form.Services, svc)
	}
	return form
}

// validate runs the tag rules declared on the form fields. Errors are
// keyed by the form tag so the templates can place them next to inputs.
func (f *orgForm) validate() inputval.FieldErrors {
	return inputval.Validate(f).ByField()
}

func (f *orgForm) services() []models.Service {
	out := make([]models.Service, 0, len(f.Services))
	for _, svc := range f.Services {
		out = append(out, models.Service{Name: svc.Name, Description: svc.Description})
	}
	return out
}
