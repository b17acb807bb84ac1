package api

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/karizzz/subletez-backend/internal/models"
)

// RegisterValidators installs the custom binding rules used by the listing
// request DTO: "province" and "listingcondition" check membership in the
// fixed sets the client offers.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("province", func(fl validator.FieldLevel) bool {
		return inSet(models.Provinces, fl.Field().String())
	})
	v.RegisterValidation("listingcondition", func(fl validator.FieldLevel) bool {
		return inSet(models.Conditions, fl.Field().String())
	})
}

func inSet(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}
