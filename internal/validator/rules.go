package validator

import (
	"log"

	"sponsorhub_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires the domain value rules into the validator
// instance.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Rule registration only fails on programmer error, refuse to start.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-visibility", validateVisibility)
	mustRegister("is-ad-status", validateAdRequestStatus)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' handles empty values
	}
	// Admin is seeded, not registered.
	switch models.UserRole(value) {
	case models.UserRoleSponsor, models.UserRoleInfluencer:
		return true
	default:
		return false
	}
}

func validateVisibility(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidVisibility(models.CampaignVisibility(value))
}

func validateAdRequestStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidAdRequestStatus(models.AdRequestStatus(value))
}
