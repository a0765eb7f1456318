package models

// HealthLabel is an entry of the static dietary/health label catalog
// (e.g. "Vegan", "Gluten-Free").
type HealthLabel struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// DietaryRestrictionsRequest is the body of POST /dietary_restrictions.
//
// SelectedRestrictions is nil when the field is absent or null and an empty
// list when the user cleared every restriction.
type DietaryRestrictionsRequest struct {
	SelectedRestrictions *LabelIDs `json:"selectedRestrictions"`
}
