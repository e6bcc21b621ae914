package cataloging

import "errors"

var (
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrNameRequired      = errors.New("name is required")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrNegativeBudget    = errors.New("budget cannot be negative")
	ErrInvalidDateRange  = errors.New("end date must not be before start date")
	ErrParentNotInFamily = errors.New("parent publication belongs to another campaign")
)
