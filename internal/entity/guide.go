package entity

// Guide fields other than the key are nullable; absent JSON fields stay NULL
// in the store and round-trip as null.
type Guide struct {
	GuideID         int      `json:"guideId"`
	Name            *string  `json:"name"`
	Email           *string  `json:"email"`
	Phone           *string  `json:"phone"`
	ExperienceYears *int     `json:"experienceYears"`
	Rating          *float64 `json:"rating"`
	Specialization  *string  `json:"specialization"`
	City            *string  `json:"city"`
	State           *string  `json:"state"`
	Available       *bool    `json:"available"`
	JoinedDate      *string  `json:"joinedDate"` // free-form date string, not validated
	Image           *string  `json:"image"`
}
