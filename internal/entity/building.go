package entity

type Building struct {
	BuildingID   int      `json:"buildingId"`
	GuideID      *int     `json:"guideId"` // informational only, never validated against guides
	Name         *string  `json:"name"`
	Address      *string  `json:"address"`
	City         *string  `json:"city"`
	State        *string  `json:"state"`
	ZipCode      *string  `json:"zipCode"`
	Price        *float64 `json:"price"`
	Type         *string  `json:"type"`
	Bedrooms     *int     `json:"bedrooms"`
	Bathrooms    *int     `json:"bathrooms"`
	AreaSqft     *int     `json:"areaSqft"`
	Availability *string  `json:"availability"`
	Image        *string  `json:"image"`
	Featured     *bool    `json:"featured"`
}
