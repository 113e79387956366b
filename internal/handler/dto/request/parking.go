package request

type VehicleEntryRequest struct {
	LicensePlate string `json:"license_plate" binding:"required"`
	Color        string `json:"color" binding:"required"`
	Brand        string `json:"brand" binding:"required"`
	SpotType     string `json:"spot_type" binding:"required,oneof=regular disabled vip"`
}

type VehicleExitRequest struct {
	LicensePlate string `json:"license_plate" binding:"required"`
}
