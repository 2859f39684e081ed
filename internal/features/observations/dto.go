package observations

type ObservationRequest struct {
	Observer    string `json:"observer"    binding:"required,max=128"`
	StationName string `json:"stationName" binding:"required,max=128"`
	// calendar day of the session, "2006-01-02"
	ObsDate string `json:"obsDate"   binding:"required"`
	// clock values within the observation day, "15:04"
	StartTime    string `json:"startTime" binding:"required"`
	EndTime      string `json:"endTime"   binding:"required"`
	ReceiverNo   string `json:"receiverNo"   binding:"max=64"`
	ReceiverName string `json:"receiverName" binding:"max=128"`
	HeightMode   string `json:"heightMode"   binding:"max=64"`
	Memo         string `json:"memo"         binding:"max=4000"`
}

type ListObservationsResponse struct {
	Observations []Observation `json:"observations"`
}
