package checkin

import "time"

// CheckinRequest uses pointers so a missing coordinate is distinguishable from 0.
type CheckinRequest struct {
	ClientID  string   `json:"client_id"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Notes     *string  `json:"notes"`
}

type CheckinResponse struct {
	ID                 string `json:"id"`
	Message            string `json:"message"`
	DistanceFromClient string `json:"distance_from_client"`
	FarFromClient      bool   `json:"far_from_client"`
}

type CheckoutResponse struct {
	ID           string    `json:"id"`
	Message      string    `json:"message"`
	CheckinTime  time.Time `json:"checkin_time"`
	CheckoutTime time.Time `json:"checkout_time"`
}

type HistoryQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

type SessionResponse struct {
	ID                 string     `json:"id"`
	EmployeeID         string     `json:"employee_id"`
	ClientID           string     `json:"client_id"`
	ClientName         string     `json:"client_name"`
	ClientAddress      string     `json:"client_address,omitempty"`
	Latitude           float64    `json:"latitude"`
	Longitude          float64    `json:"longitude"`
	DistanceFromClient float64    `json:"distance_from_client"`
	Notes              *string    `json:"notes"`
	Status             string     `json:"status"`
	CheckinTime        time.Time  `json:"checkin_time"`
	CheckoutTime       *time.Time `json:"checkout_time"`
}

func mapToSessionResponse(c CheckinWithClient) SessionResponse {
	return SessionResponse{
		ID:                 c.ID.String(),
		EmployeeID:         c.EmployeeID.String(),
		ClientID:           c.ClientID.String(),
		ClientName:         c.ClientName,
		ClientAddress:      c.ClientAddress,
		Latitude:           c.Latitude,
		Longitude:          c.Longitude,
		DistanceFromClient: c.DistanceFromClient,
		Notes:              c.Notes,
		Status:             string(c.Status),
		CheckinTime:        c.CheckinTime,
		CheckoutTime:       c.CheckoutTime,
	}
}

func mapToSessionListResponse(rows []CheckinWithClient) []SessionResponse {
	resp := make([]SessionResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, mapToSessionResponse(r))
	}
	return resp
}
