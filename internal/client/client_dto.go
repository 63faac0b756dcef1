package client

type ClientResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	AssignedDate string   `json:"assigned_date,omitempty"`
}

func mapToResponse(c AssignedClient) ClientResponse {
	resp := ClientResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Address:   c.Address,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
	}
	if !c.AssignedDate.IsZero() {
		resp.AssignedDate = c.AssignedDate.Format("2006-01-02")
	}
	return resp
}

func MapToListResponse(rows []AssignedClient) []ClientResponse {
	resp := make([]ClientResponse, 0, len(rows))
	for _, c := range rows {
		resp = append(resp, mapToResponse(c))
	}
	return resp
}
