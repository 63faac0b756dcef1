package dashboard

import (
	"time"

	"go-fieldtrack/internal/client"
)

type TeamMemberResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CheckinItem struct {
	ID                 string     `json:"id"`
	EmployeeID         string     `json:"employee_id"`
	EmployeeName       string     `json:"employee_name,omitempty"`
	ClientID           string     `json:"client_id"`
	ClientName         string     `json:"client_name"`
	Status             string     `json:"status"`
	DistanceFromClient float64    `json:"distance_from_client"`
	Notes              *string    `json:"notes"`
	CheckinTime        time.Time  `json:"checkin_time"`
	CheckoutTime       *time.Time `json:"checkout_time"`
}

type ManagerStats struct {
	TeamSize       int                  `json:"team_size"`
	TeamMembers    []TeamMemberResponse `json:"team_members"`
	TodayCheckins  []CheckinItem        `json:"today_checkins"`
	ActiveCheckins int64                `json:"active_checkins"`
}

type EmployeeDashboard struct {
	TodayCheckins   []CheckinItem           `json:"today_checkins"`
	AssignedClients []client.ClientResponse `json:"assigned_clients"`
	WeekStats       WeekStats               `json:"week_stats"`
}

func mapToTeamResponse(rows []TeamMember) []TeamMemberResponse {
	resp := make([]TeamMemberResponse, 0, len(rows))
	for _, m := range rows {
		resp = append(resp, TeamMemberResponse{ID: m.ID.String(), Name: m.Name, Email: m.Email})
	}
	return resp
}

func mapToCheckinItems(rows []CheckinRow) []CheckinItem {
	resp := make([]CheckinItem, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, CheckinItem{
			ID:                 r.ID.String(),
			EmployeeID:         r.EmployeeID.String(),
			EmployeeName:       r.EmployeeName,
			ClientID:           r.ClientID.String(),
			ClientName:         r.ClientName,
			Status:             r.Status,
			DistanceFromClient: r.DistanceFromClient,
			Notes:              r.Notes,
			CheckinTime:        r.CheckinTime,
			CheckoutTime:       r.CheckoutTime,
		})
	}
	return resp
}
