package report

import (
	"sort"
	"time"

	"go-fieldtrack/internal/geo"

	"github.com/google/uuid"
)

const (
	StatusActive  = "Active"
	StatusOffline = "Offline"
)

type DailySummary struct {
	Date            string           `json:"date"`
	TeamStats       TeamStats        `json:"team_stats"`
	EmployeeReports []EmployeeReport `json:"employee_reports"`
}

type TeamStats struct {
	TotalEmployees int     `json:"total_employees"`
	ActiveNow      int     `json:"active_now"`
	TotalCheckins  int     `json:"total_checkins"`
	TotalHours     float64 `json:"total_hours"`
}

type EmployeeReport struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	TotalCheckins int        `json:"total_checkins"`
	UniqueClients int        `json:"unique_clients"`
	TotalHours    float64    `json:"total_hours"`
	Status        string     `json:"status"`
	Activities    []Activity `json:"activities"`
}

type Activity struct {
	ID                 string     `json:"id"`
	ClientID           string     `json:"client_id"`
	ClientName         string     `json:"client_name"`
	Status             string     `json:"status"`
	DistanceFromClient float64    `json:"distance_from_client"`
	Notes              *string    `json:"notes"`
	CheckinTime        time.Time  `json:"checkin_time"`
	CheckoutTime       *time.Time `json:"checkout_time"`
}

// Summarize aggregates one day of sessions per team member. Hours only count
// closed sessions; an employee is Active when their latest session of the day
// has no checkout time. Rows for employees outside team are ignored.
func Summarize(date string, team []TeamMember, rows []CheckinRow) DailySummary {
	byEmployee := make(map[uuid.UUID][]CheckinRow, len(team))
	for _, m := range team {
		byEmployee[m.ID] = nil
	}
	for _, r := range rows {
		if _, ok := byEmployee[r.EmployeeID]; ok {
			byEmployee[r.EmployeeID] = append(byEmployee[r.EmployeeID], r)
		}
	}

	summary := DailySummary{
		Date:            date,
		EmployeeReports: make([]EmployeeReport, 0, len(team)),
	}
	summary.TeamStats.TotalEmployees = len(team)

	var teamHours float64
	for _, m := range team {
		sessions := byEmployee[m.ID]
		sort.SliceStable(sessions, func(i, j int) bool {
			return sessions[i].CheckinTime.Before(sessions[j].CheckinTime)
		})

		rep := summarizeEmployee(m, sessions)
		if rep.Status == StatusActive {
			summary.TeamStats.ActiveNow++
		}
		summary.TeamStats.TotalCheckins += rep.TotalCheckins
		teamHours += rep.TotalHours
		summary.EmployeeReports = append(summary.EmployeeReports, rep)
	}
	summary.TeamStats.TotalHours = geo.Round2(teamHours)

	return summary
}

func summarizeEmployee(m TeamMember, sessions []CheckinRow) EmployeeReport {
	var hours float64
	clients := make(map[uuid.UUID]struct{}, len(sessions))
	activities := make([]Activity, 0, len(sessions))

	for _, s := range sessions {
		clients[s.ClientID] = struct{}{}
		if s.CheckoutTime != nil {
			hours += s.CheckoutTime.Sub(s.CheckinTime).Hours()
		}
		activities = append(activities, Activity{
			ID:                 s.ID.String(),
			ClientID:           s.ClientID.String(),
			ClientName:         s.ClientName,
			Status:             s.Status,
			DistanceFromClient: s.DistanceFromClient,
			Notes:              s.Notes,
			CheckinTime:        s.CheckinTime,
			CheckoutTime:       s.CheckoutTime,
		})
	}

	status := StatusOffline
	if n := len(sessions); n > 0 && sessions[n-1].CheckoutTime == nil {
		status = StatusActive
	}

	return EmployeeReport{
		ID:            m.ID.String(),
		Name:          m.Name,
		Email:         m.Email,
		TotalCheckins: len(sessions),
		UniqueClients: len(clients),
		TotalHours:    geo.Round2(hours),
		Status:        status,
		Activities:    activities,
	}
}
