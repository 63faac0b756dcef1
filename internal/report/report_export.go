package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	sheetSummary    = "Summary"
	sheetEmployees  = "Employees"
	sheetActivities = "Activities"

	exportTimeLayout = "2006-01-02 15:04"
)

// Export is a rendered report file.
type Export struct {
	FileName    string
	ContentType string
	Data        []byte
}

func exportFileName(date string) string {
	return fmt.Sprintf("daily-summary-%s.xlsx", date)
}

// BuildWorkbook renders a daily summary as an xlsx workbook with one sheet for
// the team stats, one per-employee and one listing every session. Times are
// written in loc.
func BuildWorkbook(s DailySummary, loc *time.Location) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, err
	}
	for _, name := range []string{sheetEmployees, sheetActivities} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	summaryRows := [][]any{
		{"Date", s.Date},
		{"Total employees", s.TeamStats.TotalEmployees},
		{"Active now", s.TeamStats.ActiveNow},
		{"Total check-ins", s.TeamStats.TotalCheckins},
		{"Total hours", s.TeamStats.TotalHours},
	}
	if err := writeRows(f, sheetSummary, summaryRows); err != nil {
		return nil, err
	}
	if err := f.SetColStyle(sheetSummary, "A", bold); err != nil {
		return nil, err
	}

	employeeRows := [][]any{{"Name", "Email", "Status", "Check-ins", "Unique clients", "Hours"}}
	activityRows := [][]any{{"Employee", "Client", "Check-in", "Check-out", "Status", "Distance (km)", "Notes"}}
	for _, e := range s.EmployeeReports {
		employeeRows = append(employeeRows, []any{e.Name, e.Email, e.Status, e.TotalCheckins, e.UniqueClients, e.TotalHours})
		for _, a := range e.Activities {
			checkout := ""
			if a.CheckoutTime != nil {
				checkout = a.CheckoutTime.In(loc).Format(exportTimeLayout)
			}
			notes := ""
			if a.Notes != nil {
				notes = *a.Notes
			}
			activityRows = append(activityRows, []any{
				e.Name,
				a.ClientName,
				a.CheckinTime.In(loc).Format(exportTimeLayout),
				checkout,
				a.Status,
				a.DistanceFromClient,
				notes,
			})
		}
	}
	if err := writeRows(f, sheetEmployees, employeeRows); err != nil {
		return nil, err
	}
	if err := writeRows(f, sheetActivities, activityRows); err != nil {
		return nil, err
	}
	for _, sheet := range []string{sheetEmployees, sheetActivities} {
		if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, "A", "G", 20); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
