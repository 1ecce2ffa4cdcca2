package services

import (
	"html/template"
	"strconv"
	"strings"
	"time"

	"modreport/internal/logger"
	. "modreport/internal/models"
	"modreport/internal/utils"

	"gorm.io/datatypes"
)

// ReportService renders a shift into the MOD report document. The web variant
// includes the comment thread; the static variant is the PDF source and omits
// it. All timestamps render in the viewer's timezone preference.
type ReportService struct {
	log logger.Logger
}

func NewReportService() *ReportService {
	return &ReportService{
		log: logger.New("reportService"),
	}
}

type departmentRow struct {
	Label string
	Value string
}

type reportData struct {
	Shift           *Shift
	ModName         string
	Date            string
	Departments     []departmentRow
	IncludeComments bool
	CanComment      bool
	GeneratedAt     string
}

// RenderWeb renders the interactive report page, comments included.
func (s *ReportService) RenderWeb(shift *Shift, viewer *User, canComment bool) (string, error) {
	return s.render(shift, viewer, true, canComment)
}

// RenderStatic renders the report without comments, for PDF export.
func (s *ReportService) RenderStatic(shift *Shift, viewer *User) (string, error) {
	return s.render(shift, viewer, false, false)
}

func (s *ReportService) render(
	shift *Shift,
	viewer *User,
	includeComments bool,
	canComment bool,
) (string, error) {
	log := s.log.Function("render")

	loc := viewer.Location()
	funcs := template.FuncMap{
		"tod": utils.FormatTimeOfDay,
		"todPtr": func(t *datatypes.Time) string {
			if t == nil {
				return ""
			}
			return utils.FormatTimeOfDay(*t)
		},
		"ts": func(t time.Time) string {
			return t.In(loc).Format("Jan 2, 2006 15:04")
		},
		"num": func(v *int) string {
			if v == nil {
				return ""
			}
			return strconv.Itoa(*v)
		},
	}

	tmpl, err := template.New("report").Funcs(funcs).Parse(reportTemplate)
	if err != nil {
		return "", log.Err("failed to parse report template", err)
	}

	data := reportData{
		Shift:           shift,
		ModName:         shift.Mod.Name,
		Date:            time.Time(shift.Date).Format("January 2, 2006"),
		Departments:     departmentRows(shift),
		IncludeComments: includeComments,
		CanComment:      canComment,
		GeneratedAt:     time.Now().In(loc).Format("Jan 2, 2006 15:04"),
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", log.Err("failed to render report", err, "shiftID", shift.ID)
	}

	return out.String(), nil
}

func departmentRows(shift *Shift) []departmentRow {
	rows := []departmentRow{
		{"GM / AGM", shift.GMAGM},
		{"Housekeeping", shift.Housekeeping},
		{"Food & Beverage", shift.FoodBeverage},
		{"Sales", shift.Sales},
		{"Aquatics", shift.Aquatics},
		{"Retail & Attractions", shift.RetailAttractions},
		{"Kids Entertainment", shift.KidsEntertainment},
		{"Guest Services", shift.GuestServices},
		{"HR", shift.HR},
		{"Finance", shift.Finance},
		{"Engineering", shift.Engineering},
		{"IT", shift.IT},
	}

	filled := make([]departmentRow, 0, len(rows))
	for _, row := range rows {
		if row.Value != "" {
			filled = append(filled, row)
		}
	}
	return filled
}

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>MOD Report {{.Date}} - {{.ModName}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 2rem; color: #222; }
h1 { font-size: 1.5rem; margin-bottom: 0; }
h2 { font-size: 1.1rem; border-bottom: 1px solid #ccc; padding-bottom: 0.25rem; margin-top: 1.5rem; }
table { border-collapse: collapse; width: 100%; margin-top: 0.5rem; }
th, td { border: 1px solid #ddd; padding: 0.35rem 0.5rem; text-align: left; font-size: 0.9rem; }
th { background: #f4f4f4; }
.meta { color: #666; font-size: 0.85rem; }
.status-open { color: #b35900; }
.status-closed { color: #1a7a1a; }
.comment { border: 1px solid #e0e0e0; border-radius: 4px; padding: 0.5rem 0.75rem; margin-top: 0.5rem; }
.comment .meta { margin-bottom: 0.25rem; }
</style>
</head>
<body>
<h1>Manager on Duty Report</h1>
<p class="meta">
{{.ModName}} &middot; {{.Date}} &middot; {{.Shift.Schedule}} &middot;
<span class="status-{{.Shift.Status}}">{{.Shift.Status}}</span>
</p>

<h2>Overview</h2>
<table>
<tr><th>Occupancy</th><th>Arrivals</th><th>Departures</th><th>NPS Score</th><th>NPS Rank</th></tr>
<tr>
<td>{{num .Shift.Occupancy}}</td>
<td>{{num .Shift.Arrivals}}</td>
<td>{{num .Shift.Departures}}</td>
<td>{{num .Shift.NPSScore}}</td>
<td>{{num .Shift.NPSRank}}</td>
</tr>
</table>

{{if .Departments}}
<h2>Department Staffing</h2>
<table>
{{range .Departments}}<tr><th>{{.Label}}</th><td>{{.Value}}</td></tr>
{{end}}</table>
{{end}}

{{if .Shift.Incidents}}
<h2>Incidents</h2>
<table>
<tr><th>Time</th><th>Code</th><th>Location</th><th>Notes</th></tr>
{{range .Shift.Incidents}}<tr><td>{{tod .IncidentTime}}</td><td>{{.Code}}</td><td>{{.Location}}</td><td>{{.Notes}}</td></tr>
{{end}}</table>
{{end}}

{{if .Shift.Downtimes}}
<h2>System Downtime</h2>
<table>
<tr><th>Outlet</th><th>Start</th><th>End</th><th>Reason</th></tr>
{{range .Shift.Downtimes}}<tr><td>{{.Outlet}}</td><td>{{tod .StartTime}}</td><td>{{todPtr .EndTime}}</td><td>{{.Reason}}</td></tr>
{{end}}</table>
{{end}}

{{if .Shift.GuestOpportunities}}
<h2>Guest Opportunities</h2>
<table>
<tr><th>Guest</th><th>Room</th><th>Description</th><th>Compensation</th></tr>
{{range .Shift.GuestOpportunities}}<tr><td>{{.LastName}}</td><td>{{.Room}}</td><td>{{.Description}}</td><td>{{.Compensation}}</td></tr>
{{end}}</table>
{{end}}

{{if .Shift.RoomInspections}}
<h2>Room Inspections</h2>
<table>
<tr><th>Room</th><th>Type</th><th>Successes</th><th>Opportunities</th></tr>
{{range .Shift.RoomInspections}}<tr><td>{{.RoomNumber}}</td><td>{{.RoomType}}</td><td>{{.Successes}}</td><td>{{.Opportunities}}</td></tr>
{{end}}</table>
{{end}}

{{if .Shift.OutletInspections}}
<h2>Outlet Inspections</h2>
<table>
<tr><th>Outlet</th><th>Time</th><th>Successes</th><th>Opportunities</th></tr>
{{range .Shift.OutletInspections}}<tr><td>{{.Outlet}}</td><td>{{tod .InspectionTime}}</td><td>{{.Successes}}</td><td>{{.Opportunities}}</td></tr>
{{end}}</table>
{{end}}

{{if .Shift.HighPaws}}
<h2>High Paws</h2>
<table>
<tr><th>Pack Members</th><th>Department</th><th>Description</th></tr>
{{range .Shift.HighPaws}}<tr><td>{{.PackMembers}}</td><td>{{.Department}}</td><td>{{.Description}}</td></tr>
{{end}}</table>
{{end}}

{{if .Shift.ModMeals}}
<h2>MOD Meals</h2>
<table>
<tr><th>Outlet</th><th>Menu Item</th><th>Feedback</th></tr>
{{range .Shift.ModMeals}}<tr><td>{{.Outlet}}</td><td>{{.MenuItem}}</td><td>{{.Feedback}}</td></tr>
{{end}}</table>
{{end}}

{{if or .Shift.QualityAssurance .Shift.Suggestions .Shift.ShiftNotes}}
<h2>Shift Summary</h2>
<table>
{{if .Shift.QualityAssurance}}<tr><th>Quality Assurance</th><td>{{.Shift.QualityAssurance}}</td></tr>{{end}}
{{if .Shift.Suggestions}}<tr><th>Suggestions</th><td>{{.Shift.Suggestions}}</td></tr>{{end}}
{{if .Shift.ShiftNotes}}<tr><th>Shift Notes</th><td>{{.Shift.ShiftNotes}}</td></tr>{{end}}
</table>
{{end}}

{{if or .Shift.PassDownTime .Shift.PassDownNextMod .Shift.PassDownNotes}}
<h2>Pass Down</h2>
<table>
<tr><th>Time</th><th>Next MOD</th><th>Notes</th></tr>
<tr><td>{{todPtr .Shift.PassDownTime}}</td><td>{{.Shift.PassDownNextMod}}</td><td>{{.Shift.PassDownNotes}}</td></tr>
</table>
{{end}}

{{if .IncludeComments}}
<h2>Comments</h2>
{{range .Shift.Comments}}
<div class="comment">
<div class="meta">{{.Author.Name}} &middot; {{ts .CreatedAt}}</div>
<div>{{.Body}}</div>
</div>
{{else}}
<p class="meta">No comments yet.</p>
{{end}}
{{if .CanComment}}
<form method="post" action="/api/reports/{{.Shift.ID}}/comments">
<textarea name="body" rows="3" cols="60" required></textarea><br>
<button type="submit">Add Comment</button>
</form>
{{end}}
{{end}}

<p class="meta">Generated {{.GeneratedAt}}</p>
</body>
</html>
`
