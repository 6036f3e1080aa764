package handler

import (
	"html/template"

	"hospitaldesk/internal/delivery/dto"
)

// pageData carries everything a server-rendered page needs. Pages only use
// the fields relevant to them; the rest stay at their zero values.
type pageData struct {
	Title          string
	Page           string
	RefreshSeconds int
	Flash          *flashMessage
	Totals         dto.OverviewResponse
	Patients       []dto.PatientResponse
	Appointments   []dto.AppointmentResponse
	Bills          []dto.BillResponse
	Slots          []string
}

const baseTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta http-equiv="refresh" content="{{.RefreshSeconds}}">
<title>{{.Title}} - Hospital Desk</title>
<style>
body { font-family: system-ui, sans-serif; margin: 0; background: #f4f6f8; color: #1f2a36; }
header { background: #145374; color: #fff; padding: 12px 24px; }
header h1 { margin: 0; font-size: 1.2rem; }
nav { background: #1d6fa1; padding: 8px 24px; }
nav a { color: #e8f2f8; margin-right: 16px; text-decoration: none; }
nav a:hover { text-decoration: underline; }
main { padding: 24px; max-width: 960px; margin: 0 auto; }
.notice { padding: 10px 14px; border-radius: 4px; margin-bottom: 16px; }
.notice.success { background: #dff2e1; color: #1d5e2a; }
.notice.error { background: #fbe3e0; color: #8a2418; }
.cards { display: flex; gap: 16px; flex-wrap: wrap; }
.card { background: #fff; border-radius: 6px; padding: 16px 24px; box-shadow: 0 1px 3px rgba(0,0,0,.12); min-width: 160px; }
.card .value { font-size: 2rem; font-weight: 600; }
.card .label { color: #5b6a78; }
form { background: #fff; border-radius: 6px; padding: 16px; margin-bottom: 24px; box-shadow: 0 1px 3px rgba(0,0,0,.12); }
form label { display: block; margin: 8px 0 4px; font-size: .9rem; color: #48555f; }
form input, form select { width: 100%; max-width: 320px; padding: 6px 8px; border: 1px solid #c4ced6; border-radius: 4px; }
form button { margin-top: 12px; padding: 8px 18px; background: #145374; color: #fff; border: 0; border-radius: 4px; cursor: pointer; }
table { width: 100%; border-collapse: collapse; background: #fff; box-shadow: 0 1px 3px rgba(0,0,0,.12); }
th, td { text-align: left; padding: 8px 12px; border-bottom: 1px solid #e3e8ec; }
th { background: #eef3f6; font-size: .85rem; text-transform: uppercase; letter-spacing: .03em; }
td.empty { color: #7b8894; font-style: italic; }
.hint { color: #5b6a78; font-size: .85rem; }
</style>
</head>
<body data-page="{{.Page}}">
<header><h1>Hospital Desk</h1></header>
<nav>
<a href="/">Overview</a>
<a href="/patients">Patients</a>
<a href="/appointments">Appointments</a>
<a href="/billing">Billing</a>
</nav>
<main>
<div id="js-messages">{{if .Flash}}<div class="notice {{.Flash.Kind}}">{{.Flash.Text}}</div>{{end}}</div>
<h2>{{.Title}}</h2>
{{template "content" .}}
</main>
</body>
</html>
`

const indexTemplate = `{{define "content"}}
<div class="cards">
<div class="card"><div class="value" id="total-patients">{{.Totals.Patients}}</div><div class="label">Patients</div></div>
<div class="card"><div class="value" id="total-appointments">{{.Totals.Appointments}}</div><div class="label">Appointments</div></div>
<div class="card"><div class="value" id="total-bills">{{.Totals.Bills}}</div><div class="label">Bills</div></div>
<div class="card"><div class="value" id="total-unpaid">{{.Totals.Unpaid}}</div><div class="label">Unpaid</div></div>
</div>
{{end}}`

const patientsTemplate = `{{define "content"}}
<form id="patient-form" method="post" action="/patients">
<label for="name">Name</label>
<input id="name" name="name" type="text">
<label for="age">Age</label>
<input id="age" name="age" type="text">
<label for="gender">Gender</label>
<input id="gender" name="gender" type="text">
<label for="contact">Contact</label>
<input id="contact" name="contact" type="text">
<button type="submit">Register patient</button>
</form>
<table>
<thead><tr><th>ID</th><th>Name</th><th>Age</th><th>Gender</th><th>Contact</th><th>Created</th></tr></thead>
<tbody id="patients-body">
{{range .Patients}}<tr><td>{{.ID}}</td><td>{{.Name}}</td><td>{{.Age}}</td><td>{{.Gender}}</td><td>{{.Contact}}</td><td>{{.CreatedAt}}</td></tr>
{{else}}<tr><td colspan="6" class="empty">No patients yet.</td></tr>
{{end}}</tbody>
</table>
{{end}}`

const appointmentsTemplate = `{{define "content"}}
<form id="appointment-form" method="post" action="/appointments">
<label for="patient_id">Patient</label>
<select id="patient_id" name="patient_id">
<option value="">Select a patient</option>
{{range .Patients}}<option value="{{.ID}}">{{.Name}} ({{.ID}})</option>
{{end}}</select>
<label for="preferred_date">Preferred date</label>
<input id="preferred_date" name="preferred_date" type="text" placeholder="YYYY-MM-DD">
<label for="reason">Reason</label>
<input id="reason" name="reason" type="text">
<button type="submit">Book appointment</button>
<p class="hint">Half-hour slots run {{index .Slots 0}} through {{index .Slots (sub (len .Slots) 1)}}; the first free slot on or after the preferred date is assigned.</p>
</form>
<table>
<thead><tr><th>ID</th><th>Patient</th><th>Date</th><th>Time</th><th>Reason</th><th>Status</th></tr></thead>
<tbody id="appointments-body">
{{range .Appointments}}<tr><td>{{.ID}}</td><td>{{.PatientName}} ({{.PatientID}})</td><td>{{.Date}}</td><td>{{.Time}}</td><td>{{.Reason}}</td><td>{{.Status}}</td></tr>
{{else}}<tr><td colspan="6" class="empty">No appointments yet.</td></tr>
{{end}}</tbody>
</table>
{{end}}`

const billingTemplate = `{{define "content"}}
<form id="bill-form" method="post" action="/billing">
<label for="bill_patient_id">Patient</label>
<select id="bill_patient_id" name="patient_id">
<option value="">Select a patient</option>
{{range .Patients}}<option value="{{.ID}}">{{.Name}} ({{.ID}})</option>
{{end}}</select>
<label for="description">Description</label>
<input id="description" name="description" type="text">
<label for="amount">Amount</label>
<input id="amount" name="amount" type="text" placeholder="0.00">
<button type="submit">Generate bill</button>
</form>
<table>
<thead><tr><th>ID</th><th>Patient</th><th>Description</th><th>Amount</th><th>Status</th><th>Created</th></tr></thead>
<tbody id="billing-body">
{{range .Bills}}<tr><td>{{.ID}}</td><td>{{.PatientName}} ({{.PatientID}})</td><td>{{.Description}}</td><td>{{.Amount}}</td><td>{{.Status}}</td><td>{{.CreatedAt}}</td></tr>
{{else}}<tr><td colspan="6" class="empty">No bills yet.</td></tr>
{{end}}</tbody>
</table>
{{end}}`

var pageTemplates = buildPageTemplates()

func buildPageTemplates() map[string]*template.Template {
	contents := map[string]string{
		"index":        indexTemplate,
		"patients":     patientsTemplate,
		"appointments": appointmentsTemplate,
		"billing":      billingTemplate,
	}

	funcs := template.FuncMap{
		"sub": func(a, b int) int { return a - b },
	}

	pages := make(map[string]*template.Template, len(contents))
	for name, content := range contents {
		base := template.Must(template.New("base").Funcs(funcs).Parse(baseTemplate))
		pages[name] = template.Must(base.Parse(content))
	}

	return pages
}
