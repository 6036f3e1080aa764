package dashboard

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"hospitaldesk/internal/delivery/dto"
)

// The table templates double as the escaping layer: html/template
// interpolates every cell as text, so record values can never smuggle
// markup into the document.
var (
	rowsTemplate = template.Must(template.New("rows").Parse(
		`{{range .}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end}}`))
	emptyRowTemplate = template.Must(template.New("empty").Parse(
		`<tr><td colspan="{{.Span}}" class="empty">{{.Message}}</td></tr>`))
)

// Every desk table renders six columns.
const tableColumns = 6

func renderRows(doc *Document, elementID string, rows [][]string, emptyMessage string) error {
	var b strings.Builder
	var err error

	if len(rows) == 0 {
		err = emptyRowTemplate.Execute(&b, struct {
			Span    int
			Message string
		}{Span: tableColumns, Message: emptyMessage})
	} else {
		err = rowsTemplate.Execute(&b, rows)
	}
	if err != nil {
		return err
	}

	return doc.SetContent(elementID, b.String())
}

// RenderPatients replaces the patients table body, one row per record in
// input order.
func RenderPatients(doc *Document, patients []dto.PatientResponse) error {
	rows := make([][]string, 0, len(patients))
	for _, patient := range patients {
		rows = append(rows, []string{
			patient.ID,
			patient.Name,
			strconv.Itoa(patient.Age),
			patient.Gender,
			patient.Contact,
			patient.CreatedAt,
		})
	}

	return renderRows(doc, PatientsBodyID, rows, "No patients yet.")
}

// RenderAppointments replaces the appointments table body.
func RenderAppointments(doc *Document, appointments []dto.AppointmentResponse) error {
	rows := make([][]string, 0, len(appointments))
	for _, appointment := range appointments {
		rows = append(rows, []string{
			appointment.ID,
			fmt.Sprintf("%s (%s)", appointment.PatientName, appointment.PatientID),
			appointment.Date,
			appointment.Time,
			appointment.Reason,
			appointment.Status,
		})
	}

	return renderRows(doc, AppointmentsBodyID, rows, "No appointments yet.")
}

// RenderBills replaces the billing table body.
func RenderBills(doc *Document, bills []dto.BillResponse) error {
	rows := make([][]string, 0, len(bills))
	for _, bill := range bills {
		rows = append(rows, []string{
			bill.ID,
			fmt.Sprintf("%s (%s)", bill.PatientName, bill.PatientID),
			bill.Description,
			bill.Amount,
			bill.Status,
			bill.CreatedAt,
		})
	}

	return renderRows(doc, BillingBodyID, rows, "No bills yet.")
}

// RenderOverview updates the four summary counters.
func RenderOverview(doc *Document, summary *dto.OverviewResponse) error {
	counters := map[string]int64{
		TotalPatientsID:     summary.Patients,
		TotalAppointmentsID: summary.Appointments,
		TotalBillsID:        summary.Bills,
		TotalUnpaidID:       summary.Unpaid,
	}

	for id, value := range counters {
		if err := doc.SetContent(id, strconv.FormatInt(value, 10)); err != nil {
			return err
		}
	}
	return nil
}
