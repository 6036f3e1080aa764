package dashboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospitaldesk/internal/delivery/dto"
)

func TestRenderPatientsEmpty(t *testing.T) {
	doc := NewPageDocument(PagePatients)

	require.NoError(t, RenderPatients(doc, nil))

	content, ok := doc.Content(PatientsBodyID)
	require.True(t, ok)
	assert.Equal(t, `<tr><td colspan="6" class="empty">No patients yet.</td></tr>`, content)
}

func TestRenderPatientsRowsInOrder(t *testing.T) {
	doc := NewPageDocument(PagePatients)

	patients := []dto.PatientResponse{
		{ID: "P-11111111", Name: "Alice Tan", Age: 34, Gender: "female", Contact: "555-0101", CreatedAt: "2026-08-25T09:15:00"},
		{ID: "P-22222222", Name: "Bob Lim", Age: 58, Gender: "male", Contact: "555-0102", CreatedAt: "2026-08-25T09:20:00"},
	}
	require.NoError(t, RenderPatients(doc, patients))

	content, _ := doc.Content(PatientsBodyID)
	assert.Equal(t, 2, strings.Count(content, "<tr>"))
	assert.NotContains(t, content, "No patients yet.")

	for _, field := range []string{"P-11111111", "Alice Tan", "34", "female", "555-0101", "2026-08-25T09:15:00"} {
		assert.Contains(t, content, "<td>"+field+"</td>")
	}
	assert.Less(t, strings.Index(content, "Alice Tan"), strings.Index(content, "Bob Lim"))
}

func TestRenderPatientsEscapesFieldValues(t *testing.T) {
	doc := NewPageDocument(PagePatients)

	patients := []dto.PatientResponse{
		{ID: "P-11111111", Name: `<script>alert("x")</script>`, Age: 20},
	}
	require.NoError(t, RenderPatients(doc, patients))

	content, _ := doc.Content(PatientsBodyID)
	assert.NotContains(t, content, "<script>")
	assert.Contains(t, content, "&lt;script&gt;")
}

func TestRenderAppointments(t *testing.T) {
	doc := NewPageDocument(PageAppointments)

	require.NoError(t, RenderAppointments(doc, nil))
	content, _ := doc.Content(AppointmentsBodyID)
	assert.Equal(t, `<tr><td colspan="6" class="empty">No appointments yet.</td></tr>`, content)

	appointments := []dto.AppointmentResponse{
		{ID: "A-11111111", PatientID: "P-11111111", PatientName: "Alice Tan", Date: "2026-09-01", Time: "09:00", Reason: "general", Status: "scheduled"},
	}
	require.NoError(t, RenderAppointments(doc, appointments))

	content, _ = doc.Content(AppointmentsBodyID)
	assert.Equal(t, 1, strings.Count(content, "<tr>"))
	assert.Contains(t, content, "<td>Alice Tan (P-11111111)</td>")
	assert.Contains(t, content, "<td>09:00</td>")
}

func TestRenderBills(t *testing.T) {
	doc := NewPageDocument(PageBilling)

	require.NoError(t, RenderBills(doc, nil))
	content, _ := doc.Content(BillingBodyID)
	assert.Equal(t, `<tr><td colspan="6" class="empty">No bills yet.</td></tr>`, content)

	bills := []dto.BillResponse{
		{ID: "B-11111111", PatientID: "P-11111111", PatientName: "Alice Tan", Description: "services", Amount: "125.50", Status: "unpaid", CreatedAt: "2026-08-25T10:00:00"},
	}
	require.NoError(t, RenderBills(doc, bills))

	content, _ = doc.Content(BillingBodyID)
	assert.Contains(t, content, "<td>125.50</td>")
	assert.Contains(t, content, "<td>unpaid</td>")
}

func TestRenderOverview(t *testing.T) {
	doc := NewPageDocument(PageIndex)

	summary := &dto.OverviewResponse{Patients: 12, Appointments: 7, Bills: 5, Unpaid: 3}
	require.NoError(t, RenderOverview(doc, summary))

	expected := map[string]string{
		TotalPatientsID:     "12",
		TotalAppointmentsID: "7",
		TotalBillsID:        "5",
		TotalUnpaidID:       "3",
	}
	for id, want := range expected {
		content, ok := doc.Content(id)
		require.True(t, ok, id)
		assert.Equal(t, want, content, id)
	}
}

func TestRenderMissingTargetFails(t *testing.T) {
	doc := NewPageDocument(PageIndex)

	err := RenderPatients(doc, nil)
	assert.ErrorIs(t, err, ErrElementNotFound)
}
