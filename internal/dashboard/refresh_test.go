package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospitaldesk/pkg/validator"
)

func newTestRefresher(serverURL, page string) (*Refresher, *Document) {
	doc := NewPageDocument(page)
	notifier := NewNotifier(doc, testLogger())
	client := NewClient(serverURL, testLogger())
	refresher := NewRefresher(client, doc, notifier, validator.NewValidator(), testLogger())
	return refresher, doc
}

func TestRefreshPatientsRendersFetchedRows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/patients", r.URL.Path)
		w.Write([]byte(`[{"id":"P-11111111","name":"Alice Tan","age":34,"gender":"female"}]`))
	}))
	defer server.Close()

	refresher, doc := newTestRefresher(server.URL, PagePatients)
	refresher.RefreshPatients(context.Background())

	content, _ := doc.Content(PatientsBodyID)
	assert.Contains(t, content, "Alice Tan")
	assert.Equal(t, 0, noticeCount(doc))
}

func TestRefreshFailureKeepsStaleContent(t *testing.T) {
	var failing atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[{"id":"P-11111111","name":"Alice Tan","age":34}]`))
	}))
	defer server.Close()

	refresher, doc := newTestRefresher(server.URL, PagePatients)

	refresher.RefreshPatients(context.Background())
	before, _ := doc.Content(PatientsBodyID)
	require.Contains(t, before, "Alice Tan")

	failing.Store(true)
	refresher.RefreshPatients(context.Background())

	after, _ := doc.Content(PatientsBodyID)
	assert.Equal(t, before, after)
	assert.Equal(t, 1, noticeCount(doc))

	content, _ := doc.Content(MessagesHostID)
	assert.Contains(t, content, "Could not refresh patients.")
}

// A record that fails validation rejects the whole response, as if the
// request itself had failed.
func TestRefreshRejectsMalformedRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name":"missing the id"}]`))
	}))
	defer server.Close()

	refresher, doc := newTestRefresher(server.URL, PagePatients)
	refresher.RefreshPatients(context.Background())

	content, _ := doc.Content(PatientsBodyID)
	assert.Equal(t, "", content)
	assert.Equal(t, 1, noticeCount(doc))
}

func TestRefreshAppointmentsAndBills(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/appointments":
			w.Write([]byte(`[{"id":"A-11111111","patient_id":"P-11111111","patient_name":"Alice Tan","date":"2026-09-01","time":"09:00","reason":"general","status":"scheduled"}]`))
		case "/api/bills":
			w.Write([]byte(`[{"id":"B-11111111","patient_id":"P-11111111","patient_name":"Alice Tan","description":"services","amount":"125.50","status":"unpaid"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	refresher, doc := newTestRefresher(server.URL, PageAppointments)
	refresher.RefreshAppointments(context.Background())
	content, _ := doc.Content(AppointmentsBodyID)
	assert.Contains(t, content, "<td>09:00</td>")

	refresher, doc = newTestRefresher(server.URL, PageBilling)
	refresher.RefreshBills(context.Background())
	content, _ = doc.Content(BillingBodyID)
	assert.Contains(t, content, "<td>125.50</td>")
}

func TestRefreshOverviewUpdatesTotals(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/overview", r.URL.Path)
		w.Write([]byte(`{"patients":12,"appointments":7,"bills":5,"unpaid":3}`))
	}))
	defer server.Close()

	refresher, doc := newTestRefresher(server.URL, PageIndex)
	refresher.RefreshOverview(context.Background())

	content, _ := doc.Content(TotalPatientsID)
	assert.Equal(t, "12", content)
	content, _ = doc.Content(TotalUnpaidID)
	assert.Equal(t, "3", content)
}

func TestResponseGateDiscardsStaleTickets(t *testing.T) {
	var gate responseGate

	first := gate.begin()
	second := gate.begin()
	require.Less(t, first, second)

	var applied []uint64
	assert.True(t, gate.commit(second, func() { applied = append(applied, second) }))

	// The older response arrives late and must not overwrite.
	assert.False(t, gate.commit(first, func() { applied = append(applied, first) }))
	assert.Equal(t, []uint64{second}, applied)

	// Newer tickets still pass.
	third := gate.begin()
	assert.True(t, gate.commit(third, func() { applied = append(applied, third) }))
	assert.Equal(t, []uint64{second, third}, applied)
}
