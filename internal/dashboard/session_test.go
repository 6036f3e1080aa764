package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionPollsUntilStopped(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/patients", r.URL.Path)
		hits.Add(1)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	session := NewSession(PagePatients, NewClient(server.URL, testLogger()), testLogger())
	session.interval = 25 * time.Millisecond
	session.Start()

	assert.Eventually(t, func() bool {
		return hits.Load() >= 3
	}, 2*time.Second, 10*time.Millisecond)

	// Empty collection still renders the placeholder row.
	content, _ := session.Document().Content(PatientsBodyID)
	assert.Contains(t, content, "No patients yet.")

	session.Stop()
	seen := hits.Load()

	time.Sleep(4 * session.interval)
	assert.Equal(t, seen, hits.Load(), "no polls after Stop")
}

func TestSessionFormSubmitTriggersRefresh(t *testing.T) {
	var gets atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":"P-11111111","name":"Alice Tan","age":34}`))
		default:
			gets.Add(1)
			w.Write([]byte(`[{"id":"P-11111111","name":"Alice Tan","age":34}]`))
		}
	}))
	defer server.Close()

	// The session is deliberately not started: submitting the wired form
	// alone must refresh the table through the success callback.
	session := NewSession(PagePatients, NewClient(server.URL, testLogger()), testLogger())
	require.NotNil(t, session.Form())

	session.Form().Form().Set("name", "Alice Tan")
	session.Form().Form().Set("age", "34")
	require.NoError(t, session.Form().Submit(context.Background()))

	assert.Equal(t, int64(1), gets.Load())

	content, _ := session.Document().Content(PatientsBodyID)
	assert.Contains(t, content, "Alice Tan")

	session.Stop()
}

func TestSessionIndexRendersTotals(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/overview", r.URL.Path)
		w.Write([]byte(`{"patients":12,"appointments":7,"bills":5,"unpaid":3}`))
	}))
	defer server.Close()

	session := NewSession(PageIndex, NewClient(server.URL, testLogger()), testLogger())
	session.interval = 20 * time.Millisecond
	session.Start()
	defer session.Stop()

	assert.Eventually(t, func() bool {
		content, _ := session.Document().Content(TotalPatientsID)
		return content == "12"
	}, 2*time.Second, 10*time.Millisecond)

	assert.Nil(t, session.Form(), "overview page has no form")
}

func TestSessionUnknownPageIsInert(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer server.Close()

	session := NewSession("reports", NewClient(server.URL, testLogger()), testLogger())
	session.Start()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int64(0), hits.Load())
	assert.Nil(t, session.Form())

	session.Stop()
}

func TestSessionStopIsIdempotent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	session := NewSession(PagePatients, NewClient(server.URL, testLogger()), testLogger())
	session.interval = 25 * time.Millisecond
	session.Start()

	session.Stop()
	session.Stop()
}
