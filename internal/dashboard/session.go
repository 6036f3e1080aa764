package dashboard

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"hospitaldesk/pkg/validator"
)

// Poll cadence per page kind. The overview counters move faster than the
// record tables, so the index page refreshes more often.
const (
	overviewInterval = 5 * time.Second
	recordInterval   = 7 * time.Second
)

// Session drives one page document: an initial refresh, then a repeating
// timer re-running the page's refresh routine until Stop is called. Record
// pages additionally get their create form wired with the refresh routine
// as the post-success callback.
type Session struct {
	page      string
	doc       *Document
	notifier  *Notifier
	refresher *Refresher
	form      *BoundForm
	log       *logrus.Logger

	interval time.Duration
	refresh  func(ctx context.Context)

	ctx      context.Context
	cancel   context.CancelFunc
	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// NewSession wires the session matching page. Pages outside the four known
// identities come back inert: no refresh routine, no form, Start does
// nothing.
func NewSession(page string, client *Client, log *logrus.Logger) *Session {
	doc := NewPageDocument(page)
	notifier := NewNotifier(doc, log)
	refresher := NewRefresher(client, doc, notifier, validator.NewValidator(), log)

	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		page:      page,
		doc:       doc,
		notifier:  notifier,
		refresher: refresher,
		log:       log,
		ctx:       ctx,
		cancel:    cancel,
		stopChan:  make(chan struct{}),
	}

	switch page {
	case PageIndex:
		s.interval = overviewInterval
		s.refresh = refresher.RefreshOverview
	case PagePatients:
		s.interval = recordInterval
		s.refresh = refresher.RefreshPatients
		s.form = WireForm(doc, PatientFormID, patientsEndpoint, client, notifier, log,
			func(ctx context.Context, _ json.RawMessage) {
				refresher.RefreshPatients(ctx)
			})
	case PageAppointments:
		s.interval = recordInterval
		s.refresh = refresher.RefreshAppointments
		s.form = WireForm(doc, AppointmentFormID, appointmentsEndpoint, client, notifier, log,
			func(ctx context.Context, _ json.RawMessage) {
				refresher.RefreshAppointments(ctx)
			})
	case PageBilling:
		s.interval = recordInterval
		s.refresh = refresher.RefreshBills
		s.form = WireForm(doc, BillFormID, billsEndpoint, client, notifier, log,
			func(ctx context.Context, _ json.RawMessage) {
				refresher.RefreshBills(ctx)
			})
	default:
		log.Warnf("Unknown page %q, session left inert", page)
	}

	return s
}

func (s *Session) Page() string {
	return s.page
}

func (s *Session) Document() *Document {
	return s.doc
}

// Form returns the bound create form, nil on the index page and on inert
// sessions.
func (s *Session) Form() *BoundForm {
	return s.form
}

// Start launches the poll loop. Inert sessions stay idle.
func (s *Session) Start() {
	if s.refresh == nil {
		return
	}

	s.wg.Add(1)
	go s.pollLoop()
}

func (s *Session) pollLoop() {
	defer s.wg.Done()

	s.refresh(s.ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.refresh(s.ctx)
		}
	}
}

// Stop cancels in-flight requests and waits for the poll loop to exit.
// Safe to call multiple times.
func (s *Session) Stop() {
	if s.stopped.CompareAndSwap(false, true) {
		s.cancel()
		close(s.stopChan)
		s.wg.Wait()
		s.log.Infof("Dashboard session for %s page stopped", s.page)
	}
}
