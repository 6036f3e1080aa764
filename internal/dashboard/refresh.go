package dashboard

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"hospitaldesk/internal/delivery/dto"
	"hospitaldesk/pkg/validator"
)

// Endpoints polled by the refresh routines.
const (
	overviewEndpoint     = "/api/overview"
	patientsEndpoint     = "/api/patients"
	appointmentsEndpoint = "/api/appointments"
	billsEndpoint        = "/api/bills"
)

// responseGate hands out monotonically increasing tickets and only lets the
// newest outstanding response apply. A slow response arriving after a newer
// one has committed is discarded instead of overwriting fresher content.
type responseGate struct {
	next atomic.Uint64

	mu      sync.Mutex
	applied uint64
}

func (g *responseGate) begin() uint64 {
	return g.next.Add(1)
}

// commit runs apply if ticket is newer than everything applied so far and
// reports whether it did. apply runs under the gate lock so renders land in
// ticket order.
func (g *responseGate) commit(ticket uint64, apply func()) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if ticket <= g.applied {
		return false
	}
	g.applied = ticket
	apply()
	return true
}

// Refresher fetches collections and the overview summary, validates what
// came back and hands it to the matching renderer. Failures surface as one
// error notice per attempt while the previously rendered content stays put.
type Refresher struct {
	client   *Client
	doc      *Document
	notifier *Notifier
	validate *validator.CustomValidator
	log      *logrus.Logger

	patientsGate     responseGate
	appointmentsGate responseGate
	billsGate        responseGate
	overviewGate     responseGate
}

func NewRefresher(client *Client, doc *Document, notifier *Notifier, validate *validator.CustomValidator, log *logrus.Logger) *Refresher {
	return &Refresher{
		client:   client,
		doc:      doc,
		notifier: notifier,
		validate: validate,
		log:      log,
	}
}

func (r *Refresher) RefreshPatients(ctx context.Context) {
	ticket := r.patientsGate.begin()

	var patients []dto.PatientResponse
	if err := r.client.GetJSON(ctx, patientsEndpoint, &patients); err != nil {
		r.notifier.Show("Could not refresh patients.", NoticeError)
		return
	}

	for i := range patients {
		if err := r.validate.Validate(&patients[i]); err != nil {
			r.log.Warnf("Discarded patients refresh, record %d invalid: %+v", i, err)
			r.notifier.Show("Could not refresh patients.", NoticeError)
			return
		}
	}

	var renderErr error
	if !r.patientsGate.commit(ticket, func() {
		renderErr = RenderPatients(r.doc, patients)
	}) {
		r.log.Debugf("Discarded stale patients refresh")
		return
	}
	if renderErr != nil {
		r.log.Warnf("Failed to render patients: %+v", renderErr)
	}
}

func (r *Refresher) RefreshAppointments(ctx context.Context) {
	ticket := r.appointmentsGate.begin()

	var appointments []dto.AppointmentResponse
	if err := r.client.GetJSON(ctx, appointmentsEndpoint, &appointments); err != nil {
		r.notifier.Show("Could not refresh appointments.", NoticeError)
		return
	}

	for i := range appointments {
		if err := r.validate.Validate(&appointments[i]); err != nil {
			r.log.Warnf("Discarded appointments refresh, record %d invalid: %+v", i, err)
			r.notifier.Show("Could not refresh appointments.", NoticeError)
			return
		}
	}

	var renderErr error
	if !r.appointmentsGate.commit(ticket, func() {
		renderErr = RenderAppointments(r.doc, appointments)
	}) {
		r.log.Debugf("Discarded stale appointments refresh")
		return
	}
	if renderErr != nil {
		r.log.Warnf("Failed to render appointments: %+v", renderErr)
	}
}

func (r *Refresher) RefreshBills(ctx context.Context) {
	ticket := r.billsGate.begin()

	var bills []dto.BillResponse
	if err := r.client.GetJSON(ctx, billsEndpoint, &bills); err != nil {
		r.notifier.Show("Could not refresh bills.", NoticeError)
		return
	}

	for i := range bills {
		if err := r.validate.Validate(&bills[i]); err != nil {
			r.log.Warnf("Discarded bills refresh, record %d invalid: %+v", i, err)
			r.notifier.Show("Could not refresh bills.", NoticeError)
			return
		}
	}

	var renderErr error
	if !r.billsGate.commit(ticket, func() {
		renderErr = RenderBills(r.doc, bills)
	}) {
		r.log.Debugf("Discarded stale bills refresh")
		return
	}
	if renderErr != nil {
		r.log.Warnf("Failed to render bills: %+v", renderErr)
	}
}

func (r *Refresher) RefreshOverview(ctx context.Context) {
	ticket := r.overviewGate.begin()

	var summary dto.OverviewResponse
	if err := r.client.GetJSON(ctx, overviewEndpoint, &summary); err != nil {
		r.notifier.Show("Could not refresh overview.", NoticeError)
		return
	}

	if err := r.validate.Validate(&summary); err != nil {
		r.log.Warnf("Discarded overview refresh with invalid summary: %+v", err)
		r.notifier.Show("Could not refresh overview.", NoticeError)
		return
	}

	var renderErr error
	if !r.overviewGate.commit(ticket, func() {
		renderErr = RenderOverview(r.doc, &summary)
	}) {
		r.log.Debugf("Discarded stale overview refresh")
		return
	}
	if renderErr != nil {
		r.log.Warnf("Failed to render overview: %+v", renderErr)
	}
}
