// Package dashboard keeps a headless model of the admin pages current by
// polling the desk API. A session owns one page document, re-rendering its
// tables and totals on every refresh and surfacing failures as notices, the
// same contract the server-rendered pages follow.
package dashboard

import (
	"errors"
	"fmt"
	"sync"
)

// Page identifiers as carried in the body's data-page attribute.
const (
	PageIndex        = "index"
	PagePatients     = "patients"
	PageAppointments = "appointments"
	PageBilling      = "billing"
)

// Element identifiers shared with the server-rendered markup.
const (
	MessagesHostID      = "js-messages"
	PatientsBodyID      = "patients-body"
	AppointmentsBodyID  = "appointments-body"
	BillingBodyID       = "billing-body"
	TotalPatientsID     = "total-patients"
	TotalAppointmentsID = "total-appointments"
	TotalBillsID        = "total-bills"
	TotalUnpaidID       = "total-unpaid"
	PatientFormID       = "patient-form"
	AppointmentFormID   = "appointment-form"
	BillFormID          = "bill-form"
)

var ErrElementNotFound = errors.New("element not found")

// Document is a minimal element registry standing in for a rendered page.
// Only registered elements can be written to; writes to anything else report
// ErrElementNotFound so callers decide whether that is fatal.
type Document struct {
	mu       sync.RWMutex
	page     string
	elements map[string]string
	forms    map[string]*Form
}

func NewDocument(page string) *Document {
	return &Document{
		page:     page,
		elements: make(map[string]string),
		forms:    make(map[string]*Form),
	}
}

// NewPageDocument builds a document pre-registered with the elements and
// form the given page renders. Unknown pages get an empty document.
func NewPageDocument(page string) *Document {
	doc := NewDocument(page)

	switch page {
	case PageIndex:
		doc.AddElement(MessagesHostID)
		doc.AddElement(TotalPatientsID)
		doc.AddElement(TotalAppointmentsID)
		doc.AddElement(TotalBillsID)
		doc.AddElement(TotalUnpaidID)
	case PagePatients:
		doc.AddElement(MessagesHostID)
		doc.AddElement(PatientsBodyID)
		doc.AddForm(NewForm(PatientFormID, "name", "age", "gender", "contact"))
	case PageAppointments:
		doc.AddElement(MessagesHostID)
		doc.AddElement(AppointmentsBodyID)
		doc.AddForm(NewForm(AppointmentFormID, "patient_id", "preferred_date", "reason"))
	case PageBilling:
		doc.AddElement(MessagesHostID)
		doc.AddElement(BillingBodyID)
		doc.AddForm(NewForm(BillFormID, "patient_id", "description", "amount"))
	}

	return doc
}

func (d *Document) Page() string {
	return d.page
}

func (d *Document) AddElement(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.elements[id]; !ok {
		d.elements[id] = ""
	}
}

func (d *Document) HasElement(id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.elements[id]
	return ok
}

func (d *Document) SetContent(id, content string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.elements[id]; !ok {
		return fmt.Errorf("%w: %s", ErrElementNotFound, id)
	}
	d.elements[id] = content
	return nil
}

func (d *Document) Content(id string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	content, ok := d.elements[id]
	return content, ok
}

func (d *Document) AddForm(form *Form) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.forms[form.ID()] = form
}

// Form returns the registered form with the given id, or nil.
func (d *Document) Form(id string) *Form {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.forms[id]
}

// Form holds the current input values of one page form.
type Form struct {
	mu     sync.Mutex
	id     string
	fields []string
	values map[string]string
}

func NewForm(id string, fields ...string) *Form {
	values := make(map[string]string, len(fields))
	for _, field := range fields {
		values[field] = ""
	}
	return &Form{
		id:     id,
		fields: append([]string(nil), fields...),
		values: values,
	}
}

func (f *Form) ID() string {
	return f.id
}

// Set records a field value. Unknown fields are dropped, matching how a
// browser ignores inputs that are not part of the form.
func (f *Form) Set(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.values[field]; ok {
		f.values[field] = value
	}
}

func (f *Form) Get(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[field]
}

// Values snapshots every declared field, including the empty ones, in the
// shape the create endpoints expect.
func (f *Form) Values() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	values := make(map[string]string, len(f.fields))
	for _, field := range f.fields {
		values[field] = f.values[field]
	}
	return values
}

// Reset clears every field back to the empty string.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for field := range f.values {
		f.values[field] = ""
	}
}
