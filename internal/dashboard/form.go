package dashboard

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"
)

// BoundForm ties one document form to its create endpoint. Submit posts the
// current field values; success clears the form and triggers the caller's
// refresh callback, failure keeps the values in place for correction.
type BoundForm struct {
	form      *Form
	client    *Client
	notifier  *Notifier
	endpoint  string
	onSuccess func(ctx context.Context, created json.RawMessage)
	log       *logrus.Logger
}

// WireForm binds the form with the given id to endpoint. A document without
// that form yields nil and nothing else happens, the same way a missing
// element leaves the page inert.
func WireForm(
	doc *Document,
	formID, endpoint string,
	client *Client,
	notifier *Notifier,
	log *logrus.Logger,
	onSuccess func(ctx context.Context, created json.RawMessage),
) *BoundForm {
	form := doc.Form(formID)
	if form == nil {
		log.Warnf("No %s form on the %s page, skipping form wiring", formID, doc.Page())
		return nil
	}

	return &BoundForm{
		form:      form,
		client:    client,
		notifier:  notifier,
		endpoint:  endpoint,
		onSuccess: onSuccess,
		log:       log,
	}
}

func (b *BoundForm) Form() *Form {
	return b.form
}

// Submit posts the current field values. Failures keep the field values so
// the operator can correct them; the server's message is shown as an error
// notice. Success resets the form before invoking the refresh callback.
func (b *BoundForm) Submit(ctx context.Context) error {
	values := b.form.Values()

	var created json.RawMessage
	if err := b.client.PostJSON(ctx, b.endpoint, values, &created); err != nil {
		b.notifier.Show(err.Error(), NoticeError)
		return err
	}

	b.form.Reset()
	b.notifier.Show("Record saved.", NoticeSuccess)

	if b.onSuccess != nil {
		b.onSuccess(ctx, created)
	}
	return nil
}
