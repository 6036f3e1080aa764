package dashboard

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Notice kinds, mapped onto the notice CSS classes.
const (
	NoticeSuccess = "success"
	NoticeError   = "error"
)

const defaultNoticeTTL = 4 * time.Second

// Notifier renders transient status notices into the js-messages host.
// Each notice disappears on its own after the configured TTL. On documents
// without a messages host, Show is a silent no-op.
type Notifier struct {
	doc *Document
	log *logrus.Logger
	ttl time.Duration

	mu      sync.Mutex
	nextID  uint64
	notices []notice
}

type notice struct {
	id   uint64
	kind string
	text string
}

func NewNotifier(doc *Document, log *logrus.Logger) *Notifier {
	return &Notifier{
		doc: doc,
		log: log,
		ttl: defaultNoticeTTL,
	}
}

func (n *Notifier) Show(text, kind string) {
	if !n.doc.HasElement(MessagesHostID) {
		return
	}

	n.mu.Lock()
	n.nextID++
	id := n.nextID
	n.notices = append(n.notices, notice{id: id, kind: kind, text: text})
	n.renderLocked()
	n.mu.Unlock()

	time.AfterFunc(n.ttl, func() {
		n.dismiss(id)
	})
}

func (n *Notifier) dismiss(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, item := range n.notices {
		if item.id == id {
			n.notices = append(n.notices[:i], n.notices[i+1:]...)
			break
		}
	}
	n.renderLocked()
}

func (n *Notifier) renderLocked() {
	var b strings.Builder
	for _, item := range n.notices {
		fmt.Fprintf(&b, `<div class="notice %s">%s</div>`,
			template.HTMLEscapeString(item.kind), template.HTMLEscapeString(item.text))
	}

	if err := n.doc.SetContent(MessagesHostID, b.String()); err != nil {
		n.log.Warnf("Failed to render notices: %+v", err)
	}
}
