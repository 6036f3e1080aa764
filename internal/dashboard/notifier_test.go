package dashboard

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func noticeCount(doc *Document) int {
	content, _ := doc.Content(MessagesHostID)
	return strings.Count(content, `class="notice`)
}

func TestNotifierShowsAndExpires(t *testing.T) {
	doc := NewPageDocument(PagePatients)
	notifier := NewNotifier(doc, testLogger())
	notifier.ttl = 50 * time.Millisecond

	notifier.Show("Record saved.", NoticeSuccess)

	content, _ := doc.Content(MessagesHostID)
	assert.Contains(t, content, "Record saved.")
	assert.Contains(t, content, `class="notice success"`)

	assert.Eventually(t, func() bool {
		content, _ := doc.Content(MessagesHostID)
		return content == ""
	}, time.Second, 10*time.Millisecond)
}

func TestNotifierWithoutHostIsNoop(t *testing.T) {
	doc := NewDocument(PageIndex)
	require.False(t, doc.HasElement(MessagesHostID))

	notifier := NewNotifier(doc, testLogger())
	notifier.Show("lost", NoticeError)

	_, ok := doc.Content(MessagesHostID)
	assert.False(t, ok)
}

func TestNotifierDoesNotAccumulate(t *testing.T) {
	doc := NewPageDocument(PagePatients)
	notifier := NewNotifier(doc, testLogger())
	notifier.ttl = 20 * time.Millisecond

	for i := 0; i < 5; i++ {
		notifier.Show("Could not refresh patients.", NoticeError)
	}
	assert.Equal(t, 5, noticeCount(doc))

	assert.Eventually(t, func() bool {
		return noticeCount(doc) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestNotifierEscapesText(t *testing.T) {
	doc := NewPageDocument(PagePatients)
	notifier := NewNotifier(doc, testLogger())

	notifier.Show(`<img src=x onerror="pwn()">`, NoticeError)

	content, _ := doc.Content(MessagesHostID)
	assert.NotContains(t, content, "<img")
	assert.Contains(t, content, "&lt;img")
}
