package handler

import (
	"net/http"
	"net/url"
	"strings"
)

const flashCookieName = "hd_flash"

type flashMessage struct {
	Kind string
	Text string
}

// setFlash stores a one-shot status message shown on the next page render.
func setFlash(w http.ResponseWriter, kind, text string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(kind + "|" + text),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
	})
}

// popFlash reads and clears the pending flash message, if any.
func popFlash(w http.ResponseWriter, r *http.Request) *flashMessage {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:   flashCookieName,
		Path:   "/",
		MaxAge: -1,
	})

	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}

	kind, text, ok := strings.Cut(raw, "|")
	if !ok {
		return nil
	}

	return &flashMessage{Kind: kind, Text: text}
}
