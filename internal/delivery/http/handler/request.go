package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// decodePayload reads the body as a flat JSON object. A missing or
// malformed body yields an empty payload rather than an error, so absent
// fields surface as the ordinary validation messages.
func decodePayload(r *http.Request) map[string]interface{} {
	payload := map[string]interface{}{}
	if r.Body == nil {
		return payload
	}

	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	_ = decoder.Decode(&payload)

	return payload
}

// fieldString reads one payload field as text. Numbers keep their literal
// form ("17.5" stays "17.5"), so numeric fields fail the same parse checks
// whether they arrive quoted or bare.
func fieldString(payload map[string]interface{}, key string) string {
	value, ok := payload[key]
	if !ok || value == nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
