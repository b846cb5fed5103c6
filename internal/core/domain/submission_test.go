package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestSubmission_MarshalKeepsMilliseconds(t *testing.T) {
	at := time.Date(2026, 3, 4, 7, 0, 0, 0, time.FixedZone("MST", -7*3600))
	sub := Submission{
		ID:          SubmissionID(at, "Admin"),
		Username:    "Admin",
		SubmittedAt: at,
	}

	raw, err := json.Marshal(sub)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal map: %v", err)
	}
	if got := fields["submittedAt"]; got != "2026-03-04T14:00:00.000Z" {
		t.Fatalf("submittedAt = %v", got)
	}
	if !strings.HasPrefix(sub.ID, fields["submittedAt"].(string)+"-") {
		t.Fatalf("id %q does not start with submittedAt", sub.ID)
	}
	if strings.Count(string(raw), "submittedAt") != 1 {
		t.Fatalf("submittedAt encoded twice: %s", raw)
	}

	var decoded Submission
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.SubmittedAt.Equal(at) || decoded.ID != sub.ID || decoded.Username != "Admin" {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
}
