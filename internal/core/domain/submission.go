package domain

import (
	"encoding/json"
	"time"
)

// SubmittedAtLayout is the UTC millisecond timestamp used both in submission
// ids and in the stored submittedAt field.
const SubmittedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// Submission is an immutable snapshot of a dispatch sheet.
type Submission struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	SubmittedAt time.Time `json:"submittedAt"`
	FormData    FormData  `json:"formData"`
}

// MarshalJSON writes submittedAt with SubmittedAtLayout so whole seconds keep
// their ".000" and the text matches the id prefix.
func (s Submission) MarshalJSON() ([]byte, error) {
	type plain Submission
	return json.Marshal(struct {
		plain
		SubmittedAt string `json:"submittedAt"`
	}{
		plain:       plain(s),
		SubmittedAt: s.SubmittedAt.UTC().Format(SubmittedAtLayout),
	})
}

// SubmissionID builds the id for a submission made by username at ts.
func SubmissionID(ts time.Time, username string) string {
	return ts.UTC().Format(SubmittedAtLayout) + "-" + username
}
