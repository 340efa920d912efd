package contracts

import (
	"context"
	"time"
)

// ScheduleDiagnosticMessage is published for every faculty load whose schedule could not be placed.
type ScheduleDiagnosticMessage struct {
	MessageID    string    `json:"message_id"`
	RequestID    string    `json:"request_id,omitempty"`
	Source       string    `json:"source"`
	FacultyID    string    `json:"faculty_id,omitempty"`
	AcademicYear string    `json:"academic_year,omitempty"`
	Semester     string    `json:"semester,omitempty"`
	LoadID       string    `json:"load_id"`
	SubjectCode  string    `json:"subject_code"`
	Section      string    `json:"section"`
	Schedule     string    `json:"schedule"`
	Reason       string    `json:"reason"`
	Detail       string    `json:"detail"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type DiagnosticsPublisher interface {
	PublishScheduleDiagnostic(ctx context.Context, message *ScheduleDiagnosticMessage) error
}
