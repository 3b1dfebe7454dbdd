package entity

import "log/slog"

// Notification event names and templates consumed by the mailer.
const (
	EventSendEmail = "send_email"

	TeacherPasswordSubject  = "Teacher Password"
	TeacherPasswordTemplate = "teacher-password-template"

	StudentPasswordSubject  = "Student Password"
	StudentPasswordTemplate = "student-password-template"
)

// CredentialContext is the template context of a password notification.
type CredentialContext struct {
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

// CredentialEvent announces freshly issued credentials. It carries a plaintext
// password and must never be logged as a whole.
type CredentialEvent struct {
	Event    string            `json:"event"`
	To       string            `json:"to"`
	Subject  string            `json:"subject"`
	Template string            `json:"template"`
	Context  CredentialContext `json:"context"`
}

// LogValue hides the password when the event is passed to slog.
func (e CredentialEvent) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("event", e.Event),
		slog.String("to", e.To),
		slog.String("template", e.Template),
	)
}
