package client

type Severity string

const (
	SeverityInfo        Severity = "info"
	SeverityError       Severity = "error"
	SeverityDestructive Severity = "destructive"
)

// Notification mirrors a user-visible toast. The store emits one after
// every mutation attempt, success or failure.
type Notification struct {
	Title       string
	Description string
	Severity    Severity
}

type Notifier interface {
	Notify(n Notification)
}

type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }
