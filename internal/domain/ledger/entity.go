package ledger

// NoCheckout is stored in ClockOut when the closure sweep force-closes a
// session that never clocked out. It is a literal marker, not a time.
const NoCheckout = "NO_CHECKOUT"

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04:05"
)

// Record is one row of the attendance ledger: a single open-or-closed
// session for one employee on one calendar day.
type Record struct {
	EmployeeID  string
	Date        string // DateLayout
	ClockIn     string // ClockLayout
	ClockOut    string // empty = session still open, ClockLayout or NoCheckout otherwise
	WorkedHours string // elapsed text, empty when unknown
}

// Open reports whether the session has not been closed yet.
func (r Record) Open() bool {
	return r.ClockOut == ""
}

// EventKind tells the caller which side of the toggle was taken.
type EventKind string

const (
	EventEntrance EventKind = "entrance"
	EventExit     EventKind = "exit"
)
