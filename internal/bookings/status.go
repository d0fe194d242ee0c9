package bookings

type Status string

// Records are created PENDING and never transition; a booking row is
// immutable once written.
const (
	StatusPending Status = "PENDING"
)

func (s Status) IsValid() bool {
	return s == StatusPending
}

func (s Status) String() string {
	return string(s)
}
