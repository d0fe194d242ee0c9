package identity

// Session is the snapshot of one authenticated identity. The booking core
// only ever needs the opaque user id and the email that goes onto records.
type Session struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}
