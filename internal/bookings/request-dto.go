package bookings

// SetDateRequest carries a calendar-day pick, formatted 2006-01-02.
type SetDateRequest struct {
	Date string `json:"date" binding:"required"`
}

// SetTimeRequest carries a clock pick, formatted 3:04 PM.
type SetTimeRequest struct {
	Time string `json:"time" binding:"required"`
}
