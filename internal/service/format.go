package service

import "time"

// timeNow is stubbed in tests.
var timeNow = time.Now

// formatMessageTime renders a message timestamp for display: always HH:MM.
func formatMessageTime(t time.Time) string {
	return t.Format("15:04")
}

// formatActivityTime renders a conversation's last-activity timestamp for
// display: HH:MM for today, "Yesterday" for the previous day, DD/MM/YYYY
// otherwise.
func formatActivityTime(t time.Time) string {
	now := timeNow()
	t = t.In(now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())

	switch {
	case day.Equal(today):
		return t.Format("15:04")
	case day.Equal(today.AddDate(0, 0, -1)):
		return "Yesterday"
	default:
		return t.Format("02/01/2006")
	}
}
