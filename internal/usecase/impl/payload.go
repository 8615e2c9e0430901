package impl

import (
	"fmt"

	"athan/internal/domain/entity"
	"athan/internal/domain/service"
	"athan/internal/schedule"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// reminderTitle renders the notification title for a prayer and reminder type.
func reminderTitle(prayer entity.PrayerName, reminderType schedule.ReminderType) string {
	name := titleCaser.String(string(prayer))

	switch reminderType {
	case schedule.TenMinutesBefore:
		return fmt.Sprintf("%s in 10 minutes", name)
	case schedule.FiveMinutesBefore:
		return fmt.Sprintf("%s in 5 minutes", name)
	case schedule.AtAdhan:
		return fmt.Sprintf("%s Adhan time", name)
	case schedule.AtIqamah:
		return fmt.Sprintf("%s Iqamah reminder", name)
	default:
		return fmt.Sprintf("%s reminder", name)
	}
}

// buildPushMessage creates the notification for one candidate.
func buildPushMessage(c entity.ReminderCandidate, body string) *service.PushMessage {
	return &service.PushMessage{
		Token: c.Token,
		Title: reminderTitle(c.Prayer, c.ReminderType),
		Body:  body,
		Data: map[string]string{
			"prayer":        string(c.Prayer),
			"reminder_type": string(c.ReminderType),
			"date":          c.Date.String(),
			"prayer_time":   c.PrayerMinute.String(),
			"dedupe_key":    c.Key,
		},
	}
}
