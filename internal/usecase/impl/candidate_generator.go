package impl

import (
	"sort"
	"strings"

	"athan/internal/domain/entity"
	"athan/internal/schedule"
)

// SkippedField describes a stored prayer time that could not be normalized.
type SkippedField struct {
	Prayer entity.PrayerName
	Raw    string
	Err    error
}

// GenerateCandidates returns the reminders that fire at current on today.
//
// It is a pure function of its inputs: the result is sorted by idempotency key
// and holds at most one candidate per key. Prayer times that are absent are
// ignored; malformed ones are returned as skipped fields so the caller can log them.
func GenerateCandidates(
	times *entity.DailyPrayerTimes,
	subscriptions []*entity.PushSubscription,
	today schedule.CivilDate,
	current schedule.MinuteOfDay,
) ([]entity.ReminderCandidate, []SkippedField) {
	prayerMinutes, skipped := normalizePrayerTimes(times)
	if len(prayerMinutes) == 0 {
		return nil, skipped
	}

	seen := make(map[string]struct{})
	candidates := make([]entity.ReminderCandidate, 0)

	for _, sub := range subscriptions {
		if sub == nil || !sub.Enabled || sub.Token == "" {
			continue
		}

		reminderType, ok := schedule.ParseReminderType(sub.ReminderType)
		if !ok {
			continue
		}

		for _, prayer := range entity.Prayers() {
			prayerMinute, ok := prayerMinutes[prayer]
			if !ok {
				continue
			}

			fireMinute, _ := schedule.FireMinute(prayerMinute, reminderType)
			if fireMinute != current {
				continue
			}

			// Keyed by the prayer's date even when the offset wraps past midnight.
			key := entity.NewIdempotencyKey(today, sub.ID, prayer, reminderType)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			candidates = append(candidates, entity.ReminderCandidate{
				Key:            key,
				SubscriptionID: sub.ID,
				Token:          sub.Token,
				Prayer:         prayer,
				ReminderType:   reminderType,
				Date:           today,
				PrayerMinute:   prayerMinute,
				FireMinute:     fireMinute,
			})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Key < candidates[j].Key
	})

	return candidates, skipped
}

func normalizePrayerTimes(times *entity.DailyPrayerTimes) (map[entity.PrayerName]schedule.MinuteOfDay, []SkippedField) {
	if times == nil {
		return nil, nil
	}

	minutes := make(map[entity.PrayerName]schedule.MinuteOfDay, len(entity.Prayers()))
	var skipped []SkippedField

	for _, prayer := range entity.Prayers() {
		raw := times.TimeOf(prayer)
		if raw == nil || strings.TrimSpace(*raw) == "" {
			continue
		}

		minute, err := schedule.Normalize(*raw)
		if err != nil {
			skipped = append(skipped, SkippedField{Prayer: prayer, Raw: *raw, Err: err})

			continue
		}

		minutes[prayer] = minute
	}

	return minutes, skipped
}
