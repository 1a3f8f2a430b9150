package challenge

import "time"

// CanSubmit reports whether a new submission attempt is allowed, given the
// challenge's last attempt time and the configured cooldown. A challenge
// that has never been attempted can always be submitted.
func CanSubmit(lastAttempt *time.Time, cooldown time.Duration, now time.Time) bool {
	if lastAttempt == nil {
		return true
	}
	return now.After(lastAttempt.Add(cooldown))
}

// RemainingCooldown returns the whole minutes left until the next allowed
// attempt, rounded up. Zero when submission is already allowed.
//
// Recording an attempt is a separate, explicit mutation owned by the
// caller; these functions only answer questions about time.
func RemainingCooldown(lastAttempt *time.Time, cooldown time.Duration, now time.Time) int {
	if lastAttempt == nil {
		return 0
	}
	next := lastAttempt.Add(cooldown)
	if now.After(next) {
		return 0
	}
	rem := next.Sub(now)
	mins := int(rem / time.Minute)
	if rem%time.Minute != 0 {
		mins++
	}
	return mins
}
