package challenge

import (
	"testing"
	"time"
)

func TestCanSubmit_NoPriorAttempt(t *testing.T) {
	now := time.Now()
	if !CanSubmit(nil, 5*time.Minute, now) {
		t.Fatal("expected submission allowed with no prior attempt")
	}
	if got := RemainingCooldown(nil, 5*time.Minute, now); got != 0 {
		t.Fatalf("remaining = %d, want 0", got)
	}
}

func TestCanSubmit_ImmediatelyAfterAttempt(t *testing.T) {
	now := time.Now()
	last := now
	if CanSubmit(&last, 5*time.Minute, now) {
		t.Fatal("expected submission blocked immediately after an attempt")
	}
	if got := RemainingCooldown(&last, 5*time.Minute, now); got != 5 {
		t.Fatalf("remaining = %d, want 5", got)
	}
}

func TestCanSubmit_AfterCooldownElapses(t *testing.T) {
	now := time.Now()
	last := now.Add(-5*time.Minute - time.Second)
	if !CanSubmit(&last, 5*time.Minute, now) {
		t.Fatal("expected submission allowed after cooldown")
	}
	if got := RemainingCooldown(&last, 5*time.Minute, now); got != 0 {
		t.Fatalf("remaining = %d, want 0", got)
	}
}

func TestRemainingCooldown_RoundsUp(t *testing.T) {
	now := time.Now()
	last := now.Add(-3*time.Minute - 30*time.Second) // 1m30s left
	if got := RemainingCooldown(&last, 5*time.Minute, now); got != 2 {
		t.Fatalf("remaining = %d, want 2 (rounded up)", got)
	}
}

func TestRemainingCooldown_MonotonicallyNonIncreasing(t *testing.T) {
	base := time.Now()
	last := base
	cooldown := 5 * time.Minute

	prev := RemainingCooldown(&last, cooldown, base)
	for step := 10 * time.Second; step <= cooldown+time.Minute; step += 10 * time.Second {
		got := RemainingCooldown(&last, cooldown, base.Add(step))
		if got > prev {
			t.Fatalf("remaining increased from %d to %d at +%s", prev, got, step)
		}
		prev = got
	}
	if prev != 0 {
		t.Fatalf("remaining = %d after cooldown fully elapsed, want 0", prev)
	}
}
