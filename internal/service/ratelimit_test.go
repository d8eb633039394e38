package service_test

import (
	"testing"
	"time"

	"github.com/msomdec/account-service/internal/service"
)

func frozenBucket(rate, capacity float64) (*service.TokenBucket, *time.Time) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return service.NewTokenBucketWithClock(rate, capacity, func() time.Time { return now }), &now
}

func TestTokenBucket_LoginBurstPerClientIP(t *testing.T) {
	// Matches the default login limit: a burst of 5, then one attempt per 5s.
	tb, _ := frozenBucket(0.2, 5)

	for attempt := 1; attempt <= 5; attempt++ {
		if !tb.Allow("203.0.113.7") {
			t.Fatalf("attempt %d within the burst was denied", attempt)
		}
	}
	if tb.Allow("203.0.113.7") {
		t.Fatal("attempt beyond the burst was allowed with the clock frozen")
	}
}

func TestTokenBucket_ClientIPsAreIndependent(t *testing.T) {
	tb, now := frozenBucket(0.2, 1)

	if !tb.Allow("198.51.100.1") {
		t.Fatal("first address: first attempt denied")
	}
	if tb.Allow("198.51.100.1") {
		t.Fatal("first address: second attempt allowed")
	}
	if !tb.Allow("2001:db8::1") {
		t.Fatal("second address was limited by the first address's bucket")
	}

	*now = now.Add(5 * time.Second)
	if !tb.Allow("198.51.100.1") {
		t.Fatal("first address should have one attempt back after 5s")
	}
	if tb.Allow("2001:db8::1") {
		t.Fatal("second address refilled past its capacity of 1")
	}
}

func TestTokenBucket_ZeroRateNeverRefills(t *testing.T) {
	tb, now := frozenBucket(0, 2)

	tb.Allow("k")
	tb.Allow("k")
	*now = now.Add(24 * time.Hour)
	if tb.Allow("k") {
		t.Fatal("a zero-rate bucket must not refill")
	}
}

func TestTokenBucket_RefillsOverTime(t *testing.T) {
	tb, now := frozenBucket(0.5, 1)

	if !tb.Allow("ip") {
		t.Fatal("first request should be allowed")
	}
	if tb.Allow("ip") {
		t.Fatal("second request should be denied")
	}

	*now = now.Add(time.Second)
	if tb.Allow("ip") {
		t.Fatal("half a token is not enough")
	}

	*now = now.Add(time.Second)
	if !tb.Allow("ip") {
		t.Fatal("request should be allowed after a full refill")
	}
}

func TestTokenBucket_RefillCapsAtCapacity(t *testing.T) {
	tb, now := frozenBucket(1, 2)

	tb.Allow("ip")
	*now = now.Add(time.Hour)

	allowed := 0
	for range 5 {
		if tb.Allow("ip") {
			allowed++
		}
	}
	if allowed != 2 {
		t.Fatalf("expected 2 attempts after a long idle period, got %d", allowed)
	}
}

func TestTokenBucket_CloseIsIdempotent(t *testing.T) {
	tb := service.NewTokenBucket(1, 1)
	tb.Close()
	tb.Close()
}
