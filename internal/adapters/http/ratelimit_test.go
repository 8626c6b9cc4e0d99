package httpadapter

import (
	"testing"
	"time"
)

func TestKeyedLimiterBurstThenDeny(t *testing.T) {
	l := newKeyedLimiter(5, 15*time.Minute)

	for i := 0; i < 5; i++ {
		if !l.allow("user-1") {
			t.Fatalf("request %d should be allowed within the burst", i+1)
		}
	}
	if l.allow("user-1") {
		t.Fatal("sixth request should be denied")
	}
}

func TestKeyedLimiterIsolatesKeys(t *testing.T) {
	l := newKeyedLimiter(1, 15*time.Minute)

	if !l.allow("user-1") {
		t.Fatal("first request for user-1 should pass")
	}
	if l.allow("user-1") {
		t.Fatal("second request for user-1 should be denied")
	}
	if !l.allow("user-2") {
		t.Fatal("user-2 has their own bucket")
	}
}
