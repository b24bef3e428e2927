package notify

import "testing"

func TestSenderOrDefault(t *testing.T) {
	if got := senderOrDefault("ops@refledger.dev"); got != "ops@refledger.dev" {
		t.Fatalf("senderOrDefault = %q, want configured sender", got)
	}
	if got := senderOrDefault(""); got != "no-reply@localhost" {
		t.Fatalf("senderOrDefault = %q, want no-reply@localhost", got)
	}
}
