package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestVerifySecret(t *testing.T) {
	tests := []struct {
		name       string
		presented  string
		configured string
		want       bool
	}{
		{name: "match", presented: "s3cret", configured: "s3cret", want: true},
		{name: "match with whitespace", presented: " s3cret ", configured: "s3cret", want: true},
		{name: "mismatch", presented: "wrong", configured: "s3cret", want: false},
		{name: "empty presented", presented: "", configured: "s3cret", want: false},
		{name: "empty configured fails closed", presented: "s3cret", configured: "", want: false},
		{name: "both empty", presented: "", configured: "", want: false},
	}

	for _, tt := range tests {
		if got := VerifySecret(tt.presented, tt.configured); got != tt.want {
			t.Fatalf("%s: VerifySecret = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func signBody(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"sale_id":"S1"}`)
	secret := "s3cret"

	if !VerifySignature(body, signBody(body, secret), secret) {
		t.Fatal("expected valid signature to verify")
	}
	if VerifySignature(body, signBody(body, "other"), secret) {
		t.Fatal("expected signature with wrong key to fail")
	}
	if VerifySignature(body, "not-hex", secret) {
		t.Fatal("expected non-hex signature to fail")
	}
	if VerifySignature(body, "", secret) {
		t.Fatal("expected empty signature to fail")
	}
}

func TestAuthenticPrefersSignatureHeader(t *testing.T) {
	body := []byte(`{"sale_id":"S1"}`)
	secret := "s3cret"

	// Valid header wins even with a wrong query secret.
	if !Authentic(body, signBody(body, secret), "wrong", secret) {
		t.Fatal("expected valid signature header to authenticate")
	}
	// Invalid header must not fall back to the query secret.
	if Authentic(body, signBody(body, "other"), secret, secret) {
		t.Fatal("expected invalid signature header to fail without fallback")
	}
	// No header: query secret decides.
	if !Authentic(body, "", secret, secret) {
		t.Fatal("expected query secret to authenticate when no header")
	}
	if Authentic(body, "", "wrong", secret) {
		t.Fatal("expected wrong query secret to fail")
	}
}
