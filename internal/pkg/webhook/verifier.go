package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// SignatureHeader carries an optional hex HMAC-SHA256 signature over the
// raw request body. The upstream notifier does not sign payloads today;
// when it starts to, signed requests are preferred over the shared-secret
// query parameter automatically.
const SignatureHeader = "X-Webhook-Signature"

// VerifySecret compares the presented shared secret against the configured
// one in constant time. An empty configured secret always fails closed.
func VerifySecret(presented, configured string) bool {
	p := strings.TrimSpace(presented)
	c := strings.TrimSpace(configured)
	if p == "" || c == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(p), []byte(c)) == 1
}

// VerifySignature checks a hex-encoded HMAC-SHA256 signature over the
// payload using the shared secret as key.
func VerifySignature(payload []byte, signatureHeader, secret string) bool {
	sig := strings.TrimSpace(signatureHeader)
	key := strings.TrimSpace(secret)
	if sig == "" || key == "" {
		return false
	}

	decodedSig, err := hex.DecodeString(strings.ToLower(sig))
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(key))
	mac.Write(payload)
	return hmac.Equal(mac.Sum(nil), decodedSig)
}

// Authentic decides whether a request originates from the trusted notifier.
// A signature header, when present, is authoritative; otherwise the secret
// query parameter is compared.
func Authentic(payload []byte, signatureHeader, querySecret, configuredSecret string) bool {
	if strings.TrimSpace(signatureHeader) != "" {
		return VerifySignature(payload, signatureHeader, configuredSecret)
	}
	return VerifySecret(querySecret, configuredSecret)
}
