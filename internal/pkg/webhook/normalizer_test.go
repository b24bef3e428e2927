package webhook

import (
	"errors"
	"testing"
)

func TestNormalizeJSON(t *testing.T) {
	body := []byte(`{"sale_id":"S1","price":1299,"refunded":false,"referrer":"REF-JOHND","meta":{"nested":"x"},"tags":["a"],"note":null}`)

	got, err := Normalize(body, "application/json; charset=utf-8")
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}

	want := map[string]string{
		"sale_id":  "S1",
		"price":    "1299",
		"refunded": "false",
		"referrer": "REF-JOHND",
	}
	if len(got) != len(want) {
		t.Fatalf("Normalize returned %d fields, want %d: %v", len(got), len(want), got)
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("Normalize[%q] = %q, want %q", k, got[k], v)
		}
	}
}

func TestNormalizeForm(t *testing.T) {
	body := []byte("sale_id=S2&price=500&referrer=REF-ABC123&refunded=true")

	got, err := Normalize(body, "application/x-www-form-urlencoded")
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if got["sale_id"] != "S2" || got["price"] != "500" || got["refunded"] != "true" {
		t.Fatalf("unexpected form mapping: %v", got)
	}
}

func TestNormalizeUnsupportedContentType(t *testing.T) {
	for _, ct := range []string{"text/plain", "application/xml", "", "multipart/form-data; boundary=x"} {
		_, err := Normalize([]byte("x"), ct)
		if !errors.Is(err, ErrUnsupportedContentType) {
			t.Fatalf("Normalize(%q) error = %v, want ErrUnsupportedContentType", ct, err)
		}
	}
}

func TestNormalizeInvalidJSON(t *testing.T) {
	_, err := Normalize([]byte(`{"broken`), "application/json")
	if err == nil {
		t.Fatal("expected error for malformed json")
	}
	if errors.Is(err, ErrUnsupportedContentType) {
		t.Fatal("malformed body must not be reported as unsupported content type")
	}
}

func TestNormalizeNumberPrecision(t *testing.T) {
	// Large IDs must survive without float64 exponent mangling.
	got, err := Normalize([]byte(`{"sale_id":9007199254740993}`), "application/json")
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if got["sale_id"] != "9007199254740993" {
		t.Fatalf("sale_id = %q, want undamaged integer string", got["sale_id"])
	}
}
