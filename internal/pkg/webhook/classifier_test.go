package webhook

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]string
		want    EventKind
	}{
		{name: "plain sale", payload: map[string]string{"sale_id": "S1"}, want: EventSale},
		{name: "refunded true", payload: map[string]string{"refunded": "true"}, want: EventRefund},
		{name: "refunded numeric", payload: map[string]string{"refunded": "1"}, want: EventRefund},
		{name: "refunded yes uppercase", payload: map[string]string{"refunded": "YES"}, want: EventRefund},
		{name: "refunded false", payload: map[string]string{"refunded": "false"}, want: EventSale},
		{name: "refund alias", payload: map[string]string{"is_refunded": "true"}, want: EventRefund},
		{name: "subscription resource", payload: map[string]string{"type": "subscription"}, want: EventSubscriptionUpdate},
		{name: "subscription update marker", payload: map[string]string{"resource": "subscription_update"}, want: EventSubscriptionUpdate},
		{name: "refund flag beats subscription marker", payload: map[string]string{"refunded": "true", "type": "subscription"}, want: EventRefund},
		{name: "unknown type defaults to sale", payload: map[string]string{"type": "payment"}, want: EventSale},
		{name: "empty payload", payload: map[string]string{}, want: EventSale},
	}

	for _, tt := range tests {
		if got := Classify(tt.payload); got != tt.want {
			t.Fatalf("%s: Classify = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSaleEventFromPayload(t *testing.T) {
	ev := SaleEventFromPayload(map[string]string{
		"sale_id":  "S1",
		"email":    "buyer@example.com",
		"product":  "prod_42",
		"price":    "1299",
		"referrer": "REF-JOHND",
	})

	if ev.ExternalID != "S1" {
		t.Fatalf("ExternalID = %q", ev.ExternalID)
	}
	if ev.BuyerEmail != "buyer@example.com" {
		t.Fatalf("BuyerEmail = %q", ev.BuyerEmail)
	}
	if ev.ProductID != "prod_42" {
		t.Fatalf("ProductID = %q", ev.ProductID)
	}
	if ev.AmountMinor != 1299 {
		t.Fatalf("AmountMinor = %d", ev.AmountMinor)
	}
	if ev.RawReferrer != "REF-JOHND" {
		t.Fatalf("RawReferrer = %q", ev.RawReferrer)
	}
	if ev.Kind != EventSale {
		t.Fatalf("Kind = %q", ev.Kind)
	}
}

func TestParseAmountMinor(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{in: "1299", want: 1299},
		{in: "0", want: 0},
		{in: "12.34", want: 1234},
		{in: "12.3", want: 1230},
		{in: "", want: 0},
		{in: "abc", want: 0},
	}

	for _, tt := range tests {
		if got := parseAmountMinor(tt.in); got != tt.want {
			t.Fatalf("parseAmountMinor(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
