package utils

import "testing"

func TestCamelKey(t *testing.T) {
	cases := map[string]string{
		"FULL_NAME":        "fullName",
		"reg_id":           "regId",
		"isPresent":        "isPresent",
		"TOTAL_RECORDS":    "totalRecords",
		"Department":       "department",
		"sewa_location_id": "sewaLocationId",
		"address_1":        "address_1",
		"_hidden":          "_hidden",
		"":                 "",
	}
	for in, want := range cases {
		if got := CamelKey(in); got != want {
			t.Errorf("CamelKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCamelKeyIdempotent(t *testing.T) {
	keys := []string{"FULL_NAME", "reg_id", "a__b", "x_1_y", "a_1_b", "1_A_B", "_1_A", "1__B_c", "1_bC",
		"_lead", "trail_", "MiXed_Case", "ÉTAT_CIVIL"}
	for _, in := range keys {
		once := CamelKey(in)
		if twice := CamelKey(once); twice != once {
			t.Errorf("CamelKey not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

// Every key up to five runes over a small alphabet that mixes case, digits and underscores.
func TestCamelKeyIdempotentExhaustive(t *testing.T) {
	alphabet := []string{"a", "B", "1", "_"}
	keys := []string{""}
	for n := 0; n < 5; n++ {
		var next []string
		for _, k := range keys {
			for _, r := range alphabet {
				next = append(next, k+r)
			}
		}
		for _, k := range next {
			once := CamelKey(k)
			if twice := CamelKey(once); twice != once {
				t.Fatalf("CamelKey not idempotent for %q: %q then %q", k, once, twice)
			}
		}
		keys = next
	}
}

func TestCamelKeyDigitSegments(t *testing.T) {
	cases := map[string]string{
		"a_1_b": "a_1B",
		"X_1_Y": "x_1Y",
		"1_A_B": "1ab",
	}
	for in, want := range cases {
		if got := CamelKey(in); got != want {
			t.Errorf("CamelKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := SafeFilenamePart(" a/b:c "); got != "a_b_c" {
		t.Fatalf("got %q", got)
	}
	if got := SafeFilenamePart(""); got != "NA" {
		t.Fatalf("got %q", got)
	}
}
