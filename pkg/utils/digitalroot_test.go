package utils

import "testing"

func TestCalculateDigitalRoot(t *testing.T) {
	cases := []struct {
		mobile string
		want   int
	}{
		{"9876543210", 9},
		{"1234567890", 9},
		{"9999999999", 9}, // 全 9 反复折叠仍为 9
		{"1000000000", 1},
		{"1234512345", 3},
	}
	for _, c := range cases {
		if got := CalculateDigitalRoot(c.mobile); got != c.want {
			t.Errorf("CalculateDigitalRoot(%q) = %d, want %d", c.mobile, got, c.want)
		}
	}
}

func TestCalculateDigitalRootIgnoresNonDigits(t *testing.T) {
	if got := CalculateDigitalRoot("98-76"); got != CalculateDigitalRoot("9876") {
		t.Errorf("非数字字符应被忽略, got %d", got)
	}
}
