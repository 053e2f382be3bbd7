package utils

import (
	"errors"
	"testing"
	"time"
)

func TestValidateMobileNumber(t *testing.T) {
	if err := ValidateMobileNumber("9876543210"); err != nil {
		t.Errorf("有效号码不应报错: %v", err)
	}
	if err := ValidateMobileNumber(" 9876543210 "); err != nil {
		t.Errorf("前后空白应被忽略: %v", err)
	}
	invalid := []string{"", "98765", "98765432100", "98765abcde", "98765 4321"}
	for _, mobile := range invalid {
		if err := ValidateMobileNumber(mobile); !errors.Is(err, ErrInvalidMobileNumberFormat) {
			t.Errorf("ValidateMobileNumber(%q) = %v, want ErrInvalidMobileNumberFormat", mobile, err)
		}
	}
}

func TestValidateEmailFormat(t *testing.T) {
	if !ValidateEmailFormat("user@example.com") {
		t.Error("合法邮箱被判为无效")
	}
	for _, email := range []string{"", "user", "user@", "@example.com"} {
		if ValidateEmailFormat(email) {
			t.Errorf("非法邮箱 %q 被判为有效", email)
		}
	}
}

func TestParseDateLayouts(t *testing.T) {
	cases := []struct {
		input string
		want  time.Time
	}{
		{"15-08-2025", time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)},
		{"2025-08-15", time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)},
		{"08/15/2025", time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)},
		{"2025/08/15", time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got, err := ParseDate(c.input)
		if err != nil {
			t.Errorf("ParseDate(%q) 报错: %v", c.input, err)
			continue
		}
		if !got.Equal(c.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

// 歧义输入按日在前的格式解释
func TestParseDateDayFirstPriority(t *testing.T) {
	got, err := ParseDate("04-05-2025")
	if err != nil {
		t.Fatalf("ParseDate 报错: %v", err)
	}
	want := time.Date(2025, 5, 4, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("04-05-2025 应解释为 5 月 4 日, got %v", got)
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, input := range []string{"", "  ", "not-a-date", "32-13-2025"} {
		if _, err := ParseDate(input); !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("ParseDate(%q) = %v, want ErrInvalidDateFormat", input, err)
		}
	}
}
