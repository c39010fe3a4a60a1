package service

import (
	"strings"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
)

func TestTOTPValidateCode(t *testing.T) {
	provider := NewTOTPProvider("Coworka")

	secret, err := provider.GenerateSecret()
	if err != nil {
		t.Fatalf("GenerateSecret: %v", err)
	}

	code, err := totp.GenerateCode(secret, time.Now())
	if err != nil {
		t.Fatalf("GenerateCode: %v", err)
	}
	if !provider.ValidateCode(secret, code) {
		t.Error("current code should validate")
	}
	if provider.ValidateCode(secret, "000000") && code != "000000" {
		t.Error("wrong code should not validate")
	}
	if provider.ValidateCode("not base32!", code) {
		t.Error("malformed secret should not validate")
	}
}

func TestTOTPQRCodeURL(t *testing.T) {
	provider := NewTOTPProvider("Coworka")

	url, err := provider.QRCodeURL("a@b.com", "", "SECRET")
	if err != nil {
		t.Fatalf("QRCodeURL: %v", err)
	}
	if !strings.HasPrefix(url, "otpauth://totp/") {
		t.Errorf("url = %q, want otpauth scheme", url)
	}
	if !strings.Contains(url, "issuer=Coworka") {
		t.Errorf("url = %q, want fallback issuer", url)
	}
}
