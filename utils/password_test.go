package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestCheckPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	tests := []struct {
		name     string
		password string
		plain    string
		hash     string
		want     bool
	}{
		{"plain match", "admin2025", "admin2025", "", true},
		{"plain mismatch", "admin", "admin2025", "", false},
		{"empty never matches", "", "", "", false},
		{"hash match", "s3cret", "", string(hash), true},
		{"hash wins over plain", "admin2025", "admin2025", string(hash), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckPassword(tt.password, tt.plain, tt.hash); got != tt.want {
				t.Errorf("CheckPassword() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHashPasswordRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("bcrypt cost 14 is slow")
	}
	hash, err := HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CheckPasswordHash("pw", hash) || CheckPasswordHash("other", hash) {
		t.Error("hash does not verify correctly")
	}
}
