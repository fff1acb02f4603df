package student

import (
	"strings"
	"testing"

	"classadmin/models"
)

func TestPortalUsername(t *testing.T) {
	tests := []struct {
		name    string
		student models.Student
		want    string
	}{
		{
			name:    "derived from email local part",
			student: models.Student{Email: "Jordan.Lee@example.com"},
			want:    "jordan.lee",
		},
		{
			name: "existing username is kept on reset",
			student: models.Student{
				Email:  "new.email@example.com",
				Portal: &models.PortalCredential{Username: "jordan.lee"},
			},
			want: "jordan.lee",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := portalUsername(&tt.student); got != tt.want {
				t.Errorf("portalUsername() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGeneratePassword(t *testing.T) {
	pw, err := generatePassword(generatedPasswordLength)
	if err != nil {
		t.Fatalf("generatePassword() error: %v", err)
	}
	if len(pw) != generatedPasswordLength {
		t.Errorf("generatePassword() length = %d, want %d", len(pw), generatedPasswordLength)
	}
	for _, c := range pw {
		if !strings.ContainsRune(passwordAlphabet, c) {
			t.Errorf("generatePassword() produced character outside alphabet: %q", c)
		}
	}
}

func TestNormalizeTags(t *testing.T) {
	got := normalizeTags([]string{" scholarship ", "", "grade-10"})
	if len(got) != 2 {
		t.Fatalf("normalizeTags() = %v, want 2 values", got)
	}
	if got[0] != "scholarship" || got[1] != "grade-10" {
		t.Errorf("normalizeTags() = %v", got)
	}
}
