package security

import (
	"testing"
	"time"
)

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name   string
		userID uint
		role   string
	}{
		{
			name:   "Client user",
			userID: 1,
			role:   "client",
		},
		{
			name:   "Technician user",
			userID: 2,
			role:   "technician",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateJWT(tt.userID, tt.role, "test_secret_key_minimum_32_chars")
			if err != nil {
				t.Fatalf("GenerateToken() error = %v", err)
			}

			if token == "" {
				t.Error("GenerateToken() returned empty token")
			}

			// Validate the token
			claims, err := ValidateJWT(token, "test_secret_key_minimum_32_chars")
			if err != nil {
				t.Fatalf("ValidateToken() error = %v", err)
			}

			if claims.UserID != tt.userID {
				t.Errorf("UserID = %d, want %d", claims.UserID, tt.userID)
			}

			if claims.Role != tt.role {
				t.Errorf("Role = %s, want %s", claims.Role, tt.role)
			}
		})
	}
}

func TestValidateToken_InvalidToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "Empty token",
			token: "",
		},
		{
			name:  "Invalid format",
			token: "invalid.token.here",
		},
		{
			name:  "Random string",
			token: "randomstring",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateJWT(tt.token, "test_secret_key_minimum_32_chars")
			if err == nil {
				t.Error("ValidateToken() expected error for invalid token, got nil")
			}
		})
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(1, "client", "test_secret_key_minimum_32_chars")
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	_, err = ValidateJWT(token, "another_secret_key_minimum_32_chars")
	if err == nil {
		t.Error("ValidateToken() expected error for wrong secret, got nil")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	userID := uint(42)
	role := "technician"

	token, err := GenerateJWT(userID, role, "test_secret_key_minimum_32_chars")
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	claims, err := ValidateJWT(token, "test_secret_key_minimum_32_chars")
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("UserID = %d, want %d", claims.UserID, userID)
	}

	if claims.Role != role {
		t.Errorf("Role = %s, want %s", claims.Role, role)
	}

	// Verify expiration is in the future
	if claims.ExpiresAt.Time.Before(time.Now()) {
		t.Error("Token already expired")
	}

	// Verify expiration is within 24 hours
	expectedExpiry := time.Now().Add(24 * time.Hour)
	if claims.ExpiresAt.Time.After(expectedExpiry.Add(time.Minute)) {
		t.Error("Token expiration is too far in the future")
	}
}
