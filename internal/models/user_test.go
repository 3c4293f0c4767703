package models

import "testing"

func TestUserBeforeSave(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr bool
	}{
		{
			name: "valid client",
			user: User{Email: "a@example.com", Username: "a", Role: RoleClient},
		},
		{
			name: "valid technician",
			user: User{Email: "t@example.com", Username: "t", Role: RoleTechnician, Rating: 4.5, TotalReviews: 10},
		},
		{
			name:    "unknown role",
			user:    User{Email: "x@example.com", Username: "x", Role: "admin"},
			wantErr: true,
		},
		{
			name:    "rating above bounds",
			user:    User{Email: "x@example.com", Username: "x", Role: RoleTechnician, Rating: 5.5},
			wantErr: true,
		},
		{
			name:    "negative review count",
			user:    User{Email: "x@example.com", Username: "x", Role: RoleClient, TotalReviews: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.BeforeSave(nil)
			if tt.wantErr && err == nil {
				t.Error("BeforeSave() expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("BeforeSave() unexpected error = %v", err)
			}
		})
	}
}

func TestIsTechnician(t *testing.T) {
	if (&User{Role: RoleClient}).IsTechnician() {
		t.Error("client IsTechnician() = true, want false")
	}
	if !(&User{Role: RoleTechnician}).IsTechnician() {
		t.Error("technician IsTechnician() = false, want true")
	}
}
