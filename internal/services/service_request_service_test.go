package services

import (
	"testing"

	"github.com/servired/backend/internal/models"
	"github.com/servired/backend/pkg/errors"
)

func TestCreateRequest(t *testing.T) {
	tests := []struct {
		name         string
		technicianID uint
		title        string
		wantCode     string
		wantTitle    string
	}{
		{
			name:         "default title",
			technicianID: 10,
			wantTitle:    models.DefaultServiceTitle,
		},
		{
			name:         "explicit title kept",
			technicianID: 10,
			title:        "Fix kitchen sink",
			wantTitle:    "Fix kitchen sink",
		},
		{
			name:         "unknown technician",
			technicianID: 999,
			wantCode:     errors.ErrCodeNotFound,
		},
		{
			name:         "receiver is not a technician",
			technicianID: 2,
			wantCode:     errors.ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeStore()
			f.addUser(1, "alice", models.RoleClient)
			f.addUser(2, "bob", models.RoleClient)
			f.addUser(10, "ted", models.RoleTechnician)

			svc := NewServiceRequestService(f, f)

			service, err := svc.CreateRequest(1, CreateServiceInput{
				TechnicianID: tt.technicianID,
				Category:     "plumbing",
				Title:        tt.title,
			})

			if tt.wantCode != "" {
				if err == nil {
					t.Fatalf("CreateRequest() expected error code %s, got nil", tt.wantCode)
				}
				if errors.Code(err) != tt.wantCode {
					t.Errorf("error code = %s, want %s", errors.Code(err), tt.wantCode)
				}
				return
			}

			if err != nil {
				t.Fatalf("CreateRequest() error = %v", err)
			}
			if service.Status != models.ServiceStatusPending {
				t.Errorf("status = %s, want %s", service.Status, models.ServiceStatusPending)
			}
			if service.Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", service.Title, tt.wantTitle)
			}
			if service.ClientID != 1 || service.TechnicianID != 10 {
				t.Errorf("parties = (%d, %d), want (1, 10)", service.ClientID, service.TechnicianID)
			}
		})
	}
}

func TestGetService(t *testing.T) {
	f := newFakeStore()
	f.addUser(1, "alice", models.RoleClient)
	f.addUser(2, "bob", models.RoleClient)
	f.addUser(10, "ted", models.RoleTechnician)
	service := f.addCompletedService(1, 10, "plumbing")

	svc := NewServiceRequestService(f, f)

	tests := []struct {
		name      string
		serviceID uint
		userID    uint
		wantCode  string
	}{
		{name: "client may read", serviceID: service.ID, userID: 1},
		{name: "technician may read", serviceID: service.ID, userID: 10},
		{name: "outsider denied", serviceID: service.ID, userID: 2, wantCode: errors.ErrCodeUnauthorized},
		{name: "unknown service", serviceID: 999, userID: 1, wantCode: errors.ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetService(tt.serviceID, tt.userID)

			if tt.wantCode != "" {
				if err == nil {
					t.Fatalf("GetService() expected error code %s, got nil", tt.wantCode)
				}
				if errors.Code(err) != tt.wantCode {
					t.Errorf("error code = %s, want %s", errors.Code(err), tt.wantCode)
				}
				return
			}

			if err != nil {
				t.Fatalf("GetService() error = %v", err)
			}
			if got.ID != service.ID {
				t.Errorf("service id = %d, want %d", got.ID, service.ID)
			}
		})
	}
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	f := newFakeStore()
	f.addUser(1, "alice", models.RoleClient)
	f.addUser(10, "ted", models.RoleTechnician)
	service := f.addCompletedService(1, 10, "plumbing")

	svc := NewServiceRequestService(f, f)

	_, err := svc.UpdateStatus(service.ID, 1, "done", nil)
	if err == nil {
		t.Fatal("UpdateStatus() expected error, got nil")
	}
	if errors.Code(err) != errors.ErrCodeValidation {
		t.Errorf("error code = %s, want %s", errors.Code(err), errors.ErrCodeValidation)
	}
}

func TestUpdateStatus_OnlyParties(t *testing.T) {
	f := newFakeStore()
	f.addUser(1, "alice", models.RoleClient)
	f.addUser(2, "bob", models.RoleClient)
	f.addUser(10, "ted", models.RoleTechnician)
	service := f.addCompletedService(1, 10, "plumbing")

	svc := NewServiceRequestService(f, f)

	_, err := svc.UpdateStatus(service.ID, 2, models.ServiceStatusCancelled, nil)
	if err == nil {
		t.Fatal("UpdateStatus() by outsider expected error, got nil")
	}
	if errors.Code(err) != errors.ErrCodeUnauthorized {
		t.Errorf("error code = %s, want %s", errors.Code(err), errors.ErrCodeUnauthorized)
	}
}

func TestListPendingRequests_OnlyPendingForTechnician(t *testing.T) {
	f := newFakeStore()
	f.addUser(1, "alice", models.RoleClient)
	f.addUser(10, "ted", models.RoleTechnician)
	f.addUser(11, "ed", models.RoleTechnician)

	svc := NewServiceRequestService(f, f)

	pendingService, err := svc.CreateRequest(1, CreateServiceInput{TechnicianID: 10, Category: "plumbing"})
	if err != nil {
		t.Fatalf("CreateRequest() error = %v", err)
	}
	if _, err := svc.CreateRequest(1, CreateServiceInput{TechnicianID: 11, Category: "electrics"}); err != nil {
		t.Fatalf("CreateRequest() error = %v", err)
	}
	f.addCompletedService(1, 10, "plumbing")

	pending, err := svc.ListPendingRequests(10)
	if err != nil {
		t.Fatalf("ListPendingRequests() error = %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("pending count = %d, want 1", len(pending))
	}
	if pending[0].ID != pendingService.ID {
		t.Errorf("pending id = %d, want %d", pending[0].ID, pendingService.ID)
	}
}
