package models

import "testing"

func TestCancellable(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{BookingStatusPending, true},
		{BookingStatusPaid, true},
		{BookingStatusConfirmed, true},
		{BookingStatusCancelled, false},
		{"", false},
		{"refunded", false},
	}
	for _, tt := range tests {
		if got := Cancellable(tt.status); got != tt.want {
			t.Errorf("Cancellable(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name    string
		profile UserProfile
		want    string
	}{
		{"full name", UserProfile{FirstName: "Claire", LastName: "Dubois"}, "Claire Dubois"},
		{"first only", UserProfile{FirstName: "Sam"}, "Sam"},
		{"last only", UserProfile{LastName: "Dubois"}, "Dubois"},
		{"empty", UserProfile{}, "Member"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.profile.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRequiresScheduling(t *testing.T) {
	tests := []struct {
		name  string
		offer Offer
		want  bool
	}{
		{"scheduling link", Offer{Modality: ModalityOnline, SchedulingURL: "https://cal.example.com/x"}, true},
		{"at home", Offer{Modality: ModalityAtHome}, true},
		{"fixed event", Offer{Modality: ModalityInPerson}, false},
		{"plain online", Offer{Modality: ModalityOnline}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.offer.RequiresScheduling(); got != tt.want {
				t.Errorf("RequiresScheduling() = %v, want %v", got, tt.want)
			}
		})
	}
}
