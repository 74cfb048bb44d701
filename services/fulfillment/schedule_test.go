package fulfillment

import (
	"strings"
	"testing"
	"time"

	"nowme/models"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestResolveSchedule_DatePriority(t *testing.T) {
	scheduled := time.Date(2026, 9, 12, 8, 30, 0, 0, time.UTC)
	eventStart := time.Date(2026, 10, 3, 17, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		b     models.Booking
		o     models.Offer
		want  string
		exact bool
	}{
		{
			name: "booking scheduled time wins over offer event start",
			b:    models.Booking{ScheduledAt: timePtr(scheduled)},
			o:    models.Offer{EventStart: timePtr(eventStart)},
			// 08:30 UTC is 10:30 in Paris during DST.
			want:  "Saturday 12 September 2026 at 10:30",
			exact: true,
		},
		{
			name:  "offer event start when booking has no schedule",
			o:     models.Offer{EventStart: timePtr(eventStart)},
			want:  "Saturday 3 October 2026 at 19:00",
			exact: true,
		},
		{
			name:  "scheduling link yields the to-be-scheduled sentinel",
			o:     models.Offer{SchedulingURL: "https://cal.example.com/x"},
			want:  DateToBeScheduled,
			exact: true,
		},
		{
			name:  "at-home service yields the to-be-scheduled sentinel",
			o:     models.Offer{Modality: models.ModalityAtHome},
			want:  DateToBeScheduled,
			exact: true,
		},
		{
			name:  "nothing at all yields date pending",
			o:     models.Offer{},
			want:  DatePending,
			exact: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveSchedule(tt.b, tt.o, models.Partner{})
			if got.DateDisplay != tt.want {
				t.Errorf("DateDisplay = %q, want %q", got.DateDisplay, tt.want)
			}
		})
	}
}

func TestResolveSchedule_LocationPriority(t *testing.T) {
	partner := models.Partner{Address: "12 rue des Martyrs, 75009 Paris"}

	tests := []struct {
		name string
		b    models.Booking
		o    models.Offer
		p    models.Partner
		want string
	}{
		{
			name: "explicit meeting location wins",
			b:    models.Booking{MeetingLocation: "Café de la Paix, Opéra"},
			o:    models.Offer{Modality: models.ModalityInPerson},
			p:    partner,
			want: "Café de la Paix, Opéra",
		},
		{
			name: "trivially short location falls through to partner address",
			b:    models.Booking{MeetingLocation: "X"},
			o:    models.Offer{Modality: models.ModalityInPerson},
			p:    partner,
			want: partner.Address,
		},
		{
			name: "at-home service asks to confirm the buyer address",
			o:    models.Offer{Modality: models.ModalityAtHome},
			p:    partner,
			want: AddressToConfirm,
		},
		{
			name: "no sources yields the final sentinel",
			o:    models.Offer{Modality: models.ModalityInPerson},
			want: LocationToConfirm,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveSchedule(tt.b, tt.o, tt.p)
			if got.LocationDisplay != tt.want {
				t.Errorf("LocationDisplay = %q, want %q", got.LocationDisplay, tt.want)
			}
		})
	}
}

func TestResolveSchedule_OnlineBypassesLocation(t *testing.T) {
	offer := models.Offer{
		Modality:   models.ModalityOnline,
		MeetingURL: "https://meet.example.com/session",
	}
	b := models.Booking{MeetingLocation: "should never be used"}
	p := models.Partner{Address: "should never be used either"}

	got := ResolveSchedule(b, offer, p)
	if got.LocationDisplay != "" {
		t.Errorf("LocationDisplay = %q, want empty for online offers", got.LocationDisplay)
	}
	if got.MeetingURL != offer.MeetingURL {
		t.Errorf("MeetingURL = %q, want %q", got.MeetingURL, offer.MeetingURL)
	}
}

func TestResolveSchedule_FixedTimezone(t *testing.T) {
	// Winter date: Paris is UTC+1, so 18:00 UTC must print as 19:00.
	scheduled := time.Date(2026, 12, 4, 18, 0, 0, 0, time.UTC)
	got := ResolveSchedule(models.Booking{ScheduledAt: timePtr(scheduled)}, models.Offer{}, models.Partner{})
	if !strings.Contains(got.DateDisplay, "19:00") {
		t.Errorf("DateDisplay = %q, want Paris wall-clock 19:00", got.DateDisplay)
	}
}
