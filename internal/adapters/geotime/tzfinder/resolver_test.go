package tzfinder

import (
	"context"
	"errors"
	"testing"
	"time"

	"kundali-api/internal/ports/geotime"
)

func TestOffsetOnly_ExplicitOffset(t *testing.T) {
	off := 5.5
	in := geotime.LocalMoment{
		Year: 1990, Month: 5, Day: 15,
		Hour: 10, Minute: 30,
		Latitude: 28.6139, Longitude: 77.2090,

		UTCOffsetHours: &off,
	}

	got, err := NewOffsetOnly().Resolve(context.Background(), in)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	want := time.Date(1990, 5, 15, 5, 0, 0, 0, time.UTC)
	if !got.UTC.Equal(want) {
		t.Errorf("utc = %v, want %v", got.UTC, want)
	}
	if got.Zone != "fixed" {
		t.Errorf("zone = %q, want fixed", got.Zone)
	}
}

func TestOffsetOnly_RequiresOffset(t *testing.T) {
	in := geotime.LocalMoment{
		Year: 1990, Month: 5, Day: 15,
		Latitude: 28.6139, Longitude: 77.2090,
	}

	_, err := NewOffsetOnly().Resolve(context.Background(), in)
	if !errors.Is(err, geotime.ErrResolution) {
		t.Fatalf("err = %v, want ErrResolution", err)
	}
}

func TestResolve_ValidationErrors(t *testing.T) {
	r := NewOffsetOnly()
	off := 5.5

	cases := []geotime.LocalMoment{
		{Year: 1990, Month: 13, Day: 1, Latitude: 0, Longitude: 0, UTCOffsetHours: &off},
		{Year: 1990, Month: 5, Day: 15, Latitude: 95, Longitude: 0, UTCOffsetHours: &off},
		{Year: 1990, Month: 5, Day: 15, Latitude: 0, Longitude: 200, UTCOffsetHours: &off},
		{Year: 1990, Month: 5, Day: 15, Hour: 25, Latitude: 0, Longitude: 0, UTCOffsetHours: &off},
	}
	for i, in := range cases {
		if _, err := r.Resolve(context.Background(), in); !errors.Is(err, geotime.ErrResolution) {
			t.Errorf("case %d: err = %v, want ErrResolution", i, err)
		}
	}
}

func TestResolver_IANAZone(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping tzf dataset load in short mode")
	}

	r, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	// Delhi: Asia/Kolkata, UTC+5:30 sin DST.
	in := geotime.LocalMoment{
		Year: 1990, Month: 5, Day: 15,
		Hour: 10, Minute: 30,
		Latitude: 28.6139, Longitude: 77.2090,
	}

	got, err := r.Resolve(context.Background(), in)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.Zone != "Asia/Kolkata" {
		t.Errorf("zone = %q, want Asia/Kolkata", got.Zone)
	}
	want := time.Date(1990, 5, 15, 5, 0, 0, 0, time.UTC)
	if !got.UTC.Equal(want) {
		t.Errorf("utc = %v, want %v", got.UTC, want)
	}
}
