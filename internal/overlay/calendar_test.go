package overlay

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/mj1618/outlook-a11y/internal/model"
	"github.com/mj1618/outlook-a11y/internal/platform"
	"github.com/mj1618/outlook-a11y/internal/platform/sim"
	"github.com/mj1618/outlook-a11y/internal/remote"
)

func calendarApp(version string, explorer map[string]any) map[string]any {
	return map[string]any{"Version": version, "ActiveExplorer": explorer}
}

func appointmentExplorer(start, end, subject string) map[string]any {
	return map[string]any{
		"Selection": map[string]any{
			"Count": 1,
			"Item":  []any{map[string]any{"Start": start, "End": end, "Subject": subject}},
		},
	}
}

func slotExplorer(start, end string, found any) map[string]any {
	return map[string]any{
		"Selection":   map[string]any{"Count": 0},
		"CurrentView": map[string]any{"SelectedStartTime": start, "SelectedEndTime": end},
		"CurrentFolder": map[string]any{
			"Items": map[string]any{"Sort": true, "IncludeRecurrences": false, "Find": found},
		},
	}
}

func newCalendar(t *testing.T, app map[string]any) (*testEnv, *Object) {
	t.Helper()
	env := newTestEnv(t, app)
	n := env.build(model.Element{ID: 1, Role: "pane", Name: "Calendar", Value: "Friday", WindowClass: "WeekViewWnd"})
	return env, env.wrap(n, model.OverlayCalendarView)
}

func focusEntries(env *testEnv, o *Object) []sim.Entry {
	env.host.Reset()
	o.HandleEvent(platform.EventGainFocus)
	return env.host.Entries
}

func TestCalendar_Appointment(t *testing.T) {
	env, view := newCalendar(t, calendarApp("16.0", appointmentExplorer("2026-10-16 09:00", "2026-10-16 10:00", "Standup")))

	want := []sim.Entry{{Kind: sim.KindSpeak, Text: "Appointment Standup, 16 October 2026 09:00 to 10:00"}}
	if diff := cmp.Diff(want, focusEntries(env, view)); diff != "" {
		t.Errorf("first focus mismatch (-want +got):\n%s", diff)
	}
	// The date was just spoken.
	want = []sim.Entry{{Kind: sim.KindSpeak, Text: "Appointment Standup, 09:00 to 10:00"}}
	if diff := cmp.Diff(want, focusEntries(env, view)); diff != "" {
		t.Errorf("second focus mismatch (-want +got):\n%s", diff)
	}
}

func TestCalendar_TimeSlot(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		found      any
		want       string
	}{
		{
			name:  "slot with appointment",
			start: "2026-10-16 11:00", end: "2026-10-16 11:30",
			found: map[string]any{"Subject": "Review"},
			want:  "Has appointment 16 October 2026 11:00 to 11:30",
		},
		{
			name:  "free slot",
			start: "2026-10-16 11:00", end: "2026-10-16 11:30",
			want: "16 October 2026 11:00 to 11:30",
		},
		{
			name:  "whole day",
			start: "2026-10-17", end: "2026-10-18",
			want: "17 October 2026 (all day)",
		},
		{
			name:  "across midnight",
			start: "2026-10-16 22:00", end: "2026-10-17 01:00",
			want: "16 October 2026 22:00 to 17 October 2026 01:00",
		},
		{
			name:  "two days",
			start: "2026-10-17", end: "2026-10-19",
			want: "17 October 2026 00:00 to 19 October 2026 00:00",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, view := newCalendar(t, calendarApp("16.0", slotExplorer(tt.start, tt.end, tt.found)))
			want := []sim.Entry{{Kind: sim.KindSpeak, Text: tt.want}}
			if diff := cmp.Diff(want, focusEntries(env, view)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalendar_AppointmentQuery(t *testing.T) {
	env, view := newCalendar(t, calendarApp("16.0", slotExplorer("2026-10-16 11:00", "2026-10-16 11:30", nil)))
	obj, err := remote.WalkObject(env.app, "ActiveExplorer", "CurrentFolder", "Items")
	if err != nil {
		t.Fatal(err)
	}
	items := obj.(*remote.Bag)
	var query string
	items.SetMethod("Find", func(args ...any) (any, error) {
		query = args[0].(string)
		return nil, nil
	})

	focusEntries(env, view)

	if want := `[Start] < "16 October 2026 11:30" And [End] > "16 October 2026 11:00"`; query != want {
		t.Errorf("got query %q, want %q", query, want)
	}
	if inc, _ := items.Get("IncludeRecurrences"); inc != true {
		t.Errorf("IncludeRecurrences = %v, want true", inc)
	}
}

func TestCalendar_QueryFailureMeansNoAppointment(t *testing.T) {
	explorer := slotExplorer("2026-10-16 11:00", "2026-10-16 11:30", map[string]any{"Subject": "x"})
	explorer["CurrentFolder"].(map[string]any)["Items"].(map[string]any)["_fail"] = []any{"Find"}
	env, view := newCalendar(t, calendarApp("16.0", explorer))

	want := []sim.Entry{{Kind: sim.KindSpeak, Text: "16 October 2026 11:00 to 11:30"}}
	if diff := cmp.Diff(want, focusEntries(env, view)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCalendar_FallsBackToValueChange(t *testing.T) {
	broken := slotExplorer("2026-10-16 11:00", "2026-10-16 11:30", nil)
	broken["_fail"] = []any{"CurrentView"}
	tests := []struct {
		name string
		app  map[string]any
	}{
		{"old version", calendarApp("12.0", appointmentExplorer("2026-10-16 09:00", "2026-10-16 10:00", "x"))},
		{"no object model", nil},
		{"remote failure", calendarApp("16.0", broken)},
		{"unreadable start", calendarApp("16.0", appointmentExplorer("soon", "2026-10-16 10:00", "x"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, view := newCalendar(t, tt.app)
			var got []sim.Entry
			for _, e := range focusEntries(env, view) {
				if e.Kind != sim.KindWaiting && e.Kind != sim.KindDismiss && e.Kind != sim.KindPump {
					got = append(got, e)
				}
			}
			want := []sim.Entry{{Kind: sim.KindValue, Text: "Friday"}}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalendar_DropsNameAndStateChanges(t *testing.T) {
	env, view := newCalendar(t, nil)
	view.HandleEvent(platform.EventNameChange)
	view.HandleEvent(platform.EventStateChange)
	if len(env.host.Entries) != 0 {
		t.Errorf("got entries %v, want none", env.host.Entries)
	}
	if view.FilterDuplicates() {
		t.Error("calendar view filters duplicates")
	}
}

func TestIsAllDay(t *testing.T) {
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)
	tests := []struct {
		start, end time.Time
		want       bool
	}{
		{start, start.AddDate(0, 0, 1), true},
		{start, start.AddDate(0, 0, 2), false},
		{start.Add(time.Hour), start.AddDate(0, 0, 1).Add(time.Hour), false},
		{start, start.Add(12 * time.Hour), false},
	}
	for _, tt := range tests {
		if got := isAllDay(tt.start, tt.end); got != tt.want {
			t.Errorf("isAllDay(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestTimeRange_AllDayExample(t *testing.T) {
	env := newTestEnv(t, nil)
	o := env.wrap(env.build(model.Element{ID: 1, Role: "pane"}), model.OverlayCalendarView)
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)
	if got, want := timeRange(o, start, start.AddDate(0, 0, 1)), "1 March 2024 (all day)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	// Same date as last announced and within one day: no date prefix.
	if got, want := timeRange(o, start.Add(9*time.Hour), start.Add(10*time.Hour)), "09:00 to 10:00"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
