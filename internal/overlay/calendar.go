package overlay

import (
	"fmt"
	"time"

	"github.com/mj1618/outlook-a11y/internal/model"
	"github.com/mj1618/outlook-a11y/internal/platform"
	"github.com/mj1618/outlook-a11y/internal/remote"
	"go.uber.org/zap"
)

// calendarMinVersion is the first client version whose calendar view is
// described through the object model.
const calendarMinVersion = 13

// calendarView describes the selected appointment or time slot of the day
// and week views.
type calendarView struct{}

func (*calendarView) ID() model.OverlayID { return model.OverlayCalendarView }

func (*calendarView) FilterDuplicates(*Object, func() bool) bool { return false }

// HandleEvent drops name and state changes, which the view raises for every
// selection move on top of the focus event.
func (*calendarView) HandleEvent(_ *Object, ev platform.EventName, next func()) {
	if ev == platform.EventNameChange || ev == platform.EventStateChange {
		return
	}
	next()
}

func (c *calendarView) ReportFocus(o *Object, _ func()) {
	var app remote.Object
	if o.env.version() >= calendarMinVersion {
		app = o.env.app()
	}
	if app == nil {
		o.HandleEvent(platform.EventValueChange)
		return
	}
	text, err := c.describe(o, app)
	if err != nil {
		o.log().Debug("describing calendar selection failed", zap.Error(err))
		o.HandleEvent(platform.EventValueChange)
		return
	}
	o.env.Provider.Speech.Speak(text)
}

func (c *calendarView) describe(o *Object, app remote.Object) (string, error) {
	explorer, err := remote.WalkObject(app, "ActiveExplorer()")
	if err != nil {
		return "", err
	}
	if remote.IntOr(o.log(), explorer, 0, "Selection", "Count") > 0 {
		item, err := remote.WalkObject(explorer, "Selection", "Item(1)")
		if err != nil {
			return "", err
		}
		start, end, err := timeSpan(item, "Start", "End")
		if err != nil {
			return "", err
		}
		subject := remote.StringOr(o.log(), item, "", "Subject")
		return fmt.Sprintf("Appointment %s, %s", subject, timeRange(o, start, end)), nil
	}
	view, err := remote.WalkObject(explorer, "CurrentView")
	if err != nil {
		return "", err
	}
	start, end, err := timeSpan(view, "SelectedStartTime", "SelectedEndTime")
	if err != nil {
		return "", err
	}
	text := timeRange(o, start, end)
	if hasAppointment(o, explorer, start, end) {
		text = "Has appointment " + text
	}
	return text, nil
}

func timeSpan(obj remote.Object, startProp, endProp string) (start, end time.Time, err error) {
	if start, err = readTime(obj, startProp); err != nil {
		return start, end, err
	}
	end, err = readTime(obj, endProp)
	return start, end, err
}

func readTime(obj remote.Object, prop string) (time.Time, error) {
	t := remote.TimeOr(nil, obj, time.Time{}, prop)
	if t.IsZero() {
		return t, fmt.Errorf("reading %s: %w", prop, remote.ErrNoProperty)
	}
	return t, nil
}

// hasAppointment asks the current folder whether any item, recurrences
// included, overlaps [start, end). A failed query counts as no appointment.
func hasAppointment(o *Object, explorer remote.Object, start, end time.Time) bool {
	query := fmt.Sprintf(`[Start] < "%s" And [End] > "%s"`, queryTime(o, end), queryTime(o, start))
	items, err := remote.WalkObject(explorer, "CurrentFolder", "Items")
	if err == nil {
		_, err = items.Call("Sort", "[Start]")
	}
	if err == nil {
		err = items.Set("IncludeRecurrences", true)
	}
	var found any
	if err == nil {
		found, err = items.Call("Find", query)
	}
	if err != nil {
		o.log().Debug("appointment query failed", zap.String("query", query), zap.Error(err))
		return false
	}
	return found != nil
}

func queryTime(o *Object, t time.Time) string {
	dates, tag := o.env.Provider.Dates, o.env.language()
	return dates.FormatDate(tag, platform.DateLong, t) + " " + dates.FormatTime(tag, platform.TimeNoSeconds, t)
}

// timeRange renders "start to end". The start date is spoken only when it
// differs from the date last spoken or the range crosses midnight. A range
// covering exactly one whole day is spoken as that date, all day.
func timeRange(o *Object, start, end time.Time) string {
	dates, tag := o.env.Provider.Dates, o.env.language()
	startText := dates.FormatTime(tag, platform.TimeNoSeconds, start)
	endText := dates.FormatTime(tag, platform.TimeNoSeconds, end)
	startDate, endDate := DateOf(start), DateOf(end)

	var startDateText string
	prev, ok := o.env.lastDate().Exchange(startDate)
	if !ok || prev != startDate || endDate != startDate {
		startDateText = dates.FormatDate(tag, platform.DateLong, start)
		startText = startDateText + " " + startText
	}
	if endDate != startDate {
		if isAllDay(start, end) {
			return startDateText + " (all day)"
		}
		endText = dates.FormatDate(tag, platform.DateLong, end) + " " + endText
	}
	return startText + " to " + endText
}

func isAllDay(start, end time.Time) bool {
	y, m, d := start.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, start.Location())
	return start.Equal(midnight) && end.Equal(start.AddDate(0, 0, 1))
}
