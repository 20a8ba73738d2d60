package format

import (
	"time"

	"github.com/mj1618/outlook-a11y/internal/remote"
	"go.uber.org/zap"
)

// Object classes of the client's item model.
const (
	ClassContact = 40
	ClassMail    = 43
)

// TimeFunc renders a timestamp read from the object model.
type TimeFunc func(time.Time) string

// DefaultTime renders timestamps when no locale formatter is supplied.
func DefaultTime(t time.Time) string {
	return t.Format("2006-01-02T15:04")
}

// ContactFromRemote reads a contact item. Unreadable fields are left empty.
func ContactFromRemote(log *zap.Logger, item remote.Object) Contact {
	return Contact{
		FullName:      remote.StringOr(log, item, "", "FullName"),
		CompanyName:   remote.StringOr(log, item, "", "CompanyName"),
		JobTitle:      remote.StringOr(log, item, "", "JobTitle"),
		Email1Address: remote.StringOr(log, item, "", "Email1Address"),
	}
}

// ReceivedFromRemote reads a received mail item. A failed attachment read
// counts as no attachments.
func ReceivedFromRemote(log *zap.Logger, item remote.Object, render TimeFunc) ReceivedMessage {
	return ReceivedMessage{
		Unread:         remote.BoolOr(log, item, false, "UnRead"),
		HasAttachments: remote.IntOr(log, item, 0, "Attachments", "Count") > 0,
		SenderName:     remote.StringOr(log, item, "", "SenderName"),
		Subject:        remote.StringOr(log, item, "", "Subject"),
		ReceivedTime:   timeText(log, item, render, "ReceivedTime"),
	}
}

// SentFromRemote reads a sent mail item.
func SentFromRemote(log *zap.Logger, item remote.Object, render TimeFunc) SentMessage {
	return SentMessage{
		To:      remote.StringOr(log, item, "", "To"),
		Subject: remote.StringOr(log, item, "", "Subject"),
		SentOn:  timeText(log, item, render, "SentOn"),
	}
}

// HasReceivedTime reports whether the item carries a readable received time.
// Items the user composed, which still sit in Drafts or Sent Items, do not.
func HasReceivedTime(log *zap.Logger, item remote.Object) bool {
	return !remote.TimeOr(log, item, time.Time{}, "ReceivedTime").IsZero()
}

func timeText(log *zap.Logger, item remote.Object, render TimeFunc, prop string) string {
	t := remote.TimeOr(log, item, time.Time{}, prop)
	if t.IsZero() {
		return remote.StringOr(log, item, "", prop)
	}
	if render == nil {
		render = DefaultTime
	}
	return render(t)
}
