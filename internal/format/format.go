// Package format renders mail, contact and appointment items as the text a
// screen reader speaks for them.
package format

import (
	"strings"
)

// Contact is the spoken subset of a contact item.
type Contact struct {
	FullName      string
	CompanyName   string
	JobTitle      string
	Email1Address string
}

// ReceivedMessage is the spoken subset of a received mail item.
type ReceivedMessage struct {
	Unread         bool
	HasAttachments bool
	SenderName     string
	Subject        string
	ReceivedTime   string
}

// SentMessage is the spoken subset of a sent mail item.
type SentMessage struct {
	To      string
	Subject string
	SentOn  string
}

// ContactString joins the non-blank contact fields with ", " in the order
// name, company, job title, e-mail.
func ContactString(c Contact) string {
	fields := []string{c.FullName, c.CompanyName, c.JobTitle, c.Email1Address}
	parts := fields[:0]
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, ", ")
}

// ReceivedMessageString renders
// "[unread] [attachment] <sender>, subject: <subject>, received: <time>".
func ReceivedMessageString(m ReceivedMessage) string {
	text := strings.Join([]string{
		m.SenderName,
		"subject: " + m.Subject,
		"received: " + m.ReceivedTime,
	}, ", ")
	var prefix []string
	if m.Unread {
		prefix = append(prefix, "unread")
	}
	if m.HasAttachments {
		prefix = append(prefix, "attachment")
	}
	if len(prefix) == 0 {
		return text
	}
	return strings.Join(prefix, " ") + " " + text
}

// SentMessageString renders "<to>, subject: <subject>, sent: <time>".
func SentMessageString(m SentMessage) string {
	return strings.Join([]string{
		m.To,
		"subject: " + m.Subject,
		"sent: " + m.SentOn,
	}, ", ")
}
