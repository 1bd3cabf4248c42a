package mail

import (
	"fmt"
	"strings"
	"time"

	"parking-allocator/internal/pkg/workcal"
)

const emailDateLayout = "Monday 2 January 2006"

func formatDate(d workcal.Date) string {
	return d.In(time.UTC).Format(emailDateLayout)
}

func formatDates(dates []workcal.Date) string {
	parts := make([]string, len(dates))
	for i, d := range dates {
		parts[i] = formatDate(d)
	}
	return strings.Join(parts, "\n")
}

func formatDatesHTML(dates []workcal.Date) string {
	parts := make([]string, len(dates))
	for i, d := range dates {
		parts[i] = "<li>" + formatDate(d) + "</li>"
	}
	return "<ul>" + strings.Join(parts, "") + "</ul>"
}

// NewSingleAllocationEmail tells a user they have just been allocated a
// space for one date.
func NewSingleAllocationEmail(to string, date workcal.Date) Email {
	day := formatDate(date)
	return Email{
		To:      to,
		Subject: fmt.Sprintf("Parking space allocated for %s", day),
		PlainTextBody: fmt.Sprintf(
			"You have been allocated a parking space for %s.\n\n"+
				"If you no longer need it, please cancel your request so the space can be released.\n", day),
		HTMLBody: fmt.Sprintf(
			"<p>You have been allocated a parking space for <strong>%s</strong>.</p>"+
				"<p>If you no longer need it, please cancel your request so the space can be released.</p>", day),
	}
}

// NewMultiAllocationEmail covers several newly allocated dates in one
// message; a user never receives more than one email per allocation run.
func NewMultiAllocationEmail(to string, dates []workcal.Date) Email {
	return Email{
		To:      to,
		Subject: fmt.Sprintf("Parking spaces allocated for %d upcoming dates", len(dates)),
		PlainTextBody: fmt.Sprintf(
			"You have been allocated parking spaces for the following dates:\n\n%s\n\n"+
				"If you no longer need any of them, please cancel the request so the space can be released.\n",
			formatDates(dates)),
		HTMLBody: fmt.Sprintf(
			"<p>You have been allocated parking spaces for the following dates:</p>%s"+
				"<p>If you no longer need any of them, please cancel the request so the space can be released.</p>",
			formatDatesHTML(dates)),
	}
}

// NewDailySummaryEmail is the scheduled next-working-day status email.
func NewDailySummaryEmail(to string, date workcal.Date, allocated bool) Email {
	day := formatDate(date)
	if allocated {
		return Email{
			To:            to,
			Subject:       fmt.Sprintf("Parking status for %s: allocated", day),
			PlainTextBody: fmt.Sprintf("You have a parking space for %s.\n", day),
			HTMLBody:      fmt.Sprintf("<p>You have a parking space for <strong>%s</strong>.</p>", day),
		}
	}
	return Email{
		To:      to,
		Subject: fmt.Sprintf("Parking status for %s: interrupted", day),
		PlainTextBody: fmt.Sprintf(
			"You do not currently have a parking space for %s.\n\n"+
				"You are still in the queue and will be notified if a space frees up.\n", day),
		HTMLBody: fmt.Sprintf(
			"<p>You do not currently have a parking space for <strong>%s</strong>.</p>"+
				"<p>You are still in the queue and will be notified if a space frees up.</p>", day),
	}
}

// NewWeeklySummaryEmail reports the long-lead-time outcome for next week.
func NewWeeklySummaryEmail(to string, allocated, interrupted []workcal.Date) Email {
	var plain, html strings.Builder
	if len(allocated) > 0 {
		plain.WriteString("You have parking spaces on:\n\n" + formatDates(allocated) + "\n\n")
		html.WriteString("<p>You have parking spaces on:</p>" + formatDatesHTML(allocated))
	}
	if len(interrupted) > 0 {
		plain.WriteString("You are still queued for:\n\n" + formatDates(interrupted) + "\n")
		html.WriteString("<p>You are still queued for:</p>" + formatDatesHTML(interrupted))
	}
	return Email{
		To:            to,
		Subject:       "Your parking for next week",
		PlainTextBody: plain.String(),
		HTMLBody:      html.String(),
	}
}

// NewRequestReminderEmail nudges recently active users with no upcoming
// requests.
func NewRequestReminderEmail(to string) Email {
	return Email{
		To:      to,
		Subject: "No upcoming parking requests",
		PlainTextBody: "You have no parking requests for the upcoming period.\n\n" +
			"If you need a space, please submit your requests.\n",
		HTMLBody: "<p>You have no parking requests for the upcoming period.</p>" +
			"<p>If you need a space, please submit your requests.</p>",
	}
}
