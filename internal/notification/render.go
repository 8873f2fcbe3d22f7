package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

var bookingCreatedTmpl = template.Must(template.New("booking_created").Parse(`<html><body>
<p>Hello {{if .Name}}{{.Name}}{{else}}traveler{{end}},</p>
<p>Your {{.Kind}} booking is confirmed.</p>
<p><strong>Booking reference:</strong> {{.BookingID}}</p>
{{if .Summary}}<p>{{.Summary}}</p>{{end}}
<p>Thank you for booking with us.</p>
</body></html>`))

var requestResolvedTmpl = template.Must(template.New("request_resolved").Parse(`<html><body>
<p>Hello {{if .Name}}{{.Name}}{{else}}traveler{{end}},</p>
<p>Your {{.RequestType}} request for booking {{.BookingID}} has been <strong>{{.Decision}}</strong>.</p>
{{if .AdminNotes}}<p><strong>Notes from our team:</strong> {{.AdminNotes}}</p>{{end}}
</body></html>`))

type view struct {
	Message
	Kind string
}

// Render builds the subject and HTML body for a message.
func Render(m Message) (subject, body string, err error) {
	v := view{Message: m, Kind: bookingLabel(m.BookingType)}

	var buf bytes.Buffer
	switch m.Kind {
	case KindBookingCreated:
		subject = fmt.Sprintf("Booking confirmed: %s", m.BookingID)
		err = bookingCreatedTmpl.Execute(&buf, v)
	case KindRequestResolved:
		subject = fmt.Sprintf("Your %s request was %s", m.RequestType, m.Decision)
		err = requestResolvedTmpl.Execute(&buf, v)
	default:
		return "", "", fmt.Errorf("unknown notification kind %q", m.Kind)
	}
	if err != nil {
		return "", "", fmt.Errorf("render %s: %w", m.Kind, err)
	}
	return subject, buf.String(), nil
}

func bookingLabel(bookingType string) string {
	switch strings.ToLower(bookingType) {
	case "airtaxi":
		return "air taxi"
	case "":
		return "travel"
	default:
		return strings.ToLower(bookingType)
	}
}
