package mail

import (
	"bytes"
	"fmt"
	"html/template"
)

const (
	waitlistSubject = "You're on the Play It Loud waitlist!"
	pitchSubject    = "Pitch Submitted Successfully!"
)

var waitlistTemplate = template.Must(template.New("waitlist").Parse(`<!DOCTYPE html>
<html>
  <head><meta charset="utf-8"><title>Welcome to Play It Loud</title></head>
  <body style="margin:0;padding:0;font-family:-apple-system,'Segoe UI',Roboto,Arial,sans-serif;background-color:#ffffff;color:#333333;">
    <table role="presentation" style="width:100%;border-collapse:collapse;">
      <tr><td align="center" style="padding:40px 20px;">
        <table role="presentation" style="max-width:600px;width:100%;border-collapse:collapse;">
          <tr><td align="center" style="padding-bottom:30px;">
            <h1 style="margin:0;color:#1a0a2e;font-size:32px;">Play It Loud</h1>
          </td></tr>
          <tr><td style="background-color:#f8f9fa;border-radius:12px;padding:40px 30px;border:1px solid #e9ecef;">
            <h2 style="margin:0 0 20px 0;color:#1a0a2e;font-size:24px;">You're on the waitlist!</h2>
            <p style="margin:0 0 20px 0;color:#495057;font-size:16px;line-height:1.6;">Hi{{if .FullName}} {{.FullName}}{{end}},</p>
            <p style="margin:0 0 20px 0;color:#495057;font-size:16px;line-height:1.6;">
              Thanks for signing up. We've saved your spot and we'll be in touch as soon as we launch.
            </p>
            <p style="margin:0;color:#6c757d;font-size:14px;line-height:1.6;">
              If you didn't sign up for the Play It Loud waitlist, you can ignore this email.
            </p>
          </td></tr>
          <tr><td align="center" style="padding-top:30px;">
            <p style="margin:0;color:#6c757d;font-size:14px;">&copy; 2025 Play It Loud. All rights reserved.</p>
          </td></tr>
        </table>
      </td></tr>
    </table>
  </body>
</html>`))

var pitchTemplate = template.Must(template.New("pitch").Parse(`<!DOCTYPE html>
<html>
  <head><meta charset="utf-8"><title>Pitch Submitted - Play It Loud</title></head>
  <body style="margin:0;padding:0;font-family:-apple-system,'Segoe UI',Roboto,Arial,sans-serif;background-color:#ffffff;color:#333333;">
    <table role="presentation" style="width:100%;border-collapse:collapse;">
      <tr><td align="center" style="padding:40px 20px;">
        <table role="presentation" style="max-width:600px;width:100%;border-collapse:collapse;">
          <tr><td align="center" style="padding-bottom:30px;">
            <h1 style="margin:0;color:#1a0a2e;font-size:32px;">Play It Loud</h1>
          </td></tr>
          <tr><td style="background-color:#f8f9fa;border-radius:12px;padding:40px 30px;border:1px solid #e9ecef;">
            <h2 style="margin:0 0 20px 0;color:#1a0a2e;font-size:24px;">Pitch Submitted Successfully!</h2>
            <p style="margin:0 0 20px 0;color:#495057;font-size:16px;line-height:1.6;">Hi{{if .Name}} {{.Name}}{{end}},</p>
            <p style="margin:0 0 20px 0;color:#495057;font-size:16px;line-height:1.6;">
              Thank you for submitting your pitch{{if .PitchTitle}}: <strong>&quot;{{.PitchTitle}}&quot;</strong>{{end}}!
            </p>
            <p style="margin:0 0 20px 0;color:#495057;font-size:16px;line-height:1.6;">
              We've received your submission and our team will review it carefully.
              We typically respond within 2-3 business days.
            </p>
            <p style="margin:0;color:#6c757d;font-size:14px;line-height:1.6;">
              If you have any questions or need to update your submission, please don't hesitate to contact us.
            </p>
          </td></tr>
          <tr><td align="center" style="padding-top:30px;">
            <p style="margin:0;color:#6c757d;font-size:14px;">&copy; 2025 Play It Loud. All rights reserved.</p>
            <p style="margin:10px 0 0 0;color:#adb5bd;font-size:12px;">You're receiving this email because you submitted a pitch to Play It Loud.</p>
          </td></tr>
        </table>
      </td></tr>
    </table>
  </body>
</html>`))

// WaitlistConfirmation renders the waitlist signup confirmation message.
func WaitlistConfirmation(to, fullName string) (*Message, error) {
	var body bytes.Buffer
	if err := waitlistTemplate.Execute(&body, struct{ FullName string }{fullName}); err != nil {
		return nil, fmt.Errorf("mail: render waitlist template: %w", err)
	}
	return &Message{To: to, Subject: waitlistSubject, HTML: body.String()}, nil
}

// PitchConfirmation renders the pitch submission confirmation message.
func PitchConfirmation(to, name, pitchTitle string) (*Message, error) {
	var body bytes.Buffer
	if err := pitchTemplate.Execute(&body, struct{ Name, PitchTitle string }{name, pitchTitle}); err != nil {
		return nil, fmt.Errorf("mail: render pitch template: %w", err)
	}
	return &Message{To: to, Subject: pitchSubject, HTML: body.String()}, nil
}
