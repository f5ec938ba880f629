package ses

import (
	"context"
	"fmt"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"sentrydesk/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendSubmissionDigest(ctx context.Context, toEmail, toName string, items []port.DigestItem) error {
	subject := fmt.Sprintf("SentryDesk: %d new report submission(s)", len(items))
	htmlBody := buildDigestHTML(toName, items)
	textBody := buildDigestText(toName, items)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildDigestText(name string, items []port.DigestItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\nNew shift reports were submitted:\n\n", name)
	for _, item := range items {
		fmt.Fprintf(&b, "- %s: %s (%s), %d words\n", item.SiteName, item.Day, item.ReportDate, item.WordCount)
	}
	b.WriteString("\nLog in to review them.\n\nSentryDesk Team")
	return b.String()
}

func buildDigestHTML(name string, items []port.DigestItem) string {
	var rows strings.Builder
	for _, item := range items {
		fmt.Fprintf(&rows, `<tr>
      <td style="padding: 8px; border-bottom: 1px solid #eee;">%s</td>
      <td style="padding: 8px; border-bottom: 1px solid #eee;">%s</td>
      <td style="padding: 8px; border-bottom: 1px solid #eee;">%s</td>
      <td style="padding: 8px; border-bottom: 1px solid #eee; text-align: right;">%d</td>
    </tr>`, item.SiteName, item.Day, item.ReportDate, item.WordCount)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">New report submissions</h2>
  <p>Hi %s,</p>
  <p>The following shift reports were just submitted:</p>
  <table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
    <thead>
      <tr style="background-color: #1F2937; color: white;">
        <th style="padding: 8px; text-align: left;">Site</th>
        <th style="padding: 8px; text-align: left;">Day</th>
        <th style="padding: 8px; text-align: left;">Date</th>
        <th style="padding: 8px; text-align: right;">Words</th>
      </tr>
    </thead>
    <tbody>%s</tbody>
  </table>
  <p>Log in to review them.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">SentryDesk - Security Operations Portal</p>
</body>
</html>`, name, rows.String())
}
