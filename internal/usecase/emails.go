package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xavierca1/commission-crm/internal/entity"
)

func callBookedEmail(lctx *entity.LeadContext, callTime, callNotes string) string {
	return fmt.Sprintf(`
	<html>
	<body>
		<h2>New Call Booked</h2>
		<p>Hi %s,</p>
		<p>A new call has been scheduled with you:</p>

		<table style="border-collapse: collapse; margin: 20px 0;">
			<tr><td style="padding: 8px; font-weight: bold;">Lead Name:</td><td style="padding: 8px;">%s</td></tr>
			<tr><td style="padding: 8px; font-weight: bold;">Company:</td><td style="padding: 8px;">%s</td></tr>
			<tr><td style="padding: 8px; font-weight: bold;">Email:</td><td style="padding: 8px;">%s</td></tr>
			<tr><td style="padding: 8px; font-weight: bold;">Phone:</td><td style="padding: 8px;">%s</td></tr>
			<tr><td style="padding: 8px; font-weight: bold;">Scheduled Time:</td><td style="padding: 8px;">%s</td></tr>
		</table>

		<p><strong>Notes:</strong><br>%s</p>

		<p>Good luck with the call!</p>
	</body>
	</html>
	`, lctx.CloserName, lctx.Lead.Name, orNA(lctx.Lead.CompanyName), orNA(lctx.Lead.ContactEmail),
		orNA(lctx.Lead.ContactPhone), callTime, callNotes)
}

func paymentLinkEmail(lctx *entity.LeadContext, dealValue float64, link string) string {
	return fmt.Sprintf(`
	<html>
	<body>
		<h2>Payment Link Ready</h2>
		<p>The payment link for %s has been generated:</p>

		<p><strong>Deal Value:</strong> %s</p>

		<p><a href="%s" style="background-color: #5469d4; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px; display: inline-block;">Payment Link</a></p>

		<p>Share this link with the client to complete the payment.</p>
	</body>
	</html>
	`, lctx.Lead.Name, money(dealValue), link)
}

func newProjectEmail(lctx *entity.LeadContext, dealValue float64) string {
	notes := lctx.Lead.Notes
	if notes == "" {
		notes = "No additional notes"
	}
	return fmt.Sprintf(`
	<html>
	<body>
		<h2>New Production Project Assigned</h2>
		<p>Hi %s,</p>
		<p>A new project has been assigned to you:</p>

		<table style="border-collapse: collapse; margin: 20px 0;">
			<tr><td style="padding: 8px; font-weight: bold;">Client:</td><td style="padding: 8px;">%s</td></tr>
			<tr><td style="padding: 8px; font-weight: bold;">Company:</td><td style="padding: 8px;">%s</td></tr>
			<tr><td style="padding: 8px; font-weight: bold;">Deal Value:</td><td style="padding: 8px;">%s</td></tr>
			<tr><td style="padding: 8px; font-weight: bold;">Contact Email:</td><td style="padding: 8px;">%s</td></tr>
			<tr><td style="padding: 8px; font-weight: bold;">Contact Phone:</td><td style="padding: 8px;">%s</td></tr>
		</table>

		<p><strong>Project Notes:</strong><br>%s</p>

		<p>Please confirm receipt and start working on this project.</p>
	</body>
	</html>
	`, lctx.ProducerName, lctx.Lead.Name, orNA(lctx.Lead.CompanyName), money(dealValue),
		orNA(lctx.Lead.ContactEmail), orNA(lctx.Lead.ContactPhone), notes)
}

func commissionEmail(lctx *entity.LeadContext, dealValue float64, split CommissionSplit) string {
	return fmt.Sprintf(`
	<html>
	<body>
		<h2>Commission Calculation Complete</h2>
		<p>Production has been completed for %s. Here's the commission breakdown:</p>

		<table style="border-collapse: collapse; margin: 20px 0; border: 1px solid #ddd;">
			<tr style="background-color: #f2f2f2;">
				<th style="padding: 12px; text-align: left; border: 1px solid #ddd;">Role</th>
				<th style="padding: 12px; text-align: left; border: 1px solid #ddd;">Team Member</th>
				<th style="padding: 12px; text-align: right; border: 1px solid #ddd;">Commission</th>
			</tr>
			<tr>
				<td style="padding: 12px; border: 1px solid #ddd;">Lead Generator (8%%)</td>
				<td style="padding: 12px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 12px; text-align: right; border: 1px solid #ddd;">%s</td>
			</tr>
			<tr>
				<td style="padding: 12px; border: 1px solid #ddd;">Closer (10%%)</td>
				<td style="padding: 12px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 12px; text-align: right; border: 1px solid #ddd;">%s</td>
			</tr>
			<tr>
				<td style="padding: 12px; border: 1px solid #ddd;">Producer (8%%)</td>
				<td style="padding: 12px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 12px; text-align: right; border: 1px solid #ddd;">%s</td>
			</tr>
			<tr style="background-color: #f2f2f2; font-weight: bold;">
				<td style="padding: 12px; border: 1px solid #ddd;" colspan="2">Total Commission (26%%)</td>
				<td style="padding: 12px; text-align: right; border: 1px solid #ddd;">%s</td>
			</tr>
		</table>

		<p><strong>Deal Value:</strong> %s</p>
		<p><strong>Client:</strong> %s - %s</p>
	</body>
	</html>
	`, lctx.Lead.Name,
		orNA(lctx.LeadGenName), money(split.LeadGen),
		orNA(lctx.CloserName), money(split.Closer),
		orNA(lctx.ProducerName), money(split.Producer),
		money(split.Total),
		money(dealValue), lctx.Lead.Name, orNA(lctx.Lead.CompanyName))
}

func recurringPaymentEmail(lctx *entity.LeadContext, dealValue float64) string {
	return fmt.Sprintf(`
	<html>
	<body>
		<h2>Client Fulfillment Complete</h2>
		<p>The client %s has been fully fulfilled.</p>

		<p><strong>Action Required:</strong> Setup recurring monthly retainer invoice</p>

		<table style="border-collapse: collapse; margin: 20px 0;">
			<tr><td style="padding: 8px; font-weight: bold;">Client:</td><td style="padding: 8px;">%s</td></tr>
			<tr><td style="padding: 8px; font-weight: bold;">Company:</td><td style="padding: 8px;">%s</td></tr>
			<tr><td style="padding: 8px; font-weight: bold;">Initial Deal Value:</td><td style="padding: 8px;">%s</td></tr>
			<tr><td style="padding: 8px; font-weight: bold;">Contact Email:</td><td style="padding: 8px;">%s</td></tr>
		</table>

		<p><strong>Next Steps:</strong></p>
		<ul>
			<li>Set up recurring monthly invoice in Stripe</li>
			<li>Send first retainer invoice</li>
			<li>Add client to active retainer list</li>
		</ul>

		<p>This notification was triggered by the completion of production.</p>
	</body>
	</html>
	`, lctx.Lead.Name, lctx.Lead.Name, orNA(lctx.Lead.CompanyName), money(dealValue), orNA(lctx.Lead.ContactEmail))
}

// money formata um valor em dólar com separador de milhar: 5000 → $5,000.00.
func money(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, frac := s[:len(s)-3], s[len(s)-3:]

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	out := "$" + b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
