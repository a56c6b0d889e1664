// Package notify forwards submission summaries to the support chat.
// Delivery is best-effort and at most once: a failed send is logged and
// dropped, never surfaced to the submitter.
package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/microgrants/grant-portal/src/portal/telegram"
	"github.com/microgrants/grant-portal/src/portal/types"
)

type Dispatcher struct {
	tg           *telegram.Client
	adminBaseURL string
	log          *zap.Logger
}

// NewDispatcher builds a dispatcher. A nil client means credentials were not
// configured; every notification is then skipped.
func NewDispatcher(tg *telegram.Client, adminBaseURL string, log *zap.Logger) *Dispatcher {
	return &Dispatcher{tg: tg, adminBaseURL: adminBaseURL, log: log}
}

// ApplicationSubmitted sends the summary for a freshly persisted
// application. It never returns an error: the submission already succeeded
// and the outcome here must not change that.
func (d *Dispatcher) ApplicationSubmitted(ctx context.Context, app *types.Application) {
	if d.tg == nil {
		d.log.Info("telegram not configured, skipping notification",
			zap.String("applicationId", app.ApplicationID))
		return
	}

	if err := d.tg.SendMessage(ctx, summaryText(app, d.adminBaseURL)); err != nil {
		d.log.Error("telegram notification failed",
			zap.String("applicationId", app.ApplicationID),
			zap.Error(err))
		return
	}

	d.log.Info("telegram notification sent",
		zap.String("applicationId", app.ApplicationID))
}

// summaryText renders the fixed notification template. Long free-text fields
// are excerpted so the message stays readable in chat.
func summaryText(app *types.Application, adminBaseURL string) string {
	var b strings.Builder

	b.WriteString("🆕 *NEW GRANT APPLICATION SUBMITTED*\n\n")
	fmt.Fprintf(&b, "👤 *Applicant:* %s %s\n", app.FirstName, app.LastName)
	fmt.Fprintf(&b, "📧 *Email:* %s\n", app.Email)
	fmt.Fprintf(&b, "📞 *Phone:* %s\n", app.Phone)
	fmt.Fprintf(&b, "🌍 *Location:* %s, %s\n\n", app.City, app.Country)

	fmt.Fprintf(&b, "🎯 *Project:* %s\n", app.ProjectTitle)
	fmt.Fprintf(&b, "💰 *Amount Requested:* $%s\n", app.RequestedAmount)
	fmt.Fprintf(&b, "⏱️ *Duration:* %s\n", app.ProjectDuration)
	fmt.Fprintf(&b, "🏷️ *Field:* %s\n\n", app.ProjectField)

	fmt.Fprintf(&b, "📝 *Project Description:*\n%s\n\n", excerpt(app.ProjectDescription, 200))
	fmt.Fprintf(&b, "🎯 *Target Audience:*\n%s\n\n", excerpt(app.TargetAudience, 150))
	fmt.Fprintf(&b, "💡 *Expected Impact:*\n%s\n\n", excerpt(app.ExpectedImpact, 200))

	fmt.Fprintf(&b, "🆔 *Application ID:* `%s`\n", app.ApplicationID)
	fmt.Fprintf(&b, "🕐 *Submitted:* %s\n\n", app.SubmittedAt.Format(time.RFC1123))
	fmt.Fprintf(&b, "---\n[View All Applications](%s/admin/applications)", adminBaseURL)

	return b.String()
}

// excerpt truncates s to max runes, marking the cut with an ellipsis.
func excerpt(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
