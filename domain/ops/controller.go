// Package ops exposes the maintenance endpoints under /api. Their wire
// shapes predate the versioned envelope and are fixed by existing callers,
// so every handler here writes its response directly.
package ops

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/playitloud/waitlist-api/config/router"
	"github.com/playitloud/waitlist-api/domain/waitlist"
	"github.com/playitloud/waitlist-api/internal/log"
	"github.com/playitloud/waitlist-api/internal/mail"
)

// DuplicateResolver is the slice of the waitlist service this controller
// needs. Satisfied by waitlist.WaitlistService.
type DuplicateResolver interface {
	ResolveDuplicates(ctx context.Context) (*waitlist.DedupReport, error)
}

// ConfirmationMailer is satisfied by *mail.Sender.
type ConfirmationMailer interface {
	SendWaitlistConfirmation(ctx context.Context, email, fullName string) (string, error)
	SendPitchConfirmation(ctx context.Context, email, name, pitchTitle string) (string, error)
}

func NewOpsController(resolver DuplicateResolver, mailer ConfirmationMailer, logger *log.Logger) *router.RESTController {
	return router.NewRESTController(
		"OpsController",
		"api",
		func(rs *router.RouterService, c *router.RESTController) {
			rs.AddRawPostHandler(c, nil, "/delete-duplicates", deleteDuplicatesHandler(resolver, logger))
			rs.AddRawPostHandler(c, nil, "/send-pitch-confirmation", sendPitchConfirmationHandler(mailer, logger))
			rs.AddRawPostHandler(c, nil, "/send-confirmation", sendWaitlistConfirmationHandler(mailer, logger))
		},
	)
}

func deleteDuplicatesHandler(resolver DuplicateResolver, logger *log.Logger) router.MiddlewareFunc {
	return func(ctx *router.RequestContext) {
		report, err := resolver.ResolveDuplicates(ctx.Request.Context())
		if err != nil {
			logger.Error("Duplicate resolution failed", "error", err)
			ctx.JSON(http.StatusInternalServerError, sendResponse{
				Success: false,
				Message: dedupFailureMessage(err),
			})
			return
		}

		ctx.JSON(http.StatusOK, dedupResponse{
			Success: true,
			Message: dedupSuccessMessage(report),
			Total:   report.Total,
			Deleted: report.Deleted,
			Errors:  report.Errors,
			Final:   report.Final,
		})
	}
}

func dedupSuccessMessage(report *waitlist.DedupReport) string {
	switch {
	case report.Total == 0:
		return "No users found"
	case report.Deleted == 0 && report.Errors == 0:
		return "No duplicates found"
	default:
		return fmt.Sprintf("Successfully deleted %d duplicate entries", report.Deleted)
	}
}

// dedupFailureMessage maps the two store failure causes with known remedies
// to specific text; everything else gets the generic message. Matching on
// driver error text is crude but the codes are not surfaced uniformly.
func dedupFailureMessage(err error) string {
	text := strings.ToLower(err.Error())
	switch {
	case strings.Contains(text, "permission denied"):
		return "Permission denied by the data store. Please check the service credentials."
	case strings.Contains(text, "connection refused"), strings.Contains(text, "unavailable"), strings.Contains(text, "no such host"):
		return "The data store is unavailable. Please try again shortly."
	default:
		return "Failed to delete duplicate entries. Please try again."
	}
}

func sendPitchConfirmationHandler(mailer ConfirmationMailer, logger *log.Logger) router.MiddlewareFunc {
	return func(ctx *router.RequestContext) {
		var req sendPitchConfirmationRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, sendResponse{Success: false, Message: "Invalid request body"})
			return
		}
		if strings.TrimSpace(req.Email) == "" {
			ctx.JSON(http.StatusBadRequest, sendResponse{Success: false, Message: "Email is required"})
			return
		}

		messageID, err := mailer.SendPitchConfirmation(ctx.Request.Context(), req.Email, req.Name, req.PitchTitle)
		writeSendResult(ctx, logger, req.Email, messageID, err, "Pitch confirmation email sent successfully")
	}
}

func sendWaitlistConfirmationHandler(mailer ConfirmationMailer, logger *log.Logger) router.MiddlewareFunc {
	return func(ctx *router.RequestContext) {
		var req sendConfirmationRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, sendResponse{Success: false, Message: "Invalid request body"})
			return
		}
		if strings.TrimSpace(req.Email) == "" {
			ctx.JSON(http.StatusBadRequest, sendResponse{Success: false, Message: "Email is required"})
			return
		}

		messageID, err := mailer.SendWaitlistConfirmation(ctx.Request.Context(), req.Email, req.FullName)
		writeSendResult(ctx, logger, req.Email, messageID, err, "Confirmation email sent successfully")
	}
}

// writeSendResult translates a send outcome into the fixed response shape.
// A missing transport is a soft success so environments without mail
// credentials keep working.
func writeSendResult(ctx *router.RequestContext, logger *log.Logger, email, messageID string, err error, successMessage string) {
	if errors.Is(err, mail.ErrNotConfigured) {
		logger.Info("Email service not configured; confirmation skipped", "email", email)
		ctx.JSON(http.StatusOK, sendResponse{
			Success: true,
			Message: "Email service not configured. Please set up SMTP or Gmail credentials",
		})
		return
	}
	if err != nil {
		logger.Error("Failed to send confirmation email", "email", email, "error", err)
		ctx.JSON(http.StatusInternalServerError, sendResponse{Success: false, Message: "Failed to send email"})
		return
	}

	ctx.JSON(http.StatusOK, sendResponse{
		Success:   true,
		Message:   successMessage,
		MessageID: messageID,
	})
}
