package waitlist

import (
	"time"

	"github.com/playitloud/waitlist-api/config/router"
	"github.com/playitloud/waitlist-api/internal/identity"
	"github.com/playitloud/waitlist-api/internal/log"
	apperrors "github.com/playitloud/waitlist-api/pkg/errors"
	"github.com/playitloud/waitlist-api/pkg/factory"
	"github.com/playitloud/waitlist-api/pkg/ratelimit"
	"gorm.io/gorm"
)

func NewWaitlistController(
	db *gorm.DB,
	logger *log.Logger,
	sender ConfirmationSender,
	provider *identity.Provider,
) *router.RESTController {

	return router.NewVersionedRESTController(
		"WaitlistController",
		"v1",
		"/waitlist",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewWaitlistRepository(db)
			service := NewWaitlistService(logger, repository, sender)

			signupLimiter := createSignupRateLimiter()

			rs.AddPostHandler(c, signupLimiter, "", joinWaitlistHandler(service))
			rs.AddRawGetHandler(c, nil, "/google", beginGoogleSignupHandler(provider))
			rs.AddGetHandler(c, nil, "/google/callback", completeGoogleSignupHandler(service, provider))
		},
	)
}

func createSignupRateLimiter() ratelimit.RateLimiter {
	const signupRequestsPerMinute = 30 // More permissive than monitoring (10/min)

	return factory.NewDefaultRateLimiterFactory(signupRequestsPerMinute, time.Minute, nil, nil).CreateRateLimiter()
}

func joinWaitlistHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req JoinWaitlistRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)
			return router.BadRequestResult("Invalid request body", apperrors.FormatValidationErrors(err, &req))
		}

		// All field failures are reported together; nothing is written on
		// validation failure.
		if validationErrors := req.Validate(); len(validationErrors) > 0 {
			return router.BadRequestResult("Invalid request payload", validationErrors)
		}

		response, err := service.JoinWaitlist(ctx.Request.Context(), &req)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.CreatedResult(response, "Waitlist entry")
	}
}

func beginGoogleSignupHandler(provider *identity.Provider) router.MiddlewareFunc {
	return func(ctx *router.RequestContext) {
		if provider == nil {
			ctx.JSON(apperrors.StatusServiceUnavailable, router.ErrorResult(
				apperrors.StatusServiceUnavailable,
				"Google signup is not configured",
				nil,
			).ToJSON())
			return
		}

		provider.Begin(ctx.Writer, ctx.Request)
	}
}

func completeGoogleSignupHandler(service WaitlistService, provider *identity.Provider) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		if provider == nil {
			return router.ErrorResult(apperrors.StatusServiceUnavailable, "Google signup is not configured", nil)
		}

		// Complete terminates the provider session before we touch the store,
		// so no authenticated session outlives this request.
		profile, err := provider.Complete(ctx.Writer, ctx.Request)
		if err != nil {
			logger.Error("Identity handshake failed", "error", err)
			return router.BadRequestResult("Google sign-in failed. Please try again or use the signup form.", nil)
		}

		response, err := service.JoinWithProfile(ctx.Request.Context(), profile)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.CreatedResult(response, "Waitlist entry")
	}
}
