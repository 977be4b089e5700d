package pitch

import (
	"time"

	"github.com/playitloud/waitlist-api/config/router"
	"github.com/playitloud/waitlist-api/internal/log"
	apperrors "github.com/playitloud/waitlist-api/pkg/errors"
	"github.com/playitloud/waitlist-api/pkg/factory"
	"github.com/playitloud/waitlist-api/pkg/ratelimit"
	"gorm.io/gorm"
)

func NewPitchController(db *gorm.DB, logger *log.Logger, sender ConfirmationSender) *router.RESTController {
	return router.NewVersionedRESTController(
		"PitchController",
		"v1",
		"/pitches",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewPitchRepository(db)
			service := NewPitchService(logger, repository, sender)

			submissionLimiter := createSubmissionRateLimiter()

			rs.AddPostHandler(c, submissionLimiter, "", submitPitchHandler(service))
			rs.AddGetHandler(c, nil, "", listPitchesHandler(service))
		},
	)
}

func createSubmissionRateLimiter() ratelimit.RateLimiter {
	const submissionRequestsPerMinute = 30

	return factory.NewDefaultRateLimiterFactory(submissionRequestsPerMinute, time.Minute, nil, nil).CreateRateLimiter()
}

func submitPitchHandler(service PitchService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req SubmitPitchRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)
			return router.BadRequestResult("Invalid request body", apperrors.FormatValidationErrors(err, &req))
		}

		// All field failures are reported together; nothing is written on
		// validation failure.
		if validationErrors := req.Validate(); len(validationErrors) > 0 {
			return router.BadRequestResult("Invalid request payload", validationErrors)
		}

		response, err := service.SubmitPitch(ctx.Request.Context(), &req)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.CreatedResult(response, "Pitch submission")
	}
}

func listPitchesHandler(service PitchService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		responses, err := service.ListPitches(ctx.Request.Context())
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(responses, "Pitch submissions fetched successfully")
	}
}
