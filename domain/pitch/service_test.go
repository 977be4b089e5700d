package pitch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/playitloud/waitlist-api/internal/log"
	"github.com/playitloud/waitlist-api/internal/models"
	apperrors "github.com/playitloud/waitlist-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type stubSender struct {
	err  error
	sent []string
}

func (s *stubSender) SendPitchConfirmation(ctx context.Context, email, name, pitchTitle string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.sent = append(s.sent, email)
	return "stub-message-id", nil
}

func validRequest() *SubmitPitchRequest {
	return &SubmitPitchRequest{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "+256 700 123456",
		Title:       "My Debut EP",
		Description: "Five tracks of Kampala afro-fusion.",
		URL:         "https://soundcloud.com/jane/debut-ep",
	}
}

func TestPitchService_SubmitPitch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockPitchRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()

	t.Run("successful submission sends confirmation", func(t *testing.T) {
		sender := &stubSender{}
		service := NewPitchService(logger, mockRepo, sender)

		mockRepo.EXPECT().
			CreateSubmission(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, submission *models.PitchSubmission) (*models.PitchSubmission, error) {
				assert.Equal(t, models.PitchTypeURL, submission.Type)
				assert.Equal(t, models.PitchStatusPending, submission.Status)
				submission.ID = 1
				submission.CreatedAt = time.Now()
				return submission, nil
			})

		result, err := service.SubmitPitch(context.Background(), validRequest())

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, "My Debut EP", result.Title)
		assert.Equal(t, models.PitchStatusPending, result.Status)
		assert.Equal(t, []string{"jane@example.com"}, sender.sent)
	})

	t.Run("email send failure still reports success", func(t *testing.T) {
		sender := &stubSender{err: errors.New("smtp: connection refused")}
		service := NewPitchService(logger, mockRepo, sender)

		mockRepo.EXPECT().
			CreateSubmission(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, submission *models.PitchSubmission) (*models.PitchSubmission, error) {
				submission.ID = 2
				return submission, nil
			})

		result, err := service.SubmitPitch(context.Background(), validRequest())

		assert.NoError(t, err)
		assert.NotNil(t, result)
	})

	t.Run("store failure surfaces without email send", func(t *testing.T) {
		sender := &stubSender{}
		service := NewPitchService(logger, mockRepo, sender)

		mockRepo.EXPECT().
			CreateSubmission(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewDatabaseError("unable to create pitch submission", errors.New("connection refused")))

		result, err := service.SubmitPitch(context.Background(), validRequest())

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Empty(t, sender.sent)
	})

	t.Run("nil request", func(t *testing.T) {
		service := NewPitchService(logger, mockRepo, &stubSender{})

		result, err := service.SubmitPitch(context.Background(), nil)

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestPitchService_ListPitches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockPitchRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewPitchService(logger, mockRepo, &stubSender{})

	t.Run("returns submissions newest first", func(t *testing.T) {
		mockRepo.EXPECT().GetAllSubmissions(gomock.Any()).Return([]*models.PitchSubmission{
			{ID: 2, Title: "Second", CreatedAt: time.UnixMilli(200)},
			{ID: 1, Title: "First", CreatedAt: time.UnixMilli(100)},
		}, nil)

		responses, err := service.ListPitches(context.Background())

		assert.NoError(t, err)
		assert.Len(t, responses, 2)
		assert.Equal(t, uint(2), responses[0].ID)
	})

	t.Run("empty collection yields empty slice, not nil", func(t *testing.T) {
		mockRepo.EXPECT().GetAllSubmissions(gomock.Any()).Return(nil, nil)

		responses, err := service.ListPitches(context.Background())

		assert.NoError(t, err)
		assert.NotNil(t, responses)
		assert.Empty(t, responses)
	})
}

func TestSubmitPitchRequest_Validate(t *testing.T) {
	t.Run("valid request has no errors", func(t *testing.T) {
		assert.Empty(t, validRequest().Validate())
	})

	t.Run("all failures reported together", func(t *testing.T) {
		req := &SubmitPitchRequest{
			Name:        "J",
			Email:       "not-an-email",
			Phone:       "abc",
			Title:       "ab",
			Description: "too short",
			URL:         "ftp://example.com/file",
		}

		errs := req.Validate()

		assert.Len(t, errs, 6)
		fields := make([]string, 0, len(errs))
		for _, e := range errs {
			fields = append(fields, e.Field)
		}
		assert.Equal(t, []string{"name", "email", "phone", "title", "description", "url"}, fields)
	})

	t.Run("url must be absolute http or https", func(t *testing.T) {
		req := validRequest()
		req.URL = "soundcloud.com/jane"
		errs := req.Validate()
		assert.Len(t, errs, 1)
		assert.Equal(t, "url", errs[0].Field)
	})

	t.Run("length checks apply after trimming", func(t *testing.T) {
		req := validRequest()
		req.Name = "  J  "
		errs := req.Validate()
		assert.Len(t, errs, 1)
		assert.Equal(t, "name", errs[0].Field)
	})
}
