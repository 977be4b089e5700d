package ops

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/playitloud/waitlist-api/domain/waitlist"
	"github.com/playitloud/waitlist-api/internal/log"
	"github.com/playitloud/waitlist-api/internal/mail"
	"github.com/stretchr/testify/assert"
)

type stubResolver struct {
	report *waitlist.DedupReport
	err    error
}

func (s *stubResolver) ResolveDuplicates(ctx context.Context) (*waitlist.DedupReport, error) {
	return s.report, s.err
}

type stubMailer struct {
	messageID string
	err       error
}

func (s *stubMailer) SendWaitlistConfirmation(ctx context.Context, email, fullName string) (string, error) {
	return s.messageID, s.err
}

func (s *stubMailer) SendPitchConfirmation(ctx context.Context, email, name, pitchTitle string) (string, error) {
	return s.messageID, s.err
}

func performRequest(handler gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	ctx.Request.Header.Set("Content-Type", "application/json")
	handler(ctx)
	return recorder
}

func TestDeleteDuplicatesHandler(t *testing.T) {
	logger := log.NewLoggerWithJSONOutput()

	t.Run("reports the run's tallies", func(t *testing.T) {
		resolver := &stubResolver{report: &waitlist.DedupReport{Total: 3, Deleted: 1, Errors: 0, Final: 2}}

		recorder := performRequest(deleteDuplicatesHandler(resolver, logger), "")

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp dedupResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "Successfully deleted 1 duplicate entries", resp.Message)
		assert.Equal(t, 3, resp.Total)
		assert.Equal(t, 2, resp.Final)
	})

	t.Run("empty collection", func(t *testing.T) {
		resolver := &stubResolver{report: &waitlist.DedupReport{}}

		recorder := performRequest(deleteDuplicatesHandler(resolver, logger), "")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "No users found")
	})

	t.Run("no duplicates", func(t *testing.T) {
		resolver := &stubResolver{report: &waitlist.DedupReport{Total: 2, Final: 2}}

		recorder := performRequest(deleteDuplicatesHandler(resolver, logger), "")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "No duplicates found")
	})

	t.Run("scan failure returns 500 with cause-specific text", func(t *testing.T) {
		resolver := &stubResolver{err: errors.New("pq: permission denied for table waitlist_entries")}

		recorder := performRequest(deleteDuplicatesHandler(resolver, logger), "")

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Permission denied")
	})
}

func TestDedupFailureMessage(t *testing.T) {
	assert.Contains(t, dedupFailureMessage(errors.New("permission denied for table")), "Permission denied")
	assert.Contains(t, dedupFailureMessage(errors.New("dial tcp: connection refused")), "unavailable")
	assert.Contains(t, dedupFailureMessage(errors.New("something else")), "Failed to delete duplicate entries")
}

func TestSendConfirmationHandlers(t *testing.T) {
	logger := log.NewLoggerWithJSONOutput()

	t.Run("missing email is rejected", func(t *testing.T) {
		recorder := performRequest(sendPitchConfirmationHandler(&stubMailer{}, logger), `{"name":"Jane"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Email is required")
	})

	t.Run("successful send returns the message id", func(t *testing.T) {
		mailer := &stubMailer{messageID: "<abc@mailer>"}

		recorder := performRequest(sendPitchConfirmationHandler(mailer, logger), `{"email":"jane@example.com","name":"Jane","pitchTitle":"My EP"}`)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp sendResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "<abc@mailer>", resp.MessageID)
	})

	t.Run("unconfigured transport is a soft success", func(t *testing.T) {
		mailer := &stubMailer{err: mail.ErrNotConfigured}

		recorder := performRequest(sendWaitlistConfirmationHandler(mailer, logger), `{"email":"jane@example.com"}`)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp sendResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Contains(t, resp.Message, "not configured")
		assert.Empty(t, resp.MessageID)
	})

	t.Run("send failure returns 500", func(t *testing.T) {
		mailer := &stubMailer{err: errors.New("smtp: connection refused")}

		recorder := performRequest(sendWaitlistConfirmationHandler(mailer, logger), `{"email":"jane@example.com","fullName":"Jane Doe"}`)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Failed to send email")
	})
}
