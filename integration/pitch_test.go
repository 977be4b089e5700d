package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/playitloud/waitlist-api/config"
	"github.com/playitloud/waitlist-api/internal/models"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type PitchAPITestSuite struct {
	suite.Suite
	db        *gorm.DB
	server    *httptest.Server
	baseURL   string
	appConfig *config.ApplicationConfig
}

func (suite *PitchAPITestSuite) SetupSuite() {
	suite.appConfig = newTestAppConfig(suite.T())
	suite.db = suite.appConfig.DB

	suite.server = httptest.NewServer(suite.appConfig.RouterService.GetEngine())
	suite.baseURL = suite.server.URL
}

func (suite *PitchAPITestSuite) TearDownSuite() {
	if suite.server != nil {
		suite.server.Close()
	}
	if suite.db != nil {
		sqlDB, _ := suite.db.DB()
		sqlDB.Close()
	}
}

func (suite *PitchAPITestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM pitch_submissions")
}

func (suite *PitchAPITestSuite) submit(body map[string]string) *http.Response {
	jsonBody, _ := json.Marshal(body)

	resp, err := http.Post(suite.baseURL+"/v1/pitches", "application/json", bytes.NewBuffer(jsonBody))
	suite.Require().NoError(err)
	return resp
}

func validPitchBody() map[string]string {
	return map[string]string{
		"name":        "Jane Doe",
		"email":       "jane@example.com",
		"phone":       "+256 700 123456",
		"title":       "My Debut EP",
		"description": "Five tracks of Kampala afro-fusion.",
		"url":         "https://soundcloud.com/jane/debut-ep",
	}
}

func (suite *PitchAPITestSuite) TestSubmitPitch() {
	resp := suite.submit(validPitchBody())
	defer resp.Body.Close()

	suite.Equal(http.StatusCreated, resp.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(resp.Body).Decode(&response)
	suite.Require().NoError(err)

	suite.Equal(float64(201), response["code"])
	suite.Contains(response["message"], "created successfully")

	data := response["data"].(map[string]interface{})
	suite.Equal("My Debut EP", data["title"])
	suite.Equal("url", data["type"])
	suite.Equal("pending", data["status"])
}

func (suite *PitchAPITestSuite) TestSubmitPitchValidationErrors() {
	resp := suite.submit(map[string]string{
		"name":        "J",
		"email":       "not-an-email",
		"phone":       "abc",
		"title":       "ab",
		"description": "too short",
		"url":         "soundcloud.com/jane",
	})
	defer resp.Body.Close()

	suite.Equal(http.StatusBadRequest, resp.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(resp.Body).Decode(&response)
	suite.Require().NoError(err)

	data := response["data"].([]interface{})
	suite.Len(data, 6)

	var count int64
	suite.db.Model(&models.PitchSubmission{}).Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *PitchAPITestSuite) TestResubmissionAllowed() {
	first := suite.submit(validPitchBody())
	first.Body.Close()
	suite.Equal(http.StatusCreated, first.StatusCode)

	// Same submitter, same pitch: no duplicate rejection here.
	second := suite.submit(validPitchBody())
	defer second.Body.Close()
	suite.Equal(http.StatusCreated, second.StatusCode)

	var count int64
	suite.db.Model(&models.PitchSubmission{}).Count(&count)
	suite.Equal(int64(2), count)
}

func (suite *PitchAPITestSuite) TestListPitchesNewestFirst() {
	older := models.PitchSubmission{
		Name: "A", Email: "a@example.com", Phone: "1", Title: "Older",
		Description: "An older submission.", URL: "https://example.com/a",
		Type: models.PitchTypeURL, Status: models.PitchStatusPending,
		CreatedAt: time.Now().Add(-time.Hour),
	}
	newer := models.PitchSubmission{
		Name: "B", Email: "b@example.com", Phone: "2", Title: "Newer",
		Description: "A newer submission.", URL: "https://example.com/b",
		Type: models.PitchTypeURL, Status: models.PitchStatusPending,
		CreatedAt: time.Now(),
	}
	suite.Require().NoError(suite.db.Create(&older).Error)
	suite.Require().NoError(suite.db.Create(&newer).Error)

	resp, err := http.Get(suite.baseURL + "/v1/pitches")
	suite.Require().NoError(err)
	defer resp.Body.Close()

	suite.Equal(http.StatusOK, resp.StatusCode)

	var response map[string]interface{}
	err = json.NewDecoder(resp.Body).Decode(&response)
	suite.Require().NoError(err)

	data := response["data"].([]interface{})
	suite.Require().Len(data, 2)

	firstEntry := data[0].(map[string]interface{})
	suite.Equal("Newer", firstEntry["title"])
}

func TestPitchAPISuite(t *testing.T) {
	// Skip integration tests unless explicitly requested
	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration tests. Set RUN_INTEGRATION_TESTS=true to run them")
	}

	suite.Run(t, new(PitchAPITestSuite))
}
