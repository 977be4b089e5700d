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

type OpsAPITestSuite struct {
	suite.Suite
	db        *gorm.DB
	server    *httptest.Server
	baseURL   string
	appConfig *config.ApplicationConfig
}

func (suite *OpsAPITestSuite) SetupSuite() {
	suite.appConfig = newTestAppConfig(suite.T())
	suite.db = suite.appConfig.DB

	suite.server = httptest.NewServer(suite.appConfig.RouterService.GetEngine())
	suite.baseURL = suite.server.URL
}

func (suite *OpsAPITestSuite) TearDownSuite() {
	if suite.server != nil {
		suite.server.Close()
	}
	if suite.db != nil {
		sqlDB, _ := suite.db.DB()
		sqlDB.Close()
	}
}

func (suite *OpsAPITestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM waitlist_entries")
}

func (suite *OpsAPITestSuite) post(path, body string) *http.Response {
	resp, err := http.Post(suite.baseURL+path, "application/json", bytes.NewBufferString(body))
	suite.Require().NoError(err)
	return resp
}

func (suite *OpsAPITestSuite) seedEntry(email, phone string, createdAt time.Time) {
	entry := models.WaitlistEntry{
		FullName:  "Seed User",
		Email:     email,
		Phone:     phone,
		CreatedAt: createdAt,
	}
	suite.Require().NoError(suite.db.Create(&entry).Error)
}

func (suite *OpsAPITestSuite) TestDeleteDuplicates() {
	// Legacy data: two records share an email, the younger one must go.
	suite.seedEntry("a@x.com", "100", time.UnixMilli(100))
	suite.seedEntry("a@x.com", "200", time.UnixMilli(50))
	suite.seedEntry("b@x.com", "300", time.UnixMilli(200))

	resp := suite.post("/api/delete-duplicates", "")
	defer resp.Body.Close()

	suite.Equal(http.StatusOK, resp.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(resp.Body).Decode(&response)
	suite.Require().NoError(err)

	suite.Equal(true, response["success"])
	suite.Equal(float64(3), response["total"])
	suite.Equal(float64(1), response["deleted"])
	suite.Equal(float64(0), response["errors"])
	suite.Equal(float64(2), response["final"])

	var survivors []models.WaitlistEntry
	suite.Require().NoError(suite.db.Order("created_at asc").Find(&survivors).Error)
	suite.Require().Len(survivors, 2)
	suite.Equal("a@x.com", survivors[0].Email)
	suite.Equal("200", survivors[0].Phone)
}

func (suite *OpsAPITestSuite) TestDeleteDuplicatesIdempotent() {
	suite.seedEntry("a@x.com", "100", time.UnixMilli(100))
	suite.seedEntry("a@x.com", "200", time.UnixMilli(50))

	first := suite.post("/api/delete-duplicates", "")
	first.Body.Close()
	suite.Equal(http.StatusOK, first.StatusCode)

	second := suite.post("/api/delete-duplicates", "")
	defer second.Body.Close()

	var response map[string]interface{}
	err := json.NewDecoder(second.Body).Decode(&response)
	suite.Require().NoError(err)

	suite.Equal(true, response["success"])
	suite.Contains(response["message"], "No duplicates found")
	suite.Equal(float64(0), response["deleted"])
	suite.Equal(float64(1), response["final"])
}

func (suite *OpsAPITestSuite) TestDeleteDuplicatesEmptyCollection() {
	resp := suite.post("/api/delete-duplicates", "")
	defer resp.Body.Close()

	suite.Equal(http.StatusOK, resp.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(resp.Body).Decode(&response)
	suite.Require().NoError(err)

	suite.Equal(true, response["success"])
	suite.Contains(response["message"], "No users found")
	suite.Equal(float64(0), response["total"])
}

func (suite *OpsAPITestSuite) TestSendConfirmationMissingEmail() {
	resp := suite.post("/api/send-confirmation", `{"fullName":"Jane Doe"}`)
	defer resp.Body.Close()

	suite.Equal(http.StatusBadRequest, resp.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(resp.Body).Decode(&response)
	suite.Require().NoError(err)

	suite.Equal(false, response["success"])
	suite.Contains(response["message"], "Email is required")
}

func (suite *OpsAPITestSuite) TestSendConfirmationWithoutTransport() {
	// No mail credentials in the test environment: soft success.
	resp := suite.post("/api/send-confirmation", `{"email":"jane@example.com","fullName":"Jane Doe"}`)
	defer resp.Body.Close()

	suite.Equal(http.StatusOK, resp.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(resp.Body).Decode(&response)
	suite.Require().NoError(err)

	suite.Equal(true, response["success"])
	suite.Contains(response["message"], "not configured")
	suite.NotContains(response, "messageId")
}

func (suite *OpsAPITestSuite) TestSendPitchConfirmationWithoutTransport() {
	resp := suite.post("/api/send-pitch-confirmation", `{"email":"jane@example.com","name":"Jane","pitchTitle":"My EP"}`)
	defer resp.Body.Close()

	suite.Equal(http.StatusOK, resp.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(resp.Body).Decode(&response)
	suite.Require().NoError(err)

	suite.Equal(true, response["success"])
	suite.Contains(response["message"], "not configured")
}

func TestOpsAPISuite(t *testing.T) {
	// Skip integration tests unless explicitly requested
	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration tests. Set RUN_INTEGRATION_TESTS=true to run them")
	}

	suite.Run(t, new(OpsAPITestSuite))
}
