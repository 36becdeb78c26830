// Package steps provides step definitions for the BDD integration tests. The
// suite boots one fully wired API server backed by in-memory SQLite and
// miniredis, with a controllable clock, and drives it over HTTP.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/budgetwise/backend/config"
	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/infra/dependency"
	"github.com/budgetwise/backend/internal/integration/adapters"
	"github.com/budgetwise/backend/internal/integration/persistence"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
	"github.com/budgetwise/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var (
	serverOnce sync.Once
	testServer *httptest.Server
	testDB     *mock.Db
	testRedis  *redis.Client
	testClock  *mock.Time
	testTokens adapter.TokenService
)

// testContext holds per-scenario state.
type testContext struct {
	client  *http.Client
	headers map[string]string

	response *response

	accessToken       string
	refreshToken      string
	savedRefreshToken string

	currentUserID uuid.UUID
	utilityID     uuid.UUID
	billID        uuid.UUID
	budgetID      uuid.UUID
	transactionID uuid.UUID
	reminderID    uuid.UUID
}

type response struct {
	status int
	body   any
	raw    []byte
}

// startServer boots the API once for the whole suite. Scenario isolation
// comes from clearing the database and Redis between scenarios.
func startServer() {
	serverOnce.Do(func() {
		gin.SetMode(gin.TestMode)

		testDB = mock.NewDb(map[string]any{
			"users":        &model.UserModel{},
			"utilities":    &model.UtilityModel{},
			"bills":        &model.BillModel{},
			"budgets":      &model.BudgetModel{},
			"transactions": &model.TransactionModel{},
			"reminders":    &model.ReminderModel{},
		})
		testRedis = mock.NewRedis()
		testClock = mock.NewTime()

		sessionStore := persistence.NewSessionStore(testRedis)
		testTokens = adapters.NewTokenService(testJWTSecret, sessionStore)

		cfg := &config.Config{
			Server: config.ServerConfig{Environment: "test"},
			JWT:    config.JWTConfig{Secret: testJWTSecret},
		}

		injector := dependency.NewInjector(cfg, testDB.DbConn, testRedis, testClock)
		testServer = httptest.NewServer(injector.Router.Setup("test"))
	})
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		startServer()
	})

	ctx.AfterSuite(func() {
		if testServer != nil {
			testServer.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	startServer()

	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.reset()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the current date is "([^"]*)"$`, test.theCurrentDateIs)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^I remember the refresh token$`, test.iRememberTheRefreshToken)
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Domain setup steps
	ctx.Given(`^an active utility "([^"]*)" exists with default day (\d+) and amount "([^"]*)"$`, test.anActiveUtilityExists)
	ctx.Given(`^an inactive utility "([^"]*)" exists$`, test.anInactiveUtilityExists)
	ctx.Given(`^a bill for the utility is due on "([^"]*)" with amount "([^"]*)" and status "([^"]*)"$`, test.aBillForTheUtilityExists)
	ctx.Given(`^a transaction "([^"]*)" of type "([^"]*)" in category "([^"]*)" with amount "([^"]*)" on "([^"]*)" exists$`, test.aTransactionExists)
	ctx.Given(`^a budget for category "([^"]*)" with limit "([^"]*)" from "([^"]*)" to "([^"]*)" exists$`, test.aBudgetExists)
	ctx.Given(`^an unsent "([^"]*)" reminder for the bill dated "([^"]*)" exists$`, test.anUnsentReminderExists)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response list "([^"]*)" should have (\d+) items$`, test.theResponseListShouldHaveItems)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) reset() {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.refreshToken = ""
	t.savedRefreshToken = ""
	t.currentUserID = uuid.Nil
	t.utilityID = uuid.Nil
	t.billID = uuid.Nil
	t.budgetID = uuid.Nil
	t.transactionID = uuid.Nil
	t.reminderID = uuid.Nil

	testClock.Set(time.Now().UTC())

	if testDB != nil {
		if err := testDB.ClearDB(); err != nil {
			panic("failed to clear test database: " + err.Error())
		}
	}
	if testRedis != nil {
		if err := mock.ClearRedis(testRedis); err != nil {
			panic("failed to clear test redis: " + err.Error())
		}
	}
}
