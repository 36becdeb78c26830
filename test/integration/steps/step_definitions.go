package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

func (t *testContext) theAPIServerIsRunning() error {
	if testServer == nil {
		return errors.New("test server is not running")
	}
	return nil
}

func (t *testContext) theCurrentDateIs(date string) error {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	testClock.Set(parsed.UTC())
	return nil
}

// User setup

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "SecurePass123!")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password)
}

func (t *testContext) createUser(email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           uuid.New(),
		Email:        email,
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := testDB.DbConn.Create(user).Error; err != nil {
		return err
	}

	t.currentUserID = user.ID
	return nil
}

func (t *testContext) iAmLoggedInAs(email string) error {
	var user model.UserModel
	err := testDB.DbConn.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := t.createUser(email, "SecurePass123!"); err != nil {
			return err
		}
		if err := testDB.DbConn.Where("email = ?", email).First(&user).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	t.currentUserID = user.ID

	pair, err := testTokens.GenerateTokenPair(context.Background(), user.ID, user.Email)
	if err != nil {
		return fmt.Errorf("failed to generate token pair: %w", err)
	}
	t.accessToken = pair.AccessToken
	t.refreshToken = pair.RefreshToken
	return nil
}

func (t *testContext) iRememberTheRefreshToken() error {
	if t.refreshToken == "" {
		return errors.New("no refresh token to remember")
	}
	t.savedRefreshToken = t.refreshToken
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

// Domain setup

func (t *testContext) anActiveUtilityExists(provider string, day int, amount string) error {
	return t.createUtility(provider, &day, amount, true)
}

func (t *testContext) anInactiveUtilityExists(provider string) error {
	return t.createUtility(provider, nil, "50.00", false)
}

func (t *testContext) createUtility(provider string, day *int, amount string, active bool) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	utility := &model.UtilityModel{
		ID:            uuid.New(),
		UserID:        t.currentUserID,
		Provider:      provider,
		DefaultDay:    day,
		DefaultAmount: value,
		Active:        active,
		CreatedAt:     testClock.Now(),
	}
	if err := testDB.DbConn.Create(utility).Error; err != nil {
		return err
	}

	t.utilityID = utility.ID
	return nil
}

func (t *testContext) aBillForTheUtilityExists(dueDate, amount, status string) error {
	due, err := time.Parse("2006-01-02", dueDate)
	if err != nil {
		return fmt.Errorf("invalid due date %q: %w", dueDate, err)
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	bill := &model.BillModel{
		ID:        uuid.New(),
		UserID:    t.currentUserID,
		UtilityID: t.utilityID,
		DueDate:   due.UTC(),
		Amount:    value,
		Status:    status,
		CreatedAt: testClock.Now(),
	}
	if status == "paid" {
		paidAt := due.UTC()
		bill.PaidDate = &paidAt
	}
	if err := testDB.DbConn.Create(bill).Error; err != nil {
		return err
	}

	t.billID = bill.ID
	return nil
}

func (t *testContext) aTransactionExists(title, txType, category, amount, date string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	on, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	transaction := &model.TransactionModel{
		ID:        uuid.New(),
		UserID:    t.currentUserID,
		Title:     title,
		Amount:    value,
		Type:      txType,
		Category:  category,
		Date:      on.UTC(),
		CreatedAt: testClock.Now(),
	}
	if err := testDB.DbConn.Create(transaction).Error; err != nil {
		return err
	}

	t.transactionID = transaction.ID
	return nil
}

func (t *testContext) aBudgetExists(category, limit, from, to string) error {
	value, err := decimal.NewFromString(limit)
	if err != nil {
		return fmt.Errorf("invalid limit %q: %w", limit, err)
	}
	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", from, err)
	}
	end, err := time.Parse("2006-01-02", to)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", to, err)
	}

	budget := &model.BudgetModel{
		ID:          uuid.New(),
		UserID:      t.currentUserID,
		Category:    &category,
		AmountLimit: value,
		StartDate:   start.UTC(),
		EndDate:     end.UTC(),
		CreatedAt:   testClock.Now(),
	}
	if err := testDB.DbConn.Create(budget).Error; err != nil {
		return err
	}

	t.budgetID = budget.ID
	return nil
}

func (t *testContext) anUnsentReminderExists(reminderType, date string) error {
	on, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid reminder date %q: %w", date, err)
	}

	reminder := &model.ReminderModel{
		ID:           uuid.New(),
		UserID:       t.currentUserID,
		BillID:       t.billID,
		Type:         reminderType,
		ReminderDate: on.UTC(),
		Sent:         false,
		CreatedAt:    testClock.Now(),
	}
	if err := testDB.DbConn.Create(reminder).Error; err != nil {
		return err
	}

	t.reminderID = reminder.ID
	return nil
}

// Requests

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	replacer := strings.NewReplacer(
		"{{access_token}}", t.accessToken,
		"{{refresh_token}}", t.refreshToken,
		"{{saved_refresh_token}}", t.savedRefreshToken,
		"{{user_id}}", t.currentUserID.String(),
		"{{utility_id}}", t.utilityID.String(),
		"{{bill_id}}", t.billID.String(),
		"{{budget_id}}", t.budgetID.String(),
		"{{transaction_id}}", t.transactionID.String(),
		"{{reminder_id}}", t.reminderID.String(),
	)
	return replacer.Replace(content)
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	url := testServer.URL + path

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
		raw:    raw,
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.response.body = string(raw)
		return nil
	}
	t.response.body = body
	t.captureIdentifiers(body)
	return nil
}

// captureIdentifiers picks ids and tokens out of a response so later steps
// can reference them through placeholders.
func (t *testContext) captureIdentifiers(body map[string]any) {
	if token, ok := body["accessToken"].(string); ok && token != "" {
		t.accessToken = token
	}
	if token, ok := body["refreshToken"].(string); ok && token != "" {
		t.refreshToken = token
	}

	idStr, ok := body["id"].(string)
	if !ok {
		return
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return
	}

	switch {
	case hasKey(body, "provider"):
		t.utilityID = id
	case hasKey(body, "utilityId"):
		t.billID = id
	case hasKey(body, "amountLimit"):
		t.budgetID = id
	case hasKey(body, "title"):
		t.transactionID = id
	}
}

func hasKey(body map[string]any, key string) bool {
	_, ok := body[key]
	return ok
}

// Response assertions

func (t *testContext) theResponseStatusShouldBe(expected int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expected {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expected, t.response.status, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, err := t.responseObject()
	if err != nil {
		return err
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field %q: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expected string) error {
	body, err := t.responseObject()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field %q not found in response: %v", field, body)
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q", field, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body, err := t.responseObject()
	if err != nil {
		return err
	}
	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field %q not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseListShouldHaveItems(field string, expected int) error {
	body, err := t.responseObject()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field %q is not a list: %v", field, value)
	}
	if len(list) != expected {
		return fmt.Errorf("expected %d items in %q, got %d", expected, field, len(list))
	}
	return nil
}

func (t *testContext) responseObject() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

// Database assertions

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	entity, ok := testDB.GetModel(table)
	if !ok {
		return fmt.Errorf("table %q not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	slicePtr := reflect.New(reflect.SliceOf(entityType))

	query := testDB.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	if err := query.Find(slicePtr.Interface()).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	count := slicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in %q with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

// getFieldValue resolves a dot separated path, with numeric segments
// indexing into arrays.
func getFieldValue(object any, dotSeparatedField string) any {
	var field any = object
	for _, segment := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}
		if i, err := strconv.Atoi(segment); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}
		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[segment]
	}
	return field
}
