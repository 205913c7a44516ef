package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"

	"github.com/cucumber/godog"
	"golang.org/x/crypto/bcrypt"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc           *TestContext
	client       *http.Client
	response     *http.Response
	responseBody []byte
	mailIDs      map[string]int64
}

// NewStepsContext creates a new steps context with a cookie-carrying client
func NewStepsContext(tc *TestContext) *StepsContext {
	jar, _ := cookiejar.New(nil)
	return &StepsContext{
		tc: tc,
		client: &http.Client{
			Jar: jar,
			// Redirects are asserted on, not followed
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		mailIDs: make(map[string]int64),
	}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	sc.Step(`^the townclerk server is running$`, s.theServerIsRunning)
	sc.Step(`^an admin "([^"]*)" exists with password "([^"]*)"$`, s.anAdminExists)
	sc.Step(`^an agent "([^"]*)" exists with password "([^"]*)"$`, s.anAgentExists)
	sc.Step(`^I log in as "([^"]*)" with password "([^"]*)"$`, s.iLogIn)
	sc.Step(`^I log out$`, s.iLogOut)

	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the response should indicate success$`, s.theResponseShouldIndicateSuccess)
	sc.Step(`^the response should fail with message "([^"]*)"$`, s.theResponseShouldFailWith)

	sc.Step(`^I create a user named "([^"]*)" with email "([^"]*)"$`, s.iCreateUser)
	sc.Step(`^I search users for "([^"]*)"$`, s.iSearchUsers)
	sc.Step(`^the list should contain (\d+) items?$`, s.theListShouldContain)
	sc.Step(`^the list total should be (\d+)$`, s.theListTotalShouldBe)

	sc.Step(`^the mail register is empty$`, s.theMailRegisterIsEmpty)
	sc.Step(`^a mail item "([^"]*)" with subject "([^"]*)" exists$`, s.aMailItemExists)
	sc.Step(`^I mark mail "([^"]*)" as read for user (\d+)$`, s.iMarkMailRead)
	sc.Step(`^I request the next mail id$`, s.iRequestNextMailID)
	sc.Step(`^the next mail id should be (\d+)$`, s.theNextMailIDShouldBe)

	sc.Step(`^I request "([^"]*)"$`, s.iRequestPath)
	sc.Step(`^I should be redirected to "([^"]*)"$`, s.iShouldBeRedirectedTo)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (s *StepsContext) parseEnvelope() (*envelope, error) {
	var env envelope
	if err := json.Unmarshal(s.responseBody, &env); err != nil {
		return nil, fmt.Errorf("failed to parse response %q: %w", string(s.responseBody), err)
	}
	return &env, nil
}

func (s *StepsContext) do(method, path string, body interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, s.tc.ServerURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	s.response, err = s.client.Do(req)
	if err != nil {
		return err
	}

	s.responseBody, err = io.ReadAll(s.response.Body)
	_ = s.response.Body.Close()
	return err
}

// Background steps

func (s *StepsContext) theServerIsRunning() error {
	// Server is already running via TestContext
	return nil
}

func (s *StepsContext) createAdmin(username, password, role string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.tc.DB.Exec(`
		INSERT INTO admins (username, email, role, password_hash)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (username) DO UPDATE SET role = EXCLUDED.role, password_hash = EXCLUDED.password_hash
	`, username, username+"@example.test", role, string(hash)).Error
}

func (s *StepsContext) anAdminExists(username, password string) error {
	return s.createAdmin(username, password, "admin")
}

func (s *StepsContext) anAgentExists(username, password string) error {
	return s.createAdmin(username, password, "agent")
}

// Session steps

func (s *StepsContext) iLogIn(username, password string) error {
	return s.do(http.MethodPost, "/api/login", map[string]string{
		"username": username,
		"password": password,
	})
}

func (s *StepsContext) iLogOut() error {
	return s.do(http.MethodPost, "/api/logout", nil)
}

// Response steps

func (s *StepsContext) theResponseStatusShouldBe(expectedStatus int) error {
	if s.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d: %s", expectedStatus, s.response.StatusCode, string(s.responseBody))
	}
	return nil
}

func (s *StepsContext) theResponseShouldIndicateSuccess() error {
	env, err := s.parseEnvelope()
	if err != nil {
		return err
	}
	if !env.Success {
		return fmt.Errorf("expected success, got failure: %s", env.Message)
	}
	return nil
}

func (s *StepsContext) theResponseShouldFailWith(message string) error {
	env, err := s.parseEnvelope()
	if err != nil {
		return err
	}
	if env.Success {
		return fmt.Errorf("expected failure, got success")
	}
	if env.Message != message {
		return fmt.Errorf("expected message %q, got %q", message, env.Message)
	}
	return nil
}

// User steps

func (s *StepsContext) iCreateUser(name, email string) error {
	return s.do(http.MethodPost, "/api/users", map[string]string{
		"name":  name,
		"email": email,
	})
}

func (s *StepsContext) iSearchUsers(search string) error {
	return s.do(http.MethodGet, "/api/users?query="+search, nil)
}

type listData struct {
	Items      json.RawMessage `json:"data"`
	Pagination struct {
		Total      int64 `json:"total"`
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		TotalPages int   `json:"totalPages"`
	} `json:"pagination"`
}

func (s *StepsContext) parseList() (*listData, error) {
	env, err := s.parseEnvelope()
	if err != nil {
		return nil, err
	}
	var list listData
	if err := json.Unmarshal(env.Data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse list data: %w", err)
	}
	return &list, nil
}

func (s *StepsContext) theListShouldContain(count int) error {
	list, err := s.parseList()
	if err != nil {
		return err
	}
	var items []json.RawMessage
	if err := json.Unmarshal(list.Items, &items); err != nil {
		return fmt.Errorf("failed to parse list items: %w", err)
	}
	if len(items) != count {
		return fmt.Errorf("expected %d items, got %d", count, len(items))
	}
	return nil
}

func (s *StepsContext) theListTotalShouldBe(total int) error {
	list, err := s.parseList()
	if err != nil {
		return err
	}
	if list.Pagination.Total != int64(total) {
		return fmt.Errorf("expected total %d, got %d", total, list.Pagination.Total)
	}
	return nil
}

// Mail steps

func (s *StepsContext) theMailRegisterIsEmpty() error {
	return s.tc.DB.Exec(`TRUNCATE mail_reads, mail_in RESTART IDENTITY CASCADE`).Error
}

func (s *StepsContext) aMailItemExists(reference, subject string) error {
	var id int64
	err := s.tc.DB.Raw(`
		INSERT INTO mail_in (reference, subject) VALUES (?, ?) RETURNING id
	`, reference, subject).Scan(&id).Error
	if err != nil {
		return err
	}
	s.mailIDs[reference] = id
	return nil
}

func (s *StepsContext) iMarkMailRead(reference string, userID int) error {
	id, ok := s.mailIDs[reference]
	if !ok {
		return fmt.Errorf("unknown mail reference %q", reference)
	}
	return s.do(http.MethodPut, fmt.Sprintf("/api/mail-in/%d/mark-read", id), map[string]int{
		"userId": userID,
	})
}

func (s *StepsContext) iRequestNextMailID() error {
	return s.do(http.MethodGet, "/api/mail-in/next-id", nil)
}

func (s *StepsContext) theNextMailIDShouldBe(expected int) error {
	env, err := s.parseEnvelope()
	if err != nil {
		return err
	}
	var next int64
	if err := json.Unmarshal(env.Data, &next); err != nil {
		return fmt.Errorf("failed to parse next id data: %w", err)
	}
	if next != int64(expected) {
		return fmt.Errorf("expected next id %d, got %d", expected, next)
	}
	return nil
}

// Page steps

func (s *StepsContext) iRequestPath(path string) error {
	return s.do(http.MethodGet, path, nil)
}

func (s *StepsContext) iShouldBeRedirectedTo(location string) error {
	if s.response.StatusCode != http.StatusFound {
		return fmt.Errorf("expected redirect, got status %d", s.response.StatusCode)
	}
	actual := s.response.Header.Get("Location")
	if actual != location {
		return fmt.Errorf("expected redirect to %q, got %q", location, actual)
	}
	return nil
}
