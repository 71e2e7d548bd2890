package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ahanak/SeafileLinkScript/internal/dto"
)

// SeafileService wraps the three remote operations of the Seafile web API
// (base path /api2/) behind a typed interface. A 403 from any authenticated
// call surfaces as AuthError; every other failure, including transport
// errors, is a PermanentError.
type SeafileService interface {
	Login(username, password string) (string, error)
	SetToken(token string)
	ListRepositories() ([]dto.Repository, error)
	CreateLink(repoID, path string) (string, error)
}

type seafileService struct {
	baseURL    string
	httpClient *http.Client
	token      string
	// loggedIn is a local guard only: it says a token was installed, not
	// that the server accepts it. Validity is discovered via 403 responses.
	loggedIn bool
}

func newSeafileService(server string) SeafileService {
	return &seafileService{
		baseURL: strings.TrimSuffix(server, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (s *seafileService) Login(username, password string) (string, error) {
	form := url.Values{
		"username": {username},
		"password": {password},
	}
	resp, err := s.httpClient.PostForm(s.baseURL+"/api2/auth-token/", form)
	if err != nil {
		return "", &PermanentError{Message: "cannot reach server", Err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest, http.StatusForbidden:
		return "", &AuthError{Message: "login rejected by server"}
	default:
		return "", &PermanentError{Message: fmt.Sprintf("unexpected status %s from auth-token", resp.Status)}
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", &PermanentError{Message: "cannot decode auth-token response", Err: err}
	}
	if body.Token == "" {
		return "", &PermanentError{Message: "auth-token response contains no token"}
	}
	s.SetToken(body.Token)
	return body.Token, nil
}

func (s *seafileService) SetToken(token string) {
	s.token = token
	s.loggedIn = true
}

func (s *seafileService) ListRepositories() ([]dto.Repository, error) {
	if !s.loggedIn {
		return nil, &AuthError{Message: "not logged in"}
	}
	req, err := http.NewRequest(http.MethodGet, s.baseURL+"/api2/repos/", nil)
	if err != nil {
		return nil, &PermanentError{Message: "cannot build repository list request", Err: err}
	}
	req.Header.Set("Authorization", "Token "+s.token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &PermanentError{Message: "cannot reach server", Err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden:
		return nil, &AuthError{Message: "server rejected the access token"}
	default:
		return nil, &PermanentError{Message: fmt.Sprintf("unexpected status %s from repos", resp.Status)}
	}

	var repos []dto.Repository
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, &PermanentError{Message: "cannot decode repository list", Err: err}
	}
	logrus.Debugf("server returned %d repositories", len(repos))
	return repos, nil
}

func (s *seafileService) CreateLink(repoID, path string) (string, error) {
	if !s.loggedIn {
		return "", &AuthError{Message: "not logged in"}
	}
	endpoint := fmt.Sprintf("%s/api2/repos/%s/file/shared-link/", s.baseURL, url.PathEscape(repoID))
	form := url.Values{
		"p": {path},
	}
	req, err := http.NewRequest(http.MethodPut, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", &PermanentError{Message: "cannot build shared-link request", Err: err}
	}
	req.Header.Set("Authorization", "Token "+s.token)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", &PermanentError{Message: "cannot reach server", Err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
	case http.StatusForbidden:
		return "", &AuthError{Message: "server rejected the access token"}
	default:
		return "", &PermanentError{Message: fmt.Sprintf("unexpected status %s from shared-link", resp.Status)}
	}

	link := resp.Header.Get("Location")
	if link == "" {
		return "", &PermanentError{Message: "shared-link response carries no Location header"}
	}
	return link, nil
}
