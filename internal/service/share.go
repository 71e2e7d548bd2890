package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// maxLoginAttempts caps the re-login loop. Repeated AuthError means the
// credentials the user keeps entering are bad; without the cap a stored
// token the server always rejects would retry forever.
const maxLoginAttempts = 3

type ShareService interface {
	ShareAll(paths []string) error
}

type shareService struct {
	configService ConfigService
	tokenService  TokenService
	clipboard     ClipboardService
	newClient     func(server string) SeafileService
	terminal      bool

	// dialog is selected once the config is known, unless injected.
	dialog Dialog
	// forceLogin survives across paths within one invocation, like the
	// cached token itself.
	forceLogin bool
}

func newShareService(
	configService ConfigService,
	tokenService TokenService,
	clipboard ClipboardService,
	newClient func(server string) SeafileService,
	terminal bool,
) ShareService {
	return &shareService{
		configService: configService,
		tokenService:  tokenService,
		clipboard:     clipboard,
		newClient:     newClient,
		terminal:      terminal,
	}
}

// ShareAll processes each path fully and independently, strictly one after
// the other. A failed path never stops the remaining ones.
func (s *shareService) ShareAll(paths []string) error {
	if len(paths) == 0 {
		if s.dialog == nil {
			s.dialog = selectDialog(s.terminal, "")
		}
		s.dialog.Error("No files given.")
		return nil
	}

	if err := s.configService.Setup(); err != nil {
		return err
	}
	cfg, err := s.configService.Get()
	if err != nil {
		return err
	}
	if s.dialog == nil {
		s.dialog = selectDialog(s.terminal, cfg.Dialog)
	}

	client := s.newClient(cfg.Server)
	for _, path := range paths {
		s.share(client, path)
	}
	return nil
}

// share runs one path to success or terminal failure. AuthError forces a
// fresh login and a full restart of the run; everything else ends it.
func (s *shareService) share(client SeafileService, path string) {
	for attempt := 1; ; attempt++ {
		err := s.run(client, path)
		if err == nil {
			return
		}

		if IsAuthError(err) {
			logrus.Errorf("authentication failed: %v", err)
			logrus.Debugf("authentication failure detail: %+v", err)
			if attempt < maxLoginAttempts {
				s.forceLogin = true
				continue
			}
			s.dialog.Error(fmt.Sprintf("Authentication failed: %v", err))
			return
		}

		if IsPermanentError(err) {
			logrus.Errorf("%v", err)
			logrus.Debugf("failure detail: %+v", err)
			s.dialog.Error(err.Error())
			return
		}

		logrus.Errorf("unexpected failure: %v", err)
		logrus.Debugf("failure detail: %+v", err)
		s.dialog.Error(fmt.Sprintf("Unknown Error: %v", err))
		return
	}
}

func (s *shareService) run(client SeafileService, path string) error {
	s.dialog.ProgressStart()
	defer s.dialog.ProgressStop()

	if err := s.openSession(client); err != nil {
		return err
	}

	s.dialog.ProgressReport(33, "Looking up repositories...")
	repos, err := client.ListRepositories()
	if err != nil {
		return err
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return &PermanentError{Message: fmt.Sprintf("cannot resolve %s", path), Err: err}
	}
	match := MatchRepository(repos, absPath)
	if !match.Found() {
		return &PermanentError{Message: fmt.Sprintf("no repository found for %s", absPath)}
	}
	logrus.Debugf("matched %s to repository %s as %s", absPath, match.RepoID, match.Path)

	s.dialog.ProgressReport(66, "Creating share link...")
	link, err := client.CreateLink(match.RepoID, match.Path)
	if err != nil {
		return err
	}

	s.dialog.ProgressReport(100, "")
	s.dialog.ProgressStop()
	s.dialog.Info(link)
	if err := s.clipboard.Write(link); err != nil {
		return err
	}
	logrus.Debugf("share link for %s copied to clipboard: %s", path, link)
	return nil
}

// openSession installs the cached token, or prompts for credentials and
// logs in when there is none or a fresh login was forced. A new token
// overwrites the cached one.
func (s *shareService) openSession(client SeafileService) error {
	if !s.forceLogin {
		token, err := s.tokenService.Load()
		if err == nil && token != "" {
			client.SetToken(token)
			return nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			logrus.Debugf("cannot read cached token: %v", err)
		}
	}

	username, err := s.dialog.Ask("Username", false)
	if err != nil {
		return err
	}
	password, err := s.dialog.Ask("Password", true)
	if err != nil {
		return err
	}
	token, err := client.Login(username, password)
	if err != nil {
		return err
	}
	if err := s.tokenService.Save(token); err != nil {
		logrus.Errorf("cannot cache token: %v", err)
	}
	s.forceLogin = false
	return nil
}
