package service

import (
	"fmt"
	"os"

	"github.com/ahanak/SeafileLinkScript/internal/dto"
)

// fakeDialog records every interaction and answers prompts from a queue.
type fakeDialog struct {
	starts   int
	stops    int
	reports  []string
	infos    []string
	failures []string
	prompts  []string
	answers  []string
}

func (d *fakeDialog) ProgressStart() { d.starts++ }

func (d *fakeDialog) ProgressReport(percent int, text string) {
	d.reports = append(d.reports, fmt.Sprintf("%d:%s", percent, text))
}

func (d *fakeDialog) ProgressStop() { d.stops++ }

func (d *fakeDialog) Info(text string) { d.infos = append(d.infos, text) }

func (d *fakeDialog) Error(text string) { d.failures = append(d.failures, text) }

func (d *fakeDialog) Ask(prompt string, _ bool) (string, error) {
	d.prompts = append(d.prompts, prompt)
	if len(d.answers) == 0 {
		return "", &PermanentError{Message: "prompt cancelled"}
	}
	answer := d.answers[0]
	d.answers = d.answers[1:]
	return answer, nil
}

type fakeClipboard struct {
	texts []string
	err   error
}

func (f *fakeClipboard) Write(text string) error {
	if f.err != nil {
		return f.err
	}
	f.texts = append(f.texts, text)
	return nil
}

type fakeTokenStore struct {
	token string
	saved []string
}

func (f *fakeTokenStore) Load() (string, error) {
	if f.token == "" {
		return "", os.ErrNotExist
	}
	return f.token, nil
}

func (f *fakeTokenStore) Save(token string) error {
	f.token = token
	f.saved = append(f.saved, token)
	return nil
}

type stubConfigService struct {
	cfg        dto.Config
	setupCalls int
}

func (s *stubConfigService) Setup() error {
	s.setupCalls++
	return nil
}

func (s *stubConfigService) Get() (dto.Config, error) { return s.cfg, nil }

func (s *stubConfigService) Save(cfg dto.Config) error {
	s.cfg = cfg
	return nil
}
