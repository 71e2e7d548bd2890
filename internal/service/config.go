package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ahanak/SeafileLinkScript/internal/dto"
)

const configFilename = ".seafile-link.yaml"

type ConfigService interface {
	Setup() error
	Get() (dto.Config, error)
	Save(cfg dto.Config) error
}

type configService struct {
}

func newConfigService() ConfigService {
	return &configService{}
}

func configPath() (string, error) {
	homedir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get user home directory: %w", err)
	}
	return filepath.Join(homedir, configFilename), nil
}

func (configService) Get() (dto.Config, error) {
	path, err := configPath()
	if err != nil {
		return dto.Config{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return dto.Config{}, fmt.Errorf("cannot open config file: %w", err)
	}
	defer f.Close()

	var cfg dto.Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return dto.Config{}, fmt.Errorf("cannot decode config file: %w", err)
	}
	if cfg.Server == "" {
		return dto.Config{}, fmt.Errorf("config file %s has no server", path)
	}
	cfg.Server = strings.TrimSuffix(cfg.Server, "/")
	return cfg, nil
}

func (configService) Save(cfg dto.Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create config file: %w", err)
	}
	defer f.Close()

	marshaledYaml, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if _, err := f.Write(marshaledYaml); err != nil {
		return fmt.Errorf("cannot write config file: %w", err)
	}
	return nil
}

func (s configService) Setup() error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	logrus.Info("seafile-link is not configured yet, do you want to configure it now?")
	configureNowPrompt := promptui.Prompt{
		Label: "Configure seafile-link now? [y/n]",
		Validate: func(s string) error {
			if strings.ToLower(s) != "y" && strings.ToLower(s) != "n" {
				return fmt.Errorf("invalid input")
			}
			return nil
		},
	}
	configureNow, err := configureNowPrompt.Run()
	if err != nil {
		return fmt.Errorf("prompt failed %w", err)
	}
	if configureNow != "y" {
		os.Exit(0)
	}

	serverPrompt := promptui.Prompt{
		Label: "Enter the URL of the Seafile server (e.g. https://seafile.example.org)",
		Validate: func(s string) error {
			if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
				return fmt.Errorf("invalid server url")
			}
			return nil
		},
	}
	server, err := serverPrompt.Run()
	if err != nil {
		return fmt.Errorf("prompt failed %w", err)
	}
	logrus.Infof("Saving server: %s to ~/%s", server, configFilename)

	if err := s.Save(dto.Config{Server: server}); err != nil {
		return err
	}
	logrus.Info("seafile-link is now configured")
	return nil
}
