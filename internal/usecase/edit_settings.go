package usecase

import (
	"errors"
	"strings"

	"github.com/aalvaropc/claudeswitch/internal/domain"
	"github.com/aalvaropc/claudeswitch/internal/ports"
)

// EditSettings changes single env entries of the live settings, taking the
// same backup as an apply.
type EditSettings struct {
	common
	settings ports.SettingsStore
	backups  BackupPolicy
}

func NewEditSettings(settings ports.SettingsStore, backups BackupPolicy, opts ...Option) *EditSettings {
	uc := &EditSettings{common: newCommon(), settings: settings, backups: backups}
	uc.apply(opts)
	return uc
}

func (uc *EditSettings) SetEnv(key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return &domain.OpError{Op: "settings.set_env", Kind: domain.KindInvalidConfig, Err: errors.New("env key is required")}
	}
	return uc.update("settings.set_env", func(s *domain.Settings) bool {
		s.Env = domain.Set(s.Env, key, value)
		return true
	})
}

// UnsetEnv removes key; a missing key is not an error and writes nothing.
func (uc *EditSettings) UnsetEnv(key string) error {
	return uc.update("settings.unset_env", func(s *domain.Settings) bool {
		if _, ok := s.Env[key]; !ok {
			return false
		}
		delete(s.Env, key)
		return true
	})
}

func (uc *EditSettings) update(op string, mutate func(*domain.Settings) bool) error {
	current, existed, err := readForWrite(uc.settings)
	if err != nil {
		return err
	}

	next := current.Clone()
	if !mutate(&next) {
		return nil
	}

	if existed {
		if _, err := uc.backups.snapshot(&uc.common, current); err != nil {
			return err
		}
	}
	if err := uc.settings.Write(next); err != nil {
		uc.log.Error(op+".failed", "err", err)
		return err
	}
	uc.log.Info(op + ".ok")
	return nil
}
