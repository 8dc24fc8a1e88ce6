package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/reqsync/internal/app"
	"go.trai.ch/reqsync/internal/core/domain"
	"go.trai.ch/reqsync/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	loader   *mocks.MockConfigLoader
	source   *mocks.MockRequirementSource
	encoder  *mocks.MockManifestEncoder
	store    *mocks.MockManifestStore
	logger   *mocks.MockLogger
	watchers *mocks.MockWatcherFactory
}

func newTestApp(t *testing.T) (*testMocks, ComponentProvider) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &testMocks{
		loader:   mocks.NewMockConfigLoader(ctrl),
		source:   mocks.NewMockRequirementSource(ctrl),
		encoder:  mocks.NewMockManifestEncoder(ctrl),
		store:    mocks.NewMockManifestStore(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		watchers: mocks.NewMockWatcherFactory(ctrl),
	}
	application := app.New(m.loader, m.source, m.encoder, m.store, m.logger, m.watchers).
		WithStdout(new(bytes.Buffer))

	provider := func(context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: m.logger}, func() {}, nil
	}
	return m, provider
}

func validConfig() *domain.Config {
	return &domain.Config{
		Root:       "/project",
		Version:    domain.ConfigVersion,
		Project:    domain.ProjectMetadata{Name: "demo", Version: "0.1.0"},
		Source:     "/project/requirements.txt",
		Output:     "/project/pyproject.toml",
		Encoding:   domain.EncodingAuto,
		GroupTable: domain.GroupTableDependencyGroups,
	}
}

func TestRun_Success(t *testing.T) {
	_, provider := newTestApp(t)

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
}

func TestRun_InitializationError(t *testing.T) {
	provider := func(context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

func TestRun_ExecutionError(t *testing.T) {
	m, provider := newTestApp(t)
	loadErr := errors.New("load failed")
	m.loader.EXPECT().Load(gomock.Any(), "").Return(nil, loadErr)
	m.logger.EXPECT().Error(loadErr)

	exitCode := run(context.Background(), []string{"generate"}, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

func TestRun_StaleManifestIsNotLoggedTwice(t *testing.T) {
	m, provider := newTestApp(t)
	cfg := validConfig()
	m.loader.EXPECT().Load(gomock.Any(), "reqsync.yaml").Return(cfg, nil)
	m.source.EXPECT().Load(cfg.Source, domain.EncodingAuto).
		Return(&domain.SourceSet{Path: cfg.Source, Files: []string{cfg.Source}}, nil)
	m.encoder.EXPECT().Encode(gomock.Any()).Return([]byte("new\n"), nil)
	m.store.EXPECT().Read(cfg.Output).Return([]byte("old\n"), nil)
	m.logger.EXPECT().Warn(gomock.Any())

	exitCode := run(context.Background(), []string{"check", "-c", "reqsync.yaml"}, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

func TestRun_AppliesOptions(t *testing.T) {
	_, provider := newTestApp(t)

	applied := false
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), provider, func(*app.App) {
		applied = true
	})

	assert.Equal(t, 0, exitCode)
	assert.True(t, applied)
}
