package resolver_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/monday-consulting/modres/internal/core/domain"
	"github.com/monday-consulting/modres/internal/core/ports/mocks"
	"github.com/monday-consulting/modres/internal/engine/resolver"
)

// flatLayout is a test repository layout that stores every artifact directly
// under root.
type flatLayout struct {
	root string
}

func (l flatLayout) LocalPath(c domain.Coordinate) string {
	name := c.ArtifactID + "-" + c.Version + "." + c.Extension
	return filepath.Join(l.root, name)
}

func parentProject() *domain.Project {
	return &domain.Project{
		GroupID:    "com.example",
		ArtifactID: "workspace",
		Version:    "2.1.0",
	}
}

func TestRepositoryLocator_ResolvesFromCache(t *testing.T) {
	t.Parallel()

	layout := flatLayout{root: t.TempDir()}
	coord := mustCoordinate(t, "com.example:core:1.0.0")
	require.NoError(t, os.WriteFile(layout.LocalPath(coord), []byte("artifact"), 0o600))

	built := &domain.Project{GroupID: "com.example", ArtifactID: "core", Version: "1.0.0"}

	ctrl := gomock.NewController(t)
	builder := mocks.NewMockDescriptorBuilder(ctrl)
	builder.EXPECT().Build(layout.LocalPath(coord.Descriptor()), gomock.Any()).Return(built, nil)
	fetcher := mocks.NewMockArtifactFetcher(ctrl)

	parent := parentProject()
	locator := resolver.NewRepositoryLocator(parent, layout, builder, fetcher, quietLogger(t))

	project, err := locator.Locate(context.Background(), coord)
	require.NoError(t, err)
	require.NotNil(t, project)
	assert.Equal(t, domain.OriginRepository, project.Origin)
	assert.Equal(t, layout.LocalPath(coord), project.ArtifactFile)
	assert.Same(t, parent, project.Parent)
}

func TestRepositoryLocator_FetchesMissingArtifact(t *testing.T) {
	t.Parallel()

	layout := flatLayout{root: t.TempDir()}
	coord := mustCoordinate(t, "com.example:core:1.0.0")

	built := &domain.Project{GroupID: "com.example", ArtifactID: "core", Version: "1.0.0"}

	ctrl := gomock.NewController(t)
	builder := mocks.NewMockDescriptorBuilder(ctrl)
	builder.EXPECT().Build(layout.LocalPath(coord.Descriptor()), gomock.Any()).Return(built, nil)
	fetcher := mocks.NewMockArtifactFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any(), coord).Return(nil)

	locator := resolver.NewRepositoryLocator(parentProject(), layout, builder, fetcher, quietLogger(t))

	project, err := locator.Locate(context.Background(), coord)
	require.NoError(t, err)
	require.NotNil(t, project)
	assert.Equal(t, layout.LocalPath(coord), project.ArtifactFile)
}

func TestRepositoryLocator_FallsBackToRemoteDescriptor(t *testing.T) {
	t.Parallel()

	layout := flatLayout{root: t.TempDir()}
	coord := mustCoordinate(t, "com.example:core:1.0.0")

	built := &domain.Project{GroupID: "com.example", ArtifactID: "core", Version: "1.0.0"}

	ctrl := gomock.NewController(t)
	builder := mocks.NewMockDescriptorBuilder(ctrl)
	builder.EXPECT().Build(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDescriptorNotFound)
	builder.EXPECT().BuildFromCoordinate(gomock.Any(), coord, gomock.Any()).Return(built, nil)
	fetcher := mocks.NewMockArtifactFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any(), coord).Return(nil)

	locator := resolver.NewRepositoryLocator(parentProject(), layout, builder, fetcher, quietLogger(t))

	project, err := locator.Locate(context.Background(), coord)
	require.NoError(t, err)
	require.NotNil(t, project)
	assert.Equal(t, domain.OriginRepository, project.Origin)
}

func TestRepositoryLocator_RemoteDescriptorFailureIsFatal(t *testing.T) {
	t.Parallel()

	layout := flatLayout{root: t.TempDir()}
	coord := mustCoordinate(t, "com.example:core:1.0.0")

	ctrl := gomock.NewController(t)
	builder := mocks.NewMockDescriptorBuilder(ctrl)
	builder.EXPECT().Build(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDescriptorNotFound)
	builder.EXPECT().BuildFromCoordinate(gomock.Any(), coord, gomock.Any()).Return(nil, domain.ErrFetchFailed)
	fetcher := mocks.NewMockArtifactFetcher(ctrl)

	locator := resolver.NewRepositoryLocator(parentProject(), layout, builder, fetcher, quietLogger(t))

	project, err := locator.Locate(context.Background(), coord)
	require.Error(t, err)
	// Use string check for robustness if ErrorIs fails with zerr wrapping
	require.ErrorContains(t, err, domain.ErrResolutionFailed.Error())
	assert.Nil(t, project)
}

func TestRepositoryLocator_FetchFailureIsFatal(t *testing.T) {
	t.Parallel()

	layout := flatLayout{root: t.TempDir()}
	coord := mustCoordinate(t, "com.example:core:1.0.0")

	built := &domain.Project{GroupID: "com.example", ArtifactID: "core", Version: "1.0.0"}
	fetchErr := errors.New("connection refused")

	ctrl := gomock.NewController(t)
	builder := mocks.NewMockDescriptorBuilder(ctrl)
	builder.EXPECT().Build(gomock.Any(), gomock.Any()).Return(built, nil)
	fetcher := mocks.NewMockArtifactFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any(), coord).Return(fetchErr)

	locator := resolver.NewRepositoryLocator(parentProject(), layout, builder, fetcher, quietLogger(t))

	project, err := locator.Locate(context.Background(), coord)
	require.ErrorIs(t, err, fetchErr)
	assert.Nil(t, project)
}

func TestRepositoryLocator_InfersVersionFromParent(t *testing.T) {
	t.Parallel()

	layout := flatLayout{root: t.TempDir()}
	coord := mustCoordinate(t, "com.example:core")
	inferred := coord.WithVersion("2.1.0")
	require.NoError(t, os.WriteFile(layout.LocalPath(inferred), []byte("artifact"), 0o600))

	built := &domain.Project{GroupID: "com.example", ArtifactID: "core", Version: "2.1.0"}

	ctrl := gomock.NewController(t)
	builder := mocks.NewMockDescriptorBuilder(ctrl)
	builder.EXPECT().Build(layout.LocalPath(inferred.Descriptor()), gomock.Any()).Return(built, nil)
	fetcher := mocks.NewMockArtifactFetcher(ctrl)

	ctrl2 := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl2)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().Info("assuming version 2.1.0 for com.example:core").Times(1)

	locator := resolver.NewRepositoryLocator(parentProject(), layout, builder, fetcher, logger)

	project, err := locator.Locate(context.Background(), coord)
	require.NoError(t, err)
	require.NotNil(t, project)
	assert.Equal(t, layout.LocalPath(inferred), project.ArtifactFile)
}

func TestRepositoryLocator_NoVersionInferenceAcrossGroups(t *testing.T) {
	t.Parallel()

	layout := flatLayout{root: t.TempDir()}
	coord := mustCoordinate(t, "org.other:core")

	ctrl := gomock.NewController(t)
	builder := mocks.NewMockDescriptorBuilder(ctrl)
	fetcher := mocks.NewMockArtifactFetcher(ctrl)

	locator := resolver.NewRepositoryLocator(parentProject(), layout, builder, fetcher, quietLogger(t))

	project, err := locator.Locate(context.Background(), coord)
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrMissingVersion.Error())
	assert.Nil(t, project)
}

func TestRepositoryLocator_MissingVersionWithoutParent(t *testing.T) {
	t.Parallel()

	layout := flatLayout{root: t.TempDir()}
	coord := mustCoordinate(t, "com.example:core")

	ctrl := gomock.NewController(t)
	builder := mocks.NewMockDescriptorBuilder(ctrl)
	fetcher := mocks.NewMockArtifactFetcher(ctrl)

	locator := resolver.NewRepositoryLocator(nil, layout, builder, fetcher, quietLogger(t))

	project, err := locator.Locate(context.Background(), coord)
	require.ErrorContains(t, err, domain.ErrMissingVersion.Error())
	assert.Nil(t, project)
}
