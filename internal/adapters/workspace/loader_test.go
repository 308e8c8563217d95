package workspace_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/monday-consulting/modres/internal/adapters/workspace"
	"github.com/monday-consulting/modres/internal/core/domain"
	"github.com/monday-consulting/modres/internal/core/ports/mocks"
)

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()
	return logger
}

const workfileContent = `
group: com.example
artifact: platform
version: 3.0.0
modules:
  - core
  - api
repository:
  url: https://repo.example.com/releases
  cache: .cache/repository
`

// setupWorkspace lays out a workspace with two members and returns its root.
func setupWorkspace(t *testing.T) string {
	t.Helper()

	wsDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(wsDir, domain.WorkspaceFileName), []byte(workfileContent), 0o600))

	writeMember := func(name, content string) {
		dir := filepath.Join(wsDir, name)
		require.NoError(t, os.MkdirAll(dir, 0o750))
		require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ModuleFileName), []byte(content), 0o600))
	}

	writeMember("core", "group: com.example\nartifact: core\nbuild: {}\n")
	writeMember("api", `
group: com.example
artifact: api
version: 3.1.0
build: {}
dependencies:
  - coordinate: com.example:core
    scopes: [compile]
`)
	return wsDir
}

func TestLoader_LoadFromWorkspaceRoot(t *testing.T) {
	t.Parallel()

	wsDir := setupWorkspace(t)
	loader := workspace.NewLoader(quietLogger(t))

	bctx, err := loader.Load(wsDir)
	require.NoError(t, err)

	assert.Equal(t, "com.example", bctx.Current.GroupID)
	assert.Equal(t, "platform", bctx.Current.ArtifactID)
	assert.Equal(t, "3.0.0", bctx.Current.Version)
	assert.Equal(t, domain.WorkspacePackaging, bctx.Current.Packaging)
	assert.Nil(t, bctx.Root(), "the workspace root has no parent")

	assert.Equal(t, "https://repo.example.com/releases", bctx.RepositoryURL)
	assert.Equal(t, filepath.Join(wsDir, ".cache", "repository"), bctx.CacheRoot)
}

func TestLoader_LoadFromMemberDirectory(t *testing.T) {
	t.Parallel()

	wsDir := setupWorkspace(t)
	loader := workspace.NewLoader(quietLogger(t))

	bctx, err := loader.Load(filepath.Join(wsDir, "api"))
	require.NoError(t, err)

	assert.Equal(t, "api", bctx.Current.ArtifactID)
	assert.Equal(t, "3.1.0", bctx.Current.Version, "a member's own version wins over the root's")
	require.NotNil(t, bctx.Root())
	assert.Equal(t, "platform", bctx.Root().ArtifactID)
	assert.Equal(t, wsDir, bctx.Root().BaseDir)

	require.Len(t, bctx.Current.Dependencies, 1)
	assert.Equal(t, "com.example:core", bctx.Current.Dependencies[0].Coordinate.Key())
}

func TestLoader_MemberInheritsRootVersion(t *testing.T) {
	t.Parallel()

	wsDir := setupWorkspace(t)
	loader := workspace.NewLoader(quietLogger(t))

	bctx, err := loader.Load(filepath.Join(wsDir, "core"))
	require.NoError(t, err)

	assert.Equal(t, "3.0.0", bctx.Current.Version)
}

func TestLoader_WalksUpToWorkspace(t *testing.T) {
	t.Parallel()

	wsDir := setupWorkspace(t)
	nested := filepath.Join(wsDir, "core", "src", "deep")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	loader := workspace.NewLoader(quietLogger(t))

	bctx, err := loader.Load(nested)
	require.NoError(t, err)

	// A nested directory without its own descriptor resolves to the root.
	assert.Equal(t, "platform", bctx.Current.ArtifactID)
}

func TestLoader_BuildsReactorIndex(t *testing.T) {
	t.Parallel()

	wsDir := setupWorkspace(t)
	loader := workspace.NewLoader(quietLogger(t))

	bctx, err := loader.Load(wsDir)
	require.NoError(t, err)

	require.Len(t, bctx.Reactor, 2)

	core := bctx.Reactor[0]
	assert.Equal(t, "core", core.ArtifactID)
	assert.Equal(t, "3.0.0", core.Version, "reactor members inherit the root version")
	assert.Equal(t, domain.OriginReactor, core.Origin)
	assert.Same(t, bctx.Current, core.Parent)
	assert.Equal(t, filepath.Join(wsDir, "core", "build", "core-3.0.0.tgz"), core.ArtifactFile)

	api := bctx.Reactor[1]
	assert.Equal(t, "3.1.0", api.Version)
}

func TestLoader_SkipsBrokenReactorMembers(t *testing.T) {
	t.Parallel()

	wsDir := setupWorkspace(t)
	// "core" loses its descriptor; only "api" remains in the reactor.
	require.NoError(t, os.Remove(filepath.Join(wsDir, "core", domain.ModuleFileName)))

	loader := workspace.NewLoader(quietLogger(t))

	bctx, err := loader.Load(wsDir)
	require.NoError(t, err)

	require.Len(t, bctx.Reactor, 1)
	assert.Equal(t, "api", bctx.Reactor[0].ArtifactID)
}

func TestLoader_NoWorkspaceFound(t *testing.T) {
	t.Parallel()

	loader := workspace.NewLoader(quietLogger(t))

	_, err := loader.Load(t.TempDir())
	require.Error(t, err)
	// Use string check for robustness if ErrorIs fails with zerr wrapping
	require.ErrorContains(t, err, domain.ErrWorkspaceNotFound.Error())
}

func TestLoader_ManifestValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "missing group",
			content: "artifact: platform\nversion: 1.0.0\n",
			wantErr: domain.ErrMissingGroup,
		},
		{
			name:    "missing artifact",
			content: "group: com.example\nversion: 1.0.0\n",
			wantErr: domain.ErrMissingArtifact,
		},
		{
			name:    "malformed yaml",
			content: "group: [unclosed\n",
			wantErr: domain.ErrWorkspaceParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			wsDir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(wsDir, domain.WorkspaceFileName), []byte(tt.content), 0o600))

			loader := workspace.NewLoader(quietLogger(t))

			_, err := loader.Load(wsDir)
			require.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestLoader_CacheEnvOverride(t *testing.T) {
	override := t.TempDir()
	t.Setenv(workspace.CacheEnvVar, override)

	wsDir := setupWorkspace(t)
	loader := workspace.NewLoader(quietLogger(t))

	bctx, err := loader.Load(wsDir)
	require.NoError(t, err)
	assert.Equal(t, override, bctx.CacheRoot)
}

func TestLoader_DefaultCachePath(t *testing.T) {
	wsDir := t.TempDir()
	manifest := "group: com.example\nartifact: platform\nversion: 1.0.0\n"
	require.NoError(t, os.WriteFile(filepath.Join(wsDir, domain.WorkspaceFileName), []byte(manifest), 0o600))

	home := t.TempDir()
	t.Setenv("HOME", home)

	loader := workspace.NewLoader(quietLogger(t))

	bctx, err := loader.Load(wsDir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCachePath(home), bctx.CacheRoot)
}
