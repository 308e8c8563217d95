package domain

import "path/filepath"

const (
	// ModuleFileName is the name of the module descriptor file.
	ModuleFileName = "module.yaml"

	// WorkspaceFileName is the name of the workspace manifest file.
	WorkspaceFileName = "workspace.yaml"

	// ModresDirName is the name of the per-user modres directory.
	ModresDirName = ".modres"

	// RepositoryDirName is the name of the local repository cache directory.
	RepositoryDirName = "repository"

	// IndexDirName is the name of the fetch provenance index inside the cache.
	IndexDirName = ".index"

	// DefaultPackaging is the packaging assumed when a descriptor names none.
	DefaultPackaging = "tgz"

	// DefaultBuildDirName is the build output directory assumed when a
	// descriptor's build section names none.
	DefaultBuildDirName = "build"

	// WorkspacePackaging is the packaging of the workspace root project.
	WorkspacePackaging = "workspace"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the default local repository cache directory under
// the given home directory.
func DefaultCachePath(home string) string {
	return filepath.Join(home, ModresDirName, RepositoryDirName)
}
