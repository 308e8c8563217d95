package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidCoordinate is returned when a coordinate string cannot be parsed.
	ErrInvalidCoordinate = zerr.New("invalid coordinate")

	// ErrMissingVersion is returned when a coordinate carries no version and
	// none can be inferred from the parent project.
	ErrMissingVersion = zerr.New("coordinate has no version and none could be inferred")

	// ErrMissingGroup is returned when a module descriptor declares no group.
	ErrMissingGroup = zerr.New("module descriptor is missing a group")

	// ErrMissingArtifact is returned when a module descriptor declares no artifact.
	ErrMissingArtifact = zerr.New("module descriptor is missing an artifact")

	// ErrDescriptorNotFound is returned when a module descriptor file does not exist.
	ErrDescriptorNotFound = zerr.New("module descriptor not found")

	// ErrDescriptorReadFailed is returned when a module descriptor cannot be read.
	ErrDescriptorReadFailed = zerr.New("failed to read module descriptor")

	// ErrDescriptorParseFailed is returned when a module descriptor cannot be parsed.
	ErrDescriptorParseFailed = zerr.New("failed to parse module descriptor")

	// ErrWorkspaceNotFound is returned when no workspace manifest is found in
	// the current directory or any of its parents.
	ErrWorkspaceNotFound = zerr.New("could not find workspace manifest")

	// ErrWorkspaceParseFailed is returned when the workspace manifest cannot be parsed.
	ErrWorkspaceParseFailed = zerr.New("failed to parse workspace manifest")

	// ErrCacheCreateFailed is returned when a local cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create local cache directory")

	// ErrCacheWriteFailed is returned when an artifact cannot be written to the local cache.
	ErrCacheWriteFailed = zerr.New("failed to write artifact to local cache")

	// ErrFetchFailed is returned when an artifact cannot be fetched from the
	// remote repository.
	ErrFetchFailed = zerr.New("failed to fetch artifact from remote repository")

	// ErrResolutionFailed is returned when no tier could supply an artifact
	// for a coordinate.
	ErrResolutionFailed = zerr.New("no module found in local or remote repository")

	// ErrNothingToResolve is returned when neither coordinates nor applicable
	// declared dependencies were given.
	ErrNothingToResolve = zerr.New("nothing to resolve")
)
