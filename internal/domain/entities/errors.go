package entities

import "errors"

var (
	// ErrConfig is returned when required settings are missing or invalid.
	ErrConfig = errors.New("invalid configuration")
	// ErrDiscovery is returned when the theme root directory cannot be scanned.
	ErrDiscovery = errors.New("failed to discover themes")
	// ErrNoThemes is returned when the scan found no theme directories.
	ErrNoThemes = errors.New("no themes found")
	// ErrNetwork is returned on transport failures or error status codes.
	ErrNetwork = errors.New("network error")
	// ErrResponseParse is returned when the purge service answers with a malformed body.
	ErrResponseParse = errors.New("failed to parse response")
	// ErrPurgeFailed is returned when the purge service reports the job as failed.
	ErrPurgeFailed = errors.New("purge operation failed")
	// ErrPurgeTimeout is returned when polling gives up before the job reaches a terminal state.
	ErrPurgeTimeout = errors.New("purge operation timed out")
	// ErrPurgeResult is returned when one or more providers failed to purge a path.
	ErrPurgeResult = errors.New("some paths failed to purge")
)
