package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Blob store & catalog errors
var (
	ErrStorageUnavailable = errors.New("blob store unavailable")
	ErrBlobOrphan         = errors.New("blob and record out of sync")
	ErrCatalogUnavailable = errors.New("pattern catalog unavailable")
)

// NewStorageUnavailableError marks a blob-store failure as retryable. The
// state named in half ("blob" or "record") is the side that still exists.
func NewStorageUnavailableError(operation, half string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        ErrStorageUnavailable,
		Details:    fmt.Sprintf("Failed to %s; the %s is still intact, retry the delete", operation, half),
		Cause:      cause,
	}
}

// NewBlobOrphanError reports the consistency defect of a blob surviving
// without its record, or a record without its blob. The survivor needs
// manual cleanup or a retry.
func NewBlobOrphanError(survivor, path string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrBlobOrphan,
		Details:    fmt.Sprintf("Orphaned %s left at %s", survivor, path),
		Cause:      cause,
	}
}

func NewCatalogUnavailableError(details string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        ErrCatalogUnavailable,
		Details:    details,
		Cause:      cause,
	}
}

func IsStorageUnavailable(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}

func IsBlobOrphan(err error) bool {
	return errors.Is(err, ErrBlobOrphan)
}
