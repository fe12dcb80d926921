// Package common holds small helpers shared by the service: the temp
// artifact lifecycle used to hand generated workbooks back to callers.
package common

import (
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// EnsureTmpDir creates the artifact directory if it does not exist yet.
func EnsureTmpDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// ArtifactPath allocates a unique path for one generated workbook.
func ArtifactPath(dir string) string {
	return filepath.Join(dir, uuid.NewString()+".xlsx")
}

// RemoveArtifact deletes a generated workbook after the response has been
// delivered. Removal is best-effort: a file that is already gone is fine,
// and no failure here ever reaches the request path.
func RemoveArtifact(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to remove artifact %s: %v", path, err)
	}
}
