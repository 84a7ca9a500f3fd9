package flatfile

import (
	"os"
	"path/filepath"

	"github.com/schoolhub/school-records-hub/internal/domain/shared"
	"github.com/schoolhub/school-records-hub/pkg/logger"
)

// BootstrapFile pairs a data file with the header tag it is created with.
type BootstrapFile struct {
	Path      string
	HeaderTag string
}

// Bootstrap creates the data directory and every backing file that does not
// exist yet, each containing only its header line. Existing files are left
// untouched.
func Bootstrap(dir string, files []BootstrapFile, log *logger.Logger) error {
	if log == nil {
		log = logger.Default()
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return shared.WrapError("flatfile", "Bootstrap",
			shared.ErrFileUnavailable, "creating data directory "+dir, err)
	}

	for _, f := range files {
		if _, err := os.Stat(f.Path); err == nil {
			continue
		}

		content := "[" + f.HeaderTag + "]\n"
		if err := os.WriteFile(f.Path, []byte(content), 0o644); err != nil {
			return shared.WrapError("flatfile", "Bootstrap",
				shared.ErrFileUnavailable, "creating "+f.Path, err)
		}
		log.Info("created data file", logger.FilePath(filepath.Base(f.Path)))
	}
	return nil
}
