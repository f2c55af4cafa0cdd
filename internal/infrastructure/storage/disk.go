package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"userdocs-api/config"
)

const maxBaseNameLen = 100

var windowsReserved = map[string]struct{}{
	"con": {}, "prn": {}, "aux": {}, "nul": {},
	"com1": {}, "com2": {}, "com3": {}, "com4": {}, "com5": {}, "com6": {}, "com7": {}, "com8": {}, "com9": {},
	"lpt1": {}, "lpt2": {}, "lpt3": {}, "lpt4": {}, "lpt5": {}, "lpt6": {}, "lpt7": {}, "lpt8": {}, "lpt9": {},
}

// Store keeps uploaded assets as plain files in a single directory. Stored
// names carry a random uuid component, so two concurrent uploads of the same
// file never contend for one path.
type Store struct {
	logger    *zap.Logger
	dir       string
	publicURL string
}

func New(logger *zap.Logger, cfg config.Storage, publicURL string) (*Store, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	return &Store{
		logger:    logger,
		dir:       cfg.UploadDir,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Save streams src into a freshly named file and returns the stored name.
// O_EXCL guarantees an existing asset is never overwritten; with a uuid in the
// name a collision means something is broken, not unlucky.
func (s *Store) Save(src io.Reader, originalName string) (string, error) {
	name := s.genStoredName(originalName)
	dst, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create asset %s: %w", name, err)
	}

	if _, err = io.Copy(dst, src); err != nil {
		dst.Close()
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("write asset %s: %w", name, err)
	}
	if err = dst.Close(); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("close asset %s: %w", name, err)
	}

	return name, nil
}

// Delete is idempotent: removing an asset that is already gone is fine.
func (s *Store) Delete(name string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete asset %s: %w", name, err)
	}
	return nil
}

func (s *Store) PublicURL(name string) string {
	return s.publicURL + "/uploads/" + name
}

func (s *Store) Dir() string { return s.dir }

// genStoredName: "<uuid-hex>_<sanitized-base><ext>"
func (s *Store) genStoredName(originalName string) string {
	clean := sanitizeFileName(originalName)
	ext := strings.ToLower(path.Ext(clean))
	base := strings.TrimSuffix(clean, ext)

	return fmt.Sprintf(
		"%s_%s%s",
		strings.ReplaceAll(uuid.New().String(), "-", ""),
		base,
		ext,
	)
}

// sanitizeFileName makes a client-supplied file name ASCII standard
func sanitizeFileName(original string) string {
	s := strings.TrimSpace(original)
	s = strings.ReplaceAll(s, "\\", "/")
	s = path.Base(s)

	if s == "." || s == ".." || s == "" {
		return "file"
	}

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	s, _, _ = transform.String(t, s)

	ext := strings.ToLower(path.Ext(s))
	base := strings.TrimSuffix(s, ext)

	// [a-z0-9], '-' and '_'; dot/space collapse to '-'
	var b strings.Builder
	b.Grow(len(base))
	prevDash := false
	for _, r := range base {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z':
			b.WriteRune(r)
			prevDash = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
			prevDash = false
		case r == '-', r == '_', r == '.', unicode.IsSpace(r):
			if !prevDash {
				b.WriteRune('-')
				prevDash = true
			}
		default:
		}
	}
	base = strings.Trim(b.String(), "-")

	if base == "" {
		base = "file"
	}
	if _, bad := windowsReserved[base]; bad {
		base = "_" + base
	}
	if len(base)+len(ext) > maxBaseNameLen {
		base = base[:maxBaseNameLen-len(ext)]
	}

	return base + ext
}

func isMn(r rune) bool { return unicode.Is(unicode.Mn, r) }
