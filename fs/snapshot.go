// Package fs saves preview results as markdown files.
package fs

import (
	"bytes"
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ukeeper/ukadmin"
	"gopkg.in/yaml.v3"
)

// URLToPath converts a previewed URL to a relative file path under its host.
// Example: https://example.com/news/2024/item → example.com/news/2024/item.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", ukadmin.Errorf(ukadmin.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Host == "" {
		return "", ukadmin.Errorf(ukadmin.EINVALID, "URL %q has no host", rawURL)
	}

	path := strings.TrimPrefix(u.Path, "/")
	switch {
	case path == "":
		path = "index.md"
	case strings.HasSuffix(path, "/"):
		path += "index.md"
	default:
		path += ".md"
	}

	path = filepath.FromSlash(path)
	if !filepath.IsLocal(u.Host) || strings.ContainsAny(u.Host, `/\`) || !filepath.IsLocal(path) {
		return "", ukadmin.Errorf(ukadmin.EINVALID, "URL %q escapes the snapshot directory", rawURL)
	}
	return filepath.Join(u.Host, path), nil
}

// frontmatter is the YAML header of a snapshot file.
type frontmatter struct {
	Source    string `yaml:"source"`
	Title     string `yaml:"title,omitempty"`
	Excerpt   string `yaml:"excerpt,omitempty"`
	Extracted string `yaml:"extracted"`
}

// FormatSnapshot formats a preview result with YAML frontmatter followed by
// body.
func FormatSnapshot(res *ukadmin.PreviewResult, body string, now time.Time) (string, error) {
	title, _ := res.Field(ukadmin.SlotTitle)
	excerpt, _ := res.Field(ukadmin.SlotExcerpt)

	var b bytes.Buffer
	b.WriteString("---\n")
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	err := enc.Encode(frontmatter{
		Source:    res.URL,
		Title:     title,
		Excerpt:   excerpt,
		Extracted: now.Format("2006-01-02"),
	})
	if err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	b.WriteString("---\n\n")
	b.WriteString(body)
	return b.String(), nil
}

// SnapshotStore writes snapshots with atomic update semantics.
// Files are saved to a temporary directory, then moved on Commit.
type SnapshotStore struct {
	baseDir string
	name    string
}

// NewSnapshotStore creates a new SnapshotStore.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewSnapshotStore(baseDir, name string) *SnapshotStore {
	return &SnapshotStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *SnapshotStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *SnapshotStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes the snapshot of res with the rendered body.
func (s *SnapshotStore) Save(ctx context.Context, res *ukadmin.PreviewResult, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath, err := URLToPath(res.URL)
	if err != nil {
		return err
	}
	fullPath := filepath.Join(s.tempDir(), relPath)
	if rel, err := filepath.Rel(s.tempDir(), fullPath); err != nil || !filepath.IsLocal(rel) {
		return ukadmin.Errorf(ukadmin.EINVALID, "URL %q escapes the snapshot directory", res.URL)
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content, err := FormatSnapshot(res, body, time.Now())
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(content), 0644)
}

// Commit replaces the final directory with the saved files. The final
// directory is left untouched when nothing was saved.
func (s *SnapshotStore) Commit() error {
	if _, err := os.Stat(s.tempDir()); err != nil {
		if os.IsNotExist(err) {
			return ukadmin.Errorf(ukadmin.ENOTFOUND, "no snapshots to commit")
		}
		return err
	}
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the saved files.
func (s *SnapshotStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// Dir returns the directory the files end up in after Commit.
func (s *SnapshotStore) Dir() string {
	return s.finalDir()
}
