package compose

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

// ErrTemplateNotFound marks a missing template directory, typically an
// unsupported framework/language combination.
var ErrTemplateNotFound = errors.New("template directory not found")

// Placeholders binds token names to their substituted values. Tokens are
// identifiers (e.g. "projectName"); they are replaced only when they appear
// as whole words.
type Placeholders map[string]string

// tokenPattern returns the exact-token pattern for one placeholder.
func tokenPattern(token string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(token) + `\b`)
}

// Substitute replaces every whole-word occurrence of each placeholder token
// in content. Tokens are applied in sorted order so the result is stable.
func (p Placeholders) Substitute(content string) string {
	tokens := make([]string, 0, len(p))
	for t := range p {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)

	for _, t := range tokens {
		content = tokenPattern(t).ReplaceAllLiteralString(content, p[t])
	}
	return content
}

// Compose mirrors templateDir from fsys into destRoot, substituting
// placeholder tokens in both file contents and path segments. Intermediate
// destination directories are created as needed; existing files are
// overwritten (generation owns these paths — see Inject for the ones it
// does not).
func Compose(fsys fs.FS, templateDir, destRoot string, placeholders Placeholders) error {
	return walk(fsys, templateDir, destRoot, placeholders, false)
}

// ComposeVerbatim mirrors templateDir into destRoot byte for byte. Used for
// template families where no substitution is semantically safe.
func ComposeVerbatim(fsys fs.FS, templateDir, destRoot string) error {
	return walk(fsys, templateDir, destRoot, nil, false)
}

// Inject mirrors templateDir into destRoot with substitution, but skips any
// file that already exists at the destination. It returns the relative paths
// it skipped. A prior partial run's output is never overwritten.
func Inject(fsys fs.FS, templateDir, destRoot string, placeholders Placeholders) ([]string, error) {
	return walkCollect(fsys, templateDir, destRoot, placeholders, true)
}

func walk(fsys fs.FS, templateDir, destRoot string, placeholders Placeholders, skipExisting bool) error {
	_, err := walkCollect(fsys, templateDir, destRoot, placeholders, skipExisting)
	return err
}

func walkCollect(fsys fs.FS, templateDir, destRoot string, placeholders Placeholders, skipExisting bool) ([]string, error) {
	if _, err := fs.Stat(fsys, templateDir); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateDir)
	}

	var skipped []string
	err := fs.WalkDir(fsys, templateDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(templateDir, path)
		if err != nil {
			return fmt.Errorf("resolving template path %s: %w", path, err)
		}
		destRel := rel
		if placeholders != nil {
			destRel = placeholders.Substitute(rel)
		}
		dest := filepath.Join(destRoot, destRel)

		if d.IsDir() {
			if err := os.MkdirAll(dest, 0755); err != nil {
				return fmt.Errorf("creating directory %s: %w", dest, err)
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		if skipExisting {
			if _, statErr := os.Stat(dest); statErr == nil {
				skipped = append(skipped, destRel)
				return nil
			}
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading template file %s: %w", path, err)
		}
		if placeholders != nil {
			data = []byte(placeholders.Substitute(string(data)))
		}

		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", dest, err)
		}
		if err := os.WriteFile(dest, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", dest, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return skipped, nil
}
