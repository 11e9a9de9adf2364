package scanner

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/karrick/godirwalk"
)

// sourceExt is the extension of source files the scanner reads.
const sourceExt = ".dart"

// assetPrefixes are the accepted path prefixes for a reference candidate.
// The prefix guard protects against accidental substring matches: a quoted
// literal that merely looks path-like is rejected unless it lives under the
// conventional asset directories.
var assetPrefixes = []string{"assets/", "asset/"}

// constructorPatterns are the fixed extraction patterns applied to every
// source file, in order. Each pattern's first capture group is the
// candidate asset path.
var constructorPatterns = []*regexp.Regexp{
	// Asset-image constructors: AssetImage("...") / ExactAssetImage("...")
	regexp.MustCompile(`(?:Exact)?AssetImage\(\s*["']([^"']+)["']`),

	// Asset-loading convenience calls: Image.asset("..."), SvgPicture.asset("...")
	regexp.MustCompile(`\w+\.asset\(\s*["']([^"']+)["']`),

	// Bundle raw loads: rootBundle.load("...") / rootBundle.loadString("...")
	regexp.MustCompile(`rootBundle\.load(?:String)?\(\s*["']([^"']+)["']`),
}

// Scanner walks a source tree and collects referenced asset paths.
type Scanner struct {
	// root is the source directory to scan, typically <project>/lib.
	root string

	// ignorePatterns are matched case-insensitively against file paths
	// relative to root. Matching files are skipped.
	ignorePatterns []*regexp.Regexp

	// literalPattern matches any quoted literal under an asset directory
	// ending in a recognized extension. Built per-run from the configured
	// extension allow-list.
	literalPattern *regexp.Regexp

	// logger is used for structured debug logging.
	logger *slog.Logger
}

// New creates a Scanner over the given source root.
// assetTypes is the extension allow-list (without leading dot) used to
// build the generic quoted-literal pattern.
func New(root string, ignorePatterns []*regexp.Regexp, assetTypes []string, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}

	quoted := make([]string, 0, len(assetTypes))
	for _, ext := range assetTypes {
		quoted = append(quoted, regexp.QuoteMeta(strings.ToLower(ext)))
	}

	// Any quoted literal beginning with assets/ or asset/ (optionally ./)
	// and ending in a recognized extension, case-insensitive.
	literal := regexp.MustCompile(
		fmt.Sprintf(`(?i)["']((?:\./)?assets?/[^"']+\.(?:%s))["']`, strings.Join(quoted, "|")),
	)

	return &Scanner{
		root:           root,
		ignorePatterns: ignorePatterns,
		literalPattern: literal,
		logger:         logger,
	}
}

// Scan walks the source tree and returns the set of asset paths that
// appear to be referenced from code.
//
// A missing source directory yields an empty set without error: a project
// with no lib/ simply references nothing. An unreadable source file is a
// fatal error; there is no partial-scan recovery.
func (s *Scanner) Scan() (map[string]struct{}, error) {
	refs := make(map[string]struct{})

	if _, err := os.Stat(s.root); os.IsNotExist(err) {
		s.logger.Debug("source directory not found, nothing referenced", "root", s.root)
		return refs, nil
	}

	err := godirwalk.Walk(s.root, &godirwalk.Options{
		Callback: func(osPathname string, de *godirwalk.Dirent) error {
			if de.IsDir() {
				return nil
			}
			if !strings.HasSuffix(osPathname, sourceExt) {
				return nil
			}

			rel, err := filepath.Rel(s.root, osPathname)
			if err != nil {
				return err
			}
			if s.ignored(filepath.ToSlash(rel)) {
				s.logger.Debug("skipping ignored source file", "path", rel)
				return nil
			}

			data, err := os.ReadFile(osPathname) //nolint:gosec // Paths come from walking the user's own project
			if err != nil {
				return fmt.Errorf("failed to read source file %s: %w", osPathname, err)
			}

			s.extract(string(data), refs)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("reference scan complete", "root", s.root, "references", len(refs))
	return refs, nil
}

// ignored reports whether a root-relative path matches any ignore pattern.
func (s *Scanner) ignored(rel string) bool {
	for _, re := range s.ignorePatterns {
		if re.MatchString(rel) {
			return true
		}
	}
	return false
}

// extract applies all extraction patterns to the file text and records
// accepted candidates in refs. Duplicates collapse via set semantics.
func (s *Scanner) extract(text string, refs map[string]struct{}) {
	patterns := make([]*regexp.Regexp, 0, len(constructorPatterns)+1)
	patterns = append(patterns, constructorPatterns...)
	patterns = append(patterns, s.literalPattern)

	for _, re := range patterns {
		for _, match := range re.FindAllStringSubmatch(text, -1) {
			candidate := strings.TrimPrefix(match[1], "./")
			if isAssetPath(candidate) {
				refs[candidate] = struct{}{}
			}
		}
	}
}

// isAssetPath reports whether a candidate begins with an accepted asset
// directory prefix.
func isAssetPath(candidate string) bool {
	for _, prefix := range assetPrefixes {
		if strings.HasPrefix(candidate, prefix) {
			return true
		}
	}
	return false
}
