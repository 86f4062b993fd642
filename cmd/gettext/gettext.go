// gettext scans a repository for translation calls and keeps per-locale
// catalogs in sync with the keys found in the sources.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/martinlehoux/kotoba/kcore"
	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"
)

type config struct {
	repo     string
	algo     string
	format   string
	dir      string
	locales  []string
	excludes map[string]bool
	write    bool
}

func initConfig() config {
	pflag.String("repo", ".", "Path to the repository to scan")
	pflag.String("algo", "walk", "File enumeration algorithm (walk, git)")
	pflag.String("format", "toml", "Catalog format (toml, yml)")
	pflag.String("dir", "localization", "Catalog directory, relative to the repository")
	pflag.StringSlice("locales", []string{"en"}, "Locales to maintain")
	pflag.StringSlice("excludes", []string{".git", "node_modules"}, "Excluded directories")
	pflag.Bool("write", false, "Write merged catalogs")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigName(".kotoba")
	viper.AddConfigPath(".")
	kcore.Expect(viper.BindPFlags(pflag.CommandLine), "error binding flags")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		kcore.Assert(errors.As(err, &notFound), "error reading config file: "+err.Error())
	}

	excludes := map[string]bool{}
	for _, exclude := range viper.GetStringSlice("excludes") {
		excludes[exclude] = true
	}
	return config{
		repo:     viper.GetString("repo"),
		algo:     viper.GetString("algo"),
		format:   viper.GetString("format"),
		dir:      viper.GetString("dir"),
		locales:  viper.GetStringSlice("locales"),
		excludes: excludes,
		write:    viper.GetBool("write"),
	}
}

func main() {
	cfg := initConfig()
	baseLogger := slog.Default()

	files := kcore.Must(sourceFiles(cfg))
	extracted := extractAll(files)
	baseLogger.Info("extracted message keys", slog.Int("files", len(files)), slog.Int("count", len(extracted)))

	for _, locale := range cfg.locales {
		logger := baseLogger.With(slog.String("locale", locale))
		path := filepath.Join(cfg.repo, catalogPath(cfg.dir, cfg.format, locale))
		current, err := loadCatalog(path, cfg.format)
		kcore.Expect(err, "error loading catalog")

		merged, translated := merge(current, extracted, logger)
		completion := "?%"
		if len(extracted) > 0 {
			completion = fmt.Sprintf("%d%%", translated*100/len(extracted))
		}
		logger.Info("finished checking catalog", slog.Int("count", len(merged)), slog.Int("translated", translated), slog.String("completion", completion))

		if cfg.write {
			kcore.Expect(writeCatalog(path, cfg.format, merged), "error writing catalog")
		}
	}
}

func extractAll(files []string) map[string]Message {
	extracted := map[string]Message{}
	progress := progressbar.Default(int64(len(files)), "Scanning")
	for _, path := range files {
		content, err := os.ReadFile(path) // #nosec G304
		kcore.Expect(err, "error reading file")
		maps.Copy(extracted, extractFile(path, content))
		kcore.Expect(progress.Add(1), "error incrementing progress")
	}
	return extracted
}

func sourceFiles(cfg config) ([]string, error) {
	switch cfg.algo {
	case "git":
		return gitFiles(cfg)
	case "walk":
		return walkFiles(cfg)
	}
	return nil, fmt.Errorf("wrong algo value (walk, git): %s", cfg.algo)
}

func walkFiles(cfg config) ([]string, error) {
	var files []string
	err := filepath.WalkDir(cfg.repo, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if cfg.excludes[d.Name()] {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || d.Type()&fs.ModeSymlink != 0 {
			return nil
		}
		if isSource(path) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// gitFiles enumerates the files tracked at HEAD, so untracked and ignored
// files never contribute keys.
func gitFiles(cfg config) ([]string, error) {
	repo, err := git.PlainOpen(cfg.repo)
	if err != nil {
		return nil, kcore.Wrap(err, "error opening repository")
	}
	ref, err := repo.Head()
	if err != nil {
		return nil, kcore.Wrap(err, "error getting HEAD")
	}
	head, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, kcore.Wrap(err, "error getting commit object")
	}
	iter, err := head.Files()
	if err != nil {
		return nil, kcore.Wrap(err, "error listing commit files")
	}
	var files []string
	err = iter.ForEach(func(file *object.File) error {
		if isSource(file.Name) && !excluded(cfg.excludes, file.Name) {
			files = append(files, filepath.Join(cfg.repo, file.Name))
		}
		return nil
	})
	return files, err
}

func isSource(path string) bool {
	if strings.HasSuffix(path, "_test.go") {
		return false
	}
	ext := filepath.Ext(path)
	return ext == ".go" || ext == ".templ"
}

func excluded(excludes map[string]bool, path string) bool {
	return lo.SomeBy(strings.Split(path, "/"), func(part string) bool { return excludes[part] })
}
