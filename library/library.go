// Package library enumerates the on-disk media library: the show categories,
// their episode files, and the idle/error clip pools.
package library

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/tvjuke-cli/tvjuke/constant"
	"github.com/tvjuke-cli/tvjuke/filesystem"
	"github.com/tvjuke-cli/tvjuke/key"
	"github.com/tvjuke-cli/tvjuke/util"
	"github.com/tvjuke-cli/tvjuke/where"
)

// Media identifies a single playable file.
type Media struct {
	Path string
	Show string // empty for idle/error pool clips
}

// Title returns the display name of the media file, without extension.
func (m Media) Title() string {
	return util.FileStem(m.Path)
}

// Index resolves media files under a library root.
// Every query re-reads the filesystem, so files added while the jukebox is
// running are picked up without a restart.
type Index struct {
	root string
}

// New creates an Index over the given library root.
func New(root string) *Index {
	return &Index{root: root}
}

// Open creates an Index over the configured library root,
// falling back to the default location when library.path is unset.
func Open() *Index {
	root := viper.GetString(key.LibraryPath)
	if root == "" {
		root = where.Library()
	}
	return New(root)
}

// Root returns the library root directory.
func (i *Index) Root() string {
	return i.root
}

// Categories lists the show names available under the library root.
// A missing shows directory yields an empty result, not an error.
func (i *Index) Categories() ([]string, error) {
	entries, err := filesystem.API().ReadDir(filepath.Join(i.root, constant.ShowsDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	shows := lo.FilterMap(entries, func(e os.FileInfo, _ int) (string, bool) {
		return e.Name(), e.IsDir()
	})
	sort.Strings(shows)
	return shows, nil
}

// Episodes recursively lists all playable files for one show.
func (i *Index) Episodes(show string) ([]Media, error) {
	root := filepath.Join(i.root, constant.ShowsDir, show)

	var episodes []Media
	err := filesystem.API().Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if !info.IsDir() && playable(info.Name()) {
			episodes = append(episodes, Media{Path: path, Show: show})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return episodes, nil
}

// AllEpisodes lists the union of every show's episodes. Sampling uniformly
// from this slice weights each show by its episode count.
func (i *Index) AllEpisodes() ([]Media, error) {
	shows, err := i.Categories()
	if err != nil {
		return nil, err
	}

	var all []Media
	for _, show := range shows {
		episodes, err := i.Episodes(show)
		if err != nil {
			return nil, err
		}
		all = append(all, episodes...)
	}
	return all, nil
}

// IdlePool lists the welcome clips looped while no show is selected.
func (i *Index) IdlePool() ([]Media, error) {
	return i.pool(constant.WelcomeDir)
}

// ErrorPool lists the clips shown when the jukebox fails fatally.
func (i *Index) ErrorPool() ([]Media, error) {
	return i.pool(constant.ErrorDir)
}

// pool lists the playable files directly under a pool directory (non-recursive).
func (i *Index) pool(dir string) ([]Media, error) {
	entries, err := filesystem.API().ReadDir(filepath.Join(i.root, dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	return lo.FilterMap(entries, func(e os.FileInfo, _ int) (Media, bool) {
		if e.IsDir() || !playable(e.Name()) {
			return Media{}, false
		}
		return Media{Path: filepath.Join(i.root, dir, e.Name())}, true
	}), nil
}

func playable(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return lo.Contains(constant.MediaExtensions, ext)
}
