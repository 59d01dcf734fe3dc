// Package version tracks the running release and discovers newer ones.
package version

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/metafates/gache"
	"github.com/tvjuke-cli/tvjuke/filesystem"
	"github.com/tvjuke-cli/tvjuke/network"
	"github.com/tvjuke-cli/tvjuke/util"
	"github.com/tvjuke-cli/tvjuke/where"
)

const releasesURL = "https://api.github.com/repos/tvjuke-cli/tvjuke/releases/latest"

// latestCacher keeps the remote lookup off the hot path and away from
// GitHub rate limits.
var latestCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest reports the newest published release, without the "v" prefix.
func Latest() (string, error) {
	cached, expired, err := latestCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && cached != "" {
		return cached, nil
	}

	resp, err := network.Client.Get(releasesURL)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	version := strings.TrimPrefix(release.TagName, "v")
	_ = latestCacher.Set(version)
	return version, nil
}
