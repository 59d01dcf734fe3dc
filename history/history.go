// Package history tracks which episodes the jukebox has played.
package history

import (
	"github.com/metafates/gache"
	"github.com/tvjuke-cli/tvjuke/filesystem"
	"github.com/tvjuke-cli/tvjuke/library"
	"github.com/tvjuke-cli/tvjuke/where"
)

// cacher provides an abstracted, disk-backed registry for play records.
var cacher = gache.New[map[string]*PlayedEpisode](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the complete collection of play records from the persistent store.
func Get() (map[string]*PlayedEpisode, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*PlayedEpisode), nil
	}
	return cached, nil
}

// Save records one playback of the given episode, incrementing its play count.
func Save(media library.Media) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	record := newPlayedEpisode(media)
	if existing, exists := saved[record.encode()]; exists {
		record.PlayCount = existing.PlayCount
	}
	record.PlayCount++

	saved[record.encode()] = record

	return cacher.Set(saved)
}

// Remove permanently deletes a specific play record from the registry.
func Remove(episode *PlayedEpisode) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, episode.encode())
	return cacher.Set(saved)
}
