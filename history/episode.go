package history

import (
	"fmt"
	"time"

	"github.com/tvjuke-cli/tvjuke/library"
)

// PlayedEpisode represents a single episode entry preserved in the play history.
type PlayedEpisode struct {
	Show       string    `json:"show"`
	Title      string    `json:"title"`
	Path       string    `json:"path"`
	PlayCount  int       `json:"play_count"`
	LastPlayed time.Time `json:"last_played"`
}

func (p *PlayedEpisode) encode() string {
	return fmt.Sprintf("%s (%s)", p.Title, p.Show)
}

func (p *PlayedEpisode) String() string {
	return fmt.Sprintf("%s : %s (played %d)", p.Show, p.Title, p.PlayCount)
}

func newPlayedEpisode(media library.Media) *PlayedEpisode {
	return &PlayedEpisode{
		Show:       media.Show,
		Title:      media.Title(),
		Path:       media.Path,
		LastPlayed: time.Now(),
	}
}
