package library

// ShowCount pairs a show name with its episode tally.
type ShowCount struct {
	Name     string `json:"name"`
	Episodes int    `json:"episodes"`
}

// Summary tallies episodes per show, alphabetically, along with the grand total.
// Shows with no playable files are omitted.
func (i *Index) Summary() ([]ShowCount, int, error) {
	shows, err := i.Categories()
	if err != nil {
		return nil, 0, err
	}

	var counts []ShowCount
	total := 0
	for _, show := range shows {
		episodes, err := i.Episodes(show)
		if err != nil {
			return nil, 0, err
		}
		if len(episodes) == 0 {
			continue
		}
		counts = append(counts, ShowCount{Name: show, Episodes: len(episodes)})
		total += len(episodes)
	}
	return counts, total, nil
}
