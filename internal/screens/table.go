package screens

import (
	"travelshell/internal/config"
	"travelshell/internal/nav"
	"travelshell/internal/ui"
)

// DefaultTable maps every target to its screen constructor.
func DefaultTable(cfg *config.Config) nav.Table {
	return nav.Table{
		nav.Home:    func() nav.Screen { return NewHome(FeaturedArticles) },
		nav.Map:     func() nav.Screen { return NewMap(BuiltinRegions) },
		nav.Journey: func() nav.Screen { return NewJourney() },
		nav.Diary:   func() nav.Screen { return NewDiary(SampleDiary) },
		nav.Profile: func() nav.Screen { return NewProfile(cfg.Profile.Name, cfg.Profile.Preferences) },
	}
}

// DefaultLoaders returns async constructors for screens that read data from disk.
// Map is loaded from cfg.Map.RegionsFile when set.
func DefaultLoaders(cfg *config.Config) map[nav.Target]ui.ScreenLoader {
	loaders := map[nav.Target]ui.ScreenLoader{}
	if cfg.Map.RegionsFile != "" {
		loaders[nav.Map] = MapLoader(cfg.Map.RegionsFile)
	}
	return loaders
}
