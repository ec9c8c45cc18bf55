package config

const (
	defaultPlaylistDir    = "~/.local/share/plutoiptv"
	defaultCacheDir       = "~/.cache/plutoiptv"
	defaultLogDir         = "~/.local/share/plutoiptv/logs"
	defaultFeedBaseURL    = "http://api.pluto.tv"
	defaultImageBaseURL   = "http://images.pluto.tv"
	defaultEPGHours       = 8
	maxEPGHours           = 10
	defaultTimeoutSeconds = 30
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"

	playlistFile = "plutotv.m3u8"
	cacheFile    = "plutocache.json"
	epgFile      = "plutotvepg.xml"
	logFile      = "plutotv.log"
	lockFile     = "plutoiptv.lock"
	historyFile  = "history.db"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			PlaylistDir: defaultPlaylistDir,
			CacheDir:    defaultCacheDir,
			EPGDir:      defaultPlaylistDir,
			LogDir:      defaultLogDir,
		},
		Feed: Feed{
			BaseURL:        defaultFeedBaseURL,
			ImageBaseURL:   defaultImageBaseURL,
			Hours:          defaultEPGHours,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Picons: Picons{
			Angle: -1,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		History: History{
			Enabled: true,
		},
	}
}
