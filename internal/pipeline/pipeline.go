package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"plutoiptv/internal/config"
	"plutoiptv/internal/epg"
	"plutoiptv/internal/favorites"
	"plutoiptv/internal/feed"
	"plutoiptv/internal/feedcache"
	"plutoiptv/internal/fileutil"
	"plutoiptv/internal/gradient"
	"plutoiptv/internal/logging"
	"plutoiptv/internal/picon"
	"plutoiptv/internal/playlist"
)

const (
	generatorName = "plutoiptv"
	generatorURL  = "https://github.com/plutoiptv/plutoiptv"
)

// FeedClient is the remote surface the pipeline needs.
type FeedClient interface {
	Fetch(ctx context.Context, window feed.Window) ([]byte, error)
	FetchLogo(ctx context.Context, channelID string, mono bool) ([]byte, error)
}

// Result summarizes one run.
type Result struct {
	Channels      int
	Programmes    int
	Skipped       int
	PiconsWritten int
	PlaylistPath  string
	EPGPath       string
}

// Pipeline generates the playlist and EPG artifacts from a feed
// snapshot.
type Pipeline struct {
	cfg    *config.Config
	client FeedClient
	logger *slog.Logger
	log    *slog.Logger
	clock  *clock
	now    func() time.Time
}

// New constructs a pipeline. The logger is shared with the components
// the pipeline builds internally.
func New(cfg *config.Config, client FeedClient, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		client: client,
		logger: logger,
		log:    logging.NewComponentLogger(logger, "pipeline"),
		clock:  newClock(time.Local),
		now:    time.Now,
	}
}

// Channels returns the current channel lineup, using the cached feed
// snapshot when it is still fresh.
func (p *Pipeline) Channels(ctx context.Context) ([]feed.Channel, error) {
	cache := feedcache.New(p.cfg.CachePath(), p.logger)
	window := feed.NewWindow(p.now(), p.cfg.Feed.Hours)
	return cache.Ensure(ctx, p.client, window)
}

// Run produces the playlist and EPG, plus picons when a picon directory
// is configured.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	var res Result

	channels, err := p.Channels(ctx)
	if err != nil {
		return res, err
	}

	favs, err := favorites.Load(p.cfg.Favorites.Path)
	if err != nil {
		return res, err
	}
	if favs.Len() > 0 {
		p.log.Info("favorites filter active", logging.Int(logging.FieldCount, favs.Len()))
	}

	synth, spec, err := p.piconSetup()
	if err != nil {
		return res, err
	}

	pl := playlist.NewBuilder()
	guide := epg.NewBuilder(generatorName, generatorURL)

	for _, ch := range channels {
		name := displayName(ch)

		if !ch.IsStitched {
			p.log.Info("skipping channel without stitched stream",
				logging.String(logging.FieldChannel, name))
			res.Skipped++
			continue
		}
		if excludedNames[ch.Name] {
			p.log.Info("skipping placeholder channel",
				logging.String(logging.FieldChannel, name))
			res.Skipped++
			continue
		}
		if !favs.Contains(ch.Slug) {
			res.Skipped++
			continue
		}

		streamURL, err := buildStreamURL(ch, p.cfg.Device)
		if err != nil {
			p.log.Info("skipping channel without playable stream",
				logging.String(logging.FieldChannel, name),
				logging.Error(err))
			res.Skipped++
			continue
		}

		icon := ch.LogoPath(p.cfg.Picons.Mono)
		if synth != nil {
			written, err := p.synthesizePicon(ctx, synth, ch, spec)
			if err != nil {
				p.log.Error("picon synthesis failed",
					logging.String(logging.FieldChannel, name),
					logging.Error(err))
			} else {
				icon = synth.Path(ch.Slug)
				if written {
					res.PiconsWritten++
				}
			}
		}

		id := tvgID(ch)
		pl.Add(playlist.Entry{
			TVGName:    name,
			TVGID:      id,
			TVGLogo:    icon,
			GroupTitle: ch.Category,
			URL:        streamURL,
		})
		guide.AddChannel(epg.Channel{ID: id, DisplayName: name, Icon: icon})
		res.Channels++

		lang := langFor(ch.Category)
		for _, tl := range ch.Timelines {
			prog, err := buildProgramme(ch, tl, lang, p.clock)
			if err != nil {
				p.log.Warn("skipping malformed timeline",
					logging.String(logging.FieldChannel, name),
					logging.Error(err))
				continue
			}
			guide.AddProgramme(prog)
			res.Programmes++
		}
	}

	for _, slug := range favs.Unused() {
		p.log.Warn("favorites entry matched no channel",
			logging.String(logging.FieldSlug, slug))
	}

	if err := pl.WriteFile(p.cfg.PlaylistPath()); err != nil {
		return res, err
	}
	res.PlaylistPath = p.cfg.PlaylistPath()

	if err := guide.WriteFile(p.cfg.EPGPath()); err != nil {
		return res, err
	}
	res.EPGPath = p.cfg.EPGPath()

	p.log.Info("run complete",
		logging.Int("channels", res.Channels),
		logging.Int("programmes", res.Programmes),
		logging.Int("skipped", res.Skipped),
		logging.Int("picons", res.PiconsWritten))
	return res, nil
}

// RunPicons synthesizes picons only. It fails fast when no picon
// directory is configured since the invocation is explicit.
func (p *Pipeline) RunPicons(ctx context.Context) (int, error) {
	if !p.cfg.PiconsEnabled() {
		return 0, fmt.Errorf("no picon directory configured")
	}
	if err := p.cfg.EnsurePiconDir(); err != nil {
		return 0, err
	}
	spec, err := p.gradientSpec()
	if err != nil {
		return 0, err
	}
	synth := picon.New(p.cfg.Paths.PiconDir, p.logger)

	channels, err := p.Channels(ctx)
	if err != nil {
		return 0, err
	}

	written := 0
	for _, ch := range channels {
		if !ch.IsStitched || excludedNames[ch.Name] {
			continue
		}
		ok, err := p.synthesizePicon(ctx, synth, ch, spec)
		if err != nil {
			p.log.Error("picon synthesis failed",
				logging.String(logging.FieldChannel, displayName(ch)),
				logging.Error(err))
			continue
		}
		if ok {
			written++
		}
	}
	return written, nil
}

// piconSetup prepares the synthesizer when picons are configured. A
// directory failure disables picons for this run instead of aborting.
func (p *Pipeline) piconSetup() (*picon.Synthesizer, gradient.Spec, error) {
	if !p.cfg.PiconsEnabled() {
		return nil, gradient.Spec{}, nil
	}
	if err := p.cfg.EnsurePiconDir(); err != nil {
		p.log.Warn("picon directory unavailable, skipping picons", logging.Error(err))
		return nil, gradient.Spec{}, nil
	}
	spec, err := p.gradientSpec()
	if err != nil {
		return nil, gradient.Spec{}, err
	}
	return picon.New(p.cfg.Paths.PiconDir, p.logger), spec, nil
}

func (p *Pipeline) gradientSpec() (gradient.Spec, error) {
	pc := p.cfg.Picons
	spec, err := gradient.Derive(p.cfg.Device.ID, pc.Color1, pc.Color2, pc.Angle, pc.Colorful, pc.Bright)
	if err != nil {
		return gradient.Spec{}, fmt.Errorf("derive picon gradient: %w", err)
	}
	return spec, nil
}

// synthesizePicon fetches the channel logo and renders its picon. The
// existence check runs before the fetch so fresh picons cost no network
// round trip.
func (p *Pipeline) synthesizePicon(ctx context.Context, synth *picon.Synthesizer, ch feed.Channel, spec gradient.Spec) (bool, error) {
	if !p.cfg.Picons.Overwrite && fileutil.ExistsNonEmpty(synth.Path(ch.Slug)) {
		return false, nil
	}
	logo, err := p.client.FetchLogo(ctx, ch.ID, p.cfg.Picons.Mono)
	if err != nil {
		return false, err
	}
	return synth.Synthesize(ch.Slug, logo, spec, p.cfg.Picons.Overwrite)
}
