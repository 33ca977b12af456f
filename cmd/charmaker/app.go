package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/character-maker/internal/clients/srd"
	"github.com/KirkDiggler/character-maker/internal/config"
	"github.com/KirkDiggler/character-maker/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/character-maker/internal/errors"
	charorch "github.com/KirkDiggler/character-maker/internal/orchestrators/character"
	diceorch "github.com/KirkDiggler/character-maker/internal/orchestrators/dice"
	invorch "github.com/KirkDiggler/character-maker/internal/orchestrators/inventory"
	"github.com/KirkDiggler/character-maker/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/character-maker/internal/redis"
	characterrepo "github.com/KirkDiggler/character-maker/internal/repositories/character"
	"github.com/KirkDiggler/character-maker/internal/services/character"
	"github.com/KirkDiggler/character-maker/internal/storage"
	"github.com/KirkDiggler/character-maker/internal/storage/boltstore"
	"github.com/KirkDiggler/character-maker/internal/storage/jsonfile"
	"github.com/KirkDiggler/character-maker/internal/storage/redisstore"
)

// app is the wired service graph for one command run
type app struct {
	cfg        *config.Config
	bus        *events.Bus
	closers    []io.Closer
	characters *charorch.Orchestrator
	inventory  *invorch.Orchestrator
	dice       diceorch.Service
}

func newApp(cfg *config.Config) (*app, error) {
	a := &app{cfg: cfg, bus: events.NewBus()}
	rpgtoolkit.LogEvents(a.bus)

	backend, err := a.openBackend()
	if err != nil {
		a.close()
		return nil, err
	}

	repo, err := characterrepo.New(&characterrepo.Config{Backend: backend})
	if err != nil {
		a.close()
		return nil, errors.Wrap(err, "failed to create character repository")
	}

	engine, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		EventBus:   a.bus,
		DiceRoller: dice.DefaultRoller,
	})
	if err != nil {
		a.close()
		return nil, errors.Wrap(err, "failed to create engine")
	}

	a.characters, err = charorch.New(&charorch.Config{
		CharacterRepo: repo,
		Engine:        engine,
		Publisher:     rpgtoolkit.NewPublisher(a.bus),
		AutoSave:      cfg.AutoSave,
	})
	if err != nil {
		a.close()
		return nil, errors.Wrap(err, "failed to create character orchestrator")
	}

	a.inventory, err = invorch.New(&invorch.Config{CharacterRepo: repo, AutoSave: cfg.AutoSave})
	if err != nil {
		a.close()
		return nil, errors.Wrap(err, "failed to create inventory orchestrator")
	}

	a.dice, err = newDice()
	if err != nil {
		a.close()
		return nil, err
	}

	return a, nil
}

func newDice() (diceorch.Service, error) {
	svc, err := diceorch.NewOrchestrator(&diceorch.Config{
		DiceRoller:  dice.DefaultRoller,
		IDGenerator: idgen.NewUUID(idgen.PrefixRoll),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create dice orchestrator")
	}
	return svc, nil
}

func (a *app) openBackend() (storage.Backend, error) {
	switch a.cfg.Store {
	case config.StoreRedis:
		client, err := redisclient.NewClientFromURL(a.cfg.RedisURL)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid REDIS_URL")
		}
		a.closers = append(a.closers, client)
		store, err := redisstore.New(&redisstore.Config{Client: client, Key: a.cfg.RedisKey})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create redis store")
		}
		return store, nil
	case config.StoreBolt:
		store, err := boltstore.Open(&boltstore.Config{Path: a.cfg.BoltPath})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, store)
		return store, nil
	default:
		return jsonfile.New(&jsonfile.Config{Path: a.cfg.DataFile}), nil
	}
}

func (a *app) close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			slog.Warn("failed to close backend", "error", err)
		}
	}
	a.closers = nil
}

func (a *app) load(ctx context.Context) error {
	out, err := a.characters.Load(ctx, &character.LoadInput{})
	if err != nil {
		return err
	}
	slog.DebugContext(ctx, "characters loaded", "count", out.Count, "store", a.cfg.Store)
	return nil
}

func (a *app) save(ctx context.Context) error {
	out, err := a.characters.Save(ctx, &character.SaveInput{})
	if err != nil {
		return err
	}
	slog.DebugContext(ctx, "characters saved", "count", out.Count, "store", a.cfg.Store)
	return nil
}

func newSRD(cfg *config.Config) (srd.Client, error) {
	return srd.New(&srd.Config{
		BaseURL:     cfg.SRDBaseURL,
		HTTPTimeout: cfg.SRDTimeout,
		CacheTTL:    cfg.SRDCacheTTL,
	})
}

// runFunc is a command body that works on a loaded store
type runFunc func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error

// withStore loads every character, runs fn and, for mutating commands,
// saves before returning. A store that cannot be read aborts the command so
// a save never overwrites it.
func withStore(mutates bool, fn runFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(settings)
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.load(ctx); err != nil {
			return err
		}
		if err := fn(ctx, a, cmd, args); err != nil {
			return err
		}
		if mutates {
			return a.save(ctx)
		}
		return nil
	}
}
