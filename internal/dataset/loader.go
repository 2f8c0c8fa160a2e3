// loader.go assembles a Framework from the fixed set of named JSON
// resources. All resources are fetched in parallel and the aggregate is
// returned fully built; callers swap it in atomically so no consumer ever
// observes a half-populated framework.
package dataset

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/example/comply/internal/model"
)

// Resource file names within a dataset location.
const (
	FileFramework       = "framework.json"
	FileJurisdictions   = "jurisdictions.json"
	FileRegulations     = "regulations.json"
	FileRequirements    = "requirements.json"
	FileEntities        = "entities.json"
	FileSolutions       = "solutions.json"
	FileZoneAssignments = "zone-assignments.json"
	FileMappings        = "mappings.json"
	FileEnforcement     = "enforcement.json"
	FileOverview        = "executive-overview.json"
)

// Loader reads framework datasets from a Source.
type Loader struct {
	src Source
	log *zap.Logger
}

// NewLoader builds a loader over the given source. A nil logger is replaced
// with a no-op logger.
func NewLoader(src Source, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{src: src, log: log}
}

// fetchInto fetches one resource and unmarshals it into dest. Any failure
// (missing file, bad status, malformed JSON) leaves dest untouched and is
// reported to the caller as non-fatal; only context cancellation aborts the
// load as a whole.
func (l *Loader) fetchInto(ctx context.Context, name string, dest any) error {
	data, err := l.src.Fetch(ctx, name)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		l.log.Warn("resource unavailable, using empty default",
			zap.String("resource", name), zap.Error(err))
		return nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		l.log.Warn("resource malformed, using empty default",
			zap.String("resource", name), zap.Error(err))
		return nil
	}
	return nil
}

// Load fetches every framework resource in parallel and returns the
// assembled aggregate. Individual resources degrade to typed empty defaults;
// the returned error is reserved for whole-load failures such as
// cancellation.
func (l *Loader) Load(ctx context.Context) (*model.Framework, error) {
	fw := model.Empty()

	var meta struct {
		Name        string `json:"name"`
		Version     string `json:"version"`
		Description string `json:"description"`
		LastUpdated string `json:"lastUpdated"`
	}
	metaSeen := false

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := l.src.Fetch(gctx, FileFramework)
		if err != nil {
			if ctxErr := gctx.Err(); ctxErr != nil {
				return ctxErr
			}
			l.log.Warn("framework metadata unavailable", zap.Error(err))
			return nil
		}
		if err := json.Unmarshal(data, &meta); err != nil {
			l.log.Warn("framework metadata malformed", zap.Error(err))
			return nil
		}
		metaSeen = true
		return nil
	})
	g.Go(func() error { return l.fetchInto(gctx, FileJurisdictions, &fw.Jurisdictions) })
	g.Go(func() error { return l.fetchInto(gctx, FileRegulations, &fw.Regulations) })
	g.Go(func() error { return l.fetchInto(gctx, FileRequirements, &fw.Requirements) })
	g.Go(func() error { return l.fetchInto(gctx, FileEntities, &fw.RegulatedEntities) })
	g.Go(func() error { return l.fetchInto(gctx, FileSolutions, &fw.Solutions) })
	g.Go(func() error { return l.fetchInto(gctx, FileZoneAssignments, &fw.ZoneAssignments) })
	g.Go(func() error { return l.fetchInto(gctx, FileMappings, &fw.Mappings) })
	g.Go(func() error { return l.fetchInto(gctx, FileEnforcement, &fw.EnforcementAssessments) })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load framework from %s: %w", l.src.Base(), err)
	}

	if metaSeen {
		fw.Metadata = model.Metadata{
			Name:        meta.Name,
			Version:     meta.Version,
			Description: meta.Description,
			LastUpdated: meta.LastUpdated,
		}
	} else {
		fw.Metadata = model.Metadata{Name: "Unknown Framework", Version: "0.0.0"}
	}

	l.log.Info("framework loaded",
		zap.String("base", l.src.Base()),
		zap.String("name", fw.Metadata.Name),
		zap.Int("jurisdictions", len(fw.Jurisdictions)),
		zap.Int("regulations", len(fw.Regulations)),
		zap.Int("requirements", len(fw.Requirements)),
		zap.Int("solutions", len(fw.Solutions)),
		zap.Int("mappings", len(fw.Mappings)),
		zap.Int("zoneAssignments", len(fw.ZoneAssignments)))
	return fw, nil
}

// LoadOverview fetches the optional executive overview. A missing or
// malformed overview yields nil without error; absence is a recognized
// state with its own presentation, not a failure.
func (l *Loader) LoadOverview(ctx context.Context) (*model.ExecutiveOverview, error) {
	data, err := l.src.Fetch(ctx, FileOverview)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		l.log.Info("executive overview not present", zap.Error(err))
		return nil, nil
	}
	var ov model.ExecutiveOverview
	if err := json.Unmarshal(data, &ov); err != nil {
		l.log.Warn("executive overview malformed", zap.Error(err))
		return nil, nil
	}
	return &ov, nil
}

// LoadAll fetches the framework and the executive overview concurrently and
// returns both, so a caller can commit the pair as one atomic replacement.
func (l *Loader) LoadAll(ctx context.Context) (*model.Framework, *model.ExecutiveOverview, error) {
	var (
		fw *model.Framework
		ov *model.ExecutiveOverview
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		fw, err = l.Load(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		ov, err = l.LoadOverview(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fw, ov, nil
}
