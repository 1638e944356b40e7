package devenv

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/system-sage/internal/config"
	"github.com/MKhiriev/system-sage/internal/logger"
	"github.com/MKhiriev/system-sage/models"
)

//go:generate mockgen -source=scanner.go -destination=../mock/devenv_mock.go -package=mock

// UnknownVersion is reported when a tool was found but its version probe
// failed or printed nothing recognisable.
const UnknownVersion = "Unknown"

// Auditor produces an audit report of the developer environment.
type Auditor interface {
	Scan(ctx context.Context) (models.AuditReport, error)
}

// Prober runs an executable with the given arguments and returns its
// combined output.
type Prober interface {
	Probe(ctx context.Context, path string, args ...string) ([]byte, error)
}

type execProber struct{}

func (execProber) Probe(ctx context.Context, path string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, path, args...).CombinedOutput()
}

// Scanner implements [Auditor]. Each call to Scan inspects the host again.
type Scanner struct {
	catalog      Catalog
	prober       Prober
	lookPath     func(file string) (string, error)
	resolvePath  func(path string) (string, error)
	environ      func() []string
	analyzer     issueAnalyzer
	probeTimeout time.Duration
	concurrency  int
	logger       *logger.Logger
}

// NewScanner loads the catalog configured in cfg and returns a scanner for
// the running host.
func NewScanner(cfg config.Audit, log *logger.Logger) (*Scanner, error) {
	catalog, err := LoadCatalog(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}

	log.Info().Str("func", "NewScanner").Int("tools", len(catalog.Tools)).Msg("tool catalog loaded")

	return newScanner(catalog, execProber{}, cfg, log), nil
}

func newScanner(catalog Catalog, prober Prober, cfg config.Audit, log *logger.Logger) *Scanner {
	concurrency := cfg.ProbeConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Scanner{
		catalog:      catalog,
		prober:       prober,
		lookPath:     exec.LookPath,
		resolvePath:  filepath.EvalSymlinks,
		environ:      os.Environ,
		analyzer:     issueAnalyzer{stat: os.Stat, listSeparator: string(os.PathListSeparator)},
		probeTimeout: cfg.ProbeTimeout,
		concurrency:  concurrency,
		logger:       log,
	}
}

// Scan detects catalog tools, reads the environment and analyzes it. Probe
// failures only degrade the version to [UnknownVersion]; an error is
// returned only when ctx is done.
func (s *Scanner) Scan(ctx context.Context) (models.AuditReport, error) {
	components, err := s.detectComponents(ctx)
	if err != nil {
		return models.AuditReport{}, err
	}

	vars := parseEnviron(s.environ())

	return models.AuditReport{
		Components:           components,
		EnvironmentVariables: reportVariables(vars),
		Issues:               s.analyzer.analyze(vars),
	}, nil
}

// candidate is a resolved executable of a catalog tool waiting for its
// version probe.
type candidate struct {
	tool *Tool
	path string
}

func (s *Scanner) detectComponents(ctx context.Context) ([]models.DetectedComponent, error) {
	candidates := s.findCandidates(ctx)

	versions := make([]string, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, c := range candidates {
		g.Go(func() error {
			versions[i] = s.probeVersion(gctx, c)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("tool detection interrupted: %w", err)
	}

	components := make([]models.DetectedComponent, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for i, c := range candidates {
		component := models.DetectedComponent{
			ID:             ComponentID(c.tool.Name, versions[i], c.path),
			Name:           c.tool.Name,
			Category:       c.tool.Category,
			Version:        versions[i],
			ExecutablePath: c.path,
		}
		if _, ok := seen[component.ID]; ok {
			continue
		}
		seen[component.ID] = struct{}{}
		components = append(components, component)
	}

	return components, nil
}

// findCandidates resolves every executable of every tool on PATH. Two
// names of one tool resolving to the same file yield one candidate.
func (s *Scanner) findCandidates(ctx context.Context) []candidate {
	log := logger.FromContext(ctx)

	var candidates []candidate
	for i := range s.catalog.Tools {
		tool := &s.catalog.Tools[i]
		resolved := make(map[string]struct{}, len(tool.Executables))

		for _, exe := range tool.Executables {
			path, err := s.lookPath(exe)
			if err != nil {
				continue
			}
			if resolvedPath, err := s.resolvePath(path); err == nil {
				path = resolvedPath
			}
			if _, ok := resolved[path]; ok {
				continue
			}
			resolved[path] = struct{}{}
			candidates = append(candidates, candidate{tool: tool, path: path})
		}

		if len(resolved) == 0 {
			log.Debug().Str("func", "Scanner.findCandidates").Str("tool", tool.Name).Msg("tool not found on PATH")
		}
	}
	return candidates
}

func (s *Scanner) probeVersion(ctx context.Context, c candidate) string {
	log := logger.FromContext(ctx)

	if s.probeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.probeTimeout)
		defer cancel()
	}

	out, err := s.prober.Probe(ctx, c.path, c.tool.VersionArgs...)
	version := c.tool.ParseVersion(out)
	if version == "" {
		log.Debug().Err(err).
			Str("func", "Scanner.probeVersion").
			Str("tool", c.tool.Name).
			Str("path", c.path).
			Msg("version not detected")
		return UnknownVersion
	}
	return version
}

// ComponentID builds the stable identifier of a detected tool instance,
// e.g. "node_js_20_11_0_node".
func ComponentID(name, version, path string) string {
	nameSlug := strings.NewReplacer(" ", "_", ".", "_").Replace(strings.ToLower(name))
	versionSlug := "unknown"
	if version != "" && version != UnknownVersion {
		versionSlug = strings.ReplaceAll(version, ".", "_")
	}
	pathSlug := "unknownpath"
	if path != "" {
		pathSlug = filepath.Base(path)
	}
	return nameSlug + "_" + versionSlug + "_" + pathSlug
}
