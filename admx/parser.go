package admx

import (
	"encoding/xml"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/joshuapare/gpokit/internal/textenc"
	"github.com/joshuapare/gpokit/pkg/types"
)

// Options configures a Parser.
type Options struct {
	// Workers bounds how many definition files are parsed concurrently.
	// Zero or negative selects runtime.NumCPU().
	Workers int

	// Logger receives debug-level progress events. Nil discards them.
	Logger *slog.Logger
}

// Parser builds a PolicyCatalog from a directory of template files. A
// Parser is cheap to construct and safe to reuse; each Build call is
// independent.
type Parser struct {
	workers int
	log     *slog.Logger
}

// NewParser returns a Parser with the given options applied.
func NewParser(opts Options) *Parser {
	w := opts.Workers
	if w <= 0 {
		w = runtime.NumCPU()
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Parser{workers: w, log: log}
}

// parsedDefinition is the private partial produced by one worker for one
// definition file. Partials are merged single-threaded in sorted file order
// so catalog contents never depend on scheduling.
type parsedDefinition struct {
	path string
	base string
	def  definitionFile
	err  error
}

// Build scans root recursively for .admx and .adml files and consolidates
// them into one catalog. Resource files are ingested first so every
// definition file resolves against the completed string table. Files that
// fail to parse are skipped and reported as diagnostics; Build fails only
// when the root itself cannot be walked.
func (p *Parser) Build(root string) (*types.PolicyCatalog, error) {
	defPaths, resPaths, err := scanTemplates(root)
	if err != nil {
		return nil, err
	}
	p.log.Debug("scanned template root",
		"root", root, "definitions", len(defPaths), "resources", len(resPaths))

	catalog := &types.PolicyCatalog{}

	table := make(StringTable)
	for _, path := range resPaths {
		base := fileBase(path)
		data, err := os.ReadFile(path)
		if err == nil {
			err = table.addResourceData(base, data)
		}
		if err != nil {
			catalog.Diagnostics = append(catalog.Diagnostics, types.Diagnostic{
				Severity: types.SevError,
				Category: types.DiagResourceParse,
				File:     filepath.Base(path),
				Message:  err.Error(),
			})
			p.log.Debug("skipped resource file", "file", path, "err", err)
		}
	}

	parsed := p.parseDefinitions(defPaths)
	p.merge(catalog, parsed, table)

	catalog.Stats = computeStats(catalog)
	p.log.Debug("catalog built",
		"policies", catalog.Stats.PolicyCount,
		"categories", catalog.Stats.CategoryCount,
		"diagnostics", len(catalog.Diagnostics))
	return catalog, nil
}

// scanTemplates walks root and returns the definition and resource file
// paths, each list sorted for deterministic merge order.
func scanTemplates(root string) (defPaths, resPaths []string, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case extDefinition:
			defPaths = append(defPaths, path)
		case extResource:
			resPaths = append(resPaths, path)
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("admx: scan %s: %w", root, err)
	}
	sort.Strings(defPaths)
	sort.Strings(resPaths)
	return defPaths, resPaths, nil
}

// parseDefinitions decodes every definition file, at most p.workers at a
// time. Results land at their input index so order is preserved.
func (p *Parser) parseDefinitions(paths []string) []parsedDefinition {
	results := make([]parsedDefinition, len(paths))
	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup

	for i, path := range paths {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = parseDefinitionFile(path)
		}(i, path)
	}
	wg.Wait()
	return results
}

func parseDefinitionFile(path string) parsedDefinition {
	r := parsedDefinition{path: path, base: fileBase(path)}
	data, err := os.ReadFile(path)
	if err != nil {
		r.err = err
		return r
	}
	r.err = parseDefinitionData(data, &r.def)
	return r
}

func parseDefinitionData(data []byte, def *definitionFile) error {
	utf8Data, err := textenc.Decode(data)
	if err != nil {
		return fmt.Errorf("admx: transcode definition file: %w", err)
	}
	if err := xml.Unmarshal(utf8Data, def); err != nil {
		return fmt.Errorf("admx: parse definition file: %w", err)
	}
	return nil
}

// merge folds parsed definition files into the catalog in input order.
// Categories across all files are registered first so parent references can
// reach forward and across files, then policies are resolved against the
// complete category map.
func (p *Parser) merge(catalog *types.PolicyCatalog, parsed []parsedDefinition, table StringTable) {
	byID := make(map[string]types.Category)

	for _, r := range parsed {
		if r.err != nil {
			catalog.Diagnostics = append(catalog.Diagnostics, types.Diagnostic{
				Severity: types.SevError,
				Category: types.DiagDefinitionParse,
				File:     filepath.Base(r.path),
				Message:  r.err.Error(),
			})
			continue
		}
		for _, c := range r.def.Categories {
			cat := types.Category{
				ID:          ScopeID(r.base, c.Name),
				DisplayName: table.Resolve(r.base, c.DisplayName),
			}
			if c.ParentCategory.Ref != "" {
				cat.ParentRef = ScopeRef(r.base, c.ParentCategory.Ref)
			}
			byID[cat.ID] = cat
			catalog.Categories = append(catalog.Categories, cat)
		}
	}

	for _, r := range parsed {
		if r.err != nil {
			continue
		}
		for _, pol := range r.def.Policies {
			catalog.Policies = append(catalog.Policies,
				p.resolvePolicy(catalog, pol, r, byID, table))
		}
	}
}

// resolvePolicy turns one raw policy node into a fully resolved definition,
// recording diagnostics for anything that degraded along the way.
func (p *Parser) resolvePolicy(catalog *types.PolicyCatalog, pol policyNode, r parsedDefinition, byID map[string]types.Category, table StringTable) types.PolicyDefinition {
	def := types.PolicyDefinition{
		Name:        pol.Name,
		SourceFile:  filepath.Base(r.path),
		DisplayName: table.Resolve(r.base, pol.DisplayName),
		ExplainText: table.Resolve(r.base, pol.ExplainText),
		Class:       types.ParsePolicyClass(pol.Class),
		RegistryKey: pol.Key,
		ValueName:   pol.ValueName,
		Elements:    extractElements(pol, r.base, table),
	}

	if ref := pol.ParentCategory.Ref; ref != "" {
		id := ScopeRef(r.base, ref)
		path, err := ResolvePath(byID, id)
		if err != nil {
			catalog.Diagnostics = append(catalog.Diagnostics, types.Diagnostic{
				Severity: types.SevWarning,
				Category: types.DiagCategoryCycle,
				File:     filepath.Base(r.path),
				Subject:  pol.Name,
				Message:  err.Error(),
			})
		} else {
			def.CategoryPath = path
		}
	}

	if ref := pol.SupportedOn.Ref; ref != "" {
		scope, local := splitRef(r.base, ref)
		if s, ok := table.Lookup(scope, local); ok {
			def.SupportedOn = s
		} else {
			def.SupportedOn = ref
			catalog.Diagnostics = append(catalog.Diagnostics, types.Diagnostic{
				Severity: types.SevInfo,
				Category: types.DiagUnresolvedReference,
				File:     filepath.Base(r.path),
				Subject:  pol.Name,
				Message:  "supportedOn reference " + ref + " has no localized text",
			})
		}
	}
	return def
}

// splitRef resolves a reference written inside fileBase to the (scope, id)
// pair it names, honoring an explicit "targetFile:" namespace prefix.
func splitRef(fileBase, ref string) (scope, id string) {
	if i := strings.Index(ref, NamespaceMarker); i >= 0 {
		return ref[:i], ref[i+len(NamespaceMarker):]
	}
	return fileBase, ref
}

func fileBase(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func computeStats(c *types.PolicyCatalog) types.CatalogStats {
	s := types.CatalogStats{
		PolicyCount:   len(c.Policies),
		CategoryCount: len(c.Categories),
	}
	for _, p := range c.Policies {
		switch p.Class {
		case types.ClassUser:
			s.UserCount++
		case types.ClassBoth:
			s.BothCount++
		default:
			s.MachineCount++
		}
	}
	return s
}
