// Package source reads requirements files from disk and resolves their includes.
package source

import (
	"errors"
	"path/filepath"

	"github.com/dominikbraun/graph"
	"go.trai.ch/reqsync/internal/adapters/fs"
	"go.trai.ch/reqsync/internal/core/domain"
	"go.trai.ch/reqsync/internal/core/ports"
	"go.trai.ch/reqsync/internal/engine/parser"
	"go.trai.ch/zerr"
)

var _ ports.RequirementSource = (*Reader)(nil)

// Reader implements ports.RequirementSource.
type Reader struct {
	fs fs.FileSystem
}

// NewReader creates a new Reader on top of fsys.
func NewReader(fsys fs.FileSystem) *Reader {
	return &Reader{fs: fsys}
}

// Load reads path and every file it includes, depth first.
// Each file is read once even if it is included from several places.
func (r *Reader) Load(path string, enc domain.Encoding) (*domain.SourceSet, error) {
	path = filepath.Clean(path)

	includes := graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles())
	if err := includes.AddVertex(path); err != nil {
		return nil, err
	}

	set := &domain.SourceSet{Path: path}
	visited := make(map[string]bool)
	if err := r.visit(includes, path, enc, visited, set); err != nil {
		return nil, err
	}
	return set, nil
}

func (r *Reader) visit(
	includes graph.Graph[string, string],
	file string,
	enc domain.Encoding,
	visited map[string]bool,
	set *domain.SourceSet,
) error {
	visited[file] = true
	set.Files = append(set.Files, file)

	rf, err := r.read(file, enc)
	if err != nil {
		return err
	}

	for _, entry := range rf.Entries {
		if entry.Requirement != nil {
			set.Requirements = append(set.Requirements, *entry.Requirement)
			continue
		}

		target := entry.Include
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(file), target)
		}
		target = filepath.Clean(target)

		if err := includes.AddVertex(target); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
			return err
		}
		err := includes.AddEdge(file, target)
		switch {
		case errors.Is(err, graph.ErrEdgeCreatesCycle):
			return &domain.ParseError{
				File: file,
				Line: entry.Origin.Line,
				Text: "-r " + entry.Include,
				Err:  domain.ErrIncludeCycle,
			}
		case err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists):
			return err
		}

		if visited[target] {
			continue
		}
		if err := r.visit(includes, target, enc, visited, set); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reader) read(file string, enc domain.Encoding) (*domain.RequirementsFile, error) {
	data, err := r.fs.ReadFile(file)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", file)
	}

	text, err := Decode(data, enc)
	if err != nil {
		return nil, zerr.With(zerr.With(err, "path", file), "encoding", string(enc))
	}

	return parser.Parse(file, text)
}
