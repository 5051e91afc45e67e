package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LayoutFile is read from the levels directory when present.
const LayoutFile = "world.yaml"

// Source serves parsed level content by id. Levels are parsed once on open and
// again only through Reload.
type Source struct {
	fsys       fs.FS
	dir        string
	placements map[string]Placement
	order      []string
	levels     map[string]*Content
}

// OpenSource discovers the levels under dir. When dir holds a world.yaml its
// entries decide ids and world origins; otherwise every .tmx file is a level
// named by its stem and the levels are laid out left to right in name order.
func OpenSource(fsys fs.FS, dir string) (*Source, error) {
	placements, err := readLayout(fsys, dir)
	if err != nil {
		return nil, err
	}

	s := &Source{
		fsys:       fsys,
		dir:        dir,
		placements: make(map[string]Placement, len(placements)),
		levels:     make(map[string]*Content, len(placements)),
	}

	autoLayout := len(placements) > 0 && placements[0].autoPlaced
	nextX := 0.0
	for _, p := range placements {
		if _, dup := s.placements[p.ID]; dup {
			return nil, fmt.Errorf("open levels %s: duplicate level id %q", dir, p.ID)
		}
		if autoLayout {
			p.X = nextX
		}
		content, err := LoadContent(fsys, path.Join(dir, p.File), p.ID, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("open levels %s: %w", dir, err)
		}
		if autoLayout {
			_, _, maxX, _ := content.Bounds()
			nextX = maxX
		}
		s.placements[p.ID] = p.Placement
		s.levels[p.ID] = content
		s.order = append(s.order, p.ID)
	}

	log.Printf("Loaded %d levels from %s", len(s.order), dir)
	return s, nil
}

type placement struct {
	Placement
	autoPlaced bool
}

func readLayout(fsys fs.FS, dir string) ([]placement, error) {
	data, err := fs.ReadFile(fsys, path.Join(dir, LayoutFile))
	if err == nil {
		var layout WorldLayout
		if err := yaml.Unmarshal(data, &layout); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", LayoutFile, err)
		}
		if len(layout.Levels) == 0 {
			return nil, fmt.Errorf("%s lists no levels", LayoutFile)
		}
		out := make([]placement, 0, len(layout.Levels))
		for _, p := range layout.Levels {
			if p.ID == "" {
				p.ID = strings.TrimSuffix(p.File, ".tmx")
			}
			out = append(out, placement{Placement: p})
		}
		return out, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", LayoutFile, err)
	}

	pattern := path.Join(dir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", dir)
	}
	sort.Strings(matches)

	out := make([]placement, 0, len(matches))
	for _, m := range matches {
		file := path.Base(m)
		out = append(out, placement{
			Placement:  Placement{ID: strings.TrimSuffix(file, ".tmx"), File: file},
			autoPlaced: true,
		})
	}
	return out, nil
}

// IDs returns level ids in layout order.
func (s *Source) IDs() []string {
	return append([]string(nil), s.order...)
}

// Content returns the parsed content for id.
func (s *Source) Content(id string) (*Content, error) {
	c, ok := s.levels[id]
	if !ok {
		return nil, fmt.Errorf("level %q: %w", id, ErrUnknownLevel)
	}
	return c, nil
}

// Reload parses id's file again, keeping its world placement.
func (s *Source) Reload(id string) (*Content, error) {
	old, ok := s.levels[id]
	if !ok {
		return nil, fmt.Errorf("reload level %q: %w", id, ErrUnknownLevel)
	}
	p := s.placements[id]
	content, err := LoadContent(s.fsys, path.Join(s.dir, p.File), id, old.OriginX, old.OriginY)
	if err != nil {
		return nil, fmt.Errorf("reload level %q: %w", id, err)
	}
	s.levels[id] = content
	return content, nil
}

// IDForFile maps a level file name (any directory prefix is ignored) to its id.
func (s *Source) IDForFile(name string) (string, bool) {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	for _, id := range s.order {
		if path.Base(s.placements[id].File) == base {
			return id, true
		}
	}
	return "", false
}
