package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/automoto/tilebrawl/shared/tilemesh"
	"github.com/lafriks/go-tiled"
)

// LoadContent parses a TMX file and returns its solid cells and spawn point.
// It takes an fs.FS so callers can pass embed.FS or os.DirFS. originX/originY
// place the level's top-left corner in the world.
func LoadContent(fsys fs.FS, tmxPath, id string, originX, originY float64) (*Content, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("load TMX %s: non-square tiles %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	content := &Content{
		ID:       id,
		Path:     tmxPath,
		Width:    levelMap.Width,
		Height:   levelMap.Height,
		CellSize: float64(levelMap.TileWidth),
		OriginX:  originX,
		OriginY:  originY,
		Solid:    tilemesh.NewCellSet(),
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != WallLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				content.Solid.Add(tilemesh.Cell{X: x, Y: y})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != SpawnGroup || len(og.Objects) == 0 {
			continue
		}
		o := og.Objects[0]
		content.Spawn = &SpawnPoint{X: originX + o.X, Y: originY + o.Y}
		break
	}

	return content, nil
}
