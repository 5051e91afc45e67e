package systems

import (
	"fmt"
	"log"

	"github.com/automoto/tilebrawl/components"
	"github.com/automoto/tilebrawl/shared/intent"
	"github.com/automoto/tilebrawl/shared/leveldata"
	"github.com/automoto/tilebrawl/systems/factory"
	"github.com/automoto/tilebrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelSource serves parsed level content by id.
type LevelSource interface {
	Content(id string) (*leveldata.Content, error)
}

// LoadLevels creates a region for each id and builds its colliders.
func LoadLevels(ecs *ecs.ECS, source LevelSource, ids []string) error {
	for _, id := range ids {
		content, err := source.Content(id)
		if err != nil {
			return fmt.Errorf("load levels: %w", err)
		}
		entry := factory.CreateLevel(ecs, content)
		BuildLevelColliders(ecs, entry, content)
	}
	log.Printf("Loaded %d level regions", len(ids))
	return nil
}

// MustLevel returns the region with the given id. A missing region is a
// programming error, so it panics.
func MustLevel(ecs *ecs.ECS, id string) *donburi.Entry {
	var found *donburi.Entry
	tags.Level.Each(ecs.World, func(e *donburi.Entry) {
		if found == nil && components.Level.Get(e).ID == id {
			found = e
		}
	})
	if found == nil {
		panic(fmt.Sprintf("level %q is not loaded", id))
	}
	return found
}

func mustContent(source LevelSource, id string) *leveldata.Content {
	content, err := source.Content(id)
	if err != nil {
		panic(fmt.Sprintf("no content for level %q: %v", id, err))
	}
	return content
}

func mustPlayer(ecs *ecs.ECS) *donburi.Entry {
	e, ok := tags.Player.First(ecs.World)
	if !ok {
		panic(fmt.Sprintf("actor %q does not exist", factory.PlayerName))
	}
	return e
}

// UpdateLevelSelection selects the region strictly containing the player's
// center. A center on a shared boundary, or outside every region, keeps the
// current selection.
func UpdateLevelSelection(ecs *ecs.ECS) {
	selEntry, ok := components.LevelSelection.First(ecs.World)
	if !ok {
		return
	}
	sel := components.LevelSelection.Get(selEntry)

	obj := components.Object.Get(mustPlayer(ecs)).Object
	cx, cy := obj.X+obj.W/2, obj.Y+obj.H/2

	next := ""
	tags.Level.Each(ecs.World, func(e *donburi.Entry) {
		level := components.Level.Get(e)
		if next == "" && level.Contains(cx, cy) {
			next = level.ID
		}
	})

	if next != "" && next != sel.Current {
		log.Printf("Entered level %s (from %s)", next, sel.Current)
		sel.Current = next
	}
}

// UpdateReset marks every region for reload when ResetLevel is held, then
// rebuilds whatever is marked.
func UpdateReset(ecs *ecs.ECS, f Frame, source LevelSource) {
	if f.Intents.Has(intent.ResetLevel) {
		tags.Level.Each(ecs.World, func(e *donburi.Entry) {
			components.Level.Get(e).NeedsReload = true
		})
	}
	ReloadMarkedLevels(ecs, source)
}

// ReloadMarkedLevels rebuilds the colliders of every region marked for
// reload, clears all hitboxes and puts the player back at its spawn point.
// It does nothing when no region is marked.
func ReloadMarkedLevels(ecs *ecs.ECS, source LevelSource) {
	var marked []*donburi.Entry
	tags.Level.Each(ecs.World, func(e *donburi.Entry) {
		if components.Level.Get(e).NeedsReload {
			marked = append(marked, e)
		}
	})
	if len(marked) == 0 {
		return
	}

	for _, e := range marked {
		level := components.Level.Get(e)
		BuildLevelColliders(ecs, e, mustContent(source, level.ID))
		level.NeedsReload = false
	}
	ClearHitboxes(ecs)
	ResetPlayer(mustPlayer(ecs))

	log.Printf("Reset %d levels", len(marked))
}

// ResetPlayer moves the player back to its spawn point, stopped and with a
// ready attack.
func ResetPlayer(e *donburi.Entry) {
	player := components.Player.Get(e)
	obj := components.Object.Get(e).Object
	obj.X = player.SpawnX - obj.W/2
	obj.Y = player.SpawnY - obj.H
	obj.Update()

	physics := components.Physics.Get(e)
	physics.SpeedX, physics.SpeedY = 0, 0
	physics.Contacts = nil
	physics.Grounded = false
	physics.Displacement.X, physics.Displacement.Y = 0, 0

	components.AttackCooldown.Get(e).Finish()
	player.Stance = components.StanceNormal
	log.Printf("Reset %s to spawn (%.0f, %.0f)", player.Name, player.SpawnX, player.SpawnY)
}

// ReloadLevel rebuilds one region from freshly read content without touching
// the player. Used when a level file changes on disk.
func ReloadLevel(ecs *ecs.ECS, content *leveldata.Content) {
	BuildLevelColliders(ecs, MustLevel(ecs, content.ID), content)
}
