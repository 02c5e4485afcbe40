package factory

import (
	"github.com/automoto/menukit/archetypes"
	"github.com/automoto/menukit/components"
	"github.com/automoto/menukit/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// floatTravel is how far a floating platform drifts above its resting Y.
const floatTravel = 48

func CreatePlatform(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = platform

	components.Object.SetValue(platform, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return platform
}

func CreateFloatingPlatform(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = platform

	components.Object.SetValue(platform, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	// The floating platform moves using a *gween.Sequence sequence of tweens, moving it back and forth.
	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(y), float32(y-floatTravel), 2, ease.Linear),
		gween.New(float32(y-floatTravel), float32(y), 2, ease.Linear),
	)
	components.Tween.Set(platform, tw)

	return platform
}
