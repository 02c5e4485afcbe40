package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/menukit/assets/animations"
	"github.com/automoto/menukit/components"
	cfg "github.com/automoto/menukit/config"
)

// SpawnDecor creates the spark flipbook entity if it does not exist yet.
func SpawnDecor(e *ecs.ECS) {
	if _, ok := components.Animation.First(e.World); ok {
		return
	}
	entry := e.World.Entry(e.World.Create(components.Animation))
	components.Animation.SetValue(entry, components.AnimationData{
		Flipbook: animations.NewAnimation(0, cfg.UI.SparkFrames-1, 9),
		ImageID:  cfg.ImageSpark,
	})
}

// UpdateDecor advances the decor flipbooks and pushes each frame into its
// menu image's material slot. Screens without the image skip silently.
func UpdateDecor(e *ecs.ECS) {
	menu := GetOrCreateMenu(e)
	if !menu.Menu.IsConfigured() {
		return
	}

	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		anim := components.Animation.Get(entry)
		anim.Flipbook.Update()
		if img := menu.Menu.FindImageByID(anim.ImageID); img != nil {
			img.SetCurrentMaterial(anim.Flipbook.Frame())
		}
	})
}
