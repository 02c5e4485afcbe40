package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/menukit/components"
	cfg "github.com/automoto/menukit/config"
	"github.com/automoto/menukit/systems/factory"
	"github.com/automoto/menukit/tags"
)

const wallThickness = 16

// SpawnArena builds the playground: a walled box with a couple of ledges,
// one drifting platform, and the avatar standing on the floor.
func SpawnArena(e *ecs.ECS) {
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)

	width := float64(cfg.C.Width)
	height := float64(cfg.C.Height)
	ground := cfg.Arena.GroundHeight

	factory.CreateWall(e, 0, height-ground, width, ground)
	factory.CreateWall(e, 0, 0, wallThickness, height-ground)
	factory.CreateWall(e, width-wallThickness, 0, wallThickness, height-ground)

	factory.CreatePlatform(e, 96, 264, cfg.Arena.PlatformWidth, cfg.Arena.PlatformHeight)
	factory.CreatePlatform(e, 424, 208, cfg.Arena.PlatformWidth, cfg.Arena.PlatformHeight)
	factory.CreateFloatingPlatform(e, 260, 180, cfg.Arena.PlatformWidth, cfg.Arena.PlatformHeight)

	factory.CreatePlayer(e, width/2-cfg.Player.CollisionWidth/2, height-ground-cfg.Player.CollisionHeight)
}

// UpdatePlay moves the avatar from the merged action state and resolves
// collisions against the arena.
func UpdatePlay(e *ecs.ECS) {
	entry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	obj := components.Object.Get(entry)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		player.VX -= cfg.Player.Acceleration
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		player.VX += cfg.Player.Acceleration
	}

	if player.VX > cfg.Player.Friction {
		player.VX -= cfg.Player.Friction
	} else if player.VX < -cfg.Player.Friction {
		player.VX += cfg.Player.Friction
	} else {
		player.VX = 0
	}

	if player.VX > cfg.Player.MaxSpeed {
		player.VX = cfg.Player.MaxSpeed
	} else if player.VX < -cfg.Player.MaxSpeed {
		player.VX = -cfg.Player.MaxSpeed
	}

	if GetAction(input, cfg.ActionJump).JustPressed && player.OnGround {
		player.VY = -cfg.Player.JumpSpeed
		PlaySFX(e, cfg.SoundJump)
	}

	player.VY += cfg.Physics.Gravity
	if player.VY > cfg.Physics.MaxFallSpeed {
		player.VY = cfg.Physics.MaxFallSpeed
	}

	wasOnGround := player.OnGround
	resolvePlayerHorizontal(player, obj.Object)
	resolvePlayerVertical(player, obj.Object)
	obj.Update()

	if player.OnGround && !wasOnGround {
		PlaySFX(e, cfg.SoundLand)
	}
}

// resolvePlayerHorizontal handles horizontal movement and wall collision
func resolvePlayerHorizontal(player *components.PlayerData, object *resolv.Object) {
	dx := player.VX
	if dx == 0 {
		return
	}

	if check := object.Check(dx, 0, tags.ResolvSolid); check != nil {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			dx = check.ContactWithObject(solids[0]).X()
			player.VX = 0
		}
	}

	object.X += dx
}

// resolvePlayerVertical handles vertical movement and ground/platform collision
func resolvePlayerVertical(player *components.PlayerData, object *resolv.Object) {
	player.OnGround = false
	dy := player.VY

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		object.Y += dy
		return
	}

	if dy < 0 {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			player.VY = 0
			dy = check.ContactWithObject(solids[0]).Y()
		}
		object.Y += dy
		return
	}

	// Platforms only catch the avatar when it falls onto them from above.
	if platforms := check.ObjectsByTags(tags.ResolvPlatform); len(platforms) > 0 {
		platform := platforms[0]
		if object.Bottom() < platform.Y+4 {
			player.OnGround = true
			player.VY = 0
			object.Y += check.ContactWithObject(platform).Y()
			return
		}
	}

	if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
		player.OnGround = true
		player.VY = 0
		object.Y += check.ContactWithObject(solids[0]).Y()
		return
	}

	object.Y += dy
}

// UpdateFloatingPlatforms advances each drifting platform along its tween
// loop, carrying the avatar when it is riding one.
func UpdateFloatingPlatforms(e *ecs.ECS) {
	playerEntry, hasPlayer := components.Player.First(e.World)

	tags.FloatingPlatform.Each(e.World, func(entry *donburi.Entry) {
		tw := components.Tween.Get(entry)
		obj := components.Object.Get(entry)

		y, _, done := tw.Update(1.0 / 60.0)
		if done {
			tw.Reset()
		}
		delta := float64(y) - obj.Y
		obj.Y = float64(y)
		obj.Update()

		if hasPlayer && delta != 0 {
			playerObj := components.Object.Get(playerEntry)
			if playerObj.Bottom() <= obj.Y-delta+1 && playerObj.X < obj.X+obj.W && playerObj.X+playerObj.W > obj.X {
				if components.Player.Get(playerEntry).OnGround {
					playerObj.Y += delta
					playerObj.Update()
				}
			}
		}
	})
}

// DrawArena renders the playground box, the solids, and the avatar.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	vector.FillRect(
		screen,
		0, 0,
		float32(cfg.C.Width), float32(cfg.C.Height),
		cfg.Arena.BackdropColor,
		false,
	)

	components.Object.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Player) {
			return
		}
		obj := components.Object.Get(entry)
		vector.FillRect(
			screen,
			float32(obj.X), float32(obj.Y),
			float32(obj.W), float32(obj.H),
			cfg.Arena.WallColor,
			false,
		)
	})

	if entry, ok := components.Player.First(e.World); ok {
		obj := components.Object.Get(entry)
		vector.FillRect(
			screen,
			float32(obj.X), float32(obj.Y),
			float32(obj.W), float32(obj.H),
			cfg.Arena.PlayerColor,
			false,
		)
	}
}
