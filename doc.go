// Package ssengine is a small sprite-stacking pixel-art engine for
// [Ebitengine].
//
// Game content is drawn onto a low-resolution canvas that is upscaled with
// nearest-neighbor sampling to the window every frame, which gives the
// pixel-art look. Sprites are stacks of layer images ("slices") drawn bottom
// to top with a small vertical offset, each rotated on its own, so a flat
// stack reads as a solid object with height.
//
// # Quick start
//
//	engine, err := ssengine.NewEngine(ssengine.NewEbitenBackend(), ssengine.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	layers, err := ssengine.LoadLayers(engine.Backend(), "assets/car")
//	if err != nil {
//		log.Fatal(err)
//	}
//	car, _ := ssengine.NewSprite(engine.Backend(), layers, ssengine.Size{W: 20, H: 20},
//		ssengine.Vec2{X: 64, Y: 48})
//	engine.AddSprite(car)
//	engine.OnUpdate(func() error {
//		car.Rotation += 45 * engine.DeltaTime()
//		return nil
//	})
//	if err := engine.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Frame order
//
// [Engine.Update] polls events, clears the canvas, runs update hooks,
// renders sprites in insertion order, scales the canvas onto the window,
// draws the optional FPS readout, runs after-update hooks, presents and
// paces. UI built from [Button], [Label] and [UIBase] draws straight onto
// [Engine.Screen] from an after-update hook so it is never upscaled.
//
// A window close comes back as [ErrQuit] from Update; [Engine.Run] turns it
// into a nil return and leaves exiting to the caller.
//
// # Backends
//
// [EbitenBackend] opens a real window. [SoftwareBackend] renders headless
// into RGBA images and accepts injected input, which is what the tests and
// [TestRunner] scripts use. On Linux, [FramebufferBackend] writes software
// frames to a framebuffer device.
//
// [Ebitengine]: https://ebitengine.org
package ssengine
