package scene

// Default returns the built-in desk still life: a wooden table carrying a
// cup, a pencil, a book, and a glass desk lamp. It doubles as a worked
// example of the descriptor format.
func Default() *Scene {
	noTop := &CapOptions{Top: false, Bottom: true, Sides: true}
	noBottom := &CapOptions{Top: true, Bottom: false, Sides: true}

	s := &Scene{
		Textures: []TextureFile{
			{Path: "textures/wooden_table.jpg", Tag: "wooden_table"},
			{Path: "textures/green_book.jpg", Tag: "green_book"},
			{Path: "textures/glass_lamp.jpg", Tag: "glass_lamp"},
			{Path: "textures/lightbulb_filament.jpg", Tag: "lightbulb_filament"},
		},
		Materials: []MaterialDef{
			{Tag: "wood", Diffuse: Vec3{0.5, 0.35, 0.2}, Specular: Vec3{0.2, 0.2, 0.2}, Shininess: 8},
			{Tag: "porcelain", Diffuse: Vec3{0.9, 0.9, 0.9}, Specular: Vec3{0.8, 0.8, 0.8}, Shininess: 64},
			{Tag: "metal", Diffuse: Vec3{0.4, 0.4, 0.45}, Specular: Vec3{0.9, 0.9, 0.9}, Shininess: 96},
			{Tag: "paper", Diffuse: Vec3{0.95, 0.95, 0.9}, Specular: Vec3{0.05, 0.05, 0.05}, Shininess: 2},
			{Tag: "glass", Diffuse: Vec3{0.9, 0.9, 0.95}, Specular: Vec3{1, 1, 1}, Shininess: 128},
		},
		Lights: Lights{
			Directional: &DirectionalDef{
				Direction: Vec3{-0.2, -1, -0.3},
				Ambient:   Vec3{0.3, 0.3, 0.3},
				Diffuse:   Vec3{0.6, 0.6, 0.6},
				Specular:  Vec3{0.9, 0.9, 0.9},
			},
			Points: []PointDef{
				{
					// The lamp bulb.
					Position: Vec3{4, 7.1, 1},
					Ambient:  Vec3{0.05, 0.05, 0.05},
					Diffuse:  Vec3{1, 1, 0.8},
					Specular: Vec3{1, 1, 0.8},
					Constant: 1, Linear: 0.09, Quadratic: 0.032,
				},
			},
		},
		Objects: []Object{
			{
				Name: "table", Shape: ShapePlane,
				Scale: Vec3{15, 1.2, 15},
				Texture: "wooden_table", Material: "wood", Edges: true,
			},
			{
				Name: "cup outer", Shape: ShapeCylinder,
				Scale: Vec3{0.7, 1.4, 0.7}, Position: Vec3{0, 0.1, 3},
				Material: "porcelain", Edges: true, Caps: noTop,
			},
			{
				Name: "cup inner", Shape: ShapeCylinder,
				Scale: Vec3{0.65, 1.4, 0.65}, Position: Vec3{0, 0.1, 3},
				Material: "porcelain", Edges: true, Caps: noTop,
			},
			{
				Name: "cup handle", Shape: ShapeHalfTorus,
				Scale: Vec3{0.5, 0.5, 0.5}, Rotation: Vec3{0, 0, 90}, Position: Vec3{-0.7, 0.7, 3},
				Material: "porcelain", Edges: true,
			},
			{
				Name: "pencil body", Shape: ShapeCylinder,
				Scale: Vec3{0.07, 3, 0.07}, Rotation: Vec3{0, 0, 90}, Position: Vec3{-2, 0.1, 6},
				Color: Color{1, 0.843, 0, 1}, Material: "wood", Edges: true,
			},
			{
				Name: "pencil ferrule", Shape: ShapeCylinder,
				Scale: Vec3{0.075, 0.15, 0.075}, Rotation: Vec3{0, 0, 90}, Position: Vec3{-2, 0.1, 6},
				Color: Color{0.75, 0.75, 0.75, 1}, Material: "metal", Edges: true,
			},
			{
				Name: "pencil eraser", Shape: ShapeCylinder,
				Scale: Vec3{0.075, 0.2, 0.075}, Rotation: Vec3{0, 0, 90}, Position: Vec3{-1.8, 0.1, 6},
				Color: Color{0.96, 0.8, 0.8, 1}, Edges: true,
			},
			{
				Name: "pencil tip", Shape: ShapeCone,
				Scale: Vec3{0.065, 0.2, 0.065}, Rotation: Vec3{0, 75, 90}, Position: Vec3{-5, 0.1, 6},
				Color: Color{0.824, 0.706, 0.549, 1}, Material: "wood", Edges: true,
			},
			{
				Name: "pencil graphite", Shape: ShapeCone,
				Scale: Vec3{0.01, 0.08, 0.02}, Rotation: Vec3{0, 75, 90}, Position: Vec3{-5.16, 0.1, 6},
				Color: Color{0.2, 0.2, 0.2, 1}, Edges: true,
			},
			{
				Name: "book cover", Shape: ShapeBox,
				Scale: Vec3{2.5, 0.2, 4.2}, Rotation: Vec3{0, 15, 0}, Position: Vec3{2, 0.3, 6},
				Texture: "green_book", Material: "paper", Edges: true,
			},
			{
				Name: "book pages", Shape: ShapeBox,
				Scale: Vec3{2.4, 0.18, 4.2}, Rotation: Vec3{0, 15, 0}, Position: Vec3{2.1, 0.3, 6},
				Material: "paper", Edges: true,
			},
			{
				Name: "lamp base", Shape: ShapeCylinder,
				Scale: Vec3{1.9, 0.5, 1.9}, Position: Vec3{4, 0.1, 1},
				Color: Color{0.3, 0.3, 0.3, 1}, Material: "metal", Edges: true,
			},
			{
				Name: "lamp knob", Shape: ShapeCylinder,
				Scale: Vec3{0.2, 0.8, 0.2}, Position: Vec3{2.7, 0.1, 1},
				Color: Color{0.3, 0.3, 0.3, 1}, Material: "metal", Edges: true,
			},
			{
				Name: "lamp arm", Shape: ShapeCylinder,
				Scale: Vec3{0.1, 1, 0.1}, Rotation: Vec3{0, 0, 90}, Position: Vec3{6.5, 1.1, 1},
				Color: Color{0.3, 0.3, 0.3, 1}, Material: "metal", Edges: true,
			},
			{
				Name: "lamp hinge", Shape: ShapeCylinder,
				Scale: Vec3{0.5, 1, 0.5}, Position: Vec3{5.5, 0.1, 1},
				Color: Color{0.3, 0.3, 0.3, 1}, Material: "metal", Edges: true,
			},
			{
				Name: "lamp hinge pin", Shape: ShapeCylinder,
				Scale: Vec3{0.1, 1.2, 0.1}, Position: Vec3{5.5, 0.1, 1},
				Color: Color{0.3, 0.3, 0.3, 1}, Material: "metal", Edges: true,
			},
			{
				Name: "lamp stand", Shape: ShapeCylinder,
				Scale: Vec3{0.1, 8.2, 0.1}, Position: Vec3{6.5, 0.7, 1},
				Color: Color{0.3, 0.3, 0.3, 1}, Material: "metal", Edges: true,
			},
			{
				Name: "lamp top arm", Shape: ShapeCylinder,
				Scale: Vec3{0.1, 3, 0.1}, Rotation: Vec3{0, 0, 90}, Position: Vec3{6.5, 8.8, 1},
				Color: Color{0.3, 0.3, 0.3, 1}, Material: "metal", Edges: true,
			},
			{
				Name: "lamp socket", Shape: ShapeCylinder,
				Scale: Vec3{0.8, 1.2, 0.8}, Position: Vec3{4, 7.7, 1},
				Color: Color{0.3, 0.3, 0.3, 1}, Material: "metal", Edges: true,
			},
			// Transparent pieces come last so the rest of the scene shows
			// through them.
			{
				Name: "lamp glass outer", Shape: ShapeCylinder,
				Scale: Vec3{1.7, 2.7, 1.7}, Position: Vec3{4, 5.1, 1},
				Color: Color{0.9, 0.9, 0.9, 0.3}, Texture: "glass_lamp", Material: "glass",
				Transparent: true, Caps: noBottom,
			},
			{
				Name: "lamp glass inner", Shape: ShapeCylinder,
				Scale: Vec3{1.6, 2.7, 1.6}, Position: Vec3{4, 5.1, 1},
				Color: Color{0.9, 0.9, 0.9, 0.3}, Texture: "glass_lamp", Material: "glass",
				Transparent: true, Caps: noBottom,
			},
			{
				Name: "lamp glass cap", Shape: ShapeCylinder,
				Scale: Vec3{1.7, 0.005, 1.7}, Position: Vec3{4, 7.805, 1},
				Color: Color{0.9, 0.9, 0.9, 0.3}, Texture: "glass_lamp", Material: "glass",
				Transparent: true,
			},
			{
				Name: "light bulb", Shape: ShapeSphere,
				Scale: Vec3{0.8, 0.8, 0.8}, Position: Vec3{4, 7.1, 1},
				Color: Color{1, 1, 0.6, 0.6}, Texture: "lightbulb_filament",
				Transparent: true,
			},
		},
	}
	s.applyDefaults()
	return s
}
