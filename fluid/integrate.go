package fluid

// Advance integrates one fixed time step: semi-implicit Euler on every
// particle, then wall and obstacle collision response. Forces must have
// been computed for this frame; Advance consumes them and leaves them in
// place until the next force pass overwrites them.
func (sv *Solver) Advance(s *State, dt float64) {
	for i := range s.Particles {
		p := &s.Particles[i]

		p.Vel = p.Vel.Add(p.Force.Scale(dt))
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))

		sv.collideWalls(s, p)
		sv.collideObstacles(s, p)
	}
}

// collideWalls clamps the particle to [0, Width] x [0, Height] and inverts
// the offending velocity component, scaled by the wall restitution. The
// bounce is inelastic: half the normal speed is lost per contact.
func (sv *Solver) collideWalls(s *State, p *Particle) {
	restitution := -sv.params.WallRestitution

	if p.Pos.X < 0 {
		p.Pos.X = 0
		p.Vel.X *= restitution
	}
	if p.Pos.X > s.Width {
		p.Pos.X = s.Width
		p.Vel.X *= restitution
	}
	if p.Pos.Y < 0 {
		p.Pos.Y = 0
		p.Vel.Y *= restitution
	}
	if p.Pos.Y > s.Height {
		p.Pos.Y = s.Height
		p.Vel.Y *= restitution
	}
}

// collideObstacles pushes the particle onto the surface of any obstacle it
// penetrated, along the line from the obstacle center through the particle,
// and applies the normal velocity response. The tangential component is
// untouched; with a response factor above 1 the contact is an energetic
// repulsion rather than a plain reflection.
func (sv *Solver) collideObstacles(s *State, p *Particle) {
	for _, ob := range s.Obstacles {
		diff := p.Pos.Sub(ob.Center)
		dist := diff.Len()
		if dist >= ob.Radius || dist == 0 {
			continue
		}

		normal := diff.Scale(1 / dist)
		p.Pos = ob.Center.Add(normal.Scale(ob.Radius))

		velAlongNormal := p.Vel.Dot(normal)
		p.Vel = p.Vel.Sub(normal.Scale(sv.params.ObstacleRestitution * velAlongNormal))
	}
}
