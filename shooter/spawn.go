package shooter

// SpawnEnemy adds one enemy at a random column along the top edge, moving at
// the current level's speed.
func (s *State) SpawnEnemy() *Enemy {
	span := s.width - EnemySize
	if span < 0 {
		span = 0
	}
	e := &Enemy{
		X:     s.rng.Float64() * span,
		Y:     0,
		Speed: EnemySpeed(s.Level),
	}
	s.Enemies = append(s.Enemies, e)
	return e
}
