package session

import log "github.com/sirupsen/logrus"

// beatSystem advances the beat line. Every beat that leaves the line without
// being hit drops the floor by one row.
func beatSystem(s *Session) error {
	if err := s.line.Update(); err != nil {
		return err
	}
	if missed := s.line.Cleanup(); missed > 0 {
		s.missed += missed
		s.tower.MoveFloor(float64(missed))
		log.WithFields(log.Fields{"missed": missed, "floor": s.tower.TargetFloor()}).Debug("beats missed")
	}
	return nil
}

func abilitySystem(s *Session) error {
	s.bar.Update()
	return nil
}

// towerSystem keeps rows loaded above both the floor and the player.
func towerSystem(s *Session) error {
	s.tower.SetFocus(s.player.Y)
	return s.tower.Update()
}
