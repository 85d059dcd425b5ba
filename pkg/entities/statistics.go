package entities

import "time"

// PlayerStatistics represents aggregated round outcomes for one player over a session
type PlayerStatistics struct {
	PlayerID    string
	Name        string
	Rounds      int
	HandsPlayed int
	Wins        int
	Losses      int
	Draws       int
	Naturals    int
	Busts       int
	Splits      int
	LastUpdated time.Time
}

// WinRate calculates the player's win rate per hand as a percentage
func (s *PlayerStatistics) WinRate() float64 {
	if s.HandsPlayed == 0 {
		return 0.0
	}
	return float64(s.Wins) / float64(s.HandsPlayed) * 100.0
}

// Net returns wins minus losses
func (s *PlayerStatistics) Net() int {
	return s.Wins - s.Losses
}
