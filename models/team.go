package models

import "time"

type Team struct {
	ID         int         `json:"id"`
	Name       string      `json:"name"`
	Sport      string      `json:"sport"`
	SkillLevel *string     `json:"skill_level,omitempty"`
	Location   *Coordinate `json:"location,omitempty"`
	CreatedBy  int         `json:"created_by"`
	CreatedAt  time.Time   `json:"created_at"`
}
