package model

import "time"

// Dhikr is one devotional phrase with its repetition target.
// Target 0 means free mode (no cycle completion).
type Dhikr struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	Target int    `json:"target"`
}

// DhikrCatalog is the fixed set of phrases offered by the counter.
var DhikrCatalog = []Dhikr{
	{ID: 1, Text: "سبحان الله", Target: 33},
	{ID: 2, Text: "الحمد لله", Target: 33},
	{ID: 3, Text: "الله أكبر", Target: 33},
	{ID: 4, Text: "لا إله إلا الله", Target: 100},
	{ID: 5, Text: "أستغفر الله", Target: 100},
	{ID: 6, Text: "اللهم صلِّ على محمد", Target: 10},
	{ID: 7, Text: "لا حول ولا قوة إلا بالله", Target: 100},
	{ID: 99, Text: "تسبيح حر", Target: 0},
}

// DhikrByID looks up a catalog entry. The second return is false for
// unknown ids.
func DhikrByID(id int) (Dhikr, bool) {
	for _, d := range DhikrCatalog {
		if d.ID == id {
			return d, true
		}
	}
	return Dhikr{}, false
}

// TasbihState is a user's durable counter state. Count resets to zero on
// cycle completion, explicit reset, or dhikr selection change; Total and
// Laps only ever grow (Laps resets with the dhikr).
type TasbihState struct {
	UserID    int       `db:"user_id" json:"-"`
	DhikrID   int       `db:"dhikr_id" json:"dhikrId"`
	Count     int       `db:"count" json:"count"`
	Total     int       `db:"total" json:"total"`
	Laps      int       `db:"laps" json:"laps"`
	UpdatedAt time.Time `db:"updated_at" json:"-"`
}
