package engine

import (
	"fmt"
	"time"
)

// appendLog adds a formatted entry to the bounded turn log. Entry ids come
// from Meta.LogCounter, which keeps counting for the life of the game even
// after old entries are dropped from the front.
func (gs *GameState) appendLog(format string, args ...interface{}) {
	gs.Meta.LogCounter++
	gs.Log = append(gs.Log, LogEntry{
		ID:   gs.Meta.LogCounter,
		Time: time.Now().Unix(),
		Text: fmt.Sprintf(format, args...),
	})

	limit := gs.Config.LogLimit
	if limit <= 0 {
		limit = DefaultConfig().LogLimit
	}
	if over := len(gs.Log) - limit; over > 0 {
		gs.Log = append([]LogEntry(nil), gs.Log[over:]...)
	}
}
