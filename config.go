package goenum

import "sync/atomic"

import s "github.com/bnclabs/gosettings"
import "github.com/bnclabs/golog"

// Defaultsettings for goenum package, applied via Setconfig.
//
// "force.minblock" (int64, default: 32),
//		Initial capacity, in elements, of the backing slice
//		allocated while forcing an enumeration.
//
// "log.level" (string, default: "info"),
//		Logging level, applicable once logging is enabled through
//		LogComponents.
//
// "log.file" (string, default: ""),
//		Log to file, instead of console.
func Defaultsettings() s.Settings {
	return s.Settings{
		"force.minblock": int64(32),
		"log.level":      "info",
		"log.file":       "",
	}
}

var forceminblock = int64(32)

// Setconfig apply settings on the package, settings missing from
// setts assume their default value.
func Setconfig(setts s.Settings) {
	setts = (s.Settings{}).Mixin(Defaultsettings(), setts)
	atomic.StoreInt64(&forceminblock, setts.Int64("force.minblock"))
	log.SetLogger(nil, map[string]interface{}(setts.Section("log.")))
}
