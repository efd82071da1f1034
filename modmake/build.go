package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	imgscrambleVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	app := NewAppBuild("imgscramble", "cmd/imgscramble", imgscrambleVersion)
	app.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", imgscrambleVersion).
			CgoEnabled(false)
	})
	app.Variant("windows", "amd64")
	app.Variant("linux", "amd64")
	app.Variant("linux", "arm64")
	app.Variant("darwin", "amd64")
	app.Variant("darwin", "arm64")
	b.ImportApp(app)

	b.Execute()
}
