// Command dwm is the bootstrap binary: it parses the tiny dwm.c-style CLI
// (bare invocation, -v, or a usage error), builds the default keybinding
// and button tables (the Go analogue of dwm's config.def.h, which lives
// outside the core packages per spec §1), loads the ambient TOML settings,
// connects to the display, and runs the window manager until Quit.
package main

import (
	"fmt"
	"os"

	"github.com/jezek/xgb/xproto"
	log "github.com/sirupsen/logrus"

	"github.com/delta1024/dwm/config"
	"github.com/delta1024/dwm/drawx"
	"github.com/delta1024/dwm/layout"
	"github.com/delta1024/dwm/procconfig"
	"github.com/delta1024/dwm/store"
	"github.com/delta1024/dwm/wm"
	"github.com/delta1024/dwm/x11"
)

const version = "6.5"

// checkUsage mirrors dwm.c main()'s argument handling exactly: bare
// invocation runs normally, "-v" prints the version and exits 0, anything
// else is a usage error printed to stderr with exit status 1.
func checkUsage(args []string) (shouldRun bool) {
	switch len(args) {
	case 1:
		return true
	case 2:
		if args[1] == "-v" {
			fmt.Println("dwm-" + version)
			os.Exit(0)
		}
	}
	fmt.Fprintf(os.Stderr, "usage: dwm [-v]\n")
	os.Exit(1)
	return false
}

func main() {
	checkUsage(os.Args)

	settings := procconfig.Load()
	procconfig.ApplyLogLevel(settings)

	conn, err := x11.Connect()
	if err != nil {
		log.WithError(err).Fatal("dwm: cannot open display")
	}
	defer conn.Close()

	if err := conn.CheckOtherWM(); err != nil {
		log.WithError(err).Fatal("dwm: startup")
	}

	atoms, err := x11.InternAtoms(conn)
	if err != nil {
		log.WithError(err).Fatal("dwm: cannot intern atoms")
	}

	cfg := buildConfig()

	checkWin, _ := conn.CreateSimpleWindow(0, 0, 1, 1, 0)
	conn.SetWMCheck(checkWin, atoms, "dwm")

	surf, err := drawx.New(conn.X, conn.Root, uint16(conn.ScreenW), uint16(conn.ScreenH))
	if err != nil {
		log.WithError(err).Fatal("dwm: cannot create drawing surface")
	}

	world := wm.New(conn, atoms, surf, cfg, x11.RandRScreens{Conn: conn})
	world.Layouts = []store.Layout{
		{Symbol: "[]=", Arrange: layout.Tile},
		{Symbol: "[M]", Arrange: layout.Monocle},
		{Symbol: "><>", Arrange: nil},
	}
	world.Keys = defaultKeys(cfg)
	world.Buttons = defaultButtons()

	if err := world.Setup(); err != nil {
		log.WithError(err).Fatal("dwm: setup failed")
	}
	world.Scan()
	world.Run()
	world.Cleanup()
}

func buildConfig() config.Config {
	cfg := config.Default()
	cfg.Rules = []config.Rule{
		{Class: "Gimp", IsFloating: true, MonitorHint: -1},
		{Class: "Firefox", Tags: 1 << 8, MonitorHint: -1},
	}
	return cfg
}

// Standard X11 keysyms dwm.c's config.h binds by name via keysymdef.h.
const (
	xkReturn = 0xff0d
	xkB      = 0x0062
	xkP      = 0x0070
	xkQ      = 0x0071
	xkJ      = 0x006a
	xkK      = 0x006b
	xkI      = 0x0069
	xkD      = 0x0064
	xkH      = 0x0068
	xkL      = 0x006c
	xkT      = 0x0074
	xkF      = 0x0066
	xkM      = 0x006d
	xkSpace  = 0x0020
	xkComma  = 0x002c
	xkPeriod = 0x002e
	xkTab    = 0xff09
	xk1      = 0x0031
	xk0      = 0x0030
	xkE      = 0x0065
)

const (
	modKey  = xproto.ModMask1
	shift   = xproto.ModMaskShift
	control = xproto.ModMaskControl
)

// defaultKeys builds the sample binding table cmd/dwm ships as a working
// default, structurally identical to dwm.c's config.h keys[] array.
func defaultKeys(cfg config.Config) []wm.Key {
	keys := []wm.Key{
		{Mod: modKey, Keysym: xkP, Func: wm.Spawn, Arg: wm.Arg{Str: cfg.DmenuCmd}},
		{Mod: modKey | shift, Keysym: xkReturn, Func: wm.Spawn, Arg: wm.Arg{Str: cfg.TermCmd}},
		{Mod: modKey, Keysym: xkB, Func: wm.ToggleBar},
		{Mod: modKey, Keysym: xkJ, Func: wm.FocusStack, Arg: wm.Arg{I: 1}},
		{Mod: modKey, Keysym: xkK, Func: wm.FocusStack, Arg: wm.Arg{I: -1}},
		{Mod: modKey, Keysym: xkI, Func: wm.IncNMaster, Arg: wm.Arg{I: 1}},
		{Mod: modKey, Keysym: xkD, Func: wm.IncNMaster, Arg: wm.Arg{I: -1}},
		{Mod: modKey, Keysym: xkH, Func: wm.SetMFact, Arg: wm.Arg{F: -0.05}},
		{Mod: modKey, Keysym: xkL, Func: wm.SetMFact, Arg: wm.Arg{F: 0.05}},
		{Mod: modKey, Keysym: xkReturn, Func: wm.Zoom},
		{Mod: modKey, Keysym: xkTab, Func: bumpView},
		{Mod: modKey, Keysym: xkQ, Func: wm.KillClient},
		{Mod: modKey, Keysym: xkT, Func: wm.SetLayout, Arg: wm.Arg{I: 0}},
		{Mod: modKey, Keysym: xkM, Func: wm.SetLayout, Arg: wm.Arg{I: 1}},
		{Mod: modKey, Keysym: xkF, Func: wm.SetLayout, Arg: wm.Arg{I: 2}},
		{Mod: modKey, Keysym: xkSpace, Func: wm.SetLayout, Arg: wm.Arg{I: -1}},
		{Mod: modKey | shift, Keysym: xkSpace, Func: wm.ToggleFloating},
		{Mod: modKey, Keysym: xk0, Func: wm.View, Arg: wm.Arg{UI: ^uint32(0)}},
		{Mod: modKey | shift, Keysym: xk0, Func: wm.Tag, Arg: wm.Arg{UI: ^uint32(0)}},
		{Mod: modKey, Keysym: xkComma, Func: wm.FocusMon, Arg: wm.Arg{I: -1}},
		{Mod: modKey, Keysym: xkPeriod, Func: wm.FocusMon, Arg: wm.Arg{I: 1}},
		{Mod: modKey | shift, Keysym: xkComma, Func: wm.TagMon, Arg: wm.Arg{I: -1}},
		{Mod: modKey | shift, Keysym: xkPeriod, Func: wm.TagMon, Arg: wm.Arg{I: 1}},
		{Mod: modKey | shift, Keysym: xkE, Func: wm.Quit},
	}
	for i := 0; i < len(cfg.Tags) && i < 9; i++ {
		tagMask := uint32(1) << uint(i)
		sym := uint32(xk1 + i)
		keys = append(keys,
			wm.Key{Mod: modKey, Keysym: sym, Func: wm.View, Arg: wm.Arg{UI: tagMask}},
			wm.Key{Mod: modKey | control, Keysym: sym, Func: wm.ToggleView, Arg: wm.Arg{UI: tagMask}},
			wm.Key{Mod: modKey | shift, Keysym: sym, Func: wm.Tag, Arg: wm.Arg{UI: tagMask}},
			wm.Key{Mod: modKey | shift | control, Keysym: sym, Func: wm.ToggleTag, Arg: wm.Arg{UI: tagMask}},
		)
	}
	return keys
}

func bumpView(w *wm.World, _ *wm.Arg) {
	wm.View(w, &wm.Arg{UI: 0})
}

func defaultButtons() []wm.Button {
	return []wm.Button{
		{Click: wm.ClkLtSymbol, Button: xproto.ButtonIndex1, Func: wm.SetLayout, Arg: wm.Arg{I: -1}},
		{Click: wm.ClkWinTitle, Button: xproto.ButtonIndex2, Func: wm.Zoom},
		{Click: wm.ClkClientWin, Mod: modKey, Button: xproto.ButtonIndex1, Func: wm.MoveMouse},
		{Click: wm.ClkClientWin, Mod: modKey, Button: xproto.ButtonIndex2, Func: wm.ToggleFloating},
		{Click: wm.ClkClientWin, Mod: modKey, Button: xproto.ButtonIndex3, Func: wm.ResizeMouse},
		{Click: wm.ClkTagBar, Button: xproto.ButtonIndex1, Func: wm.View},
		{Click: wm.ClkTagBar, Button: xproto.ButtonIndex3, Func: wm.ToggleView},
		{Click: wm.ClkTagBar, Mod: modKey, Button: xproto.ButtonIndex1, Func: wm.Tag},
		{Click: wm.ClkTagBar, Mod: modKey, Button: xproto.ButtonIndex3, Func: wm.ToggleTag},
	}
}
