package x11

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	log "github.com/sirupsen/logrus"
)

// Core X11 request opcodes dwm.c's xerror() names explicitly. These are
// wire-protocol constants, not library-specific identifiers, so they stay
// stable across xgb versions.
const (
	opSetInputFocus      = 42
	opPolyText8          = 74
	opPolyFillRectangle  = 70
	opPolySegment        = 66
	opConfigureWindow    = 12
	opGrabButton         = 28
	opGrabKey            = 33
	opCopyArea           = 62
)

// IsBenign reports whether an X error matches dwm.c's xerror() allow-list:
// always BadWindow, plus a handful of specific (request, error) pairs that
// arise from races with a window disappearing mid-request.
func IsBenign(err xgb.Error) bool {
	switch e := err.(type) {
	case xproto.WindowError:
		return true
	case xproto.MatchError:
		return e.MajorOpcode == opSetInputFocus || e.MajorOpcode == opConfigureWindow
	case xproto.DrawableError:
		return e.MajorOpcode == opPolyText8 || e.MajorOpcode == opPolyFillRectangle ||
			e.MajorOpcode == opPolySegment || e.MajorOpcode == opCopyArea
	case xproto.AccessError:
		return e.MajorOpcode == opGrabButton || e.MajorOpcode == opGrabKey
	default:
		return false
	}
}

// HandleError is the error callback wired into the connection's event loop
// (dwm.c's "xerrorxlib = XSetErrorHandler(xerror)"). Unlike dwm.c's handler
// it never exits the process for non-benign errors — a Go error callback
// cannot unwind the caller's stack the way X's synchronous error return
// does, and killing the whole process from a callback would be a surprising
// divergence from "log and continue". Non-benign errors are logged at Error
// level instead.
func HandleError(err xgb.Error) {
	if IsBenign(err) {
		log.WithField("err", err).Debug("x11: benign error ignored")
		return
	}
	log.WithField("err", err).Error("x11: protocol error")
}
