package x11

import (
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil/icccm"
	"github.com/jezek/xgbutil/xprop"
)

// WMState mirrors the two values dwm.c's WM_STATE property ever carries
// (setclientstate's WithdrawnState/NormalState/IconicState — dwm only ever
// sets the first two).
type WMState uint32

const (
	WithdrawnState WMState = 0
	NormalState    WMState = 1
	IconicState    WMState = 3
)

// SetWMState writes the ICCCM WM_STATE property (dwm.c's
// setclientstate()).
func (c *Conn) SetWMState(win xproto.Window, atoms *Atoms, state WMState) {
	xprop.ChangeProp32(c.X, win, "WM_STATE", "WM_STATE", uint(state), 0)
}

// GetWMState reads back WM_STATE, or -1 if absent (dwm.c's getstate()).
func (c *Conn) GetWMState(win xproto.Window) int {
	reply, err := xprop.GetProperty(c.X, win, "WM_STATE")
	if err != nil || len(reply.Value) < 4 {
		return -1
	}
	return int(reply.Value[0])
}

// GetWMProtocols reports whether win advertises support for proto (dwm.c's
// "XGetWMProtocols" loop inside sendevent()).
func (c *Conn) GetWMProtocols(win xproto.Window, proto xproto.Atom) bool {
	protos, err := icccm.WmProtocolsGet(c.X, win)
	if err != nil {
		return false
	}
	protoName, err := xprop.AtomName(c.X, proto)
	if err != nil {
		return false
	}
	for _, p := range protos {
		if p == protoName {
			return true
		}
	}
	return false
}

// NormalHints mirrors the WM_NORMAL_HINTS fields dwm.c's updatesizehints()
// reads, decoded via xgbutil/icccm so wm never has to touch xgbutil
// directly.
type NormalHints struct {
	Flags                                     uint
	MinWidth, MinHeight, MaxWidth, MaxHeight  uint
	WidthInc, HeightInc                       uint
	MinAspectNum, MinAspectDen                uint
	MaxAspectNum, MaxAspectDen                uint
	BaseWidth, BaseHeight                     uint
}

const (
	SizeHintPMinSize   = icccm.SizeHintPMinSize
	SizeHintPMaxSize   = icccm.SizeHintPMaxSize
	SizeHintPResizeInc = icccm.SizeHintPResizeInc
	SizeHintPAspect    = icccm.SizeHintPAspect
	SizeHintPBaseSize  = icccm.SizeHintPBaseSize
)

// GetNormalHints reads WM_NORMAL_HINTS, returning ok=false when the
// property is absent or malformed (dwm.c's "!XGetWMNormalHints" fallback
// to size.flags = PSize, i.e. no hints at all).
func (c *Conn) GetNormalHints(win xproto.Window) (NormalHints, bool) {
	nh, err := icccm.WmNormalHintsGet(c.X, win)
	if err != nil || nh == nil {
		return NormalHints{}, false
	}
	return NormalHints{
		Flags:        nh.Flags,
		MinWidth:     nh.MinWidth,
		MinHeight:    nh.MinHeight,
		MaxWidth:     nh.MaxWidth,
		MaxHeight:    nh.MaxHeight,
		WidthInc:     nh.WidthInc,
		HeightInc:    nh.HeightInc,
		MinAspectNum: nh.MinAspectNum,
		MinAspectDen: nh.MinAspectDen,
		MaxAspectNum: nh.MaxAspectNum,
		MaxAspectDen: nh.MaxAspectDen,
		BaseWidth:    nh.BaseWidth,
		BaseHeight:   nh.BaseHeight,
	}, true
}

// ClearUrgencyHint rewrites WM_HINTS with the urgency bit cleared (dwm.c's
// seturgent() "XSetWMHints" after clearing XUrgencyHint).
func (c *Conn) ClearUrgencyHint(win xproto.Window) {
	h, err := icccm.WmHintsGet(c.X, win)
	if err != nil || h == nil {
		return
	}
	h.Flags &^= icccm.HintUrgency
	icccm.WmHintsSet(c.X, win, h)
}

// GetWMHintsUrgentInput reads WM_HINTS' urgency bit and, when the input
// hint flag is present, its input hint (dwm.c's updatewmhints() urgency
// and c->neverfocus derivation).
func (c *Conn) GetWMHintsUrgentInput(win xproto.Window) (urgent, hasInput, input bool) {
	h, err := icccm.WmHintsGet(c.X, win)
	if err != nil || h == nil {
		return false, false, false
	}
	urgent = h.Flags&icccm.HintUrgency != 0
	hasInput = h.Flags&icccm.HintInput != 0
	input = h.Input != 0
	return urgent, hasInput, input
}

// GetTransientFor reads WM_TRANSIENT_FOR, returning (0, false) when absent
// (dwm.c's manage() "XGetTransientForHint").
func (c *Conn) GetTransientFor(win xproto.Window) (xproto.Window, bool) {
	t, err := icccm.WmTransientForGet(c.X, win)
	if err != nil {
		return 0, false
	}
	return t, true
}

// GetClassHint reads WM_CLASS (dwm.c's applyrules() "XGetClassHint").
func (c *Conn) GetClassHint(win xproto.Window) (class, instance string) {
	hint, err := icccm.WmClassGet(c.X, win)
	if err != nil || hint == nil {
		return "broken", "broken"
	}
	if hint.Class == "" {
		hint.Class = "broken"
	}
	if hint.Instance == "" {
		hint.Instance = "broken"
	}
	return hint.Class, hint.Instance
}

// GetWMName reads _NET_WM_NAME, falling back to WM_NAME, matching dwm.c's
// gettextprop used from updatetitle().
func (c *Conn) GetWMName(win xproto.Window) string {
	if name, err := xprop.PropValStr(xprop.GetProperty(c.X, win, "_NET_WM_NAME")); err == nil && name != "" {
		return name
	}
	if name, err := xprop.PropValStr(xprop.GetProperty(c.X, win, "WM_NAME")); err == nil {
		return name
	}
	return ""
}

// GetWindowTypeDialog reports whether win's _NET_WM_WINDOW_TYPE includes
// _NET_WM_WINDOW_TYPE_DIALOG (dwm.c's updatewindowtype()).
func (c *Conn) GetWindowTypeDialog(win xproto.Window, atoms *Atoms) bool {
	reply, err := xprop.GetProperty(c.X, win, "_NET_WM_WINDOW_TYPE")
	if err != nil {
		return false
	}
	vals, err := reply.ValueAtom()
	if err != nil {
		return false
	}
	return uint32(vals) == atoms.NetWMWindowTypeDialog
}

// GetFullscreenRequested reports whether win's _NET_WM_STATE already
// includes _NET_WM_STATE_FULLSCREEN (dwm.c's updatewindowtype()).
func (c *Conn) GetFullscreenRequested(win xproto.Window, atoms *Atoms) bool {
	reply, err := xprop.GetProperty(c.X, win, "_NET_WM_STATE")
	if err != nil {
		return false
	}
	for _, v := range reply.Value32() {
		if v == atoms.NetWMFullscreen {
			return true
		}
	}
	return false
}

// SetNetWMState rewrites _NET_WM_STATE to either just _NET_WM_STATE_
// FULLSCREEN or an empty property, matching dwm.c's setfullscreen() —
// including the zero-length payload it writes when clearing fullscreen,
// which is preserved here deliberately rather than "fixed" to omit the
// property entirely.
func (c *Conn) SetNetWMState(win xproto.Window, atoms *Atoms, fullscreen bool) {
	if fullscreen {
		xprop.ChangeProp32(c.X, win, "_NET_WM_STATE", "ATOM", uint(atoms.NetWMFullscreen))
		return
	}
	xproto.ChangeProperty(c.X.Conn(), xproto.PropModeReplace, win,
		xproto.Atom(atoms.NetWMState), xproto.AtomAtom, 32, 0, nil)
}

// SetWMCheck writes _NET_SUPPORTING_WM_CHECK and _NET_WM_NAME on the
// helper window dwm.c's setup() creates to advertise EWMH compliance.
func (c *Conn) SetWMCheck(win xproto.Window, atoms *Atoms, name string) {
	xprop.ChangeProp32(c.X, win, "_NET_SUPPORTING_WM_CHECK", "WINDOW", uint(win))
	xprop.ChangeProp32(c.X, c.Root, "_NET_SUPPORTING_WM_CHECK", "WINDOW", uint(win))
	xprop.ChangeProp(c.X, win, 8, "_NET_WM_NAME", "UTF8_STRING", []byte(name))
}

// SetSupported advertises the _NET_SUPPORTED atom list (dwm.c's setup()
// "XChangeProperty(dpy, root, netatom[NetSupported], XA_ATOM, 32, ...)").
func (c *Conn) SetSupported(atoms *Atoms) {
	vals := atoms.Supported()
	u := make([]uint, len(vals))
	for i, v := range vals {
		u[i] = uint(v)
	}
	xprop.ChangeProp32(c.X, c.Root, "_NET_SUPPORTED", "ATOM", u...)
}

// DeleteNetClientList removes _NET_CLIENT_LIST (dwm.c's cleanup()
// "XDeleteProperty(dpy, root, netatom[NetClientList])").
func (c *Conn) DeleteNetClientList(atoms *Atoms) {
	xproto.DeleteProperty(c.X.Conn(), c.Root, xproto.Atom(atoms.NetClientList))
}

// AppendNetClientList appends win to _NET_CLIENT_LIST. Manage uses it to
// add a new window without a full rebuild; RewriteNetClientList uses it
// to write each window of a rebuild.
func (c *Conn) AppendNetClientList(atoms *Atoms, win xproto.Window) {
	xproto.ChangeProperty(c.X.Conn(), xproto.PropModeAppend, c.Root,
		xproto.Atom(atoms.NetClientList), xproto.AtomWindow, 32, 1,
		xproto.Window(win).Bytes())
}

// RewriteNetClientList rebuilds _NET_CLIENT_LIST from scratch in arrange
// order across every monitor's client list (dwm.c's updateclientlist()).
func (c *Conn) RewriteNetClientList(atoms *Atoms, windows []xproto.Window) {
	c.DeleteNetClientList(atoms)
	for _, w := range windows {
		c.AppendNetClientList(atoms, w)
	}
}

// SetActiveWindow writes _NET_ACTIVE_WINDOW, or clears it to None (dwm.c's
// focus()/unfocus() "XDeleteProperty"/"XChangeProperty" pair).
func (c *Conn) SetActiveWindow(atoms *Atoms, win xproto.Window) {
	if win == 0 {
		xproto.DeleteProperty(c.X.Conn(), c.Root, xproto.Atom(atoms.NetActiveWindow))
		return
	}
	xprop.ChangeProp32(c.X, c.Root, "_NET_ACTIVE_WINDOW", "WINDOW", uint(win))
}
