package x11

import "github.com/jezek/xgbutil/xprop"

// Atoms holds every interned atom dwm.c keeps in its wmatom[]/netatom[]
// arrays (updatewmhints, setfullscreen, clientmessage, manage, etc.).
type Atoms struct {
	WMProtocols    uint32
	WMDelete       uint32
	WMState        uint32
	WMTakeFocus    uint32

	NetActiveWindow       uint32
	NetSupported          uint32
	NetWMName             uint32
	NetWMState            uint32
	NetWMCheck            uint32
	NetWMFullscreen       uint32
	NetWMWindowType       uint32
	NetWMWindowTypeDialog uint32
	NetClientList         uint32
}

// InternAtoms resolves every atom dwm.c interns at startup (dwm.c's
// setup(): "wmatom[WMProtocols] = XInternAtom(dpy, "WM_PROTOCOLS", False)"
// and friends).
func InternAtoms(c *Conn) (*Atoms, error) {
	names := map[string]*uint32{}
	a := &Atoms{}
	names["WM_PROTOCOLS"] = &a.WMProtocols
	names["WM_DELETE_WINDOW"] = &a.WMDelete
	names["WM_STATE"] = &a.WMState
	names["WM_TAKE_FOCUS"] = &a.WMTakeFocus
	names["_NET_ACTIVE_WINDOW"] = &a.NetActiveWindow
	names["_NET_SUPPORTED"] = &a.NetSupported
	names["_NET_WM_NAME"] = &a.NetWMName
	names["_NET_WM_STATE"] = &a.NetWMState
	names["_NET_SUPPORTING_WM_CHECK"] = &a.NetWMCheck
	names["_NET_WM_STATE_FULLSCREEN"] = &a.NetWMFullscreen
	names["_NET_WM_WINDOW_TYPE"] = &a.NetWMWindowType
	names["_NET_WM_WINDOW_TYPE_DIALOG"] = &a.NetWMWindowTypeDialog
	names["_NET_CLIENT_LIST"] = &a.NetClientList

	for name, dst := range names {
		atom, err := xprop.Atm(c.X, name)
		if err != nil {
			return nil, err
		}
		*dst = uint32(atom)
	}
	return a, nil
}

// Supported lists every _NET_SUPPORTED atom dwm.c advertises in setup();
// Conn.SetSupported writes this list onto root.
func (a *Atoms) Supported() []uint32 {
	return []uint32{
		a.NetActiveWindow,
		a.NetSupported,
		a.NetWMName,
		a.NetWMState,
		a.NetWMCheck,
		a.NetWMFullscreen,
		a.NetWMWindowType,
		a.NetWMWindowTypeDialog,
		a.NetClientList,
	}
}
