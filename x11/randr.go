package x11

import (
	"github.com/jezek/xgb/randr"

	"github.com/delta1024/dwm/common"
)

// RandRScreens implements ScreenEnumerator against the RandR extension,
// the modern replacement for the Xinerama query dwm.c's updategeom()
// falls back to when XINERAMA isn't compiled in (grounded on the
// teacher's own RandR usage for multi-head layout in store/root.go).
type RandRScreens struct {
	Conn *Conn
}

func (r RandRScreens) Screens() ([]ScreenRect, error) {
	if err := randr.Init(r.Conn.X.Conn()); err != nil {
		return nil, err
	}
	resources, err := randr.GetScreenResources(r.Conn.X.Conn(), r.Conn.Root).Reply()
	if err != nil {
		return nil, err
	}
	var rects []ScreenRect
	for _, output := range resources.Outputs {
		oinfo, err := randr.GetOutputInfo(r.Conn.X.Conn(), output, 0).Reply()
		if err != nil || oinfo.Connection != randr.ConnectionConnected || oinfo.Crtc == 0 {
			continue
		}
		cinfo, err := randr.GetCrtcInfo(r.Conn.X.Conn(), oinfo.Crtc, 0).Reply()
		if err != nil {
			continue
		}
		rects = append(rects, common.Rect{
			X: int(cinfo.X), Y: int(cinfo.Y),
			W: int(cinfo.Width), H: int(cinfo.Height),
		})
	}
	if len(rects) == 0 {
		return nil, nil
	}
	return rects, nil
}
