// Package bar renders the status bar: tag occupancy/urgency boxes, the
// active layout symbol, the root window's status text (selected monitor
// only) and the selected client's title, matching dwm.c's
// drawbar()/drawbars(). It
// depends only on the draw.Surface contract and store's read-only data, so
// it can be driven in tests without an X connection.
package bar

import (
	"fmt"

	"github.com/delta1024/dwm/draw"
	"github.com/delta1024/dwm/store"
)

// Draw paints m's bar in one pass: tags, layout symbol, then status text
// right-aligned (on the selected monitor only), with the selected client's
// title filling the space left between them. statusText supplies the root window's WM_NAME the way dwm.c
// reads it from a global; isSelMon tells Draw whether m is the monitor
// that currently owns keyboard focus (dwm.c only draws status text there).
func Draw(surf draw.Surface, m *store.Monitor, tags []string, normal, selected draw.Scheme, isSelMon bool, statusText func() string) {
	if !m.ShowBar {
		return
	}

	occupied, urgent := tagState(m)
	x := 0

	for i, t := range tags {
		scheme := normal
		if m.TagSet[m.SelTags]&(1<<uint(i)) != 0 {
			scheme = selected
		}
		urg := urgent&(1<<uint(i)) != 0
		surf.SetScheme(scheme)
		tw := int(surf.GetTextWidth(t)) + int(surf.LinePadding())
		boxw := surf.Text(x, 0, uint16(tw), surf.BarHeight(), surf.LinePadding()/2, t, urg)

		if occupied&(1<<uint(i)) != 0 {
			side := uint16((boxw)/6) + 1
			surf.Rect(x+1, 1, side, side,
				isSelMon && m.Sel != nil && m.Sel.Tags&(1<<uint(i)) != 0, urg)
		}
		x += tw
	}

	surf.SetScheme(normal)
	ltw := int(surf.GetTextWidth(m.LtSymbol)) + int(surf.LinePadding())
	surf.Text(x, 0, uint16(ltw), surf.BarHeight(), surf.LinePadding()/2, m.LtSymbol, false)
	x += ltw

	remainder := m.WW - x
	if remainder <= 0 {
		return
	}

	if isSelMon {
		status := statusText()
		sw := int(surf.GetTextWidth(status)) + int(surf.LinePadding())
		if sw > remainder {
			sw = remainder
		}
		surf.SetScheme(normal)
		surf.Text(x+remainder-sw, 0, uint16(sw), surf.BarHeight(), surf.LinePadding()/2, status, false)
		remainder -= sw
	}

	if remainder <= 0 {
		return
	}

	if m.Sel != nil {
		scheme := normal
		if isSelMon {
			scheme = selected
		}
		surf.SetScheme(scheme)
		title := m.Sel.Name
		if m.Sel.IsFloating {
			title = fmt.Sprintf("[%s]", title)
		}
		surf.Text(x, 0, uint16(remainder), surf.BarHeight(), surf.LinePadding()/2, title, false)
	} else {
		surf.SetScheme(normal)
		surf.Rect(x, 0, uint16(remainder), surf.BarHeight(), true, true)
	}

	surf.Map(m.BarWin, 0, uint16FromInt(m.By), uint16FromInt(m.WW), surf.BarHeight())
}

// tagState scans every client on m once to build the occupied/urgent
// bitmasks drawbar() needs (dwm.c computes these inline in the same loop).
func tagState(m *store.Monitor) (occupied, urgent uint32) {
	for c := m.Clients; c != nil; c = c.Next() {
		occupied |= c.Tags
		if c.IsUrgent {
			urgent |= c.Tags
		}
	}
	return occupied, urgent
}

func uint16FromInt(v int) uint16 {
	if v < 0 {
		return 0
	}
	return uint16(v)
}
