package main

import (
	"fmt"
	"os"
	"strings"

	"fortio.org/log"
	"fortio.org/terminal"
	"fortio.org/terminal/ansipixels"
	"fortio.org/terminal/ansipixels/tcolor"

	"fortio.org/cshade/swatch"
)

const helpLine = "1-4 or click: copy hex   q: quit"

type State struct {
	AP        *ansipixels.AnsiPixels
	Panels    swatch.Panels
	Colors    tcolor.ColorOutput
	Clipboard swatch.Clipboard
	Status    string
	rects     [4]swatch.Rect
}

// interactive shows the 4 panels full screen until 'q'. Failing to use the
// terminal is reported as [ErrDisplayUnavailable].
func interactive(cfg Config, panels swatch.Panels) error {
	clip, err := swatch.NewClipboard(cfg.Clipboard, os.Stdout, os.Getenv("TMUX") != "")
	if err != nil {
		return err
	}
	ap := ansipixels.NewAnsiPixels(cfg.FPS)
	if err = ap.Open(); err != nil {
		return fmt.Errorf("%w: opening terminal: %w", ErrDisplayUnavailable, err)
	}
	defer func() {
		ap.MouseTrackingOff()
		ap.Restore()
	}()
	ap.MouseTrackingOn()
	crlfWriter := &terminal.CRLFWriter{Out: os.Stdout}
	terminal.LoggerSetup(crlfWriter)
	s := &State{
		AP:        ap,
		Panels:    panels,
		Colors:    cfg.Colors,
		Clipboard: clip,
		Status:    helpLine,
	}
	ap.OnResize = func() error {
		s.Repaint()
		return nil
	}
	for {
		s.Repaint()
		if err = ap.ReadOrResizeOrSignal(); err != nil {
			return fmt.Errorf("%w: reading terminal: %w", ErrDisplayUnavailable, err)
		}
		if ap.LeftClick() {
			if i, ok := swatch.Hit(s.rects, ap.Mx-1, ap.My-1); ok {
				s.Copy(i)
			}
			continue
		}
		if len(ap.Data) == 0 {
			// No data, just a resize or signal, continue to next iteration.
			continue
		}
		switch c := ap.Data[0]; c {
		case 'q', 'Q', 3: // 3 is ^C
			log.Infof("Exiting on %q", c)
			return nil
		case '1', '2', '3', '4':
			s.Copy(int(c - '1'))
		default:
			log.Debugf("Ignoring input: %q", ap.Data)
		}
	}
}

// Copy puts the hex value of panel i on the clipboard.
func (s *State) Copy(i int) {
	p := s.Panels[i]
	if err := s.Clipboard.Copy(p.Hex()); err != nil {
		log.Warnf("Could not copy %s to the clipboard: %v", p.Hex(), err)
		s.Status = fmt.Sprintf("%s: %s (copy failed)", p.Label, p.Hex())
		return
	}
	log.Infof("%s: %s", p.Label, p.Hex())
	s.Status = fmt.Sprintf("%s: %s copied", p.Label, p.Hex())
}

func (s *State) Repaint() {
	ap := s.AP
	ap.StartSyncMode()
	ap.ClearScreen()
	// leave bottom line for status
	s.rects = swatch.Grid(ap.W, ap.H-1)
	for i, r := range s.rects {
		s.paintPanel(i, r)
	}
	ap.WriteAt(0, ap.H-1, "%s%s", tcolor.Reset, truncate(s.Status, ap.W))
	ap.MoveCursor(ap.W-1, ap.H-1)
}

func (s *State) paintPanel(i int, r swatch.Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	p := s.Panels[i]
	bg := s.Colors.Background(tcolorOf(p))
	fg := s.Colors.Foreground(tcolorOf(swatch.Panel{Color: swatch.Contrast(p.Color)}))
	blank := strings.Repeat(" ", r.W)
	for y := r.Y; y < r.Y+r.H; y++ {
		s.AP.WriteAt(r.X, y, "%s%s", bg, blank)
	}
	label := truncate(fmt.Sprintf("%d %s %s", i+1, p.Label, p.Hex()), r.W)
	x := r.X + (r.W-len(label))/2
	s.AP.WriteAt(x, r.Y+r.H/2, "%s%s%s%s", bg, fg, label, tcolor.Reset)
}

func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if len(s) > w {
		return s[:w]
	}
	return s
}
