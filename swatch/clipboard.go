package swatch

import (
	"errors"
	"fmt"
	"io"

	"fortio.org/log"
	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// Clipboard receives the hex string of a clicked panel.
type Clipboard interface {
	Copy(text string) error
}

// System is the OS clipboard (xclip/xsel/wl-copy, pbcopy, or the Windows API).
type System struct{}

func (System) Copy(text string) error {
	if clipboard.Unsupported {
		return errors.New("no system clipboard utility available")
	}
	return clipboard.WriteAll(text)
}

// OSC52 asks the terminal itself to set the clipboard; works over ssh.
type OSC52 struct {
	Out  io.Writer
	Tmux bool // wrap in a tmux passthrough sequence
}

func (o OSC52) Copy(text string) error {
	seq := osc52.New(text)
	if o.Tmux {
		seq = seq.Tmux()
	}
	_, err := seq.WriteTo(o.Out)
	return err
}

// Fallback tries Primary then, on error, Secondary.
type Fallback struct {
	Primary, Secondary Clipboard
}

func (f Fallback) Copy(text string) error {
	err := f.Primary.Copy(text)
	if err == nil {
		return nil
	}
	log.Debugf("Primary clipboard failed (%v), trying fallback", err)
	if err2 := f.Secondary.Copy(text); err2 != nil {
		return errors.Join(err, err2)
	}
	return nil
}

// ClipboardMode selects the clipboard built by [NewClipboard]; it is a flag.Value.
type ClipboardMode string

const (
	ClipboardAuto   ClipboardMode = "auto"
	ClipboardSystem ClipboardMode = "system"
	ClipboardOSC52  ClipboardMode = "osc52"
)

var clipboardModes = []ClipboardMode{ClipboardAuto, ClipboardSystem, ClipboardOSC52}

func (m ClipboardMode) String() string {
	return string(m)
}

func (m *ClipboardMode) Set(s string) error {
	for _, v := range clipboardModes {
		if string(v) == s {
			*m = v
			return nil
		}
	}
	return errInvalidMode(s)
}

func errInvalidMode(s string) error {
	return fmt.Errorf("invalid clipboard mode %q, must be one of: %s, %s, %s",
		s, ClipboardAuto, ClipboardSystem, ClipboardOSC52)
}

// NewClipboard returns the clipboard for mode; escape sequences go to out.
// Auto (and the empty mode) prefers the system clipboard and falls back to OSC 52.
func NewClipboard(mode ClipboardMode, out io.Writer, tmux bool) (Clipboard, error) {
	switch mode {
	case ClipboardAuto, "":
		return Fallback{Primary: System{}, Secondary: OSC52{Out: out, Tmux: tmux}}, nil
	case ClipboardSystem:
		return System{}, nil
	case ClipboardOSC52:
		return OSC52{Out: out, Tmux: tmux}, nil
	default:
		return nil, errInvalidMode(string(mode))
	}
}
